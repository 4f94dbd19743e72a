// Package stockbook implements a single-user business ledger for a laptop
// resale shop, tracking inventory, purchases, and sales. It is designed to
// be local-first and auditable: all data lives in one local database file
// the user fully controls.
//
// The core functionalities include:
//   - Ledger Management: The Ledger owns three mutually consistent
//     collections (stock items, purchase records, sale records). Every state
//     transition goes through a Command, which is validated in full before
//     any mutation, so a rejected operation changes nothing.
//   - Quantity Conservation: An item's stock level always equals its initial
//     quantity plus purchased units minus sold units, and can never go
//     negative. Purchase and sale records are immutable once written.
//   - Derived Analytics: Inventory valuation, profit and margin, low-stock
//     detection, brand distribution, monthly rollups, and top performing
//     models, all computed as pure functions over a point-in-time Snapshot.
//   - Data Persistence: Snapshots are persisted to a local key-value store
//     after every successful mutation, with a fixed seed dataset standing in
//     when no usable snapshot exists.
//   - Import/Export: The full ledger round-trips through a human readable
//     JSON document for backup and restore.
//
// This package serves as the foundational logic for the `sbk` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package stockbook
