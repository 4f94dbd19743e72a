// Package renderer turns ledger snapshots and analytics results into
// markdown documents for terminal display.
package renderer

import (
	"fmt"

	"github.com/stockbook/stockbook"
)

// itemLabel resolves a record's laptopId to a display name, tolerating
// references to deleted items.
func itemLabel(s *stockbook.Snapshot, laptopID string) string {
	if it := s.Item(laptopID); it != nil {
		return it.Label()
	}
	return stockbook.UnknownLabel
}

func count(n int, singular string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %ss", n, singular)
}
