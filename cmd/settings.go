package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/google/subcommands"
	"github.com/spf13/viper"
)

// settings holds the business profile and display preferences, persisted to
// a YAML file next to the ledger database.
type settings struct {
	BusinessName string
	OwnerName    string
	Email        string
	Phone        string
	Address      string
	Currency     string
}

// settingsKeys lists the valid keys for `sbk settings key=value`.
var settingsKeys = []string{"businessName", "ownerName", "email", "phone", "address", "currency"}

func newSettingsViper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(*settingsFile)
	v.SetConfigType("yaml")
	v.SetDefault("businessName", "Laptop Store Pro")
	v.SetDefault("ownerName", "")
	v.SetDefault("email", "")
	v.SetDefault("phone", "")
	v.SetDefault("address", "")
	v.SetDefault("currency", "INR")
	return v
}

// loadSettings reads the settings file. A missing file yields the defaults.
func loadSettings() settings {
	v := newSettingsViper()
	_ = v.ReadInConfig()
	return settings{
		BusinessName: v.GetString("businessName"),
		OwnerName:    v.GetString("ownerName"),
		Email:        v.GetString("email"),
		Phone:        v.GetString("phone"),
		Address:      v.GetString("address"),
		Currency:     v.GetString("currency"),
	}
}

type settingsCmd struct{}

func (*settingsCmd) Name() string     { return "settings" }
func (*settingsCmd) Synopsis() string { return "show or change the business profile settings" }
func (*settingsCmd) Usage() string {
	return `sbk settings [key=value ...]

  Without arguments, prints the current settings. With key=value arguments,
  updates the settings file. Valid keys: businessName, ownerName, email,
  phone, address, currency.

Usage Examples:
$ sbk settings
$ sbk settings businessName="Laptop Store Pro" currency=INR
`
}

func (*settingsCmd) SetFlags(f *flag.FlagSet) {}

func (c *settingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	v := newSettingsViper()
	_ = v.ReadInConfig()

	if f.NArg() == 0 {
		for _, key := range settingsKeys {
			fmt.Printf("%s: %s\n", key, v.GetString(key))
		}
		return subcommands.ExitSuccess
	}

	for _, arg := range f.Args() {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: expected key=value, got %q\n", arg)
			return subcommands.ExitUsageError
		}
		if !slices.Contains(settingsKeys, key) {
			fmt.Fprintf(os.Stderr, "Error: unknown setting %q\n", key)
			return subcommands.ExitUsageError
		}
		v.Set(key, value)
	}
	if err := v.WriteConfigAs(*settingsFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot write settings file: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Settings saved to %s\n", *settingsFile)
	return subcommands.ExitSuccess
}
