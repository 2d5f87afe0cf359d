package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	configfile "github.com/goldengate-rescue/chipsync/internal/adapters/driven/config/file"
)

// configKeys lists every key the program reads, for `config show` and for
// validating `config set`.
var configKeys = []string{
	"org.first_name",
	"org.last_name",
	"org.email",
	"org.phone",
	"org.species",
	"org.primary_breed",
	"compare.cutoff_year",
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage registration identity and comparison defaults",
	RunE:  runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, err := configfile.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	cmd.Printf("Config file: %s\n\n", cfg.Path())

	org := configOrg(cfg)
	cmd.Println("[org]")
	cmd.Printf("  first_name    = %q\n", org.FirstName)
	cmd.Printf("  last_name     = %q\n", org.LastName)
	cmd.Printf("  email         = %q\n", org.Email)
	cmd.Printf("  phone         = %q\n", org.Phone)
	cmd.Printf("  species       = %q\n", org.Species)
	cmd.Printf("  primary_breed = %q\n", org.PrimaryBreed)
	cmd.Println()
	cmd.Println("[compare]")
	cmd.Printf("  cutoff_year   = %d\n", configCutoff(cfg))

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	if !knownConfigKey(key) {
		return fmt.Errorf("unknown config key %q", key)
	}

	cfg, err := configfile.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if key == "compare.cutoff_year" {
		year, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s wants a year, got %q", key, value)
		}
		if year < minCutoff || year > maxCutoff {
			return fmt.Errorf("cutoff year %d out of range [%d, %d]", year, minCutoff, maxCutoff)
		}
		if err := cfg.Set(key, year); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	} else {
		if err := cfg.Set(key, value); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}

	cmd.Printf("Set %s\n", key)
	return nil
}

func knownConfigKey(key string) bool {
	for _, k := range configKeys {
		if k == key {
			return true
		}
	}
	return false
}
