package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	configfile "github.com/goldengate-rescue/chipsync/internal/adapters/driven/config/file"
	"github.com/goldengate-rescue/chipsync/internal/adapters/driven/csvfile"
	"github.com/goldengate-rescue/chipsync/internal/core/domain"
	"github.com/goldengate-rescue/chipsync/internal/core/ports/driven"
	"github.com/goldengate-rescue/chipsync/internal/core/ports/driving"
	"github.com/goldengate-rescue/chipsync/internal/core/services"
)

// defaultCutoff applies when neither the flag nor the config file names a
// cutoff year.
const defaultCutoff = 2019

const (
	minCutoff = 2010
	maxCutoff = 2050
)

var (
	compareCutoff int
	compareLegacy int
)

var compareCmd = &cobra.Command{
	Use:   "compare [flags] <old.csv> <new.csv> [updates [errors]]",
	Short: "Compare two registry snapshots",
	Long: `Compares an older snapshot of the dog database against a newer one.
Dogs that were acquired, chipped, adopted, or returned between the two
snapshots are written to the updates file, shaped for the registration
service's bulk upload. Everything questionable found on the way goes to
the errors file for the record's contact to chase.

Output paths default to updates.csv and errors.csv; a path given without
an extension gets .csv appended.`,
	Args: cobra.RangeArgs(2, 4),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().IntVarP(&compareCutoff, "cutoff", "c", 0,
		"discard records acquired before this year")
	compareCmd.Flags().CountVarP(&compareLegacy, "legacy", "o",
		"old snapshot uses the legacy 35-column layout (give twice for both)")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := configfile.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	cutoff := compareCutoff
	if !cmd.Flags().Changed("cutoff") {
		cutoff = configCutoff(cfg)
	}
	if cutoff < minCutoff || cutoff > maxCutoff {
		return fmt.Errorf("cutoff year %d out of range [%d, %d]", cutoff, minCutoff, maxCutoff)
	}
	if compareLegacy > 2 {
		return fmt.Errorf("--legacy given %d times, at most 2 make sense", compareLegacy)
	}

	req := driving.CompareRequest{
		OldPath:     args[0],
		NewPath:     args[1],
		UpdatesPath: "updates.csv",
		ErrorsPath:  "errors.csv",
		OldLegacy:   compareLegacy >= 1,
		NewLegacy:   compareLegacy >= 2,
		Cutoff:      cutoff,
	}
	if len(args) > 2 {
		req.UpdatesPath = defaultExtension(args[2])
	}
	if len(args) > 3 {
		req.ErrorsPath = defaultExtension(args[3])
	}

	svc := services.NewCompareService(csvfile.NewTables(), configOrg(cfg))
	res, err := svc.Compare(req)
	if err != nil {
		return err
	}

	printSummary(cmd, req, res)
	return nil
}

// configCutoff returns the configured default cutoff year, or the hardwired
// default when the config file does not name one.
func configCutoff(cfg driven.ConfigStore) int {
	if y := cfg.GetInt("compare.cutoff_year"); y != 0 {
		return y
	}
	return defaultCutoff
}

// configOrg builds the registration identity, letting the config file
// override the defaults field by field.
func configOrg(cfg driven.ConfigStore) domain.Org {
	org := domain.DefaultOrg()
	set := func(dst *string, key string) {
		if v := cfg.GetString(key); v != "" {
			*dst = v
		}
	}
	set(&org.FirstName, "org.first_name")
	set(&org.LastName, "org.last_name")
	set(&org.Email, "org.email")
	set(&org.Phone, "org.phone")
	set(&org.Species, "org.species")
	set(&org.PrimaryBreed, "org.primary_breed")
	return org
}

// defaultExtension appends ".csv" to a path whose base name has no extension.
func defaultExtension(path string) string {
	if filepath.Ext(path) == "" {
		return path + ".csv"
	}
	return path
}
