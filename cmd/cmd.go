// Package cmd defines the command-line interface for lexirank.
package cmd

import (
	"github.com/mpetrulis/lexirank/internal/contract"
	"github.com/mpetrulis/lexirank/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(ranksCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(corporaCmd)
	rootCmd.AddCommand(correlateCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the export subcommands to the parent export command
	exportCmd.AddCommand(exportWordlistCmd)
	exportCmd.AddCommand(exportDataCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("backend", string(schema.SQLiteBackend), "Database backend: sqlite or mysql or postgresql")
	rootCmd.PersistentFlags().String("db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("data-dir", contract.DefaultDataDir, "Directory containing corpus data files")
	rootCmd.PersistentFlags().String("corpora", "", "Comma-separated list of corpus names to restrict operations to")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("unknown-rank", schema.DefaultUnknownRank, "Default rank substituted for words absent from a corpus")
	rootCmd.PersistentFlags().Float64("outlier-threshold", schema.DefaultOutlierThreshold, "Z-score magnitude beyond which a word is flagged as outlier")
	rootCmd.PersistentFlags().Bool("include-outliers", false, "Keep flagged outliers in ranked output")
	rootCmd.PersistentFlags().Bool("dry-run", false, "Compute ranks without persisting them")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of importCmd to Viper
	importCmd.Flags().Bool("all", false, "Import every enabled corpus from the registry")
	importCmd.Flags().String("file", "", "Import an ad-hoc corpus file instead of a registry entry")
	importCmd.Flags().String("file-type", string(schema.JSONFile), "Ad-hoc file type: json or tsv")
	importCmd.Flags().String("value-type", string(schema.AutoValues), "Ad-hoc value interpretation: rank, frequency or auto")
	importCmd.Flags().String("language", "en", "Language code recorded on imported words")
	importCmd.Flags().Int("max-words", 0, "Word cap for ad-hoc imports (0 = no cap)")
	if err := viper.BindPFlags(importCmd.Flags()); err != nil {
		contract.LogFatal("Error binding import flags", err)
	}

	// Bind all flags of migrateCmd to Viper
	migrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(migrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding migrate flags", err)
	}
}
