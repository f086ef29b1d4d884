package cmd

import (
	"fmt"
	"sort"

	"github.com/mpetrulis/lexirank/core"
	"github.com/mpetrulis/lexirank/internal/contract"
	"github.com/mpetrulis/lexirank/internal/outwriter"
	"github.com/mpetrulis/lexirank/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// importCmd ingests corpus frequency files into the word store.
var importCmd = &cobra.Command{
	Use:   "import [corpus-name]",
	Short: "Import word frequency data from corpus files.",
	Long: `Load word frequency data into the word store.

Three import modes:
- 'import <name>' imports one corpus from the registry
- 'import --all' imports every enabled registry corpus
- 'import --file <path> <name>' imports an ad-hoc file under a new corpus

Source files may carry ranks (lower = more frequent) or relative
frequencies (higher = more frequent). With --value-type auto the
interpretation is detected from the data; frequency-only corpora get
ranks derived by descending frequency after import.

Tokens are lowercased on import, tokens containing digits are dropped,
and case variants are merged. Re-importing the same file is idempotent.

Examples:
  # Import every enabled corpus from ./data
  lexirank import --all

  # Import one registry corpus
  lexirank import subtitles

  # Import an ad-hoc frequency file
  lexirank import --file wordlist.json --value-type frequency my_corpus`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if viper.GetBool("all") {
			runImportAll()
			return
		}
		if len(args) != 1 {
			contract.LogFatal("Cannot import", fmt.Errorf("corpus name is required unless --all is set"))
		}
		if file := viper.GetString("file"); file != "" {
			runImportFile(file, args[0])
			return
		}
		stats, err := core.ImportCorpus(store, cfg.DataDir, args[0])
		if err != nil {
			contract.LogFatal("Cannot import corpus", err)
		}
		outwriter.PrintImportStats(stats)
	},
}

// runImportAll imports every enabled registry corpus, in name order so the
// summary output is stable.
func runImportAll() {
	results := core.ImportAllCorpora(store, cfg.DataDir)

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		outwriter.PrintImportStats(results[name])
	}
}

// runImportFile imports an ad-hoc corpus file outside the registry.
func runImportFile(file, corpusName string) {
	fileType := schema.FileType(viper.GetString("file-type"))
	if _, ok := schema.ValidFileTypes[fileType]; !ok {
		contract.LogFatal("Cannot import file", fmt.Errorf("invalid file type %q: must be json or tsv", fileType))
	}
	valueType := schema.ValueType(viper.GetString("value-type"))
	if _, ok := schema.ValidValueTypes[valueType]; !ok {
		contract.LogFatal("Cannot import file", fmt.Errorf("invalid value type %q: must be rank, frequency or auto", valueType))
	}

	stats, err := core.ImportFrequencyData(store, core.ImportParams{
		FilePath:     file,
		CorpusName:   corpusName,
		LanguageCode: viper.GetString("language"),
		FileType:     fileType,
		ValueType:    valueType,
		MaxWords:     viper.GetInt("max-words"),
	})
	if err != nil {
		contract.LogFatal("Cannot import file", err)
	}
	outwriter.PrintImportStats(stats)
}
