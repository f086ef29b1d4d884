package schema

// Custom string types for type safety.
type (
	// ValueType says how numeric values in a corpus file are interpreted.
	ValueType string

	// FileType represents the structural shape of a corpus source file.
	FileType string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for persistence.
	DatabaseBackend string
)

// All value types supported.
const (
	RankValues      ValueType = "rank"      // values are ordinal positions, lower is more frequent
	FrequencyValues ValueType = "frequency" // values are relative occurrence measures, higher is more frequent
	AutoValues      ValueType = "auto"      // detect from the data
)

// All file types supported.
const (
	JSONFile FileType = "json" // flat list, flat map, or nested frequency object
	TSVFile  FileType = "tsv"  // tab-delimited, word in first column, line order = rank
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All database backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
)

// Aggregation defaults.
const (
	// DefaultUnknownRank is the rank substituted for words absent from a corpus.
	DefaultUnknownRank = 12500

	// DefaultOutlierThreshold is the z-score magnitude beyond which a word is flagged.
	DefaultOutlierThreshold = 2.0

	// MinOutlierSample is the smallest candidate set that gets outlier statistics.
	MinOutlierSample = 10

	// CommitBatchSize bounds transaction size during imports and rank updates.
	CommitBatchSize = 500
)

// ValidValueTypes lists all valid value types.
var ValidValueTypes = map[ValueType]struct{}{
	RankValues:      {},
	FrequencyValues: {},
	AutoValues:      {},
}

// ValidFileTypes lists all valid file types.
var ValidFileTypes = map[FileType]struct{}{
	JSONFile: {},
	TSVFile:  {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid database backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
}
