package schema

// Custom string types for type safety.
type (
	// Difficulty represents the difficulty level of a problem.
	Difficulty string

	// Scope represents the aggregation level of a frequency statistic.
	Scope string

	// FrequencyLevel represents the ordinal frequency bucket of a problem.
	FrequencyLevel string

	// Trend represents the direction of a frequency statistic over time.
	Trend string

	// SinkBackend represents the destination for generated SQL statements.
	SinkBackend string
)

// All difficulty levels supported.
const (
	EasyDifficulty   Difficulty = "EASY"
	MediumDifficulty Difficulty = "MEDIUM" // default for unknown levels
	HardDifficulty   Difficulty = "HARD"
)

// All statistic scopes supported.
const (
	GlobalScope     Scope = "GLOBAL"
	CompanyScope    Scope = "COMPANY"
	DepartmentScope Scope = "DEPARTMENT"
)

// All frequency buckets supported.
const (
	VeryHighFrequency FrequencyLevel = "VERY_HIGH" // score >= 600
	HighFrequency     FrequencyLevel = "HIGH"      // score >= 400
	MediumFrequency   FrequencyLevel = "MEDIUM"    // score >= 200
	LowFrequency      FrequencyLevel = "LOW"
)

// All frequency trends supported. Only STABLE is emitted today; the column
// exists so the study tool can start tracking movement later.
const (
	StableTrend Trend = "STABLE"
)

// All sink backends supported.
const (
	MySQLSink      SinkBackend = "mysql" // default
	PostgreSQLSink SinkBackend = "postgresql"
	SQLiteSink     SinkBackend = "sqlite"
	FileSink       SinkBackend = "file"
	ClientSink     SinkBackend = "client"
)

// AllScopes returns a list of all supported statistic scopes.
var AllScopes = []Scope{GlobalScope, CompanyScope, DepartmentScope}

// ValidSinkBackends lists all valid sink backends.
var ValidSinkBackends = map[SinkBackend]struct{}{
	MySQLSink:      {},
	PostgreSQLSink: {},
	SQLiteSink:     {},
	FileSink:       {},
	ClientSink:     {},
}

// MapDifficulty maps a raw API difficulty level to a Difficulty.
// Levels 1/2/3 map to EASY/MEDIUM/HARD; anything else maps to MEDIUM.
func MapDifficulty(level int) Difficulty {
	switch level {
	case 1:
		return EasyDifficulty
	case 3:
		return HardDifficulty
	default:
		return MediumDifficulty
	}
}

// MapFrequencyLevel classifies a raw frequency score into an ordinal bucket.
func MapFrequencyLevel(score int) FrequencyLevel {
	switch {
	case score >= 600:
		return VeryHighFrequency
	case score >= 400:
		return HighFrequency
	case score >= 200:
		return MediumFrequency
	default:
		return LowFrequency
	}
}
