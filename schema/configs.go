package schema

// RatingRange is an inclusive range of difficulty ratings.
type RatingRange struct {
	Lo, Hi float64
}

// MinuteRange is an inclusive range of solve-time minutes.
type MinuteRange struct {
	Lo, Hi int
}

// RatingBand maps a rank ceiling to a difficulty rating range. Bands are
// evaluated in order; MaxRank 0 marks the catch-all band.
type RatingBand struct {
	MaxRank int
	Range   RatingRange
}

// ScopeParams holds the synthesis parameters for one statistic scope.
// Success and solve-time tiers are indexed by difficulty rating:
// tier 0 for ratings <= 2.5, tier 1 for ratings <= 3.5, tier 2 for the rest.
type ScopeParams struct {
	Divisor        int          // interviewCount = score/Divisor + jitter
	Spread         int          // uniform jitter on interviewCount
	UniqueRatio    float64      // uniqueInterviewers ≈ interviewCount * UniqueRatio
	UniqueJitter   int          // uniform jitter on uniqueInterviewers
	RatingBands    []RatingBand // difficulty rating ranges by rank
	SuccessTiers   [3]RatingRange
	SolveTiers     [3]MinuteRange
	LastAskedDays  MinuteRange // window (days ago) for last_asked_date
	FirstAskedDays MinuteRange // window (days ago) for first_asked_date
}

// RatingTierFor returns the tier index for a difficulty rating.
func RatingTierFor(rating float64) int {
	switch {
	case rating <= 2.5:
		return 0
	case rating <= 3.5:
		return 1
	default:
		return 2
	}
}

// ScopeParamsTable holds the synthesis parameters per scope. The global scope
// derives more interviews per score point and widens difficulty with rank;
// company and department scopes use flatter, scope-shifted ranges.
var ScopeParamsTable = map[Scope]ScopeParams{
	GlobalScope: {
		Divisor:      5,
		Spread:       5,
		UniqueRatio:  0.6,
		UniqueJitter: 3,
		RatingBands: []RatingBand{
			{MaxRank: 20, Range: RatingRange{2.5, 3.8}},
			{MaxRank: 50, Range: RatingRange{2.8, 4.2}},
			{MaxRank: 0, Range: RatingRange{3.2, 4.5}},
		},
		SuccessTiers:   [3]RatingRange{{75, 92}, {50, 78}, {28, 58}},
		SolveTiers:     [3]MinuteRange{{10, 22}, {18, 38}, {32, 55}},
		LastAskedDays:  MinuteRange{1, 30},
		FirstAskedDays: MinuteRange{90, 365},
	},
	CompanyScope: {
		Divisor:      8,
		Spread:       3,
		UniqueRatio:  0.6,
		UniqueJitter: 1,
		RatingBands: []RatingBand{
			{MaxRank: 0, Range: RatingRange{2.2, 4.0}},
		},
		SuccessTiers:   [3]RatingRange{{65, 85}, {45, 70}, {25, 55}},
		SolveTiers:     [3]MinuteRange{{12, 22}, {22, 38}, {35, 55}},
		LastAskedDays:  MinuteRange{1, 30},
		FirstAskedDays: MinuteRange{120, 120},
	},
	DepartmentScope: {
		Divisor:      8,
		Spread:       3,
		UniqueRatio:  0.4,
		UniqueJitter: 1,
		RatingBands: []RatingBand{
			{MaxRank: 0, Range: RatingRange{2.5, 4.2}},
		},
		SuccessTiers:   [3]RatingRange{{65, 85}, {45, 70}, {25, 55}},
		SolveTiers:     [3]MinuteRange{{12, 22}, {22, 38}, {35, 55}},
		LastAskedDays:  MinuteRange{1, 60},
		FirstAskedDays: MinuteRange{90, 90},
	},
}

// Scope-level variation applied before metric synthesis.
const (
	// CompanyVariationLo/Hi bound the random factor applied on top of the
	// per-company multiplier when deriving a company score from a global one.
	CompanyVariationLo = 0.8
	CompanyVariationHi = 1.2

	// DepartmentVariationLo/Hi bound the random factor applied on top of the
	// per-department multiplier when deriving a department score.
	DepartmentVariationLo = 0.85
	DepartmentVariationHi = 1.15

	// DefaultEntityMultiplier applies to companies and departments that are
	// not in the multiplier tables.
	DefaultEntityMultiplier = 0.8
)
