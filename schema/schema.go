// Package schema has configs, models and global variables for all parts of freqseed.
package schema

// RawPayload is the JSON envelope returned by the CodeTop questions API.
type RawPayload struct {
	Count int        `json:"count"` // Total number of problems known upstream
	List  []RawEntry `json:"list"`  // One entry per problem, ordered by the API
}

// RawEntry is a single problem entry inside the API payload.
type RawEntry struct {
	Time     string      `json:"time"`              // ISO8601 timestamp of the latest occurrence
	Value    int         `json:"value"`             // Raw frequency score
	Leetcode RawLeetcode `json:"leetcode"`          // Nested problem metadata
	Company  *RawCompany `json:"company,omitempty"` // Optional company attribution
}

// RawLeetcode holds the nested problem metadata of a raw entry.
type RawLeetcode struct {
	FrontendQuestionID int64  `json:"frontend_question_id"`
	Title              string `json:"title"`
	Level              int    `json:"level"`
	SlugTitle          string `json:"slug_title"`
}

// RawCompany holds the optional company attribution of a raw entry.
type RawCompany struct {
	CompanyName string `json:"company_name"`
}

// ProblemRecord is the normalized, flat shape of a problem ready for storage.
// It is immutable once built and keyed externally by LeetcodeID.
type ProblemRecord struct {
	LeetcodeID string     // External problem identifier (unique)
	Title      string     // Problem title, possibly Chinese
	Difficulty Difficulty // EASY, MEDIUM or HARD
	URL        string     // Canonical problem URL
	Tags       []string   // Inferred topic tags, order preserved
	IsPremium  bool       // Whether the problem is behind a paywall
	Score      int        // Raw frequency score from the API
	LastAsked  string     // Latest occurrence date, YYYY-MM-DD
}

// FrequencySample pairs a problem with its raw frequency score.
// The score is the only externally-sourced number; everything else is derived.
type FrequencySample struct {
	ProblemID int64 // Sink-side problem identifier
	Score     int   // Raw frequency score, >= 0
}

// MetricBundle is a set of synthetic interview metrics derived from a raw
// frequency score and a rank. It is a computed view, regenerated on every run.
type MetricBundle struct {
	InterviewCount     int     // >= 1
	UniqueInterviewers int     // in [1, InterviewCount]
	Percentile         float64 // inverse-rank proxy in (0, 101]
	DifficultyRating   float64 // in [1, 5]
	SuccessRate        float64 // in [0, 100]
	SolveTimeMinutes   int     // > 0
}

// StatRow is one row destined for the problem_frequency_stats table.
type StatRow struct {
	ProblemID    int64
	CompanyID    *int64 // nil outside COMPANY/DEPARTMENT scopes
	DepartmentID *int64 // nil outside DEPARTMENT scope
	Score        int    // scope-adjusted frequency score
	Rank         int    // 1-based rank within the scope
	Scope        Scope
	Metrics      MetricBundle
	LastAsked    string // YYYY-MM-DD
	FirstAsked   string // YYYY-MM-DD
}

// CompanySeed is a catalog entry for the companies table.
type CompanySeed struct {
	Name        string // Stable lowercase key, e.g. "bytedance"
	DisplayName string // Localized display name, e.g. "字节跳动"
	Industry    string
}

// DepartmentSeed is a catalog entry for the departments table.
type DepartmentSeed struct {
	Name        string // Stable lowercase key, e.g. "backend"
	DisplayName string
	Description string
}

// TagRule maps title keywords to a topic tag. Rules are evaluated in order
// and are non-exclusive: a title can match several rules and each match
// appends its tag.
type TagRule struct {
	Keywords []string
	Tag      string
}
