package core

import (
	"math"
	"math/rand"

	"github.com/huangsam/freqseed/schema"
)

// GenerateMetrics derives a synthetic metric bundle from a frequency score
// and a rank within a scope. The result is entirely deterministic given the
// rng state and the call order, which is what makes repeated runs emit
// byte-identical statistics. All outputs are clamped, so there are no
// failure modes.
func GenerateMetrics(rng *rand.Rand, score, rank int, scope schema.Scope) schema.MetricBundle {
	params := schema.ScopeParamsTable[scope]

	interviewCount := score/params.Divisor + uniformInt(rng, -params.Spread, params.Spread)
	interviewCount = max(1, interviewCount)

	unique := int(float64(interviewCount)*params.UniqueRatio) + uniformInt(rng, -params.UniqueJitter, params.UniqueJitter)
	unique = max(1, min(unique, interviewCount))

	percentile := roundTo(math.Max(1.0, float64(101-rank)), 2)

	rating := roundTo(uniformFloat(rng, ratingRangeFor(params, rank)), 1)
	tier := schema.RatingTierFor(rating)
	successRate := roundTo(uniformFloat(rng, params.SuccessTiers[tier]), 1)
	solveTime := uniformInt(rng, params.SolveTiers[tier].Lo, params.SolveTiers[tier].Hi)

	return schema.MetricBundle{
		InterviewCount:     interviewCount,
		UniqueInterviewers: unique,
		Percentile:         percentile,
		DifficultyRating:   rating,
		SuccessRate:        successRate,
		SolveTimeMinutes:   solveTime,
	}
}

// CompanyScore derives a company-specific frequency score from a global one
// by applying the per-company multiplier and a bounded random variation.
func CompanyScore(rng *rand.Rand, globalScore int, company string) int {
	multiplier, ok := schema.CompanyMultipliers[company]
	if !ok {
		multiplier = schema.DefaultEntityMultiplier
	}
	variation := uniformFloat(rng, schema.RatingRange{Lo: schema.CompanyVariationLo, Hi: schema.CompanyVariationHi})
	return max(1, int(float64(globalScore)*multiplier*variation))
}

// DepartmentScore derives a department-specific frequency score from a
// company-level one.
func DepartmentScore(rng *rand.Rand, companyScore int, department string) int {
	multiplier, ok := schema.DepartmentMultipliers[department]
	if !ok {
		multiplier = schema.DefaultEntityMultiplier
	}
	variation := uniformFloat(rng, schema.RatingRange{Lo: schema.DepartmentVariationLo, Hi: schema.DepartmentVariationHi})
	return max(1, int(float64(companyScore)*multiplier*variation))
}

// ratingRangeFor picks the difficulty rating range for a rank. Bands are
// evaluated in order; MaxRank 0 is the catch-all.
func ratingRangeFor(params schema.ScopeParams, rank int) schema.RatingRange {
	for _, band := range params.RatingBands {
		if band.MaxRank == 0 || rank <= band.MaxRank {
			return band.Range
		}
	}
	// Unreachable as long as the table keeps a catch-all band.
	return schema.RatingRange{Lo: 1, Hi: 5}
}

// uniformInt draws an integer uniformly from [lo, hi], inclusive on both ends.
func uniformInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// uniformFloat draws a float uniformly from [r.Lo, r.Hi).
func uniformFloat(rng *rand.Rand, r schema.RatingRange) float64 {
	if r.Hi <= r.Lo {
		return r.Lo
	}
	return r.Lo + rng.Float64()*(r.Hi-r.Lo)
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
