package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMapDifficulty checks the level-to-difficulty mapping.
func TestMapDifficulty(t *testing.T) {
	tests := []struct {
		name     string
		level    int
		expected Difficulty
	}{
		{name: "easy", level: 1, expected: EasyDifficulty},
		{name: "medium", level: 2, expected: MediumDifficulty},
		{name: "hard", level: 3, expected: HardDifficulty},
		{name: "unknown defaults to medium", level: 0, expected: MediumDifficulty},
		{name: "out of range defaults to medium", level: 9, expected: MediumDifficulty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapDifficulty(tt.level))
		})
	}
}

// TestMapFrequencyLevel checks the score bucket thresholds.
func TestMapFrequencyLevel(t *testing.T) {
	tests := []struct {
		score    int
		expected FrequencyLevel
	}{
		{score: 976, expected: VeryHighFrequency},
		{score: 600, expected: VeryHighFrequency},
		{score: 599, expected: HighFrequency},
		{score: 400, expected: HighFrequency},
		{score: 399, expected: MediumFrequency},
		{score: 200, expected: MediumFrequency},
		{score: 199, expected: LowFrequency},
		{score: 0, expected: LowFrequency},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, MapFrequencyLevel(tt.score), "score %d", tt.score)
	}
}

// TestRatingTierFor checks the rating tier boundaries.
func TestRatingTierFor(t *testing.T) {
	assert.Equal(t, 0, RatingTierFor(1.0))
	assert.Equal(t, 0, RatingTierFor(2.5))
	assert.Equal(t, 1, RatingTierFor(2.6))
	assert.Equal(t, 1, RatingTierFor(3.5))
	assert.Equal(t, 2, RatingTierFor(3.6))
	assert.Equal(t, 2, RatingTierFor(5.0))
}

// TestCatalogsAndFixture sanity-checks the bundled data shapes.
func TestCatalogsAndFixture(t *testing.T) {
	assert.Len(t, Companies, 22)
	assert.Len(t, Departments, 7)
	assert.Len(t, GlobalFrequencies, 100)

	// Fixture must be ordered by descending score so rank follows index
	for i := 1; i < len(GlobalFrequencies); i++ {
		assert.GreaterOrEqual(t, GlobalFrequencies[i-1].Score, GlobalFrequencies[i].Score)
	}

	// Every multiplier key must exist in the catalogs
	names := map[string]bool{}
	for _, c := range Companies {
		names[c.Name] = true
	}
	for name := range CompanyMultipliers {
		assert.True(t, names[name], "multiplier for unknown company %s", name)
	}

	deptNames := map[string]bool{}
	for _, d := range Departments {
		deptNames[d.Name] = true
	}
	for name := range DepartmentMultipliers {
		assert.True(t, deptNames[name], "multiplier for unknown department %s", name)
	}
}
