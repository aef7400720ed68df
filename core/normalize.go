package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/freqseed/schema"
)

// problemURLPrefix is the canonical base for problem URLs.
const problemURLPrefix = "https://leetcode.cn/problems/"

// fallbackAskedDate is used when the upstream timestamp cannot be parsed.
const fallbackAskedDate = "2025-08-01"

// Normalize maps a raw API entry to a flat ProblemRecord. It is a pure
// function with no I/O. A missing title or a non-positive question id makes
// the record malformed; the caller skips it and continues.
func Normalize(entry schema.RawEntry) (schema.ProblemRecord, error) {
	title := entry.Leetcode.Title
	if strings.TrimSpace(title) == "" {
		return schema.ProblemRecord{}, fmt.Errorf("entry has empty title")
	}
	if entry.Leetcode.FrontendQuestionID <= 0 {
		return schema.ProblemRecord{}, fmt.Errorf("entry %q has invalid question id %d", title, entry.Leetcode.FrontendQuestionID)
	}

	id := strconv.FormatInt(entry.Leetcode.FrontendQuestionID, 10)
	difficulty := schema.MapDifficulty(entry.Leetcode.Level)

	return schema.ProblemRecord{
		LeetcodeID: id,
		Title:      title,
		Difficulty: difficulty,
		URL:        BuildProblemURL(entry.Leetcode.SlugTitle, id),
		Tags:       InferTags(title, difficulty),
		IsPremium:  isPremiumTitle(title),
		Score:      entry.Value,
		LastAsked:  FormatAskedDate(entry.Time),
	}, nil
}

// BuildProblemURL builds the canonical URL from a slug, falling back to a
// synthesized path from the external id when the slug is missing.
func BuildProblemURL(slug, id string) string {
	if slug != "" {
		return problemURLPrefix + slug
	}
	return problemURLPrefix + "problem-" + id
}

// InferTags scans the title against the ordered keyword rules. Every matching
// rule appends its tag, so overlapping rules can produce several tags and the
// rule order is load-bearing. When nothing matches, a single difficulty-based
// fallback tag is used.
func InferTags(title string, difficulty schema.Difficulty) []string {
	var tags []string
	for _, rule := range schema.TagRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(title, kw) {
				tags = append(tags, rule.Tag)
				break
			}
		}
	}
	if len(tags) == 0 {
		switch difficulty {
		case schema.EasyDifficulty:
			tags = append(tags, schema.EasyFallbackTag)
		case schema.HardDifficulty:
			tags = append(tags, schema.HardFallbackTag)
		default:
			tags = append(tags, schema.MediumFallbackTag)
		}
	}
	return tags
}

// isPremiumTitle flags paywalled problems from title markers.
func isPremiumTitle(title string) bool {
	return strings.Contains(strings.ToLower(title), "premium") || strings.Contains(title, "付费")
}

// FormatAskedDate converts an ISO8601 timestamp to YYYY-MM-DD, falling back
// to a fixed date when the value cannot be parsed.
func FormatAskedDate(iso string) string {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return fallbackAskedDate
}
