// Package insights derives aggregate views from a question result set.
// Every function is pure and safe to call repeatedly on the same input.
package insights

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"interviewdeck/internal/models"
)

// chart palette, assigned by sorted topic position
var palette = []string{
	"#3B82F6",
	"#10B981",
	"#F59E0B",
	"#EF4444",
	"#6366F1",
	"#DB2777",
	"#8B5CF6",
	"#14B8A6",
}

const DefaultSummarySize = 5

type HotQuestion struct {
	Link  string `json:"link"`
	Count int    `json:"count"`
}

type YearCount struct {
	Year  string `json:"year"`
	Count int    `json:"count"`
}

// ChartSeries is the topic distribution in display order.
type ChartSeries struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
	Colors []string `json:"colors"`
}

type Insights struct {
	Total         int            `json:"total"`
	TopicCounts   map[string]int `json:"topicCounts"`
	Chart         ChartSeries    `json:"chart"`
	HotQuestions  []HotQuestion  `json:"hotQuestions"`
	YearFrequency []YearCount    `json:"yearFrequency"`
	Summary       string         `json:"summary"`
}

func TopicCounts(qs []models.Question) map[string]int {
	counts := make(map[string]int)
	for _, q := range qs {
		counts[q.InsightTopic()]++
	}
	return counts
}

// TopicNames returns the distinct topics in lexicographic order.
func TopicNames(counts map[string]int) []string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TopicColors maps each name to palette[i%len(palette)] by its position in names.
func TopicColors(names []string) map[string]string {
	colors := make(map[string]string, len(names))
	for i, name := range names {
		colors[name] = palette[i%len(palette)]
	}
	return colors
}

func Chart(counts map[string]int) ChartSeries {
	names := TopicNames(counts)
	colors := TopicColors(names)

	series := ChartSeries{
		Labels: names,
		Data:   make([]int, len(names)),
		Colors: make([]string, len(names)),
	}
	for i, name := range names {
		series.Data[i] = counts[name]
		series.Colors[i] = colors[name]
	}
	return series
}

// HotQuestions returns repeated keys with their counts, most frequent first.
// Ties keep the order in which each key was first seen. Records with neither
// link nor title share the empty key and are reported like any other group.
func HotQuestions(qs []models.Question) []HotQuestion {
	counts := make(map[string]int)
	var order []string
	for _, q := range qs {
		key := q.RepeatedKey()
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	hot := make([]HotQuestion, 0)
	for _, key := range order {
		if counts[key] > 1 {
			hot = append(hot, HotQuestion{Link: key, Count: counts[key]})
		}
	}
	sort.SliceStable(hot, func(i, j int) bool {
		return hot[i].Count > hot[j].Count
	})
	return hot
}

// YearFrequency counts questions per distinct non-empty year, ascending by year.
func YearFrequency(qs []models.Question) []YearCount {
	counts := make(map[string]int)
	for _, q := range qs {
		if q.Year == "" {
			continue
		}
		counts[q.Year]++
	}

	years := make([]string, 0, len(counts))
	for year := range counts {
		years = append(years, year)
	}
	sort.Strings(years)

	freq := make([]YearCount, 0, len(years))
	for _, year := range years {
		freq = append(freq, YearCount{Year: year, Count: counts[year]})
	}
	return freq
}

// TopInsightSummary renders the n most common topics as "{pct}% {topic}",
// joined by ", ". Equal counts are ordered by topic name.
func TopInsightSummary(qs []models.Question, n int) string {
	if len(qs) == 0 || n <= 0 {
		return ""
	}
	counts := TopicCounts(qs)
	names := TopicNames(counts)
	sort.SliceStable(names, func(i, j int) bool {
		return counts[names[i]] > counts[names[j]]
	})
	if len(names) > n {
		names = names[:n]
	}

	parts := make([]string, len(names))
	for i, name := range names {
		pct := math.Round(float64(counts[name]) / float64(len(qs)) * 100)
		parts[i] = fmt.Sprintf("%d%% %s", int(pct), name)
	}
	return strings.Join(parts, ", ")
}

// Headline prefixes the summary with the searched company, role and assessment type.
func Headline(company, role, assessmentType, summary string) string {
	return fmt.Sprintf("%s %s %s: %s", company, role, assessmentType, summary)
}

// ShowYearFrequency reports whether the year-wise panel applies to the assessment type.
func ShowYearFrequency(assessmentType string) bool {
	return assessmentType == models.AssessmentInterview
}

func Compute(qs []models.Question) Insights {
	counts := TopicCounts(qs)
	return Insights{
		Total:         len(qs),
		TopicCounts:   counts,
		Chart:         Chart(counts),
		HotQuestions:  HotQuestions(qs),
		YearFrequency: YearFrequency(qs),
		Summary:       TopInsightSummary(qs, DefaultSummarySize),
	}
}
