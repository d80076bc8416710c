package models

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Question is a single record returned by the search service.
// Every field is optional on the wire.
type Question struct {
	Title        string     `json:"title,omitempty"`
	Description  string     `json:"description,omitempty"`
	InputFormat  string     `json:"inputFormat,omitempty"`
	OutputFormat string     `json:"outputFormat,omitempty"`
	Constraints  string     `json:"constraints,omitempty"`
	Examples     []Example  `json:"examples,omitempty"`
	TestCases    []TestCase `json:"testCases,omitempty"`
	Difficulty   Difficulty `json:"difficulty,omitempty"`
	Topic        string     `json:"topic,omitempty"`
	Year         string     `json:"year,omitempty"`
	Type         string     `json:"type,omitempty"`
	Link         string     `json:"link,omitempty"`
}

type Difficulty string

const (
	Easy    Difficulty = "Easy"
	Medium  Difficulty = "Medium"
	Hard    Difficulty = "Hard"
	Unknown Difficulty = "Unknown"
)

// worked example shown in the problem statement
type Example struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// test case as stored upstream; older records use output instead of expectedOutput
type TestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expectedOutput,omitempty"`
	Output         string `json:"output,omitempty"`
}

// fallback labels
const (
	ListTopicFallback    = "N/A"
	InsightTopicFallback = "General"
)

// DisplayTitle returns the title or a 1-based positional placeholder.
func (q Question) DisplayTitle(index int) string {
	if q.Title != "" {
		return q.Title
	}
	return fmt.Sprintf("Question %d", index+1)
}

// ListTopic is the topic label used by the question list.
func (q Question) ListTopic() string {
	if q.Topic != "" {
		return q.Topic
	}
	return ListTopicFallback
}

// InsightTopic is the topic label used when aggregating.
func (q Question) InsightTopic() string {
	if q.Topic != "" {
		return q.Topic
	}
	return InsightTopicFallback
}

func (q Question) DisplayDifficulty() Difficulty {
	if q.Difficulty != "" {
		return q.Difficulty
	}
	return Unknown
}

// IdentityKey is the position derived list key. It is only meaningful for
// the result set the question came from.
func (q Question) IdentityKey(index int) string {
	if q.Link != "" {
		return q.Link
	}
	return q.Title + "-" + strconv.Itoa(index)
}

// RepeatedKey groups duplicates. Questions with neither link nor title share the empty key.
func (q Question) RepeatedKey() string {
	if q.Link != "" {
		return q.Link
	}
	return q.Title
}

// QuestionID is a content derived identifier, stable across searches.
type QuestionID string

// ID hashes title, link and topic. The separator keeps ("ab","c") and ("a","bc") apart.
func (q Question) ID() QuestionID {
	d := xxhash.New()
	d.WriteString(q.Title)
	d.WriteString("\x00")
	d.WriteString(q.Link)
	d.WriteString("\x00")
	d.WriteString(q.Topic)
	return QuestionID(fmt.Sprintf("%016x", d.Sum64()))
}
