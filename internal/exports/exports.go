// Package exports renders a question result set as a downloadable file.
package exports

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"interviewdeck/internal/models"
)

var ErrUnsupportedFormat = errors.New("unsupported export format")

var columns = []string{"Question", "Type", "Topic", "Difficulty"}

const untitled = "Untitled"

type Exporter struct {
	Format      string
	Filename    string
	ContentType string
	write       func(io.Writer, []models.Question) error
}

func (e Exporter) Write(w io.Writer, qs []models.Question) error {
	return e.write(w, qs)
}

var exporters = map[string]Exporter{
	"csv": {Format: "csv", Filename: "questions_export.csv", ContentType: "text/csv; charset=utf-8", write: WriteCSV},
	"md":  {Format: "md", Filename: "questions.md", ContentType: "text/markdown; charset=utf-8", write: WriteMarkdown},
	"pdf": {Format: "pdf", Filename: "questions_report.pdf", ContentType: "application/pdf", write: WritePDF},
}

func Lookup(format string) (Exporter, error) {
	e, ok := exporters[strings.ToLower(format)]
	if !ok {
		return Exporter{}, fmt.Errorf("%q: %w", format, ErrUnsupportedFormat)
	}
	return e, nil
}

// row returns the four exported cells of q.
func row(q models.Question) []string {
	title := q.Title
	if title == "" {
		title = untitled
	}
	return []string{title, q.Type, q.Topic, string(q.Difficulty)}
}

// WriteCSV quotes every cell and does not escape embedded quotes, so files
// match what the dashboard has always produced. Lines end in "\n" with no
// trailing newline.
func WriteCSV(w io.Writer, qs []models.Question) error {
	lines := make([]string, 0, len(qs)+1)
	lines = append(lines, quoteAll(columns))
	for _, q := range qs {
		lines = append(lines, quoteAll(row(q)))
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}

func quoteAll(cells []string) string {
	quoted := make([]string, len(cells))
	for i, c := range cells {
		quoted[i] = `"` + c + `"`
	}
	return strings.Join(quoted, ",")
}

func WriteMarkdown(w io.Writer, qs []models.Question) error {
	lines := make([]string, 0, len(qs)+2)
	lines = append(lines,
		"| Question | Type | Topic | Difficulty |",
		"|----------|------|--------|------------|",
	)
	for _, q := range qs {
		lines = append(lines, "| "+strings.Join(row(q), " | ")+" |")
	}
	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}
