package models

// uniform error payload
type ErrorResponse struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Details []ValidationErrorDetail `json:"details,omitempty"`
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

// a single field error
type ValidationErrorDetail struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// SearchResponse is returned by POST /search.
type SearchResponse struct {
	Company    string  `json:"company"`
	Filters    Filters `json:"filters"`
	Dispatched bool    `json:"dispatched"`
	NoResults  bool    `json:"noResults"`
	Total      int     `json:"total"`
	Error      string  `json:"error,omitempty"`
}

// QuestionItem is a question as rendered in the result list.
type QuestionItem struct {
	Index      int        `json:"index"`
	ID         QuestionID `json:"id"`
	Key        string     `json:"key"`
	Title      string     `json:"title"`
	Topic      string     `json:"topic"`
	Difficulty Difficulty `json:"difficulty"`
	Type       string     `json:"type,omitempty"`
	Year       string     `json:"year,omitempty"`
	Link       string     `json:"link,omitempty"`
	Ticked     bool       `json:"ticked"`
	Playground string     `json:"playground"`
}

type QuestionsResponse struct {
	Company   string         `json:"company"`
	NoResults bool           `json:"noResults"`
	Total     int            `json:"total"`
	Solved    int            `json:"solved"`
	Items     []QuestionItem `json:"items"`
}

type TickResponse struct {
	Key    string `json:"key"`
	Ticked bool   `json:"ticked"`
}

type VerdictItem struct {
	Verdict
	Passing bool `json:"passing"`
}

// RunResponse carries the verdict set of the latest applied run.
type RunResponse struct {
	RunID      uint64        `json:"runId"`
	State      string        `json:"state"`
	Superseded bool          `json:"superseded,omitempty"`
	Passed     int           `json:"passed"`
	Total      int           `json:"total"`
	Verdicts   []VerdictItem `json:"verdicts"`
}

type PlaygroundResponse struct {
	Question   Question      `json:"question"`
	Difficulty Difficulty    `json:"difficulty"`
	Language   Language      `json:"language"`
	Code       string        `json:"code"`
	State      string        `json:"state"`
	TestCases  int           `json:"testCases"`
	Year       string        `json:"year"`
	Verdicts   []VerdictItem `json:"verdicts"`
}
