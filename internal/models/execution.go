package models

import "strings"

type Language string

const (
	LangJavaScript Language = "javascript"
	LangPython     Language = "python"
	LangCPP        Language = "c_cpp"
)

// DefaultLanguage is selected when a playground opens.
const DefaultLanguage = LangCPP

func SupportedLanguagesList() []string {
	return []string{string(LangJavaScript), string(LangPython), string(LangCPP)}
}

func IsSupportedLanguage(lang Language) bool {
	for _, l := range SupportedLanguagesList() {
		if string(lang) == l {
			return true
		}
	}
	return false
}

// NormalizedTestCase is the shape the execution service expects.
type NormalizedTestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expectedOutput"`
}

type ExecuteRequest struct {
	Language  Language             `json:"language"`
	Code      string               `json:"code"`
	TestCases []NormalizedTestCase `json:"testCases"`
}

// Verdict is one positional result from the execution service.
type Verdict struct {
	Input          string `json:"input,omitempty"`
	ExpectedOutput string `json:"expectedOutput,omitempty"`
	ActualOutput   string `json:"actualOutput,omitempty"`
	Status         string `json:"status"`
}

const (
	StatusAccepted = "Accepted"
	StatusError    = "Error"
)

// Passing reports whether the status contains "Accepted". Matching is case sensitive.
func (v Verdict) Passing() bool {
	return strings.Contains(v.Status, StatusAccepted)
}
