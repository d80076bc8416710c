package models

import "strings"

type SearchRequest struct {
	Company string  `json:"company" validate:"max=200"`
	Filters Filters `json:"filters"`
}

// An empty company is not rejected here; the dispatcher treats it as a no-op.
func (r *SearchRequest) Validate() error {
	r.Company = strings.TrimSpace(r.Company)
	return validateStruct(r)
}

type SelectQuestionRequest struct {
	Index *int `json:"index" validate:"required,min=0"`
}

func (r *SelectQuestionRequest) Validate() error {
	return validateStruct(r)
}

type LanguageRequest struct {
	Language Language `json:"language" validate:"required"`
}

func (r *LanguageRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if !IsSupportedLanguage(r.Language) {
		return &ErrorResponse{
			Code:    "unsupported_language",
			Message: "Language must be one of: " + strings.Join(SupportedLanguagesList(), ", "),
		}
	}
	return nil
}

type CodeRequest struct {
	Code string `json:"code" validate:"max=65536"`
}

func (r *CodeRequest) Validate() error {
	return validateStruct(r)
}
