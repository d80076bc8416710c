package playground

import (
	"embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"interviewdeck/internal/models"
)

//go:embed templates/starters.yaml
var templateFS embed.FS

var ErrUnsupportedLanguage = errors.New("unsupported language")

type LanguageSpec struct {
	ID      models.Language `yaml:"id" json:"id"`
	Name    string          `yaml:"name" json:"name"`
	Starter string          `yaml:"starter" json:"starter"`
}

type starterFile struct {
	Languages []LanguageSpec `yaml:"languages"`
}

// Starters holds the starter snippet for each supported language.
type Starters struct {
	ordered []LanguageSpec
	byID    map[models.Language]LanguageSpec
}

// LoadStarters parses the embedded starter file. Every supported language
// must be present.
func LoadStarters() (*Starters, error) {
	data, err := templateFS.ReadFile("templates/starters.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read starters: %w", err)
	}
	return parseStarters(data)
}

func parseStarters(data []byte) (*Starters, error) {
	var file starterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse starters: %w", err)
	}

	s := &Starters{byID: make(map[models.Language]LanguageSpec, len(file.Languages))}
	for _, spec := range file.Languages {
		if !models.IsSupportedLanguage(spec.ID) {
			return nil, fmt.Errorf("starter for %q: %w", spec.ID, ErrUnsupportedLanguage)
		}
		s.ordered = append(s.ordered, spec)
		s.byID[spec.ID] = spec
	}
	for _, lang := range models.SupportedLanguagesList() {
		if _, ok := s.byID[models.Language(lang)]; !ok {
			return nil, fmt.Errorf("missing starter for %s", lang)
		}
	}
	return s, nil
}

func (s *Starters) Starter(lang models.Language) (string, error) {
	spec, ok := s.byID[lang]
	if !ok {
		return "", fmt.Errorf("%s: %w", lang, ErrUnsupportedLanguage)
	}
	return spec.Starter, nil
}

func (s *Starters) Languages() []LanguageSpec {
	out := make([]LanguageSpec, len(s.ordered))
	copy(out, s.ordered)
	return out
}
