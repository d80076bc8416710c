package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"interviewdeck/internal/models"
)

const problemsPath = "/api/problems"

type SearchClient struct {
	client  *http.Client
	baseURL string
}

func NewSearchClient(client *http.Client, baseURL string) *SearchClient {
	return &SearchClient{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

// FetchQuestions issues a single GET against the search service. Only non-empty
// filters are sent.
func (c *SearchClient) FetchQuestions(ctx context.Context, company string, filters models.Filters) ([]models.Question, error) {
	params := url.Values{}
	params.Set("company", company)
	for _, p := range filters.QueryParams() {
		params.Set(p[0], p[1])
	}
	endpoint := c.baseURL + problemsPath + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call search service: %w", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, fmt.Errorf("search service returned status %d: %w", resp.StatusCode, ErrUpstreamStatus)
	}

	var questions []models.Question
	if err := json.NewDecoder(resp.Body).Decode(&questions); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	if questions == nil {
		questions = []models.Question{}
	}
	return questions, nil
}
