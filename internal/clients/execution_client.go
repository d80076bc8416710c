package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"interviewdeck/internal/models"
)

const executePath = "/api/execute"

type ExecutionClient struct {
	client  *http.Client
	baseURL string
}

func NewExecutionClient(client *http.Client, baseURL string) *ExecutionClient {
	return &ExecutionClient{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

// Execute submits every test case in one request. The returned verdicts are in
// the order the service produced them.
func (c *ExecutionClient) Execute(ctx context.Context, run models.ExecuteRequest) ([]models.Verdict, error) {
	if run.TestCases == nil {
		run.TestCases = []models.NormalizedTestCase{}
	}
	body, err := json.Marshal(run)
	if err != nil {
		return nil, fmt.Errorf("failed to encode execute request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+executePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build execute request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call execution service: %w", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, fmt.Errorf("execution service returned status %d: %w", resp.StatusCode, ErrUpstreamStatus)
	}

	var verdicts []models.Verdict
	if err := json.NewDecoder(resp.Body).Decode(&verdicts); err != nil {
		return nil, fmt.Errorf("failed to decode execute response: %w", err)
	}
	if verdicts == nil {
		verdicts = []models.Verdict{}
	}
	return verdicts, nil
}
