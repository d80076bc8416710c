package playground

import "interviewdeck/internal/models"

// NormalizeTestCases prefers testCases over examples. A present but empty
// testCases list still wins. Expected output falls back to output, then "".
func NormalizeTestCases(q models.Question) []models.NormalizedTestCase {
	if q.TestCases != nil {
		out := make([]models.NormalizedTestCase, len(q.TestCases))
		for i, tc := range q.TestCases {
			expected := tc.ExpectedOutput
			if expected == "" {
				expected = tc.Output
			}
			out[i] = models.NormalizedTestCase{Input: tc.Input, ExpectedOutput: expected}
		}
		return out
	}

	out := make([]models.NormalizedTestCase, len(q.Examples))
	for i, ex := range q.Examples {
		out[i] = models.NormalizedTestCase{Input: ex.Input, ExpectedOutput: ex.Output}
	}
	return out
}
