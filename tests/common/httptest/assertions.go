//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Problem mirrors the error body written by the API.
type Problem struct {
	Status int                 `json:"status"`
	Title  string              `json:"title"`
	Detail string              `json:"detail"`
	Errors map[string][]string `json:"errors"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

// AssertErrorResponse checks the status and that the problem title contains expectedTitle.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedTitle string) Problem {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	var p Problem
	err := json.Unmarshal(w.Body.Bytes(), &p)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))
	assert.Equal(t, expectedStatus, p.Status, "problem status should match the HTTP status")

	if expectedTitle != "" {
		assert.Contains(t, p.Title, expectedTitle,
			"Response problem title doesn't contain expected text")
	}
	return p
}

// AssertValidationFields checks a 400 problem names exactly the given fields.
func AssertValidationFields(t *testing.T, w *httptest.ResponseRecorder, fields ...string) {
	t.Helper()

	p := AssertErrorResponse(t, w, 400, "validation")
	got := make([]string, 0, len(p.Errors))
	for f := range p.Errors {
		got = append(got, f)
	}
	assert.ElementsMatch(t, fields, got, "validation fields mismatch: %s", w.Body.String())
}
