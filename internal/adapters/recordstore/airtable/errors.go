package airtable

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/SscSPs/pto_ledger_service/internal/apperrors"
)

// StatusError is a non-2xx answer from the API.
type StatusError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("airtable: HTTP %d %s", e.StatusCode, e.Type)
	}
	return fmt.Sprintf("airtable: HTTP %d %s: %s", e.StatusCode, e.Type, e.Message)
}

// Unwrap maps well-known statuses onto the application's sentinel errors.
func (e *StatusError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return apperrors.ErrNotFound
	case http.StatusUnprocessableEntity:
		return apperrors.ErrValidation
	default:
		return nil
	}
}

// the API answers either {"error": {"type", "message"}} or {"error": "TYPE"}
type errorBody struct {
	Error json.RawMessage `json:"error"`
}

type errorDetail struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func decodeStatusError(status int, body []byte) *StatusError {
	se := &StatusError{StatusCode: status, Type: http.StatusText(status)}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Error) == 0 {
		return se
	}
	var detail errorDetail
	if err := json.Unmarshal(eb.Error, &detail); err == nil {
		if detail.Type != "" {
			se.Type = detail.Type
		}
		se.Message = detail.Message
		return se
	}
	var code string
	if err := json.Unmarshal(eb.Error, &code); err == nil && code != "" {
		se.Type = code
	}
	return se
}
