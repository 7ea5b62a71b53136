package exceptions

import (
	"fmt"
	"patientor-service/internal/pkg/constvars"
	"patientor-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
)

// BackendError is a structured rejection sent by the records backend.
type BackendError struct {
	StatusCode int
	Resource   string
	Message    string
	Issues     []responses.ValidationIssue
	Location   Location
}

func (e *BackendError) Error() string {
	detail := e.Message
	if detail == "" && len(e.Issues) > 0 {
		detail = e.Issues[0].Message
	}
	return fmt.Sprintf("%s: %s (%s:%d %s)",
		fmt.Sprintf(constvars.ErrDevBackendRejected, e.Resource, e.StatusCode),
		detail, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

// UnionIssue returns the leading issue when it is a union rejection.
func (e *BackendError) UnionIssue() (responses.ValidationIssue, bool) {
	if len(e.Issues) > 0 && e.Issues[0].Code == responses.IssueCodeInvalidUnion {
		return e.Issues[0], true
	}
	return responses.ValidationIssue{}, false
}

// RawMessage is the message the backend attached, if any.
func (e *BackendError) RawMessage() string {
	if len(e.Issues) > 0 {
		return e.Issues[0].Message
	}
	return e.Message
}

// ErrBackendRejected decodes a non-2xx body. Bodies that are not the
// backend's error shape still produce a BackendError without message.
func ErrBackendRejected(statusCode int, resource string, body []byte) *BackendError {
	backendErr := &BackendError{
		StatusCode: statusCode,
		Resource:   resource,
		Location:   getLocation(2),
	}

	var errorBody responses.BackendErrorBody
	if err := json.Unmarshal(body, &errorBody); err == nil {
		backendErr.Issues, backendErr.Message = errorBody.Decode()
	}
	return backendErr
}
