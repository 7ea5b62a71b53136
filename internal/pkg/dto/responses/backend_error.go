package responses

import (
	"strconv"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

const IssueCodeInvalidUnion = "invalid_union"

// BackendErrorBody is the body the records backend sends with a 4xx/5xx.
// Error is either a plain message or a list of validation issues.
type BackendErrorBody struct {
	Error json.RawMessage `json:"error"`
}

type ValidationIssue struct {
	Code        string       `json:"code"`
	Message     string       `json:"message"`
	Path        IssuePath    `json:"path"`
	UnionErrors []UnionError `json:"unionErrors,omitempty"`
}

// UnionError is the failure of one candidate schema of a union.
type UnionError struct {
	Name   string            `json:"name,omitempty"`
	Issues []ValidationIssue `json:"issues"`
}

// IssuePath holds the field path of an issue. Array indexes are kept as
// their decimal string.
type IssuePath []string

func (p *IssuePath) UnmarshalJSON(data []byte) error {
	var segments []interface{}
	if err := json.Unmarshal(data, &segments); err != nil {
		return err
	}

	path := make(IssuePath, 0, len(segments))
	for _, segment := range segments {
		switch v := segment.(type) {
		case string:
			path = append(path, v)
		case float64:
			path = append(path, strconv.FormatFloat(v, 'f', -1, 64))
		default:
			path = append(path, "")
		}
	}
	*p = path
	return nil
}

// Head returns the leading path segment, or "" for an empty path.
func (p IssuePath) Head() string {
	if len(p) == 0 {
		return ""
	}
	return p[0]
}

// Decode splits the error field into issues or a message. A body that is
// neither yields empty results. An issue that carries an empty unionErrors
// list keeps it non-nil so callers can tell it apart from an absent one.
func (b BackendErrorBody) Decode() (issues []ValidationIssue, message string) {
	errorField := gjson.ParseBytes(b.Error)
	switch {
	case errorField.IsArray():
		if err := json.Unmarshal(b.Error, &issues); err != nil {
			return nil, ""
		}
		for i := range issues {
			if issues[i].UnionErrors == nil && errorField.Get(strconv.Itoa(i)+".unionErrors").IsArray() {
				issues[i].UnionErrors = []UnionError{}
			}
		}
		return issues, ""
	case errorField.Type == gjson.String:
		return nil, errorField.String()
	}
	return nil, ""
}
