package patients

import (
	"errors"
	"patientor-service/internal/pkg/constvars"
	"patientor-service/internal/pkg/dto/responses"
	"patientor-service/internal/pkg/exceptions"
	"strings"
)

const (
	issuePathType           = "type"
	preferredUnionCandidate = "HealthCheck"
)

// MapUnionValidationError turns an invalid_union rejection into one
// message per field issue of the most relevant candidate schema.
//
// The candidate is the first one with a type issue naming HealthCheck, or
// the first one with no type issue at all. Candidates for other entry
// types are never preferred by name. Only an absent candidate list is an
// unknown error; an empty one has no candidate to select.
func MapUnionValidationError(issue responses.ValidationIssue) []string {
	if issue.UnionErrors == nil {
		return []string{constvars.ErrClientUnknownValidationError}
	}

	candidate, ok := selectUnionCandidate(issue.UnionErrors)
	if !ok {
		return []string{constvars.ErrClientInvalidHealthCheckInput}
	}

	messages := make([]string, 0, len(candidate.Issues))
	for _, fieldIssue := range candidate.Issues {
		if message, ok := constvars.EntryFieldMessages[fieldIssue.Path.Head()]; ok {
			messages = append(messages, message)
			continue
		}
		messages = append(messages, fieldIssue.Message)
	}
	return messages
}

func selectUnionCandidate(candidates []responses.UnionError) (responses.UnionError, bool) {
	for _, candidate := range candidates {
		if namesPreferredType(candidate) || !touchesType(candidate) {
			return candidate, true
		}
	}
	return responses.UnionError{}, false
}

func namesPreferredType(candidate responses.UnionError) bool {
	for _, issue := range candidate.Issues {
		if issue.Path.Head() == issuePathType && strings.Contains(issue.Message, preferredUnionCandidate) {
			return true
		}
	}
	return false
}

func touchesType(candidate responses.UnionError) bool {
	for _, issue := range candidate.Issues {
		if issue.Path.Head() == issuePathType {
			return true
		}
	}
	return false
}

// MapPageError converts a collaborator failure into the messages shown on
// the page. fallback is used for backend rejections that carry no message;
// failures that never reached the backend all read as unexpected.
func MapPageError(err error, fallback string) []string {
	if err == nil {
		return nil
	}

	var backendErr *exceptions.BackendError
	if errors.As(err, &backendErr) {
		if issue, ok := backendErr.UnionIssue(); ok {
			return MapUnionValidationError(issue)
		}
		if message := backendErr.RawMessage(); message != "" {
			return []string{message}
		}
		return []string{fallback}
	}
	return []string{constvars.ErrClientUnexpected}
}
