package repository

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"clinic-manager/pkg/apperror"
)

// codeUniqueViolation is the structured code a server may send instead of
// a raw constraint message.
const codeUniqueViolation = "unique_violation"

var (
	sqliteUniquePattern   = regexp.MustCompile(`UNIQUE constraint failed: \w+\.(\w+)`)
	postgresUniquePattern = regexp.MustCompile(`duplicate key value violates unique constraint "([^"]+)"`)

	// uniqueFields are the columns the API declares unique.
	uniqueFields = []string{"email", "phone"}
)

type errorEnvelope struct {
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Field   string          `json:"field"`
	Error   json.RawMessage `json:"error"`
}

type issueList struct {
	Issues []struct {
		Path    []any  `json:"path"`
		Message string `json:"message"`
	} `json:"issues"`
}

// classifyResponse turns a non-2xx response into an *apperror.Error. The
// uniqueness check runs first because the API reports constraint failures
// with varying status codes.
func classifyResponse(op string, status int, body []byte) *apperror.Error {
	var env errorEnvelope
	_ = json.Unmarshal(body, &env)

	issues := decodeIssues(env.Error)
	message := env.Message
	if message == "" {
		var s string
		if json.Unmarshal(env.Error, &s) == nil {
			message = s
		}
	}
	if message == "" && len(issues) == 0 && len(body) > 0 && !json.Valid(body) {
		message = strings.TrimSpace(string(body))
	}

	appErr := &apperror.Error{
		Op:      op,
		Status:  status,
		Message: message,
		Issues:  issues,
	}

	if field, ok := uniqueViolationField(env); ok {
		appErr.Kind = apperror.KindUniqueViolation
		appErr.Field = field
		return appErr
	}

	switch {
	case status == http.StatusUnprocessableEntity:
		appErr.Kind = apperror.KindValidation
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		appErr.Kind = apperror.KindUnauthenticated
	case status == http.StatusNotFound:
		appErr.Kind = apperror.KindNotFound
	default:
		appErr.Kind = apperror.KindUnexpected
	}
	return appErr
}

func decodeIssues(raw json.RawMessage) []apperror.Issue {
	if len(raw) == 0 {
		return nil
	}
	var list issueList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}

	issues := make([]apperror.Issue, 0, len(list.Issues))
	for _, issue := range list.Issues {
		field := ""
		if len(issue.Path) > 0 {
			field = fmt.Sprint(issue.Path[0])
		}
		issues = append(issues, apperror.Issue{Field: field, Message: issue.Message})
	}
	return issues
}

func uniqueViolationField(env errorEnvelope) (string, bool) {
	if env.Code == codeUniqueViolation && env.Field != "" {
		return env.Field, true
	}
	if m := sqliteUniquePattern.FindStringSubmatch(env.Message); m != nil {
		return m[1], true
	}
	if m := postgresUniquePattern.FindStringSubmatch(env.Message); m != nil {
		constraint := strings.ToLower(m[1])
		for _, field := range uniqueFields {
			if strings.Contains(constraint, field) {
				return field, true
			}
		}
		return constraint, true
	}
	return "", false
}
