package domain

import "strings"

type Status string

const (
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"

	errorStatusPrefix = "error: "
)

func ErrorStatus(err error) Status {
	return Status(errorStatusPrefix + err.Error())
}

func (s Status) IsError() bool {
	return strings.HasPrefix(string(s), errorStatusPrefix)
}

// Class collapses "error: <detail>" statuses into a single "error" value.
func (s Status) Class() string {
	if s.IsError() {
		return "error"
	}

	return string(s)
}
