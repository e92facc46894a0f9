package entity

import "errors"

// Status is the task workflow state. The four values form an unordered set:
// any status may be changed to any other, there is no transition graph.
type Status string

const (
	StatusNotStarted Status = "NotStarted"
	StatusStarted    Status = "Started"
	StatusPending    Status = "Pending"
	StatusCompleted  Status = "Completed"
)

// ErrInvalidStatus rejects any status string outside the four labels.
var ErrInvalidStatus = errors.New("invalid status, use one of NotStarted, Started, Pending, Completed")

// ParseStatus matches raw against the status labels. Matching is case
// sensitive: "completed" is not a valid status.
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusNotStarted, StatusStarted, StatusPending, StatusCompleted:
		return Status(raw), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string { return string(s) }
