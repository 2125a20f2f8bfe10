package domain

import (
	"context"
	"time"
)

// LogAction identifies the lifecycle transition an audit entry records.
type LogAction string

const (
	ActionRegistered LogAction = "registered"
	ActionCheckIn    LogAction = "check-in"
	ActionCheckOut   LogAction = "check-out"
)

// LogEntry is an immutable audit record of a lifecycle transition. Visitor
// name, company and host are denormalized snapshots taken at the time of the
// action so the log stays readable even if the visitor is later edited.
// swagger:model LogEntry
type LogEntry struct {
	ID          string    `json:"id"`
	VisitorID   string    `json:"visitor_id"`
	VisitorName string    `json:"visitor_name"`
	Company     string    `json:"company"`
	Host        string    `json:"host"`
	Action      LogAction `json:"action"`
	Timestamp   time.Time `json:"timestamp"`
}

// LogRepository defines storage operations for the audit log. The log is
// append-only and kept newest-first: Prepend inserts at the head and List
// returns entries in stored order.
type LogRepository interface {
	List(ctx context.Context) ([]*LogEntry, error)
	Prepend(ctx context.Context, e *LogEntry) error
}
