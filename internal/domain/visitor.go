package domain

import (
	"context"
	"time"
)

// VisitorStatus is the lifecycle state of a visitor record.
type VisitorStatus string

const (
	StatusBooked     VisitorStatus = "booked"
	StatusCheckedIn  VisitorStatus = "checked-in"
	StatusCheckedOut VisitorStatus = "checked-out"
)

// Valid reports whether s is one of the known lifecycle states.
func (s VisitorStatus) Valid() bool {
	switch s {
	case StatusBooked, StatusCheckedIn, StatusCheckedOut:
		return true
	}
	return false
}

// Language is the visitor's preferred kiosk language.
type Language string

const (
	LanguageSwedish Language = "sv"
	LanguageEnglish Language = "en"
)

// Valid reports whether l is a supported language.
func (l Language) Valid() bool {
	return l == LanguageSwedish || l == LanguageEnglish
}

// Visitor represents a booked or walked-in attendee. The id is assigned on
// creation and never changes; checked-out is a terminal state.
// swagger:model Visitor
type Visitor struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Company         string        `json:"company"`
	Host            string        `json:"host"`
	Email           string        `json:"email,omitempty"`
	Phone           string        `json:"phone,omitempty"`
	PreBooked       bool          `json:"pre_booked"`
	Status          VisitorStatus `json:"status"`
	Language        Language      `json:"language"`
	ExpectedArrival *time.Time    `json:"expected_arrival,omitempty"`
	CheckInTime     *time.Time    `json:"check_in_time,omitempty"`
	CheckOutTime    *time.Time    `json:"check_out_time,omitempty"`
}

// Booking holds the fields for an admin pre-booking. Name, Company and Host
// are required. ExpectedArrival defaults to the booking time and Language to
// Swedish when unset.
type Booking struct {
	Name            string
	Company         string
	Host            string
	Email           string
	Phone           string
	ExpectedArrival *time.Time
	Language        Language
}

// WalkIn holds the fields for a kiosk walk-in registration. Name, Company and
// Host are required; Language is the kiosk selection at registration time.
type WalkIn struct {
	Name     string
	Company  string
	Host     string
	Email    string
	Phone    string
	Language Language
}

// VisitorUpdate is an explicit partial update over a Visitor. Nil fields are
// left untouched. Status and timestamps are owned by the lifecycle engine and
// cannot be set through an update.
type VisitorUpdate struct {
	Name            *string
	Company         *string
	Host            *string
	Email           *string
	Phone           *string
	ExpectedArrival *time.Time
	Language        *Language
}

// Apply overwrites the visitor's fields with the non-nil values of u.
func (u VisitorUpdate) Apply(v *Visitor) {
	if u.Name != nil {
		v.Name = *u.Name
	}
	if u.Company != nil {
		v.Company = *u.Company
	}
	if u.Host != nil {
		v.Host = *u.Host
	}
	if u.Email != nil {
		v.Email = *u.Email
	}
	if u.Phone != nil {
		v.Phone = *u.Phone
	}
	if u.ExpectedArrival != nil {
		t := *u.ExpectedArrival
		v.ExpectedArrival = &t
	}
	if u.Language != nil {
		v.Language = *u.Language
	}
}

// VisitorRepository defines storage operations for visitor records. List
// returns records in insertion order.
type VisitorRepository interface {
	List(ctx context.Context) ([]*Visitor, error)
	GetByID(ctx context.Context, id string) (*Visitor, error)
	Append(ctx context.Context, v *Visitor) error
	Update(ctx context.Context, v *Visitor) error
}

// VisitorService is the visitor lifecycle engine. It exclusively owns
// creation and mutation of visitor records, emits exactly one audit log entry
// per lifecycle transition, and learns new hosts and visitors into the saved
// directories on creation.
type VisitorService interface {
	// Book creates a pre-booked visitor (status booked) and appends a
	// "registered" log entry.
	Book(ctx context.Context, b Booking) (*Visitor, error)
	// WalkIn creates an immediately checked-in visitor and appends a
	// "check-in" log entry.
	WalkIn(ctx context.Context, w WalkIn) (*Visitor, error)
	// Edit overwrites fields of a visitor that is still booked. It does not
	// change status, emit a log entry, or re-trigger directory learning.
	Edit(ctx context.Context, id string, update VisitorUpdate) (*Visitor, error)
	// CheckIn transitions a booked visitor to checked-in, applying any detail
	// overrides in the same update. Re-entry from checked-in or checked-out
	// is rejected with ErrConflict.
	CheckIn(ctx context.Context, id string, overrides *VisitorUpdate) (*Visitor, error)
	// CheckOut transitions a checked-in visitor to checked-out.
	CheckOut(ctx context.Context, id string) (*Visitor, error)
	// List returns all visitors in insertion order.
	List(ctx context.Context) ([]*Visitor, error)
	// Search filters visitors by case-insensitive substring match on name,
	// scoped to the given status. Order follows the underlying collection.
	Search(ctx context.Context, query string, status VisitorStatus) ([]*Visitor, error)
	// AuditLog returns the audit log, newest first.
	AuditLog(ctx context.Context) ([]*LogEntry, error)
}
