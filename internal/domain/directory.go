package domain

import "context"

// SavedHost is a directory entry for a person who receives visitors. Names
// are unique case-insensitively.
// swagger:model SavedHost
type SavedHost struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SavedVisitor is a directory entry for a recurring visitor. Names are unique
// case-insensitively.
// swagger:model SavedVisitor
type SavedVisitor struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email,omitempty"`
}

// SavedHostRepository defines storage operations for saved hosts.
type SavedHostRepository interface {
	List(ctx context.Context) ([]*SavedHost, error)
	Append(ctx context.Context, h *SavedHost) error
	Update(ctx context.Context, h *SavedHost) error
	Delete(ctx context.Context, id string) error
}

// SavedVisitorRepository defines storage operations for saved visitors.
type SavedVisitorRepository interface {
	List(ctx context.Context) ([]*SavedVisitor, error)
	Append(ctx context.Context, v *SavedVisitor) error
	Update(ctx context.Context, v *SavedVisitor) error
	Delete(ctx context.Context, id string) error
}

// VisitorDraft is a partially filled booking form. The directory service
// fills empty fields from a saved visitor matching the name; values the user
// already typed are never overwritten.
type VisitorDraft struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email,omitempty"`
}

// DirectoryService derives the lookup lists used for autocomplete and
// auto-fill. It only reads the saved collections, never mutates them.
type DirectoryService interface {
	// KnownHosts returns all saved hosts sorted ascending by name under a
	// locale-aware compare. The sort is stable.
	KnownHosts(ctx context.Context) ([]*SavedHost, error)
	// KnownVisitors returns all saved visitors, same ordering contract.
	KnownVisitors(ctx context.Context) ([]*SavedVisitor, error)
	// Autofill fills the draft's empty company and email fields from the
	// saved visitor whose name matches case-insensitively, if any.
	Autofill(ctx context.Context, draft VisitorDraft) (VisitorDraft, error)
}

// SavedVisitorInput holds the fields for explicit saved-visitor creation.
// Name and Company are required.
type SavedVisitorInput struct {
	Name    string
	Company string
	Email   string
}

// SavedHostUpdate is an explicit partial update over a SavedHost.
type SavedHostUpdate struct {
	Name *string
}

// SavedVisitorUpdate is an explicit partial update over a SavedVisitor.
type SavedVisitorUpdate struct {
	Name    *string
	Company *string
	Email   *string
}

// RegistryService manages the saved-host and saved-visitor directories
// through the admin surface. Name uniqueness is case-insensitive throughout.
type RegistryService interface {
	// AddHost creates a saved host. Idempotent on name collision: the
	// existing record is returned and created is false.
	AddHost(ctx context.Context, name string) (h *SavedHost, created bool, err error)
	UpdateHost(ctx context.Context, id string, update SavedHostUpdate) (*SavedHost, error)
	DeleteHost(ctx context.Context, id string) error

	// AddVisitor creates a saved visitor. On name collision the newer record
	// replaces the older one in place (overwrite, not reject).
	AddVisitor(ctx context.Context, in SavedVisitorInput) (*SavedVisitor, error)
	UpdateVisitor(ctx context.Context, id string, update SavedVisitorUpdate) (*SavedVisitor, error)
	DeleteVisitor(ctx context.Context, id string) error
}
