package note

import "context"

// Backend is the capability contract implemented by every storage
// variant. Implementations must be safe for concurrent use.
type Backend interface {
	Name() string
	// Get returns the note stored under id, ErrNotFound when absent.
	Get(ctx context.Context, id string) (*Note, error)
	// Set creates the note under id or fully overwrites an existing one.
	Set(ctx context.Context, id string, req *CreateNoteRequest) error
	// Keys returns every known identifier, in unspecified order.
	Keys(ctx context.Context) ([]string, error)
}
