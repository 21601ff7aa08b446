package note

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Noter is what the HTTP layer talks to.
type Noter interface {
	// CreateNote stores the request under a fresh identifier and returns
	// the identifier. Uniqueness rests on the collision odds of random
	// identifiers; there is no existence check.
	CreateNote(ctx context.Context, req *CreateNoteRequest) (string, error)
	// UpsertNote creates or fully overwrites the note under id.
	UpsertNote(ctx context.Context, id string, req *CreateNoteRequest) error
	// GetNote returns the note under id, ErrNotFound when absent.
	GetNote(ctx context.Context, id string) (*Note, error)
	// NoteList returns every stored note.
	NoteList(ctx context.Context) (Notes, error)
}

type note struct {
	backends *Selector
}

// NewWithSelector creates a Noter resolving its backend through the
// given selector on every call.
func NewWithSelector(backends *Selector) Noter {
	return &note{backends: backends}
}

func (nr *note) CreateNote(ctx context.Context, req *CreateNoteRequest) (string, error) {
	b, err := nr.backends.Backend(ctx)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	if err := b.Set(ctx, id, req); err != nil {
		return "", err
	}
	return id, nil
}

func (nr *note) UpsertNote(ctx context.Context, id string, req *CreateNoteRequest) error {
	b, err := nr.backends.Backend(ctx)
	if err != nil {
		return err
	}
	return b.Set(ctx, id, req)
}

func (nr *note) GetNote(ctx context.Context, id string) (*Note, error) {
	b, err := nr.backends.Backend(ctx)
	if err != nil {
		return nil, err
	}
	return b.Get(ctx, id)
}

func (nr *note) NoteList(ctx context.Context) (Notes, error) {
	b, err := nr.backends.Backend(ctx)
	if err != nil {
		return nil, err
	}
	keys, err := b.Keys(ctx)
	if err != nil {
		return nil, err
	}
	notes := make(Notes, 0, len(keys))
	for _, id := range keys {
		n, err := b.Get(ctx, id)
		if errors.Is(err, ErrNotFound) {
			// expired between the listing and the read
			continue
		}
		if err != nil {
			return nil, err
		}
		notes = append(notes, *n)
	}
	return notes, nil
}
