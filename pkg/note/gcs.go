package note

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

type gcsDB struct {
	bucket *storage.BucketHandle
}

// NewGCS creates the object-store backend, one object per note in the
// configured bucket. Credentials come from the standard application
// default lookup.
func NewGCS(ctx context.Context, bucket string) (Backend, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	return &gcsDB{bucket: client.Bucket(bucket)}, nil
}

func (g *gcsDB) Name() string {
	return "object-store"
}

func (g *gcsDB) Get(ctx context.Context, id string) (*Note, error) {
	r, err := g.bucket.Object(id).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: unable to read object %s: %v", ErrBackendUnavailable, id, err)
	}
	defer r.Close()

	vjs, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to read object %s: %v", ErrBackendUnavailable, id, err)
	}
	n, err := fromJSON(id, vjs)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed payload for object %s: %v", ErrBackendUnavailable, id, err)
	}
	return n, nil
}

func (g *gcsDB) Set(ctx context.Context, id string, req *CreateNoteRequest) error {
	value, err := toJSON(req)
	if err != nil {
		return err
	}
	w := g.bucket.Object(id).NewWriter(ctx)
	if _, err := w.Write(value); err != nil {
		w.Close()
		return fmt.Errorf("%w: unable to write object %s: %v", ErrBackendUnavailable, id, err)
	}
	// the upload is only committed on Close
	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: unable to write object %s: %v", ErrBackendUnavailable, id, err)
	}
	return nil
}

// Keys walks every object in the bucket, same unbounded caveat as the
// cache keyspace scan.
func (g *gcsDB) Keys(ctx context.Context) ([]string, error) {
	var ids []string
	it := g.bucket.Objects(ctx, nil)
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: unable to list objects: %v", ErrBackendUnavailable, err)
		}
		ids = append(ids, attrs.Name)
	}
	return ids, nil
}
