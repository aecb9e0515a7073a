// Package storage keeps generated files, such as evaluation reports, grouped
// in named collections.
package storage

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a file ID is unknown in a collection.
var ErrNotFound = errors.New("file not found")

// FileInfo contains metadata about a stored file
type FileInfo struct {
	ID          uuid.UUID `json:"id"`
	Collection  string    `json:"collection"`
	Name        string    `json:"name"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	Path        string    `json:"path"` // relative to the collection directory
	CreatedAt   time.Time `json:"created_at"`
}

// Storage defines the interface for file storage operations
type Storage interface {
	// Put stores a file and returns its metadata
	Put(ctx context.Context, collection, filename, contentType string, r io.Reader) (*FileInfo, error)

	// Open returns a reader for a stored file
	Open(ctx context.Context, collection string, fileID uuid.UUID) (io.ReadCloser, *FileInfo, error)

	// List returns the files of a collection, newest first
	List(ctx context.Context, collection string) ([]*FileInfo, error)

	// Delete removes a file
	Delete(ctx context.Context, collection string, fileID uuid.UUID) error
}

// Prune deletes all but the newest keep files of a collection and returns
// how many were removed.
func Prune(ctx context.Context, s Storage, collection string, keep int) (int, error) {
	files, err := s.List(ctx, collection)
	if err != nil {
		return 0, err
	}
	if keep < 0 {
		keep = 0
	}

	removed := 0
	for i := keep; i < len(files); i++ {
		if err := s.Delete(ctx, collection, files[i].ID); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
