package storage

import (
	"context"
	"errors"
	"io"
)

var ErrNotFound = errors.New("staged upload not found")

// TempStore stages uploaded files until they are read back and removed.
type TempStore interface {
	Save(ctx context.Context, r io.Reader) (string, error)
	Read(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
