package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	apperrors "house-rental-backend/internal/errors"

	"github.com/google/uuid"
)

// DiskStore keeps images in a directory, named <unix-millis>-<basename>
type DiskStore struct {
	dir string
	now func() time.Time
}

// NewDiskStore creates dir if needed and returns a store rooted there
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir, now: time.Now}, nil
}

// Save writes r to a new file. Existing files are never overwritten: on a name
// collision the name gets a uuid prefix instead.
func (s *DiskStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	base := cleanBaseName(originalName)
	name := strconv.FormatInt(s.now().UnixMilli(), 10) + "-" + base

	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		name = uuid.NewString() + "-" + name
		f, err = os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	}
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("write image file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("close image file: %w", err)
	}
	return name, nil
}

// Open opens a stored image for reading
func (s *DiskStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if !validName(name) {
		return nil, apperrors.ErrImageNotFound
	}
	f, err := os.Open(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, apperrors.ErrImageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("open image file: %w", err)
	}
	if info, err := f.Stat(); err == nil && info.IsDir() {
		_ = f.Close()
		return nil, apperrors.ErrImageNotFound
	}
	return f, nil
}

// Delete removes a stored image
func (s *DiskStore) Delete(ctx context.Context, name string) error {
	if !validName(name) {
		return apperrors.ErrImageNotFound
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return apperrors.ErrImageNotFound
	}
	return err
}
