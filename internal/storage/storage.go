package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"
)

//go:generate mockgen -source=storage.go -destination=../mocks/storage_mocks.go -package=mocks

// ImageStore persists uploaded listing images under generated names.
// Open and Delete return apperrors.ErrImageNotFound for unknown names.
type ImageStore interface {
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Delete(ctx context.Context, name string) error
}

// cleanBaseName reduces a client supplied file name to a safe base name
func cleanBaseName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	base := filepath.Base(name)
	base = strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == 0:
			return -1
		case r < 0x20:
			return '_'
		}
		return r
	}, base)
	if base == "." || base == ".." || base == "" {
		return "image"
	}
	return base
}

// validName reports whether name is a single path element we could have generated
func validName(name string) bool {
	return name != "" && name != "." && name != ".." &&
		!strings.ContainsAny(name, "/\\\x00")
}
