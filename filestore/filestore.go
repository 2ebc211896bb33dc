// Package filestore writes uploaded files to the file area under
// collision resistant names and serves them back by reference.
package filestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RefPrefix is the public path prefix of every stored reference.
const RefPrefix = "uploads"

var ErrNotFound = errors.New("file not found")

// Backend is the durable file area.
type Backend interface {
	Put(ctx context.Context, name string, content io.Reader) error
	Open(ctx context.Context, name string) (io.ReadSeekCloser, time.Time, error)
	Remove(ctx context.Context, name string) error
}

type File struct {
	Filename string // original name, only its extension is kept
	Content  io.Reader
}

type FileStore struct {
	backend Backend
	newName func(ext string) (string, error)
}

func New(backend Backend) *FileStore {
	return &FileStore{
		backend: backend,
		newName: newStorageName,
	}
}

// Store writes files in order and returns their references in the same
// order. If a write fails the files already written by this call are removed.
func (fs *FileStore) Store(ctx context.Context, files []File) ([]string, error) {
	refs := make([]string, 0, len(files))
	for _, f := range files {
		name, err := fs.newName(filepath.Ext(f.Filename))
		if err != nil {
			fs.rollback(ctx, refs)
			return nil, fmt.Errorf("failed to generate storage name: %w", err)
		}
		if err := fs.backend.Put(ctx, name, f.Content); err != nil {
			fs.rollback(ctx, refs)
			return nil, fmt.Errorf("failed to store %s: %w", name, err)
		}
		refs = append(refs, path.Join(RefPrefix, name))
	}
	return refs, nil
}

// Remove deletes previously stored references. All of them are attempted.
func (fs *FileStore) Remove(ctx context.Context, refs []string) error {
	var errs []error
	for _, ref := range refs {
		name, ok := nameFromRef(ref)
		if !ok {
			errs = append(errs, fmt.Errorf("not a stored reference: %q", ref))
			continue
		}
		if err := fs.backend.Remove(ctx, name); err != nil {
			errs = append(errs, fmt.Errorf("failed to remove %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

func (fs *FileStore) rollback(ctx context.Context, refs []string) {
	// best effort, the original error is what the caller reports
	_ = fs.Remove(ctx, refs)
}

// newStorageName combines a UUIDv7, which starts with a millisecond timestamp
// and is monotonic within the process, with the original extension.
func newStorageName(ext string) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String() + cleanExt(ext), nil
}

// cleanExt keeps only ASCII letters and digits after the dot.
func cleanExt(ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	var b strings.Builder
	for _, r := range ext {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "." + b.String()
}

func nameFromRef(ref string) (string, bool) {
	name, ok := strings.CutPrefix(ref, RefPrefix+"/")
	if !ok || !validName(name) {
		return "", false
	}
	return name, true
}

func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && !strings.Contains(name, "..")
}
