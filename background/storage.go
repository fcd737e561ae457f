package background

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrFileNotFound is returned when a file cannot be found on a StorageDisk.
	ErrFileNotFound = errors.New("file not found")
)

// StorageDisk is a disk that generated images are written to.
type StorageDisk interface {
	// Put writes a file to the specified path, replacing any existing file.
	Put(context.Context, string, []byte) error

	// Get returns the contents of the file at the specified path or
	// ErrFileNotFound if the file does not exist.
	Get(context.Context, string) ([]byte, error)
}

type memoryDisk struct {
	mux   sync.RWMutex
	files map[string][]byte
}

// MemoryDisk returns an in-memory StorageDisk.
func MemoryDisk() StorageDisk {
	return &memoryDisk{
		files: make(map[string][]byte),
	}
}

func (d *memoryDisk) Put(_ context.Context, path string, b []byte) error {
	d.mux.Lock()
	defer d.mux.Unlock()
	d.files[path] = append([]byte(nil), b...)
	return nil
}

func (d *memoryDisk) Get(_ context.Context, path string) ([]byte, error) {
	d.mux.RLock()
	defer d.mux.RUnlock()
	if b, ok := d.files[path]; ok {
		out := make([]byte, len(b))
		copy(out, b)
		return out, nil
	}
	return nil, ErrFileNotFound
}

type fileDisk struct {
	perm fs.FileMode
}

// FileDisk returns a StorageDisk that uses paths as paths of the local
// filesystem. Put creates missing directories and replaces files atomically
// by writing to a temporary file in the target directory first.
func FileDisk() StorageDisk {
	return &fileDisk{perm: 0o644}
}

func (d *fileDisk) Put(_ context.Context, path string, b []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", dir, err)
	}

	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.New()))
	if err := os.WriteFile(tmp, b, d.perm); err != nil {
		return fmt.Errorf("write %q: %w", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename %q to %q: %w", tmp, path, err)
	}

	return nil
}

func (d *fileDisk) Get(_ context.Context, path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrFileNotFound
	}
	return b, err
}
