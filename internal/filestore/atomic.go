package filestore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// blob is the raw byte storage behind one collection document.
// read returns an error wrapping fs.ErrNotExist when nothing has been written yet.
type blob interface {
	read() ([]byte, error)
	write(data []byte) error
	String() string
}

type fileBlob struct {
	path string
}

func (b fileBlob) read() ([]byte, error) {
	return os.ReadFile(b.path)
}

func (b fileBlob) write(data []byte) error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	return writeFileAtomic(b.path, data)
}

func (b fileBlob) String() string {
	return b.path
}

// memBlob keeps the encoded document in memory. Contents are lost on restart.
type memBlob struct {
	mu   sync.Mutex
	name string
	data []byte
}

func (b *memBlob) read() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data == nil {
		return nil, fmt.Errorf("%s: %w", b.name, fs.ErrNotExist)
	}
	return append([]byte(nil), b.data...), nil
}

func (b *memBlob) write(data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = append([]byte(nil), data...)
	return nil
}

func (b *memBlob) String() string {
	return "memory:" + b.name
}

// writeFileAtomic replaces path with data so readers see either the old or the new document.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
