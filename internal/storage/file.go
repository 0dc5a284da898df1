package storage

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rohanthewiz/serr"
)

// FileStore is a CredentialStore persisted as a small JSON object on disk.
// Every write rewrites the whole file through a temp file and rename.
type FileStore struct {
	path string
	mu   sync.Mutex
	data map[string]string
}

// OpenFileStore loads path if it exists. A missing file is an empty store.
func OpenFileStore(path string) (*FileStore, error) {
	fst := &FileStore{path: path, data: map[string]string{}}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fst, nil
	}
	if err != nil {
		return nil, serr.Wrap(err, "failed to read credential file")
	}
	if len(raw) == 0 {
		return fst, nil
	}
	if err := json.Unmarshal(raw, &fst.data); err != nil {
		return nil, serr.Wrap(err, "failed to decode credential file")
	}
	return fst, nil
}

func (f *FileStore) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	return v, ok
}

func (f *FileStore) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	prev, had := f.data[key]
	f.data[key] = value
	if err := f.flush(); err != nil {
		if had {
			f.data[key] = prev
		} else {
			delete(f.data, key)
		}
		return err
	}
	return nil
}

func (f *FileStore) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	prev, had := f.data[key]
	if !had {
		return nil
	}
	delete(f.data, key)
	if err := f.flush(); err != nil {
		f.data[key] = prev
		return err
	}
	return nil
}

// flush must be called with mu held.
func (f *FileStore) flush() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return serr.Wrap(err, "failed to create credential dir")
	}

	raw, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return serr.Wrap(err, "failed to encode credentials")
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".credentials-*")
	if err != nil {
		return serr.Wrap(err, "failed to create temp credential file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return serr.Wrap(err, "failed to write credentials")
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return serr.Wrap(err, "failed to chmod credential file")
	}
	if err := tmp.Close(); err != nil {
		return serr.Wrap(err, "failed to close credential file")
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return serr.Wrap(err, "failed to replace credential file")
	}
	return nil
}
