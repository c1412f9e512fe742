package kvstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// File keeps every key in a single JSON object on disk. Each call re-reads the
// file so separate processes see each other's writes; an advisory lock on
// <path>.lock serializes them.
type File struct {
	path string
	lock *flock.Flock
}

func NewFile(path string) *File {
	return &File{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

// Path returns the backing file.
func (f *File) Path() string {
	return f.path
}

func (f *File) Get(key string) (string, bool, error) {
	if err := f.ensureDir(); err != nil {
		return "", false, err
	}
	if err := f.lock.RLock(); err != nil {
		return "", false, fmt.Errorf("locking store: %w", err)
	}
	defer func() { _ = f.lock.Unlock() }()

	items, err := f.read()
	if err != nil {
		return "", false, err
	}
	v, ok := items[key]
	return v, ok, nil
}

func (f *File) Set(key, value string) error {
	return f.update(func(items map[string]string) {
		items[key] = value
	})
}

func (f *File) Remove(key string) error {
	return f.update(func(items map[string]string) {
		delete(items, key)
	})
}

func (f *File) update(fn func(map[string]string)) error {
	if err := f.ensureDir(); err != nil {
		return err
	}
	if err := f.lock.Lock(); err != nil {
		return fmt.Errorf("locking store: %w", err)
	}
	defer func() { _ = f.lock.Unlock() }()

	items, err := f.read()
	if err != nil {
		return err
	}
	fn(items)
	return f.write(items)
}

func (f *File) ensureDir() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("creating store dir: %w", err)
	}
	return nil
}

func (f *File) read() (map[string]string, error) {
	// #nosec G304 -- path is controlled by the app config location
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading store: %w", err)
	}
	items := map[string]string{}
	if len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing store %s: %w", f.path, err)
	}
	if items == nil {
		items = map[string]string{}
	}
	return items, nil
}

func (f *File) write(items map[string]string) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("writing store: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing store: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing store: %w", err)
	}
	return nil
}
