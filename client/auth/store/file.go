package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/viant/afs"
)

// FileStore persists values as a JSON object at an afs URL. Reads are served
// from memory; every mutation rewrites the whole file.
type FileStore struct {
	mu     sync.Mutex
	URL    string
	fs     afs.Service
	memory *memoryStore
}

// NewFileStore creates a Store persisted at URL, loading any existing content.
// A missing file yields an empty store.
func NewFileStore(URL string) (*FileStore, error) {
	ret := &FileStore{
		URL:    URL,
		fs:     afs.New(),
		memory: NewMemoryStore().(*memoryStore),
	}
	if err := ret.load(context.Background()); err != nil {
		return nil, err
	}
	return ret, nil
}

func (f *FileStore) Lookup(key string) (string, bool) {
	return f.memory.Lookup(key)
}

func (f *FileStore) Put(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	values := f.memory.snapshot()
	values[key] = value
	if err := f.save(context.Background(), values); err != nil {
		return err
	}
	return f.memory.Put(key, value)
}

func (f *FileStore) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	values := f.memory.snapshot()
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	if err := f.save(context.Background(), values); err != nil {
		return err
	}
	return f.memory.Remove(key)
}

// ---- persistence ----

// save writes values; the in-memory copy is updated by the caller only on success.
func (f *FileStore) save(ctx context.Context, values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	if err = f.fs.Upload(ctx, f.URL, 0o600, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save store %v: %w", f.URL, err)
	}
	return nil
}

func (f *FileStore) load(ctx context.Context) error {
	exists, err := f.fs.Exists(ctx, f.URL)
	if err != nil {
		return fmt.Errorf("failed to check store %v: %w", f.URL, err)
	}
	if !exists {
		return nil
	}
	data, err := f.fs.DownloadWithURL(ctx, f.URL)
	if err != nil {
		return fmt.Errorf("failed to load store %v: %w", f.URL, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	values := map[string]string{}
	if err = json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("failed to decode store %v: %w", f.URL, err)
	}
	for k, v := range values {
		_ = f.memory.Put(k, v)
	}
	return nil
}
