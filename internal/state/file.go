package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultKey is the document key the picker record lives under.
const DefaultKey = "rgb-picker"

// FileStore keeps the record as one key of a YAML document on disk. Other
// top-level keys of the document, and unknown fields inside the record, are
// preserved by every Save.
type FileStore struct {
	path string
	key  string
	mu   sync.Mutex
}

// NewFileStore creates a store for the document at path. An empty key
// selects DefaultKey.
func NewFileStore(path, key string) *FileStore {
	if key == "" {
		key = DefaultKey
	}
	return &FileStore{path: path, key: key}
}

// Path returns the location of the state document.
func (s *FileStore) Path() string {
	return s.path
}

// Load implements Store.
func (s *FileStore) Load() (Payload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrNoState
	}
	raw, ok := doc[s.key]
	if !ok || raw == nil {
		return nil, ErrNoState
	}
	record, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("state key %q in %s is %T, not a mapping", s.key, s.path, raw)
	}
	return Payload(record), nil
}

// Save implements Store. A document that cannot be parsed is left alone and
// the write is refused.
func (s *FileStore) Save(patch Payload) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil {
		return err
	}
	if doc == nil {
		doc = map[string]any{}
	}

	current := Payload{}
	switch raw := doc[s.key].(type) {
	case map[string]any:
		current = Payload(raw)
	case nil:
	default:
		return fmt.Errorf("state key %q in %s is %T, not a mapping", s.key, s.path, raw)
	}
	doc[s.key] = map[string]any(current.Merge(patch))

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	return writeFileAtomic(s.path, data)
}

// readDocument returns nil, nil when the file does not exist or is empty.
func (s *FileStore) readDocument() (map[string]any, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read state file %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("corrupt state file %s: %w", s.path, err)
	}
	return doc, nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".state-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write state: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace state file %s: %w", path, err)
	}
	return nil
}
