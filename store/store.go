package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"evoxabackend/config"
	"evoxabackend/models"
)

// Table is a flat string-keyed mapping persisted as a single JSON file.
// Every mutation rewrites the whole file. A per-table mutex serializes
// load-mutate-save sequences so concurrent requests cannot drop an
// update.
type Table[T any] struct {
	path string
	mu   sync.Mutex
}

func NewTable[T any](path string) *Table[T] {
	return &Table[T]{path: path}
}

// Ensure creates the backing file with an empty mapping if it does not
// exist yet. Safe to call more than once.
func (t *Table[T]) Ensure() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := os.Stat(t.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", t.path, err)
	}
	return t.write(map[string]T{})
}

// Load returns the full mapping. Callers get their own copy; mutating
// it has no effect on disk until saved through Update.
func (t *Table[T]) Load() (map[string]T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.read()
}

// Update runs fn on the current mapping and persists the result, all
// under the table lock. If fn returns an error nothing is written.
func (t *Table[T]) Update(fn func(map[string]T) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	data, err := t.read()
	if err != nil {
		return err
	}
	if err := fn(data); err != nil {
		return err
	}
	return t.write(data)
}

func (t *Table[T]) read() (map[string]T, error) {
	raw, err := os.ReadFile(t.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", t.path, err)
	}
	var data map[string]T
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse %s: %w", t.path, err)
	}
	return data, nil
}

// write goes through a temp file and a rename so a crash mid-save
// cannot leave a truncated table behind.
func (t *Table[T]) write(data map[string]T) error {
	raw, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", t.path, err)
	}

	dir := filepath.Dir(t.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(t.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("write %s: %w", t.path, err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", t.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", t.path, err)
	}
	if err := os.Rename(tmp.Name(), t.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", t.path, err)
	}
	return nil
}

var (
	Users *Table[models.User]
	Usage *Table[models.Usage]
)

// Init wires the two tables to their configured files and creates the
// files on first boot.
func Init(cfg *config.Config) error {
	Users = NewTable[models.User](cfg.UsersFile)
	Usage = NewTable[models.Usage](cfg.UsageFile)

	if err := Users.Ensure(); err != nil {
		return err
	}
	return Usage.Ensure()
}
