// Package storage persists explanation history under a data directory.
// Topic selection and reveal state are deliberately session-ephemeral and
// never stored here.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Entry is one saved explanation exchange.
type Entry struct {
	ID          string    `json:"id"`
	Query       string    `json:"query"`
	Explanation string    `json:"explanation"`
	Timestamp   time.Time `json:"timestamp"`
}

// Save writes one query/explanation pair and returns its generated ID.
func (s *Store) Save(query, explanation string) (string, error) {
	entry := Entry{
		ID:          uuid.NewString(),
		Query:       query,
		Explanation: explanation,
		Timestamp:   time.Now().UTC(),
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(s.baseDir, entry.ID+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return entry.ID, nil
}

// List returns all saved entries, newest first.
func (s *Store) List() ([]Entry, error) {
	files, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []Entry
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}
		entry, err := s.read(filepath.Join(s.baseDir, f.Name()))
		if err != nil {
			continue // skip unreadable entries rather than failing the list
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries, nil
}

// Load returns one entry by ID.
func (s *Store) Load(id string) (*Entry, error) {
	entry, err := s.read(filepath.Join(s.baseDir, id+".json"))
	if err != nil {
		return nil, fmt.Errorf("entry %s: %w", id, err)
	}
	return &entry, nil
}

func (s *Store) read(path string) (Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, err
	}
	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}
