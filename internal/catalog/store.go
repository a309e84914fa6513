package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/tsmith/scholarship-finder/internal/models"
)

// Document is the on-disk layout of the JSON catalog.
type Document struct {
	Version      string               `json:"version,omitempty"`
	LastUpdated  string               `json:"last_updated,omitempty"`
	Scholarships []models.Opportunity `json:"scholarships"`
	Metadata     Metadata             `json:"metadata"`
}

// Metadata carries catalog bookkeeping refreshed on every save.
type Metadata struct {
	TotalScholarships int      `json:"total_scholarships"`
	Categories        []string `json:"categories,omitempty"`
}

// Info summarizes the catalog for the info endpoint and the CLI.
type Info struct {
	Version     string   `json:"version"`
	LastUpdated string   `json:"last_updated"`
	Total       int      `json:"total_scholarships"`
	Active      int      `json:"active_scholarships"`
	Categories  []string `json:"categories"`
}

// Store owns the JSON catalog file. All reads hand out copies, so callers
// can annotate records without racing each other; writes rewrite the file
// atomically.
type Store struct {
	path string

	mu  sync.RWMutex
	doc Document
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the catalog from disk. A missing file is not an error: the
// store starts empty and logs a warning, matching a fresh deployment before
// the first save. Malformed JSON is an error.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		log.Printf("Catalog file %s not found, starting with empty catalog", s.path)
		s.mu.Lock()
		s.doc = Document{}
		s.mu.Unlock()
		return nil
	}
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse catalog: %w", err)
	}

	s.mu.Lock()
	s.doc = doc
	s.mu.Unlock()
	return nil
}

// Reload re-reads the catalog file, replacing the in-memory copy. Used by
// the admin reload endpoint after the file is edited out of band.
func (s *Store) Reload() error {
	return s.Load()
}

// All returns a snapshot of every record, regardless of status.
func (s *Store) All() []models.Opportunity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Opportunity, len(s.doc.Scholarships))
	copy(out, s.doc.Scholarships)
	return out
}

// Active returns a snapshot of records eligible for matching. Entries
// without an explicit status count as active; any other status ("inactive",
// "retired") excludes the record.
func (s *Store) Active() []models.Opportunity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Opportunity, 0, len(s.doc.Scholarships))
	for _, o := range s.doc.Scholarships {
		if activeStatus(o.Status) {
			out = append(out, o)
		}
	}
	return out
}

func activeStatus(status string) bool {
	switch status {
	case "", "active":
		return true
	}
	return false
}

// GetByID looks a record up by its catalog id.
func (s *Store) GetByID(id string) (models.Opportunity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.doc.Scholarships {
		if o.ID == id {
			return o, true
		}
	}
	return models.Opportunity{}, false
}

// Update merges the given record over the stored one with the same id and
// stamps last_verified. The file is rewritten immediately.
func (s *Store) Update(id string, updated models.Opportunity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Scholarships {
		if s.doc.Scholarships[i].ID != id {
			continue
		}
		updated.ID = id
		updated.LastVerified = time.Now().UTC().Format("2006-01-02")
		s.doc.Scholarships[i] = updated
		return s.saveLocked()
	}
	return fmt.Errorf("scholarship %q not found", id)
}

// Save rewrites the catalog file, refreshing last_updated and the record
// count in metadata.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

// saveLocked writes to a temp file in the catalog's directory and renames it
// into place, so a crash mid-write never truncates the catalog. Callers must
// hold the write lock.
func (s *Store) saveLocked() error {
	s.doc.LastUpdated = time.Now().UTC().Format("2006-01-02")
	s.doc.Metadata.TotalScholarships = len(s.doc.Scholarships)

	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create catalog dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".catalog-*.json")
	if err != nil {
		return fmt.Errorf("create temp catalog: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write catalog: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close catalog: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace catalog: %w", err)
	}
	return nil
}

// Info reports catalog metadata. Categories come from the metadata block
// when present, otherwise they are derived from the records.
func (s *Store) Info() Info {
	s.mu.RLock()
	defer s.mu.RUnlock()

	info := Info{
		Version:     s.doc.Version,
		LastUpdated: s.doc.LastUpdated,
		Total:       len(s.doc.Scholarships),
		Categories:  s.doc.Metadata.Categories,
	}
	if info.Version == "" {
		info.Version = "unknown"
	}
	for _, o := range s.doc.Scholarships {
		if activeStatus(o.Status) {
			info.Active++
		}
	}
	if len(info.Categories) == 0 {
		seen := map[string]struct{}{}
		for _, o := range s.doc.Scholarships {
			if o.Category == "" {
				continue
			}
			if _, ok := seen[o.Category]; !ok {
				seen[o.Category] = struct{}{}
				info.Categories = append(info.Categories, o.Category)
			}
		}
		sort.Strings(info.Categories)
	}
	return info
}

// Rollover advances stale deadlines in the stored records and persists the
// catalog when anything changed.
func (s *Store) Rollover(today time.Time) ([]Change, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	changes := RollDeadlines(s.doc.Scholarships, today)
	if len(changes) == 0 {
		return nil, nil
	}
	if err := s.saveLocked(); err != nil {
		return nil, err
	}
	return changes, nil
}
