// Package journal keeps a local JSON history of the transactions sent from
// this machine.
package journal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Storage persists transaction records to a JSON file
type Storage struct {
	filePath string
	mu       sync.RWMutex
	records  map[string]*Record
}

// journalFile represents the JSON structure for storage
type journalFile struct {
	Records map[string]*Record `json:"records"`
}

// NewStorage opens the journal at filePath, creating it on first write
func NewStorage(filePath string) (*Storage, error) {
	if filePath == "" {
		return nil, fmt.Errorf("journal path is required")
	}

	storage := &Storage{
		filePath: filePath,
		records:  make(map[string]*Record),
	}

	if err := storage.load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load journal: %w", err)
		}
	}

	return storage, nil
}

func (s *Storage) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	var file journalFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to unmarshal journal: %w", err)
	}

	s.records = file.Records
	if s.records == nil {
		s.records = make(map[string]*Record)
	}

	return nil
}

// saveLocked writes all records; the caller holds the write lock
func (s *Storage) saveLocked() error {
	data, err := json.MarshalIndent(journalFile{Records: s.records}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal journal: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Write to temporary file first, then rename for atomic write
	tempFile := s.filePath + ".tmp"
	if err := os.WriteFile(tempFile, data, 0600); err != nil {
		return fmt.Errorf("failed to write journal: %w", err)
	}

	if err := os.Rename(tempFile, s.filePath); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// Add stores a new record, assigning its ID and timestamps
func (s *Storage) Add(rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	rec.ID = uuid.New().String()
	rec.Created = now
	rec.LastUpdated = now

	s.records[rec.ID] = rec
	return s.saveLocked()
}

// UpdateStatus changes the outcome of a record
func (s *Storage) UpdateStatus(id string, status Status, blockNumber uint64, errorMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, exists := s.records[id]
	if !exists {
		return fmt.Errorf("record '%s' not found", id)
	}

	rec.Status = status
	if blockNumber != 0 {
		rec.BlockNumber = blockNumber
	}
	if errorMsg != "" {
		rec.ErrorMessage = errorMsg
	}
	rec.LastUpdated = time.Now()

	return s.saveLocked()
}

// Get retrieves a record by ID
func (s *Storage) Get(id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, exists := s.records[id]
	if !exists {
		return nil, fmt.Errorf("record '%s' not found", id)
	}
	return rec, nil
}

// FindByHash returns the record for a transaction hash
func (s *Storage) FindByHash(txHash string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.records {
		if rec.TxHash != "" && strings.EqualFold(rec.TxHash, txHash) {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("no record for transaction %s", txHash)
}

// List returns all records, newest first
func (s *Storage) List() []*Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*Record, 0, len(s.records))
	for _, rec := range s.records {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Created.After(records[j].Created)
	})

	return records
}

// Count returns the total number of records
func (s *Storage) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.records)
}

// GetFilePath returns the storage file path
func (s *Storage) GetFilePath() string {
	return s.filePath
}
