package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mmcdole/flicks/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket and key names
var (
	bucketHistory     = []byte("history")
	keyRecentlyViewed = []byte("recently_viewed")
)

// HistoryStore implements domain.HistoryStore using BoltDB.
type HistoryStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// Last written blob; the only copy in memory-only mode
	cache []byte
}

// NewHistoryStore opens (or creates) the history database in dir.
// An empty dir keeps history in memory for the life of the process.
func NewHistoryStore(dir string) (*HistoryStore, error) {
	if dir == "" {
		// Memory-only mode (no persistence)
		return &HistoryStore{}, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	dbPath := filepath.Join(dir, "flicks.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketHistory)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &HistoryStore{db: db}, nil
}

func (s *HistoryStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadHistory returns the stored history.
// ok is false when nothing was stored; a blob that does not parse is an error.
func (s *HistoryStore) LoadHistory() (domain.History, bool, error) {
	var h domain.History

	data, err := s.read()
	if err != nil {
		return h, false, err
	}
	if data == nil {
		return h, false, nil
	}

	if err := json.Unmarshal(data, &h); err != nil {
		return domain.History{}, false, fmt.Errorf("corrupt history blob: %w", err)
	}
	return h, true, nil
}

// SaveHistory replaces the stored history
func (s *HistoryStore) SaveHistory(h domain.History) error {
	data, err := json.Marshal(h)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cache = data
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketHistory)
		return b.Put(keyRecentlyViewed, data)
	})
}

// ClearHistory removes the stored history
func (s *HistoryStore) ClearHistory() error {
	s.mu.Lock()
	s.cache = nil
	s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketHistory)
		if b == nil {
			return nil
		}
		return b.Delete(keyRecentlyViewed)
	})
}

func (s *HistoryStore) read() ([]byte, error) {
	// Check memory cache first
	s.mu.RLock()
	if s.cache != nil {
		data := s.cache
		s.mu.RUnlock()
		return data, nil
	}
	s.mu.RUnlock()

	if s.db == nil {
		return nil, nil
	}

	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketHistory)
		if b == nil {
			return nil
		}
		if v := b.Get(keyRecentlyViewed); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if data != nil {
		// Promote to memory cache
		s.mu.Lock()
		s.cache = data
		s.mu.Unlock()
	}

	return data, nil
}
