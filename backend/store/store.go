// Package store implements the simulated database: one JSON document holding
// every collection, loaded whole at startup and rewritten whole after every
// mutation. Accessors are linear scans; ids are assigned max(existing)+1.
package store

import (
	"encoding/json"
	"sync"

	"github.com/contatonovatek-coder/Novatek-Aulas/backend/models"
)

// Store owns the in-memory document and the durable backend it is persisted
// into. A single mutex serializes access; two processes sharing one storage
// key still last-write-win on save, exactly like two browser tabs sharing a
// localStorage entry.
type Store struct {
	mu      sync.Mutex
	backend Backend
	key     string
	doc     *models.Document

	// Reseeded reports that Open found no usable document and seeded a
	// fresh one. ReseedCause is nil on first run and holds the decode
	// error when an existing payload was unreadable.
	Reseeded    bool
	ReseedCause error
}

// Open loads the document stored under key. A missing document seeds the
// fixed catalog. An unreadable document is backed up under key+".corrupt"
// and then reseeded, so the broken payload is recoverable by hand.
func Open(backend Backend, key string) (*Store, error) {
	s := &Store{backend: backend, key: key}

	data, ok, err := backend.Get(key)
	if err != nil {
		return nil, err
	}

	if ok {
		var doc models.Document
		if err := json.Unmarshal(data, &doc); err != nil {
			// Keep the unreadable payload around before discarding it.
			if backupErr := backend.Set(key+".corrupt", data); backupErr != nil {
				return nil, backupErr
			}
			s.Reseeded = true
			s.ReseedCause = err
		} else {
			s.doc = &doc
			return s, nil
		}
	} else {
		s.Reseeded = true
	}

	s.doc = seedDocument()
	if err := s.save(); err != nil {
		return nil, err
	}
	return s, nil
}

// save serializes the whole document and overwrites the stored copy. Callers
// must hold s.mu or be single-threaded (Open).
func (s *Store) save() error {
	data, err := json.Marshal(s.doc)
	if err != nil {
		return err
	}
	return s.backend.Set(s.key, data)
}

// Flush rewrites the document even if no mutation happened.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

// Close flushes the document. The backend itself stays usable; the session
// snapshot lives under a sibling key on the same backend.
func (s *Store) Close() error {
	return s.Flush()
}

// Backend exposes the underlying key-value storage so the session manager
// can persist its snapshot next to the document.
func (s *Store) Backend() Backend {
	return s.backend
}
