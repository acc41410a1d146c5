// Package jsonstore implements the JSON-file backend for the roster
// storage system. The backing file is the sole durable representation:
// it is loaded fully into memory at Open and rewritten fully, via an
// atomic temp-file rename, on every mutating operation.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/roster/pkg/types"
)

// Store is an in-memory ordered collection of users mirrored to a JSON
// file on every mutation. Validation failures and missing-id lookups
// report through a boolean; only persistence failures return an error.
type Store struct {
	mu     sync.Mutex
	config types.Config
	users  []types.User
	nextID int
	log    *zap.Logger

	// now is overridable in tests.
	now func() time.Time
}

// Option configures a Store during Open.
type Option func(*Store)

// WithLogger sets the store's logger. The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// Open creates a Store backed by the file named in config and loads any
// existing records. A missing backing file starts the store empty; a
// corrupt one is logged and likewise starts the store empty. The only
// error returned is config validation failure.
func Open(config types.Config, opts ...Option) (*Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	s := &Store{
		config: config,
		users:  []types.User{},
		log:    zap.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.load()
	return s, nil
}

// load reads the backing file into memory and seeds the id counter from
// the highest id on record. Missing and unreadable files both downgrade
// to an empty store; only the log level distinguishes them.
func (s *Store) load() {
	s.users = []types.User{}
	s.nextID = 0

	data, err := os.ReadFile(s.config.DataFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Debug("backing file absent, starting empty",
				zap.String("path", s.config.DataFile))
		} else {
			s.log.Warn("backing file unreadable, starting empty",
				zap.String("path", s.config.DataFile), zap.Error(err))
		}
		return
	}

	var records []userJSON
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.Warn("invalid JSON in backing file, starting empty",
			zap.String("path", s.config.DataFile), zap.Error(err))
		return
	}

	for _, rec := range records {
		created, err := time.Parse(time.RFC3339, rec.CreatedDate)
		if err != nil {
			s.log.Warn("unparseable created_date, keeping record with zero time",
				zap.Int("id", rec.ID), zap.String("created_date", rec.CreatedDate))
		}
		s.users = append(s.users, types.User{
			ID:          rec.ID,
			Name:        rec.Name,
			Email:       rec.Email,
			Age:         rec.Age,
			CreatedDate: created,
			IsActive:    rec.IsActive,
		})
		if rec.ID > s.nextID {
			s.nextID = rec.ID
		}
	}
}

// save serializes the full in-memory sequence to the backing file using
// the temp-file, fsync, rename pattern. The caller must hold s.mu.
func (s *Store) save() error {
	records := make([]userJSON, len(s.users))
	for i, u := range s.users {
		records[i] = userJSON{
			ID:          u.ID,
			Name:        u.Name,
			Email:       u.Email,
			Age:         u.Age,
			CreatedDate: u.CreatedDate.Format(time.RFC3339),
			IsActive:    u.IsActive,
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling records: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.config.DataFile)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".users-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing records: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.config.DataFile); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	s.log.Debug("persisted backing file",
		zap.String("path", s.config.DataFile), zap.Int("records", len(records)))
	return nil
}

// Add creates a user with the next monotonic id, created date set to
// now, and active status true, then persists the store. It reports
// false without error when name or email is empty, age is negative, or
// the email already exists (case-sensitive exact match). A persistence
// failure is the only returned error.
func (s *Store) Add(name, email string, age int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := types.User{Name: name, Email: email, Age: age}
	if err := u.Validate(); err != nil {
		return false, nil
	}
	for _, existing := range s.users {
		if existing.Email == email {
			return false, nil
		}
	}

	// The id counter is strictly monotonic and seeded from max(id) at
	// load, so deleted ids are never handed out again.
	s.nextID++
	u.ID = s.nextID
	u.CreatedDate = s.now().UTC().Truncate(time.Second)
	u.IsActive = true

	s.users = append(s.users, u)
	if err := s.save(); err != nil {
		return false, fmt.Errorf("persisting after add: %w", err)
	}
	return true, nil
}

// GetByID returns the user with the given id by linear scan. The second
// return value reports whether a match was found.
func (s *Store) GetByID(id int) (types.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return types.User{}, false
}

// GetByAgeRange returns all users with minAge <= age <= maxAge, in
// store order. An inverted range returns an empty result.
func (s *Store) GetByAgeRange(minAge, maxAge int) []types.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := []types.User{}
	if minAge > maxAge {
		return result
	}
	for _, u := range s.users {
		if minAge <= u.Age && u.Age <= maxAge {
			result = append(result, u)
		}
	}
	return result
}

// UpdateStatus sets the active status of the user with the given id and
// persists the store. It reports false without error when no user has
// that id.
func (s *Store) UpdateStatus(id int, active bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].IsActive = active
			if err := s.save(); err != nil {
				return false, fmt.Errorf("persisting after status update: %w", err)
			}
			return true, nil
		}
	}
	return false, nil
}

// Delete removes the first user with the given id and persists the
// store. Remaining users keep their ids. It reports false without error
// when no user has that id.
func (s *Store) Delete(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			if err := s.save(); err != nil {
				return false, fmt.Errorf("persisting after delete: %w", err)
			}
			return true, nil
		}
	}
	return false, nil
}

// ActiveCount returns the number of users whose active status is true.
func (s *Store) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, u := range s.users {
		if u.IsActive {
			count++
		}
	}
	return count
}

// SearchByName returns users whose name contains term, compared
// case-insensitively, in store order. An empty term returns an empty
// result, not all users.
func (s *Store) SearchByName(term string) []types.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := []types.User{}
	if term == "" {
		return result
	}
	needle := strings.ToLower(term)
	for _, u := range s.users {
		if strings.Contains(strings.ToLower(u.Name), needle) {
			result = append(result, u)
		}
	}
	return result
}

// All returns a copy of the full user sequence in store order.
// Mutating the returned slice does not affect the store.
func (s *Store) All() []types.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.User, len(s.users))
	copy(out, s.users)
	return out
}

// Count returns the current number of users.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// Clear removes every user and persists the empty store. The id counter
// is not reset; ids of cleared users are never reissued.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = []types.User{}
	if err := s.save(); err != nil {
		return fmt.Errorf("persisting after clear: %w", err)
	}
	return nil
}
