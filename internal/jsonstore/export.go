package jsonstore

import (
	"encoding/csv"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/roster/pkg/types"
)

// ExportCSV writes all users to path as CSV: a header row of the user
// field names in serialization order, then one row per user, standard
// quoting, UTF-8. It reports false without error when the store is
// empty (and creates no file), and false with an error when the target
// path cannot be written.
func (s *Store) ExportCSV(path string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.users) == 0 {
		return false, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return false, fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(types.CSVHeader()); err != nil {
		return false, fmt.Errorf("writing header: %w", err)
	}
	for _, u := range s.users {
		if err := w.Write(u.CSVRecord()); err != nil {
			return false, fmt.Errorf("writing record %d: %w", u.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return false, fmt.Errorf("flushing export: %w", err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("closing export file: %w", err)
	}

	s.log.Debug("exported users to CSV",
		zap.String("path", path), zap.Int("records", len(s.users)))
	return true, nil
}
