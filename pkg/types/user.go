package types

import (
	"errors"
	"strconv"
	"time"
)

// User represents a single user record.
type User struct {
	ID          int       `json:"id"`           // Positive, unique, strictly monotonic. Never reused after deletion.
	Name        string    `json:"name"`         // Required, non-empty.
	Email       string    `json:"email"`        // Required, non-empty, unique (case-sensitive exact match).
	Age         int       `json:"age"`          // Non-negative.
	CreatedDate time.Time `json:"created_date"` // Set at creation, immutable.
	IsActive    bool      `json:"is_active"`    // Defaults to true on creation.
}

// Entity validation errors.
var (
	ErrNameEmpty   = errors.New("name must not be empty")
	ErrEmailEmpty  = errors.New("email must not be empty")
	ErrAgeNegative = errors.New("age must not be negative")
)

// Validate checks the caller-supplied fields of a user. It returns a
// sentinel error from this package on failure. ID, CreatedDate, and
// IsActive are store-assigned and not checked here.
func (u User) Validate() error {
	if u.Name == "" {
		return ErrNameEmpty
	}
	if u.Email == "" {
		return ErrEmailEmpty
	}
	if u.Age < 0 {
		return ErrAgeNegative
	}
	return nil
}

// CSVHeader returns the user field names in their serialization order.
// The CSV export header row uses exactly this order.
func CSVHeader() []string {
	return []string{"id", "name", "email", "age", "created_date", "is_active"}
}

// CSVRecord returns the user's fields as strings, aligned with CSVHeader.
func (u User) CSVRecord() []string {
	return []string{
		strconv.Itoa(u.ID),
		u.Name,
		u.Email,
		strconv.Itoa(u.Age),
		u.CreatedDate.Format(time.RFC3339),
		strconv.FormatBool(u.IsActive),
	}
}
