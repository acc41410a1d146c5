package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserValidate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr error
	}{
		{
			name: "valid user",
			user: User{Name: "Alice", Email: "alice@example.com", Age: 30},
		},
		{
			name:    "empty name rejected",
			user:    User{Name: "", Email: "alice@example.com", Age: 30},
			wantErr: ErrNameEmpty,
		},
		{
			name:    "empty email rejected",
			user:    User{Name: "Alice", Email: "", Age: 30},
			wantErr: ErrEmailEmpty,
		},
		{
			name:    "negative age rejected",
			user:    User{Name: "Alice", Email: "alice@example.com", Age: -1},
			wantErr: ErrAgeNegative,
		},
		{
			name: "zero age accepted",
			user: User{Name: "Newborn", Email: "n@example.com", Age: 0},
		},
		{
			name: "unicode name accepted",
			user: User{Name: "Nguyễn Văn An", Email: "an@example.com", Age: 25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserCSVRecordAlignsWithHeader(t *testing.T) {
	created := time.Date(2026, 8, 27, 10, 30, 0, 0, time.UTC)
	u := User{
		ID:          7,
		Name:        "Alice",
		Email:       "alice@example.com",
		Age:         30,
		CreatedDate: created,
		IsActive:    true,
	}

	header := CSVHeader()
	record := u.CSVRecord()

	assert.Equal(t, []string{"id", "name", "email", "age", "created_date", "is_active"}, header)
	assert.Len(t, record, len(header), "record must align with header")
	assert.Equal(t, "7", record[0])
	assert.Equal(t, "Alice", record[1])
	assert.Equal(t, "alice@example.com", record[2])
	assert.Equal(t, "30", record[3])
	assert.Equal(t, "2026-08-27T10:30:00Z", record[4])
	assert.Equal(t, "true", record[5])
}
