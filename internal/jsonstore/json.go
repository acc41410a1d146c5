// JSON record structure for the file backend. This structure defines
// the on-disk record format: the backing file holds a single JSON array
// of these objects, UTF-8, two-space indent.
package jsonstore

// userJSON represents a user record in the backing file.
type userJSON struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Age         int    `json:"age"`
	CreatedDate string `json:"created_date"`
	IsActive    bool   `json:"is_active"`
}
