// Package shorts persists "shorts" content in a flat JSON file rather than
// the document store; the frontend reads the file directly.
package shorts

import (
	"encoding/json"
	"errors"
	"os"
	"sync"

	"github.com/trektribe/backend/internal/models"
)

type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Add appends the short to the file's JSON array. A missing or corrupt file
// is reset to an empty array first.
func (s *Store) Add(short models.Short) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		data = []byte("[]")
	}

	var existing []models.Short
	if err := json.Unmarshal(data, &existing); err != nil {
		existing = []models.Short{}
	}

	existing = append(existing, short)

	out, err := json.MarshalIndent(existing, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, out, 0o644)
}
