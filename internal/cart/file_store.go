package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"appmart/internal/model"
)

// fileStore persists cart snapshots as a JSON file, the local-storage
// analogue for a command-line client.
type fileStore struct {
	path string
}

// NewFileStore creates a Store writing snapshots to the given path.
func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

// Load reads the saved snapshot. A missing file or undecodable content
// yields an empty cart.
func (s *fileStore) Load() ([]model.CartLine, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cart file: %w", err)
	}

	var items []model.CartLine
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart file: %w", err)
	}

	return items, nil
}

// Save writes the snapshot, replacing any previous one.
func (s *fileStore) Save(items []model.CartLine) error {
	if items == nil {
		items = []model.CartLine{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write cart file: %w", err)
	}

	return nil
}
