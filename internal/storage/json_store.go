package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/studyplan/internal/models"
)

// JSONStore keeps one pretty-printed JSON file per user under a data
// directory. It is the default backend for single-machine use.
type JSONStore struct {
	dir string
}

func NewJSONStore(dataDir string) *JSONStore {
	return &JSONStore{
		dir: filepath.Join(dataDir, "users"),
	}
}

func (s *JSONStore) Init() error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

func (s *JSONStore) Load() error {
	info, err := os.Stat(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'studyplan init' first")
		}
		return fmt.Errorf("failed to read data directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data path %s is not a directory", s.dir)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) LoadUser(userID string) (models.UserRecord, error) {
	path, err := s.userPath(userID)
	if err != nil {
		return models.UserRecord{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.UserRecord{}, ErrUserNotFound
		}
		return models.UserRecord{}, fmt.Errorf("failed to read user record: %w", err)
	}

	var record models.UserRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return models.UserRecord{}, fmt.Errorf("failed to parse user record: %w", err)
	}

	return record, nil
}

func (s *JSONStore) SaveUser(userID string, record models.UserRecord) error {
	path, err := s.userPath(userID)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize user record: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write user record: %w", err)
	}

	return nil
}

func (s *JSONStore) DeleteUser(userID string) error {
	path, err := s.userPath(userID)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user record: %w", err)
	}
	return nil
}

func (s *JSONStore) ListUsers() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list user records: %w", err)
	}

	users := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		users = append(users, strings.TrimSuffix(name, ".json"))
	}
	return users, nil
}

func (s *JSONStore) DataPath() string {
	return s.dir
}

// userPath maps a user id to its record file, rejecting ids that would
// escape the data directory
func (s *JSONStore) userPath(userID string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("user id must not be empty")
	}
	if strings.ContainsAny(userID, "/\\") || userID != filepath.Base(userID) {
		return "", fmt.Errorf("invalid user id: %s", userID)
	}
	return filepath.Join(s.dir, userID+".json"), nil
}
