package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/studyplan/internal/constants"
)

const (
	connectionStringKey = "db-connection-string"
	probeKey            = "availability-probe"
)

// ErrNotFound is returned when no connection string is stored
var ErrNotFound = errors.New("no connection string stored in keyring")

// SetConnectionString stores a database connection string in the OS keyring
func SetConnectionString(value string) error {
	if err := keyring.Set(constants.AppName, connectionStringKey, value); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}
	return nil
}

// GetConnectionString retrieves the database connection string from the OS keyring
func GetConnectionString() (string, error) {
	value, err := keyring.Get(constants.AppName, connectionStringKey)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read connection string from keyring: %w", err)
	}
	return value, nil
}

// DeleteConnectionString removes the stored connection string
func DeleteConnectionString() error {
	if err := keyring.Delete(constants.AppName, connectionStringKey); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete connection string from keyring: %w", err)
	}
	return nil
}

// IsAvailable reports whether the OS keyring accepts reads and writes
func IsAvailable() bool {
	if err := keyring.Set(constants.AppName, probeKey, "ok"); err != nil {
		return false
	}
	_ = keyring.Delete(constants.AppName, probeKey)
	return true
}
