package storage

import (
	"errors"

	"github.com/julianstephens/studyplan/internal/models"
)

// ErrUserNotFound is returned when no record exists for a user id
var ErrUserNotFound = errors.New("user not found")

// Provider persists whole user records keyed by an opaque user identifier.
// Records are always loaded and saved in full; there are no partial updates
// and no cross-user transactions. The store performs no locking: callers
// must not run two writers against the same user id concurrently.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Records
	LoadUser(userID string) (models.UserRecord, error)
	SaveUser(userID string, record models.UserRecord) error
	DeleteUser(userID string) error
	ListUsers() ([]string, error)

	// Utils
	DataPath() string
}
