package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/julianstephens/studyplan/internal/keyring"
	"github.com/julianstephens/studyplan/internal/models"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS users (
	user_id TEXT PRIMARY KEY,
	record JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
`

// EnvConnectionString is the environment variable checked for a PostgreSQL
// connection string before falling back to the OS keyring.
const EnvConnectionString = "STUDYPLAN_DB_CONNECTION"

// PostgresStore persists serialized user records in PostgreSQL. Connection
// strings must not embed credentials; they are resolved from the environment
// or the OS keyring instead.
type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		connStr: connStr,
	}
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password inline
func HasEmbeddedCredentials(connStr string) bool {
	parsed, err := url.Parse(connStr)
	if err != nil || parsed.User == nil {
		return false
	}
	_, hasPassword := parsed.User.Password()
	return hasPassword
}

// ResolveConnectionString returns the effective connection string: the
// explicit value when given, else the environment variable, else the OS
// keyring.
func ResolveConnectionString(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if env := os.Getenv(EnvConnectionString); env != "" {
		return env, nil
	}
	stored, err := keyring.GetConnectionString()
	if err != nil {
		return "", fmt.Errorf("no connection string configured: %w", err)
	}
	return stored, nil
}

func (s *PostgresStore) open() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db
	return nil
}

func (s *PostgresStore) Init() error {
	if err := s.open(); err != nil {
		return err
	}
	if _, err := s.db.Exec(postgresSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Load() error {
	if s.db != nil {
		return nil
	}
	if err := s.open(); err != nil {
		return err
	}
	if _, err := s.db.Exec(postgresSchema); err != nil {
		return fmt.Errorf("failed to validate schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) LoadUser(userID string) (models.UserRecord, error) {
	var raw string
	err := s.db.QueryRow("SELECT record FROM users WHERE user_id = $1", userID).Scan(&raw)
	if err == sql.ErrNoRows {
		return models.UserRecord{}, ErrUserNotFound
	}
	if err != nil {
		return models.UserRecord{}, fmt.Errorf("failed to load user record: %w", err)
	}

	var record models.UserRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return models.UserRecord{}, fmt.Errorf("failed to parse user record: %w", err)
	}
	return record, nil
}

func (s *PostgresStore) SaveUser(userID string, record models.UserRecord) error {
	if userID == "" {
		return fmt.Errorf("user id must not be empty")
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to serialize user record: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO users (user_id, record, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO UPDATE SET record = EXCLUDED.record, updated_at = EXCLUDED.updated_at`,
		userID, string(data), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to write user record: %w", err)
	}
	return nil
}

func (s *PostgresStore) DeleteUser(userID string) error {
	result, err := s.db.Exec("DELETE FROM users WHERE user_id = $1", userID)
	if err != nil {
		return fmt.Errorf("failed to delete user record: %w", err)
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *PostgresStore) ListUsers() ([]string, error) {
	rows, err := s.db.Query("SELECT user_id FROM users ORDER BY user_id")
	if err != nil {
		return nil, fmt.Errorf("failed to list user records: %w", err)
	}
	defer rows.Close()

	var users []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		users = append(users, id)
	}
	return users, rows.Err()
}

// DataPath returns the connection string with any user info stripped
func (s *PostgresStore) DataPath() string {
	parsed, err := url.Parse(s.connStr)
	if err != nil {
		return "postgres"
	}
	parsed.User = nil
	return strings.TrimSuffix(parsed.String(), "?")
}
