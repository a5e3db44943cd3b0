package storage

import (
	"errors"
	"testing"

	"github.com/julianstephens/studyplan/internal/models"
)

func setupJSONStore(t *testing.T) *JSONStore {
	store := NewJSONStore(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return store
}

func testRecord() models.UserRecord {
	record := models.NewUserRecord()
	record.PersonalInfo.Name = "Alice"
	record.StudyPreferences.PreferredSubjects = []string{"Math"}
	record.TimeAvailability["Monday"] = []models.TimeSlot{{Start: "09:00", End: "12:00"}}
	return record
}

func TestJSONStore_SaveAndLoad(t *testing.T) {
	store := setupJSONStore(t)

	if err := store.SaveUser("alice", testRecord()); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}

	loaded, err := store.LoadUser("alice")
	if err != nil {
		t.Fatalf("LoadUser failed: %v", err)
	}
	if loaded.PersonalInfo.Name != "Alice" {
		t.Errorf("expected name Alice, got %q", loaded.PersonalInfo.Name)
	}
	if len(loaded.TimeAvailability["Monday"]) != 1 {
		t.Errorf("availability not round-tripped: %+v", loaded.TimeAvailability)
	}
}

func TestJSONStore_LoadMissingUser(t *testing.T) {
	store := setupJSONStore(t)

	_, err := store.LoadUser("ghost")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestJSONStore_LoadBeforeInit(t *testing.T) {
	store := NewJSONStore(t.TempDir() + "/nonexistent")

	if err := store.Load(); err == nil {
		t.Error("expected an error loading an uninitialized store")
	}
}

func TestJSONStore_DeleteUser(t *testing.T) {
	store := setupJSONStore(t)

	if err := store.SaveUser("alice", testRecord()); err != nil {
		t.Fatalf("SaveUser failed: %v", err)
	}
	if err := store.DeleteUser("alice"); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	if _, err := store.LoadUser("alice"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound after delete, got %v", err)
	}
	if err := store.DeleteUser("alice"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound on double delete, got %v", err)
	}
}

func TestJSONStore_ListUsers(t *testing.T) {
	store := setupJSONStore(t)

	for _, id := range []string{"alice", "bob"} {
		if err := store.SaveUser(id, testRecord()); err != nil {
			t.Fatalf("SaveUser failed: %v", err)
		}
	}

	users, err := store.ListUsers()
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("expected 2 users, got %v", users)
	}
}

func TestJSONStore_RejectsPathEscapingIDs(t *testing.T) {
	store := setupJSONStore(t)

	for _, id := range []string{"", "../evil", "a/b", "a\\b"} {
		if err := store.SaveUser(id, testRecord()); err == nil {
			t.Errorf("expected save rejection for id %q", id)
		}
		if _, err := store.LoadUser(id); err == nil {
			t.Errorf("expected load rejection for id %q", id)
		}
	}
}
