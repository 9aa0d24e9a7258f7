package credstore

import (
	"errors"
	"testing"
)

func TestNewStore(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	if store == nil {
		t.Fatal("NewStore() returned nil")
	}
}

func TestStore_Get_Empty(t *testing.T) {
	store, _ := NewStore(t.TempDir())

	_, err := store.Get()
	if !errors.Is(err, ErrNoToken) {
		t.Errorf("Get() error = %v; want ErrNoToken", err)
	}
}

func TestStore_Set_Get(t *testing.T) {
	dir := t.TempDir()
	store, _ := NewStore(dir)

	if err := store.Set("abc123"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	token, err := store.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if token != "abc123" {
		t.Errorf("Get() = %q; want %q", token, "abc123")
	}

	// A fresh store over the same directory sees the token: persistence
	// survives the process, not just the instance.
	reopened, _ := NewStore(dir)
	token, err = reopened.Get()
	if err != nil {
		t.Fatalf("Get() after reopen error = %v", err)
	}
	if token != "abc123" {
		t.Errorf("Get() after reopen = %q; want %q", token, "abc123")
	}
}

func TestStore_Set_Overwrites(t *testing.T) {
	store, _ := NewStore(t.TempDir())

	store.Set("first")
	if err := store.Set("second"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	token, _ := store.Get()
	if token != "second" {
		t.Errorf("Get() = %q; want %q", token, "second")
	}
}

func TestStore_Clear(t *testing.T) {
	store, _ := NewStore(t.TempDir())

	store.Set("abc123")
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	if _, err := store.Get(); !errors.Is(err, ErrNoToken) {
		t.Errorf("Get() after Clear() error = %v; want ErrNoToken", err)
	}
}

func TestStore_Clear_Idempotent(t *testing.T) {
	store, _ := NewStore(t.TempDir())

	if err := store.Clear(); err != nil {
		t.Errorf("Clear() on empty store error = %v; want nil", err)
	}
	store.Set("abc123")
	store.Clear()
	if err := store.Clear(); err != nil {
		t.Errorf("second Clear() error = %v; want nil", err)
	}
}
