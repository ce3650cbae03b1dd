package storage

import (
	"testing"
	"time"
)

func TestSaveAndLoad(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	id, err := s.Save("SELECT * FROM Orders;", "It reads every row.")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if id == "" {
		t.Fatal("expected a generated id")
	}

	entry, err := s.Load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if entry.Query != "SELECT * FROM Orders;" {
		t.Errorf("unexpected query %q", entry.Query)
	}
	if entry.Explanation != "It reads every row." {
		t.Errorf("unexpected explanation %q", entry.Explanation)
	}
	if entry.Timestamp.IsZero() {
		t.Error("timestamp should be set")
	}
}

func TestListNewestFirst(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}

	first, err := s.Save("SELECT 1;", "one")
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)
	second, err := s.Save("SELECT 2;", "two")
	if err != nil {
		t.Fatal(err)
	}

	entries, err := s.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != second || entries[1].ID != first {
		t.Errorf("entries should be newest first, got %s then %s", entries[0].ID, entries[1].ID)
	}
}

func TestListMissingDir(t *testing.T) {
	s := New(t.TempDir() + "/never-created")
	entries, err := s.List()
	if err != nil {
		t.Fatalf("list on missing dir should not fail: %v", err)
	}
	if entries != nil {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestLoadUnknownID(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load("does-not-exist"); err == nil {
		t.Error("expected error for unknown id")
	}
}
