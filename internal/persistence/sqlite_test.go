package persistence

import (
	"context"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "nested", "test.db"), zap.NewNop())
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	type doc struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	if err := store.Save(ctx, "settings", doc{Name: "a", Count: 1}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Save(ctx, "settings", doc{Name: "b", Count: 2}); err != nil {
		t.Fatalf("overwrite Save: %v", err)
	}

	var got doc
	if err := store.Load(ctx, "settings", &got); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Name != "b" || got.Count != 2 {
		t.Errorf("loaded %+v, want the overwritten value", got)
	}
}

func TestSQLiteMissingKeyKeepsDefault(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	got := map[string]string{"seed": "kept"}
	if err := store.Load(ctx, "absent", &got); err != nil {
		t.Fatalf("Load absent key: %v", err)
	}
	if got["seed"] != "kept" {
		t.Errorf("default mutated: %v", got)
	}
}

func TestSQLiteRemove(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	if err := store.Save(ctx, "drafts", map[string]string{"compose": "x"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Remove(ctx, "drafts"); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	got := map[string]string{}
	if err := store.Load(ctx, "drafts", &got); err != nil {
		t.Fatalf("Load after remove: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("value survived removal: %v", got)
	}
	// Removing an absent key is a no-op.
	if err := store.Remove(ctx, "drafts"); err != nil {
		t.Errorf("second Remove: %v", err)
	}
}

func TestMemoryStoreCorruptValueFailsSoft(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(zap.NewNop())
	store.Put("plan", []byte(`{{{`))

	got := "Free"
	if err := store.Load(ctx, "plan", &got); err != nil {
		t.Fatalf("Load corrupt value: %v", err)
	}
	if got != "Free" {
		t.Errorf("default mutated: %q", got)
	}
}
