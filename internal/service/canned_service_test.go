package service

import (
	"context"
	"testing"

	"github.com/supporthub/helpdesk/internal/state"
	"github.com/supporthub/helpdesk/pkg/util"
)

func newTestCannedService(t *testing.T) (*CannedService, *state.State) {
	t.Helper()
	st := newTestState(t)
	return NewCannedService(CannedDependencies{State: st}), st
}

func TestCannedAddAndQuota(t *testing.T) {
	svc, st := newTestCannedService(t)
	ctx := context.Background()

	// The default workspace ships one canned reply; Free allows 3 total.
	if len(st.Canned) != 1 {
		t.Fatalf("default canned count = %d, want 1", len(st.Canned))
	}

	for i, shortcut := range []string{"/a", "/b"} {
		reply, notice := svc.Add(ctx, "t", shortcut, "body")
		if notice != nil || reply == nil {
			t.Fatalf("add %d: notice=%v", i, notice)
		}
	}

	reply, notice := svc.Add(ctx, "t", "/c", "body")
	if reply != nil {
		t.Error("add beyond the Free limit should not create an entry")
	}
	if notice == nil || notice.Code != util.CodeQuotaExceeded {
		t.Fatalf("notice = %v, want quota exceeded", notice)
	}
	if len(st.Canned) != 3 {
		t.Errorf("canned count = %d, want 3", len(st.Canned))
	}
	if st.Canned[0].Shortcut != "/b" {
		t.Error("add should prepend")
	}
}

func TestCannedDeleteIdempotent(t *testing.T) {
	svc, st := newTestCannedService(t)
	ctx := context.Background()

	reply, _ := svc.Add(ctx, "t", "/bye", "body")
	svc.Delete(ctx, reply.ID)
	if len(st.Canned) != 1 {
		t.Fatalf("canned count after delete = %d, want 1", len(st.Canned))
	}
	svc.Delete(ctx, reply.ID) // absent id is a no-op
	svc.Delete(ctx, "never-existed")
	if len(st.Canned) != 1 {
		t.Errorf("canned count = %d, want 1", len(st.Canned))
	}
}

func TestCannedDeleteKeepsEarlierHandlesIntact(t *testing.T) {
	svc, st := newTestCannedService(t)
	ctx := context.Background()

	first, _ := svc.Add(ctx, "First", "/first", "body")
	second, _ := svc.Add(ctx, "Second", "/second", "body")

	svc.Delete(ctx, second.ID)
	if first.ID == "" || first.Shortcut != "/first" {
		t.Fatalf("earlier handle mutated by delete: %+v", first)
	}

	// The handle must still identify its own entry, so deleting through it
	// removes exactly that entry and leaves the default /welcome alone.
	svc.Delete(ctx, first.ID)
	if len(st.Canned) != 1 || st.Canned[0].Shortcut != "/welcome" {
		t.Errorf("canned = %+v, want only the /welcome default", st.Canned)
	}
}

func TestCannedByShortcut(t *testing.T) {
	svc, _ := newTestCannedService(t)

	reply, ok := svc.ByShortcut("/welcome")
	if !ok || reply.Title != "Welcome" {
		t.Fatalf("ByShortcut(/welcome) = %v ok=%v", reply, ok)
	}
	if _, ok := svc.ByShortcut("/nope"); ok {
		t.Error("unknown shortcut should not match")
	}
}

func TestExpand(t *testing.T) {
	got := Expand("Hi {{name}}, {{agent}} here. Bye {{name}}!", ExpandVars{Agent: "Ann", Name: "Bob"})
	want := "Hi Bob, Ann here. Bye Bob!"
	if got != want {
		t.Errorf("Expand = %q, want %q", got, want)
	}
}

func TestExpandLeavesUnmatchedTokens(t *testing.T) {
	if got := Expand("Hi {{unknown}}", ExpandVars{}); got != "Hi {{unknown}}" {
		t.Errorf("Expand = %q, want unmatched token left verbatim", got)
	}
}

func TestImportExportRoundTrip(t *testing.T) {
	svc, st := newTestCannedService(t)
	ctx := context.Background()

	svc.Add(ctx, "Refund", "/refund", "We have issued a refund, {{name}}.")

	exported, err := svc.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	// Import into a fresh workspace and compare the tuples that matter.
	fresh, freshState := newTestCannedService(t)
	freshState.Canned = nil
	result, err := fresh.ImportJSON(ctx, exported)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	if result.Imported != 2 || result.Skipped != 0 {
		t.Fatalf("result = %+v, want 2 imported", result)
	}
	if len(freshState.Canned) != len(st.Canned) {
		t.Fatalf("imported %d, want %d", len(freshState.Canned), len(st.Canned))
	}
	// Import adds each item individually, so order is reversed relative to
	// the export; ids are always regenerated.
	for i := range freshState.Canned {
		orig := st.Canned[len(st.Canned)-1-i]
		got := freshState.Canned[i]
		if got.Title != orig.Title || got.Shortcut != orig.Shortcut || got.Body != orig.Body {
			t.Errorf("item %d = %+v, want tuple of %+v", i, got, orig)
		}
		if got.ID == orig.ID {
			t.Errorf("item %d kept the exported id %s", i, got.ID)
		}
	}
}

func TestImportRejectsNonArray(t *testing.T) {
	svc, st := newTestCannedService(t)
	before := len(st.Canned)

	for _, payload := range []string{`{"title":"x"}`, `"text"`, `42`, `null`, `not json`} {
		_, err := svc.ImportJSON(context.Background(), payload)
		if util.ToDomainError(err).Code != util.CodeInvalidImportFormat {
			t.Errorf("ImportJSON(%q) err = %v, want invalid import format", payload, err)
		}
	}
	if len(st.Canned) != before {
		t.Error("failed imports must not apply anything")
	}
}

func TestImportDropsOverflowItems(t *testing.T) {
	svc, st := newTestCannedService(t)

	payload := `[
  {"title": "A", "shortcut": "/a", "body": "a"},
  {"title": "B", "shortcut": "/b", "body": "b"},
  {"title": "C", "shortcut": "/c", "body": "c"},
  {"title": "D", "shortcut": "/d", "body": "d"}
]`
	result, err := svc.ImportJSON(context.Background(), payload)
	if err != nil {
		t.Fatalf("ImportJSON: %v", err)
	}
	// One slot is taken by the default /welcome reply: 2 fit, 2 drop.
	if result.Imported != 2 || result.Skipped != 2 {
		t.Errorf("result = %+v, want 2 imported / 2 skipped", result)
	}
	if len(st.Canned) != 3 {
		t.Errorf("canned count = %d, want the Free limit of 3", len(st.Canned))
	}
}
