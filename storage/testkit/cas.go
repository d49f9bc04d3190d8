// Package testkit holds a conformance suite shared by storage.Archive
// implementations.
package testkit

import (
	"bytes"
	"testing"

	"github.com/ipfs/go-cid"

	"crc.gg/gamefile/cidutil"
	"crc.gg/gamefile/storage"
)

// NewArchive constructs a fresh, empty archive for a test.
// The returned archive MUST be isolated from other tests.
type NewArchive func(t *testing.T) storage.Archive

// RunArchiveConformance checks the storage.Archive contract.
func RunArchiveConformance(t *testing.T, newArchive NewArchive) {
	t.Helper()

	t.Run("PutGetRoundTrip", func(t *testing.T) {
		a := newArchive(t)
		want := []byte("---\nlayout: game\ngame_id: example-game\n---\n")

		id, err := a.Put("example-game", want)
		if err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		wantID, err := cidutil.Sum(want)
		if err != nil {
			t.Fatalf("Sum failed: %v", err)
		}
		if !id.Equals(wantID) {
			t.Fatalf("Put CID mismatch: got %s want %s", id, wantID)
		}

		got, err := a.Get("example-game", id)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Fatalf("Get bytes mismatch")
		}
	})

	t.Run("PutIdempotent", func(t *testing.T) {
		a := newArchive(t)
		b := []byte("same bytes")

		id1, err := a.Put("example-game", b)
		if err != nil {
			t.Fatalf("Put(1) failed: %v", err)
		}
		id2, err := a.Put("example-game", b)
		if err != nil {
			t.Fatalf("Put(2) failed: %v", err)
		}
		if !id1.Equals(id2) {
			t.Fatalf("Put not idempotent: %s vs %s", id1, id2)
		}
		ids, err := a.List("example-game")
		if err != nil {
			t.Fatalf("List failed: %v", err)
		}
		if len(ids) != 1 {
			t.Fatalf("List: got %d revisions, want 1", len(ids))
		}
	})

	t.Run("RevisionsAreScopedByGame", func(t *testing.T) {
		a := newArchive(t)
		b := []byte("revision")
		id, err := a.Put("game-a", b)
		if err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if a.Has("game-b", id) {
			t.Fatalf("revision leaked across games")
		}
		if _, err := a.Get("game-b", id); !storage.IsNotFound(err) {
			t.Fatalf("Get other game: got err=%v want ErrNotFound", err)
		}
	})

	t.Run("HasAndNotFound", func(t *testing.T) {
		a := newArchive(t)
		b := []byte("missing")
		id, err := cidutil.Sum(b)
		if err != nil {
			t.Fatalf("Sum failed: %v", err)
		}
		if a.Has("example-game", id) {
			t.Fatalf("Has returned true for missing revision")
		}
		if _, err := a.Get("example-game", id); !storage.IsNotFound(err) {
			t.Fatalf("Get missing: got err=%v want ErrNotFound", err)
		}
		if _, err := a.Put("example-game", b); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if !a.Has("example-game", id) {
			t.Fatalf("Has returned false after Put")
		}
	})

	t.Run("RejectInvalidKeys", func(t *testing.T) {
		a := newArchive(t)
		var undef cid.Cid
		if a.Has("example-game", undef) {
			t.Fatalf("Has should be false for undefined CID")
		}
		if _, err := a.Get("example-game", undef); err == nil {
			t.Fatalf("Get should fail for undefined CID")
		}
		if _, err := a.Put("../escape", []byte("x")); err == nil {
			t.Fatalf("Put should reject a game id that is not a slug")
		}
	})
}
