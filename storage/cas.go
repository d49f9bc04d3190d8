// Package storage persists generated game files: the output file the
// workflow commits, and an optional content-addressed archive of every
// revision generated for a game.
package storage

import "github.com/ipfs/go-cid"

// Archive keeps every generated revision of a game file, keyed by game id and
// the CID of its bytes.
//
// Contract:
// - Put MUST be idempotent for identical bytes.
// - Stored revisions MUST be immutable.
// - Get MUST return ErrNotFound when the revision is absent.
// - List MUST return revisions in a deterministic order.
type Archive interface {
	Put(gameID string, data []byte) (cid.Cid, error)
	Get(gameID string, id cid.Cid) ([]byte, error)
	Has(gameID string, id cid.Cid) bool
	List(gameID string) ([]cid.Cid, error)
}
