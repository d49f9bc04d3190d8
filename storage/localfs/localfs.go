// Package localfs is a filesystem-backed storage.Archive.
package localfs

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/ipfs/go-cid"

	"crc.gg/gamefile/cidutil"
	"crc.gg/gamefile/gamefile"
	"crc.gg/gamefile/storage"
)

const revisionExt = ".md"

// Archive stores revisions as <root>/<game_id>/<cid>.md, read-only once
// written. It never uses the network and never depends on wall-clock time.
type Archive struct {
	root string
}

var _ storage.Archive = (*Archive)(nil)

// New constructs an archive rooted at root, creating the directory if needed.
func New(root string) (*Archive, error) {
	if root == "" {
		return nil, errors.New("localfs: root directory is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &Archive{root: root}, nil
}

// Put stores data as a revision of gameID and returns its CID. Storing the
// same bytes twice is a no-op.
func (a *Archive) Put(gameID string, data []byte) (cid.Cid, error) {
	if !gamefile.IsID(gameID) {
		return cid.Undef, storage.ErrInvalidGame
	}
	id, err := cidutil.Sum(data)
	if err != nil {
		return cid.Undef, err
	}

	path := a.pathFor(gameID, id)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return cid.Undef, err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o444)
	if err != nil {
		if !os.IsExist(err) {
			return cid.Undef, err
		}
		existing, rerr := a.Get(gameID, id)
		if rerr != nil || !bytes.Equal(existing, data) {
			return cid.Undef, storage.ErrImmutable
		}
		return id, nil
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return cid.Undef, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return cid.Undef, err
	}
	return id, nil
}

// Get returns the revision bytes after verifying them against id.
func (a *Archive) Get(gameID string, id cid.Cid) ([]byte, error) {
	if !gamefile.IsID(gameID) {
		return nil, storage.ErrInvalidGame
	}
	if !id.Defined() {
		return nil, storage.ErrInvalidCID
	}
	b, err := os.ReadFile(a.pathFor(gameID, id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	got, err := cidutil.Sum(b)
	if err != nil {
		return nil, err
	}
	if !got.Equals(id) {
		return nil, storage.ErrCIDMismatch
	}
	return b, nil
}

func (a *Archive) Has(gameID string, id cid.Cid) bool {
	if !gamefile.IsID(gameID) || !id.Defined() {
		return false
	}
	_, err := os.Stat(a.pathFor(gameID, id))
	return err == nil
}

// List returns the stored revisions of gameID ordered by CID string.
func (a *Archive) List(gameID string) ([]cid.Cid, error) {
	if !gamefile.IsID(gameID) {
		return nil, storage.ErrInvalidGame
	}
	entries, err := os.ReadDir(filepath.Join(a.root, gameID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []cid.Cid
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, revisionExt) {
			continue
		}
		id, err := cidutil.Parse(strings.TrimSuffix(name, revisionExt))
		if err != nil {
			continue
		}
		out = append(out, id)
	}
	return out, nil
}

func (a *Archive) pathFor(gameID string, id cid.Cid) string {
	return filepath.Join(a.root, gameID, id.String()+revisionExt)
}
