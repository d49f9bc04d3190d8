// Package cidutil derives content identifiers for generated game files.
//
// A CID is an IPFS-compatible CIDv1 using the "raw" multicodec and a
// sha2-256 multihash, so identical rendered bytes always share one id.
package cidutil

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// Sum returns the CID of data.
func Sum(data []byte) (cid.Cid, error) {
	mh, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, mh), nil
}

// String returns the CID of data in its default string encoding, or "" if
// hashing fails (unreachable for sha2-256 with default length).
func String(data []byte) string {
	id, err := Sum(data)
	if err != nil {
		return ""
	}
	return id.String()
}

// Parse decodes s and requires the raw codec with a sha2-256 multihash, the
// only form Sum produces.
func Parse(s string) (cid.Cid, error) {
	id, err := cid.Decode(s)
	if err != nil {
		return cid.Undef, err
	}
	if id.Prefix().Codec != cid.Raw {
		return cid.Undef, fmt.Errorf("cidutil: unexpected codec %d", id.Prefix().Codec)
	}
	if id.Prefix().MhType != multihash.SHA2_256 {
		return cid.Undef, fmt.Errorf("cidutil: unexpected hash %d", id.Prefix().MhType)
	}
	return id, nil
}
