// Package cidutil fingerprints canonical document bytes as CIDv1 strings.
package cidutil

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"golang.org/x/crypto/sha3"
)

// Algorithm names the multihash function used for a CID.
type Algorithm string

const (
	SHA2_256 Algorithm = "sha2-256"
	SHA3_256 Algorithm = "sha3-256"
)

// ParseAlgorithm accepts the multihash names "sha2-256" and "sha3-256".
// The empty string selects SHA2_256.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(name) {
	case "", SHA2_256:
		return SHA2_256, nil
	case SHA3_256:
		return SHA3_256, nil
	default:
		return "", fmt.Errorf("cidutil: unsupported hash %q", name)
	}
}

// CIDv1RawSHA256 returns a CIDv1 string using the "raw" multicodec
// and a sha2-256 multihash.
func CIDv1RawSHA256(data []byte) string {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		// multihash.Sum only errors for invalid inputs; with SHA2_256 and -1 length,
		// this should be unreachable.
		return ""
	}
	return cid.NewCidV1(cid.Raw, sum).String()
}

// CIDv1RawSHA3_256 returns a CIDv1 string using the "raw" multicodec
// and a sha3-256 multihash.
func CIDv1RawSHA3_256(data []byte) string {
	digest := sha3.Sum256(data)
	mh, err := multihash.Encode(digest[:], multihash.SHA3_256)
	if err != nil {
		return ""
	}
	return cid.NewCidV1(cid.Raw, multihash.Multihash(mh)).String()
}

// Sum returns the CIDv1 of data under alg.
func Sum(data []byte, alg Algorithm) (string, error) {
	switch alg {
	case "", SHA2_256:
		return CIDv1RawSHA256(data), nil
	case SHA3_256:
		return CIDv1RawSHA3_256(data), nil
	default:
		return "", fmt.Errorf("cidutil: unsupported hash %q", alg)
	}
}

// Verify reports whether want is the CID of data. The hash function is taken
// from want's prefix.
func Verify(data []byte, want string) (bool, error) {
	c, err := cid.Decode(want)
	if err != nil {
		return false, err
	}
	got, err := c.Prefix().Sum(data)
	if err != nil {
		return false, err
	}
	return got.Equals(c), nil
}
