package fs

import (
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/kilnworks/kiln/internal/core/domain"
	"go.trai.ch/zerr"
)

// Hasher computes content hashes for skip detection.
type Hasher struct{}

// NewHasher creates a Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashFile returns the xxhash digest of the file at path.
func (h *Hasher) HashFile(path string) (uint64, error) {
	f, err := os.Open(domain.StripLeadingDotSlash(domain.NormalizePath(path)))
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file for hashing"), "file", path)
	}
	defer func() { _ = f.Close() }()

	d := xxhash.New()
	if _, err := io.Copy(d, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "file", path)
	}
	return d.Sum64(), nil
}

// HashBytes returns the xxhash digest of b.
func (h *Hasher) HashBytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}
