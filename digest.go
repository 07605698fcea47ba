package mydiff

import (
	"io"
	"os"

	sha256 "github.com/minio/sha256-simd"
	"github.com/pkg/errors"
)

const digestBlockSize = 64 * 1024

// DigestFile returns the SHA-256 digest of the file at path, streamed
// in fixed-size blocks so arbitrarily large files stay out of memory.
func DigestFile(path string) ([DigestSize]byte, error) {
	var sum [DigestSize]byte

	f, err := os.Open(path)
	if err != nil {
		return sum, errors.Wrap(err, "digest")
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.CopyBuffer(h, f, make([]byte, digestBlockSize)); err != nil {
		return sum, errors.Wrapf(err, "digest %s", path)
	}

	copy(sum[:], h.Sum(nil))
	return sum, nil
}
