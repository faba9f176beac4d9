// internal/matrix/checksum.go
//
// The matrix file has no header, so a file built from different lists of the
// same lengths loads fine and answers wrongly. BuildFile drops a "<path>.sum"
// sidecar holding a blake2b-256 digest of both lists; the loader compares it
// and warns. A missing sidecar is not an error (older or hand-built files).

package matrix

import (
	"encoding/hex"
	"os"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/robalobadob/wordle-solver/internal/words"
)

// ChecksumPath returns the sidecar path for a matrix file.
func ChecksumPath(path string) string { return path + ".sum" }

// ListsDigest hashes both word lists in order.
func ListsDigest(allowed, answers words.List) string {
	h, _ := blake2b.New256(nil)
	for _, w := range allowed {
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}
	// separator that cannot occur inside a word line
	h.Write([]byte{0})
	for _, w := range answers {
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// WriteChecksum writes the sidecar for path.
func WriteChecksum(path string, allowed, answers words.List) error {
	return os.WriteFile(ChecksumPath(path), []byte(ListsDigest(allowed, answers)+"\n"), 0o644)
}

// VerifyChecksum reports whether the sidecar matches the lists. It returns an
// error satisfying errors.Is(err, os.ErrNotExist) when there is no sidecar.
func VerifyChecksum(path string, allowed, answers words.List) (bool, error) {
	b, err := os.ReadFile(ChecksumPath(path))
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(string(b)) == ListsDigest(allowed, answers), nil
}
