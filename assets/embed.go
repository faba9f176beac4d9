// assets/embed.go
//
// Embedded fallback word lists. The server still runs (with a small
// vocabulary) when no word files are configured.

package assets

import (
	"embed"
	"io"
)

//go:embed allowed.txt answers.txt
var FS embed.FS

// Allowed opens the embedded allowed-guess list.
func Allowed() (io.ReadCloser, error) {
	return FS.Open("allowed.txt")
}

// Answers opens the embedded possible-answer list.
func Answers() (io.ReadCloser, error) {
	return FS.Open("answers.txt")
}
