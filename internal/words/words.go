// internal/words/words.go
//
// Word list loading for the solver.
//
// Responsibilities:
//   - Parse newline-separated word files (trim, lowercase, keep ^[a-z]{5}$).
//   - Resolve the allowed-guess and possible-answer lists from configured files,
//     falling back to the embedded defaults in assets/.
//   - Provide index lookups; a word's position in its list is its identity.
//
// Resolution (Load):
//  1. allowed and answers paths both set → read both files.
//  2. only the allowed path set         → use that file for both lists.
//  3. neither set                       → embedded defaults.
//  4. only the answers path set         → ErrInvalidInput; answers must be
//     a subset of some allowed list, and the embedded one will not do.
//
// Non-conforming lines are dropped silently; an empty result is an error.

package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robalobadob/wordle-solver/assets"
	"github.com/robalobadob/wordle-solver/internal/errs"
)

// Len is the fixed word length.
const Len = 5

// List is an ordered word list.
type List []string

// IsWord reports whether s is exactly five lowercase ASCII letters.
func IsWord(s string) bool {
	if len(s) != Len {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// Normalize trims and lowercases a raw line.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Parse reads one word per line, keeping only valid words in file order.
func Parse(r io.Reader) (List, error) {
	var out List
	err := EachLine(r, func(line string) error {
		if w := Normalize(line); IsWord(w) {
			out = append(out, w)
		}
		return nil
	})
	return out, err
}

// EachLine calls fn for every line of r, without the line terminator.
// Lines of any length are delivered whole; a final line without a newline
// counts. fn's error stops the read and is returned.
func EachLine(r io.Reader, fn func(line string) error) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if ferr := fn(strings.TrimRight(line, "\r\n")); ferr != nil {
				return ferr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// ReadFile loads a word list from path.
func ReadFile(path string) (List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Defaults returns the embedded allowed and answer lists.
func Defaults() (allowed, answers List, err error) {
	if allowed, err = readEmbedded(assets.Allowed); err != nil {
		return nil, nil, err
	}
	if answers, err = readEmbedded(assets.Answers); err != nil {
		return nil, nil, err
	}
	return allowed, answers, nil
}

func readEmbedded(open func() (io.ReadCloser, error)) (List, error) {
	rc, err := open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Parse(rc)
}

// Load resolves both word lists. Empty paths, or paths that do not exist,
// count as unset.
func Load(allowedPath, answersPath string) (allowed, answers List, err error) {
	wantAllowed := allowedPath
	allowedPath, answersPath = existing(allowedPath), existing(answersPath)

	switch {
	case allowedPath != "" && answersPath != "":
		if allowed, err = ReadFile(allowedPath); err != nil {
			return nil, nil, err
		}
		if answers, err = ReadFile(answersPath); err != nil {
			return nil, nil, err
		}
	case allowedPath != "":
		if allowed, err = ReadFile(allowedPath); err != nil {
			return nil, nil, err
		}
		answers = allowed
	case answersPath != "":
		return nil, nil, fmt.Errorf("%w: answers file %s is set but allowed file %q does not exist",
			errs.ErrInvalidInput, answersPath, wantAllowed)
	default:
		if allowed, answers, err = Defaults(); err != nil {
			return nil, nil, err
		}
	}

	if len(allowed) == 0 {
		return nil, nil, fmt.Errorf("%w: allowed word list is empty", errs.ErrEmptyInput)
	}
	if len(answers) == 0 {
		return nil, nil, fmt.Errorf("%w: answer word list is empty", errs.ErrEmptyInput)
	}
	return allowed, answers, nil
}

func existing(path string) string {
	if path == "" {
		return ""
	}
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

// Index builds a word → index map. Later duplicates do not overwrite the
// first occurrence.
func (l List) Index() map[string]int {
	m := make(map[string]int, len(l))
	for i, w := range l {
		if _, ok := m[w]; !ok {
			m[w] = i
		}
	}
	return m
}

// Contains reports whether w is in the list.
func (l List) Contains(w string) bool {
	for _, x := range l {
		if x == w {
			return true
		}
	}
	return false
}
