package game

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/robalobadob/wordle-solver/internal/words"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DailyAnswer picks the answer for a date: HMAC-SHA256(salt, YYYY-MM-DD)
// modulo the list length. The same date, salt and list always give the
// same word. An empty list gives "".
func DailyAnswer(date time.Time, salt string, answers words.List) string {
	if len(answers) == 0 {
		return ""
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	n := binary.BigEndian.Uint64(h.Sum(nil)[:8])
	return answers[n%uint64(len(answers))]
}
