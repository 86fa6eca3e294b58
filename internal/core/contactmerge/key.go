// Package contactmerge deduplicates and reconciles contact records sourced
// from independent origins (the synced store and the device address book).
//
// Two records are "the same person" when their merge keys collide. The key
// is a structural fingerprint over name, phone, and email only; ids,
// creation timestamps, and notes are deliberately excluded so near-duplicate
// records from different sources collapse into one.
package contactmerge

import (
	"hash/fnv"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// pool of fresh transformer chains for name normalization
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKD,                          // decompose so marks are separable
			cases.Fold(),                       // unicode case folding
			runes.Remove(runes.In(unicode.Mn)), // strip combining marks
			runes.Remove(runes.In(unicode.Cf)), // strip format chars
			width.Fold,                         // fullwidth forms to ASCII
			norm.NFC,                           // recompose what survives
		)
	},
}

// normalizeName folds a display name to a comparable form: decomposed,
// case folded, marks and format chars stripped, recomposed, whitespace
// collapsed. Decomposition must come first or precomposed letters like
// U+00E9 never expose their combining mark.
func normalizeName(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")
	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	return strings.Join(strings.Fields(ns), " ")
}

// phoneDigits keeps only the digits of a phone number, so "555-1234" and
// "(555) 1234" fingerprint identically
func phoneDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Key fingerprints (name, phone, email) with FNV-1a over the normalized
// parts. A NUL separator keeps ("ab","c") and ("a","bc") distinct.
func Key(name, phone, email string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(normalizeName(name)))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(phoneDigits(phone)))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(strings.ToLower(strings.TrimSpace(email))))
	return h.Sum64()
}
