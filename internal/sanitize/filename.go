// Package sanitize turns client-supplied filenames into names that are safe to
// join onto a server-side directory.
package sanitize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// Filename returns a flat, ASCII-only version of name with no directory
// components. Path separators become word breaks, runs of whitespace are
// joined with "_", anything outside [A-Za-z0-9_.-] is dropped and leading or
// trailing dots and underscores are trimmed.
//
// Backslash counts as a separator on every platform, so `a\b` becomes "a_b".
// Werkzeug's secure_filename only does that on Windows and yields "ab" on
// POSIX hosts.
//
// The result may be empty (for example "../" or a name made only of non-ASCII
// characters); callers must treat an empty result as invalid input.
func Filename(name string) string {
	name = foldASCII(name)
	name = strings.NewReplacer("/", " ", "\\", " ").Replace(name)
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}

// foldASCII decomposes name (NFKD) and keeps only the ASCII runes, so "résumé"
// becomes "resume" instead of losing the accented letters entirely.
func foldASCII(name string) string {
	decomposed := norm.NFKD.String(name)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r <= unicode.MaxASCII {
			b.WriteRune(r)
		}
	}
	return b.String()
}
