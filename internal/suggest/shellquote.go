package suggest

import "strings"

// ShellQuote wraps s in single quotes so it pastes safely into a POSIX
// shell. An embedded single quote closes the quote, emits an escaped
// quote, and reopens: it's becomes 'it'\''s'.
func ShellQuote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' {
			b.WriteString(`'\''`)
		} else {
			b.WriteByte(s[i])
		}
	}
	b.WriteByte('\'')
	return b.String()
}
