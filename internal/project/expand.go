package project

import (
	"os"
	"strings"
)

// ExpandEnv replaces environment variable references in s with their current values.
//
// Both the POSIX forms ($NAME, ${NAME}) and the Windows form (%NAME%) are recognised.
// References to undefined variables and malformed references are kept verbatim, since
// '$' and '%' are legal in Windows paths. After an undefined %NAME% the scan resumes at
// its closing '%', as Windows ExpandEnvironmentStrings does. Substituted values are not
// expanded again.
func ExpandEnv(s string) string {
	if !strings.ContainsAny(s, "$%") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); {
		switch s[i] {
		case '%':
			if end := strings.IndexByte(s[i+1:], '%'); end > 0 {
				if value, ok := os.LookupEnv(s[i+1 : i+1+end]); ok {
					b.WriteString(value)
					i += end + 2
					continue
				}
				b.WriteString(s[i : i+1+end])
				i += end + 1
				continue
			}
		case '$':
			if name, width := dollarRef(s[i+1:]); width > 0 {
				if value, ok := os.LookupEnv(name); ok {
					b.WriteString(value)
				} else {
					b.WriteString(s[i : i+1+width])
				}
				i += width + 1
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// dollarRef parses the reference following a '$'. It returns the variable name and the
// number of bytes the reference spans, or a zero width when there is no well-formed one.
func dollarRef(s string) (string, int) {
	if strings.HasPrefix(s, "{") {
		end := strings.IndexByte(s, '}')
		if end < 2 || !isName(s[1:end]) {
			return "", 0
		}
		return s[1:end], end + 1
	}
	n := 0
	for n < len(s) && isNameByte(s[n], n == 0) {
		n++
	}
	return s[:n], n
}

func isName(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isNameByte(s[i], i == 0) {
			return false
		}
	}
	return s != ""
}

func isNameByte(c byte, first bool) bool {
	switch {
	case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		return true
	case '0' <= c && c <= '9':
		return !first
	}
	return false
}
