package patcher

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultLookahead is how many characters after a lookup are searched for the
// .Update/.Delete call.
const DefaultLookahead = 500

// lookupPattern matches `var <name> = await <expr>.GetAsync(<args>);`.
// Names may use any Unicode letter or digit, as C# identifiers do.
var lookupPattern = regexp.MustCompile(`(var\s+([\p{L}\p{M}\p{N}_]+)\s*=\s*await\s+[^;]+\.GetAsync\([^)]+\);)`)

const (
	untrackedCall = ".GetAsync("
	trackedCall   = ".GetTrackedAsync("
)

// Fix is one rewritten lookup statement.
type Fix struct {
	// Variable is the name the looked-up entity was assigned to
	Variable string
	// Statement is the original statement text
	Statement string
	// Line is the 1-based line the statement starts on
	Line int
}

// Candidate reports whether content could contain a fixable lookup.
func Candidate(content string) bool {
	if !strings.Contains(content, ".GetAsync") {
		return false
	}
	return strings.Contains(content, ".Update(") || strings.Contains(content, ".Delete(")
}

// Rewrite returns content with every qualifying lookup switched to
// GetTrackedAsync, and the fixes applied in source order. A lookup qualifies
// when ".Update(<name>)" or ".Delete(<name>)" appears within lookahead
// characters after it. A CRLF line break counts as one character. Every identical copy of a qualifying statement is rewritten.
func Rewrite(content string, lookahead int) (string, []Fix) {
	if lookahead <= 0 {
		lookahead = DefaultLookahead
	}

	var fixes []Fix
	out := content
	for _, m := range lookupPattern.FindAllStringSubmatchIndex(content, -1) {
		stmt := content[m[2]:m[3]]
		name := content[m[4]:m[5]]

		region := content[m[1]:windowEnd(content, m[1], lookahead)]
		if !strings.Contains(region, ".Update("+name+")") && !strings.Contains(region, ".Delete("+name+")") {
			continue
		}

		out = strings.ReplaceAll(out, stmt, strings.ReplaceAll(stmt, untrackedCall, trackedCall))
		fixes = append(fixes, Fix{
			Variable:  name,
			Statement: stmt,
			Line:      strings.Count(content[:m[0]], "\n") + 1,
		})
	}
	return out, fixes
}

// windowEnd returns the byte offset n characters after start, clamped to the
// end of content.
func windowEnd(content string, start, n int) int {
	i := start
	for ; n > 0 && i < len(content); n-- {
		if strings.HasPrefix(content[i:], "\r\n") {
			i += 2
			continue
		}
		_, size := utf8.DecodeRuneInString(content[i:])
		i += size
	}
	return i
}
