package filter

import (
	"regexp"
	"strings"
)

// compiledPattern is a compiled glob pattern that can match relative paths.
type compiledPattern struct {
	re       *regexp.Regexp
	original string
}

// compilePattern converts a glob pattern into a compiled matcher.
// The only wildcard is *, which matches zero or more of any character,
// path separators included. Every other character matches literally, and
// the whole relative path must be consumed (full-string match, not
// substring search).
func compilePattern(pattern string) (*compiledPattern, error) {
	re, err := regexp.Compile("^" + globToRegex(pattern) + "$")
	if err != nil {
		return nil, err
	}
	return &compiledPattern{re: re, original: pattern}, nil
}

// match tests whether a relative path matches this pattern.
func (cp *compiledPattern) match(relPath string) bool {
	return cp.re.MatchString(relPath)
}

// globToRegex converts a glob pattern to a regex string. Runs of
// consecutive * collapse into a single wildcard.
func globToRegex(pattern string) string {
	var b strings.Builder
	i := 0
	for i < len(pattern) {
		if pattern[i] == '*' {
			b.WriteString(".*")
			for i < len(pattern) && pattern[i] == '*' {
				i++
			}
			continue
		}
		j := i
		for j < len(pattern) && pattern[j] != '*' {
			j++
		}
		b.WriteString(regexp.QuoteMeta(pattern[i:j]))
		i = j
	}
	return b.String()
}
