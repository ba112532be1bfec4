package filter

// Chain holds an ordered list of exclusion patterns.
type Chain struct {
	patterns []*compiledPattern
}

// NewChain creates an empty exclusion chain.
func NewChain() *Chain {
	return &Chain{}
}

// AddExclude adds an exclusion pattern to the chain.
func (c *Chain) AddExclude(pattern string) error {
	cp, err := compilePattern(pattern)
	if err != nil {
		return err
	}
	c.patterns = append(c.patterns, cp)
	return nil
}

// Patterns returns the original pattern strings in insertion order.
func (c *Chain) Patterns() []string {
	out := make([]string, len(c.patterns))
	for i, cp := range c.patterns {
		out[i] = cp.original
	}
	return out
}

// Empty reports whether the chain has no patterns.
func (c *Chain) Empty() bool {
	return len(c.patterns) == 0
}

// Excluded reports whether relPath matches any pattern in the chain.
// relPath is the entry's path relative to the base directory; an empty
// chain excludes nothing.
func (c *Chain) Excluded(relPath string) bool {
	for _, cp := range c.patterns {
		if cp.match(relPath) {
			return true
		}
	}
	return false
}
