package argv

import "strings"

// DefaultDelims is the delimiter set used by DefaultConfig.
const DefaultDelims = "-"

// ClusterPolicy controls what happens to the remaining characters of a
// clustered flag token after one of its characters captures the next
// token.
type ClusterPolicy int

const (
	// ClusterAbandonRest drops the characters after the capturing one.
	// This matches the reference behavior of single-capture-per-token
	// parsing, where advancing past the captured token ends the cluster.
	ClusterAbandonRest ClusterPolicy = iota

	// ClusterKeepRest classifies the remaining characters as flags
	// without captured values. At most one capture still occurs per
	// token.
	ClusterKeepRest
)

// Config holds the immutable settings consumed by Classify.
type Config struct {
	// CaptureList names the arguments allowed to capture the following
	// token as a value. Options appear by full name, flags as
	// one-character strings.
	CaptureList []string

	// Delims is the set of characters recognized as prefix markers.
	Delims string

	// AllowNegativeNumbers reclassifies single-prefixed tokens that look
	// like negative numbers (digits and '.', or a 0x hex marker) as
	// parameters instead of exploding them into flags.
	AllowNegativeNumbers bool

	// Cluster selects the mid-cluster capture policy.
	Cluster ClusterPolicy
}

// DefaultConfig returns the standard configuration: '-' as the only
// delimiter, negative-number exemption on, no capture names.
func DefaultConfig() Config {
	return Config{Delims: DefaultDelims, AllowNegativeNumbers: true}
}

// CaptureConfig returns DefaultConfig with the given capture names.
func CaptureConfig(names ...string) Config {
	cfg := DefaultConfig()
	cfg.CaptureList = names
	return cfg
}

// IsDelim reports whether c is one of the configured prefix characters.
func (c Config) IsDelim(ch byte) bool {
	return strings.IndexByte(c.Delims, ch) >= 0
}

// PrefixLen counts the leading delimiter characters of token, saturating
// at 2. Counting stops at the first non-delimiter. The saturation is what
// separates flag tokens (1) from option tokens (2); three or more leading
// delimiters still count as 2.
func (c Config) PrefixLen(token string) int {
	count := 0
	for i := 0; i < len(token) && count < 2; i++ {
		if !c.IsDelim(token[i]) {
			break
		}
		count++
	}
	return count
}

// AllowsCapture reports whether name, with any leading delimiters
// stripped, is on the capture list. An empty list or empty name rejects
// immediately.
func (c Config) AllowsCapture(name string) bool {
	if name == "" || len(c.CaptureList) == 0 {
		return false
	}
	name = name[c.PrefixLen(name):]
	for _, entry := range c.CaptureList {
		if entry == name {
			return true
		}
	}
	return false
}
