package cmdargs

import (
	"strings"
)

// BundleEntry is a single-dash token split into one-character flags. Its last
// character may be a registered name that continues as a flag or as a parameter
// taking the following token.
type BundleEntry struct {
	arg   string
	flags []string
	tail  Entry // nil, FlagEntry or ParamEntry
}

func (b BundleEntry) TokenStrings() []string {
	if p, isParam := b.tail.(ParamEntry); isParam {
		return []string{b.arg, p.value}
	}
	return []string{b.arg}
}

func (b BundleEntry) TokensCount() int {
	return len(b.TokenStrings())
}

func (b BundleEntry) Kind() EntryKind {
	return EntryKindBundle
}

func (b BundleEntry) String() string {
	return strings.Join(b.TokenStrings(), " ")
}

// Flags returns the bundled one-character flags, without the tail.
func (b BundleEntry) Flags() []string {
	return b.flags
}

// Tail returns the entry the last character turned into, if any.
func (b BundleEntry) Tail() (tail Entry, has bool) {
	return b.tail, b.tail != nil
}
