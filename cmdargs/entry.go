package cmdargs

type EntryKind int

const (
	EntryKindFlag EntryKind = iota
	EntryKindParam
	EntryKindBundle
	EntryKindPositional
)

func (k EntryKind) String() string {
	switch k {
	case EntryKindFlag:
		return "flag"
	case EntryKindParam:
		return "param"
	case EntryKindBundle:
		return "bundle"
	case EntryKindPositional:
		return "positional"
	}
	return "unknown"
}

// Entry is a group of consecutive tokens classified together.
type Entry interface {
	String() string
	TokenStrings() []string
	TokensCount() int
	Kind() EntryKind
}
