package cmdargs

import (
	"strings"
)

// FlagEntry is a single option token recorded as a flag.
type FlagEntry struct {
	arg  string
	name string
}

func NewFlagEntry(arg string) FlagEntry {
	return FlagEntry{
		arg:  arg,
		name: TrimLeadingDashes(arg),
	}
}

func (f FlagEntry) TokenStrings() []string {
	return []string{f.arg}
}

func (f FlagEntry) TokensCount() int {
	return 1
}

func (f FlagEntry) Kind() EntryKind {
	return EntryKindFlag
}

func (f FlagEntry) String() string {
	return f.arg
}

func (f FlagEntry) Name() string {
	return f.name
}

// ParamEntry is a named value, either inline (`--name=value`) or spread over
// a name token and a value token.
type ParamEntry struct {
	arg      string
	name     string
	value    string
	isInline bool
}

// NewParamEntry returns a two-token parameter entry.
func NewParamEntry(arg, value string) ParamEntry {
	return ParamEntry{
		arg:   arg,
		name:  TrimLeadingDashes(arg),
		value: value,
	}
}

// NewInlineParamEntry returns a single-token `name=value` parameter entry.
func NewInlineParamEntry(arg string) ParamEntry {
	name, value, _ := strings.Cut(TrimLeadingDashes(arg), "=")
	return ParamEntry{
		arg:      arg,
		name:     name,
		value:    value,
		isInline: true,
	}
}

func (p ParamEntry) TokenStrings() []string {
	if p.isInline {
		return []string{p.arg}
	}
	return []string{p.arg, p.value}
}

func (p ParamEntry) TokensCount() int {
	if p.isInline {
		return 1
	}
	return 2
}

func (p ParamEntry) Kind() EntryKind {
	return EntryKindParam
}

func (p ParamEntry) String() string {
	return strings.Join(p.TokenStrings(), " ")
}

func (p ParamEntry) Name() string {
	return p.name
}

func (p ParamEntry) Value() string {
	return p.value
}

func (p ParamEntry) IsInline() bool {
	return p.isInline
}

func (p ParamEntry) Equals(other ParamEntry) bool {
	return p.name == other.name &&
		p.value == other.value
}
