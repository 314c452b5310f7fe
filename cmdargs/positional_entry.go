package cmdargs

type PositionalEntry string

func (pe PositionalEntry) String() string {
	return string(pe)
}

func (pe PositionalEntry) TokenStrings() []string {
	return []string{string(pe)}
}

func (pe PositionalEntry) TokensCount() int {
	return 1
}

func (pe PositionalEntry) Kind() EntryKind {
	return EntryKindPositional
}
