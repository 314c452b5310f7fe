package cmdargs

// Args is a token sequence together with the settings that drive its
// classification. It is a value type: With* methods return modified copies.
type Args struct {
	Args       []string
	registered map[string]struct{}
	mode       Mode
}

func NewArgs(args []string) Args {
	return Args{
		Args: args,
	}
}

// WithMode sets the classification mode. A zero Mode behaves as PreferFlag.
func (args Args) WithMode(mode Mode) Args {
	args.mode = mode
	return args
}

// WithRegistered adds parameter names that always take the next token as
// their value. Leading dashes of the names are stripped.
func (args Args) WithRegistered(names ...string) Args {
	registered := make(map[string]struct{}, len(args.registered)+len(names))
	for name := range args.registered {
		registered[name] = struct{}{}
	}
	for _, name := range names {
		registered[TrimLeadingDashes(name)] = struct{}{}
	}
	args.registered = registered
	return args
}

func (args Args) Mode() Mode {
	return args.mode
}

// IsRegistered reports whether name, with leading dashes stripped, is a registered parameter name.
func (args Args) IsRegistered(name string) bool {
	_, has := args.registered[TrimLeadingDashes(name)]
	return has
}

func (args Args) isRegistered(name string) bool {
	_, has := args.registered[name]
	return has
}
