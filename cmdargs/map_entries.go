package cmdargs

// MapEntries returns Args made of the tokens of the entries mapper returns for
// each classified entry, in order. Returning no entries drops the entry.
// The result keeps the mode of args. Names of mapped two-token ParamEntry values
// are registered in the result so that they keep taking their value.
func (args Args) MapEntries(
	mapper func(Entry) []Entry,
) Args {
	res := Args{
		mode:       args.mode,
		registered: args.registered,
	}
	cloned := false

	args.IterateEntries(func(entry Entry) bool {
		for _, mapped := range mapper(entry) {
			res.Args = append(res.Args, mapped.TokenStrings()...)
			if p, isParam := mapped.(ParamEntry); isParam && !p.IsInline() && !res.isRegistered(p.Name()) {
				// Param name is new
				if !cloned {
					res = res.WithRegistered()
					cloned = true
				}
				res.registered[p.Name()] = struct{}{}
			}
		}
		return true
	})

	return res
}
