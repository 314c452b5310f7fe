package cmdargs

// LookupFlag reports whether flagName, with leading dashes stripped, is classified
// as a flag anywhere in args, including inside bundles.
func (args Args) LookupFlag(flagName string) (has bool) {
	flagName = TrimLeadingDashes(flagName)
	args.IterateEntries(func(entry Entry) bool {
		switch e := entry.(type) {
		case FlagEntry:
			has = e.Name() == flagName
		case BundleEntry:
			for _, f := range e.Flags() {
				if f == flagName {
					has = true
				}
			}
			if tail, ok := e.tail.(FlagEntry); ok && tail.Name() == flagName {
				has = true
			}
		}
		return !has
	})
	return has
}

// LookupParam returns the first parameter entry named paramName, including a
// parameter trailing a bundle.
func (args Args) LookupParam(paramName string) (res ParamEntry, has bool) {
	paramName = TrimLeadingDashes(paramName)
	args.IterateEntries(func(entry Entry) bool {
		p, isParam := entry.(ParamEntry)
		if b, isBundle := entry.(BundleEntry); isBundle {
			p, isParam = b.tail.(ParamEntry)
		}
		if isParam && p.Name() == paramName {
			res = p
			has = true
			return false
		}
		return true
	})
	return res, has
}
