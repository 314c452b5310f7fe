package cmdargs

// Canonical rewrites args so that every flag reads `--name`, every parameter
// reads `--name=value` and bundles are expanded into separate flags.
// Positional arguments are kept as they are.
//
// With NoSplitOnEqualSign option names may contain `=`, so parameters are written
// as the two tokens `--name value` instead and their names get registered.
//
// The result has PreferFlag mode, plus NoSplitOnEqualSign if args had it, and
// classifies the same way as args. The one exception is a bundled flag followed
// by a positional argument when, with NoSplitOnEqualSign, the same name also
// takes a value elsewhere.
func (args Args) Canonical() Args {
	noSplit := args.mode.Has(NoSplitOnEqualSign)
	res := args.MapEntries(func(entry Entry) []Entry {
		return canonicalEntries(entry, noSplit)
	})
	res.mode = PreferFlag
	if noSplit {
		res.mode |= NoSplitOnEqualSign
	}
	return res
}

func canonicalEntries(entry Entry, noSplit bool) []Entry {
	switch e := entry.(type) {
	case FlagEntry:
		return []Entry{NewFlagEntry("--" + e.Name())}
	case ParamEntry:
		if noSplit {
			return []Entry{NewParamEntry("--"+e.Name(), e.Value())}
		}
		return []Entry{NewInlineParamEntry("--" + e.Name() + "=" + e.Value())}
	case BundleEntry:
		res := make([]Entry, 0, len(e.flags)+1)
		for _, f := range e.flags {
			res = append(res, NewFlagEntry("--"+f))
		}
		if tail, has := e.Tail(); has {
			res = append(res, canonicalEntries(tail, noSplit)...)
		}
		return res
	}
	return []Entry{entry}
}
