package cmdargs

// MapFlags is MapEntries that maps FlagEntry values only. The flags of a
// BundleEntry are not passed to mapper.
func (args Args) MapFlags(
	mapper func(flag FlagEntry) (mapped Entry),
) Args {
	return args.MapEntries(func(entry Entry) []Entry {
		if flag, isFlag := entry.(FlagEntry); isFlag {
			if mapped := mapper(flag); mapped != nil {
				return []Entry{mapped}
			}
			return nil
		}
		return []Entry{entry}
	})
}
