package cmdargs

// IterateEntries groups the tokens produced by IterateTokens into entries:
// a parameter name and its value become one ParamEntry, a bundle and the value
// of its trailing parameter become one BundleEntry.
func (args Args) IterateEntries(yield func(entry Entry) (getNext bool)) {
	var prevParamToken Token
	args.IterateTokens(func(token Token) bool {
		switch {
		case token.Role.Has(RoleParamValue):
			param := ParamEntry{
				arg:   prevParamToken.Arg,
				name:  token.Name,
				value: token.Value,
			}
			bundled := prevParamToken.Role.Has(RoleBundle)
			flags := prevParamToken.Bundled
			prevParamToken = Token{}
			if bundled {
				return yield(BundleEntry{
					arg:   param.arg,
					flags: flags,
					tail:  param,
				})
			}
			return yield(param)
		case token.Role.Has(RoleParam):
			prevParamToken = token
			return true
		case token.Role.Has(RoleBundle):
			entry := BundleEntry{
				arg:   token.Arg,
				flags: token.Bundled,
			}
			if token.Role.Has(RoleFlag) {
				entry.tail = FlagEntry{arg: token.Arg, name: token.Name}
			}
			return yield(entry)
		case token.Role.Has(RoleInline):
			return yield(ParamEntry{
				arg:      token.Arg,
				name:     token.Name,
				value:    token.Value,
				isInline: true,
			})
		case token.Role.Has(RoleFlag):
			return yield(FlagEntry{
				arg:  token.Arg,
				name: token.Name,
			})
		default:
			return yield(PositionalEntry(token.Arg))
		}
	})
}
