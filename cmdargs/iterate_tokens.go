package cmdargs

import (
	"strings"
	"unicode/utf8"
)

// IterateTokens classifies args in a single left-to-right pass and calls yield
// once per token, in order. Iteration stops when yield returns false.
//
// A token that is not an option is positional. An option is, in this order:
//   - an inline parameter if it contains `=` (unless NoSplitOnEqualSign is set);
//   - a bundle of single-character flags if SingleDashIsMultiFlag is set, it has
//     exactly one dash and its name is not registered. If the last character is
//     a registered name, that character goes on to the next rules;
//   - a flag if it is the last token or the next token is an option;
//   - a parameter taking the next token as value if it is registered or the mode
//     has PreferParam;
//   - a flag otherwise, the next token is classified on its own.
func (args Args) IterateTokens(yield func(token Token) bool) {
	preferParam := args.mode.Has(PreferParam)

	for i := 0; i < len(args.Args); i++ {
		arg := args.Args[i]
		token := Token{
			Arg: arg,
		}

		if !IsOption(arg) {
			token.Role = RolePositional
			if !yield(token) {
				return
			}
			continue
		}

		name := TrimLeadingDashes(arg)

		if !args.mode.Has(NoSplitOnEqualSign) {
			if key, value, found := strings.Cut(name, "="); found {
				token.Name = key
				token.Value = value
				token.Role = RoleInline
				if args.isRegistered(key) {
					token.Role |= RoleRegistered
				}
				if !yield(token) {
					return
				}
				continue
			}
		}

		if args.mode.Has(SingleDashIsMultiFlag) && DashCount(arg) == 1 && !args.isRegistered(name) {
			bundled, last := args.splitBundle(name)
			token.Role = RoleBundle
			token.Bundled = bundled
			if last == "" {
				token.Name = name
				if !yield(token) {
					return
				}
				continue
			}
			name = last
		}

		token.Name = name
		if args.isRegistered(name) {
			token.Role |= RoleRegistered
		}

		if i == len(args.Args)-1 || IsOption(args.Args[i+1]) ||
			(!token.Role.Has(RoleRegistered) && !preferParam) {
			token.Role |= RoleFlag
			if !yield(token) {
				return
			}
			continue
		}

		token.Role |= RoleParam
		if !yield(token) {
			return
		}
		i++
		valueToken := Token{
			Arg:   args.Args[i],
			Name:  name,
			Value: args.Args[i],
			Role:  RoleParamValue | token.Role&RoleRegistered,
		}
		if !yield(valueToken) {
			return
		}
	}
}

// splitBundle splits name into single-character flags. If the last character is
// a registered name it is returned separately as last.
func (args Args) splitBundle(name string) (bundled []string, last string) {
	if lastRune, size := utf8.DecodeLastRuneInString(name); size > 0 &&
		args.isRegistered(string(lastRune)) {
		last = string(lastRune)
		name = name[:len(name)-size]
	}
	bundled = make([]string, 0, utf8.RuneCountInString(name))
	for _, r := range name {
		bundled = append(bundled, string(r))
	}
	return bundled, last
}
