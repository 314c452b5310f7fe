package argh

import (
	"sort"

	"github.com/hulevych93/argh/cmdargs"
)

// NamedValue is one recorded parameter value.
type NamedValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Result holds the classification of one Parse call. It is never modified after
// Parse returns, so concurrent reads are safe.
type Result struct {
	args        []string
	flags       map[string]int
	params      map[string][]string
	paramOrder  []NamedValue
	positionals []string
}

func newResult(args []string) *Result {
	return &Result{
		args:   args,
		flags:  make(map[string]int),
		params: make(map[string][]string),
	}
}

func (r *Result) addFlag(name string) {
	r.flags[name]++
}

func (r *Result) addParam(name, value string) {
	r.params[name] = append(r.params[name], value)
	r.paramOrder = append(r.paramOrder, NamedValue{Name: name, Value: value})
}

func (r *Result) add(entry cmdargs.Entry) {
	switch e := entry.(type) {
	case cmdargs.FlagEntry:
		r.addFlag(e.Name())
	case cmdargs.ParamEntry:
		r.addParam(e.Name(), e.Value())
	case cmdargs.BundleEntry:
		for _, f := range e.Flags() {
			r.addFlag(f)
		}
		if tail, has := e.Tail(); has {
			r.add(tail)
		}
	case cmdargs.PositionalEntry:
		r.positionals = append(r.positionals, string(e))
	}
}

// Flag reports whether any of the names was seen as a flag.
// Leading dashes of the names are ignored.
func (r *Result) Flag(names ...string) bool {
	for _, name := range names {
		if r.flags[cmdargs.TrimLeadingDashes(name)] > 0 {
			return true
		}
	}
	return false
}

// FlagCount returns how many times name was seen as a flag.
func (r *Result) FlagCount(name string) int {
	return r.flags[cmdargs.TrimLeadingDashes(name)]
}

// Param returns the value of the first name, in the given order, that has one.
// If a name was given several times its first value is used.
// Returns FailedValue() if none of the names has a value.
func (r *Result) Param(names ...string) *Value {
	for _, name := range names {
		if values := r.params[cmdargs.TrimLeadingDashes(name)]; len(values) > 0 {
			return NewValue(values[0])
		}
	}
	return FailedValue()
}

// ParamAll returns every value recorded for name in the order they appeared.
func (r *Result) ParamAll(name string) []string {
	values := r.params[cmdargs.TrimLeadingDashes(name)]
	if len(values) == 0 {
		return nil
	}
	return append([]string(nil), values...)
}

// Positional returns the positional argument at index i or "" if there is none.
func (r *Result) Positional(i int) string {
	if i < 0 || i >= len(r.positionals) {
		return ""
	}
	return r.positionals[i]
}

// PositionalValue is like Positional but wraps the argument for typed reads.
func (r *Result) PositionalValue(i int) *Value {
	if i < 0 || i >= len(r.positionals) {
		return FailedValue()
	}
	return NewValue(r.positionals[i])
}

// Size returns the number of positional arguments.
func (r *Result) Size() int {
	return len(r.positionals)
}

// Args returns the tokens the Result was parsed from.
func (r *Result) Args() []string {
	return append([]string(nil), r.args...)
}

// Flags returns the sorted flag names, repeated as many times as they were seen.
func (r *Result) Flags() []string {
	var flags []string
	for name, count := range r.flags {
		for i := 0; i < count; i++ {
			flags = append(flags, name)
		}
	}
	sort.Strings(flags)
	return flags
}

// Params returns all parameters in the order they appeared.
func (r *Result) Params() []NamedValue {
	return append([]NamedValue(nil), r.paramOrder...)
}

// Positionals returns all positional arguments in order.
func (r *Result) Positionals() []string {
	return append([]string(nil), r.positionals...)
}
