// Package argh classifies command line tokens into flags, parameters and
// positional arguments without requiring every option to be declared.
//
// A token starting with a dash that does not read as a number is an option.
// An option followed by a non-option token is ambiguous: it can be a flag
// followed by a positional argument or a parameter followed by its value.
// Registered parameter names and the Mode passed to Parse resolve that:
//
//	p := argh.New("output")
//	res := p.Parse([]string{"-v", "--output", "a.out", "main.c"}, argh.PreferFlag)
//	res.Flag("v")                     // true
//	res.Param("o", "output").String() // "a.out"
//	res.Positional(0)                 // "main.c"
//
// Parsing never fails. Failures surface only when reading typed values, see Value.
package argh

import (
	"flag"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/hulevych93/argh/cmdargs"
	"github.com/hulevych93/argh/internal/invariant"
	"github.com/hulevych93/argh/stdutil"
)

type Mode = cmdargs.Mode

const (
	PreferFlag            = cmdargs.PreferFlag
	PreferParam           = cmdargs.PreferParam
	NoSplitOnEqualSign    = cmdargs.NoSplitOnEqualSign
	SingleDashIsMultiFlag = cmdargs.SingleDashIsMultiFlag
)

// Parser keeps the registered parameter names and the Result of the last Parse.
//
// Registration only ever adds names and affects subsequent Parse calls.
// A Parser is not safe for concurrent mutation; its Results are safe to read
// concurrently.
type Parser struct {
	registered map[string]struct{}
	result     *Result
	logger     *slog.Logger
}

// New returns a Parser with names pre-registered as parameters.
func New(names ...string) *Parser {
	p := &Parser{
		registered: make(map[string]struct{}),
		result:     newResult(nil),
	}
	p.AddParam(names...)
	return p
}

// WithLogger makes the Parser log every classification at debug level.
func (p *Parser) WithLogger(logger *slog.Logger) *Parser {
	p.logger = logger
	return p
}

// AddParam registers names that take the next token as their value whenever
// one is available. Leading dashes are stripped. Registering a name twice is a no-op.
func (p *Parser) AddParam(names ...string) {
	for _, name := range names {
		p.registered[cmdargs.TrimLeadingDashes(name)] = struct{}{}
	}
}

// AddFlagSet registers every non-bool flag defined in the flag sets.
func (p *Parser) AddFlagSet(flagSets ...*flag.FlagSet) {
	for _, fls := range flagSets {
		p.AddParam(stdutil.ParamNames(fls)...)
	}
}

// AddPFlagSet registers the names and shorthands of every pflag that requires a value.
func (p *Parser) AddPFlagSet(flagSets ...*pflag.FlagSet) {
	for _, fls := range flagSets {
		p.AddParam(stdutil.PFlagParamNames(fls)...)
	}
}

// IsParam reports whether name is registered.
func (p *Parser) IsParam(name string) bool {
	_, has := p.registered[cmdargs.TrimLeadingDashes(name)]
	return has
}

// Parse classifies args and returns the new Result, which also replaces the
// one kept by the Parser. A zero mode behaves as PreferFlag.
// Passing both PreferFlag and PreferParam panics.
func (p *Parser) Parse(args []string, mode Mode) *Result {
	invariant.Precondition(mode.IsValid(), "mode %s combines PreferFlag and PreferParam", mode)

	args = append([]string(nil), args...)
	res := newResult(args)
	if p.logger != nil {
		p.logger.Debug("parsing", "tokens", len(args), "mode", mode.String())
	}

	names := make([]string, 0, len(p.registered))
	for name := range p.registered {
		names = append(names, name)
	}

	classified := 0
	cmdargs.NewArgs(args).
		WithRegistered(names...).
		WithMode(mode).
		IterateEntries(func(entry cmdargs.Entry) bool {
			classified += entry.TokensCount()
			res.add(entry)
			if p.logger != nil {
				p.logger.Debug("classified",
					"kind", entry.Kind().String(),
					"tokens", entry.TokenStrings(),
				)
			}
			return true
		})
	invariant.Postcondition(classified == len(args), "%d of %d tokens classified", classified, len(args))

	p.result = res
	return res
}

// ParseArgv is like Parse for a C style argument vector: the tokens end at the
// first nil entry, which is not a token itself.
func (p *Parser) ParseArgv(argv []*string, mode Mode) *Result {
	args := make([]string, 0, len(argv))
	for _, arg := range argv {
		if arg == nil {
			break
		}
		args = append(args, *arg)
	}
	return p.Parse(args, mode)
}

// Result returns the Result of the last Parse, or an empty one.
func (p *Parser) Result() *Result {
	return p.result
}

// Flag is a shortcut for Result().Flag.
func (p *Parser) Flag(names ...string) bool {
	return p.result.Flag(names...)
}

// Param is a shortcut for Result().Param.
func (p *Parser) Param(names ...string) *Value {
	return p.result.Param(names...)
}

// Positional is a shortcut for Result().Positional.
func (p *Parser) Positional(i int) string {
	return p.result.Positional(i)
}

// PositionalValue is a shortcut for Result().PositionalValue.
func (p *Parser) PositionalValue(i int) *Value {
	return p.result.PositionalValue(i)
}

// Size is a shortcut for Result().Size.
func (p *Parser) Size() int {
	return p.result.Size()
}
