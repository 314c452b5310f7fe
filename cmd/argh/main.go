// Command argh prints how argh classifies the tokens given after `--`.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hulevych93/argh"
	"github.com/hulevych93/argh/cmdargs"
)

type options struct {
	preferParam bool
	noSplit     bool
	multiFlag   bool
	params      []string
	output      string
	canonical   bool
	debug       bool
}

func (o options) mode() argh.Mode {
	mode := argh.PreferFlag
	if o.preferParam {
		mode = argh.PreferParam
	}
	if o.noSplit {
		mode |= argh.NoSplitOnEqualSign
	}
	if o.multiFlag {
		mode |= argh.SingleDashIsMultiFlag
	}
	return mode
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:   "argh [flags] -- [args...]",
		Short: "Classify command line tokens into flags, parameters and positional arguments",
		Long: `argh classifies the tokens given after -- the way the argh package does.

Examples:
  argh -- -v --output a.out main.c
  argh -p output -- -v --output a.out main.c
  argh --multiflag -p f -- -xvf archive.tar
  argh --prefer-param -o json -- -a -1 -b 2`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	flags := rootCmd.Flags()
	flags.BoolVar(&opts.preferParam, "prefer-param", false, "Treat an unregistered option followed by a value as a parameter")
	flags.BoolVar(&opts.noSplit, "no-split", false, "Do not split options on the first '='")
	flags.BoolVar(&opts.multiFlag, "multiflag", false, "Split single-dash options into one-character flags")
	flags.StringSliceVarP(&opts.params, "param", "p", nil, "Register parameter names (repeatable, comma separated)")
	flags.StringVarP(&opts.output, "output", "o", "text", "Output format: text, json")
	flags.BoolVar(&opts.canonical, "canonical", false, "Print the tokens rewritten in canonical form")
	flags.BoolVar(&opts.debug, "debug", false, "Log every classified entry to stderr")

	return rootCmd
}

func run(cmd *cobra.Command, opts options, args []string) error {
	if opts.output != "text" && opts.output != "json" {
		return fmt.Errorf("unknown output format %q", opts.output)
	}

	if opts.canonical {
		canonical := cmdargs.NewArgs(args).
			WithRegistered(opts.params...).
			WithMode(opts.mode()).
			Canonical()
		return writeCanonical(cmd.OutOrStdout(), opts.output, canonical.Args)
	}

	parser := argh.New(opts.params...)
	if opts.debug {
		parser.WithLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	res := parser.Parse(args, opts.mode())

	if opts.output == "json" {
		return writeJSON(cmd.OutOrStdout(), newReport(res))
	}
	return writeText(cmd.OutOrStdout(), res)
}

type report struct {
	Flags       []string     `json:"flags"`
	Params      []argh.NamedValue `json:"params"`
	Positionals []string     `json:"positionals"`
}

func newReport(res *argh.Result) report {
	r := report{
		Flags:       res.Flags(),
		Params:      res.Params(),
		Positionals: res.Positionals(),
	}
	// empty arrays rather than null
	if r.Flags == nil {
		r.Flags = []string{}
	}
	if r.Params == nil {
		r.Params = []argh.NamedValue{}
	}
	if r.Positionals == nil {
		r.Positionals = []string{}
	}
	return r
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	return nil
}

func writeText(w io.Writer, res *argh.Result) error {
	var sb strings.Builder
	for _, name := range res.Flags() {
		fmt.Fprintf(&sb, "flag\t%s\n", name)
	}
	for _, p := range res.Params() {
		fmt.Fprintf(&sb, "param\t%s=%s\n", p.Name, p.Value)
	}
	for i, arg := range res.Positionals() {
		fmt.Fprintf(&sb, "%d\t%s\n", i, arg)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeCanonical(w io.Writer, output string, args []string) error {
	if output == "json" {
		if args == nil {
			args = []string{}
		}
		return writeJSON(w, args)
	}
	_, err := fmt.Fprintln(w, strings.Join(args, " "))
	return err
}
