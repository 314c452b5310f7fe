package argh

import (
	"bytes"
	"flag"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

type classification struct {
	Flags       []string
	Params      []NamedValue
	Positionals []string
}

func classify(res *Result) classification {
	return classification{
		Flags:       res.Flags(),
		Params:      res.Params(),
		Positionals: res.Positionals(),
	}
}

func TestParser_Parse(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name       string
		registered []string
		args       []string
		mode       Mode
		expected   classification
	}{
		{
			name:     "empty",
			args:     nil,
			expected: classification{},
		},
		{
			name: "default mode",
			args: []string{"0", "-a", "1", "-b", "2", "3", "4"},
			expected: classification{
				Flags:       []string{"a", "b"},
				Positionals: []string{"0", "1", "2", "3", "4"},
			},
		},
		{
			name: "prefer param with negative value",
			args: []string{"0", "-a", "-1", "-b", "2", "3", "4"},
			mode: PreferParam,
			expected: classification{
				Params:      []NamedValue{{"a", "-1"}, {"b", "2"}},
				Positionals: []string{"0", "3", "4"},
			},
		},
		{
			name: "split on equal sign",
			args: []string{"--answer=42", "---no_val="},
			expected: classification{
				Params: []NamedValue{{"answer", "42"}, {"no_val", ""}},
			},
		},
		{
			name: "no split on equal sign",
			args: []string{"--answer=42"},
			mode: NoSplitOnEqualSign | PreferFlag,
			expected: classification{
				Flags: []string{"answer=42"},
			},
		},
		{
			name: "multi flag prefer param",
			args: []string{"-xvf", "42", "--abc", "54"},
			mode: PreferParam | SingleDashIsMultiFlag,
			expected: classification{
				Flags:       []string{"f", "v", "x"},
				Params:      []NamedValue{{"abc", "54"}},
				Positionals: []string{"42"},
			},
		},
		{
			name: "bundle kept whole without multi flag",
			args: []string{"-xvf", "42", "--abc", "54"},
			expected: classification{
				Flags:       []string{"abc", "xvf"},
				Positionals: []string{"42", "54"},
			},
		},
		{
			name: "bundle kept whole with prefer param",
			args: []string{"-xvf", "42", "--abc", "54"},
			mode: PreferParam,
			expected: classification{
				Params: []NamedValue{{"xvf", "42"}, {"abc", "54"}},
			},
		},
		{
			name:       "registered last char of bundle",
			registered: []string{"f"},
			args:       []string{"-xvf", "42", "--abc", "54"},
			mode:       SingleDashIsMultiFlag,
			expected: classification{
				Flags:       []string{"abc", "v", "x"},
				Params:      []NamedValue{{"f", "42"}},
				Positionals: []string{"54"},
			},
		},
		{
			name:       "registered last char of bundle prefer flag",
			registered: []string{"-f"},
			args:       []string{"-xvf", "42", "--abc", "54"},
			mode:       PreferFlag | SingleDashIsMultiFlag,
			expected: classification{
				Flags:       []string{"abc", "v", "x"},
				Params:      []NamedValue{{"f", "42"}},
				Positionals: []string{"54"},
			},
		},
		{
			name: "repeated names",
			args: []string{"-v", "-v", "--out=a", "-v", "--out=b"},
			expected: classification{
				Flags:  []string{"v", "v", "v"},
				Params: []NamedValue{{"out", "a"}, {"out", "b"}},
			},
		},
		{
			name: "double dash is an empty name",
			args: []string{"a", "--", "b"},
			mode: PreferParam,
			expected: classification{
				Params:      []NamedValue{{"", "b"}},
				Positionals: []string{"a"},
			},
		},
		{
			name: "numeric tokens stay positional",
			args: []string{"-5", "-0.25", "-1e3", "-x"},
			expected: classification{
				Flags:       []string{"x"},
				Positionals: []string{"-5", "-0.25", "-1e3"},
			},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res := New(tc.registered...).Parse(tc.args, tc.mode)
			if diff := cmp.Diff(tc.expected, classify(res)); diff != "" {
				t.Errorf("classification mismatch (-want +got):\n%s", diff)
			}
			require.Equal(t, len(tc.expected.Positionals), res.Size())
		})
	}
}

func TestParser_ParseIsRepeatable(t *testing.T) {
	t.Parallel()
	args := []string{"0", "-a", "1", "--b=2", "-xyz", "-5", "--", "-cd", "v"}
	modes := []Mode{0, PreferParam, NoSplitOnEqualSign, PreferParam | SingleDashIsMultiFlag}
	for _, mode := range modes {
		p := New("d")
		first := classify(p.Parse(args, mode))
		second := classify(p.Parse(args, mode))
		require.Equal(t, first, second, "mode %s", mode)
	}
}

func TestParser_ParseReplacesResult(t *testing.T) {
	t.Parallel()
	p := New()
	p.Parse([]string{"-a", "x", "--k=v"}, PreferFlag)
	require.True(t, p.Flag("a"))
	require.Equal(t, 1, p.Size())

	res := p.Parse([]string{"y", "z"}, PreferFlag)
	require.Same(t, res, p.Result())
	require.False(t, p.Flag("a"))
	require.False(t, p.Param("k").OK())
	require.Equal(t, 2, p.Size())
	require.Equal(t, []string{"y", "z"}, res.Args())
}

func TestParser_ParseCopiesArgs(t *testing.T) {
	t.Parallel()
	args := []string{"a", "-b"}
	res := New().Parse(args, PreferFlag)
	args[0] = "changed"
	require.Equal(t, "a", res.Positional(0))
	require.Equal(t, []string{"a", "-b"}, res.Args())
}

func TestParser_ParseArgv(t *testing.T) {
	t.Parallel()
	ptr := func(s string) *string { return &s }
	argv := []*string{ptr("0"), ptr("-a"), ptr("1"), ptr("-b"), ptr("2"), ptr("3"), ptr("4"), nil}

	p := New()
	res := p.ParseArgv(argv, PreferFlag)
	require.True(t, res.Flag("a"))
	require.True(t, res.Flag("b"))
	require.False(t, res.Flag("c"))
	require.Equal(t, 5, res.Size())
	require.Len(t, res.Args(), 7)

	res = p.ParseArgv([]*string{ptr("x"), nil, ptr("y")}, PreferFlag)
	require.Equal(t, []string{"x"}, res.Positionals())

	res = p.ParseArgv(nil, PreferFlag)
	require.Equal(t, 0, res.Size())
}

func TestParser_ConflictingModesPanic(t *testing.T) {
	t.Parallel()
	defer func() {
		msg := fmt.Sprintf("%v", recover())
		require.Contains(t, msg, "PRECONDITION VIOLATION: mode PreferFlag|PreferParam")
		require.Contains(t, msg, "parser.go:")
	}()
	New().Parse([]string{"-a", "1"}, PreferFlag|PreferParam)
	t.Fatal("expected a panic")
}

func TestParser_EmptyBeforeParse(t *testing.T) {
	t.Parallel()
	p := New()
	require.Equal(t, 0, p.Size())
	require.Equal(t, "", p.Positional(0))
	require.False(t, p.PositionalValue(0).OK())
	require.False(t, p.Flag("xxx"))
	require.Equal(t, "", p.Param("xxx").String())
	require.False(t, p.Param("xxx").OK())
}

func TestParser_UnregisteredOptionModes(t *testing.T) {
	t.Parallel()
	args := []string{"-d", "-f", "123", "-g", "456", "-e"}

	t.Run("prefer flag", func(t *testing.T) {
		t.Parallel()
		p := New()
		p.AddParam("g")
		p.Parse(args, PreferFlag)
		require.True(t, p.Flag("f"))
		require.Equal(t, "", p.Param("f").String())
		require.False(t, p.Flag("g"))
		require.Equal(t, "456", p.Param("g").String())
		require.True(t, p.Flag("d"))
		require.True(t, p.Flag("e"))
	})

	t.Run("prefer param", func(t *testing.T) {
		t.Parallel()
		p := New()
		p.AddParam("g")
		p.Parse(args, PreferParam)
		require.False(t, p.Flag("f"))
		require.Equal(t, "123", p.Param("f").String())
		require.False(t, p.Flag("g"))
		require.Equal(t, "456", p.Param("g").String())
		require.True(t, p.Flag("d"))
		require.True(t, p.Flag("e"))
	})

	t.Run("registered names without value stay flags", func(t *testing.T) {
		t.Parallel()
		p := New()
		p.AddParam("d")
		p.AddParam("e")
		p.Parse(args, PreferParam)
		require.True(t, p.Flag("d"))
		require.True(t, p.Flag("e"))
	})
}

func TestParser_AddParam(t *testing.T) {
	t.Parallel()
	p := New("--a")
	p.AddParam("b", "---c")
	p.AddParam("b")
	require.True(t, p.IsParam("a"))
	require.True(t, p.IsParam("-b"))
	require.True(t, p.IsParam("c"))
	require.False(t, p.IsParam("d"))

	fixture := "abc-123"
	p.Parse([]string{"-a", fixture, "-b", "2", "-c", "3"}, PreferFlag)
	require.True(t, p.Param("a", "b", "c").OK())
	require.Equal(t, fixture, p.Param("a").String())
	require.Equal(t, 0, p.Size())
}

func TestParser_AddFlagSet(t *testing.T) {
	t.Parallel()
	fls := flag.NewFlagSet("", flag.ContinueOnError)
	fls.String("out", "", "")
	fls.Bool("v", false, "")

	p := New()
	p.AddFlagSet(fls)
	res := p.Parse([]string{"-v", "x", "-out", "y"}, PreferFlag)
	require.True(t, res.Flag("v"))
	require.Equal(t, "y", res.Param("out").String())
	require.Equal(t, []string{"x"}, res.Positionals())
}

func TestParser_AddPFlagSet(t *testing.T) {
	t.Parallel()
	fls := pflag.NewFlagSet("", pflag.ContinueOnError)
	fls.StringP("output", "o", "", "")
	fls.BoolP("verbose", "v", false, "")

	p := New()
	p.AddPFlagSet(fls)
	res := p.Parse([]string{"-vo", "a.out", "main.c"}, SingleDashIsMultiFlag)
	require.True(t, res.Flag("verbose", "v"))
	require.Equal(t, "a.out", res.Param("output", "o").String())
	require.Equal(t, []string{"main.c"}, res.Positionals())
}

func TestParser_WithLogger(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	New("o").WithLogger(logger).Parse([]string{"-o", "file", "-v"}, PreferFlag)
	out := buf.String()
	require.Contains(t, out, "msg=parsing")
	require.Contains(t, out, "kind=param")
	require.Contains(t, out, "kind=flag")
}
