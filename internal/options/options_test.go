package options_test

import (
	"strings"
	"testing"

	"github.com/anans9/ai-commit/internal/options"
	"github.com/matryer/is"
)

func TestParseDefaults(t *testing.T) {
	is := is.New(t)
	opts, err := options.Parse(nil)
	is.NoErr(err)
	is.Equal(opts.Type, options.CommitType(""))
	is.Equal(opts.Lang, options.LangEN)
	is.True(!opts.Help)
}

func TestParseHelp(t *testing.T) {
	for _, arg := range []string{"-h", "--help"} {
		t.Run(arg, func(t *testing.T) {
			is := is.New(t)
			opts, err := options.Parse([]string{arg})
			is.NoErr(err)
			is.True(opts.Help)
		})
	}
}

func TestParseTypeAndLang(t *testing.T) {
	is := is.New(t)
	opts, err := options.Parse([]string{"--type", "fix", "--lang", "zh"})
	is.NoErr(err)
	is.Equal(opts.Type, options.TypeFix)
	is.Equal(opts.Lang, options.LangZH)
}

func TestParseEveryType(t *testing.T) {
	is := is.New(t)
	is.Equal(len(options.Types), 11)
	for _, typ := range options.Types {
		opts, err := options.Parse([]string{"--type", string(typ)})
		is.NoErr(err)
		is.Equal(opts.Type, typ)
		is.Equal(opts.Lang, options.DefaultLang)
	}
}

func TestParseLastValueWins(t *testing.T) {
	is := is.New(t)
	opts, err := options.Parse([]string{"--lang", "zh", "--lang", "en", "--type", "ci", "--type", "perf"})
	is.NoErr(err)
	is.Equal(opts.Lang, options.LangEN)
	is.Equal(opts.Type, options.TypePerf)
}

func TestParseInvalidType(t *testing.T) {
	is := is.New(t)
	_, err := options.Parse([]string{"--type", "badvalue"})
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "badvalue"))
	is.Equal(err.Error(), "Invalid --type: badvalue. Allowed: feat, fix, chore, docs, style, refactor, perf, test, build, ci, revert")
}

func TestParseInvalidLang(t *testing.T) {
	is := is.New(t)
	_, err := options.Parse([]string{"--lang", "fr"})
	is.True(err != nil)
	is.Equal(err.Error(), "Invalid --lang: fr. Allowed: zh, en")
}

func TestParseMissingValue(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--type"}, "Missing value for --type"},
		{[]string{"--lang"}, "Missing value for --lang"},
		{[]string{"--type", ""}, "Missing value for --type"},
		{[]string{"--lang", "zh", "--lang"}, "Missing value for --lang"},
	}
	for _, test := range tests {
		t.Run(strings.Join(test.args, " "), func(t *testing.T) {
			is := is.New(t)
			opts, err := options.Parse(test.args)
			is.True(err != nil)
			is.Equal(err.Error(), test.want)
			is.Equal(opts, options.Options{})
		})
	}
}

func TestParseUnknownArgument(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--verbose"}, "Unknown argument: --verbose"},
		{[]string{"feat"}, "Unknown argument: feat"},
		{[]string{"--type=feat"}, "Unknown argument: --type=feat"},
		{[]string{"-h", "extra"}, "Unknown argument: extra"},
	}
	for _, test := range tests {
		t.Run(strings.Join(test.args, " "), func(t *testing.T) {
			is := is.New(t)
			_, err := options.Parse(test.args)
			is.True(err != nil)
			is.Equal(err.Error(), test.want)
		})
	}
}

func TestParseValueIsNotReinterpreted(t *testing.T) {
	is := is.New(t)
	// the token after --type is always its value, even when it looks like a flag
	_, err := options.Parse([]string{"--type", "--help"})
	is.True(err != nil)
	is.Equal(err.Error(), "Invalid --type: --help. Allowed: "+options.TypeList())
}
