package options

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// CommitType is a conventional commit category tag
type CommitType string

const (
	TypeFeat     CommitType = "feat"
	TypeFix      CommitType = "fix"
	TypeChore    CommitType = "chore"
	TypeDocs     CommitType = "docs"
	TypeStyle    CommitType = "style"
	TypeRefactor CommitType = "refactor"
	TypePerf     CommitType = "perf"
	TypeTest     CommitType = "test"
	TypeBuild    CommitType = "build"
	TypeCI       CommitType = "ci"
	TypeRevert   CommitType = "revert"
)

// Types lists every accepted commit type in display order
var Types = []CommitType{
	TypeFeat,
	TypeFix,
	TypeChore,
	TypeDocs,
	TypeStyle,
	TypeRefactor,
	TypePerf,
	TypeTest,
	TypeBuild,
	TypeCI,
	TypeRevert,
}

// Lang selects the language of the generated message
type Lang string

const (
	LangZH Lang = "zh"
	LangEN Lang = "en"
)

// DefaultLang is used when --lang is not given
const DefaultLang = LangEN

// Options holds the parsed command line
type Options struct {
	Type CommitType // empty when the model should infer it
	Lang Lang
	Help bool
}

// TypeList returns the accepted commit types joined for display
func TypeList() string {
	names := make([]string, len(Types))
	for i, t := range Types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// Parse converts command line tokens, without the program name, into Options.
// Tokens are consumed left to right and the first problem aborts parsing.
func Parse(args []string) (Options, error) {
	opts := Options{Lang: DefaultLang}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch arg {
		case "-h", "--help":
			opts.Help = true

		case "--type":
			value, err := flagValue(args, i)
			if err != nil {
				return Options{}, err
			}
			if !slices.Contains(Types, CommitType(value)) {
				return Options{}, fmt.Errorf("Invalid --type: %s. Allowed: %s", value, TypeList())
			}
			opts.Type = CommitType(value)
			i++

		case "--lang":
			value, err := flagValue(args, i)
			if err != nil {
				return Options{}, err
			}
			if value != string(LangZH) && value != string(LangEN) {
				return Options{}, fmt.Errorf("Invalid --lang: %s. Allowed: %s, %s", value, LangZH, LangEN)
			}
			opts.Lang = Lang(value)
			i++

		default:
			return Options{}, fmt.Errorf("Unknown argument: %s", arg)
		}
	}

	return opts, nil
}

// flagValue returns the token following the flag at index i
func flagValue(args []string, i int) (string, error) {
	if i+1 >= len(args) || args[i+1] == "" {
		return "", errors.New("Missing value for " + args[i])
	}
	return args[i+1], nil
}
