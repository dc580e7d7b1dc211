// Package token defines the contract between an argument tokenizer and the
// command tree resolver. The resolver consumes only positional tokens, in
// index order; everything else belongs to whichever argument parser the
// embedding CLI uses.
package token

import "strings"

// Kind classifies a raw argument token.
type Kind int

const (
	KindPositional Kind = iota
	KindOption
)

func (k Kind) String() string {
	switch k {
	case KindPositional:
		return "positional"
	case KindOption:
		return "option"
	default:
		return "unknown"
	}
}

// Token is one raw argument with its original position preserved.
type Token struct {
	Kind  Kind
	Value string
	Index int
}

// Split tokenizes raw arguments with the minimal rule the demo binary needs:
// anything starting with '-' is an option, everything else is positional.
// Real argument grammar (short flags, values, kebab-casing) is an external
// concern; callers with richer needs supply their own token list.
func Split(args []string) []Token {
	tokens := make([]Token, 0, len(args))
	for i, a := range args {
		kind := KindPositional
		if strings.HasPrefix(a, "-") && a != "-" {
			kind = KindOption
		}
		tokens = append(tokens, Token{Kind: kind, Value: a, Index: i})
	}
	return tokens
}

// Positionals filters tokens down to the positional values, preserving
// index order.
func Positionals(tokens []Token) []string {
	var out []string
	for _, t := range tokens {
		if t.Kind == KindPositional {
			out = append(out, t.Value)
		}
	}
	return out
}

// Options filters tokens down to the option values, preserving index order.
func Options(tokens []Token) []string {
	var out []string
	for _, t := range tokens {
		if t.Kind == KindOption {
			out = append(out, t.Value)
		}
	}
	return out
}
