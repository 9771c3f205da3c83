// Package expr evaluates boolean expressions such as "a && (b || !c)" over a
// set of variables that are considered true.
package expr

import (
	"log/slog"
	"strings"

	"github.com/larynjahor/container"
)

func New() *Evaler {
	return &Evaler{}
}

type Evaler struct{}

// Eval reports whether s holds when exactly the identifiers in vars are true.
// A nil vars set means no identifier is true. Malformed expressions evaluate
// to false.
func (e *Evaler) Eval(s string, vars *container.Set[string]) bool {
	logger := slog.With(slog.String("expression", s))

	if vars == nil {
		vars = container.NewSet[string](0)
	}

	eval := container.NewStack[bool]()

	for _, t := range toRPN(tokenize(s)) {
		switch t {
		case "!":
			v, ok := eval.Pop().Get()
			if !ok {
				logger.Error("no operand for !")
				return false
			}

			eval.Push(!v)
		case "&&", "||":
			first, ok := eval.Pop().Get()
			if !ok {
				logger.Error("no operand for || or &&")
				return false
			}

			second, ok := eval.Pop().Get()
			if !ok {
				logger.Error("no operand for || or &&")
				return false
			}

			if t == "&&" {
				eval.Push(first && second)
			} else {
				eval.Push(first || second)
			}
		default:
			eval.Push(vars.Contains(t))
		}
	}

	result, ok := eval.Pop().Get()
	if !ok {
		logger.Error("no result on stack")
		return false
	}

	if !eval.Empty() {
		logger.Error("extra tokens in result stack")
		return false
	}

	return result
}

// tokenize splits s into identifiers, operators and parentheses. Operators
// must be surrounded by spaces; "!", "(" and ")" may abut identifiers.
func tokenize(s string) []string {
	var tokens []string

	for _, field := range strings.Fields(s) {
		cur := ""

		for _, ch := range field {
			switch ch {
			case '!', '(', ')':
				if cur != "" {
					tokens = append(tokens, cur)
					cur = ""
				}

				tokens = append(tokens, string(ch))
			default:
				cur += string(ch)
			}
		}

		if cur != "" {
			tokens = append(tokens, cur)
		}
	}

	return tokens
}

// toRPN reorders tokens into reverse Polish notation. "!" binds tighter than
// "&&", which binds tighter than "||".
func toRPN(tokens []string) []string {
	out := make([]string, 0, len(tokens))

	ops := container.NewStack[string]()

	for _, t := range tokens {
		switch t {
		case "!":
			ops.Push(t)
		case "&&":
			for {
				top, ok := ops.Top().Get()
				if !ok || top == "&&" || top == "||" || top == "(" {
					break
				}

				ops.Pop()
				out = append(out, top)
			}

			ops.Push(t)
		case "||":
			for {
				top, ok := ops.Top().Get()
				if !ok || top == "||" || top == "(" {
					break
				}

				ops.Pop()
				out = append(out, top)
			}

			ops.Push(t)
		case "(":
			ops.Push(t)
		case ")":
			for {
				top, ok := ops.Pop().Get()
				if !ok || top == "(" {
					break
				}

				out = append(out, top)
			}
		default:
			out = append(out, t)
		}
	}

	for {
		top, ok := ops.Pop().Get()
		if !ok {
			break
		}

		out = append(out, top)
	}

	return out
}
