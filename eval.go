package forte

import (
	"strconv"
	"strings"
)

func (f *Forth) eval(input string) error {
	for _, stmt := range splitStatements(input) {
		if err := f.evalStatement(stmt); err != nil {
			f.log.Debug().Err(err).Str("statement", stmt).Func(f.logStack).Msg("eval failed")
			return err
		}
	}
	return nil
}

func (f *Forth) evalStatement(stmt string) error {
	if isDefinition(stmt) {
		return f.define(stmt)
	}
	f.log.Debug().Str("statement", stmt).Msg("execute")
	return f.execute(strings.Fields(stmt))
}

func (f *Forth) define(stmt string) error {
	name, body, err := parseDefinition(stmt)
	if err != nil {
		return err
	}
	ent := f.words.define(name, body)
	f.log.Debug().
		Str("word", name).
		Str("body", ent.body).
		Int("multiplier", ent.multiplier).
		Msg("define")
	return nil
}

// execute runs each token of an execution statement in order, stopping at
// the first error. A user word is replaced by its stored expansion; the
// expanded tokens are never looked up as user words again.
func (f *Forth) execute(tokens []string) error {
	for _, token := range tokens {
		token = strings.ToLower(token)
		// no word can be named by a literal, so words are safe to check first
		if ent, defined := f.words.resolve(token); defined {
			if err := f.call(token, ent); err != nil {
				return err
			}
		} else if err := f.step(token); err != nil {
			return err
		}
	}
	return nil
}

func (f *Forth) call(name string, ent wordEntry) error {
	f.log.Trace().Str("word", name).Int("multiplier", ent.multiplier).Msg("call")
	tokens := ent.tokens()
	for i := 0; i < ent.multiplier; i++ {
		for _, token := range tokens {
			if err := f.step(token); err != nil {
				return err
			}
		}
	}
	return nil
}

// step runs one token that is not a user word: a literal or a builtin.
func (f *Forth) step(token string) error {
	if n, isLit := literal(token); isLit {
		f.push(n)
		return nil
	}
	op, isOp := builtins[token]
	if !isOp {
		return ErrUnknownWord
	}
	err := op.apply(f)
	f.log.Trace().Str("op", token).Func(f.logStack).Msg("step")
	return err
}

func literal(token string) (int, bool) {
	n, err := strconv.ParseInt(token, 10, strconv.IntSize)
	if err != nil {
		return 0, false
	}
	return int(n), true
}
