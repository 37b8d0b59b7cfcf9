package forte

import "strings"

// wordEntry is the stored form of a user word: calling it runs the tokens
// of body, as a whole, multiplier times in a row.
//
// Entries are always kept in root form. A body never names a word that was
// defined when the entry was made; such references are substituted away at
// definition time, so calls expand exactly one level.
type wordEntry struct {
	body       string
	multiplier int
}

// tokens returns the body split into its tokens; an empty body has none.
func (ent wordEntry) tokens() []string {
	return strings.Fields(ent.body)
}

// size returns how many tokens one call of the word executes.
func (ent wordEntry) size() int {
	return len(ent.tokens()) * ent.multiplier
}

// words is the word table, keyed by lower-cased name.
type words map[string]wordEntry

func (ws words) resolve(name string) (wordEntry, bool) {
	ent, defined := ws[name]
	return ent, defined
}

// define binds name to body, replacing any prior binding. The body is
// compacted against the table as it stands before the new binding is made,
// so a word may refer to the prior binding of its own name.
func (ws *words) define(name string, body []string) wordEntry {
	ent := ws.compact(body)
	if *ws == nil {
		*ws = make(words)
	}
	(*ws)[name] = ent
	return ent
}

// compact reduces body to a root entry.
//
// A uniform body, the same token k times, becomes a multiple of that
// token's root: if the token is a word with entry (root, m) the result is
// (root, k*m), otherwise it is (token, k). Chains of doubling definitions
// thus cost one entry each, however large their expansion.
//
// Any other body is stored literally with multiplier 1, after replacing
// each token that names a word by that word's expansion.
func (ws words) compact(body []string) wordEntry {
	if len(body) == 0 {
		return wordEntry{multiplier: 1}
	}
	if tok, k, ok := uniform(body); ok {
		if prior, defined := ws.resolve(tok); defined {
			return wordEntry{prior.body, k * prior.multiplier}
		}
		return wordEntry{tok, k}
	}
	return wordEntry{ws.substitute(body), 1}
}

// substitute joins body into a single string, expanding each word token by
// one level in place.
func (ws words) substitute(body []string) string {
	var sb strings.Builder
	sep := func() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
	}
	for _, tok := range body {
		prior, defined := ws.resolve(tok)
		if !defined {
			sep()
			sb.WriteString(tok)
			continue
		}
		if prior.body == "" {
			continue
		}
		for i := 0; i < prior.multiplier; i++ {
			sep()
			sb.WriteString(prior.body)
		}
	}
	return sb.String()
}

// uniform reports whether body is a single token repeated, returning that
// token and its count.
func uniform(body []string) (tok string, k int, ok bool) {
	if len(body) == 0 {
		return "", 0, false
	}
	tok = body[0]
	for _, other := range body[1:] {
		if other != tok {
			return "", 0, false
		}
	}
	return tok, len(body), true
}
