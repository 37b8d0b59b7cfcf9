package forte

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	defineMark = ':'
	defineEnd  = ';'
)

// splitStatements divides input into execution statements and definition
// statements, in order. A definition runs from its ':' through the next ';'
// inclusive; an unterminated definition is still returned, as the final
// statement, so that parseDefinition can reject it. Blank fragments are
// dropped.
func splitStatements(input string) (stmts []string) {
	emit := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			stmts = append(stmts, s)
		}
	}
	for input != "" {
		i := strings.IndexByte(input, defineMark)
		if i < 0 {
			emit(input)
			break
		}
		emit(input[:i])
		input = input[i:]

		j := strings.IndexByte(input, defineEnd)
		if j < 0 {
			emit(input)
			break
		}
		emit(input[:j+1])
		input = input[j+1:]
	}
	return stmts
}

func isDefinition(stmt string) bool {
	return stmt != "" && stmt[0] == defineMark
}

// parseDefinition validates a ": name body... ;" statement, returning the
// lower-cased name and body tokens. The markers must be separated from the
// rest by whitespace, and the name may not be an integer literal.
func parseDefinition(stmt string) (name string, body []string, err error) {
	if len(stmt) < 2 || stmt[0] != defineMark || stmt[len(stmt)-1] != defineEnd {
		return "", nil, ErrInvalidWord
	}
	inner := stmt[1 : len(stmt)-1]
	if first, _ := utf8.DecodeRuneInString(inner); !unicode.IsSpace(first) {
		return "", nil, ErrInvalidWord
	}
	if last, _ := utf8.DecodeLastRuneInString(inner); !unicode.IsSpace(last) {
		return "", nil, ErrInvalidWord
	}

	tokens := strings.Fields(strings.ToLower(inner))
	if len(tokens) == 0 {
		return "", nil, ErrInvalidWord
	}
	name, body = tokens[0], tokens[1:]
	if _, isLit := literal(name); isLit {
		return "", nil, ErrInvalidWord
	}
	return name, body, nil
}
