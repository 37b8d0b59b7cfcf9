/*
Package forte implements a tiny subset of FORTH: an integer stack, a handful
of built-in operators, and user defined words.

Input is a sequence of statements. An execution statement is just tokens
separated by whitespace; each token is an integer literal, which is pushed,
or the name of an operator or word, which is run. A definition statement
binds a new word:

	: name token... ;

Operators and words are case insensitive. The built-in operators are:

	Symbol   Function
	   +     pop b then a, push a + b
	   -     pop b then a, push a - b
	   *     pop b then a, push a * b
	   /     pop b then a, push a / b, truncating; b may not be 0
	 dup     push a copy of the top of stack
	drop     discard the top of stack
	swap     exchange the top 2 elements of stack
	over     push a copy of the element below the top of stack

Any of them may be shadowed by a word of the same name.

Words are bound early: a definition captures the meaning of the words it
uses at the time it is made, so later redefinitions do not reach back into
it. This is also what lets a word extend its own prior binding:

	: foo 10 ;
	: foo foo 1 + ;
	foo             ( leaves 11 )

Storing words naively, by inlining their expansion, makes definitions like

	: a 0 drop ;
	: b a a ;
	: c b b ;
	...

grow exponentially; twenty six of them spell out 2^26 tokens. Instead each
word is kept as a root body together with a repeat count. A body consisting
of one token repeated k times does not inline anything; it just multiplies
the count of that token's root. Only mixed bodies are spelled out, and then
only one level deep, because the words they mention are themselves already
in root form.
*/
package forte
