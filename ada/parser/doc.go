// Package parser checks programs of a small Ada-like language.
//
// # Overview
//
// The language has statement blocks, assignments, if/while/do-until/for
// statements, procedure calls and arithmetic expressions:
//
//	begin
//	    total := 0;
//	    for (i := 1; i <= 10; i := i + 1) do
//	        total := total + i * 2
//	    end loop;
//	    call print(total)
//	end
//
// A [Lexer] turns source bytes into [Token] values and a [Parser] checks the
// token stream with one recursive descent method per nonterminal. The parser
// builds nothing; instead it reports the derivation it takes to a [Tracer]:
//
//	Enter("StatementPart")
//	Leaf(begin)
//	Enter("StatementList")
//	...
//	Exit("StatementPart")
//
// # Errors
//
// Parsing stops at the first token that does not fit the grammar. The error
// is a [*Diagnostic] chain: the innermost link names the expected and the
// found token, and every production that was active wraps it with its own
// name and starting line:
//
//	in StatementPart on line: 1: in StatementList on line: 2: in Statement on line: 2:
//	in IfStatement on line: 2: expected 'if' but found 'end' on line: 4 (found 'end')
//
// There is no error recovery; a second error in the same input is never
// reported.
package parser
