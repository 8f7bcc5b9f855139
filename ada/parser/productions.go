package parser

// Nonterminal names, as reported to tracers and in diagnostics.
const (
	StatementPart       = "StatementPart"
	StatementList       = "StatementList"
	Statement           = "Statement"
	AssignmentStatement = "AssignmentStatement"
	IfStatement         = "IfStatement"
	WhileStatement      = "WhileStatement"
	ProcedureStatement  = "ProcedureStatement"
	UntilStatement      = "UntilStatement"
	ForStatement        = "ForStatement"
	ArgumentList        = "ArgumentList"
	Condition           = "Condition"
	ConditionalOperator = "ConditionalOperator"
	Expression          = "Expression"
	Term                = "Term"
	Factor              = "Factor"
)

// Productions lists every nonterminal in grammar order.
var Productions = []string{
	StatementPart,
	StatementList,
	Statement,
	AssignmentStatement,
	IfStatement,
	WhileStatement,
	ProcedureStatement,
	UntilStatement,
	ForStatement,
	ArgumentList,
	Condition,
	ConditionalOperator,
	Expression,
	Term,
	Factor,
}

// IsProduction reports whether name is a nonterminal the parser can start from.
func IsProduction(name string) bool {
	_, ok := entries[name]
	return ok
}
