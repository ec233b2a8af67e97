package ops

// Firestore comparison operators.
const (
	Equal        = "=="
	NotEqual     = "!="
	Less         = "<"
	LessOrEqual  = "<="
	Greater      = ">"
	GreaterEqual = ">="
)
