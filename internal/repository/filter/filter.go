package filter

// Where is a single query filter clause, applied as Path Op Value.
type Where struct {
	Path  string
	Op    string
	Value interface{}
}
