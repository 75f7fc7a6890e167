package instruction

// ID names one Push instruction.
type ID string

// Meta is the per-instruction metadata the generator consults. Parentheses
// is the number of code blocks the instruction opens when the linear genome
// is translated into a program tree.
type Meta struct {
	Parentheses int
}

// Table is a read-only instruction-metadata lookup. Instructions absent
// from the table count as opening zero blocks.
type Table map[ID]Meta

// Parentheses returns the declared arity for id, or 0 when unknown.
func (t Table) Parentheses(id ID) int {
	meta, ok := t[id]
	if !ok {
		return 0
	}
	return meta.Parentheses
}
