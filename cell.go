package hashlife

// Cell is the two-valued state of a level-0 universe cell.
//
// Cells are compared and hashed by variant only; the boolean underlying
// type already gives that for free.
type Cell bool

// The two Cell variants. Both carry an implicit level of 0.
const (
	Dead  Cell = false
	Alive Cell = true
)

// Alive reports whether c is the ALIVE variant.
func (c Cell) Alive() bool {
	return bool(c)
}

func (c Cell) String() string {
	if c.Alive() {
		return "ALIVE"
	}
	return "DEAD"
}
