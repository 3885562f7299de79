package rangetable

import "fmt"

// BoundaryError reports an illegal index or an attempt to mutate the fixed
// last entry.
type BoundaryError struct {
	Index  int
	Reason string
}

func (e *BoundaryError) Error() string {
	return fmt.Sprintf("range %d: %s", e.Index, e.Reason)
}

// CapacityError reports an insert on a full table or a remove on a minimal
// one.
type CapacityError struct {
	Op    string
	Count int
	Limit int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: table has %d editable ranges (limit %d)", e.Op, e.Count, e.Limit)
}
