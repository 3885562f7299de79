// Package rangetable maintains the ordered list of attribute rating bands: a
// boundary (inclusive upper bound), display label, and color per band. Every
// public operation leaves the table with strictly increasing boundaries, the
// last boundary pinned to the rating ceiling, and the editable count inside
// its limits, so callers never reason about neighboring rows.
package rangetable

import "github.com/matt-wadsworth/fm-attribute-customizer/internal/colorhex"

const (
	// MaxBoundary is the rating ceiling; the last band always ends here.
	MaxBoundary = 20

	// MinEditable and MaxEditable bound the number of user-editable bands.
	MinEditable = 4
	MaxEditable = 18

	// ReservedCount is the number of leading bands ("Unset" and "Low")
	// carried through load/save untouched.
	ReservedCount = 2
)

// Entry is one rating band. Boundary is its inclusive upper bound; the lower
// bound is derived from the predecessor and never stored.
type Entry struct {
	Boundary int
	Label    string
	Color    colorhex.RGBA
}

// Range is a resolved (min, max) pair for presentation.
type Range struct {
	Min, Max int
}

// Table owns the reserved and editable bands. It is not safe for concurrent
// use; the owning caller mutates it synchronously.
type Table struct {
	reserved []Entry
	entries  []Entry

	onThresholds func(boundaries []int)
	onColors     func()
}

// New builds a table from decoded bands. reserved is carried verbatim;
// editable must hold MinEditable..MaxEditable strictly increasing boundaries.
// The last editable boundary is pinned to MaxBoundary regardless of the
// decoded value, matching how the containers are observed in the wild.
func New(reserved, editable []Entry) (*Table, error) {
	if len(editable) < MinEditable || len(editable) > MaxEditable {
		return nil, &CapacityError{Op: "load", Count: len(editable), Limit: MaxEditable}
	}

	t := &Table{
		reserved: append([]Entry(nil), reserved...),
		entries:  append([]Entry(nil), editable...),
	}
	t.entries[len(t.entries)-1].Boundary = MaxBoundary

	for i := range t.entries {
		if t.entries[i].Boundary < t.impliedMin(i) || t.entries[i].Boundary > MaxBoundary {
			return nil, &BoundaryError{Index: i, Reason: "boundaries must be strictly increasing and within 1..20"}
		}
	}
	return t, nil
}

// OnThresholdsChanged registers the callback fired with the full editable
// boundary list after every boundary mutation.
func (t *Table) OnThresholdsChanged(fn func(boundaries []int)) { t.onThresholds = fn }

// OnColorsChanged registers the callback fired after every color mutation.
func (t *Table) OnColorsChanged(fn func()) { t.onColors = fn }

// EditableLen returns the number of editable bands.
func (t *Table) EditableLen() int { return len(t.entries) }

// ImpliedMinimum returns the lower bound of band index: 1 for the first
// editable band, otherwise one past the predecessor's boundary.
func (t *Table) ImpliedMinimum(index int) (int, error) {
	if index < 0 || index >= len(t.entries) {
		return 0, &BoundaryError{Index: index, Reason: "no such range"}
	}
	return t.impliedMin(index), nil
}

func (t *Table) impliedMin(index int) int {
	if index == 0 {
		return 1
	}
	return t.entries[index-1].Boundary + 1
}

// Boundaries returns the editable boundary list, left to right.
func (t *Table) Boundaries() []int {
	out := make([]int, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Boundary
	}
	return out
}

// Labels returns the editable labels, left to right.
func (t *Table) Labels() []string {
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Label
	}
	return out
}

// Colors returns the editable colors, left to right.
func (t *Table) Colors() []colorhex.RGBA {
	out := make([]colorhex.RGBA, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Color
	}
	return out
}

// Ranges resolves every editable band to its (min, max) pair.
func (t *Table) Ranges() []Range {
	out := make([]Range, len(t.entries))
	for i, e := range t.entries {
		out[i] = Range{Min: t.impliedMin(i), Max: e.Boundary}
	}
	return out
}

// Entries returns a copy of the editable bands.
func (t *Table) Entries() []Entry {
	return append([]Entry(nil), t.entries...)
}

// All returns reserved bands followed by editable bands, the order the
// containers store them in.
func (t *Table) All() []Entry {
	out := make([]Entry, 0, len(t.reserved)+len(t.entries))
	out = append(out, t.reserved...)
	out = append(out, t.entries...)
	return out
}

// SetBoundary moves band index's upper bound. The last band ignores the
// requested value and stays pinned at MaxBoundary (the notification still
// fires). Other bands clamp the value to what the neighbors leave room for,
// then cascade adjustments outward until ordering holds again.
func (t *Table) SetBoundary(index, value int) error {
	if index < 0 || index >= len(t.entries) {
		return &BoundaryError{Index: index, Reason: "no such range"}
	}

	last := len(t.entries) - 1
	if index == last {
		t.entries[last].Boundary = MaxBoundary
		t.notifyThresholds()
		return nil
	}

	// Clamp to the band's own implied minimum and to the highest value
	// that still leaves every successor one step of room.
	lo := t.impliedMin(index)
	hi := MaxBoundary - (last - index)
	v := value
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}

	old := t.entries[index].Boundary
	t.entries[index].Boundary = v
	if v < old {
		t.cascadeDown(index)
	} else {
		t.cascadeUp(index)
	}
	t.entries[last].Boundary = MaxBoundary

	t.notifyThresholds()
	return nil
}

// cascadeDown restores ordering after a decrease: predecessors are clamped
// down below their successors, successors are raised to their implied minima.
// One pass can re-violate an already-visited band, so both walks repeat until
// a fixed point.
func (t *Table) cascadeDown(index int) {
	for changed := true; changed; {
		changed = false
		for i := index - 1; i >= 0; i-- {
			limit := t.entries[i+1].Boundary - 1
			if limit >= 1 && t.entries[i].Boundary > limit {
				t.entries[i].Boundary = limit
				changed = true
			}
		}
		for i := index + 1; i < len(t.entries); i++ {
			if im := t.impliedMin(i); t.entries[i].Boundary < im {
				t.entries[i].Boundary = im
				changed = true
			}
		}
	}
}

// cascadeUp restores ordering after an increase: each successor forced below
// its implied minimum is pushed up to it. A push collapses that band to a
// single value, which in turn may force the next one, so the walk continues
// until a band keeps slack.
func (t *Table) cascadeUp(index int) {
	for i := index + 1; i < len(t.entries); i++ {
		im := t.impliedMin(i)
		if t.entries[i].Boundary >= im {
			break // no collapse, cascade stops
		}
		t.entries[i].Boundary = im
	}
}

// InsertAt adds a band at index, before the fixed last band. boundaryHint is
// clamped so the new band fits; ordering is then restored around it.
func (t *Table) InsertAt(index, boundaryHint int, label string, color colorhex.RGBA) error {
	if len(t.entries) >= MaxEditable {
		return &CapacityError{Op: "insert", Count: len(t.entries), Limit: MaxEditable}
	}
	if index < 0 || index >= len(t.entries) {
		return &BoundaryError{Index: index, Reason: "insert position must be before the fixed last range"}
	}

	t.entries = append(t.entries, Entry{})
	copy(t.entries[index+1:], t.entries[index:])
	t.entries[index] = Entry{Boundary: boundaryHint, Label: label, Color: color}

	last := len(t.entries) - 1

	// Same clamp as SetBoundary, against the post-insert neighbors: raising
	// successors past this window would push them over the ceiling.
	lo := t.impliedMin(index)
	hi := MaxBoundary - (last - index)
	if t.entries[index].Boundary < lo {
		t.entries[index].Boundary = lo
	}
	if t.entries[index].Boundary > hi {
		t.entries[index].Boundary = hi
	}

	t.entries[last].Boundary = MaxBoundary
	t.cascadeDown(index)
	t.cascadeUp(index)
	t.entries[last].Boundary = MaxBoundary

	t.notifyThresholds()
	t.notifyColors()
	return nil
}

// RemoveAt deletes the band at index. Removal never breaks ordering, so only
// the notifications fire; implied minima are derived on demand.
func (t *Table) RemoveAt(index int) error {
	if len(t.entries) <= MinEditable {
		return &CapacityError{Op: "remove", Count: len(t.entries), Limit: MinEditable}
	}
	if index == len(t.entries)-1 {
		return &BoundaryError{Index: index, Reason: "the last range cannot be removed"}
	}
	if index < 0 || index >= len(t.entries) {
		return &BoundaryError{Index: index, Reason: "no such range"}
	}

	t.entries = append(t.entries[:index], t.entries[index+1:]...)
	t.entries[len(t.entries)-1].Boundary = MaxBoundary

	t.notifyThresholds()
	t.notifyColors()
	return nil
}

// SetColor replaces the color of band index.
func (t *Table) SetColor(index int, color colorhex.RGBA) error {
	if index < 0 || index >= len(t.entries) {
		return &BoundaryError{Index: index, Reason: "no such range"}
	}
	t.entries[index].Color = color
	t.notifyColors()
	return nil
}

// SetLabel replaces the label of band index. Labels must stay non-empty.
func (t *Table) SetLabel(index int, label string) error {
	if index < 0 || index >= len(t.entries) {
		return &BoundaryError{Index: index, Reason: "no such range"}
	}
	if label == "" {
		return &BoundaryError{Index: index, Reason: "label must not be empty"}
	}
	t.entries[index].Label = label
	return nil
}

func (t *Table) notifyThresholds() {
	if t.onThresholds != nil {
		t.onThresholds(t.Boundaries())
	}
}

func (t *Table) notifyColors() {
	if t.onColors != nil {
		t.onColors()
	}
}
