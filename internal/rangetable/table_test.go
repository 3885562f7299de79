package rangetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-wadsworth/fm-attribute-customizer/internal/colorhex"
)

func newTestTable(t *testing.T, boundaries ...int) *Table {
	t.Helper()
	editable := make([]Entry, len(boundaries))
	for i, b := range boundaries {
		editable[i] = Entry{Boundary: b, Label: labelFor(i), Color: colorhex.White}
	}
	reserved := []Entry{
		{Boundary: 0, Label: "attribute-colour-unset", Color: colorhex.White},
		{Boundary: 0, Label: "attribute-colour-low", Color: colorhex.White},
	}
	table, err := New(reserved, editable)
	require.NoError(t, err)
	return table
}

func labelFor(i int) string {
	return "attribute-colour-" + string(rune('a'+i))
}

func TestNew_PinsLastBoundary(t *testing.T) {
	table := newTestTable(t, 5, 10, 15, 19) // decoded last is 19, not the ceiling
	assert.Equal(t, []int{5, 10, 15, 20}, table.Boundaries())
}

func TestNew_RejectsBadInput(t *testing.T) {
	_, err := New(nil, []Entry{{Boundary: 5}, {Boundary: 10}, {Boundary: 20}})
	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr) // below the editable minimum

	_, err = New(nil, []Entry{
		{Boundary: 10}, {Boundary: 5}, {Boundary: 15}, {Boundary: 20},
	})
	var bndErr *BoundaryError
	require.ErrorAs(t, err, &bndErr) // not strictly increasing
	assert.Equal(t, 1, bndErr.Index)
}

func TestRanges_DerivedFromPredecessors(t *testing.T) {
	table := newTestTable(t, 5, 10, 15, 20)
	assert.Equal(t, []Range{
		{Min: 1, Max: 5},
		{Min: 6, Max: 10},
		{Min: 11, Max: 15},
		{Min: 16, Max: 20},
	}, table.Ranges())

	min, err := table.ImpliedMinimum(2)
	require.NoError(t, err)
	assert.Equal(t, 11, min)

	_, err = table.ImpliedMinimum(4)
	assert.Error(t, err)
}

func TestSetBoundary_IncreaseCascadesUp(t *testing.T) {
	table := newTestTable(t, 5, 10, 15, 20)

	// Raising band 0 to 15 collapses band 1 onto its implied minimum, which
	// in turn pushes band 2; the last band keeps slack and stays at 20.
	require.NoError(t, table.SetBoundary(0, 15))
	assert.Equal(t, []int{15, 16, 17, 20}, table.Boundaries())
}

func TestSetBoundary_DecreaseClampsToImpliedMinimum(t *testing.T) {
	table := newTestTable(t, 8, 10, 15, 20)

	// 8 is band 0's boundary, so band 1 cannot go below 9.
	require.NoError(t, table.SetBoundary(1, 8))
	assert.Equal(t, []int{8, 9, 15, 20}, table.Boundaries())
}

func TestSetBoundary_DecreaseNeverMovesPredecessors(t *testing.T) {
	table := newTestTable(t, 8, 12, 15, 20)

	// A decrease bottoms out at the implied minimum instead of dragging the
	// predecessors down with it.
	require.NoError(t, table.SetBoundary(2, 9))
	assert.Equal(t, []int{8, 12, 13, 20}, table.Boundaries())
}

func TestSetBoundary_ClampsToSuccessorRoom(t *testing.T) {
	table := newTestTable(t, 5, 10, 15, 20)

	// Band 1 can rise to at most 18: two successors each need a step.
	require.NoError(t, table.SetBoundary(1, 25))
	assert.Equal(t, []int{5, 18, 19, 20}, table.Boundaries())
}

func TestSetBoundary_LastStaysPinned(t *testing.T) {
	table := newTestTable(t, 5, 10, 15, 20)

	var notified [][]int
	table.OnThresholdsChanged(func(b []int) {
		notified = append(notified, append([]int(nil), b...))
	})

	require.NoError(t, table.SetBoundary(3, 12))
	assert.Equal(t, []int{5, 10, 15, 20}, table.Boundaries())
	require.Len(t, notified, 1) // the notification still fires
	assert.Equal(t, []int{5, 10, 15, 20}, notified[0])
}

func TestSetBoundary_BadIndex(t *testing.T) {
	table := newTestTable(t, 5, 10, 15, 20)
	assert.Error(t, table.SetBoundary(-1, 5))
	assert.Error(t, table.SetBoundary(4, 5))
}

func TestInsertAt_CascadesAroundNewBand(t *testing.T) {
	table := newTestTable(t, 5, 10, 15, 20)

	var thresholdFired, colorsFired bool
	table.OnThresholdsChanged(func([]int) { thresholdFired = true })
	table.OnColorsChanged(func() { colorsFired = true })

	require.NoError(t, table.InsertAt(1, 7, "attribute-colour-custom-1", colorhex.White))
	assert.Equal(t, []int{5, 7, 10, 15, 20}, table.Boundaries())
	assert.Equal(t, "attribute-colour-custom-1", table.Labels()[1])
	assert.True(t, thresholdFired)
	assert.True(t, colorsFired)
}

func TestInsertAt_HighHintClampedToWindow(t *testing.T) {
	table := newTestTable(t, 5, 10, 15, 20)

	// A hint at the ceiling cannot stand at position 0 with four successors;
	// it clamps to 16 and the cascade re-spaces the rest.
	require.NoError(t, table.InsertAt(0, MaxBoundary-1, "attribute-colour-custom-1", colorhex.White))
	assert.Equal(t, []int{16, 17, 18, 19, 20}, table.Boundaries())
}

func TestInsertAt_NoRoomPushesPredecessorsDown(t *testing.T) {
	table := newTestTable(t, 17, 18, 19, 20)

	require.NoError(t, table.InsertAt(3, 19, "attribute-colour-custom-1", colorhex.White))
	assert.Equal(t, []int{16, 17, 18, 19, 20}, table.Boundaries())
}

func TestInsertAt_Limits(t *testing.T) {
	boundaries := make([]int, MaxEditable)
	for i := range boundaries {
		boundaries[i] = MaxBoundary - (MaxEditable - 1 - i)
	}
	full := newTestTable(t, boundaries...)

	var capErr *CapacityError
	err := full.InsertAt(0, 1, "x", colorhex.White)
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, "insert", capErr.Op)

	table := newTestTable(t, 5, 10, 15, 20)
	assert.Error(t, table.InsertAt(4, 1, "x", colorhex.White)) // after the fixed last band
	assert.Error(t, table.InsertAt(-1, 1, "x", colorhex.White))
}

func TestRemoveAt(t *testing.T) {
	table := newTestTable(t, 4, 8, 12, 16, 20)

	require.NoError(t, table.RemoveAt(1))
	assert.Equal(t, []int{4, 12, 16, 20}, table.Boundaries())

	// Minimum band count reached.
	var capErr *CapacityError
	require.ErrorAs(t, table.RemoveAt(0), &capErr)
	assert.Equal(t, "remove", capErr.Op)
}

func TestRemoveAt_LastBandProtected(t *testing.T) {
	table := newTestTable(t, 4, 8, 12, 16, 20)
	var bndErr *BoundaryError
	require.ErrorAs(t, table.RemoveAt(4), &bndErr)
	assert.Equal(t, 4, bndErr.Index)
}

func TestInsertThenRemoveRestoresBoundaries(t *testing.T) {
	table := newTestTable(t, 5, 10, 15, 20)
	before := table.Boundaries()

	require.NoError(t, table.InsertAt(1, 7, "attribute-colour-custom-1", colorhex.White))
	require.NoError(t, table.RemoveAt(1))
	assert.Equal(t, before, table.Boundaries())
}

func TestSetColorAndLabel(t *testing.T) {
	table := newTestTable(t, 5, 10, 15, 20)

	red := colorhex.RGBA{R: 1, A: 1}
	var colorsFired bool
	table.OnColorsChanged(func() { colorsFired = true })

	require.NoError(t, table.SetColor(2, red))
	assert.Equal(t, red, table.Colors()[2])
	assert.True(t, colorsFired)
	assert.Error(t, table.SetColor(9, red))

	require.NoError(t, table.SetLabel(0, "attribute-colour-renamed"))
	assert.Equal(t, "attribute-colour-renamed", table.Labels()[0])
	assert.Error(t, table.SetLabel(0, ""))
	assert.Error(t, table.SetLabel(9, "x"))
}

func TestAll_ReservedFirst(t *testing.T) {
	table := newTestTable(t, 5, 10, 15, 20)
	all := table.All()
	require.Len(t, all, 6)
	assert.Equal(t, "attribute-colour-unset", all[0].Label)
	assert.Equal(t, "attribute-colour-low", all[1].Label)
	assert.Equal(t, 4, table.EditableLen())
}
