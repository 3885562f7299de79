// Package editor wires the object store, the structure codec, and the range
// table into one load/mutate/save session, the way the windowed UI drives
// them. Nothing here touches serialized shapes directly.
package editor

import (
	"errors"
	"fmt"

	"github.com/matt-wadsworth/fm-attribute-customizer/internal/codec"
	"github.com/matt-wadsworth/fm-attribute-customizer/internal/colorhex"
	"github.com/matt-wadsworth/fm-attribute-customizer/internal/document"
	"github.com/matt-wadsworth/fm-attribute-customizer/internal/rangetable"
	"github.com/matt-wadsworth/fm-attribute-customizer/internal/workspace"
)

// Session holds the decoded domain state for one workspace plus the original
// documents, which are threaded back through every encode so untouched
// fields survive a save.
type Session struct {
	store *workspace.Store
	table *rangetable.Table

	rangeDoc          *document.Value
	presetDoc         *document.Value // nil when the preset object is absent
	highlightDoc      *document.Value // nil when absent
	highlightNoBorder *document.Value // nil when absent
	HighlightEnabled  bool
}

// Load reads the range collection, the default color preset, and the
// highlight collections from the store. The range collection is mandatory;
// the others degrade gracefully, matching what shipped installs contain.
func Load(store *workspace.Store) (*Session, error) {
	s := &Session{store: store, HighlightEnabled: true}

	var err error
	s.rangeDoc, err = store.ReadObject(workspace.ObjectRangeCollection)
	if err != nil {
		return nil, err
	}
	rows, err := codec.DecodeRangeCollection(s.rangeDoc)
	if err != nil {
		return nil, err
	}
	if len(rows.Thresholds) != len(rows.Labels) {
		return nil, fmt.Errorf("load %s: %d thresholds but %d style classes",
			workspace.ObjectRangeCollection, len(rows.Thresholds), len(rows.Labels))
	}

	colors := make([]colorhex.RGBA, len(rows.Thresholds))
	for i := range colors {
		colors[i] = colorhex.White
	}
	s.presetDoc, err = store.ReadObject(workspace.ObjectColorsDefault)
	switch {
	case err == nil:
		decoded, derr := codec.DecodeColorPreset(s.presetDoc)
		if derr != nil {
			return nil, derr
		}
		for i := range colors {
			if i < len(decoded) {
				colors[i] = decoded[i]
			}
		}
	case errors.Is(err, workspace.ErrNotFound):
		s.presetDoc = nil
	default:
		return nil, err
	}

	entries := make([]rangetable.Entry, len(rows.Thresholds))
	for i := range entries {
		entries[i] = rangetable.Entry{
			Boundary: rows.Thresholds[i],
			Label:    rows.Labels[i],
			Color:    colors[i],
		}
	}
	if len(entries) < rangetable.ReservedCount+rangetable.MinEditable {
		return nil, fmt.Errorf("load %s: only %d bands, want at least %d",
			workspace.ObjectRangeCollection, len(entries),
			rangetable.ReservedCount+rangetable.MinEditable)
	}
	s.table, err = rangetable.New(entries[:rangetable.ReservedCount], entries[rangetable.ReservedCount:])
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", workspace.ObjectRangeCollection, err)
	}

	if doc, herr := store.ReadObject(workspace.ObjectHighlight); herr == nil {
		s.highlightDoc = doc
		if hrows, rerr := codec.DecodeHighlightRows(doc); rerr == nil {
			s.HighlightEnabled = codec.HighlightEnabled(hrows)
		}
	} else if !errors.Is(herr, workspace.ErrNotFound) {
		return nil, herr
	}
	if doc, herr := store.ReadObject(workspace.ObjectHighlightNoBorder); herr == nil {
		s.highlightNoBorder = doc
	} else if !errors.Is(herr, workspace.ErrNotFound) {
		return nil, herr
	}

	return s, nil
}

// Table exposes the range table for mutation.
func (s *Session) Table() *rangetable.Table { return s.table }

// Save re-encodes every loaded object against its original document and
// writes them as one batch: everything validates before anything is written.
func (s *Session) Save() error {
	all := s.table.All()

	rows := codec.RangeRows{
		Thresholds: make([]int, len(all)),
		Labels:     make([]string, len(all)),
	}
	colors := make([]colorhex.RGBA, len(all))
	for i, e := range all {
		rows.Thresholds[i] = e.Boundary
		rows.Labels[i] = e.Label
		colors[i] = e.Color
	}

	batch := make(map[string]*document.Value)

	encoded, err := codec.EncodeRangeCollection(rows, s.rangeDoc)
	if err != nil {
		return err
	}
	batch[workspace.ObjectRangeCollection] = encoded

	if s.presetDoc != nil {
		preset, perr := codec.EncodeColorPreset(colors, rows.Labels, s.presetDoc)
		if perr != nil {
			return perr
		}
		batch[workspace.ObjectColorsDefault] = preset
	}
	if s.highlightDoc != nil {
		doc, herr := codec.EncodeHighlightToggle(s.HighlightEnabled, false, s.highlightDoc)
		if herr != nil {
			return herr
		}
		batch[workspace.ObjectHighlight] = doc
	}
	if s.highlightNoBorder != nil {
		doc, herr := codec.EncodeHighlightToggle(s.HighlightEnabled, true, s.highlightNoBorder)
		if herr != nil {
			return herr
		}
		batch[workspace.ObjectHighlightNoBorder] = doc
	}

	return s.store.WriteBatch(batch)
}
