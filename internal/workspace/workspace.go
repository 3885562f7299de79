// Package workspace is the object store the editor works against: a
// directory of extracted per-object JSON documents, one file per named
// container object. It sits on billy.Filesystem so tests run against memfs
// and the CLI against the real disk.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"sort"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/matt-wadsworth/fm-attribute-customizer/internal/codec"
	"github.com/matt-wadsworth/fm-attribute-customizer/internal/document"
)

// ErrNotFound reports a named object missing from the workspace.
var ErrNotFound = errors.New("object not found")

// Canonical object names as they appear inside the game's containers.
const (
	ObjectRangeCollection   = "AttributeDataCollection"
	ObjectColorsDefault     = "AttributeColoursDefault"
	ObjectHighlight         = "AttributeHighlightTypeDataCollection"
	ObjectHighlightNoBorder = "AttributeHighlightTypeNoBorderDataCollection"
)

// ColorPresetNames lists the shipped color preset objects. Only the default
// preset is edited; the others load for inspection.
func ColorPresetNames() []string {
	return []string{
		"AttributeColoursDefault",
		"AttributeColoursAlternative",
		"AttributeColoursBlueOrange",
		"AttributeColoursCyanYellow",
	}
}

// Container file names inside the game's bundle directory.
const (
	DataBundleName  = "ui-datacollections_assets_all.bundle"
	StyleBundleName = "ui-styles_assets_default.bundle"
)

var platformDirs = []string{
	"StandaloneWindows64",
	"StandaloneLinux64",
	"StandaloneOSX",
}

// BundleDir resolves the container directory under a game install. Each
// platform build keeps it under a different leaf; when none exists the
// Windows layout is returned so callers produce a usable error path.
func BundleDir(fs billy.Filesystem, installDir string) string {
	for _, platform := range platformDirs {
		dir := fs.Join(installDir, "fm_Data", "StreamingAssets", "aa", platform)
		if info, err := fs.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return fs.Join(installDir, "fm_Data", "StreamingAssets", "aa", platformDirs[0])
}

// Store reads and writes named object documents.
type Store struct {
	fs billy.Filesystem
}

// NewStore wraps an existing filesystem, typically memfs in tests.
func NewStore(fs billy.Filesystem) *Store { return &Store{fs: fs} }

// Open returns a store over a directory on the local disk.
func Open(dir string) *Store { return &Store{fs: osfs.New(dir)} }

func (s *Store) objectPath(name string) string { return name + ".json" }

// ReadObject loads and parses the document for a named object. A missing
// file surfaces as ErrNotFound.
func (s *Store) ReadObject(name string) (*document.Value, error) {
	data, err := util.ReadFile(s.fs, s.objectPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("read object %s: %w", name, err)
	}
	doc, err := document.ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parse object %s: %w", name, err)
	}
	return doc, nil
}

// WriteObject serializes a document back to the workspace.
func (s *Store) WriteObject(name string, doc *document.Value) error {
	if err := util.WriteFile(s.fs, s.objectPath(name), document.MarshalJSON(doc), 0o644); err != nil {
		return fmt.Errorf("write object %s: %w", name, err)
	}
	return nil
}

// WriteBatch validates every document, then writes them all. A single
// validation failure aborts the batch before any object touches disk, so a
// save never leaves the workspace half-written.
func (s *Store) WriteBatch(objects map[string]*document.Value) error {
	names := make([]string, 0, len(objects))
	for name := range objects {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := codec.Validate(objects[name]); err != nil {
			return fmt.Errorf("validate %s: %w", name, err)
		}
	}
	for _, name := range names {
		if err := s.WriteObject(name, objects[name]); err != nil {
			return err
		}
	}
	return nil
}
