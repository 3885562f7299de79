// Package scheme loads named color palettes from HCL files. A scheme maps
// onto the editable rating bands in order, cycling when it is shorter than
// the band count.
package scheme

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/matt-wadsworth/fm-attribute-customizer/internal/colorhex"
)

// File is the root of a scheme file.
//
//	scheme "heatmap" {
//	  colors = ["#D32F2FFF", "#F57C00FF", "#FBC02DFF", "#7CB342FF"]
//	}
type File struct {
	Schemes []Scheme `hcl:"scheme,block"`
}

// Scheme is one named palette.
type Scheme struct {
	Name   string   `hcl:"name,label"`
	Colors []string `hcl:"colors"`
}

// Load parses a scheme file from disk.
func Load(path string) (*File, error) {
	var out File
	if err := hclsimple.DecodeFile(path, nil, &out); err != nil {
		return nil, fmt.Errorf("load scheme file %s: %w", path, err)
	}
	for _, s := range out.Schemes {
		if len(s.Colors) == 0 {
			return nil, fmt.Errorf("scheme %q: colors must not be empty", s.Name)
		}
	}
	return &out, nil
}

// Find returns the named scheme.
func (f *File) Find(name string) (*Scheme, bool) {
	for i := range f.Schemes {
		if f.Schemes[i].Name == name {
			return &f.Schemes[i], true
		}
	}
	return nil, false
}

// RGBA parses the palette's hex colors.
func (s *Scheme) RGBA() ([]colorhex.RGBA, error) {
	out := make([]colorhex.RGBA, len(s.Colors))
	for i, hex := range s.Colors {
		c, err := colorhex.Parse(hex)
		if err != nil {
			return nil, fmt.Errorf("scheme %q: %w", s.Name, err)
		}
		out[i] = c
	}
	return out, nil
}

// Apply returns a color per band, cycling through the palette when the table
// has more bands than the palette has colors.
func (s *Scheme) Apply(bandCount int) ([]colorhex.RGBA, error) {
	palette, err := s.RGBA()
	if err != nil {
		return nil, err
	}
	out := make([]colorhex.RGBA, bandCount)
	for i := range out {
		out[i] = palette[i%len(palette)]
	}
	return out, nil
}
