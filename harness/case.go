// SPDX-License-Identifier: MIT
// Package: seqcheck/harness
//
// case.go — test case model and YAML manifest loading.
//
// Contract:
//   • A Case has a name, exactly one of Source/File, and at least one check
//     (Family and/or Reference).
//   • LoadManifest resolves File relative to the manifest directory and
//     replaces it with the file contents, so the runner only sees Source.
//   • Unknown YAML fields are errors (typos must not silently disable checks).

package harness

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/katalvlaran/seqcheck/classify"
	"github.com/katalvlaran/seqcheck/sequence"
	"gopkg.in/yaml.v3"
)

// Case is one compile-and-check scenario.
type Case struct {
	Name      string           `yaml:"name"`
	Title     string           `yaml:"title,omitempty"`
	Source    string           `yaml:"source,omitempty"`
	File      string           `yaml:"file,omitempty"`
	Family    *classify.Family `yaml:"family,omitempty"`
	Expect    *bool            `yaml:"expect,omitempty"`
	Reference *sequence.Params `yaml:"reference,omitempty"`
}

// Expected is the required classifier verdict; true unless Expect says otherwise.
func (c Case) Expected() bool {
	return c.Expect == nil || *c.Expect
}

// Validate checks the structural rules of a case.
func (c Case) Validate() error {
	switch {
	case c.Name == "":
		return fmt.Errorf("case without name: %w", ErrInvalidCase)
	case c.Source == "" && c.File == "":
		return fmt.Errorf("case %q: no source or file: %w", c.Name, ErrInvalidCase)
	case c.Source != "" && c.File != "":
		return fmt.Errorf("case %q: both source and file set: %w", c.Name, ErrInvalidCase)
	case c.Family == nil && c.Reference == nil:
		return fmt.Errorf("case %q: nothing to check (family or reference): %w", c.Name, ErrInvalidCase)
	}
	if c.Reference == nil {
		return nil
	}

	// Compiler output is parsed as integers, so a fractional reference
	// value could never be matched.
	ref, err := sequence.Generate(*c.Reference)
	if err != nil {
		return fmt.Errorf("case %q: reference: %w: %w", c.Name, err, ErrInvalidCase)
	}
	for i, v := range ref {
		if v != math.Trunc(v) {
			return fmt.Errorf("case %q: reference value %d (%g) is not an integer: %w", c.Name, i, v, ErrInvalidCase)
		}
	}

	return nil
}

// Manifest is a list of cases.
type Manifest struct {
	Cases []Case `yaml:"cases"`
}

// LoadManifest decodes a YAML manifest from r. File references are resolved
// against baseDir and inlined as Source. Every case is validated.
func LoadManifest(r io.Reader, baseDir string) (Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && err != io.EOF {
		return Manifest{}, fmt.Errorf("%w: %v", ErrManifest, err)
	}

	seen := make(map[string]struct{}, len(m.Cases))
	for i := range m.Cases {
		c := &m.Cases[i]
		if err := c.Validate(); err != nil {
			return Manifest{}, err
		}
		if _, dup := seen[c.Name]; dup {
			return Manifest{}, fmt.Errorf("case %q: duplicate name: %w", c.Name, ErrInvalidCase)
		}
		seen[c.Name] = struct{}{}

		if c.File != "" {
			path := c.File
			if !filepath.IsAbs(path) {
				path = filepath.Join(baseDir, path)
			}
			src, err := os.ReadFile(path)
			if err != nil {
				return Manifest{}, fmt.Errorf("%w: case %q: %v", ErrManifest, c.Name, err)
			}
			c.Source, c.File = string(src), ""
		}
	}

	return m, nil
}

// LoadManifestFile reads and decodes the manifest at path.
func LoadManifestFile(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("%w: %v", ErrManifest, err)
	}

	return LoadManifest(bytes.NewReader(data), filepath.Dir(path))
}
