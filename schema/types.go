// Package schema declares the YAML document model for class hierarchy
// declarations, plus structural validation of loaded documents.
//
// This file defines File, ClassDecl, MemberDecl, AccessorDecl, the
// sentinel errors, and Validate.
package schema

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/finality/core"
)

// Sentinel errors for schema loading, validation, and building.
var (
	// ErrNilFile indicates a nil *File was passed where a document is required.
	ErrNilFile = errors.New("schema: file is nil")

	// ErrNilCatalog indicates a nil *Catalog was passed to Build.
	ErrNilCatalog = errors.New("schema: catalog is nil")

	// ErrEmptyName indicates a class, base, or member declared under the
	// empty name.
	ErrEmptyName = errors.New("schema: name is empty")

	// ErrDuplicateClass indicates the same class name declared or defined
	// twice.
	ErrDuplicateClass = errors.New("schema: duplicate class name")

	// ErrDuplicateMember indicates the same member name declared twice
	// within one class.
	ErrDuplicateMember = errors.New("schema: duplicate member name")

	// ErrUnknownKind indicates a member kind outside method, static,
	// classmethod, and property.
	ErrUnknownKind = errors.New("schema: unknown member kind")

	// ErrBadAccessor indicates a getter, setter, or deleter declared on a
	// member that is not a property.
	ErrBadAccessor = errors.New("schema: accessor on non-property member")

	// ErrNoAccessors indicates a property that declares no accessor at all.
	ErrNoAccessors = errors.New("schema: property declares no accessors")

	// ErrUnknownBase indicates a base name that resolves to no declared or
	// pre-defined class.
	ErrUnknownBase = errors.New("schema: base class not declared")

	// ErrClassNotFound indicates a catalog lookup for an undefined name.
	ErrClassNotFound = errors.New("schema: class not found")
)

// File is the root of one declaration document. Classes are materialized
// in declaration order, so every base must appear before its subclasses
// or already live in the target catalog.
type File struct {
	Classes []ClassDecl `yaml:"classes"`
}

// ClassDecl declares one class: its bases by name, its members, and
// whether the whole class is sealed against subclassing.
type ClassDecl struct {
	Name    string       `yaml:"name"`
	Bases   []string     `yaml:"bases"`
	Final   bool         `yaml:"final"`
	Members []MemberDecl `yaml:"members"`
}

// MemberDecl declares one member. Kind is one of "method", "static",
// "classmethod", "property"; the empty string defaults to "method".
// Getter, Setter, and Deleter are meaningful only for properties:
// a present (possibly empty) mapping declares the accessor, an absent
// one leaves the slot empty.
type MemberDecl struct {
	Name    string        `yaml:"name"`
	Kind    string        `yaml:"kind"`
	Final   bool          `yaml:"final"`
	Getter  *AccessorDecl `yaml:"getter"`
	Setter  *AccessorDecl `yaml:"setter"`
	Deleter *AccessorDecl `yaml:"deleter"`
}

// AccessorDecl declares one property accessor and its own finality mark.
type AccessorDecl struct {
	Final bool `yaml:"final"`
}

// parseKind maps a declared kind string onto core.Kind.
// The empty string defaults to KindMethod.
func parseKind(s string) (core.Kind, error) {
	switch s {
	case "", core.KindMethod.String():
		return core.KindMethod, nil
	case core.KindStatic.String():
		return core.KindStatic, nil
	case core.KindClassMethod.String():
		return core.KindClassMethod, nil
	case core.KindProperty.String():
		return core.KindProperty, nil
	default:
		return 0, ErrUnknownKind
	}
}

// Validate checks the document structure: non-empty unique class names,
// non-empty base names, non-empty unique member names per class, known
// member kinds, and accessor declarations confined to properties (which
// in turn must declare at least one accessor).
//
// Validate is purely structural. Base resolution, inheritance rules, and
// finality enforcement happen when the document is built against a
// catalog.
func (f *File) Validate() error {
	// 1. Document guard.
	if f == nil {
		return ErrNilFile
	}
	// 2. Per-class structural checks, duplicates tracked across the file.
	seen := make(map[string]bool, len(f.Classes))
	for i, cd := range f.Classes {
		if cd.Name == "" {
			return fmt.Errorf("schema: class #%d: %w", i, ErrEmptyName)
		}
		if seen[cd.Name] {
			return fmt.Errorf("schema: class %q: %w", cd.Name, ErrDuplicateClass)
		}
		seen[cd.Name] = true
		for j, bname := range cd.Bases {
			if bname == "" {
				return fmt.Errorf("schema: class %q: base #%d: %w", cd.Name, j, ErrEmptyName)
			}
		}
		if err := validateMembers(cd); err != nil {
			return err
		}
	}

	return nil
}

// validateMembers checks the member declarations of one class.
func validateMembers(cd ClassDecl) error {
	seen := make(map[string]bool, len(cd.Members))
	for j, md := range cd.Members {
		if md.Name == "" {
			return fmt.Errorf("schema: class %q: member #%d: %w", cd.Name, j, ErrEmptyName)
		}
		if seen[md.Name] {
			return fmt.Errorf("schema: class %q: member %q: %w", cd.Name, md.Name, ErrDuplicateMember)
		}
		seen[md.Name] = true
		kind, err := parseKind(md.Kind)
		if err != nil {
			return fmt.Errorf("schema: class %q: member %q: kind %q: %w", cd.Name, md.Name, md.Kind, err)
		}
		declared := md.Getter != nil || md.Setter != nil || md.Deleter != nil
		if kind != core.KindProperty && declared {
			return fmt.Errorf("schema: class %q: member %q: %w", cd.Name, md.Name, ErrBadAccessor)
		}
		if kind == core.KindProperty && !declared {
			return fmt.Errorf("schema: class %q: member %q: %w", cd.Name, md.Name, ErrNoAccessors)
		}
	}

	return nil
}
