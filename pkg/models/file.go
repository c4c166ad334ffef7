package models

import (
	"path"
	"slices"
)

// FileKind classifies a file in the scanned tree.
type FileKind string

const (
	KindComponent FileKind = "component"
	KindClass     FileKind = "class"
	KindUtility   FileKind = "utility"
	KindDTO       FileKind = "dto"
	KindHook      FileKind = "hook"
	KindStyle     FileKind = "style"
	KindAsset     FileKind = "asset"
	KindBarrel    FileKind = "barrel"
	KindTest      FileKind = "test"
)

var fileKinds = []FileKind{
	KindComponent, KindClass, KindUtility, KindDTO, KindHook,
	KindStyle, KindAsset, KindBarrel, KindTest,
}

// IsSource reports whether files of this kind carry exports worth parsing.
func (k FileKind) IsSource() bool {
	switch k {
	case KindComponent, KindClass, KindUtility, KindDTO, KindHook, KindBarrel:
		return true
	default:
		return false
	}
}

// AllowsPascalFilename reports whether the allow_pascal_filenames option
// applies to files of this kind.
func (k FileKind) AllowsPascalFilename() bool {
	return k == KindComponent || k == KindClass
}

// FileKinds returns all known file kinds.
func FileKinds() []FileKind {
	return slices.Clone(fileKinds)
}

// SymbolKind classifies an exported declaration.
type SymbolKind string

const (
	SymbolComponent SymbolKind = "component"
	SymbolClass     SymbolKind = "class"
	SymbolType      SymbolKind = "type"
	SymbolInterface SymbolKind = "interface"
	SymbolFunction  SymbolKind = "function"
	SymbolVariable  SymbolKind = "variable"
	SymbolEnum      SymbolKind = "enum"
	SymbolConstant  SymbolKind = "constant"
)

var symbolKinds = []SymbolKind{
	SymbolComponent, SymbolClass, SymbolType, SymbolInterface,
	SymbolFunction, SymbolVariable, SymbolEnum, SymbolConstant,
}

// SymbolKinds returns all known symbol kinds.
func SymbolKinds() []SymbolKind {
	return slices.Clone(symbolKinds)
}

// ExportedSymbol is a single exported declaration of a file.
type ExportedSymbol struct {
	Name    string     `json:"name" yaml:"name"`
	Kind    SymbolKind `json:"kind" yaml:"kind"`
	Members []string   `json:"members,omitempty" yaml:"members,omitempty"` // enum members
	Default bool       `json:"default,omitempty" yaml:"default,omitempty"`
}

// ReExport is an `export ... from '...'` statement.
type ReExport struct {
	Statement string   `json:"statement" yaml:"statement"`
	Source    string   `json:"source" yaml:"source"`
	Names     []string `json:"names,omitempty" yaml:"names,omitempty"`
	Wildcard  bool     `json:"wildcard,omitempty" yaml:"wildcard,omitempty"`
}

// FileEntry is one file of the scanned tree together with what it exports.
// Path is slash-separated and relative to Root; folder naming rules only
// look at the segments of Path.
type FileEntry struct {
	Root             string           `json:"root,omitempty" yaml:"root,omitempty"`
	Path             string           `json:"path" yaml:"path"`
	Kind             FileKind         `json:"kind" yaml:"kind"`
	Symbols          []ExportedSymbol `json:"symbols,omitempty" yaml:"symbols,omitempty"`
	ReExports        []ReExport       `json:"reExports,omitempty" yaml:"re_exports,omitempty"`
	DefaultAggregate bool             `json:"defaultAggregate,omitempty" yaml:"default_aggregate,omitempty"`
	// Declarations lists exported declarations that are not re-exports,
	// in source order. Only barrel files need it.
	Declarations []string `json:"declarations,omitempty" yaml:"declarations,omitempty"`
	ParseError   string   `json:"parseError,omitempty" yaml:"parse_error,omitempty"`
}

// SymbolsOfKind returns the exported symbols of the given kind, in order.
func (f *FileEntry) SymbolsOfKind(kind SymbolKind) []ExportedSymbol {
	var out []ExportedSymbol
	for _, s := range f.Symbols {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

// Location returns the path used when reporting on the file: Path joined to
// Root.
func (f *FileEntry) Location() string {
	if f.Root == "" || f.Root == "." {
		return f.Path
	}
	return path.Join(f.Root, f.Path)
}
