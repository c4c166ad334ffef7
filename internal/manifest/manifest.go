// Package manifest reads and writes file manifests: JSON documents holding
// the FileEntry records of a source tree. A manifest lets an external
// scanner feed the convention checker, and lets the built-in scanner's
// output be inspected or replayed.
package manifest

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/modu-ai/namelint/pkg/models"
)

//go:embed schema.json
var schemaJSON []byte

// Stdin is the manifest name that reads from standard input.
const Stdin = "-"

// Sentinel errors for the manifest package.
var (
	// ErrInvalidJSON indicates the document is not well-formed JSON.
	ErrInvalidJSON = errors.New("manifest: invalid JSON")

	// ErrRead indicates the manifest could not be read.
	ErrRead = errors.New("manifest: read failed")
)

// FieldError is a single schema violation at a document path.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every schema violation of a manifest.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("manifest: schema validation failed:")
	for i, fe := range e.Errors {
		fmt.Fprintf(&sb, "\n  %d. %s: %s", i+1, fe.Field, fe.Message)
	}
	return sb.String()
}

// Document is the manifest wire format.
type Document struct {
	Files []models.FileEntry `json:"files"`
}

var loadSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	var doc map[string]any
	if err := json.Unmarshal(schemaJSON, &doc); err != nil {
		return nil, err
	}
	setKindEnum(doc, "file", models.FileKinds())
	setKindEnum(doc, "symbol", models.SymbolKinds())
	return gojsonschema.NewSchema(gojsonschema.NewGoLoader(doc))
})

// setKindEnum restricts the "kind" property of a schema definition to the
// kinds the models package knows.
func setKindEnum[K ~string](doc map[string]any, definition string, kinds []K) {
	defs, _ := doc["definitions"].(map[string]any)
	def, _ := defs[definition].(map[string]any)
	props, _ := def["properties"].(map[string]any)
	kind, ok := props["kind"].(map[string]any)
	if !ok {
		return
	}
	enum := make([]any, len(kinds))
	for i, k := range kinds {
		enum[i] = string(k)
	}
	kind["enum"] = enum
}

// Validate checks data against the manifest schema. It returns a
// *ValidationError listing every problem, or ErrInvalidJSON when data does
// not parse.
func Validate(data []byte) error {
	if !json.Valid(data) {
		return ErrInvalidJSON
	}

	schema, err := loadSchema()
	if err != nil {
		return fmt.Errorf("load manifest schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		verr.Errors = append(verr.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return verr
}

// Parse validates and decodes a manifest document.
func Parse(data []byte) ([]models.FileEntry, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	for i := range doc.Files {
		doc.Files[i].Path = strings.ReplaceAll(doc.Files[i].Path, "\\", "/")
	}
	return doc.Files, nil
}

// Read parses the manifest held by r.
func Read(r io.Reader) ([]models.FileEntry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	return Parse(data)
}

// Load parses the manifest file at name, or stdin when name is Stdin.
func Load(name string, stdin io.Reader) ([]models.FileEntry, error) {
	if name == Stdin {
		return Read(stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	defer func() { _ = f.Close() }()
	return Read(f)
}

// Write encodes files as an indented manifest document.
func Write(w io.Writer, files []models.FileEntry) error {
	if files == nil {
		files = []models.FileEntry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Document{Files: files}); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return nil
}
