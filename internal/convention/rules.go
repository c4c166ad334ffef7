package convention

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/modu-ai/namelint/internal/casing"
	"github.com/modu-ai/namelint/pkg/models"
)

// catalogue returns the rules in evaluation order.
func catalogue() []Rule {
	return []Rule{
		{
			ID:          models.RuleFileNameCase,
			Description: "folder and file names are kebab-case (PascalCase allowed for component and class files when enabled)",
			check:       checkFileName,
		},
		{
			ID:          models.RuleUnparseable,
			Description: "source files must have parseable exports",
			check:       checkUnparseable,
		},
		{
			ID:          models.RuleComponentNameCase,
			Description: "component and class exports are PascalCase",
			check: symbolCase(models.RuleComponentNameCase, casing.Pascal,
				models.SymbolComponent, models.SymbolClass),
		},
		{
			ID:          models.RuleTypeNameCase,
			Description: "type and interface exports are PascalCase",
			check: symbolCase(models.RuleTypeNameCase, casing.Pascal,
				models.SymbolType, models.SymbolInterface),
		},
		{
			ID:          models.RuleFunctionNameCase,
			Description: "function and variable exports are camelCase",
			check: symbolCase(models.RuleFunctionNameCase, casing.Camel,
				models.SymbolFunction, models.SymbolVariable),
		},
		{
			ID:          models.RuleEnumCase,
			Description: "enum names are PascalCase and enum members are SCREAMING_SNAKE_CASE",
			check:       checkEnums,
		},
		{
			ID:          models.RuleConstantNameCase,
			Description: "top-level constants are SCREAMING_SNAKE_CASE",
			check: symbolCase(models.RuleConstantNameCase, casing.ScreamingSnake,
				models.SymbolConstant),
		},
		{
			ID:          models.RuleExportsPerFile,
			Description: "component and class files export a limited number of components or classes",
			check:       checkExportsPerFile,
		},
		{
			ID:          models.RuleBarrelReExport,
			Description: "barrel files only re-export named symbols (no wildcard, no default aggregate, no declarations)",
			check:       checkBarrel,
		},
	}
}

// checkFileName validates the folder segments and the file name of a path.
func checkFileName(r *run, f *models.FileEntry) []models.Violation {
	var out []models.Violation

	p := path.Clean(strings.ReplaceAll(f.Path, "\\", "/"))
	dir, name := path.Split(p)

	prefix := ""
	for seg := range strings.SplitSeq(strings.Trim(dir, "/"), "/") {
		if seg == "" || seg == "." || seg == ".." {
			continue
		}
		prefix = path.Join(prefix, seg)
		key := path.Join(f.Root, prefix)
		if strings.HasPrefix(seg, ".") || casing.IsKebab(seg) || r.badDirs[key] {
			continue
		}
		r.badDirs[key] = true
		out = append(out, models.Violation{
			FilePath:   f.Location(),
			Rule:       models.RuleFileNameCase,
			Message:    fmt.Sprintf("folder %q is not kebab-case", prefix),
			Symbol:     seg,
			Suggestion: casing.ToKebab(seg),
		})
	}

	stem, suffixes, ext := splitFileName(name)
	if fileNameValid(r.opts, f.Kind, stem, suffixes) {
		return out
	}

	expected := "kebab-case"
	if r.opts.AllowPascalFilenames && f.Kind.AllowsPascalFilename() {
		expected = "kebab-case or PascalCase"
	}
	out = append(out, models.Violation{
		FilePath:   f.Location(),
		Rule:       models.RuleFileNameCase,
		Message:    fmt.Sprintf("file name %q is not %s", name, expected),
		Symbol:     name,
		Suggestion: suggestFileName(stem, suffixes, ext),
	})
	return out
}

// splitFileName splits "order-card.test.tsx" into "order-card", ["test"], "tsx".
// A name without a dot has no extension.
func splitFileName(name string) (stem string, suffixes []string, ext string) {
	parts := strings.Split(name, ".")
	if len(parts) == 1 {
		return parts[0], nil, ""
	}
	return parts[0], parts[1 : len(parts)-1], parts[len(parts)-1]
}

func fileNameValid(opts Options, kind models.FileKind, stem string, suffixes []string) bool {
	for _, s := range suffixes {
		if !casing.IsKebab(s) {
			return false
		}
	}
	if casing.IsKebab(stem) {
		return true
	}
	return opts.AllowPascalFilenames && kind.AllowsPascalFilename() && casing.IsPascal(stem)
}

func suggestFileName(stem string, suffixes []string, ext string) string {
	parts := make([]string, 0, len(suffixes)+2)
	parts = append(parts, casing.ToKebab(stem))
	for _, s := range suffixes {
		parts = append(parts, casing.ToKebab(s))
	}
	if ext != "" {
		parts = append(parts, ext)
	}
	return strings.Join(parts, ".")
}

// checkUnparseable reports files the scanner could not make sense of.
func checkUnparseable(_ *run, f *models.FileEntry) []models.Violation {
	if f.ParseError == "" {
		return nil
	}
	return []models.Violation{{
		FilePath: f.Location(),
		Rule:     models.RuleUnparseable,
		Message:  "could not parse exports: " + f.ParseError,
	}}
}

// symbolCase builds a rule requiring every exported symbol of the given
// kinds to follow style.
func symbolCase(id models.RuleID, style casing.Style, kinds ...models.SymbolKind) ruleFunc {
	return func(_ *run, f *models.FileEntry) []models.Violation {
		if f.ParseError != "" {
			return nil
		}
		var out []models.Violation
		for _, s := range f.Symbols {
			if !slices.Contains(kinds, s.Kind) || casing.MatchesIdentifier(s.Name, style) {
				continue
			}
			out = append(out, symbolViolation(f, id, s.Kind, s.Name, style))
		}
		return out
	}
}

func symbolViolation(f *models.FileEntry, id models.RuleID, kind models.SymbolKind, name string, style casing.Style) models.Violation {
	v := models.Violation{
		FilePath: f.Location(),
		Rule:     id,
		Message:  fmt.Sprintf("%s %q must be %s", kind, name, style),
		Symbol:   name,
	}
	if s := casing.ConvertIdentifier(name, style); s != "" && s != name {
		v.Suggestion = s
		v.Message += fmt.Sprintf("; rename to %q", s)
	}
	return v
}

// checkEnums validates enum names and their members.
func checkEnums(_ *run, f *models.FileEntry) []models.Violation {
	if f.ParseError != "" {
		return nil
	}
	var out []models.Violation
	for _, s := range f.Symbols {
		if s.Kind != models.SymbolEnum {
			continue
		}
		if !casing.MatchesIdentifier(s.Name, casing.Pascal) {
			out = append(out, symbolViolation(f, models.RuleEnumCase, s.Kind, s.Name, casing.Pascal))
		}
		for _, m := range s.Members {
			if casing.MatchesIdentifier(m, casing.ScreamingSnake) {
				continue
			}
			v := symbolViolation(f, models.RuleEnumCase, "enum member", m, casing.ScreamingSnake)
			v.Message = s.Name + ": " + v.Message
			out = append(out, v)
		}
	}
	return out
}

// checkExportsPerFile bounds the number of components or classes exported
// by a component or class file.
func checkExportsPerFile(r *run, f *models.FileEntry) []models.Violation {
	if f.ParseError != "" {
		return nil
	}

	var kind models.SymbolKind
	switch f.Kind {
	case models.KindComponent:
		kind = models.SymbolComponent
	case models.KindClass:
		kind = models.SymbolClass
	default:
		return nil
	}

	symbols := f.SymbolsOfKind(kind)
	limit := r.opts.maxExports()
	if len(symbols) <= limit {
		return nil
	}

	names := make([]string, len(symbols))
	for i, s := range symbols {
		names[i] = s.Name
	}
	noun := "components"
	if kind == models.SymbolClass {
		noun = "classes"
	}
	return []models.Violation{{
		FilePath: f.Location(),
		Rule:     models.RuleExportsPerFile,
		Message: fmt.Sprintf("%s file exports %d %s (%s), at most %d allowed",
			f.Kind, len(symbols), noun, strings.Join(names, ", "), limit),
	}}
}

// checkBarrel requires barrel files to consist of named re-exports only.
func checkBarrel(_ *run, f *models.FileEntry) []models.Violation {
	if f.Kind != models.KindBarrel || f.ParseError != "" {
		return nil
	}

	var out []models.Violation
	for _, re := range f.ReExports {
		if !re.Wildcard {
			continue
		}
		out = append(out, models.Violation{
			FilePath: f.Location(),
			Rule:     models.RuleBarrelReExport,
			Message:  fmt.Sprintf("wildcard re-export %q; re-export individual symbols instead", re.Statement),
			Symbol:   re.Source,
		})
	}
	if f.DefaultAggregate {
		out = append(out, models.Violation{
			FilePath: f.Location(),
			Rule:     models.RuleBarrelReExport,
			Message:  "barrel default-exports an aggregate object; use named re-exports",
		})
	}
	for _, name := range f.Declarations {
		out = append(out, models.Violation{
			FilePath: f.Location(),
			Rule:     models.RuleBarrelReExport,
			Message:  fmt.Sprintf("barrel declares %q; move it to its own module and re-export it", name),
			Symbol:   name,
		})
	}
	return out
}
