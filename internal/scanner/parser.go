package scanner

import (
	"regexp"
	"sort"
	"strings"

	"github.com/modu-ai/namelint/internal/casing"
	"github.com/modu-ai/namelint/pkg/models"
)

const ident = `[A-Za-z_$][\w$]*`

// Declaration patterns run on masked source. An optional export prefix
// lets one pattern find both exported declarations and column-0 local
// declarations.
var (
	reFunc        = regexp.MustCompile(`(?m)^(?P<export>[ \t]*export\s+(?P<default>default\s+)?)?(?:declare\s+)?(?:async\s+)?function\b\s*\*?\s*(?P<name>` + ident + `)?`)
	reClass       = regexp.MustCompile(`(?m)^(?P<export>[ \t]*export\s+(?P<default>default\s+)?)?(?:declare\s+)?(?:abstract\s+)?class\b\s*(?P<name>` + ident + `)?(?P<head>[^{]*)`)
	reInterface   = regexp.MustCompile(`(?m)^(?P<export>[ \t]*export\s+(?P<default>default\s+)?)?(?:declare\s+)?interface\s+(?P<name>` + ident + `)`)
	reTypeAlias   = regexp.MustCompile(`(?m)^(?P<export>[ \t]*export\s+)?(?:declare\s+)?type\s+(?P<name>` + ident + `)\s*(?:<[^;\n]*?>)?\s*=`)
	reEnum        = regexp.MustCompile(`(?m)^(?P<export>[ \t]*export\s+)?(?:declare\s+)?(?:const\s+)?enum\s+(?P<name>` + ident + `)\s*\{`)
	reVar         = regexp.MustCompile(`(?m)^(?P<export>[ \t]*export\s+)?(?:declare\s+)?(?P<keyword>const|let|var)\s+(?P<name>` + ident + `)\s*(?P<head>:(?:[^=;\n]|=>)*)?=`)
	reDestructure = regexp.MustCompile(`(?m)^(?P<export>[ \t]*export\s+)?(?:declare\s+)?(?P<keyword>const|let|var)\s+[{\[]`)
	reCommonJS    = regexp.MustCompile(`(?m)^[ \t]*(?:module\.)?exports(?:\.(?P<name>` + ident + `))?\s*=[^=]`)
)

// Export statement patterns.
var (
	reExportBraces  = regexp.MustCompile(`(?m)^[ \t]*export\s+(?:type\s+)?\{(?P<names>[^}]*)\}(?P<from>\s*from\s*['"])?`)
	reExportStar    = regexp.MustCompile(`(?m)^[ \t]*export\s+(?:type\s+)?\*\s*(?:as\s+(?P<ns>` + ident + `)\s+)?from\s*['"]`)
	reDefaultIdent  = regexp.MustCompile(`(?m)^[ \t]*export\s+default\s+(?P<name>` + ident + `)\s*;?[ \t\r]*$`)
	reDefaultWrap   = regexp.MustCompile(`(?m)^[ \t]*export\s+default\s+(?:React\.)?(?:memo|forwardRef|observer)\(\s*(?P<name>` + ident + `)`)
	reDefaultObject = regexp.MustCompile(`(?m)^[ \t]*export\s+default\s*\{`)
	reAnyExport     = regexp.MustCompile(`(?m)^[ \t]*export\b`)
	reImport        = regexp.MustCompile(`(?m)^[ \t]*import\s+(?:type\s+)?(?P<clause>[^;'"]*?)\s*from\s*['"]`)
)

// Value and body heuristics.
var (
	reJSX           = regexp.MustCompile(`</[A-Za-z]|/>|<>|</>`)
	reComponentHint = regexp.MustCompile(`\b(?:React\.)?(?:FC|FunctionComponent|VFC|ReactElement|ReactNode)\b|\bJSX\.Element\b`)
	reReactClass    = regexp.MustCompile(`\bextends\s+(?:React\.)?(?:Pure)?Component\b`)
	reWrapped       = regexp.MustCompile(`^(?:React\.)?(?:memo|forwardRef|observer)\s*[<(]`)
	reStyled        = regexp.MustCompile(`^styled(?:\.|\()`)
	reFunctionValue = regexp.MustCompile(`^(?:async\s*)?(?:function\b|<[^>]*>\s*\(|\([^)]*\)\s*(?::[^=]*?)?=>|` + ident + `\s*=>)`)
	reLiteralValue  = regexp.MustCompile("^(?:['\"`]|-?\\.?\\d|true\\b|false\\b|null\\b|undefined\\b)")
	reAsConst       = regexp.MustCompile(`\bas\s+const\b`)
)

var reservedDefault = map[string]bool{
	"function": true, "class": true, "async": true, "abstract": true,
	"interface": true, "enum": true, "new": true, "await": true,
}

// parseMode controls the JSX heuristics of the parser.
type parseMode struct {
	// jsx enables component detection.
	jsx bool
	// componentFile treats a default-exported function as a component.
	componentFile bool
}

// parseResult is what a single module exports.
type parseResult struct {
	Symbols          []models.ExportedSymbol
	ReExports        []models.ReExport
	DefaultAggregate bool
	Declarations     []string
	HasJSX           bool
	// SawExport is set when the module has any export statement, even one
	// that yields no named symbol.
	SawExport bool
}

type declKind int

const (
	declFunc declKind = iota
	declClass
	declInterface
	declType
	declEnum
	declVar
)

type decl struct {
	name         string
	kind         declKind
	exported     bool
	isDefault    bool
	start        int
	end          int
	head         string
	keyword      string // const, let or var for variable declarations
	valueAt      int
	// destructured is set for names bound by an object or array pattern.
	destructured bool
	members      []string
	symbol       models.SymbolKind
}

type importBinding struct {
	source    string
	namespace bool
}

type positioned struct {
	pos    int
	symbol models.ExportedSymbol
}

// parser holds the state of one parseExports call.
type parser struct {
	src     string // original text
	code    string // comments and string contents blanked, same length as src
	plain   string // comments blanked, strings kept
	mode    parseMode
	decls   []*decl
	byName  map[string]*decl
	imports map[string]importBinding
	bounds  []int
	out     parseResult
	symbols []positioned
}

// parseExports extracts the exports of a JS/TS module.
func parseExports(src []byte, mode parseMode) parseResult {
	p := &parser{
		src:     string(src),
		code:    string(mask(src, true)),
		plain:   string(mask(src, false)),
		mode:    mode,
		byName:  make(map[string]*decl),
		imports: make(map[string]importBinding),
	}
	p.collectImports()
	p.collectDecls()
	p.classifyDecls()
	p.collectExportStatements()
	p.finish()
	return p.out
}

// group returns the text of a named submatch, or "" when it did not take part.
func group(re *regexp.Regexp, s string, m []int, name string) string {
	i := re.SubexpIndex(name)
	if i < 0 || m[2*i] < 0 {
		return ""
	}
	return s[m[2*i]:m[2*i+1]]
}

func (p *parser) collectImports() {
	for _, m := range reImport.FindAllStringSubmatchIndex(p.code, -1) {
		clause := group(reImport, p.code, m, "clause")
		source := p.quoted(m[1] - 1)
		p.bounds = append(p.bounds, m[0])

		clause = strings.TrimSpace(clause)
		if ns, ok := strings.CutPrefix(clause, "*"); ok {
			if _, name, found := strings.Cut(ns, " as "); found {
				p.imports[strings.TrimSpace(name)] = importBinding{source: source, namespace: true}
			}
			continue
		}
		if i := strings.IndexByte(clause, '{'); i >= 0 {
			if def := strings.Trim(strings.TrimSpace(clause[:i]), ","); strings.TrimSpace(def) != "" {
				p.imports[strings.TrimSpace(def)] = importBinding{source: source}
			}
			list := clause[i+1:]
			if j := strings.IndexByte(list, '}'); j >= 0 {
				list = list[:j]
			}
			for _, n := range parseNameList(list) {
				p.imports[n.exported] = importBinding{source: source}
			}
			continue
		}
		for part := range strings.SplitSeq(clause, ",") {
			part = strings.TrimSpace(part)
			if strings.HasPrefix(part, "*") {
				if _, name, found := strings.Cut(part, " as "); found {
					p.imports[strings.TrimSpace(name)] = importBinding{source: source, namespace: true}
				}
				continue
			}
			if part != "" {
				p.imports[part] = importBinding{source: source}
			}
		}
	}
}

func (p *parser) addDecl(d *decl) {
	p.decls = append(p.decls, d)
	p.bounds = append(p.bounds, d.start)
	if _, seen := p.byName[d.name]; !seen {
		p.byName[d.name] = d
	}
}

func (p *parser) collectDecls() {
	type pattern struct {
		re   *regexp.Regexp
		kind declKind
	}
	patterns := []pattern{
		{reFunc, declFunc},
		{reClass, declClass},
		{reInterface, declInterface},
		{reTypeAlias, declType},
		{reEnum, declEnum},
		{reVar, declVar},
	}

	for _, pt := range patterns {
		for _, m := range pt.re.FindAllStringSubmatchIndex(p.code, -1) {
			exportPrefix := group(pt.re, p.code, m, "export")
			def := group(pt.re, p.code, m, "default")
			name := group(pt.re, p.code, m, "name")
			head := group(pt.re, p.code, m, "head")
			keyword := group(pt.re, p.code, m, "keyword")

			if pt.kind == declClass && (name == "extends" || name == "implements") {
				head = name + head
				name = ""
			}
			if name == "" {
				// Anonymous default export: nothing to name-check.
				if exportPrefix != "" {
					p.out.SawExport = true
					p.bounds = append(p.bounds, m[0])
				}
				continue
			}

			d := &decl{
				name:      name,
				kind:      pt.kind,
				exported:  exportPrefix != "",
				isDefault: def != "",
				start:     m[0],
				head:      head,
				keyword:   keyword,
				valueAt:   m[1],
			}
			if pt.kind == declEnum {
				d.members = p.enumMembers(m[1] - 1)
			}
			p.addDecl(d)
		}
	}

	p.collectDestructured()

	for _, m := range reCommonJS.FindAllStringSubmatchIndex(p.code, -1) {
		p.out.SawExport = true
		name := group(reCommonJS, p.code, m, "name")
		if name == "" {
			continue
		}
		p.addDecl(&decl{name: name, kind: declVar, exported: true, start: m[0], valueAt: m[1] - 1})
	}

	sort.SliceStable(p.decls, func(i, j int) bool { return p.decls[i].start < p.decls[j].start })
}

// collectDestructured records every name bound by
// `const { a, b: c } = ...` or `const [x, y] = ...`.
func (p *parser) collectDestructured() {
	for _, m := range reDestructure.FindAllStringSubmatchIndex(p.code, -1) {
		open := m[1] - 1
		closeAt := p.matchingClose(open)
		if closeAt < 0 {
			continue
		}
		exported := group(reDestructure, p.code, m, "export") != ""
		keyword := group(reDestructure, p.code, m, "keyword")

		names := bindingNames(p.code[open+1:closeAt], p.code[open] == '{')
		if len(names) == 0 && exported {
			p.out.SawExport = true
			p.bounds = append(p.bounds, m[0])
		}
		for _, name := range names {
			p.addDecl(&decl{
				name:         name,
				kind:         declVar,
				exported:     exported,
				start:        m[0],
				keyword:      keyword,
				valueAt:      closeAt + 1,
				destructured: true,
			})
		}
	}
}

// matchingClose returns the index of the bracket closing the one at open,
// or -1.
func (p *parser) matchingClose(open int) int {
	depth := 0
	for i := open; i < len(p.code); i++ {
		switch p.code[i] {
		case '{', '(', '[':
			depth++
		case '}', ')', ']':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// segment returns the masked text of a declaration up to the next
// statement the parser knows about.
func (p *parser) segment(d *decl) string {
	return p.code[d.start:d.end]
}

func (p *parser) classifyDecls() {
	for _, m := range reAnyExport.FindAllStringIndex(p.code, -1) {
		p.bounds = append(p.bounds, m[0])
	}
	sort.Ints(p.bounds)

	for _, d := range p.decls {
		d.end = len(p.code)
		i := sort.SearchInts(p.bounds, d.start+1)
		if i < len(p.bounds) {
			d.end = p.bounds[i]
		}

		text := p.segment(d)
		if p.mode.jsx && reJSX.MatchString(text) {
			p.out.HasJSX = true
		}

		switch d.kind {
		case declFunc:
			d.symbol = models.SymbolFunction
			if p.isComponent(d, text) {
				d.symbol = models.SymbolComponent
			}
		case declClass:
			d.symbol = models.SymbolClass
			if p.mode.jsx && reReactClass.MatchString(d.head) {
				d.symbol = models.SymbolComponent
			}
		case declInterface:
			d.symbol = models.SymbolInterface
		case declType:
			d.symbol = models.SymbolType
		case declEnum:
			d.symbol = models.SymbolEnum
		case declVar:
			d.symbol = p.classifyValue(d, text)
		}
	}
}

func (p *parser) isComponent(d *decl, text string) bool {
	if !p.mode.jsx {
		return false
	}
	if p.mode.componentFile && d.isDefault {
		return true
	}
	return reJSX.MatchString(text) || reComponentHint.MatchString(text)
}

func (p *parser) classifyValue(d *decl, text string) models.SymbolKind {
	value := ""
	if d.valueAt <= d.end {
		value = strings.TrimLeft(p.code[d.valueAt:d.end], " \t\r\n")
	}

	if d.destructured {
		if d.keyword == "const" && casing.MatchesIdentifier(d.name, casing.ScreamingSnake) {
			return models.SymbolConstant
		}
		return models.SymbolVariable
	}

	switch {
	case reStyled.MatchString(value):
		return models.SymbolComponent
	case reFunctionValue.MatchString(value):
		if p.isComponent(d, text) || (p.mode.jsx && reComponentHint.MatchString(d.head)) {
			return models.SymbolComponent
		}
		return models.SymbolFunction
	case p.mode.jsx && (reWrapped.MatchString(value) || reComponentHint.MatchString(d.head)):
		return models.SymbolComponent
	case d.keyword == "let" || d.keyword == "var", strings.HasPrefix(d.name, "$"):
		return models.SymbolVariable
	case reLiteralValue.MatchString(value), reAsConst.MatchString(text):
		return models.SymbolConstant
	case casing.MatchesIdentifier(d.name, casing.ScreamingSnake):
		return models.SymbolConstant
	default:
		return models.SymbolVariable
	}
}

func (p *parser) collectExportStatements() {
	for _, m := range reExportStar.FindAllStringSubmatchIndex(p.code, -1) {
		ns := group(reExportStar, p.code, m, "ns")
		re := models.ReExport{
			Statement: p.statement(m[0], m[1]-1),
			Source:    p.quoted(m[1] - 1),
			Wildcard:  true,
		}
		if ns != "" {
			re.Names = []string{ns}
		}
		p.out.ReExports = append(p.out.ReExports, re)
	}

	for _, m := range reExportBraces.FindAllStringSubmatchIndex(p.code, -1) {
		list := group(reExportBraces, p.code, m, "names")
		names := parseNameList(list)
		if from := group(reExportBraces, p.code, m, "from"); from != "" {
			re := models.ReExport{
				Statement: p.statement(m[0], m[1]-1),
				Source:    p.quoted(m[1] - 1),
			}
			for _, n := range names {
				re.Names = append(re.Names, n.exported)
			}
			p.out.ReExports = append(p.out.ReExports, re)
			continue
		}
		p.exportLocalList(m[0], m[1], names)
	}

	for _, m := range reDefaultIdent.FindAllStringSubmatchIndex(p.code, -1) {
		name := group(reDefaultIdent, p.code, m, "name")
		if reservedDefault[name] {
			continue
		}
		p.markDefault(name, false)
	}
	for _, m := range reDefaultWrap.FindAllStringSubmatchIndex(p.code, -1) {
		name := group(reDefaultWrap, p.code, m, "name")
		p.markDefault(name, p.mode.jsx)
	}
	if reDefaultObject.MatchString(p.code) {
		p.out.DefaultAggregate = true
	}
	if reAnyExport.MatchString(p.code) {
		p.out.SawExport = true
	}
}

// exportLocalList handles `export { a, b as c }` without a module source.
func (p *parser) exportLocalList(start, end int, names []exportName) {
	for _, n := range names {
		if n.exported == "default" {
			p.markDefault(n.local, false)
			continue
		}
		if d, ok := p.byName[n.local]; ok {
			p.symbols = append(p.symbols, positioned{pos: start, symbol: models.ExportedSymbol{
				Name:    n.exported,
				Kind:    d.symbol,
				Members: d.members,
			}})
			continue
		}
		// Not declared here: an imported binding passed through.
		imp := p.imports[n.local]
		p.out.ReExports = append(p.out.ReExports, models.ReExport{
			Statement: strings.TrimSpace(p.src[start:end]),
			Source:    imp.source,
			Names:     []string{n.exported},
			Wildcard:  imp.namespace,
		})
	}
}

func (p *parser) markDefault(name string, component bool) {
	d, ok := p.byName[name]
	if !ok {
		return
	}
	d.exported = true
	d.isDefault = true
	if component || (p.mode.jsx && p.mode.componentFile && d.symbol == models.SymbolFunction) {
		d.symbol = models.SymbolComponent
	}
}

func (p *parser) finish() {
	for _, d := range p.decls {
		if !d.exported {
			continue
		}
		p.symbols = append(p.symbols, positioned{pos: d.start, symbol: models.ExportedSymbol{
			Name:    d.name,
			Kind:    d.symbol,
			Members: d.members,
			Default: d.isDefault,
		}})
	}
	sort.SliceStable(p.symbols, func(i, j int) bool { return p.symbols[i].pos < p.symbols[j].pos })

	seen := make(map[string]bool)
	for _, ps := range p.symbols {
		key := ps.symbol.Name + "\x00" + string(ps.symbol.Kind)
		if seen[key] {
			// overload signatures
			continue
		}
		seen[key] = true
		p.out.Symbols = append(p.out.Symbols, ps.symbol)
		p.out.Declarations = append(p.out.Declarations, ps.symbol.Name)
	}
	if len(p.out.Symbols) > 0 || len(p.out.ReExports) > 0 || p.out.DefaultAggregate {
		p.out.SawExport = true
	}
}

// quoted returns the original text of the string literal whose opening
// quote is at index open.
func (p *parser) quoted(open int) string {
	if open < 0 || open >= len(p.code) {
		return ""
	}
	q := p.code[open]
	end := strings.IndexByte(p.code[open+1:], q)
	if end < 0 {
		return ""
	}
	return p.src[open+1 : open+1+end]
}

// statement returns the original text from start through the string
// literal opening at open.
func (p *parser) statement(start, open int) string {
	q := p.code[open]
	end := strings.IndexByte(p.code[open+1:], q)
	if end < 0 {
		return strings.TrimSpace(p.src[start:])
	}
	return strings.TrimSpace(p.src[start : open+end+2])
}

// enumMembers returns the member names of the enum body opening at brace.
func (p *parser) enumMembers(brace int) []string {
	depth := 0
	closeAt := -1
	for i := brace; i < len(p.code); i++ {
		switch p.code[i] {
		case '{', '(', '[':
			depth++
		case '}', ')', ']':
			depth--
		}
		if depth == 0 {
			closeAt = i
			break
		}
	}
	if closeAt < 0 {
		return nil
	}

	var members []string
	partStart := brace + 1
	depth = 0
	for i := brace + 1; i <= closeAt; i++ {
		c := p.code[i]
		switch {
		case c == '{' || c == '(' || c == '[':
			depth++
		case (c == '}' || c == ')' || c == ']') && i < closeAt:
			depth--
		case (c == ',' && depth == 0) || i == closeAt:
			if name := memberName(p.plain[partStart:i]); name != "" {
				members = append(members, name)
			}
			partStart = i + 1
		}
	}
	return members
}

func memberName(part string) string {
	name, _, _ := strings.Cut(part, "=")
	name = strings.TrimSpace(name)
	name = strings.Trim(name, `'"[]`)
	return strings.TrimSpace(name)
}

var reIdent = regexp.MustCompile(`^` + ident + `$`)

// bindingNames returns the names bound by the inside of an object pattern
// (object true) or an array pattern, including nested patterns.
func bindingNames(pattern string, object bool) []string {
	var names []string
	for _, part := range splitTopLevel(pattern) {
		part = strings.TrimSpace(part)
		part = strings.TrimSpace(strings.TrimPrefix(part, "..."))

		colon, eq := topLevelIndex(part, ':'), topLevelIndex(part, '=')
		if object && colon >= 0 && (eq < 0 || colon < eq) {
			part = strings.TrimSpace(part[colon+1:])
			eq = topLevelIndex(part, '=')
		}
		if eq >= 0 {
			part = strings.TrimSpace(part[:eq])
		}

		switch {
		case part == "":
		case part[0] == '{' && strings.HasSuffix(part, "}"):
			names = append(names, bindingNames(part[1:len(part)-1], true)...)
		case part[0] == '[' && strings.HasSuffix(part, "]"):
			names = append(names, bindingNames(part[1:len(part)-1], false)...)
		case reIdent.MatchString(part):
			names = append(names, part)
		}
	}
	return names
}

// splitTopLevel splits s on commas outside brackets.
func splitTopLevel(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{', '(', '[':
			depth++
		case '}', ')', ']':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// topLevelIndex returns the index of the first c outside brackets, or -1.
// An '=' that starts "=>" or "==" is skipped.
func topLevelIndex(s string, c byte) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{', '(', '[':
			depth++
		case '}', ')', ']':
			depth--
		case c:
			if depth != 0 {
				continue
			}
			if c == '=' && i+1 < len(s) && (s[i+1] == '>' || s[i+1] == '=') {
				i++
				continue
			}
			return i
		}
	}
	return -1
}

type exportName struct {
	local    string
	exported string
}

// parseNameList parses the inside of `{ a, type B, c as d }`.
func parseNameList(list string) []exportName {
	var names []exportName
	for item := range strings.SplitSeq(list, ",") {
		fields := strings.Fields(item)
		if len(fields) > 0 && fields[0] == "type" && len(fields) != 1 && fields[1] != "as" {
			fields = fields[1:]
		}
		switch {
		case len(fields) == 1:
			names = append(names, exportName{local: fields[0], exported: fields[0]})
		case len(fields) == 3 && fields[1] == "as":
			names = append(names, exportName{local: fields[0], exported: fields[2]})
		}
	}
	return names
}
