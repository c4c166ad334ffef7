package convention

import (
	"reflect"
	"strings"
	"testing"

	"github.com/modu-ai/namelint/pkg/models"
)

// countRule returns the number of violations carrying the given rule id.
func countRule(vs []models.Violation, id models.RuleID) int {
	n := 0
	for _, v := range vs {
		if v.Rule == id {
			n++
		}
	}
	return n
}

func TestFileNameKebabAccepted(t *testing.T) {
	t.Parallel()

	names := []string{
		"order-card.ts",
		"order-card.tsx",
		"index.ts",
		"v2-api.ts",
		"a.tsx",
		"order-card-list-item.tsx",
	}

	for _, name := range names {
		files := []models.FileEntry{{Path: name, Kind: models.KindUtility}}
		got := Check(files, DefaultOptions())
		if n := countRule(got, models.RuleFileNameCase); n != 0 {
			t.Errorf("Check(%q) reported %d file-name-case violations, want 0: %+v", name, n, got)
		}
	}
}

func TestFileNameUppercaseOrUnderscore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kind models.FileKind
		opts Options
		want int
	}{
		{"OrderCard.tsx", models.KindComponent, DefaultOptions(), 1},
		{"order_card.ts", models.KindUtility, DefaultOptions(), 1},
		{"orderCard.ts", models.KindUtility, DefaultOptions(), 1},
		{"ORDER.ts", models.KindUtility, DefaultOptions(), 1},
		{"Order_Card.tsx", models.KindComponent, Options{AllowPascalFilenames: true}, 1},
		{"OrderCard.tsx", models.KindComponent, Options{AllowPascalFilenames: true}, 0},
		{"OrderService.ts", models.KindClass, Options{AllowPascalFilenames: true}, 0},
		// The override only applies to component and class files.
		{"OrderUtils.ts", models.KindUtility, Options{AllowPascalFilenames: true}, 1},
		{"UseOrder.ts", models.KindHook, Options{AllowPascalFilenames: true}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+string(tt.kind), func(t *testing.T) {
			t.Parallel()
			files := []models.FileEntry{{Path: tt.name, Kind: tt.kind}}
			got := countRule(Check(files, tt.opts), models.RuleFileNameCase)
			if got != tt.want {
				t.Errorf("file-name-case violations = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFileNameSuffixes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want int
	}{
		{"order-card.test.tsx", 0},
		{"order-card.module.css", 0},
		{"create-order.dto.ts", 0},
		{"order-card.Test.tsx", 1},
		{"OrderCard.stories.tsx", 1},
	}

	for _, tt := range tests {
		files := []models.FileEntry{{Path: tt.path, Kind: models.KindTest}}
		got := countRule(Check(files, DefaultOptions()), models.RuleFileNameCase)
		if got != tt.want {
			t.Errorf("%s: file-name-case violations = %d, want %d", tt.path, got, tt.want)
		}
	}
}

func TestFileNameSuggestion(t *testing.T) {
	t.Parallel()

	files := []models.FileEntry{{Path: "src/OrderCard.test.tsx", Kind: models.KindTest}}
	got := Check(files, DefaultOptions())
	if len(got) != 1 {
		t.Fatalf("expected 1 violation, got %d: %+v", len(got), got)
	}
	if got[0].Suggestion != "order-card.test.tsx" {
		t.Errorf("Suggestion = %q, want %q", got[0].Suggestion, "order-card.test.tsx")
	}
}

func TestFolderReportedOncePerRun(t *testing.T) {
	t.Parallel()

	files := []models.FileEntry{
		{Path: "src/OrderCards/order-card.tsx", Kind: models.KindComponent, Symbols: []models.ExportedSymbol{{Name: "OrderCard", Kind: models.SymbolComponent}}},
		{Path: "src/OrderCards/order-list.tsx", Kind: models.KindComponent, Symbols: []models.ExportedSymbol{{Name: "OrderList", Kind: models.SymbolComponent}}},
		{Path: "src/.storybook/main.ts", Kind: models.KindUtility, Symbols: []models.ExportedSymbol{{Name: "config", Kind: models.SymbolVariable}}},
	}

	got := Check(files, DefaultOptions())
	if len(got) != 1 {
		t.Fatalf("expected 1 violation, got %d: %+v", len(got), got)
	}
	if got[0].FilePath != "src/OrderCards/order-card.tsx" {
		t.Errorf("folder violation attached to %q, want the first file", got[0].FilePath)
	}
	if !strings.Contains(got[0].Message, "src/OrderCards") {
		t.Errorf("message %q should name the folder", got[0].Message)
	}
}

func TestFolderReportedOncePerRoot(t *testing.T) {
	t.Parallel()

	files := []models.FileEntry{
		{Root: "web", Path: "Components/order-card.ts", Kind: models.KindUtility},
		{Root: "web", Path: "Components/order-list.ts", Kind: models.KindUtility},
		{Root: "admin", Path: "Components/user-card.ts", Kind: models.KindUtility},
	}

	got := Check(files, DefaultOptions())
	if n := countRule(got, models.RuleFileNameCase); n != 2 {
		t.Fatalf("expected one folder violation per root, got %d: %+v", n, got)
	}
	if got[0].FilePath != "web/Components/order-card.ts" || got[1].FilePath != "admin/Components/user-card.ts" {
		t.Errorf("violations attached to %q and %q", got[0].FilePath, got[1].FilePath)
	}
	for _, v := range got {
		if !strings.Contains(v.Message, `folder "Components"`) {
			t.Errorf("message %q should name the root-relative folder", v.Message)
		}
	}
}

func TestIdentifierMarkersIgnored(t *testing.T) {
	t.Parallel()

	files := []models.FileEntry{{
		Path: "src/store.ts",
		Kind: models.KindUtility,
		Symbols: []models.ExportedSymbol{
			{Name: "$store", Kind: models.SymbolVariable},
			{Name: "_internalHelper", Kind: models.SymbolFunction},
			{Name: "__DEV__", Kind: models.SymbolConstant},
			{Name: "$Format", Kind: models.SymbolFunction},
		},
	}}

	got := Check(files, DefaultOptions())
	if len(got) != 1 {
		t.Fatalf("expected only $Format to be reported, got %+v", got)
	}
	if got[0].Symbol != "$Format" || got[0].Suggestion != "$format" {
		t.Errorf("violation = %+v, want suggestion keeping the $ marker", got[0])
	}
}

func TestComponentAndHelperNames(t *testing.T) {
	t.Parallel()

	files := []models.FileEntry{{
		Path: "order-card.tsx",
		Kind: models.KindComponent,
		Symbols: []models.ExportedSymbol{
			{Name: "OrderCard", Kind: models.SymbolComponent},
			{Name: "orderCardHelper", Kind: models.SymbolFunction},
		},
	}}

	got := Check(files, DefaultOptions())
	if n := countRule(got, models.RuleComponentNameCase); n != 0 {
		t.Errorf("component-name-case violations = %d, want 0", n)
	}
	if n := countRule(got, models.RuleFunctionNameCase); n != 0 {
		t.Errorf("function-name-case violations = %d, want 0", n)
	}
	if len(got) != 0 {
		t.Errorf("expected no violations, got %+v", got)
	}
}

func TestSymbolCaseRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		symbol     models.ExportedSymbol
		rule       models.RuleID
		suggestion string
	}{
		{"camel component", models.ExportedSymbol{Name: "orderCard", Kind: models.SymbolComponent}, models.RuleComponentNameCase, "OrderCard"},
		{"snake class", models.ExportedSymbol{Name: "order_service", Kind: models.SymbolClass}, models.RuleComponentNameCase, "OrderService"},
		{"camel type", models.ExportedSymbol{Name: "orderProps", Kind: models.SymbolType}, models.RuleTypeNameCase, "OrderProps"},
		{"prefixed interface", models.ExportedSymbol{Name: "I_Order", Kind: models.SymbolInterface}, models.RuleTypeNameCase, "IOrder"},
		{"pascal function", models.ExportedSymbol{Name: "FormatPrice", Kind: models.SymbolFunction}, models.RuleFunctionNameCase, "formatPrice"},
		{"snake variable", models.ExportedSymbol{Name: "order_store", Kind: models.SymbolVariable}, models.RuleFunctionNameCase, "orderStore"},
		{"camel constant", models.ExportedSymbol{Name: "apiUrl", Kind: models.SymbolConstant}, models.RuleConstantNameCase, "API_URL"},
		{"camel enum", models.ExportedSymbol{Name: "orderStatus", Kind: models.SymbolEnum}, models.RuleEnumCase, "OrderStatus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			files := []models.FileEntry{{Path: "x.ts", Kind: models.KindUtility, Symbols: []models.ExportedSymbol{tt.symbol}}}
			got := Check(files, DefaultOptions())
			if len(got) != 1 {
				t.Fatalf("expected 1 violation, got %d: %+v", len(got), got)
			}
			if got[0].Rule != tt.rule {
				t.Errorf("Rule = %s, want %s", got[0].Rule, tt.rule)
			}
			if got[0].Suggestion != tt.suggestion {
				t.Errorf("Suggestion = %q, want %q", got[0].Suggestion, tt.suggestion)
			}
			if got[0].Symbol != tt.symbol.Name {
				t.Errorf("Symbol = %q, want %q", got[0].Symbol, tt.symbol.Name)
			}
		})
	}
}

func TestEnumMembers(t *testing.T) {
	t.Parallel()

	files := []models.FileEntry{{
		Path: "order-status.ts",
		Kind: models.KindUtility,
		Symbols: []models.ExportedSymbol{{
			Name:    "OrderStatus",
			Kind:    models.SymbolEnum,
			Members: []string{"PENDING", "inTransit", "DELIVERED", "Cancelled"},
		}},
	}}

	got := Check(files, DefaultOptions())
	if n := countRule(got, models.RuleEnumCase); n != 2 {
		t.Fatalf("enum-case violations = %d, want 2: %+v", n, got)
	}
	if got[0].Symbol != "inTransit" || got[0].Suggestion != "IN_TRANSIT" {
		t.Errorf("first violation = %+v, want inTransit -> IN_TRANSIT", got[0])
	}
	if !strings.HasPrefix(got[1].Message, "OrderStatus: ") {
		t.Errorf("member message %q should be prefixed with the enum name", got[1].Message)
	}
}

func TestExportsPerFile(t *testing.T) {
	t.Parallel()

	twoComponents := models.FileEntry{
		Path: "order-card.tsx",
		Kind: models.KindComponent,
		Symbols: []models.ExportedSymbol{
			{Name: "OrderCard", Kind: models.SymbolComponent},
			{Name: "OrderCardHeader", Kind: models.SymbolComponent},
			{Name: "formatOrder", Kind: models.SymbolFunction},
		},
	}
	twoClasses := models.FileEntry{
		Path: "order-service.ts",
		Kind: models.KindClass,
		Symbols: []models.ExportedSymbol{
			{Name: "OrderService", Kind: models.SymbolClass},
			{Name: "OrderRepository", Kind: models.SymbolClass},
		},
	}
	utilityWithComponents := models.FileEntry{
		Path:    "helpers.ts",
		Kind:    models.KindUtility,
		Symbols: twoComponents.Symbols,
	}

	tests := []struct {
		name string
		file models.FileEntry
		opts Options
		want int
	}{
		{"two components default", twoComponents, DefaultOptions(), 1},
		{"two components max 2", twoComponents, Options{MaxExportsPerFile: 2}, 0},
		{"zero max falls back to default", twoComponents, Options{MaxExportsPerFile: 0}, 1},
		{"two classes default", twoClasses, DefaultOptions(), 1},
		{"utility files are not limited", utilityWithComponents, DefaultOptions(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := countRule(Check([]models.FileEntry{tt.file}, tt.opts), models.RuleExportsPerFile)
			if got != tt.want {
				t.Errorf("exports-per-file violations = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBarrel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file models.FileEntry
		want int
	}{
		{
			name: "wildcard",
			file: models.FileEntry{Path: "index.ts", Kind: models.KindBarrel, ReExports: []models.ReExport{
				{Statement: "export * from './x'", Source: "./x", Wildcard: true},
			}},
			want: 1,
		},
		{
			name: "named",
			file: models.FileEntry{Path: "index.ts", Kind: models.KindBarrel, ReExports: []models.ReExport{
				{Statement: "export { X } from './x'", Source: "./x", Names: []string{"X"}},
			}},
			want: 0,
		},
		{
			name: "default aggregate",
			file: models.FileEntry{Path: "index.ts", Kind: models.KindBarrel, DefaultAggregate: true},
			want: 1,
		},
		{
			name: "local declaration",
			file: models.FileEntry{Path: "index.ts", Kind: models.KindBarrel, Declarations: []string{"helper"},
				Symbols: []models.ExportedSymbol{{Name: "helper", Kind: models.SymbolFunction}}},
			want: 1,
		},
		{
			name: "wildcard outside a barrel",
			file: models.FileEntry{Path: "api.ts", Kind: models.KindUtility, ReExports: []models.ReExport{
				{Statement: "export * from './x'", Source: "./x", Wildcard: true},
			}},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := countRule(Check([]models.FileEntry{tt.file}, DefaultOptions()), models.RuleBarrelReExport)
			if got != tt.want {
				t.Errorf("barrel-reexport violations = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUnparseableSkipsSymbolRules(t *testing.T) {
	t.Parallel()

	files := []models.FileEntry{{
		Path:       "Broken.ts",
		Kind:       models.KindUtility,
		ParseError: "no exports found",
		Symbols:    []models.ExportedSymbol{{Name: "bad_name", Kind: models.SymbolFunction}},
	}}

	got := Check(files, DefaultOptions())
	want := []models.RuleID{models.RuleFileNameCase, models.RuleUnparseable}
	if len(got) != len(want) {
		t.Fatalf("expected %d violations, got %d: %+v", len(want), len(got), got)
	}
	for i, id := range want {
		if got[i].Rule != id {
			t.Errorf("violation %d rule = %s, want %s", i, got[i].Rule, id)
		}
	}
}

func TestViolationOrderFileThenRule(t *testing.T) {
	t.Parallel()

	files := []models.FileEntry{
		{Path: "B_file.ts", Kind: models.KindUtility, Symbols: []models.ExportedSymbol{
			{Name: "apiUrl", Kind: models.SymbolConstant},
			{Name: "BadFn", Kind: models.SymbolFunction},
		}},
		{Path: "A_file.ts", Kind: models.KindUtility, Symbols: []models.ExportedSymbol{
			{Name: "okFn", Kind: models.SymbolFunction},
		}},
	}

	got := Check(files, DefaultOptions())
	want := []struct {
		path string
		rule models.RuleID
	}{
		{"B_file.ts", models.RuleFileNameCase},
		{"B_file.ts", models.RuleFunctionNameCase},
		{"B_file.ts", models.RuleConstantNameCase},
		{"A_file.ts", models.RuleFileNameCase},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d violations, got %d: %+v", len(want), len(got), got)
	}
	for i, w := range want {
		if got[i].FilePath != w.path || got[i].Rule != w.rule {
			t.Errorf("violation %d = (%s, %s), want (%s, %s)", i, got[i].FilePath, got[i].Rule, w.path, w.rule)
		}
	}
}

func TestCheckIdempotent(t *testing.T) {
	t.Parallel()

	files := []models.FileEntry{
		{Path: "src/Widgets/OrderCard.tsx", Kind: models.KindComponent, Symbols: []models.ExportedSymbol{
			{Name: "orderCard", Kind: models.SymbolComponent},
			{Name: "Other", Kind: models.SymbolComponent},
		}},
		{Path: "src/Widgets/index.ts", Kind: models.KindBarrel, ReExports: []models.ReExport{
			{Statement: "export * from './OrderCard'", Source: "./OrderCard", Wildcard: true},
		}},
	}

	c := NewChecker(DefaultOptions(), nil)
	first := c.Check(files)
	second := c.Check(files)
	if len(first) == 0 {
		t.Fatal("expected violations")
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Check is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestDisabledRules(t *testing.T) {
	t.Parallel()

	files := []models.FileEntry{{Path: "Bad_Name.ts", Kind: models.KindUtility, Symbols: []models.ExportedSymbol{
		{Name: "apiUrl", Kind: models.SymbolConstant},
	}}}
	opts := DefaultOptions()
	opts.Disabled = []models.RuleID{models.RuleFileNameCase}

	got := Check(files, opts)
	if len(got) != 1 || got[0].Rule != models.RuleConstantNameCase {
		t.Errorf("expected only constant-name-case, got %+v", got)
	}
}

func TestPanickingRuleDoesNotStopOthers(t *testing.T) {
	t.Parallel()

	rules := []Rule{
		{ID: "boom", check: func(_ *run, f *models.FileEntry) []models.Violation {
			if f.Path == "a.ts" {
				panic("unexpected shape")
			}
			return nil
		}},
		{ID: models.RuleUnparseable, check: checkUnparseable},
	}
	files := []models.FileEntry{
		{Path: "a.ts", Kind: models.KindUtility, ParseError: "bad"},
		{Path: "b.ts", Kind: models.KindUtility, ParseError: "bad"},
	}

	got := newCheckerWithRules(DefaultOptions(), nil, rules).Check(files)
	want := []models.RuleID{models.RuleError, models.RuleUnparseable, models.RuleUnparseable}
	if len(got) != len(want) {
		t.Fatalf("expected %d violations, got %d: %+v", len(want), len(got), got)
	}
	for i, id := range want {
		if got[i].Rule != id {
			t.Errorf("violation %d rule = %s, want %s", i, got[i].Rule, id)
		}
	}
	if !strings.Contains(got[0].Message, "unexpected shape") {
		t.Errorf("rule-error message %q should carry the panic value", got[0].Message)
	}
}

func TestRulesCatalogue(t *testing.T) {
	t.Parallel()

	infos := Rules()
	if len(infos) != 9 {
		t.Fatalf("Rules() returned %d rules, want 9", len(infos))
	}
	if infos[0].ID != models.RuleFileNameCase {
		t.Errorf("first rule = %s, want %s", infos[0].ID, models.RuleFileNameCase)
	}
	for _, info := range infos {
		if info.Description == "" {
			t.Errorf("rule %s has no description", info.ID)
		}
		if !IsKnownRule(info.ID) {
			t.Errorf("IsKnownRule(%s) = false", info.ID)
		}
	}
	if IsKnownRule("no-such-rule") {
		t.Error("IsKnownRule(no-such-rule) = true")
	}
}

func TestRootSegmentsNotChecked(t *testing.T) {
	t.Parallel()

	files := []models.FileEntry{{
		Root: "/home/Dev/My_App",
		Path: "src/Widgets/order-card.tsx",
		Kind: models.KindComponent,
	}}
	got := Check(files, DefaultOptions())

	if len(got) != 1 {
		t.Fatalf("Check() = %+v, want only the Widgets folder violation", got)
	}
	if got[0].FilePath != "/home/Dev/My_App/src/Widgets/order-card.tsx" {
		t.Errorf("FilePath = %q, want root joined to path", got[0].FilePath)
	}
	if !strings.Contains(got[0].Message, "Widgets") {
		t.Errorf("Message = %q, want it to name the folder", got[0].Message)
	}
}
