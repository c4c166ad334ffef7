package models

// RuleID identifies a convention rule. Values are stable and appear in
// machine-readable reports and in the rules.disabled configuration list.
type RuleID string

const (
	RuleFileNameCase      RuleID = "file-name-case"
	RuleComponentNameCase RuleID = "component-name-case"
	RuleTypeNameCase      RuleID = "type-name-case"
	RuleFunctionNameCase  RuleID = "function-name-case"
	RuleEnumCase          RuleID = "enum-case"
	RuleConstantNameCase  RuleID = "constant-name-case"
	RuleExportsPerFile    RuleID = "exports-per-file"
	RuleBarrelReExport    RuleID = "barrel-reexport"
	RuleUnparseable       RuleID = "unparseable"
	RuleError             RuleID = "rule-error"
)

// Violation is a single broken convention found in a file.
type Violation struct {
	FilePath   string `json:"filePath"`
	Rule       RuleID `json:"rule"`
	Message    string `json:"message"`
	Symbol     string `json:"symbol,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}
