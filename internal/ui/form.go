package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Sentinel errors for interactive prompts.
var (
	// ErrCancelled indicates the user aborted a form.
	ErrCancelled = errors.New("ui: cancelled by user")

	// ErrHeadless indicates an interactive form was requested without a terminal.
	ErrHeadless = errors.New("ui: interactive input requires a terminal")
)

// Choice is a selectable option of a form field.
type Choice struct {
	Label string
	Value string
}

// InitAnswers holds the values collected by the init form.
type InitAnswers struct {
	AllowPascalFilenames bool
	MaxExportsPerFile    int
	Disabled             []string
	Format               string
}

// InitForm asks for the settings written by `namelint init`.
type InitForm struct {
	theme    *Theme
	headless *HeadlessManager
	rules    []Choice
	formats  []Choice
}

// NewInitForm creates an InitForm offering rules for the disabled list and
// formats for the output format.
func NewInitForm(theme *Theme, hm *HeadlessManager, rules, formats []Choice) *InitForm {
	return &InitForm{theme: theme, headless: hm, rules: rules, formats: formats}
}

// Run asks each question in turn, starting from defaults. In headless mode
// it returns ErrHeadless; callers fall back to defaults themselves.
func (f *InitForm) Run(defaults InitAnswers) (*InitAnswers, error) {
	if f.headless.IsHeadless() {
		return nil, ErrHeadless
	}

	answers := defaults
	maxExports := strconv.Itoa(defaults.MaxExportsPerFile)

	// One form per question avoids the huh v0.8 viewport scroll bug with
	// several groups in one form.
	fields := []huh.Field{
		huh.NewConfirm().
			Title("Allow PascalCase file names for components and classes?").
			Description("OrderCard.tsx is accepted next to order-card.tsx.").
			Value(&answers.AllowPascalFilenames),
		huh.NewInput().
			Title("Maximum components or classes exported per file").
			Value(&maxExports).
			Validate(validatePositiveInt),
		huh.NewMultiSelect[string]().
			Title("Rules to disable").
			Description("Leave empty to enforce every rule.").
			Options(options(f.rules, defaults.Disabled)...).
			Value(&answers.Disabled),
		huh.NewSelect[string]().
			Title("Report format").
			Options(options(f.formats, nil)...).
			Value(&answers.Format),
	}

	theme := f.formTheme()
	for _, field := range fields {
		form := huh.NewForm(huh.NewGroup(field)).
			WithTheme(theme).
			WithAccessible(false)
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("init form: %w", err)
		}
	}

	answers.MaxExportsPerFile, _ = strconv.Atoi(strings.TrimSpace(maxExports))
	return &answers, nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return errors.New("enter a whole number of at least 1")
	}
	return nil
}

func options(choices []Choice, selected []string) []huh.Option[string] {
	out := make([]huh.Option[string], len(choices))
	for i, c := range choices {
		opt := huh.NewOption(c.Label, c.Value)
		for _, s := range selected {
			if s == c.Value {
				opt = opt.Selected(true)
			}
		}
		out[i] = opt
	}
	return out
}

// formTheme maps the brand colours onto a huh theme.
func (f *InitForm) formTheme() *huh.Theme {
	t := huh.ThemeBase()
	if f.theme.NoColor {
		return t
	}

	primary := lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: f.theme.Colors.Primary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: f.theme.Colors.Success}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: f.theme.Colors.Error}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: f.theme.Colors.Muted}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ColorBorder}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(primary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")
	t.Focused.FocusedButton = t.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(primary)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	return t
}
