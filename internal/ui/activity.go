package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// progressStep is how many parsed files pass between two redraws.
const progressStep = 25

// Activity shows that a scan is running and how many files it has parsed.
type Activity interface {
	// Advance records that done of total files are parsed. Safe for
	// concurrent use.
	Advance(done, total int)
	Stop()
}

// NewActivity starts an indicator labelled label on w. It animates only
// when w is a terminal and the theme allows colour; otherwise nothing is
// written, so redirected output stays clean.
func NewActivity(theme *Theme, w io.Writer, label string) Activity {
	if theme.NoColor || !IsTerminal(w) {
		return &silentActivity{label: label}
	}
	p := tea.NewProgram(newActivityModel(theme, label),
		tea.WithOutput(w),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)
	return runActivity(p)
}

// countsMsg carries parse progress into the model.
type countsMsg struct{ done, total int }

type stopMsg struct{}

type activityModel struct {
	spin  spinner.Model
	label string
	done  int
	total int
	quit  bool
}

func newActivityModel(theme *Theme, label string) activityModel {
	s := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	if !theme.NoColor {
		s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))
	}
	return activityModel{spin: s, label: label}
}

func (m activityModel) Init() tea.Cmd {
	return m.spin.Tick
}

func (m activityModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case countsMsg:
		m.done, m.total = msg.done, msg.total
		return m, nil
	case stopMsg:
		m.quit = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m activityModel) View() string {
	if m.quit {
		return ""
	}
	return fmt.Sprintf("%s %s\n", m.spin.View(), describe(m.label, m.done, m.total))
}

// describe renders "Scanning" before any file is parsed and
// "Scanning 40/120 files" afterwards.
func describe(label string, done, total int) string {
	if total == 0 {
		return label
	}
	return fmt.Sprintf("%s %d/%d files", label, done, total)
}

// redraw reports whether a progress update is worth sending.
func redraw(done, total int) bool {
	return done%progressStep == 0 || done == total
}

// animatedActivity drives a bubbletea program in the background.
type animatedActivity struct {
	program *tea.Program
	exited  chan struct{}
	once    sync.Once
}

func runActivity(p *tea.Program) *animatedActivity {
	a := &animatedActivity{program: p, exited: make(chan struct{})}
	go func() {
		defer close(a.exited)
		_, _ = p.Run()
	}()
	return a
}

func (a *animatedActivity) Advance(done, total int) {
	if redraw(done, total) {
		a.program.Send(countsMsg{done: done, total: total})
	}
}

// Stop clears the indicator and waits until the terminal is restored.
func (a *animatedActivity) Stop() {
	a.once.Do(func() {
		a.program.Send(stopMsg{})
		<-a.exited
	})
}

// silentActivity keeps the counts without drawing anything.
type silentActivity struct {
	mu      sync.Mutex
	label   string
	done    int
	total   int
	stopped bool
}

func (s *silentActivity) Advance(done, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.done, s.total = done, total
}

func (s *silentActivity) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
}

func (s *silentActivity) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return describe(s.label, s.done, s.total)
}
