// Package tui provides the interactive Bubble Tea dashboard for outlay.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"outlay/internal/config"
	"outlay/internal/engine"
	"outlay/internal/model"
	"outlay/internal/store"
	"outlay/internal/tui/theme"
)

var tabNames = []string{"Overview", "Breakdown", "Trends", "History"}

// snapshotMsg is sent when a fresh record snapshot has been fetched.
type snapshotMsg struct {
	expenses []model.Expense
	err      error
}

// expenseSavedMsg is sent after the add form's insert completes.
type expenseSavedMsg struct {
	id  int64
	err error
}

// App is the root Bubble Tea model.
type App struct {
	src store.Source
	cfg config.Config

	// Snapshot and the aggregates computed from it
	expenses  []model.Expense
	breakdown model.BreakdownSummary
	periods   engine.PeriodTotals
	skips     engine.SkipReport
	loaded    bool
	loadErr   error

	// UI state
	width     int
	height    int
	activeTab int
	status    string
	spinner   spinner.Model

	// Add-expense form, non-nil while open
	addForm *huh.Form
	addVals addValues
}

// New builds the dashboard over the given record source.
func New(src store.Source, cfg config.Config) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	return App{src: src, cfg: cfg, spinner: sp}
}

// Init kicks off the initial snapshot fetch.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.fetchSnapshot, a.spinner.Tick)
}

func (a App) fetchSnapshot() tea.Msg {
	expenses, err := a.src.FetchAll(context.Background())
	return snapshotMsg{expenses: expenses, err: err}
}

func (a App) saveExpense(e model.Expense) tea.Cmd {
	return func() tea.Msg {
		id, err := a.src.Insert(context.Background(), e)
		return expenseSavedMsg{id: id, err: err}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case snapshotMsg:
		a.loaded = true
		a.loadErr = msg.err
		if msg.err == nil {
			a.expenses = msg.expenses
			a.recompute()
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case expenseSavedMsg:
		if msg.err != nil {
			a.status = fmt.Sprintf("save failed: %v", msg.err)
			return a, nil
		}
		a.status = fmt.Sprintf("saved expense #%d", msg.id)
		return a, a.fetchSnapshot
	}

	// Route everything else into the add form while it is open.
	if a.addForm != nil {
		return a.updateAddForm(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "tab", "l", "right":
			a.activeTab = (a.activeTab + 1) % len(tabNames)
		case "shift+tab", "h", "left":
			a.activeTab = (a.activeTab + len(tabNames) - 1) % len(tabNames)
		case "a":
			a.openAddForm()
			return a, a.addForm.Init()
		case "r":
			a.status = ""
			return a, a.fetchSnapshot
		}
	}

	return a, nil
}

// recompute refreshes the aggregates after a snapshot change. Each
// aggregation is a pure function of the snapshot, so this is the only
// place derived state is produced.
func (a *App) recompute() {
	a.breakdown, a.skips = engine.Breakdown(a.expenses)
	periods, rep := engine.SumByPeriod(a.expenses)
	a.periods = periods
	a.skips.BadTimestamps += rep.BadTimestamps
}

func (a App) updateAddForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.addForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.addForm = f
	}

	switch a.addForm.State {
	case huh.StateCompleted:
		e, err := a.addVals.expense(time.Now())
		a.addForm = nil
		if err != nil {
			a.status = fmt.Sprintf("invalid expense: %v", err)
			return a, nil
		}
		return a, a.saveExpense(e)
	case huh.StateAborted:
		a.addForm = nil
		a.status = "add cancelled"
		return a, nil
	}

	return a, cmd
}
