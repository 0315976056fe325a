// Package tui renders the spec dashboard with bubbletea and translates key
// presses into navigation intents.
package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/felixgeelhaar/radar/pkg/domain/navigation"
	"github.com/felixgeelhaar/radar/pkg/domain/spec"
)

// Rows taken by everything except the scrollable content: frame padding,
// header, name/tab line, box border, box title and footer.
const detailChrome = 8

// Rows taken around the spec list in the list view: frame padding, header,
// the progress box (border, title, bar, label), the list box border and
// title, and footer.
const listChrome = 12

// DocumentLoader reads a spec document. Implementations must not cache.
type DocumentLoader interface {
	Document(s spec.Spec, kind spec.DocumentKind) spec.Document
}

// Options configures the dashboard model.
type Options struct {
	Version   string
	Highlight bool
	Theme     string
	Logger    *slog.Logger
}

// Model is the bubbletea model for the dashboard.
type Model struct {
	specs  spec.Collection
	loader DocumentLoader
	nav    *navigation.Navigator
	opts   Options
	logger *slog.Logger

	keys     keyMap
	help     help.Model
	progress progress.Model

	width  int
	height int
}

// NewModel builds a dashboard over an already discovered collection.
func NewModel(specs spec.Collection, loader DocumentLoader, opts Options) (Model, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	nav, err := navigation.NewNavigator(specs.Len(), logger)
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.ShortSeparator = "  "

	bar := progress.New(progress.WithSolidFill(string(colorSecondary)), progress.WithoutPercentage())

	return Model{
		specs:    specs,
		loader:   loader,
		nav:      nav,
		opts:     opts,
		logger:   logger,
		keys:     defaultKeyMap(),
		help:     h,
		progress: bar,
	}, nil
}

// Navigator exposes the navigation state.
func (m Model) Navigator() *navigation.Navigator { return m.nav }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.innerWidth()
		m.progress.Width = max(m.innerWidth()-4, 0)
		return m, nil

	case tea.KeyMsg:
		intent, ok := m.intentFor(msg)
		if !ok {
			return m, nil
		}
		m.nav.Dispatch(intent)
		if m.nav.Done() {
			return m, tea.Quit
		}
	}
	return m, nil
}

// intentFor translates a key press for the current view.
func (m Model) intentFor(msg tea.KeyMsg) (navigation.Intent, bool) {
	if key.Matches(msg, m.keys.Quit) {
		return navigation.Do(navigation.Quit), true
	}

	switch m.nav.View() {
	case navigation.ListView:
		switch {
		case key.Matches(msg, m.keys.Down):
			return navigation.Do(navigation.NextItem), true
		case key.Matches(msg, m.keys.Up):
			return navigation.Do(navigation.PreviousItem), true
		case key.Matches(msg, m.keys.Enter):
			return navigation.Do(navigation.EnterDetail), true
		}
	case navigation.DetailView:
		switch {
		case key.Matches(msg, m.keys.Down):
			return navigation.ScrollDownTo(m.MaxScroll()), true
		case key.Matches(msg, m.keys.Up):
			return navigation.Do(navigation.ScrollUp), true
		case key.Matches(msg, m.keys.Back):
			return navigation.Do(navigation.ExitDetail), true
		case key.Matches(msg, m.keys.Tab):
			return navigation.Do(navigation.NextTab), true
		}
	}
	return navigation.Intent{}, false
}

// MaxScroll returns the largest useful scroll offset for the document shown
// in the detail view at the current terminal size. It is zero outside the
// detail view.
func (m Model) MaxScroll() int {
	if m.nav.View() != navigation.DetailView {
		return 0
	}
	doc, ok := m.activeDocument()
	if !ok || !doc.Found() {
		return 0
	}
	return max(len(doc.Lines())-m.contentHeight(), 0)
}

func (m Model) activeDocument() (spec.Document, bool) {
	s, ok := m.specs.At(m.nav.DetailIndex())
	if !ok {
		return spec.Document{}, false
	}
	return m.loader.Document(s, m.nav.ActiveTab()), true
}

func (m Model) innerWidth() int {
	return max(m.width-frameStyle.GetHorizontalPadding(), 0)
}

func (m Model) contentHeight() int {
	return max(m.height-detailChrome, 0)
}

func (m Model) listRows() int {
	return max(m.height-listChrome, 1)
}
