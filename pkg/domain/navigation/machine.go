package navigation

import (
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/radar/pkg/domain/spec"
	"github.com/felixgeelhaar/statekit"
)

// View constants double as statekit state IDs.
const (
	ListView   = "list"
	DetailView = "detail"
	QuitView   = "quit"
)

const (
	eventEnter = "enter"
	eventExit  = "exit"
	eventQuit  = "quit"
)

// viewContext carries the selection check used by the enter guard. It holds
// a func rather than data because statekit copies the context by value.
type viewContext struct {
	HasSelection func() bool
}

// Navigator owns the dashboard's UI state: which view is shown, the list
// selection, the detail tab and the scroll offset. View changes go through
// a statekit interpreter; everything else is plain data next to it.
type Navigator struct {
	interpreter *statekit.Interpreter[viewContext]
	logger      *slog.Logger

	count       int
	selected    int // -1 when nothing is selected
	detailIndex int
	tab         spec.DocumentKind
	scroll      int
}

// NewNavigator creates a navigator over a collection of count specs.
func NewNavigator(count int, logger *slog.Logger) (*Navigator, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if count < 0 {
		count = 0
	}

	n := &Navigator{
		logger:   logger,
		count:    count,
		selected: -1,
		tab:      spec.Requirements,
	}
	if count > 0 {
		n.selected = 0
	}

	builder := statekit.NewMachine[viewContext]("navigation").
		WithInitial(statekit.StateID(ListView)).
		WithContext(viewContext{
			HasSelection: func() bool { return n.selected >= 0 },
		}).
		WithGuard("hasSelection", func(ctx viewContext, e statekit.Event) bool {
			return ctx.HasSelection()
		})

	builder.State(ListView).
		On(eventEnter).Target(DetailView).Guard("hasSelection").
		On(eventQuit).Target(QuitView).
		Done()

	builder.State(DetailView).
		On(eventExit).Target(ListView).
		On(eventQuit).Target(QuitView).
		Done()

	builder.State(QuitView).Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build navigation machine: %w", err)
	}

	n.interpreter = statekit.NewInterpreter(machine)
	n.interpreter.Start()
	return n, nil
}

// View returns the current view.
func (n *Navigator) View() string {
	return string(n.interpreter.State().Value)
}

// Done reports whether the session has quit.
func (n *Navigator) Done() bool { return n.View() == QuitView }

// Selected returns the list selection, if any.
func (n *Navigator) Selected() (int, bool) {
	return n.selected, n.selected >= 0
}

// DetailIndex returns the spec index captured when the detail view was entered.
func (n *Navigator) DetailIndex() int { return n.detailIndex }

// ActiveTab returns the document shown in the detail view.
func (n *Navigator) ActiveTab() spec.DocumentKind { return n.tab }

// Scroll returns the detail view scroll offset.
func (n *Navigator) Scroll() int { return n.scroll }

// Dispatch applies an intent. It never fails: intents that do not apply to
// the current view are ignored. It reports whether any state changed.
func (n *Navigator) Dispatch(intent Intent) bool {
	before := n.snapshot()

	switch n.View() {
	case ListView:
		n.dispatchList(intent)
	case DetailView:
		n.dispatchDetail(intent)
	}

	changed := n.snapshot() != before
	if changed {
		n.logger.Debug("navigation", "intent", intent.Kind.String(), "view", n.View(),
			"selected", n.selected, "tab", n.tab.String(), "scroll", n.scroll)
	}
	return changed
}

func (n *Navigator) dispatchList(intent Intent) {
	switch intent.Kind {
	case NextItem:
		if n.count > 0 {
			n.selected = (n.selected + 1) % n.count
		}
	case PreviousItem:
		if n.count > 0 {
			n.selected = (n.selected - 1 + n.count) % n.count
		}
	case EnterDetail:
		if n.send(eventEnter) {
			n.detailIndex = n.selected
			n.tab = spec.Requirements
			n.scroll = 0
		}
	case Quit:
		n.send(eventQuit)
	}
}

func (n *Navigator) dispatchDetail(intent Intent) {
	switch intent.Kind {
	case ExitDetail:
		if n.send(eventExit) {
			n.scroll = 0
		}
	case NextTab:
		n.tab = n.tab.Next()
		n.scroll = 0
	case ScrollDown:
		bound := intent.Bound
		if bound < 0 {
			bound = 0
		}
		n.scroll++
		if n.scroll > bound {
			n.scroll = bound
		}
	case ScrollUp:
		if n.scroll > 0 {
			n.scroll--
		}
	case Quit:
		n.send(eventQuit)
	}
}

// send feeds an event to the interpreter and reports whether the view changed.
func (n *Navigator) send(event string) bool {
	before := n.View()
	n.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	return n.View() != before
}

type snapshot struct {
	view        string
	selected    int
	detailIndex int
	tab         spec.DocumentKind
	scroll      int
}

func (n *Navigator) snapshot() snapshot {
	return snapshot{n.View(), n.selected, n.detailIndex, n.tab, n.scroll}
}
