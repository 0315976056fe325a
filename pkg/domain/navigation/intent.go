package navigation

// IntentKind is an abstract user action.
type IntentKind int

const (
	NextItem IntentKind = iota
	PreviousItem
	EnterDetail
	ExitDetail
	NextTab
	ScrollDown
	ScrollUp
	Quit
)

var intentNames = map[IntentKind]string{
	NextItem:     "next_item",
	PreviousItem: "previous_item",
	EnterDetail:  "enter_detail",
	ExitDetail:   "exit_detail",
	NextTab:      "next_tab",
	ScrollDown:   "scroll_down",
	ScrollUp:     "scroll_up",
	Quit:         "quit",
}

func (k IntentKind) String() string {
	if name, ok := intentNames[k]; ok {
		return name
	}
	return "unknown"
}

// Intent is dispatched to a Navigator. Bound is only read by ScrollDown and
// is the largest scroll offset the current document allows.
type Intent struct {
	Kind  IntentKind
	Bound int
}

// Do returns an intent with no bound.
func Do(kind IntentKind) Intent {
	return Intent{Kind: kind}
}

// ScrollDownTo returns a ScrollDown intent clamped to bound.
func ScrollDownTo(bound int) Intent {
	return Intent{Kind: ScrollDown, Bound: bound}
}
