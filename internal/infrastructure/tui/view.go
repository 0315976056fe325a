package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/felixgeelhaar/radar/internal/infrastructure/markdown"
	"github.com/felixgeelhaar/radar/pkg/domain/navigation"
	"github.com/felixgeelhaar/radar/pkg/domain/spec"
)

const nameColumnWidth = 20

func (m Model) View() string {
	if m.width == 0 || m.nav.Done() {
		return ""
	}

	var body string
	switch m.nav.View() {
	case navigation.DetailView:
		body = m.detailView()
	default:
		body = m.listView()
	}
	return frameStyle.Render(body)
}

func (m Model) header() string {
	version := m.opts.Version
	if version == "" {
		version = "dev"
	}
	return headerStyle.Width(m.innerWidth()).Render(fmt.Sprintf("[ RADAR - %s ]", version))
}

// box draws a rounded box with a title line spanning the inner width.
func (m Model) box(title string, lines []string, height int) string {
	width := max(m.innerWidth()-2, 0)
	content := append([]string{title}, lines...)
	style := boxStyle.Width(width)
	if height > 0 {
		style = style.Height(height + 1)
	}
	return style.Render(strings.Join(content, "\n"))
}

func (m Model) textWidth() int {
	return max(m.innerWidth()-4, 0)
}

func (m Model) listView() string {
	overall := m.specs.Progress()
	label := progressLabelStyle.Render(fmt.Sprintf("%.0f%% (%d/%d)",
		overall.Ratio()*100, overall.Completed, overall.Total))
	gauge := m.box(boxTitleStyle.Render("Overall Progress"), []string{
		m.progress.ViewAs(overall.Ratio()),
		label,
	}, 0)

	rows := m.listRows()
	var lines []string
	if m.specs.Len() == 0 {
		lines = append(lines, mutedStyle.Render("No specs found in .kiro/specs"))
	} else {
		selected, _ := m.nav.Selected()
		offset := max(selected-rows+1, 0)
		for i := offset; i < m.specs.Len() && i < offset+rows; i++ {
			s, _ := m.specs.At(i)
			lines = append(lines, m.specRow(s, i == selected))
		}
	}
	list := m.box(listTitleStyle.Render("Specs"), lines, rows)

	footer := footerStyle.Width(m.innerWidth()).Render(m.help.View(listHelp{keys: m.keys}))

	return lipgloss.JoinVertical(lipgloss.Left, m.header(), gauge, list, footer)
}

func (m Model) specRow(s spec.Spec, selected bool) string {
	p := s.Progress()
	name := fmt.Sprintf("%-*s", nameColumnWidth, s.Name)
	info := fmt.Sprintf("  %3d%% (%d/%d)", p.Percent(), p.Completed, p.Total)
	if selected {
		return selectedStyle.Render(ansi.Truncate(name+info, m.textWidth(), "…"))
	}
	return ansi.Truncate(specNameStyle.Render(name)+specInfoStyle.Render(info), m.textWidth(), "…")
}

func (m Model) detailView() string {
	s, _ := m.specs.At(m.nav.DetailIndex())
	tab := m.nav.ActiveTab()

	tabs := m.tabBar(tab)
	nameWidth := max(m.innerWidth()-lipgloss.Width(tabs), 0)
	name := specHeaderStyle.Width(nameWidth).Render(ansi.Truncate("Spec: "+s.Name, nameWidth, "…"))
	titleLine := lipgloss.JoinHorizontal(lipgloss.Top, name, tabs)

	doc := m.loader.Document(s, tab)
	height := m.contentHeight()
	title := tab.Filename()

	var lines []string
	switch doc.Status {
	case spec.Present:
		if heading := markdown.Title(doc.Content); heading != "" {
			title += " · " + heading
		}
		lines = m.visibleLines(doc.Lines(), height)
	case spec.Unreadable:
		lines = []string{errorStyle.Render(fmt.Sprintf("Could not read %s: %v", tab.Filename(), doc.Err))}
	default:
		lines = []string{mutedStyle.Render("File not found")}
	}
	content := m.box(boxTitleStyle.Render(ansi.Truncate(title, m.textWidth(), "…")), lines, height)

	footer := footerStyle.Width(m.innerWidth()).Render(m.help.View(detailHelp{keys: m.keys}))

	return lipgloss.JoinVertical(lipgloss.Left, m.header(), titleLine, content, footer)
}

// visibleLines returns the window of lines starting at the scroll offset.
// The offset is clamped again here because the terminal may have shrunk
// since the last ScrollDown.
func (m Model) visibleLines(all []string, height int) []string {
	if height <= 0 || len(all) == 0 {
		return nil
	}
	if m.opts.Highlight {
		all = markdown.Highlight(all, m.opts.Theme)
	}

	start := min(m.nav.Scroll(), max(len(all)-height, 0))
	end := min(start+height, len(all))
	window := all[start:end]

	out := make([]string, len(window))
	for i, line := range window {
		out[i] = ansi.Truncate(strings.ReplaceAll(line, "\t", "    "), m.textWidth(), "")
	}
	return out
}

func (m Model) tabBar(active spec.DocumentKind) string {
	parts := make([]string, 0, len(spec.DocumentKinds))
	for _, kind := range spec.DocumentKinds {
		if kind == active {
			parts = append(parts, activeTabStyle.Render(kind.Title()))
		} else {
			parts = append(parts, tabStyle.Render(kind.Title()))
		}
	}
	return strings.Join(parts, tabStyle.Render(" | "))
}
