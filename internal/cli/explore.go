package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sunburst/pkg/interaction"
	"github.com/matzehuels/sunburst/pkg/palette"
	"github.com/matzehuels/sunburst/pkg/partition"
	"github.com/matzehuels/sunburst/pkg/pipeline"
)

// exploreCommand creates the explore command.
func (c *CLI) exploreCommand() *cobra.Command {
	var f chartFlags

	cmd := &cobra.Command{
		Use:   "explore [file]",
		Short: "Browse a sunburst chart in the terminal",
		Long: `Browse a sunburst chart in the terminal.

Moving the cursor hovers the node under it: the breadcrumb trail, the share
of the total and the highlighted ancestors update on every step.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeRecordFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyConfig(cmd, &f)
			return c.runExplore(cmd.Context(), args[0], &f)
		},
	}

	f.bindLayoutFlags(cmd)

	return cmd
}

func (c *CLI) runExplore(ctx context.Context, input string, f *chartFlags) error {
	data, err := readInput(input, os.Stdin)
	if err != nil {
		return err
	}
	opts := c.options(f, input, data)

	root, err := pipeline.Build(ctx, opts)
	if err != nil {
		return err
	}
	l, colors, err := pipeline.ComputeLayout(ctx, root, opts)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(newExploreModel(input, l, colors), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// Explorer styles
var (
	exploreCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	exploreNormalStyle = lipgloss.NewStyle().Foreground(colorBright)
	exploreFadedStyle  = lipgloss.NewStyle().Foreground(colorFaint)
)

// barWidth is the width of a bar covering the whole parent.
const barWidth = 30

// exploreKeyMap binds the explorer's navigation keys.
type exploreKeyMap struct {
	Parent, Child, Prev, Next, Hover, Leave, Quit key.Binding
}

var exploreKeys = exploreKeyMap{
	Parent: key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "parent")),
	Child:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "child")),
	Prev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev")),
	Next:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
	Hover:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("⏎", "hover")),
	Leave:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ShortHelp implements help.KeyMap.
func (k exploreKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Parent, k.Child, k.Prev, k.Next, k.Hover, k.Leave, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k exploreKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// =============================================================================
// exploreModel - Interactive chart navigation
// =============================================================================

// exploreModel is the bubbletea model of the explore command. The cursor
// walks the visible nodes; every move hovers the node under it.
type exploreModel struct {
	source string
	layout *partition.Layout
	colors palette.ColorMap
	state  *interaction.State
	cursor int
	last   interaction.Result
	err    error
	height int
	help   help.Model
}

func newExploreModel(source string, l *partition.Layout, colors palette.ColorMap) exploreModel {
	return exploreModel{
		source: source,
		layout: l,
		colors: colors,
		state:  interaction.New(l),
		cursor: l.Root().ID,
		height: 15,
		help:   help.New(),
	}
}

func (m exploreModel) Init() tea.Cmd {
	return nil
}

func (m exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, exploreKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, exploreKeys.Leave):
			m.state.Leave()
		case key.Matches(msg, exploreKeys.Child):
			if kids := m.visibleChildren(m.cursor); len(kids) > 0 {
				m = m.hover(kids[0].ID)
			}
		case key.Matches(msg, exploreKeys.Parent):
			if n, _ := m.layout.Node(m.cursor); !n.IsRoot() {
				m = m.hover(n.Parent)
			}
		case key.Matches(msg, exploreKeys.Next):
			m = m.step(1)
		case key.Matches(msg, exploreKeys.Prev):
			m = m.step(-1)
		case key.Matches(msg, exploreKeys.Hover):
			m = m.hover(m.cursor)
		}
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-10, 5)
		m.help.Width = msg.Width
	}
	return m, nil
}

// hover moves the cursor to id and hovers it.
func (m exploreModel) hover(id int) exploreModel {
	m.cursor = id
	m.last, m.err = m.state.Hover(id)
	return m
}

// step moves the cursor to the next or previous visible sibling, wrapping
// around the ring.
func (m exploreModel) step(delta int) exploreModel {
	n, _ := m.layout.Node(m.cursor)
	if n.IsRoot() {
		return m
	}
	sibs := m.visibleChildren(n.Parent)
	for i, s := range sibs {
		if s.ID == m.cursor {
			next := (i + delta + len(sibs)) % len(sibs)
			return m.hover(sibs[next].ID)
		}
	}
	return m
}

func (m exploreModel) visibleChildren(id int) []partition.Node {
	var out []partition.Node
	for _, c := range m.layout.Children(id) {
		if m.layout.IsVisible(c.ID) {
			out = append(out, c)
		}
	}
	return out
}

func (m exploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Sunburst"))
	b.WriteString(StyleDim.Render("  " + m.source))
	b.WriteString("\n")
	b.WriteString(m.help.View(exploreKeys))
	b.WriteString("\n\n")

	b.WriteString(m.trailView())
	b.WriteString("\n\n")

	cur, _ := m.layout.Node(m.cursor)
	ring := cur.Parent
	if cur.IsRoot() {
		ring = cur.ID
	}
	parent, _ := m.layout.Node(ring)
	nodes := m.visibleChildren(ring)

	start := 0
	for i, n := range nodes {
		if n.ID == m.cursor && i >= m.height {
			start = i - m.height + 1
		}
	}
	end := min(start+m.height, len(nodes))

	for _, n := range nodes[start:end] {
		b.WriteString(m.rowView(n, parent.Value))
		b.WriteString("\n")
	}
	if len(nodes) == 0 {
		b.WriteString(StyleDim.Render("  (empty)"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  depth %d/%d · %d arcs · total %g",
		cur.Depth, m.layout.MaxDepth(), len(m.layout.Visible()), m.layout.Total())))
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(StyleWarning.Render(m.err.Error()))
	}
	return b.String()
}

// trailView renders the breadcrumbs in their legend colors, followed by the
// share of the hovered node and the slots that changed with the last hover.
func (m exploreModel) trailView() string {
	tr := m.state.Trail()
	if !tr.Visible {
		return StyleDim.Render("  (nothing hovered)")
	}

	parts := make([]string, 0, len(tr.Crumbs)+1)
	for _, cr := range tr.Crumbs {
		parts = append(parts, m.chip(cr.Name))
	}
	parts = append(parts, StylePercentage.Render(tr.Percentage))
	line := "  " + strings.Join(parts, StyleDim.Render(" "+iconArrow+" "))

	var changes []string
	for _, s := range m.last.Diff.Entered {
		changes = append(changes, "+"+s.Key.String())
	}
	for _, s := range m.last.Diff.Exited {
		changes = append(changes, "-"+s.Key.String())
	}
	if len(changes) > 0 {
		line += "\n  " + StyleDim.Render(strings.Join(changes, " "))
	}
	return line
}

func (m exploreModel) chip(name string) string {
	color, ok := m.colors.Color(name)
	if !ok {
		return styleCrumb.Render(name)
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(color)).
		Foreground(lipgloss.Color(palette.TextColor(color))).
		Padding(0, 1).
		Render(name)
}

// rowView renders one node of the current ring as a bar sized by its share
// of the parent. Nodes outside the highlight set are faded.
func (m exploreModel) rowView(n partition.Node, parentValue float64) string {
	filled := 0
	if parentValue > 0 {
		filled = int(n.Value / parentValue * barWidth)
	}
	filled = min(max(filled, 0), barWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	if color, ok := m.colors.Color(n.Name); ok {
		bar = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(bar)
	}

	cursor := "  "
	style := exploreNormalStyle
	if m.state.Opacity(n.ID) < 1 {
		style = exploreFadedStyle
	}
	if n.ID == m.cursor {
		cursor = "▸ "
		style = exploreCursorStyle
	}
	pct := interaction.FormatPercentage(n.Value, m.layout.Total())
	return fmt.Sprintf("%s%s %s %s", cursor, bar, style.Render(fmt.Sprintf("%-20s", n.Name)), StyleDim.Render(pct))
}
