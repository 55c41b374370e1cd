package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sunburst/pkg/pipeline"
)

// hoverCommand creates the hover command.
func (c *CLI) hoverCommand() *cobra.Command {
	var (
		f       chartFlags
		asJSON  bool
		pathArg string
	)

	cmd := &cobra.Command{
		Use:   "hover [file] [name...]",
		Short: "Show the breadcrumb trail and share of a node",
		Long: `Show the breadcrumb trail and share of a node.

The node is addressed by the names on the way down from the root, either as
separate arguments or as a single --path "a/b/c". Without a path the root
itself is hovered.`,
		Example: `  sunburst hover usage.json web api
  sunburst hover usage.json --path web/api --json`,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeRecordFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyConfig(cmd, &f)
			path := args[1:]
			if pathArg != "" {
				path = splitPath(pathArg)
			}
			return c.runHover(cmd.Context(), args[0], &f, path, asJSON)
		},
	}

	cmd.Flags().StringVar(&pathArg, "path", "", "node path separated by /")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the hover result as JSON")
	f.bindLayoutFlags(cmd)
	f.bindCacheFlag(cmd)

	return cmd
}

func (c *CLI) runHover(ctx context.Context, input string, f *chartFlags, path []string, asJSON bool) error {
	data, err := readInput(input, os.Stdin)
	if err != nil {
		return err
	}
	opts := c.options(f, input, data)
	opts.Path = path

	runner, err := c.newRunner(ctx, opts.NoCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	res, err := runner.Hover(ctx, opts)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	fmt.Println(renderHover(res))
	return nil
}

// renderHover formats a hover result for the terminal: the breadcrumb
// trail followed by a table of the ancestor chain.
func renderHover(res *pipeline.HoverResult) string {
	var b strings.Builder

	crumbs := make([]string, 0, len(res.Trail.Crumbs)+1)
	for _, cr := range res.Trail.Crumbs {
		crumbs = append(crumbs, styleCrumb.Render(cr.Name))
	}
	crumbs = append(crumbs, StylePercentage.Render(res.Percentage))
	b.WriteString(strings.Join(crumbs, StyleDim.Render(" "+iconArrow+" ")))

	if len(res.Trail.Crumbs) == 0 {
		return b.String()
	}

	rows := make([][]string, len(res.Trail.Crumbs))
	for i, cr := range res.Trail.Crumbs {
		rows[i] = []string{strconv.Itoa(cr.Depth), cr.Name, strconv.Itoa(cr.NodeID)}
	}
	headerStyle := lipgloss.NewStyle().Foreground(colorMuted).Bold(true)
	last := len(rows) - 1
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorFaint)).
		Headers("Depth", "Name", "Node").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case row == last:
				return StyleHighlight.Bold(true)
			default:
				return StyleValue
			}
		})

	b.WriteString("\n")
	b.WriteString(t.Render())
	return b.String()
}
