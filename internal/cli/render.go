package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sunburst/pkg/palette"
	"github.com/matzehuels/sunburst/pkg/pipeline"
)

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		f      chartFlags
		output string
		hover  string
		legend bool
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a record file as a sunburst chart",
		Long: `Render a record file as a sunburst chart.

The input is a JSON or YAML document whose "result" field holds nested keyed
counts. Use "-" to read JSON from stdin.

With a fixed --seed, results are cached locally for faster subsequent runs.`,
		Example: `  sunburst render usage.json
  sunburst render usage.yaml -f svg,html --legend --seed 7
  sunburst render usage.json -f json --hover web/api
  cat usage.json | sunburst render - -f svg -o -`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeRecordFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyConfig(cmd, &f)
			f.opts.Path = splitPath(hover)
			return c.runRender(cmd.Context(), args[0], &f, output, legend)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple); - for stdout")
	cmd.Flags().StringVar(&hover, "hover", "", "render the chart hovered at this node path (e.g. web/api)")
	cmd.Flags().BoolVar(&legend, "print-legend", false, "print the legend colors")
	f.bindLayoutFlags(cmd)
	f.bindRenderFlags(cmd)
	f.bindCacheFlag(cmd)

	return cmd
}

// runRender runs the pipeline on input and writes every artifact.
func (c *CLI) runRender(ctx context.Context, input string, f *chartFlags, output string, legend bool) error {
	data, err := readInput(input, os.Stdin)
	if err != nil {
		return err
	}
	opts := c.options(f, input, data)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	if output == "-" && len(opts.Formats) != 1 {
		return fmt.Errorf("--output - needs exactly one format, got %d", len(opts.Formats))
	}

	runner, err := c.newRunner(ctx, opts.NoCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", input))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}

	if output == "-" {
		spinner.Stop()
		_, err := os.Stdout.Write(result.Artifacts[opts.Formats[0]])
		return err
	}

	spinner.SetMessage(fmt.Sprintf("Writing %d artifacts...", len(opts.Formats)))
	paths, err := writeArtifacts(result.Artifacts, opts.Formats, input, output)
	if err != nil {
		spinner.StopWithError("Write failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Rendered %d artifacts", len(paths)))

	printSuccess("Rendered %s", input)
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.NodeCount, result.Stats.VisibleCount, result.CacheInfo.RenderHit)
	if result.State != nil {
		printKeyValue("Hovered", strings.Join(opts.Path, " / "))
		printKeyValue("Share", StylePercentage.Render(result.State.Trail().Percentage))
	}
	if legend {
		printNewline()
		for _, s := range result.Colors.Entries() {
			printSwatch(s.Name, s.Color, palette.TextColor(s.Color))
		}
	}
	if opts.Seed == 0 {
		printDetail("Palette is time-seeded; pass --seed to reproduce it")
	}
	printNewline()
	printNextStep("Explore interactively", "sunburst explore "+input)
	return nil
}

// writeArtifacts writes each rendered format to disk and returns the paths.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) ([]string, error) {
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := outputPath(output, input, format, len(formats) > 1)
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return paths, fmt.Errorf("create %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// outputPath derives the file for one format.
// A single format with an explicit output is written there verbatim; all
// other cases append the format extension to a base path.
func outputPath(output, input, format string, multiple bool) string {
	if output != "" && !multiple {
		return output
	}
	return basePath(output, input) + "." + format
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input ("-" becomes "sunburst").
// If output has a format extension (.svg, .html, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		if input == "-" {
			return appName
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
