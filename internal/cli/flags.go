package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sunburst/pkg/errors"
	"github.com/matzehuels/sunburst/pkg/pipeline"
)

// chartFlags are the layout and render flags shared by render, hover,
// explore and serve.
type chartFlags struct {
	opts    pipeline.Options
	formats string
	noCache bool
}

// bindLayoutFlags registers the flags that change the partition and palette.
func (f *chartFlags) bindLayoutFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.opts.Width, "width", pipeline.DefaultWidth, "chart width in pixels")
	cmd.Flags().Float64Var(&f.opts.Height, "height", 0, "chart height in pixels (default 0.6 x width)")
	cmd.Flags().StringVar(&f.opts.Hue, "hue", "", "palette hue: red, orange, yellow, green, blue (default), purple, pink, monochrome, random")
	cmd.Flags().Uint64Var(&f.opts.Seed, "seed", 0, "palette seed (0 draws new colors on every run)")
	cmd.Flags().Float64Var(&f.opts.Epsilon, "epsilon", 0, "hide arcs narrower than this many radians (default 0.005)")
	cmd.Flags().BoolVar(&f.opts.NoPrune, "no-prune", false, "draw every arc regardless of size")
	_ = cmd.RegisterFlagCompletionFunc("hue", completeHues)
}

// bindRenderFlags registers the flags that change rendered artifacts.
func (f *chartFlags) bindRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), html, json, png, pdf (comma-separated)")
	cmd.Flags().StringVar(&f.opts.Style, "style", pipeline.DefaultStyle, "visual style")
	cmd.Flags().BoolVar(&f.opts.Legend, "legend", false, "draw the color legend")
	cmd.Flags().BoolVar(&f.opts.Trail, "trail", false, "reserve space for the breadcrumb trail")
	cmd.Flags().BoolVar(&f.opts.Interactive, "interactive", false, "embed hover script in SVG output")
	cmd.Flags().StringVar(&f.opts.Title, "title", "", "HTML page title")
	cmd.Flags().Float64Var(&f.opts.Scale, "scale", pipeline.DefaultScale, "PNG resolution multiplier")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
}

// bindCacheFlag registers --no-cache.
func (f *chartFlags) bindCacheFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
}

// applyConfig fills every flag the user did not set from the config file.
func (c *CLI) applyConfig(cmd *cobra.Command, f *chartFlags) {
	r := c.Config.Render
	unset := func(name string) bool {
		fl := cmd.Flags().Lookup(name)
		return fl != nil && !fl.Changed
	}

	if unset("width") {
		f.opts.Width = r.Width
	}
	if unset("height") {
		f.opts.Height = r.Height
	}
	if unset("hue") {
		f.opts.Hue = r.Hue
	}
	if unset("seed") {
		f.opts.Seed = r.Seed
	}
	if unset("epsilon") {
		f.opts.Epsilon = r.Epsilon
	}
	if unset("format") && f.formats == "" {
		f.formats = strings.Join(r.Formats, ",")
	}
	if unset("style") && r.Style != "" {
		f.opts.Style = r.Style
	}
	if unset("legend") {
		f.opts.Legend = r.Legend
	}
	if unset("trail") {
		f.opts.Trail = r.Trail
	}
}

// options returns the pipeline options for input read from source.
func (c *CLI) options(f *chartFlags, source string, input []byte) pipeline.Options {
	opts := f.opts
	opts.Input = input
	opts.Source = source
	opts.Formats = parseFormats(f.formats)
	opts.NoCache = f.noCache
	opts.Logger = c.Logger
	return opts
}

// readInput reads the record file at path, or stdin for "-".
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// splitPath turns "a/b/c" into its segments. The empty string and "/"
// address the root.
func splitPath(s string) []string {
	s = strings.Trim(s, "/")
	if s == "" {
		return nil
	}
	return strings.Split(s, "/")
}
