package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/sunburst/pkg/errors"
	"github.com/matzehuels/sunburst/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,html,png", []string{"svg", "html", "png"}},
		{"spaces trimmed", "svg, json", []string{"svg", "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if !slices.Equal(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"/", nil},
		{"web", []string{"web"}},
		{"web/api", []string{"web", "api"}},
		{"/web/api/", []string{"web", "api"}},
	}

	for _, tt := range tests {
		if got := splitPath(tt.input); !slices.Equal(got, tt.want) {
			t.Errorf("splitPath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "data/usage.json", "data/usage"},
		{"", "-", "sunburst"},
		{"out/chart.svg", "usage.json", "out/chart"},
		{"out/chart.html", "usage.json", "out/chart"},
		{"out/chart", "usage.json", "out/chart"},
		{"out/chart.v2", "usage.json", "out/chart.v2"},
	}

	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		format   string
		multiple bool
		want     string
	}{
		{"derived single", "", "svg", false, "usage.svg"},
		{"explicit single", "chart.out", "svg", false, "chart.out"},
		{"explicit multiple", "chart.svg", "html", true, "chart.html"},
		{"derived multiple", "", "json", true, "usage.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath(tt.output, "usage.yaml", tt.format, tt.multiple); got != tt.want {
				t.Errorf("outputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	artifacts := map[string][]byte{
		pipeline.FormatSVG:  []byte("<svg/>"),
		pipeline.FormatJSON: []byte("{}"),
	}

	paths, err := writeArtifacts(artifacts, []string{"svg", "json"}, "usage.json", filepath.Join(dir, "nested", "chart"))
	if err != nil {
		t.Fatalf("writeArtifacts() error: %v", err)
	}
	want := []string{filepath.Join(dir, "nested", "chart.svg"), filepath.Join(dir, "nested", "chart.json")}
	if !slices.Equal(paths, want) {
		t.Errorf("paths = %v, want %v", paths, want)
	}
	got, err := os.ReadFile(want[0])
	if err != nil || string(got) != "<svg/>" {
		t.Errorf("svg file = %q, %v", got, err)
	}
}

func TestReadInput(t *testing.T) {
	data, err := readInput("-", strings.NewReader(`{"result": {}}`))
	if err != nil || string(data) != `{"result": {}}` {
		t.Errorf("readInput(stdin) = %q, %v", data, err)
	}

	_, err = readInput(filepath.Join(t.TempDir(), "missing.json"), &bytes.Buffer{})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("readInput(missing) error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestValidFormatsMap(t *testing.T) {
	for _, f := range []string{"svg", "html", "json", "png", "pdf"} {
		if !pipeline.ValidFormats[f] {
			t.Errorf("ValidFormats[%q] should be true", f)
		}
	}
	if pipeline.ValidFormats["invalid"] {
		t.Error("ValidFormats[invalid] should be false")
	}
}

func TestRunRenderWritesArtifacts(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "usage.json")
	if err := os.WriteFile(input, []byte(testRecord), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New(io.Discard, LogInfo)
	f := &chartFlags{formats: "svg,json", noCache: true}
	f.opts.Seed = 7
	if err := c.runRender(context.Background(), input, f, filepath.Join(dir, "chart"), false); err != nil {
		t.Fatalf("runRender: %v", err)
	}

	for _, name := range []string{"chart.svg", "chart.json"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("%s not written: %v", name, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}
