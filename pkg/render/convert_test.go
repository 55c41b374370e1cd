package render

import (
	"context"
	"testing"

	"github.com/matzehuels/sunburst/pkg/errors"
)

func TestConvertWithoutConverter(t *testing.T) {
	old := converter
	converter = "sunburst-missing-rsvg-convert"
	defer func() { converter = old }()

	if Available() {
		t.Fatal("Available() = true for a missing binary")
	}
	_, err := ToPNG(context.Background(), []byte("<svg/>"), 1)
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPNG err = %v, want %v", err, errors.ErrCodeUnsupported)
	}
	_, err = ToPDF(context.Background(), []byte("<svg/>"))
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPDF err = %v, want %v", err, errors.ErrCodeUnsupported)
	}
}

func TestToPNG(t *testing.T) {
	if !Available() {
		t.Skip("rsvg-convert not installed")
	}
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><circle r="4" cx="5" cy="5"/></svg>`)
	png, err := ToPNG(context.Background(), svg, 1)
	if err != nil {
		t.Fatalf("ToPNG: %v", err)
	}
	if len(png) < 8 || string(png[1:4]) != "PNG" {
		t.Errorf("output is not a PNG (%d bytes)", len(png))
	}
}
