package pipeline

import (
	"context"
	"fmt"
	"slices"

	"github.com/matzehuels/vecnet/pkg/render/nodelink"
	"github.com/matzehuels/vecnet/pkg/vector"
)

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: dot, svg)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// RenderTopology draws the connectivity of n in each requested format.
// The result maps format to bytes.
func (r *Runner) RenderTopology(ctx context.Context, n vector.Network, formats []string, opts nodelink.Options) (map[string][]byte, error) {
	if err := ValidateFormats(formats); err != nil {
		return nil, err
	}
	if err := r.checkNetwork(n); err != nil {
		return nil, err
	}

	dot := nodelink.ToDOT(n, opts)
	out := make(map[string][]byte, len(formats))
	if slices.Contains(formats, FormatDOT) {
		out[FormatDOT] = []byte(dot)
	}
	if slices.Contains(formats, FormatSVG) {
		svg, err := nodelink.RenderSVG(ctx, dot)
		if err != nil {
			return nil, fmt.Errorf("render svg: %w", err)
		}
		out[FormatSVG] = svg
	}
	r.Logger.Debug("rendered topology", "formats", formats, "vertices", n.VertexCount())
	return out, nil
}
