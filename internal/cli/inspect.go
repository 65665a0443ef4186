package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	vecio "github.com/matzehuels/vecnet/pkg/io"
	"github.com/matzehuels/vecnet/pkg/pipeline"
	"github.com/matzehuels/vecnet/pkg/render/nodelink"
	"github.com/matzehuels/vecnet/pkg/vector"
)

// inspectOpts holds the command-line flags for the inspect command.
type inspectOpts struct {
	dotPath     string // write the topology as DOT
	svgPath     string // write the topology as SVG
	detailed    bool   // vertex coordinates and styles in node labels
	geometric   bool   // pin nodes at their coordinates
	interactive bool   // browse vertices in a TUI
	noCache     bool
}

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var opts inspectOpts

	cmd := &cobra.Command{
		Use:   "inspect [file]",
		Short: "Summarize a vector network and draw its topology",
		Long: `Inspect reads a dense or sparse vector network (detected from the type of
"vertices") and prints its size, what the sparse form keeps, and any handle
conflicts. --dot and --svg draw vertices and segments as a graph; segments
outside every region loop are dashed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), firstArg(args), opts)
		},
	}

	cmd.Flags().StringVar(&opts.dotPath, "dot", "", "write topology as Graphviz DOT to file")
	cmd.Flags().StringVar(&opts.svgPath, "svg", "", "write topology as SVG to file")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show coordinates and styles in node labels")
	cmd.Flags().BoolVar(&opts.geometric, "geometric", false, "place nodes at vertex coordinates")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse vertices interactively")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the result cache")

	return cmd
}

func (c *CLI) runInspect(ctx context.Context, input string, opts inspectOpts) error {
	logger := loggerFromContext(ctx)

	data, err := readInput(input)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	n, err := loadNetwork(ctx, runner, data)
	if err != nil {
		return err
	}
	enc, err := runner.EncodeNetwork(ctx, n)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded %s", inputName(input))

	sum := summarize(n)
	printSummary(inputName(input), sum, enc.Stats, len(data))

	if err := c.writeTopology(ctx, runner, n, opts); err != nil {
		return err
	}

	if opts.interactive {
		_, err := tea.NewProgram(newInspectModel(n), tea.WithAltScreen()).Run()
		return err
	}
	return nil
}

// loadNetwork parses data as a dense network, or decodes it first when
// "vertices" is a string.
func loadNetwork(ctx context.Context, r *pipeline.Runner, data []byte) (vector.Network, error) {
	if isSparse(data) {
		res, err := r.Decode(ctx, data)
		if err != nil {
			return vector.Network{}, err
		}
		return res.Network, nil
	}
	n, err := vecio.ReadNetwork(bytes.NewReader(data))
	if err != nil {
		return vector.Network{}, fmt.Errorf("parse network: %w", err)
	}
	return n, nil
}

// isSparse reports whether data looks like the sparse wire form.
func isSparse(data []byte) bool {
	var probe struct {
		Vertices json.RawMessage `json:"vertices"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return false
	}
	v := bytes.TrimSpace(probe.Vertices)
	return len(v) > 0 && v[0] == '"'
}

func (c *CLI) writeTopology(ctx context.Context, r *pipeline.Runner, n vector.Network, opts inspectOpts) error {
	var formats []string
	paths := map[string]string{}
	if opts.dotPath != "" {
		formats = append(formats, pipeline.FormatDOT)
		paths[pipeline.FormatDOT] = opts.dotPath
	}
	if opts.svgPath != "" {
		formats = append(formats, pipeline.FormatSVG)
		paths[pipeline.FormatSVG] = opts.svgPath
	}
	if len(formats) == 0 {
		return nil
	}

	spinner := newSpinnerWithContext(ctx, "Rendering topology...")
	spinner.Start()
	out, err := r.RenderTopology(ctx, n, formats, nodelink.Options{Detailed: opts.detailed, Geometric: opts.geometric})
	spinner.Stop()
	if err != nil {
		return err
	}

	printNewline()
	for _, f := range formats {
		if err := os.WriteFile(paths[f], out[f], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", paths[f], err)
		}
		printFile(paths[f])
	}
	return nil
}

// =============================================================================
// Summary
// =============================================================================

// networkSummary counts the parts of a network that matter for encoding.
type networkSummary struct {
	Vertices       int
	Segments       int
	Regions        int
	Loops          int
	Curved         int // segments with a non-zero tangent
	StyledVertices int
	Residual       int // segments outside every region loop
	Conflicts      []vector.HandleConflict
}

func summarize(n vector.Network) networkSummary {
	s := networkSummary{
		Vertices:  n.VertexCount(),
		Segments:  n.SegmentCount(),
		Regions:   len(n.Regions),
		Conflicts: n.HandleConflicts(),
	}
	claimed := make(map[[2]int]bool)
	for _, r := range n.Regions {
		s.Loops += len(r.Loops)
		for _, e := range r.Edges() {
			claimed[e] = true
		}
	}
	for _, seg := range n.Segments {
		if !seg.TangentStart.IsZero() || !seg.TangentEnd.IsZero() {
			s.Curved++
		}
		if !claimed[[2]int{seg.Start, seg.End}] {
			s.Residual++
		}
	}
	for _, v := range n.Vertices {
		if v.HasStyle() {
			s.StyledVertices++
		}
	}
	return s
}

func printSummary(name string, sum networkSummary, enc pipeline.Stats, inputBytes int) {
	fmt.Fprintln(statusOut, StyleTitle.Render(name))
	printKeyValue("vertices", strconv.Itoa(sum.Vertices))
	printKeyValue("segments", fmt.Sprintf("%d (%d curved, %d outside regions)", sum.Segments, sum.Curved, sum.Residual))
	printKeyValue("regions", fmt.Sprintf("%d (%d loops)", sum.Regions, sum.Loops))
	printKeyValue("styled", fmt.Sprintf("%d vertices", sum.StyledVertices))
	printKeyValue("encoded", fmt.Sprintf("%d paths, %d handles, %d fills", enc.Paths, enc.Handles, enc.Fills))
	if inputBytes > 0 {
		printKeyValue("size", fmt.Sprintf("%d → %d bytes", inputBytes, enc.OutputBytes))
	}
	if len(sum.Conflicts) > 0 {
		printWarning("%d handle conflict(s)", len(sum.Conflicts))
		for _, hc := range sum.Conflicts {
			printDetail("%s", describeConflict(hc))
		}
	}
}

// printNewline prints an empty status line.
func printNewline() {
	fmt.Fprintln(statusOut)
}
