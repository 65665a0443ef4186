package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/vecnet/pkg/vector"
)

// errUnstable is returned by roundtrip --strict when the check fails.
var errUnstable = errors.New("round trip is not exact")

// roundtripCommand creates the roundtrip command.
func (c *CLI) roundtripCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "roundtrip [file]",
		Short: "Check that a dense network survives encode and decode",
		Long: `Roundtrip encodes a dense network, decodes the result and encodes again.
The two encodings must be identical. Vertices whose segments disagree on a
handle are listed, since the sparse form keeps one handle per vertex side.

With --strict the command fails when the encodings differ or any handle
conflict is found.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRoundtrip(cmd.Context(), firstArg(args), strict)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on handle conflicts or unstable encoding")

	return cmd
}

func (c *CLI) runRoundtrip(ctx context.Context, input string, strict bool) error {
	logger := loggerFromContext(ctx)

	data, err := readInput(input)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, true)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	res, err := runner.Roundtrip(ctx, data)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Round-tripped %s", inputName(input)))

	printStats(res.Stats.Vertices, res.Stats.Segments, res.Stats.Paths, false)
	if res.Stable {
		printSuccess("Re-encoding matches the first encoding")
	} else {
		printError("Re-encoding differs from the first encoding")
	}
	if len(res.Conflicts) == 0 {
		printSuccess("No handle conflicts")
	} else {
		printWarning("%d handle conflict(s)", len(res.Conflicts))
		for _, hc := range res.Conflicts {
			printDetail("%s", describeConflict(hc))
		}
	}

	if strict && (!res.Stable || len(res.Conflicts) > 0) {
		return errUnstable
	}
	return nil
}

// describeConflict renders a conflict as
// "vertex 0 out: segment 0 (1,0), segment 1 (0,1)".
func describeConflict(hc vector.HandleConflict) string {
	parts := make([]string, len(hc.Segments))
	for i, s := range hc.Segments {
		p := hc.Values[i]
		parts[i] = fmt.Sprintf("segment %d (%g,%g)", s, p.X, p.Y)
	}
	return fmt.Sprintf("vertex %d %s: %s", hc.Vertex, hc.Half, strings.Join(parts, ", "))
}
