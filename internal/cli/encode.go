package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/vecnet/pkg/pipeline"
)

// codecOpts holds the flags shared by encode and decode.
type codecOpts struct {
	output  string // output file; empty writes to stdout
	noCache bool   // bypass the result cache
}

func (o *codecOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&o.noCache, "no-cache", false, "disable the result cache")
}

// encodeCommand creates the encode command.
func (c *CLI) encodeCommand() *cobra.Command {
	var opts codecOpts

	cmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode a dense vector network to the sparse form",
		Long: `Encode reads a dense vector network (vertices, segments, regions) and writes
its sparse form: a flat vertex string, region loops, traced paths and only
the handles, styles and fills that carry information.

Reads stdin when no file is given or the file is "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEncode(cmd.Context(), firstArg(args), opts)
		},
	}
	opts.register(cmd)

	return cmd
}

func (c *CLI) runEncode(ctx context.Context, input string, opts codecOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Encoding %s", inputName(input))

	data, err := readInput(input)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	res, err := runner.Encode(ctx, data)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Encoded %d vertices, %d segments", res.Stats.Vertices, res.Stats.Segments))

	wrote, err := writeOutput(opts.output, res.Data)
	if err != nil {
		return err
	}
	if wrote {
		printSuccess("Encoded %s", inputName(input))
		printStats(res.Stats.Vertices, res.Stats.Segments, res.Stats.Paths, res.CacheHit)
		printFile(opts.output)
		printSizes(res.Stats)
	}
	if len(res.Warnings) > 0 {
		printWarning("%d handle conflict(s): decoding will not reproduce every tangent", len(res.Warnings))
		if input != "" && input != "-" {
			printNextStep("Compare encodings", "vecnet roundtrip "+input)
		}
	}
	return nil
}

// printSizes prints input and output size with the compression ratio.
func printSizes(s pipeline.Stats) {
	if s.InputBytes == 0 {
		return
	}
	printDetail("%d → %d bytes (%.0f%%)", s.InputBytes, s.OutputBytes, s.Ratio()*100)
}

func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
