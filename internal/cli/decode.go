package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// decodeCommand creates the decode command.
func (c *CLI) decodeCommand() *cobra.Command {
	var opts codecOpts

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode a sparse vector network to the dense form",
		Long: `Decode reads a sparse vector network and writes the dense network it
describes. Malformed or out-of-range input is rejected with the offending
field named, for example:

  OUT_OF_RANGE: regions[0].loops[0]: vertex index 5 out of range (valid range 0-3)

Reads stdin when no file is given or the file is "-".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDecode(cmd.Context(), firstArg(args), opts)
		},
	}
	opts.register(cmd)

	return cmd
}

func (c *CLI) runDecode(ctx context.Context, input string, opts codecOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Decoding %s", inputName(input))

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
	res, err := runner.Decode(ctx, data)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Decoded %d vertices, %d segments", res.Stats.Vertices, res.Stats.Segments))

	wrote, err := writeOutput(opts.output, res.Data)
	if err != nil {
		return err
	}
	if wrote {
		printSuccess("Decoded %s", inputName(input))
		printStats(res.Stats.Vertices, res.Stats.Segments, res.Stats.Paths, res.CacheHit)
		printFile(opts.output)
		printSizes(res.Stats)
	}
	return nil
}
