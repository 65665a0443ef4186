package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/vecnet/pkg/tool"
)

// callCommand creates the call command.
func (c *CLI) callCommand() *cobra.Command {
	var (
		toolName string
		argsPath string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "call",
		Short: "Serve codec tool requests over stdin/stdout",
		Long: `Call answers tool requests, one JSON object per line on stdin:

  {"id": "c1", "tool": "encode_vector_network", "arguments": {...}}

Each request gets one response line on stdout:

  {"id": "c1", "ok": true, "result": {...}}
  {"id": "c2", "ok": false, "code": "OUT_OF_RANGE", "error": "paths[0]: ..."}

With --tool, a single request is built from --args (a file, or stdin when
omitted) and its response is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			h := tool.NewHandler(runner)
			if toolName != "" {
				return callOnce(ctx, h, toolName, argsPath)
			}
			loggerFromContext(ctx).Debug("serving tool requests", "tools", tool.Names)
			return h.Serve(ctx, os.Stdin, os.Stdout)
		},
	}

	cmd.Flags().StringVar(&toolName, "tool", "", "run a single request for this tool")
	cmd.Flags().StringVar(&argsPath, "args", "", "arguments file for --tool (default stdin)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache")

	return cmd
}

// callOnce runs one request and prints its response. A failed call is
// still printed, then reported as an error for the exit status.
func callOnce(ctx context.Context, h *tool.Handler, name, argsPath string) error {
	args, err := readInput(argsPath)
	if err != nil {
		return err
	}
	resp := h.Handle(ctx, tool.Request{Tool: name, Arguments: json.RawMessage(args)})

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	if !resp.OK {
		return fmt.Errorf("%s: %s", resp.Code, resp.Error)
	}
	return nil
}
