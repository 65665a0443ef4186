// Package tool exposes the codec as named tools for an agent runtime.
//
// A caller sends one request per line of JSON and receives one response
// per request:
//
//	{"id": "c1", "tool": "encode_vector_network", "arguments": {"vertices": [...], ...}}
//	{"id": "c1", "ok": true, "result": {"vertices": "[...]", ...}}
//
//	{"tool": "decode_vector_network", "arguments": {"vertices": "[0,0,100]"}}
//	{"id": "5b0c...", "ok": false, "code": "INVALID_SHAPE",
//	 "error": "vertices: expected an even number of coordinates (x,y pairs), got 3"}
//
// Requests without an id are assigned a random UUID. Error strings are the
// codec's [errors.UserMessage] unchanged, so the agent sees which field was
// wrong and what the valid range is.
package tool

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	vecerrors "github.com/matzehuels/vecnet/pkg/errors"
	"github.com/matzehuels/vecnet/pkg/observability"
	"github.com/matzehuels/vecnet/pkg/pipeline"
)

// Tool names.
const (
	EncodeTool = "encode_vector_network"
	DecodeTool = "decode_vector_network"
)

// Names lists the tools a [Handler] serves.
var Names = []string{EncodeTool, DecodeTool}

// maxLineBytes bounds one request line in [Handler.Serve].
const maxLineBytes = 64 << 20

// Request is one tool invocation.
type Request struct {
	ID        string          `json:"id,omitempty"`
	Tool      string          `json:"tool"`
	Arguments json.RawMessage `json:"arguments"`
}

// Response answers one Request.
type Response struct {
	ID     string          `json:"id"`
	OK     bool            `json:"ok"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
	Code   vecerrors.Code  `json:"code,omitempty"`
}

// Handler dispatches tool requests to a pipeline runner.
type Handler struct {
	Runner *pipeline.Runner
}

// NewHandler returns a handler backed by r.
func NewHandler(r *pipeline.Runner) *Handler {
	return &Handler{Runner: r}
}

// Handle runs one request. Failures are reported in the response, never
// as a Go error.
func (h *Handler) Handle(ctx context.Context, req Request) Response {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	hooks := observability.Tool()
	hooks.OnToolCall(ctx, req.ID, req.Tool)
	start := time.Now()

	result, err := h.dispatch(ctx, req)
	resp := Response{ID: req.ID}
	if err != nil {
		resp.Error = vecerrors.UserMessage(err)
		resp.Code = vecerrors.GetCode(err)
		if resp.Code == "" {
			resp.Code = vecerrors.ErrCodeInternal
		}
	} else {
		resp.OK = true
		resp.Result = result
	}

	hooks.OnToolResult(ctx, resp.ID, req.Tool, resp.OK, string(resp.Code), time.Since(start))
	return resp
}

func (h *Handler) dispatch(ctx context.Context, req Request) (json.RawMessage, error) {
	if err := vecerrors.ValidateToolName(req.Tool); err != nil {
		return nil, err
	}
	if len(req.Arguments) == 0 {
		return nil, vecerrors.New(vecerrors.ErrCodeInvalidInput, "arguments are required")
	}

	switch req.Tool {
	case EncodeTool:
		res, err := h.Runner.Encode(ctx, req.Arguments)
		if err != nil {
			return nil, err
		}
		return compact(res.Data)
	case DecodeTool:
		res, err := h.Runner.Decode(ctx, req.Arguments)
		if err != nil {
			return nil, err
		}
		return compact(res.Data)
	default:
		return nil, vecerrors.New(vecerrors.ErrCodeUnknownTool, "unknown tool %q (available: %s, %s)", req.Tool, EncodeTool, DecodeTool)
	}
}

// compact strips the indentation the pipeline writes for humans.
func compact(data []byte) (json.RawMessage, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return nil, vecerrors.Wrap(vecerrors.ErrCodeInternal, err, "compact result")
	}
	return buf.Bytes(), nil
}

// Serve reads newline-delimited requests from r and writes one response
// line per request to w, until r is exhausted or ctx is cancelled.
// A line that is not a valid request gets an INVALID_INPUT response.
func (h *Handler) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	enc := json.NewEncoder(w)

	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := sc.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		var resp Response
		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			resp = Response{
				ID:    uuid.NewString(),
				Error: fmt.Sprintf("invalid request: %v", err),
				Code:  vecerrors.ErrCodeInvalidInput,
			}
		} else {
			resp = h.Handle(ctx, req)
		}
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
	}
	return sc.Err()
}
