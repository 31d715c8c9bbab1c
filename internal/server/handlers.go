package server

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"gopkg.in/yaml.v3"

	"github.com/mj1618/a11y-reporter/internal/logging"
	"github.com/mj1618/a11y-reporter/internal/model"
	"github.com/mj1618/a11y-reporter/internal/output"
	"github.com/mj1618/a11y-reporter/internal/platform/replay"
	"github.com/mj1618/a11y-reporter/internal/reporter"
)

func (s *Server) registerTools() {
	// classify_event
	s.mcp.AddTool(
		mcp.NewTool("classify_event",
			mcp.WithDescription("Return the label for an accessibility event type code. Unknown codes yield 'unknown (<code>)'."),
			mcp.WithString("code", mcp.Required(), mcp.Description("Event type code (decimal) or label, e.g. '1' or 'TYPE_VIEW_CLICKED'")),
		),
		s.handleClassify,
	)

	// format_event
	s.mcp.AddTool(
		mcp.NewTool("format_event",
			mcp.WithDescription("Render one accessibility event as the reporter's log line"),
			mcp.WithString("type", mcp.Required(), mcp.Description("Event type code or label")),
			mcp.WithString("class", mcp.Description("Originating class name")),
			mcp.WithString("package", mcp.Description("Originating package name")),
			mcp.WithNumber("time", mcp.Description("Event time in milliseconds")),
			mcp.WithArray("text", mcp.Description("Text fragments, concatenated in order"), mcp.WithStringItems()),
		),
		s.handleFormatEvent,
	)

	// service_info
	s.mcp.AddTool(
		mcp.NewTool("service_info",
			mcp.WithDescription("Show the service configuration submitted to the host on connect"),
			mcp.WithNumber("revision", mcp.Description("Reporter revision: 1 (basic) or 2 (inspector, default)")),
		),
		s.handleServiceInfo,
	)

	// replay
	s.mcp.AddTool(
		mcp.NewTool("replay",
			mcp.WithDescription("Play a recorded accessibility session through the reporter and return its log lines"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Path to a YAML or JSON recording")),
			mcp.WithNumber("revision", mcp.Description("Reporter revision: 1 or 2 (default 2)")),
			mcp.WithNumber("max_depth", mcp.Description("Max node levels dumped per event (0 = unlimited)")),
		),
		s.handleReplay,
	)

	// tree
	s.mcp.AddTool(
		mcp.NewTool("tree",
			mcp.WithDescription("Flatten the node tree recorded with one event step"),
			mcp.WithString("path", mcp.Required(), mcp.Description("Path to a YAML or JSON recording")),
			mcp.WithNumber("step", mcp.Description("Step index (default: first step with a tree)")),
			mcp.WithNumber("against", mcp.Description("Earlier step index; when set, return node changes from that step's tree instead")),
		),
		s.handleTree,
	)
}

// toText serializes v to YAML for an MCP response.
func toText(v interface{}) (*mcp.CallToolResult, error) {
	b, err := yaml.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("yaml encode: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func revisionParam(request mcp.CallToolRequest) (reporter.Revision, error) {
	return reporter.ParseRevision(strconv.Itoa(request.GetInt("revision", int(reporter.RevisionInspector))))
}

func (s *Server) handleClassify(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := request.RequireString("code")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	t, err := model.ParseEventType(code)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toText(output.ClassifyEntry{Code: int(t), Label: t.String(), Known: t.Known()})
}

func (s *Server) handleFormatEvent(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	typ, err := request.RequireString("type")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	t, err := model.ParseEventType(typ)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ev := model.Event{
		Type:        t,
		ClassName:   request.GetString("class", ""),
		PackageName: request.GetString("package", ""),
		Time:        int64(request.GetFloat("time", 0)),
		Text:        request.GetStringSlice("text", nil),
	}
	return mcp.NewToolResultText(reporter.FormatEvent(ev)), nil
}

func (s *Server) handleServiceInfo(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rev, err := revisionParam(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toText(reporter.ServiceInfoFor(rev).Describe())
}

func (s *Server) handleReplay(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rev, err := revisionParam(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rec, err := s.loadRecording(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	lines := logging.NewRecorder(logging.LevelVerbose)
	sess := replay.NewSession(rec, s.logger)
	opts := reporter.Options{Revision: rev, MaxDepth: request.GetInt("max_depth", s.cfg.MaxDepth)}
	svc, err := reporter.Run(ctx, sess, slog.New(lines), opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return toText(output.ReplayResult{
		Session:   sess.ID(),
		Recording: rec.Name,
		Revision:  int(rev),
		Steps:     sess.StepsDelivered(),
		Events:    svc.Stats().Events,
		State:     svc.State().String(),
		Handles:   sess.HandleStats(),
		Lines:     lines.Messages(logging.LevelVerbose),
	})
}

func (s *Server) handleTree(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	rec, err := s.loadRecording(path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if against := request.GetInt("against", -1); against >= 0 {
		diff, err := TreeDiff(rec, against, request.GetInt("step", -1))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toText(diff)
	}
	result, err := TreeAt(rec, request.GetInt("step", -1))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return toText(result)
}

// loadRecording loads path through the cache. A failed load drops any entry
// cached from an earlier, valid version of the file.
func (s *Server) loadRecording(path string) (*replay.Recording, error) {
	rec, err := s.cache.Load(path)
	if err != nil {
		s.cache.Invalidate(path)
		s.logger.Warn("recording load failed", "path", path, "error", err)
		return nil, err
	}
	return rec, nil
}

// TreeAt flattens the tree recorded with step. A negative step selects the
// first step that carries a tree.
func TreeAt(rec *replay.Recording, step int) (output.TreeResult, error) {
	if step < 0 {
		for i, st := range rec.Steps {
			if st.Root != nil {
				step = i
				break
			}
		}
		if step < 0 {
			return output.TreeResult{}, fmt.Errorf("recording %s has no node trees", rec.Name)
		}
	}
	if step >= len(rec.Steps) {
		return output.TreeResult{}, fmt.Errorf("step %d out of range (recording has %d steps)", step, len(rec.Steps))
	}
	st := rec.Steps[step]
	if st.Root == nil {
		return output.TreeResult{}, fmt.Errorf("step %d (%s) has no node tree", step, st.Kind())
	}
	nodes := model.FlattenNodes(*st.Root)
	return output.TreeResult{
		Recording: rec.Name,
		Step:      step,
		Event:     st.Event.Type.String(),
		Count:     len(nodes),
		Nodes:     nodes,
	}, nil
}

// TreeDiff reports the node changes between the trees recorded with steps
// from and to. A negative to selects the first tree after from.
func TreeDiff(rec *replay.Recording, from, to int) (output.TreeDiffResult, error) {
	prev, err := TreeAt(rec, from)
	if err != nil {
		return output.TreeDiffResult{}, err
	}
	if to < 0 {
		for i := from + 1; i < len(rec.Steps); i++ {
			if rec.Steps[i].Root != nil {
				to = i
				break
			}
		}
		if to < 0 {
			return output.TreeDiffResult{}, fmt.Errorf("no node tree after step %d", from)
		}
	}
	curr, err := TreeAt(rec, to)
	if err != nil {
		return output.TreeDiffResult{}, err
	}
	changes := model.DiffNodes(prev.Nodes, curr.Nodes)
	if changes == nil {
		changes = []model.NodeChange{}
	}
	return output.TreeDiffResult{Recording: rec.Name, From: from, To: to, Changes: changes}, nil
}
