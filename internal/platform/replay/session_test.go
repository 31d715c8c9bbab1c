package replay

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/a11y-reporter/internal/logging"
	"github.com/mj1618/a11y-reporter/internal/model"
	"github.com/mj1618/a11y-reporter/internal/platform"
	"github.com/mj1618/a11y-reporter/internal/reporter"
)

// callLog records the callbacks a session delivers.
type callLog struct {
	calls []string
}

func (c *callLog) OnConnected()           { c.calls = append(c.calls, "connect") }
func (c *callLog) OnEvent(ev model.Event) { c.calls = append(c.calls, "event:"+ev.Type.String()) }
func (c *callLog) OnInterrupt()           { c.calls = append(c.calls, "interrupt") }

func TestSession_DeliversStepsInOrder(t *testing.T) {
	rec, err := Load("testdata/settings.yaml")
	require.NoError(t, err)

	s := NewSession(rec, nil)
	var calls callLog
	require.NoError(t, s.Run(context.Background(), &calls))

	assert.Equal(t, []string{
		"connect",
		"event:TYPE_WINDOW_STATE_CHANGED",
		"event:TYPE_VIEW_CLICKED",
		"interrupt",
		"event:unknown (33554432)",
	}, calls.calls)
	assert.Equal(t, 5, s.StepsDelivered())
	assert.NotEmpty(t, s.ID())
}

func TestSession_ConnectsBeforeFirstEvent(t *testing.T) {
	rec, err := Load("testdata/settings.json")
	require.NoError(t, err)

	var calls callLog
	require.NoError(t, NewSession(rec, nil).Run(context.Background(), &calls))
	assert.Equal(t, []string{"connect", "event:TYPE_VIEW_FOCUSED", "interrupt"}, calls.calls)
}

func TestSession_StopsOnCancel(t *testing.T) {
	rec, err := Load("testdata/settings.yaml")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var calls callLog
	err = NewSession(rec, nil).Run(ctx, &calls)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestSession_WithReporter(t *testing.T) {
	rec, err := Load("testdata/settings.yaml")
	require.NoError(t, err)

	s := NewSession(rec, nil)
	out := logging.NewRecorder(logging.LevelVerbose)
	svc := reporter.NewService(s, slog.New(out), reporter.Options{Revision: reporter.RevisionInspector})
	require.NoError(t, s.Run(context.Background(), svc))

	require.Len(t, s.ServiceInfos(), 1)
	assert.Equal(t, reporter.ServiceInfoFor(reporter.RevisionInspector), s.ServiceInfos()[0])

	stats := s.HandleStats()
	assert.Equal(t, 3, stats.Acquired, "only the first event carries a tree")
	assert.Equal(t, 0, stats.Outstanding())
	assert.Equal(t, 0, stats.DoubleReleased)

	msgs := out.Messages(logging.LevelVerbose)
	assert.Contains(t, msgs, "onServiceConnected")
	assert.Contains(t, msgs, "   android.widget.Button; text: Network & internet; contentDescription: ; viewId: com.android.settings:id/network; bounds: [0,200,1080,320]; clickable: true; focused: false")
	assert.Contains(t, msgs, "windows: 2")
	assert.Contains(t, msgs, "dumpNode: no root node, stopping")
	assert.Equal(t, reporter.StateConnected, svc.State())
}

func TestNodeHandle_DoubleReleaseCounted(t *testing.T) {
	rec := &Recording{Steps: []Step{{Event: &model.Event{Type: model.TypeViewClicked}, Root: &model.NodeInfo{Class: "a"}}}}
	s := NewSession(rec, nil)
	s.root = rec.Steps[0].Root

	n := s.RootInActiveWindow()
	require.NotNil(t, n)
	n.Recycle()
	n.Recycle()

	stats := s.HandleStats()
	assert.Equal(t, 1, stats.Acquired)
	assert.Equal(t, 1, stats.Released)
	assert.Equal(t, 1, stats.DoubleReleased)
}

func TestNodeHandle_ChildOutOfRange(t *testing.T) {
	s := NewSession(&Recording{}, nil)
	s.root = &model.NodeInfo{Class: "a", Children: []model.NodeInfo{{Class: "b"}}}

	platform.Visit(s.RootInActiveWindow(), func(n platform.Node) {
		assert.Equal(t, 1, n.ChildCount())
		assert.Nil(t, n.Child(1))
		assert.Nil(t, n.Child(-1))
		platform.Visit(n.Child(0), func(c platform.Node) {
			assert.Contains(t, c.String(), "b; text:")
		})
	})
	assert.Equal(t, 0, s.HandleStats().Outstanding())
}

func TestBackendRegistered(t *testing.T) {
	sess, err := platform.Open(BackendName, "testdata/settings.yaml")
	require.NoError(t, err)
	assert.IsType(t, &Session{}, sess)
}

func TestSession_ResubmittedServiceInfoIgnored(t *testing.T) {
	rec := &Recording{Name: "reconnect", Steps: []Step{
		{Connect: true},
		{Interrupt: true},
		{Connect: true},
	}}
	s := NewSession(rec, nil)
	svc := reporter.NewService(s, nil, reporter.Options{Revision: reporter.RevisionInspector})
	require.NoError(t, s.Run(context.Background(), svc))

	assert.Equal(t, 2, svc.Stats().Connects)
	require.Len(t, s.ServiceInfos(), 1)

	s.SetServiceInfo(reporter.ServiceInfoFor(reporter.RevisionBasic))
	assert.Len(t, s.ServiceInfos(), 2, "a different configuration is installed")
}
