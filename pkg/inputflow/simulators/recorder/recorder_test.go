package recorder

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/inputflow/pkg/inputflow"
	"github.com/randalmurphal/inputflow/pkg/inputflow/inputs"
)

func TestNew_Defaults(t *testing.T) {
	r := New()
	assert.Equal(t, "recorder", r.Name())
	assert.Zero(t, r.Len())
	assert.Empty(t, r.Trace())
	assert.Equal(t, "", r.String())
}

func TestWithName(t *testing.T) {
	assert.Equal(t, "left-hand", New(WithName("left-hand")).Name())
	assert.Equal(t, "recorder", New(WithName("")).Name())
}

func TestRecorder_RecordsCatalogue(t *testing.T) {
	r := New()
	r.SimulateKey(inputs.Home.Down())
	r.SimulateButton(inputs.Right.Up())
	r.SimulateChar(inputs.Char('q').Down())
	r.SimulateMoveTo(inputs.Cursor.MoveTo(5, 6))
	r.SimulateMoveBy(inputs.Cursor.MoveBy(-1, 1))
	r.SimulateScroll(inputs.Wheel.ScrollBy(0, 3))

	assert.Equal(t, []string{
		"set Home to true",
		"set Right to false",
		"set 'q' to true",
		"set MousePosition to (5, 6)",
		"change MousePosition by (-1, 1)",
		"change MouseScroll by (0, 3)",
	}, r.Trace())
	assert.Equal(t, 6, r.Len())
}

func TestRecorder_TraceIsACopy(t *testing.T) {
	r := New()
	r.SimulateKey(inputs.A.Down())

	trace := r.Trace()
	trace[0] = "tampered"
	assert.Equal(t, "set A to true", r.Trace()[0])
}

func TestRecorder_Reset(t *testing.T) {
	r := New()
	r.SimulateKey(inputs.A.Down())
	r.Reset()
	assert.Zero(t, r.Len())
}

func TestRecorder_String(t *testing.T) {
	r := New()
	r.SimulateKey(inputs.A.Down())
	r.SimulateKey(inputs.A.Up())
	assert.Equal(t, "set A to true\nset A to false", r.String())
}

func TestRecorder_Forward(t *testing.T) {
	backend := New(WithName("backend"))
	front := New(WithForward(backend))

	kb := inputs.Keyboard[*Recorder]{}
	m := inputs.Mouse[*Recorder]{}
	ty := inputs.Typist[*Recorder]{}
	kb.Click(inputs.Space).
		Then(m.Click(inputs.Left)).
		Then(m.MoveTo(1, 2)).
		Then(m.MoveBy(3, 4)).
		Then(m.Scroll(0, 1)).
		Then(ty.Click('k')).
		Play(front)

	assert.Equal(t, 10, front.Len())
	assert.Equal(t, front.Trace(), backend.Trace())
}

// beep is an event outside the catalogue.
type beep struct{ hz int }

func (b beep) String() string { return "beep" }

func TestRecord_CustomEvents(t *testing.T) {
	r := New()
	inputflow.Bind(beep{hz: 440}, Record[beep]).Then(inputs.Keyboard[*Recorder]{}.Down(inputs.B)).Play(r)

	assert.Equal(t, []string{"beep", "set B to true"}, r.Trace())
}

func TestRecorder_TrySimulate(t *testing.T) {
	r := New()

	for _, e := range []any{
		inputs.A.Down(),
		inputs.Left.Down(),
		inputs.Char('a').Down(),
		inputs.Cursor.MoveTo(0, 0),
		inputs.Cursor.MoveBy(0, 0),
		inputs.Wheel.ScrollBy(0, 0),
	} {
		assert.True(t, r.Supports(e))
		require.NoError(t, r.TrySimulate(e))
	}
	assert.Equal(t, 6, r.Len())

	assert.False(t, r.Supports(beep{}))
	err := r.TrySimulate(beep{})
	assert.ErrorIs(t, err, inputflow.ErrUnsupported)
	assert.Equal(t, 6, r.Len(), "rejected events are not recorded")
}

// wheelless forwards everything except scrolling.
type wheelless struct{ *Recorder }

func (w wheelless) Supports(event any) bool {
	_, scroll := event.(inputs.ScrollEvent)
	return !scroll
}

func TestRecorder_SupportsAsksForwardTarget(t *testing.T) {
	backend := New(WithName("backend"))
	r := New(WithForward(wheelless{backend}))

	assert.True(t, r.Supports(inputs.A.Down()))
	assert.False(t, r.Supports(inputs.Wheel.ScrollBy(0, 1)))

	err := inputflow.TryPlay(inputs.Wheel.ScrollBy(0, 1), r)
	assert.ErrorIs(t, err, inputflow.ErrUnsupported)
	assert.Zero(t, r.Len())
	assert.Zero(t, backend.Len())

	_, err = inputflow.TryBind(inputs.Wheel.ScrollBy(0, 1), r)
	assert.ErrorIs(t, err, inputflow.ErrUnsupported)

	require.NoError(t, inputflow.TryPlay(inputs.A.Down(), r))
	assert.Equal(t, []string{"set A to true"}, backend.Trace())
}

func TestRecorder_TryBind(t *testing.T) {
	r := New()
	p, err := inputflow.TryBind(inputs.Enter.Down(), r)
	require.NoError(t, err)
	p.Run()
	assert.Equal(t, []string{"set Enter to true"}, r.Trace())

	_, err = inputflow.TryBind(beep{}, r)
	assert.ErrorIs(t, err, inputflow.ErrUnsupported)
}

func TestRecorder_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := New(WithLogger(logger), WithName("logged"))

	r.SimulateKey(inputs.Z.Down())

	out := buf.String()
	assert.Contains(t, out, `"msg":"event simulated"`)
	assert.Contains(t, out, `"simulator":"logged"`)
	assert.Contains(t, out, `"event":"set Z to true"`)
}

func TestRecorder_Concurrent(t *testing.T) {
	r := New()
	kb := inputs.Keyboard[*Recorder]{}
	flow := kb.Click(inputs.A).Repeat(50)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			flow.Play(r)
		}()
	}
	wg.Wait()

	assert.Equal(t, 8*50*2, r.Len())
}

func TestRecorder_PlayedThroughRun(t *testing.T) {
	r := New()
	r.SimulateKey(inputs.F5.Down())

	ctx := inputflow.NewContext(t.Context())
	err := inputflow.Run(ctx, inputs.Keyboard[*Recorder]{}.Click(inputs.F6), r)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Len())
}
