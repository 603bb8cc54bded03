package script_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/inputflow/pkg/inputflow"
	"github.com/randalmurphal/inputflow/pkg/inputflow/config"
	"github.com/randalmurphal/inputflow/pkg/inputflow/script"
	"github.com/randalmurphal/inputflow/pkg/inputflow/simulators/recorder"
)

// playScript builds and plays the script at path on a fresh recorder.
func playScript(t *testing.T, path string, opts ...script.BuildOption) (inputflow.Flow[*recorder.Recorder], *recorder.Recorder) {
	t.Helper()
	s, err := script.Load(path)
	require.NoError(t, err)

	flow, err := script.Build[*recorder.Recorder](s, opts...)
	require.NoError(t, err)

	rec := recorder.New()
	flow.Play(rec)
	return flow, rec
}

func TestBuild_Golden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, name := range []string{"alt_tab", "drag", "shortcuts"} {
		t.Run(name, func(t *testing.T) {
			flow, rec := playScript(t, "testdata/"+name+".yaml")
			out := fmt.Sprintf("display:\n%s\n\ntrace:\n%s\n", flow, rec)
			g.Assert(t, name, []byte(out))
		})
	}
}

func TestBuild_SpinPrecision(t *testing.T) {
	flow, rec := playScript(t, "testdata/alt_tab.yaml",
		script.WithPrecision(config.PrecisionSpin),
		script.WithSpinThreshold(time.Millisecond),
	)
	assert.Contains(t, flow.String(), "spin sleep 10ms")
	assert.Equal(t, 6, rec.Len())
}

func TestBuild_FromSettings(t *testing.T) {
	settings := config.Default()
	settings.Playback.Precision = config.PrecisionSpin

	flow, _ := playScript(t, "testdata/alt_tab.yaml", script.FromSettings(settings))
	assert.Contains(t, flow.String(), "spin sleep")
}

func TestBuild_SleepWaits(t *testing.T) {
	start := time.Now()
	playScript(t, "testdata/alt_tab.yaml")
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestBuild_UnknownPrecision(t *testing.T) {
	s, err := script.Load("testdata/drag.yaml")
	require.NoError(t, err)

	_, err = script.Build[*recorder.Recorder](s, script.WithPrecision("busy"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown sleep precision "busy"`)
}

func TestBuild_InvalidScript(t *testing.T) {
	_, err := script.Build[*recorder.Recorder](nil)
	assert.ErrorIs(t, err, script.ErrInvalidScript)

	_, err = script.Build[*recorder.Recorder](&script.Script{Name: "empty"})
	assert.ErrorIs(t, err, script.ErrInvalidScript)
}

func TestBuild_ReplayIsIdentical(t *testing.T) {
	flow, rec := playScript(t, "testdata/drag.yaml")
	first := rec.Trace()

	rec.Reset()
	flow.Play(rec)
	assert.Equal(t, first, rec.Trace())
}
