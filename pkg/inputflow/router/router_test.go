package router

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/randalmurphal/inputflow/pkg/inputflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type press struct{ key string }
type scroll struct{ by int }

func TestNew(t *testing.T) {
	r := New("")
	assert.Equal(t, "router", r.Name())
	assert.Equal(t, 0, r.Len())
}

func TestHandleAndTrySimulate(t *testing.T) {
	var got []string
	r := New("test")
	Handle(r, func(e press) { got = append(got, e.key) })

	require.NoError(t, r.TrySimulate(press{key: "a"}))
	require.NoError(t, r.TrySimulate(press{key: "b"}))
	assert.Equal(t, []string{"a", "b"}, got)

	err := r.TrySimulate(scroll{by: 1})
	assert.ErrorIs(t, err, inputflow.ErrUnsupported)
	assert.Len(t, got, 2, "rejected event has no effect")
}

func TestHandle_ExactType(t *testing.T) {
	r := New("test")
	Handle(r, func(e press) {})

	assert.True(t, r.Supports(press{}))
	assert.False(t, r.Supports(&press{}), "pointer type is distinct")
	assert.False(t, r.Supports(nil))
}

func TestHandle_Replace(t *testing.T) {
	var first, second int
	r := New("test")
	Handle(r, func(press) { first++ })
	Handle(r, func(press) { second++ })

	require.NoError(t, r.TrySimulate(press{}))
	assert.Equal(t, 0, first)
	assert.Equal(t, 1, second)
	assert.Equal(t, 1, r.Len())
}

func TestHandle_NilPanics(t *testing.T) {
	assert.Panics(t, func() { Handle[press](New("x"), nil) })
}

func TestUnhandle(t *testing.T) {
	r := New("test")
	Handle(r, func(press) {})
	Unhandle[press](r)
	assert.False(t, r.Supports(press{}))
}

func TestTypes(t *testing.T) {
	r := New("test")
	Handle(r, func(scroll) {})
	Handle(r, func(press) {})
	assert.Equal(t, []string{"router.press", "router.scroll"}, r.Types())
}

func TestTryPlay_ThroughRouter(t *testing.T) {
	var n int
	r := Handle(New("test"), func(press) { n++ })

	require.NoError(t, inputflow.TryPlay(press{key: "x"}, r))
	assert.Equal(t, 1, n)

	err := inputflow.TryPlay(scroll{}, r)
	var unsupported *inputflow.UnsupportedError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, scroll{}, unsupported.Event)
	assert.Equal(t, "test", unsupported.Simulator)
}

func TestTryBind_ThroughRouter(t *testing.T) {
	var n int
	r := Handle(New("test"), func(press) { n++ })

	pack, err := inputflow.TryBind(press{key: "q"}, r)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "binding does not play")
	pack.Run()
	pack.Clone().Run()
	assert.Equal(t, 2, n)

	_, err = inputflow.TryBind(scroll{}, r)
	assert.ErrorIs(t, err, inputflow.ErrUnsupported)
}

func TestConcurrent(t *testing.T) {
	var count atomic.Int64
	r := New("test")
	Handle(r, func(press) { count.Add(1) })

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = r.TrySimulate(press{})
				Handle(r, func(scroll) {})
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(1000), count.Load())
}
