package benchmarks

import (
	"context"
	"testing"

	"github.com/randalmurphal/inputflow/pkg/inputflow"
	"github.com/randalmurphal/inputflow/pkg/inputflow/inputs"
	"github.com/randalmurphal/inputflow/pkg/inputflow/journal"
)

// nullSim realizes every catalogue event by counting it.
type nullSim struct{ n int }

func (s *nullSim) SimulateKey(inputs.KeyEvent)       { s.n++ }
func (s *nullSim) SimulateButton(inputs.ButtonEvent) { s.n++ }
func (s *nullSim) SimulateChar(inputs.CharEvent)     { s.n++ }
func (s *nullSim) SimulateMoveTo(inputs.MoveToEvent) { s.n++ }
func (s *nullSim) SimulateMoveBy(inputs.MoveByEvent) { s.n++ }
func (s *nullSim) SimulateScroll(inputs.ScrollEvent) { s.n++ }

func (s *nullSim) TrySimulate(event any) error {
	switch event.(type) {
	case inputs.KeyEvent, inputs.ButtonEvent, inputs.CharEvent,
		inputs.MoveToEvent, inputs.MoveByEvent, inputs.ScrollEvent:
		s.n++
		return nil
	}
	return inputflow.ErrUnsupported
}

var (
	kb    = inputs.Keyboard[*nullSim]{}
	mouse = inputs.Mouse[*nullSim]{}
)

func buildLinear(n int) inputflow.Flow[*nullSim] {
	seq := make(inputflow.Seq[*nullSim], 0, n)
	for i := range n {
		seq = append(seq, mouse.MoveTo(i, i))
	}
	return inputflow.From[*nullSim](seq)
}

// buildNested wraps a click in depth modifier brackets.
func buildNested(depth int) inputflow.Flow[*nullSim] {
	mods := []inputs.Key{inputs.Control, inputs.Shift, inputs.Alt, inputs.Meta}
	f := kb.Click(inputs.A)
	for i := range depth {
		f = f.During(kb.Down(mods[i%len(mods)]))
	}
	return f
}

func benchmarkPlay(b *testing.B, flow inputflow.Flow[*nullSim]) {
	sim := &nullSim{}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		flow.Play(sim)
	}
}

// BenchmarkPlay_Linear_10 plays 10 pointer moves.
func BenchmarkPlay_Linear_10(b *testing.B) { benchmarkPlay(b, buildLinear(10)) }

// BenchmarkPlay_Linear_100 plays 100 pointer moves.
func BenchmarkPlay_Linear_100(b *testing.B) { benchmarkPlay(b, buildLinear(100)) }

// BenchmarkPlay_Linear_1000 plays 1000 pointer moves.
func BenchmarkPlay_Linear_1000(b *testing.B) { benchmarkPlay(b, buildLinear(1000)) }

// BenchmarkPlay_Nested_4 plays a click inside four held modifiers.
func BenchmarkPlay_Nested_4(b *testing.B) { benchmarkPlay(b, buildNested(4)) }

// BenchmarkPlay_Nested_32 plays a click inside 32 brackets.
func BenchmarkPlay_Nested_32(b *testing.B) { benchmarkPlay(b, buildNested(32)) }

// BenchmarkPlay_Repeat plays a click 100 times.
func BenchmarkPlay_Repeat(b *testing.B) { benchmarkPlay(b, kb.Click(inputs.Space).Repeat(100)) }

// BenchmarkPlay_Type types a sentence.
func BenchmarkPlay_Type(b *testing.B) {
	benchmarkPlay(b, inputs.Typist[*nullSim]{}.Type("the quick brown fox jumps over the lazy dog"))
}

// BenchmarkClone_Linear_100 copies a 100-event flow.
func BenchmarkClone_Linear_100(b *testing.B) {
	flow := buildLinear(100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = flow.Clone()
	}
}

// BenchmarkPacks_100 runs 100 erased events.
func BenchmarkPacks_100(b *testing.B) {
	sim := &nullSim{}
	packs := make(inputflow.Packs, 0, 100)
	for i := range 100 {
		packs = append(packs, inputflow.Bound[*nullSim](mouse.MoveBy(i, 0), sim))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		packs.Run()
	}
}

// BenchmarkTryPlayAll_100 dispatches 100 dynamic events.
func BenchmarkTryPlayAll_100(b *testing.B) {
	sim := &nullSim{}
	events := make([]any, 0, 100)
	for i := range 100 {
		events = append(events, inputs.Cursor.MoveTo(i, i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = inputflow.TryPlayAll(sim, events, inputflow.SkipUnsupported)
	}
}

// BenchmarkRun_Observed runs through the full pipeline with a journal.
func BenchmarkRun_Observed(b *testing.B) {
	sim := &nullSim{}
	flow := buildLinear(10)
	store := journal.NewMemoryStore()
	defer store.Close()
	ctx := inputflow.NewContext(context.Background(), inputflow.WithContextRunID("bench"))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = inputflow.Run(ctx, flow, sim, inputflow.WithJournal(store))
	}
}
