/*
Package inputflow composes synthetic keyboard and mouse input.

# Overview

inputflow describes input as values. An Event[S] is anything that can be
played against a simulator of type S; atomic events such as SetTo and
ChangeBy say what should happen to one input, and combinators arrange
them in time:
  - Seq and Then play events in order
  - Repeat plays an event a fixed number of times
  - During holds an invertible event around another and releases it after
  - OnlyIf and OnlyWhen include an event conditionally
  - Sleep and SpinSleep pause between events

Nothing here knows about real devices. A simulator is any type that
realizes atomic events; the inputs package catalogues common keys,
buttons and pointer events, and the simulators packages record or inject
them.

# Basic Usage

Bind an atomic event to the function that realizes it, then build a flow:

	kb := inputs.Keyboard[*recorder.Recorder]{}
	altTab := kb.Click(inputs.Tab).During(kb.Down(inputs.Alt))

	rec := recorder.New()
	altTab.Play(rec)
	fmt.Println(rec.Trace())
	// [set Alt to true set Tab to true set Tab to false set Alt to false]

Bind and BindToggle attach a simulate function to an event value. A
Toggle also knows its inverse, which is what During needs to release a
held key. Flow is a fluent builder over any event:

	flow := inputflow.From[*recorder.Recorder](altTab).
	    SleepMs(50).
	    Then(kb.Click(inputs.Enter)).
	    Repeat(3)

# Erased Events

A Pack is an event already bound to its simulator, with the simulator
type erased. Packs lets events for different backends share one list:

	packs := inputflow.Packs{
	    inputflow.Bound(altTab, rec),
	    inputflow.Bound(moveMouse, injector),
	}
	packs.Run()

When event types are only known at runtime, TryPlay, TryPlayAll and
TryBind dispatch through a TrySimulator and report unsupported events as
*UnsupportedError instead of failing to compile.

# Observed Playback

Run, RunPacks and TryRun play through one pipeline that adds structured
logging, optional OpenTelemetry tracing and metrics, panic recovery, and
an optional journal of what each run produced:

	ctx := inputflow.NewContext(context.Background(), inputflow.WithLogger(logger))
	err := inputflow.Run(ctx, flow, rec,
	    inputflow.WithTracing(true),
	    inputflow.WithJournal(store))
*/
package inputflow
