// Package router provides a simulator that picks handlers at runtime.
//
// The static path binds every atomic event to a simulator method when the
// description is built, so unsupported pairs never compile. Router is the
// opposite end: handlers are registered per event type while the program
// runs, and events of unregistered types are reported through
// inputflow.ErrUnsupported instead of being played.
//
// # Basic Usage
//
//	r := router.New("macro")
//	router.Handle(r, func(e inputs.KeyEvent) { injector.Key(e) })
//
//	err := inputflow.TryPlay(inputs.Enter.Down(), r)    // handled
//	err = inputflow.TryPlay(inputs.Cursor.MoveTo(1, 1), r) // *UnsupportedError
//
// # Packing
//
// Router implements inputflow.Supporter, so inputflow.TryBind can erase
// supported events into Packs ahead of playback.
package router
