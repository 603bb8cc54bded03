package inputs

import "github.com/randalmurphal/inputflow/pkg/inputflow/router"

// Route registers every catalogue event on r, forwarding to sim.
// It lets a static backend serve the fallible path.
func Route(r *router.Router, sim Simulator) *router.Router {
	router.Handle(r, sim.SimulateKey)
	router.Handle(r, sim.SimulateButton)
	router.Handle(r, sim.SimulateChar)
	router.Handle(r, sim.SimulateMoveTo)
	router.Handle(r, sim.SimulateMoveBy)
	router.Handle(r, sim.SimulateScroll)
	return r
}
