// Package script loads input scripts from YAML and builds them into
// playable flows.
//
// A script is a list of steps. Each step names exactly one action:
//
//	name: alt-tab
//	steps:
//	  - hold:
//	      key: alt
//	      do:
//	        - click: tab
//	        - sleep: 100ms
//	        - click: tab
//	  - move_to: [640, 360]
//	  - tap: left
//	  - type: "hello"
//
// Key and button names are matched without regard to case and accept the
// aliases understood by inputs.ParseKey and inputs.ParseButton. Sleeps
// take a Go duration ("250ms", "1.5s") or a bare number of milliseconds.
// Coordinates take either [x, y] or {x: .., y: ..}.
//
// Build checks every name and turns the steps into a static composition
// over any simulator that implements inputs.Simulator.
package script
