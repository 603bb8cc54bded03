/*
Package config loads inputflow settings from YAML or JSON.

# Raw Access

Config wraps a decoded document and extracts values with defaults:

	cfg, err := config.FromFile("inputflow.yaml")
	if err != nil {
	    log.Fatal(err)
	}
	threshold := cfg.Section("playback").Duration("spin_threshold", time.Millisecond)

Durations accept strings ("250ms") or plain numbers, read as milliseconds.

# Typed Settings

Decode layers a document over Default and validates the result:

	settings, err := config.LoadSettings("inputflow.yaml")
	if err != nil {
	    log.Fatal(err)
	}
	if settings.Playback.Precision == config.PrecisionSpin {
	    // build SpinSleep delays
	}

Validate reports every bad field at once via errors.Join.
*/
package config
