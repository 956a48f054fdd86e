// Package config provides configuration management for rgbctl.
//
// Configuration is loaded from YAML files and merged in the following
// order, later sources overriding earlier ones:
//
//  1. Default Configuration (built into the binary)
//  2. User Configuration (~/.config/rgbctl/config.yaml)
//  3. Project Configuration (./.rgbctl/config.yaml)
//
// A single directory can be used instead with LoadConfigFromPath.
//
// # Configuration Structure
//
//	state:
//	  path: "~/.config/rgbctl/state.yaml"  # where the last color and theme live
//	  key: "rgb-picker"                    # record key inside the state document
//	  disabled: false                      # keep state in memory only
//
//	clipboard:
//	  osc52Fallback: true                  # terminal escape fallback for "copy hex"
//	  feedback: 900ms                      # how long the copy confirmation shows
//
//	ui:
//	  step: 1                              # slider movement per key press
//	  bigStep: 16                          # slider movement with shift/page keys
//	  sliderWidth: 32                      # slider track width in cells
//
//	update:
//	  repository: "owner/rgbctl"           # GitHub slug used by self-update
//
// # Usage Example
//
//	cfg, err := config.LoadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, err := cfg.ResolveStatePath()
package config
