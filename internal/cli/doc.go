// Package cli renders color reports for the headless rgbctl commands as a
// table, JSON or YAML.
package cli
