// Package mcptools serves color conversion and picker control as Model
// Context Protocol tools, so assistants can drive the same controller the
// terminal picker uses.
package mcptools
