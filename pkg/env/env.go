// Package env keeps names of environment variables with special significance to
// dumbjshell.
package env

// Environment variables with special significance to dumbjshell.
const (
	HOME            = "HOME"
	XDG_CONFIG_HOME = "XDG_CONFIG_HOME"
	XDG_DATA_HOME   = "XDG_DATA_HOME"
)
