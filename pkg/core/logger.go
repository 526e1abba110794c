package core

// Logger receives progress and diagnostic output from the renderer.
// The CLI and the web server plug in their own implementations.
type Logger interface {
	Printf(format string, args ...interface{})
}
