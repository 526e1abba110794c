package server

import (
	"fmt"
	"log"
	"strings"

	"github.com/briancchu/Raycaml/pkg/core"
)

// ServerLogger implements core.Logger by forwarding render progress to the
// standard library logger, tagged with a per-render ID so concurrent
// renders stay distinguishable in the server log.
type ServerLogger struct {
	renderID string
}

// NewServerLogger creates a logger for a specific render
func NewServerLogger(renderID string) core.Logger {
	return &ServerLogger{renderID: renderID}
}

// Printf implements core.Logger interface
func (sl *ServerLogger) Printf(format string, args ...interface{}) {
	message := strings.TrimSuffix(fmt.Sprintf(format, args...), "\n")
	log.Printf("[%s] %s", sl.renderID, message)
}
