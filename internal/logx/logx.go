// Package logx contains the apex/log handler used by the linkemu
// command line tools.
package logx

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"
	colorable "github.com/mattn/go-colorable"
)

// Handler implements the log handler required by github.com/apex/log.
type Handler struct {
	// Emoji is OPTIONAL and indicates whether to use emojis
	// instead of the level name.
	Emoji bool

	// StartTime is MANDATORY and is the time when we started logging.
	StartTime time.Time

	// Writer is MANDATORY and is the underlying writer.
	Writer io.Writer

	mu sync.Mutex
}

var _ log.Handler = &Handler{}

// NewHandlerWithDefaultSettings creates a [Handler] writing
// to the standard error with the default settings.
func NewHandlerWithDefaultSettings() *Handler {
	return &Handler{
		Emoji:     false,
		StartTime: time.Now(),
		Writer:    colorable.NewColorableStderr(),
	}
}

// NewLogger creates a new apex/log logger using handler. The level
// is Debug when verbose is true and Info otherwise.
func NewLogger(handler log.Handler, verbose bool) *log.Logger {
	logger := &log.Logger{Level: log.InfoLevel, Handler: handler}
	if verbose {
		logger.Level = log.DebugLevel
	}
	return logger
}

// emojis maps levels to emojis.
var emojis = map[log.Level]string{
	log.DebugLevel: "🧐",
	log.InfoLevel:  "🗒️ ",
	log.WarnLevel:  "🔥",
	log.ErrorLevel: "💥",
	log.FatalLevel: "💀",
}

// HandleLog implements log.Handler
func (h *Handler) HandleLog(e *log.Entry) (err error) {
	level := fmt.Sprintf("<%s>", e.Level)
	if h.Emoji {
		if emoji, found := emojis[e.Level]; found {
			level = emoji
		}
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%14.6f] %s %s", time.Since(h.StartTime).Seconds(), level, e.Message)
	if names := e.Fields.Names(); len(names) > 0 {
		sb.WriteString(":")
		for _, name := range names {
			fmt.Fprintf(&sb, " %s=%v", name, e.Fields.Get(name))
		}
	}
	sb.WriteString("\n")
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.Writer.Write([]byte(sb.String()))
	return
}
