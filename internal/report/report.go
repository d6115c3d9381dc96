// Package report renders the state of simulated packets for humans.
//
// A packet renders as one line. A duplicated packet that was not lost
// renders as two lines: the second line represents the copy, which
// only exists in the report.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/ooni/linkemu/internal/model"
)

// Style contains the colors used to highlight a report.
type Style struct {
	Lost      *color.Color
	Delivered *color.Color
	Delay     *color.Color
	Corrupted *color.Color
	Copy      *color.Color
}

// PlainStyle never emits escape sequences.
var PlainStyle = newStyle(false)

// ColorStyle always emits escape sequences.
var ColorStyle = newStyle(true)

func newStyle(enabled bool) *Style {
	s := &Style{
		Lost:      color.New(color.FgRed, color.Bold),
		Delivered: color.New(color.FgGreen),
		Delay:     color.New(color.FgYellow),
		Corrupted: color.New(color.FgMagenta),
		Copy:      color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{s.Lost, s.Delivered, s.Delay, s.Corrupted, s.Copy} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// Format returns the plain text report of pkt.
func Format[T model.Payload](pkt *model.Packet[T]) string {
	return strings.Join(Lines(pkt, PlainStyle), "\n")
}

// Lines returns the report of pkt as one line, or two lines when
// the packet was duplicated and not lost.
func Lines[T model.Payload](pkt *model.Packet[T], style *Style) []string {
	prefix := fmt.Sprintf(
		"[ID:%d] %s -> %s:%d | Data: %s",
		pkt.ID(),
		pkt.SourceIP(),
		pkt.DestinationIP(),
		pkt.DestinationPort(),
		string(pkt.Data()),
	)
	var sb strings.Builder
	sb.WriteString(prefix)
	if pkt.IsLost() {
		sb.WriteString(" " + style.Lost.Sprint("[LOST]"))
	} else {
		sb.WriteString(" " + style.Delivered.Sprint("[DELIVERED]"))
	}
	if pkt.Delay() > 0 {
		sb.WriteString(style.Delay.Sprintf("[Delay:%dms]", pkt.Delay()))
	}
	if pkt.IsCorrupted() {
		sb.WriteString(" " + style.Corrupted.Sprint("[CORRUPTED]"))
	}
	lines := []string{sb.String()}
	if pkt.IsDuplicate() && !pkt.IsLost() {
		lines = append(lines, prefix+style.Copy.Sprint("(Copy)"))
	}
	return lines
}

// Fprint writes the report of pkt to w, one line per entry.
func Fprint[T model.Payload](w io.Writer, pkt *model.Packet[T], style *Style) error {
	for _, line := range Lines(pkt, style) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
