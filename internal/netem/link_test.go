package netem

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ooni/linkemu/internal/model"
	"github.com/ooni/linkemu/internal/model/mocks"
	"github.com/ooni/linkemu/internal/randx"
)

// tracer returns a disturbance appending name to trace.
func tracer(trace *[]string, name string) *mocks.Disturbance[string] {
	return &mocks.Disturbance[string]{
		MockApply: func(pkt *model.Packet[string]) {
			*trace = append(*trace, name)
		},
		MockString: func() string {
			return name
		},
	}
}

func TestLinkEmulator(t *testing.T) {
	t.Run("empty link delivers untouched packets", func(t *testing.T) {
		link := NewLinkEmulator[string](nil)
		pkt := newTestPacket("abc")
		if !link.Send(pkt) {
			t.Fatal("expected delivery")
		}
		if pkt.Delay() != 0 || pkt.IsCorrupted() || pkt.IsDuplicate() {
			t.Fatal("packet modified")
		}
	})

	t.Run("applies every effect once in registration order", func(t *testing.T) {
		var trace []string
		link := NewLinkEmulator[string](model.DiscardLogger)
		link.Append(tracer(&trace, "a")).Append(tracer(&trace, "b")).Append(tracer(&trace, "c"))
		link.Append(tracer(&trace, "a"))
		if link.Len() != 4 {
			t.Fatal("unexpected length", link.Len())
		}
		if !link.Send(newTestPacket("abc")) {
			t.Fatal("expected delivery")
		}
		if diff := cmp.Diff([]string{"a", "b", "c", "a"}, trace); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("stops at the first loss", func(t *testing.T) {
		link := NewLinkEmulator[string](model.DiscardLogger)
		link.Append(alwaysLose[string]()).Append(NewThrottle[string](1))
		pkt := newTestPacket("veryLongText")
		if link.Send(pkt) {
			t.Fatal("expected failure")
		}
		if pkt.Delay() != 0 {
			t.Fatal("throttle ran after loss", pkt.Delay())
		}
	})

	t.Run("effects before the loss still apply", func(t *testing.T) {
		var trace []string
		link := NewLinkEmulator[string](model.DiscardLogger)
		link.Append(tracer(&trace, "before"))
		link.Append(NewPacketLoss[string](randx.NewSource(1), 1))
		link.Append(tracer(&trace, "after"))
		if link.Send(newTestPacket("abc")) {
			t.Fatal("expected failure")
		}
		if diff := cmp.Diff([]string{"before"}, trace); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("resending accumulates state", func(t *testing.T) {
		link := NewLinkEmulator[string](model.DiscardLogger)
		link.Append(NewDelay[string](5)).Append(NewThrottle[string](1))
		pkt := newTestPacket("abc")
		previous := 0
		for idx := 0; idx < 10; idx++ {
			if !link.Send(pkt) {
				t.Fatal("expected delivery")
			}
			if pkt.Delay() != previous+8 {
				t.Fatal("expected", previous+8, "got", pkt.Delay())
			}
			previous = pkt.Delay()
		}
	})

	t.Run("a lost packet stays lost when resent", func(t *testing.T) {
		var trace []string
		link := NewLinkEmulator[string](model.DiscardLogger)
		link.Append(tracer(&trace, "a")).Append(tracer(&trace, "b"))
		pkt := newTestPacket("abc")
		pkt.MarkAsLost()
		if link.Send(pkt) {
			t.Fatal("expected failure")
		}
		if diff := cmp.Diff([]string{"a"}, trace); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("logs each effect", func(t *testing.T) {
		var lines []string
		logger := &mocks.Logger{
			MockDebugf: func(format string, v ...any) {
				lines = append(lines, format)
			},
		}
		var trace []string
		link := NewLinkEmulator[string](logger)
		link.Append(tracer(&trace, "a")).Append(alwaysLose[string]())
		link.Send(newTestPacket("abc"))
		if len(lines) != 3 {
			t.Fatal("unexpected log lines", lines)
		}
		if !strings.Contains(lines[2], "lost") {
			t.Fatal("expected the loss to be logged", lines)
		}
	})

	t.Run("nil effect panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("expected a panic")
			}
		}()
		NewLinkEmulator[string](nil).Append(nil)
	})
}

func TestEffectName(t *testing.T) {
	if name := effectName(NewDelay[string](1)); name != "delay(1ms)" {
		t.Fatal("unexpected", name)
	}
	if name := effectName(struct{}{}); name != "struct {}" {
		t.Fatal("unexpected", name)
	}
}
