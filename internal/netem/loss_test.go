package netem

import (
	"testing"

	"github.com/ooni/linkemu/internal/model/mocks"
	"github.com/ooni/linkemu/internal/randx"
)

func TestPacketLoss(t *testing.T) {
	const trials = 1000

	countLost := func(probability float64) (lost int) {
		pl := NewPacketLoss[string](randx.NewSource(3), probability)
		for idx := 0; idx < trials; idx++ {
			pkt := newTestPacket("abc")
			pl.Apply(pkt)
			if pkt.IsLost() {
				lost++
			}
		}
		return
	}

	t.Run("zero probability never loses", func(t *testing.T) {
		if n := countLost(0); n != 0 {
			t.Fatal("lost", n, "packets")
		}
	})

	t.Run("unit probability always loses", func(t *testing.T) {
		if n := countLost(1); n != trials {
			t.Fatal("lost only", n, "packets")
		}
	})

	t.Run("negative probability behaves like zero", func(t *testing.T) {
		if NewPacketLoss[string](randx.NewSource(1), -3).Probability() != 0 {
			t.Fatal("not clamped")
		}
		if n := countLost(-3); n != 0 {
			t.Fatal("lost", n, "packets")
		}
	})

	t.Run("probability above one behaves like one", func(t *testing.T) {
		if NewPacketLoss[string](randx.NewSource(1), 7).Probability() != 1 {
			t.Fatal("not clamped")
		}
		if n := countLost(7); n != trials {
			t.Fatal("lost only", n, "packets")
		}
	})

	t.Run("compares the draw with the probability", func(t *testing.T) {
		pl := NewPacketLoss[string](mocks.NewFixedRandomSource(0.5, 0), 0.5)
		pkt := newTestPacket("abc")
		pl.Apply(pkt)
		if pkt.IsLost() {
			t.Fatal("a draw equal to the probability must not trigger")
		}
		pl = NewPacketLoss[string](mocks.NewFixedRandomSource(0.49, 0), 0.5)
		pl.Apply(pkt)
		if !pkt.IsLost() {
			t.Fatal("a draw below the probability must trigger")
		}
	})

	t.Run("String", func(t *testing.T) {
		if s := NewPacketLoss[string](randx.NewSource(1), 0.5).String(); s != "loss(0.5)" {
			t.Fatal("unexpected", s)
		}
	})
}
