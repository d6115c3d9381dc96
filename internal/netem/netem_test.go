package netem

import (
	"testing"

	"github.com/ooni/linkemu/internal/model"
	"github.com/ooni/linkemu/internal/model/mocks"
)

// newTestPacket returns a packet carrying data.
func newTestPacket[T model.Payload](data T) *model.Packet[T] {
	return model.NewPacket("192.168.1.10", "8.8.8.8", 12345, 80, data)
}

// alwaysLose is a disturbance that marks every packet as lost.
func alwaysLose[T model.Payload]() *mocks.Disturbance[T] {
	return &mocks.Disturbance[T]{
		MockApply: func(pkt *model.Packet[T]) {
			pkt.MarkAsLost()
		},
	}
}

func TestClampProbability(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect float64
	}{
		{"negative", -3, 0},
		{"zero", 0, 0},
		{"in range", 0.5, 0.5},
		{"one", 1, 1},
		{"above one", 7, 1},
		{"slightly above one", 1.4, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampProbability(tt.input); got != tt.expect {
				t.Fatal("expected", tt.expect, "got", got)
			}
		})
	}

	t.Run("NaN", func(t *testing.T) {
		var zero float64
		if got := ClampProbability(zero / zero); got != 0 {
			t.Fatal("expected zero, got", got)
		}
	})
}

func TestBandwidth(t *testing.T) {
	if Bandwidth(0).normalize() != MinBandwidth || Bandwidth(-5).normalize() != MinBandwidth {
		t.Fatal("non-positive bandwidth not normalized")
	}
	if Bandwidth(10).normalize() != 10 {
		t.Fatal("positive bandwidth modified")
	}
	if Bandwidth(10000).String() != "10.00 kB/ms" {
		t.Fatal("unexpected string", Bandwidth(10000).String())
	}
}
