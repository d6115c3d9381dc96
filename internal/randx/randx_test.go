package randx

import (
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ooni/linkemu/internal/model/mocks"
)

func TestSourceIsDeterministic(t *testing.T) {
	draw := func(s *Source) (out []float64) {
		for idx := 0; idx < 16; idx++ {
			out = append(out, s.Float64(), float64(s.IntN(100)))
		}
		return
	}
	first, second := draw(NewSource(42)), draw(NewSource(42))
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatal(diff)
	}
	if cmp.Equal(first, draw(NewSource(43))) {
		t.Fatal("different seeds produced the same sequence")
	}
}

func TestSourceRanges(t *testing.T) {
	s := NewSourceFromTime()
	for idx := 0; idx < 10000; idx++ {
		if v := s.Float64(); v < 0 || v >= 1 {
			t.Fatal("Float64 out of range", v)
		}
		if v := s.IntN(7); v < 0 || v >= 7 {
			t.Fatal("IntN out of range", v)
		}
	}
}

func TestSourceIsSafeForConcurrentUse(t *testing.T) {
	s := NewSource(1)
	wg := &sync.WaitGroup{}
	for idx := 0; idx < 8; idx++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				_ = s.Float64()
				_ = s.IntN(10)
			}
		}()
	}
	wg.Wait()
}

func TestIntRange(t *testing.T) {
	t.Run("covers the closed interval", func(t *testing.T) {
		s := NewSource(7)
		seen := make(map[int]bool)
		for idx := 0; idx < 1000; idx++ {
			v := IntRange(s, 5, 10)
			if v < 5 || v > 10 {
				t.Fatal("out of range", v)
			}
			seen[v] = true
		}
		if len(seen) != 6 {
			t.Fatal("expected to see every value in [5, 10]", seen)
		}
	})

	t.Run("passes the interval width", func(t *testing.T) {
		var width int
		rs := &mocks.RandomSource{
			MockIntN: func(n int) int {
				width = n
				return n - 1
			},
		}
		if v := IntRange(rs, 100, 300); v != 300 {
			t.Fatal("unexpected value", v)
		}
		if width != 201 {
			t.Fatal("unexpected width", width)
		}
	})

	t.Run("handles intervals wider than MaxInt", func(t *testing.T) {
		var width int
		rs := &mocks.RandomSource{
			MockIntN: func(n int) int {
				width = n
				return n - 1
			},
		}
		if v := IntRange(rs, 0, math.MaxInt); v != math.MaxInt-1 {
			t.Fatal("unexpected value", v)
		}
		if width != math.MaxInt {
			t.Fatal("unexpected width", width)
		}
		if v := IntRange(rs, math.MinInt, math.MaxInt); v != math.MinInt+math.MaxInt-1 {
			t.Fatal("unexpected value", v)
		}
		s := NewSource(3)
		for idx := 0; idx < 1000; idx++ {
			if v := IntRange(s, 10, math.MaxInt); v < 10 {
				t.Fatal("out of range", v)
			}
		}
	})
}
