// Package simulate sends batches of packets through a link and
// summarizes what happened to them.
package simulate

import (
	"context"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"github.com/ooni/linkemu/internal/model"
	"github.com/ooni/linkemu/internal/netem"
	"github.com/ooni/linkemu/internal/runtimex"
)

// PacketFactory creates the idx-th packet of a run.
type PacketFactory[T model.Payload] func(idx int) *model.Packet[T]

// Runner sends packets through a link one after the other. The zero
// value is invalid; please, fill all the MANDATORY fields.
type Runner[T model.Payload] struct {
	// Link is the MANDATORY link to use.
	Link *netem.LinkEmulator[T]

	// Factory is the MANDATORY factory creating the packets.
	Factory PacketFactory[T]

	// Logger is the OPTIONAL logger.
	Logger model.Logger
}

// Summary describes the outcome of a run.
type Summary struct {
	// RunID uniquely identifies the run.
	RunID string

	// Sent is the number of packets sent.
	Sent int

	// Delivered is the number of packets delivered.
	Delivered int

	// Lost is the number of packets lost.
	Lost int

	// Corrupted is the number of delivered packets that were corrupted.
	Corrupted int

	// Duplicated is the number of delivered packets that were duplicated.
	Duplicated int

	// DelayMean, DelayMedian, DelayP95 and DelayMax are the delay
	// statistics in milliseconds over the delivered packets.
	DelayMean   float64
	DelayMedian float64
	DelayP95    float64
	DelayMax    float64
}

// LossRate returns the fraction of lost packets.
func (s *Summary) LossRate() float64 {
	if s.Sent <= 0 {
		return 0
	}
	return float64(s.Lost) / float64(s.Sent)
}

// Run sends count packets. The onProgress callback, if not nil, is
// called after each packet with the number of packets sent so far.
// Run stops early when ctx is done and returns the partial summary
// along with the context error.
func (r *Runner[T]) Run(ctx context.Context, count int, onProgress func(sent int)) (*Summary, error) {
	runtimex.Assert(r.Link != nil, "simulate: Runner.Link is nil")
	runtimex.Assert(r.Factory != nil, "simulate: Runner.Factory is nil")
	logger := model.ValidLoggerOrDefault(r.Logger)
	summary := &Summary{RunID: uuid.NewString()}
	logger.Infof("simulate: run %s: sending %d packets", summary.RunID, count)

	var delays stats.Float64Data
	var err error
	for idx := 0; idx < count; idx++ {
		if err = ctx.Err(); err != nil {
			logger.Warnf("simulate: run %s: interrupted: %s", summary.RunID, err.Error())
			break
		}
		pkt := r.Factory(idx)
		summary.Sent++
		if !r.Link.Send(pkt) {
			summary.Lost++
		} else {
			summary.Delivered++
			delays = append(delays, float64(pkt.Delay()))
			if pkt.IsCorrupted() {
				summary.Corrupted++
			}
			if pkt.IsDuplicate() {
				summary.Duplicated++
			}
		}
		if onProgress != nil {
			onProgress(summary.Sent)
		}
	}

	summary.computeDelayStats(delays)
	logger.Infof("simulate: run %s: delivered %d/%d packets", summary.RunID, summary.Delivered, summary.Sent)
	return summary, err
}

// computeDelayStats fills the delay statistics. All the functions
// we use only fail on empty input, in which case we keep zeros.
func (s *Summary) computeDelayStats(delays stats.Float64Data) {
	if delays.Len() <= 0 {
		return
	}
	s.DelayMean, _ = stats.Mean(delays)
	s.DelayMedian, _ = stats.Median(delays)
	s.DelayP95, _ = stats.Percentile(delays, 95)
	s.DelayMax, _ = stats.Max(delays)
}
