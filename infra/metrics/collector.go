package metrics

import (
	"context"
	"time"

	"github.com/kilianp07/ecoroute/core/logger"
	coremetrics "github.com/kilianp07/ecoroute/core/metrics"
	"github.com/kilianp07/ecoroute/internal/eventbus"
)

// dropReportInterval is how often the collector checks the buses for dropped events.
var dropReportInterval = 30 * time.Second

// StartEventCollector subscribes to the buses and forwards their events to
// sink from a single goroutine. Comparisons are only forwarded when sink
// implements ComparisonRecorder. The returned channel is closed once the
// collector has stopped, which happens when ctx is canceled or both buses
// are closed. Events dropped by full buses are reported with a warning at
// most once per dropReportInterval.
func StartEventCollector(ctx context.Context,
	predictions *eventbus.TypedBus[coremetrics.PredictionEvent],
	comparisons *eventbus.TypedBus[coremetrics.ComparisonEvent],
	sink coremetrics.PredictionSink, log logger.Logger,
) <-chan struct{} {
	done := make(chan struct{})
	if sink == nil || (predictions == nil && comparisons == nil) {
		close(done)
		return done
	}
	var predCh <-chan coremetrics.PredictionEvent
	if predictions != nil {
		predCh = predictions.Subscribe()
	}
	var cmpCh <-chan coremetrics.ComparisonEvent
	if comparisons != nil {
		cmpCh = comparisons.Subscribe()
	}
	rec, _ := sink.(coremetrics.ComparisonRecorder)

	dropped := func() uint64 {
		var n uint64
		if predictions != nil {
			n += predictions.Dropped()
		}
		if comparisons != nil {
			n += comparisons.Dropped()
		}
		return n
	}
	ticker := time.NewTicker(dropReportInterval)

	go func() {
		defer close(done)
		defer ticker.Stop()
		var reported uint64
		defer func() {
			if predictions != nil {
				predictions.Unsubscribe(predCh)
			}
			if comparisons != nil {
				comparisons.Unsubscribe(cmpCh)
			}
		}()
		for predCh != nil || cmpCh != nil {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := dropped(); n > reported {
					log.Warnf("metrics buses dropped %d events (%d total)", n-reported, n)
					reported = n
				}
			case ev, ok := <-predCh:
				if !ok {
					predCh = nil
					continue
				}
				if err := sink.RecordPrediction(ev); err != nil {
					log.Warnf("record prediction %s: %v", ev.ID, err)
				}
			case ev, ok := <-cmpCh:
				if !ok {
					cmpCh = nil
					continue
				}
				if rec == nil {
					continue
				}
				if err := rec.RecordComparison(ev); err != nil {
					log.Warnf("record comparison %s: %v", ev.ID, err)
				}
			}
		}
	}()
	return done
}
