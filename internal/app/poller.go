package app

import (
	"context"
	"log"
	"time"

	"github.com/five82/mosdash/internal/fetch"
)

const (
	timePollInterval        = 5 * time.Second
	temperaturePollInterval = 2 * time.Minute
)

// Job performs one fetch tick and publishes its result.
type Job func(ctx context.Context)

// RunPoller runs job immediately and then on every tick until ctx is
// cancelled. Each run gets its own goroutine, so a slow request never delays
// the cadence; overlapping runs are allowed and the last to finish wins on
// screen. It blocks until ctx is done.
func RunPoller(ctx context.Context, name string, interval time.Duration, job Job) {
	if interval <= 0 {
		interval = timePollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		go job(ctx)
		select {
		case <-ctx.Done():
			log.Printf("%s poller stopped", name)
			return
		case <-ticker.C:
		}
	}
}

// publishJob adapts a fetch and a publish callback into a Job, logging failures.
func publishJob(name string, get func(context.Context) fetch.Result, publish func(fetch.Result)) Job {
	return func(ctx context.Context) {
		res := get(ctx)
		if ctx.Err() != nil {
			return
		}
		if !res.OK() {
			log.Printf("%s poll failed: %v", name, res.Err)
		}
		publish(res)
	}
}
