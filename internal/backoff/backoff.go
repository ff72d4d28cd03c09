// Package backoff wraps calls to the model host with bounded retries and
// randomized exponential backoff. The policy retries on any error from the
// wrapped call; after the attempt budget is spent the last error is returned.
package backoff

import (
	"context"
	"math/rand/v2"
	"time"
)

// Defaults mirror the production policy: up to 6 attempts with randomized
// exponential waits bounded to [1s, 60s].
const (
	DefaultMaxAttempts = 6
	DefaultFloor       = 1 * time.Second
	DefaultCeiling     = 60 * time.Second
)

// Policy describes a bounded randomized-exponential retry schedule.
type Policy struct {
	MaxAttempts int
	Floor       time.Duration // lower bound for every wait
	Ceiling     time.Duration // upper bound for every wait

	// Sleep waits for d or until ctx is done. Nil means a timer-based wait.
	// Injectable so tests don't spend wall-clock time.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Default returns the production policy.
func Default() Policy {
	return Policy{
		MaxAttempts: DefaultMaxAttempts,
		Floor:       DefaultFloor,
		Ceiling:     DefaultCeiling,
	}
}

// Delay returns the randomized wait before retry number attempt (1-based:
// attempt 1 is the wait after the first failure). The wait is drawn uniformly
// from [Floor, min(Ceiling, Floor<<attempt)]. Jitter keeps concurrent runs
// against the same host from retrying in lockstep.
func (p Policy) Delay(attempt int) time.Duration {
	upper := p.Ceiling
	// Guard the shift: beyond ~30 doublings the ceiling always wins.
	if attempt < 30 {
		if exp := p.Floor << attempt; exp < upper {
			upper = exp
		}
	}
	if upper <= p.Floor {
		return p.Floor
	}
	return p.Floor + rand.N(upper-p.Floor)
}

// Do invokes fn until it succeeds, the attempt budget is exhausted, or ctx is
// cancelled during a wait. It retries on any error — the policy deliberately
// does not classify retryable vs. non-retryable failures. The last error is
// returned once attempts run out.
func Do[T any](ctx context.Context, p Policy, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = DefaultMaxAttempts
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepCtx
	}

	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err
		if attempt == p.MaxAttempts {
			break
		}
		if err := sleep(ctx, p.Delay(attempt)); err != nil {
			return zero, err
		}
	}
	return zero, lastErr
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
