package network

import "time"

// Clock abstracts the monotonic time source the address-claim FSM
// samples. The default is the real wall clock; tests inject a fake one
// so FSM trajectories are fully deterministic (spec §8 "FSM
// determinism"), without sleeping real milliseconds in a test run.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// RandomDelay abstracts sampling the 0..153ms random delay an internal
// CF waits before first requesting an address claim (§4.4). The default
// uses math/rand; tests inject a fixed-sequence source for determinism.
type RandomDelay interface {
	// Sample returns a delay in the range [0, maxRandomDelayMillis].
	Sample() time.Duration
}
