package network

import (
	"math/rand"
	"time"
)

// mathRandDelay is the default RandomDelay, sampling uniformly over
// [0, maxRandomDelayMillis] the way the original stack samples a
// uniform 0..153ms jitter before an internal CF first requests an
// address claim. math/rand is the idiomatic stdlib choice here: none
// of the example repositories reach for a third-party RNG for simple
// jitter like this.
type mathRandDelay struct {
	r *rand.Rand
}

func newMathRandDelay() *mathRandDelay {
	return &mathRandDelay{r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (d *mathRandDelay) Sample() time.Duration {
	return time.Duration(d.r.Intn(maxRandomDelayMillis+1)) * time.Millisecond
}
