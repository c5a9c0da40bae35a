package network

import (
	"testing"

	"github.com/greenfield-iso/j1939stack/name"
)

func buildName(t *testing.T, identity uint32, selfConfig bool) name.Name {
	t.Helper()
	return name.Build(identity, 0, 0, 0, 0, 0, 0, 0, selfConfig)
}

func TestArbitrateLowerNameWins(t *testing.T) {
	lower := buildName(t, 1, false)
	higher := buildName(t, 2, false)

	if got := arbitrate(lower, higher, false); got != StateSendPreferredAddressClaim {
		t.Errorf("lower NAME contending against higher: got %v, want SendPreferredAddressClaim", got)
	}
}

func TestArbitrateLoserSelfConfigurableMovesToArbitrary(t *testing.T) {
	higher := buildName(t, 2, false)
	lower := buildName(t, 1, false)

	got := arbitrate(higher, lower, true)
	if got != StateSendArbitraryAddressClaim {
		t.Errorf("self-configurable loser: got %v, want SendArbitraryAddressClaim", got)
	}
}

func TestArbitrateLoserNotSelfConfigurableCannotClaim(t *testing.T) {
	higher := buildName(t, 2, false)
	lower := buildName(t, 1, false)

	got := arbitrate(higher, lower, false)
	if got != StateUnableToClaim {
		t.Errorf("non-self-configurable loser: got %v, want UnableToClaim", got)
	}
}
