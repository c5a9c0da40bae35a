package network

import (
	"time"

	"github.com/greenfield-iso/j1939stack/j1939"
	"github.com/greenfield-iso/j1939stack/name"
)

// CFHandle is a lightweight, non-owning reference to a control function
// held by a Manager's arena. Handles side-step the original stack's
// shared-ownership (Rc<RefCell<...>>) design (spec §9): the arena is the
// single owner, and the address table and the list of internal control
// functions each just carry copies of the handle.
type CFHandle int32

// noHandle marks the absence of a control function.
const noHandle CFHandle = -1

// ControlFunction is either an Internal control function — one this
// stack claims an address for — or an External one, for which only an
// observed NAME is known.
type ControlFunction struct {
	name     name.Name
	internal bool
	claim    addressClaimData // only meaningful when internal
}

// Name returns the control function's current NAME.
func (cf *ControlFunction) Name() name.Name { return cf.name }

// IsInternal reports whether this control function has an
// address-claim record owned by this stack.
func (cf *ControlFunction) IsInternal() bool { return cf.internal }

// addressClaimData is the per-internal-CF address-claim record of
// spec §3 ("Address-claim record").
type addressClaimData struct {
	state            AddressClaimingState
	preferredAddress j1939.Address
	enabled          bool
	hasTimestamp     bool
	timestamp        time.Time
	randomDelay      time.Duration
}

// State returns the internal CF's current address-claim FSM state. It
// panics if cf is not internal — callers are expected to check
// IsInternal first, matching the original stack's own panic on the same
// misuse (network_manager.rs update_address_claiming).
func (cf *ControlFunction) State() AddressClaimingState {
	if !cf.internal {
		panic("network: State called on an external control function")
	}
	return cf.claim.state
}

// PreferredAddress returns the internal CF's preferred address.
func (cf *ControlFunction) PreferredAddress() j1939.Address {
	if !cf.internal {
		panic("network: PreferredAddress called on an external control function")
	}
	return cf.claim.preferredAddress
}

// Enabled reports whether the internal CF's address-claim FSM is
// currently enabled.
func (cf *ControlFunction) Enabled() bool {
	if !cf.internal {
		panic("network: Enabled called on an external control function")
	}
	return cf.claim.enabled
}

// SetEnabled toggles the internal CF's address-claim FSM. Disabling it
// resets the FSM to None, clearing any in-progress timestamp.
func (cf *ControlFunction) SetEnabled(enabled bool) {
	if !cf.internal {
		panic("network: SetEnabled called on an external control function")
	}
	cf.claim.enabled = enabled
	if !enabled {
		cf.claim.hasTimestamp = false
		cf.claim.state = StateNone
	}
}

// SetName updates the control function's NAME. For an internal CF with
// an in-progress claim, changing the NAME invalidates the old
// arbitration and resets the FSM to None (spec §4.4).
func (cf *ControlFunction) SetName(n name.Name) {
	if cf.internal && cf.name != n {
		cf.claim.state = StateNone
	}
	cf.name = n
}
