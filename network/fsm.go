package network

import (
	"time"

	"github.com/greenfield-iso/j1939stack/j1939"
)

// stepFSM advances one internal control function's address-claim state
// machine by a single tick, grounded on the original stack's
// update_state_* family in network_management/network_manager.rs. Each
// state transition that produces a frame enqueues it through m.Send so
// it leaves on the same Tick's transmit phase, never written directly
// to the driver from here.
func (m *Manager) stepFSM(h CFHandle, cf *ControlFunction, now time.Time) {
	switch cf.claim.state {
	case StateNone:
		cf.claim.randomDelay = m.delayFactory().Sample()
		cf.claim.timestamp = now
		cf.claim.hasTimestamp = true
		cf.claim.state = StateWaitForClaim

	case StateWaitForClaim:
		if now.Sub(cf.claim.timestamp) >= cf.claim.randomDelay {
			cf.claim.state = StateSendRequestForClaim
		}

	case StateSendRequestForClaim:
		_ = m.Send(PgnRequest, constructRequestForAddressClaim(), j1939.AddressGlobal, j1939.AddressGlobal, priorityRequest)
		cf.claim.timestamp = now
		cf.claim.state = StateWaitForRequestContentionPeriod

	case StateWaitForRequestContentionPeriod:
		if now.Sub(cf.claim.timestamp) >= contentionWindowMillis*time.Millisecond {
			if occupant, ok := m.occupant(cf.claim.preferredAddress); ok && occupant != cf.name {
				cf.claim.state = arbitrate(cf.name, occupant, cf.name.SelfConfigurableAddress())
			} else {
				cf.claim.state = StateSendPreferredAddressClaim
			}
		}

	case StateSendPreferredAddressClaim:
		m.registerClaim(cf.claim.preferredAddress, h)
		_ = m.Send(PgnAddressClaim, constructAddressClaim(cf.name), cf.claim.preferredAddress, j1939.AddressGlobal, j1939.PriorityDefault)
		cf.claim.state = StateAddressClaimingComplete

	case StateContendForPreferredAddress:
		if occupant, ok := m.occupant(cf.claim.preferredAddress); ok && occupant != cf.name {
			cf.claim.state = arbitrate(cf.name, occupant, cf.name.SelfConfigurableAddress())
		} else {
			cf.claim.state = StateSendPreferredAddressClaim
		}

	case StateSendArbitraryAddressClaim:
		addr, ok := m.nextFreeArbitraryAddress()
		if !ok {
			cf.claim.state = StateUnableToClaim
			return
		}
		m.registerClaim(addr, h)
		_ = m.Send(PgnAddressClaim, constructAddressClaim(cf.name), addr, j1939.AddressGlobal, j1939.PriorityDefault)
		cf.claim.state = StateAddressClaimingComplete

	case StateSendReclaimAddressOnRequest:
		if addr, ok := m.addressOf(h); ok {
			_ = m.Send(PgnAddressClaim, constructAddressClaim(cf.name), addr, j1939.AddressGlobal, j1939.PriorityDefault)
		}
		cf.claim.state = StateAddressClaimingComplete

	case StateUnableToClaim, StateAddressClaimingComplete:
		// Terminal states for stepFSM. SetName and SetEnabled(false)
		// reset them to StateNone, as does an observed competing claim
		// for the CF's address (handleAddressClaimRx); a Request for the
		// Address Claim PGN moves AddressClaimingComplete to
		// StateSendReclaimAddressOnRequest (handleRequestRx).
	}
}

// addressOf returns the address handle h currently occupies, if any.
func (m *Manager) addressOf(h CFHandle) (j1939.Address, bool) {
	for a := 0; a < len(m.table); a++ {
		if m.table[a] == h {
			return j1939.Address(a), true
		}
	}
	return 0, false
}
