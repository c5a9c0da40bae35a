package network

import (
	"github.com/greenfield-iso/j1939stack/j1939"
	"github.com/greenfield-iso/j1939stack/name"
)

// AddressClaimingState is one of the ten states of the address-claim
// FSM (spec §4.4), grounded on the original stack's
// network_management::control_function::AddressClaimingState enum.
type AddressClaimingState uint8

const (
	StateNone AddressClaimingState = iota
	StateWaitForClaim
	StateSendRequestForClaim
	StateWaitForRequestContentionPeriod
	StateSendPreferredAddressClaim
	StateContendForPreferredAddress
	StateSendArbitraryAddressClaim
	StateSendReclaimAddressOnRequest
	StateUnableToClaim
	StateAddressClaimingComplete
)

func (s AddressClaimingState) String() string {
	switch s {
	case StateNone:
		return "None"
	case StateWaitForClaim:
		return "WaitForClaim"
	case StateSendRequestForClaim:
		return "SendRequestForClaim"
	case StateWaitForRequestContentionPeriod:
		return "WaitForRequestContentionPeriod"
	case StateSendPreferredAddressClaim:
		return "SendPreferredAddressClaim"
	case StateContendForPreferredAddress:
		return "ContendForPreferredAddress"
	case StateSendArbitraryAddressClaim:
		return "SendArbitraryAddressClaim"
	case StateSendReclaimAddressOnRequest:
		return "SendReclaimAddressOnRequest"
	case StateUnableToClaim:
		return "UnableToClaim"
	case StateAddressClaimingComplete:
		return "AddressClaimingComplete"
	default:
		return "Unknown"
	}
}

// arbitrate decides who keeps a contended preferred address, given the
// NAME of the internal CF contending for it (ours) and the NAME
// currently occupying the address (occupant). It is the pure decision
// core of StateContendForPreferredAddress / StateWaitForRequestContentionPeriod,
// pulled out of the tick loop so it can be tested without any FSM or
// clock machinery (spec §9 "extract and unit test the arbitration
// decision in isolation").
//
// Lower NAME wins the address (§4.4). A CF that wins still has to
// broadcast its claim and occupy the table slot via
// StateSendPreferredAddressClaim before it is truly done; a CF that
// loses and is not self-configurable can never claim, while one that
// loses but is self-configurable must look for a free arbitrary
// address instead.
func arbitrate(ours, occupant name.Name, selfConfigurable bool) AddressClaimingState {
	if ours.Less(occupant) {
		return StateSendPreferredAddressClaim
	}
	if selfConfigurable {
		return StateSendArbitraryAddressClaim
	}
	return StateUnableToClaim
}

// addressTableLookup is the minimal view of the network's address
// table the FSM step function needs: whether an address is currently
// occupied and, if so, by which NAME.
type addressTableLookup interface {
	occupant(addr j1939.Address) (name.Name, bool)
	nextFreeArbitraryAddress() (j1939.Address, bool)
}
