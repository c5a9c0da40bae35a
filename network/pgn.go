package network

import "github.com/greenfield-iso/j1939stack/j1939"

// Common Parameter Group Numbers used by network management itself.
// Grounded on the teacher's COT constant block in asdu.go, which
// likewise gathers the small set of protocol-defined numeric constants
// a session layer needs into one place.
var (
	// PgnRequest is the Request for a Parameter Group Number, PGN
	// 0x00EA00 (§6).
	PgnRequest = j1939.NewPgn(false, false, 0xEA, 0x00)

	// PgnAddressClaim is the Address Claim / Cannot Claim PGN, PGN
	// 0x00EE00 (§6).
	PgnAddressClaim = j1939.NewPgn(false, false, 0xEE, 0x00)
)

const (
	// priorityRequest is the priority Request-for-Address-Claim frames
	// are sent at (§4.4/§6).
	priorityRequest j1939.Priority = 3
	// contentionWindowMillis is how long an internal CF waits, after sending
	// its request for claim, before inspecting the address table (§4.4).
	contentionWindowMillis = 250
	// maxRandomDelayMillis bounds the random delay sampled when an
	// internal CF first enters WaitForClaim (§4.4).
	maxRandomDelayMillis = 153
)
