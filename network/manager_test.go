package network

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/greenfield-iso/j1939stack/can"
	"github.com/greenfield-iso/j1939stack/j1939"
)

func newTestManager() (*Manager, *mockDriver, *fakeClock) {
	driver := &mockDriver{}
	clock := &fakeClock{}
	lg := logrus.New()
	lg.SetOutput(nullWriter{})
	m := NewManager(driver, lg).SetClock(clock)
	return m, driver, clock
}

type nullWriter struct{}

func (nullWriter) Write(p []byte) (int, error) { return len(p), nil }

// runUntilSettled ticks the manager, advancing clock by step each time,
// until every given handle has left the transient FSM states.
func runUntilSettled(m *Manager, clock *fakeClock, step time.Duration, handles ...CFHandle) {
	for i := 0; i < 200; i++ {
		m.Tick()
		settled := true
		for _, h := range handles {
			switch m.ControlFunction(h).State() {
			case StateAddressClaimingComplete, StateUnableToClaim:
			default:
				settled = false
			}
		}
		if settled {
			return
		}
		clock.Advance(step)
	}
}

// TestAddressClaimScenarioSelfConfigurableLoserFallsBack mirrors spec
// scenario 5: two internal control functions contend for the same
// preferred address, 0x81. The lower NAME wins it outright and the
// self-configurable loser falls back to the next free arbitrary address
// (the non-self-configurable case is covered by the next test).
func TestAddressClaimScenarioSelfConfigurableLoserFallsBack(t *testing.T) {
	m, _, clock := newTestManager()
	m.SetRandomDelayFactory(sequencedDelays(0, 50*time.Millisecond))

	nameA := buildName(t, 1, false)
	nameB := buildName(t, 1<<20, true) // self-config is the NAME's most significant bit, so B > A

	hA := m.AddInternalControlFunction(nameA, j1939.Address(0x81))
	hB := m.AddInternalControlFunction(nameB, j1939.Address(0x81))

	runUntilSettled(m, clock, 10*time.Millisecond, hA, hB)

	if got := m.ControlFunction(hA).State(); got != StateAddressClaimingComplete {
		t.Fatalf("A state = %v, want AddressClaimingComplete", got)
	}
	addrA, ok := m.addressOf(hA)
	if !ok || addrA != j1939.Address(0x81) {
		t.Fatalf("A address = %v (ok=%v), want 0x81", addrA, ok)
	}

	if got := m.ControlFunction(hB).State(); got != StateAddressClaimingComplete {
		t.Fatalf("B state = %v, want AddressClaimingComplete (self-configurable fallback)", got)
	}
	addrB, ok := m.addressOf(hB)
	if !ok {
		t.Fatal("B never claimed an address")
	}
	if addrB == j1939.Address(0x81) {
		t.Fatal("B must not hold the contended preferred address")
	}
	if !addrB.IsArbitrary() {
		t.Fatalf("B address %v is not in the arbitrary range", addrB)
	}
}

func TestAddressClaimScenarioNonSelfConfigurableLoserCannotClaim(t *testing.T) {
	m, _, clock := newTestManager()
	m.SetRandomDelayFactory(sequencedDelays(0, 50*time.Millisecond))

	nameA := buildName(t, 1, false)
	nameB := buildName(t, 2, false)

	hA := m.AddInternalControlFunction(nameA, j1939.Address(0x81))
	hB := m.AddInternalControlFunction(nameB, j1939.Address(0x81))

	runUntilSettled(m, clock, 10*time.Millisecond, hA, hB)

	if got := m.ControlFunction(hA).State(); got != StateAddressClaimingComplete {
		t.Fatalf("A state = %v, want AddressClaimingComplete", got)
	}
	if got := m.ControlFunction(hB).State(); got != StateUnableToClaim {
		t.Fatalf("B state = %v, want UnableToClaim", got)
	}
}

// TestAddressClaimScenarioWinnerViaContentionTransmitsAndRegisters covers
// the branch where a contending CF wins: its NAME beats the address's
// current occupant. Winning must still broadcast the claim frame and
// register the table slot via StateSendPreferredAddressClaim, not skip
// straight to AddressClaimingComplete (spec §4.4 rule 1).
func TestAddressClaimScenarioWinnerViaContentionTransmitsAndRegisters(t *testing.T) {
	m, driver, clock := newTestManager()
	m.SetRandomDelayFactory(sequencedDelays(0, 50*time.Millisecond))

	weaker := buildName(t, 2, false) // higher identity number, worse NAME
	stronger := buildName(t, 1, false)

	hWeaker := m.AddInternalControlFunction(weaker, j1939.Address(0x81))
	runUntilSettled(m, clock, 10*time.Millisecond, hWeaker)
	if got := m.ControlFunction(hWeaker).State(); got != StateAddressClaimingComplete {
		t.Fatalf("weaker CF precondition: state = %v, want AddressClaimingComplete", got)
	}
	addrWeaker, ok := m.addressOf(hWeaker)
	if !ok || addrWeaker != j1939.Address(0x81) {
		t.Fatalf("weaker CF address = %v (ok=%v), want 0x81", addrWeaker, ok)
	}

	driver.out = nil
	hStronger := m.AddInternalControlFunction(stronger, j1939.Address(0x81))
	runUntilSettled(m, clock, 10*time.Millisecond, hStronger)

	if got := m.ControlFunction(hStronger).State(); got != StateAddressClaimingComplete {
		t.Fatalf("stronger CF state = %v, want AddressClaimingComplete", got)
	}
	addrStronger, ok := m.addressOf(hStronger)
	if !ok || addrStronger != j1939.Address(0x81) {
		t.Fatalf("stronger CF address = %v (ok=%v), want 0x81 (won by contention)", addrStronger, ok)
	}

	found := false
	for _, out := range driver.out {
		if out.Length == 8 {
			found = true
		}
	}
	if !found {
		t.Fatal("expected the contention winner to broadcast its address claim frame")
	}
}

// TestTransmitOrderingHighBeforeNormal checks that a high-priority frame
// queued after a normal-priority one still leaves first (spec §8).
func TestTransmitOrderingHighBeforeNormal(t *testing.T) {
	m, driver, _ := newTestManager()

	pgn := j1939.NewPgn(false, false, 0xFF, 0x01)
	if err := m.Send(pgn, []byte{1}, j1939.Address(0x10), j1939.AddressGlobal, j1939.PriorityDefault); err != nil {
		t.Fatalf("Send normal: %v", err)
	}
	if err := m.Send(pgn, []byte{2}, j1939.Address(0x10), j1939.AddressGlobal, j1939.PriorityHighest); err != nil {
		t.Fatalf("Send high: %v", err)
	}

	if err := m.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	if len(driver.out) != 2 {
		t.Fatalf("len(out) = %d, want 2", len(driver.out))
	}
	if driver.out[0].Data[0] != 2 {
		t.Errorf("first transmitted frame carried %v, want the high-priority one", driver.out[0].Data[0])
	}
	if driver.out[1].Data[0] != 1 {
		t.Errorf("second transmitted frame carried %v, want the normal-priority one", driver.out[1].Data[0])
	}
}

func TestQueueCapacityRejectsOverflow(t *testing.T) {
	m, _, _ := newTestManager()
	m.SetQueueCapacity(1)

	pgn := j1939.NewPgn(false, false, 0xFF, 0x01)
	if err := m.Send(pgn, []byte{1}, j1939.Address(0x10), j1939.AddressGlobal, j1939.PriorityDefault); err != nil {
		t.Fatalf("first Send: %v", err)
	}
	if err := m.Send(pgn, []byte{2}, j1939.Address(0x10), j1939.AddressGlobal, j1939.PriorityDefault); err != ErrQueueFull {
		t.Fatalf("second Send error = %v, want ErrQueueFull", err)
	}
}

// TestRequestForAddressClaimTriggersReclaim mirrors spec §4.3: a
// Request naming the Address Claim PGN itself makes every
// claim-complete internal CF re-announce its address.
func TestRequestForAddressClaimTriggersReclaim(t *testing.T) {
	m, driver, clock := newTestManager()
	m.SetRandomDelayFactory(sequencedDelays(0))

	n := buildName(t, 1, false)
	h := m.AddInternalControlFunction(n, j1939.Address(0x81))
	runUntilSettled(m, clock, 10*time.Millisecond, h)
	if got := m.ControlFunction(h).State(); got != StateAddressClaimingComplete {
		t.Fatalf("precondition: state = %v, want AddressClaimingComplete", got)
	}

	requestID := j1939.EncodeExtended(j1939.PriorityDefault, PgnRequest, j1939.Address(0x50), j1939.AddressGlobal)
	reqData := [3]byte{}
	claimRaw := PgnAddressClaim.Raw()
	reqData[0] = byte(claimRaw)
	reqData[1] = byte(claimRaw >> 8)
	reqData[2] = byte(claimRaw >> 16)

	frame := can.Frame{ID: requestID.Raw(), Extended: true}
	frame.SetBytes(reqData[:])
	driver.in = append(driver.in, frame)

	if err := m.Tick(); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	if got := m.ControlFunction(h).State(); got != StateAddressClaimingComplete {
		t.Fatalf("state after reclaim tick = %v, want AddressClaimingComplete (reclaim completes same tick)", got)
	}

	found := false
	for _, out := range driver.out {
		if out.Length == 8 {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a re-announced 8-byte address claim frame on the wire")
	}
}

func TestSendRejectsInvalidFrameLength(t *testing.T) {
	m, _, _ := newTestManager()
	pgn := j1939.NewPgn(false, false, 0xFF, 0x01)

	if err := m.Send(pgn, nil, j1939.Address(0x10), j1939.AddressGlobal, j1939.PriorityDefault); err != ErrInvalidFrameLength {
		t.Fatalf("empty data error = %v, want ErrInvalidFrameLength", err)
	}
	if err := m.Send(pgn, make([]byte, 9), j1939.Address(0x10), j1939.AddressGlobal, j1939.PriorityDefault); err != ErrInvalidFrameLength {
		t.Fatalf("9-byte data error = %v, want ErrInvalidFrameLength", err)
	}
}
