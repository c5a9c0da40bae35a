// Package network implements the J1939/ISO 11783 network layer: control
// function bookkeeping, the address-claim state machine and the single
// NetworkManager that drives both from a cooperative Tick loop.
package network

import (
	"github.com/sirupsen/logrus"

	"github.com/greenfield-iso/j1939stack/can"
	"github.com/greenfield-iso/j1939stack/internal/wire"
	"github.com/greenfield-iso/j1939stack/j1939"
	"github.com/greenfield-iso/j1939stack/name"
)

const addressTableSize = 253

// txFrame is a queued outbound message awaiting Tick's transmit phase.
type txFrame struct {
	pgn         j1939.Pgn
	data        []byte
	source      j1939.Address
	destination j1939.Address
	priority    j1939.Priority
}

// Manager owns the address table, the control-function arena and the
// transmit/receive queues for a single CAN channel, grounded on the
// original stack's NetworkManager (network_management/network_manager.rs).
// A Manager is not safe for concurrent use; Tick is meant to be called
// from a single owning goroutine (spec §5).
type Manager struct {
	driver can.Driver
	lg     *logrus.Logger

	clock        Clock
	delayFactory func() RandomDelay

	arena    []ControlFunction
	internal []CFHandle
	table    [256]CFHandle // indexed by j1939.Address; noHandle when empty

	rxQueue   []can.Frame
	txHigh    []txFrame
	txNormal  []txFrame
	queueCap  int // 0 means unbounded
}

// NewManager constructs a Manager bound to driver and stores lg in the
// teacher's injected-logger style (client.go's NewClient). No Manager
// code path currently writes log output through lg.
func NewManager(driver can.Driver, lg *logrus.Logger) *Manager {
	m := &Manager{
		driver:       driver,
		lg:           lg,
		clock:        realClock{},
		delayFactory: func() RandomDelay { return newMathRandDelay() },
	}
	for i := range m.table {
		m.table[i] = noHandle
	}
	return m
}

// SetClock overrides the time source, for deterministic FSM tests.
func (m *Manager) SetClock(c Clock) *Manager {
	if c != nil {
		m.clock = c
	}
	return m
}

// SetRandomDelayFactory overrides how each internal CF's initial random
// delay is sampled, for deterministic FSM tests.
func (m *Manager) SetRandomDelayFactory(f func() RandomDelay) *Manager {
	if f != nil {
		m.delayFactory = f
	}
	return m
}

// SetQueueCapacity bounds each transmit queue's depth; Send returns
// ErrQueueFull once a queue is at capacity. Zero (the default) leaves
// queues unbounded (spec §9, "no cap by default").
func (m *Manager) SetQueueCapacity(n int) *Manager {
	if n >= 0 {
		m.queueCap = n
	}
	return m
}

// AddInternalControlFunction registers a control function this stack
// will claim an address for, and returns a handle to it. The control
// function is created enabled with its FSM in StateNone, so claiming
// begins on the next Tick; SetEnabled(false) stops it.
func (m *Manager) AddInternalControlFunction(n name.Name, preferred j1939.Address) CFHandle {
	cf := ControlFunction{
		name:     n,
		internal: true,
		claim: addressClaimData{
			state:            StateNone,
			preferredAddress: preferred,
			enabled:          true,
		},
	}
	m.arena = append(m.arena, cf)
	h := CFHandle(len(m.arena) - 1)
	m.internal = append(m.internal, h)
	return h
}

// ControlFunction resolves a handle to its control function. It returns
// nil for a stale or out-of-range handle.
func (m *Manager) ControlFunction(h CFHandle) *ControlFunction {
	if h < 0 || int(h) >= len(m.arena) {
		return nil
	}
	return &m.arena[h]
}

// occupant implements addressTableLookup.
func (m *Manager) occupant(addr j1939.Address) (name.Name, bool) {
	h := m.table[addr]
	if h == noHandle {
		return name.Name(0), false
	}
	return m.arena[h].Name(), true
}

// nextFreeArbitraryAddress implements addressTableLookup. It scans
// 128..247 per spec §4.4's documented arbitrary-address range.
func (m *Manager) nextFreeArbitraryAddress() (j1939.Address, bool) {
	for a := uint16(j1939.ArbitraryAddressRangeStart); a <= uint16(j1939.ArbitraryAddressRangeEnd); a++ {
		if m.table[a] == noHandle {
			return j1939.Address(a), true
		}
	}
	return 0, false
}

// registerClaim records that handle h now occupies addr, evicting
// whatever previously sat there.
func (m *Manager) registerClaim(addr j1939.Address, h CFHandle) {
	m.table[addr] = h
}

// Send enqueues pgn/data for transmission from source at the given
// priority, to destination (j1939.AddressGlobal for a broadcast). It is
// queued, not written to the driver immediately; Tick's transmit phase
// drains high-priority frames before normal-priority ones (spec §5/§8).
func (m *Manager) Send(pgn j1939.Pgn, data []byte, source j1939.Address, destination j1939.Address, priority j1939.Priority) error {
	if len(data) == 0 || len(data) > can.MaxDataLength {
		return ErrInvalidFrameLength
	}
	f := txFrame{pgn: pgn, data: data, source: source, destination: destination, priority: priority}
	if priority.IsHighest() {
		if m.queueCap > 0 && len(m.txHigh) >= m.queueCap {
			return ErrQueueFull
		}
		m.txHigh = append(m.txHigh, f)
		return nil
	}
	if m.queueCap > 0 && len(m.txNormal) >= m.queueCap {
		return ErrQueueFull
	}
	m.txNormal = append(m.txNormal, f)
	return nil
}

// Receive pops the oldest application-layer frame delivered by the last
// Tick, or reports ok=false if none is queued. Address-claim traffic
// never reaches this queue; Tick consumes it internally.
func (m *Manager) Receive() (can.Frame, bool) {
	if len(m.rxQueue) == 0 {
		return can.Frame{}, false
	}
	f := m.rxQueue[0]
	m.rxQueue = m.rxQueue[1:]
	return f, true
}

// Tick runs one cooperative scheduling pass: drain the driver's receive
// queue, advance every internal CF's address-claim FSM by one step, then
// drain the transmit queues to the driver. The three phases always run
// in this order (spec §5).
func (m *Manager) Tick() error {
	if err := m.receiveMessages(); err != nil {
		return err
	}
	m.updateAddressClaiming()
	return m.transmitMessages()
}

func (m *Manager) receiveMessages() error {
	for {
		var f can.Frame
		err := m.driver.ReadNonblocking(&f)
		if err == can.ErrNoFrameReady {
			return nil
		}
		if err != nil {
			return err
		}
		id := j1939.Decode(f.ID)
		switch id.Pgn().AsKey() {
		case PgnAddressClaim.AsKey():
			m.handleAddressClaimRx(id, f)
			continue
		case PgnRequest.AsKey():
			m.handleRequestRx(f)
			continue
		}
		m.rxQueue = append(m.rxQueue, f)
	}
}

// handleRequestRx implements spec §4.3: a Request for a PGN that names
// the Address Claim PGN itself asks every claim-complete internal CF to
// re-announce its address.
func (m *Manager) handleRequestRx(f can.Frame) {
	if f.Length < 3 {
		return
	}
	requested := wire.Uint32LE([]byte{f.Data[0], f.Data[1], f.Data[2], 0})
	if requested != PgnAddressClaim.Raw() {
		return
	}
	for _, h := range m.internal {
		cf := &m.arena[h]
		if cf.claim.enabled && cf.claim.state == StateAddressClaimingComplete {
			cf.claim.state = StateSendReclaimAddressOnRequest
		}
	}
}

func (m *Manager) handleAddressClaimRx(id j1939.CanID, f can.Frame) {
	if f.Length < 8 {
		return
	}
	claimed := name.Name(wire.Uint64LE(f.Data[:8]))
	addr := id.SourceAddress()
	if addr.IsNull() || addr.IsGlobal() {
		return
	}

	if prevHandle := m.table[addr]; prevHandle != noHandle {
		prev := &m.arena[prevHandle]
		if prev.internal && prev.name != claimed {
			// Our address just got displaced by a competing claim; the
			// FSM must re-run to either reclaim or move to an arbitrary
			// address (spec §9, resolving the original's RX-side TODO).
			prev.claim.state = StateNone
			prev.claim.hasTimestamp = false
		}
	}

	if h := m.findExternalOrInternalByName(claimed); h != noHandle {
		m.table[addr] = h
		return
	}

	cf := ControlFunction{name: claimed, internal: false}
	m.arena = append(m.arena, cf)
	m.table[addr] = CFHandle(len(m.arena) - 1)
}

func (m *Manager) findExternalOrInternalByName(n name.Name) CFHandle {
	for i := range m.arena {
		if m.arena[i].name == n {
			return CFHandle(i)
		}
	}
	return noHandle
}

func (m *Manager) updateAddressClaiming() {
	now := m.clock.Now()
	for _, h := range m.internal {
		cf := &m.arena[h]
		if !cf.claim.enabled {
			continue
		}
		m.stepFSM(h, cf, now)
	}
}

func (m *Manager) transmitMessages() error {
	for len(m.txHigh) > 0 {
		f := m.txHigh[0]
		m.txHigh = m.txHigh[1:]
		if err := m.writeFrame(f); err != nil {
			return err
		}
	}
	for len(m.txNormal) > 0 {
		f := m.txNormal[0]
		m.txNormal = m.txNormal[1:]
		if err := m.writeFrame(f); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) writeFrame(f txFrame) error {
	pgn := f.pgn
	if f.destination != j1939.AddressGlobal {
		pgn.SetDestinationAddress(f.destination)
	}
	id := j1939.EncodeExtended(f.priority, pgn, f.source, f.destination)
	frame := can.Frame{ID: id.Raw(), Extended: true}
	frame.SetBytes(f.data)
	return m.driver.WriteNonblocking(&frame)
}

// constructAddressClaim builds the 8-byte Address Claim payload for n.
func constructAddressClaim(n name.Name) []byte {
	return wire.PutUint64LE(n.Raw())
}

// constructRequestForAddressClaim builds the 3-byte Request payload
// asking every node to (re-)announce its address claim: the requested
// PGN, little-endian.
func constructRequestForAddressClaim() []byte {
	return wire.PutUint32LE(PgnAddressClaim.Raw())[:3]
}
