package core

import "github.com/pioemu/piosim/logger"

// StateMachine is one PIO state machine: its program memory, architectural
// registers, GPIO view, FIFOs and the shared IRQ bank it participates in.
// Number identifies it (0..3) for relative IRQ index resolution; it plays
// no other role since clustering multiple machines on one GPIO bus is the
// caller's responsibility, not this package's.
type StateMachine struct {
	Settings Settings
	Regs     Registers
	GPIO     *GPIO
	RX       FIFO
	TX       FIFO
	IRQ      *IRQBank
	Program  [32]uint16
	Number   uint8
	Logger   logger.Logger

	// Per-cycle control flags, cleared at the start of every tick.
	jmpTo          int16
	skipIncreasePC bool
	delayDelay     bool
	skipDelay      bool
	execCommand    bool

	currentInstruction uint16

	waitIsStalling bool
	pushIsStalling bool
	pullIsStalling bool
	irqIsWaiting   bool

	getters map[string]func() uint32
	setters map[string]func(uint32)
}

// NewStateMachine builds a state machine ready to run at PC 0. irq may be
// shared with sibling machines on the same PIO block; pass a fresh
// NewIRQBank() if this machine stands alone.
func NewStateMachine(settings Settings, program [32]uint16, irq *IRQBank, lg logger.Logger, number uint8) *StateMachine {
	if lg == nil {
		lg = logger.Discard{}
	}
	if irq == nil {
		irq = NewIRQBank()
	}
	sm := &StateMachine{
		Settings: settings,
		GPIO:     NewGPIO(),
		IRQ:      irq,
		Program:  program,
		Number:   number & 0b11,
		Logger:   lg,
		jmpTo:    -1,
	}
	sm.buildReflection()
	return sm
}

// Reset reinstalls settings and program and zeroes architectural state,
// the software equivalent of the teacher's StateMachine.Init: halt, clear
// FIFOs and shift registers, reload configuration, restart at PC 0.
func (sm *StateMachine) Reset(settings Settings, program [32]uint16) {
	sm.Settings = settings
	sm.Program = program
	sm.Regs = Registers{}
	sm.GPIO = NewGPIO()
	sm.RX.Clear()
	sm.TX.Clear()
	sm.jmpTo = -1
	sm.skipIncreasePC = false
	sm.delayDelay = false
	sm.skipDelay = false
	sm.execCommand = false
	sm.currentInstruction = 0
	sm.waitIsStalling = false
	sm.pushIsStalling = false
	sm.pullIsStalling = false
	sm.irqIsWaiting = false
}

// gatherPins reads n bits (n in 1..32) of RawData starting at base, pin
// (base+k)%32 landing at bit k of the result — the PINS source shape shared
// by IN and MOV.
func (sm *StateMachine) gatherPins(base uint8, n uint8) uint32 {
	var v uint32
	for k := uint8(0); k < n; k++ {
		pin := (base + k) % 32
		v |= uint32(sm.GPIO.RawData[pin]) << k
	}
	return v
}

// computeIRQNum resolves a 5-bit WAIT/IRQ index field to an absolute 0..7
// IRQ flag number, applying the relative-addressing rule (bit 4 set) that
// adds this machine's Number into the low two bits modulo 4, preserving bit 2.
func (sm *StateMachine) computeIRQNum(index uint8) uint8 {
	irqNum := index & 0b111
	if index&0b1_0000 != 0 {
		low2 := irqNum & 0b11
		newLow2 := (low2 + sm.Number) % 4
		irqNum = (irqNum & 0b100) | newLow2
	}
	return irqNum
}

// computeStatus implements MOV's STATUS source: all-ones when the selected
// FIFO's fill level is below the configured threshold, zero otherwise.
func (sm *StateMachine) computeStatus() uint32 {
	var below bool
	if sm.Settings.StatusSel == 0 {
		below = sm.TX.Level() < sm.Settings.StatusN
	} else {
		below = sm.RX.Level() < sm.Settings.StatusN
	}
	if below {
		return 0xffffffff
	}
	return 0
}
