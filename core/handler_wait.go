package core

// WAIT source codes, operand bits [6:5].
const (
	waitSrcGPIO uint8 = 0b00
	waitSrcPin  uint8 = 0b01
	waitSrcIRQ  uint8 = 0b10
)

// execWAIT stalls the program counter until the selected condition matches
// polarity. An IRQ wait that is satisfied with polarity 1 (waiting for the
// flag to become set) self-clears the flag on the same cycle it unblocks.
func (sm *StateMachine) execWAIT(operand uint8) {
	polarity := (operand >> 7) & 1
	source := (operand >> 5) & 0b11
	index := operand & 0x1f

	var stall bool
	switch source {
	case waitSrcGPIO:
		stall = sm.GPIO.RawData[index] != polarity
	case waitSrcPin:
		if sm.Settings.InBase < 0 {
			sm.warnf("wait: in_base unset")
			stall = false
		} else {
			pin := (uint8(sm.Settings.InBase) + index) % 32
			stall = sm.GPIO.RawData[pin] != polarity
		}
	case waitSrcIRQ:
		irqNum := sm.computeIRQNum(index)
		flag := sm.IRQ.Get(irqNum)
		var flagBit uint8
		if flag {
			flagBit = 1
		}
		stall = flagBit != polarity
		if !stall && polarity == 1 {
			sm.IRQ.Clear(irqNum)
		}
	default:
		sm.errorf("wait: reserved source")
		stall = false
	}

	sm.waitIsStalling = stall
	if stall {
		sm.skipIncreasePC = true
		sm.delayDelay = true
	}
}
