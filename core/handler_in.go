package core

// IN source codes, operand bits [7:5].
const (
	inSrcPins uint8 = 0b000
	inSrcX    uint8 = 0b001
	inSrcY    uint8 = 0b010
	inSrcNull uint8 = 0b011
	inSrcISR  uint8 = 0b110
	inSrcOSR  uint8 = 0b111
)

// execIN shifts n bits from the selected source into ISR and, once the
// autopush threshold is crossed, attempts to hand ISR to the RX FIFO. While
// push_is_stalling is set from a previous cycle's full FIFO, IN performs no
// new shift and only retries the pending handoff.
func (sm *StateMachine) execIN(operand uint8) {
	if sm.pushIsStalling {
		if !sm.RX.Full() {
			sm.RX.Push(sm.Regs.ISR)
			sm.Regs.ISR = 0
			sm.Regs.ISRCount = 0
			sm.pushIsStalling = false
		} else {
			sm.skipIncreasePC = true
			sm.delayDelay = true
		}
		return
	}

	src := (operand >> 5) & 0b111
	n := decodeBitcount5(operand & 0x1f)

	var data uint32
	switch src {
	case inSrcPins:
		if sm.Settings.InBase < 0 {
			sm.warnf("in: in_base unset")
		} else {
			data = sm.gatherPins(uint8(sm.Settings.InBase), n)
		}
	case inSrcX:
		data = sm.Regs.X
	case inSrcY:
		data = sm.Regs.Y
	case inSrcNull:
		data = 0
	case inSrcISR:
		data = sm.Regs.ISR
	case inSrcOSR:
		data = sm.Regs.OSR
	default:
		sm.errorf("in: reserved source")
	}
	data &= maskN(n)

	sm.Regs.ISR = shiftInReg(sm.Regs.ISR, data, n, sm.Settings.InShiftRight)
	sm.Regs.ISRCount = satAdd(sm.Regs.ISRCount, n)

	if sm.Settings.AutopushEnable && sm.Regs.ISRCount >= sm.Settings.PushThreshold {
		if !sm.RX.Full() {
			sm.RX.Push(sm.Regs.ISR)
			sm.Regs.ISR = 0
			sm.Regs.ISRCount = 0
			sm.pushIsStalling = false
		} else {
			sm.skipIncreasePC = true
			sm.delayDelay = true
			sm.pushIsStalling = true
		}
	}
}
