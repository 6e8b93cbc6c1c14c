package core

import "math/bits"

// MOV source codes, operand bits [2:0].
const (
	movSrcPins   uint8 = 0b000
	movSrcX      uint8 = 0b001
	movSrcY      uint8 = 0b010
	movSrcNull   uint8 = 0b011
	movSrcStatus uint8 = 0b101
	movSrcISR    uint8 = 0b110
	movSrcOSR    uint8 = 0b111
)

// MOV destination codes, operand bits [7:5].
const (
	movDestPins uint8 = 0b000
	movDestX    uint8 = 0b001
	movDestY    uint8 = 0b010
	movDestExec uint8 = 0b100
	movDestPC   uint8 = 0b101
	movDestISR  uint8 = 0b110
	movDestOSR  uint8 = 0b111
)

// MOV operation codes, operand bits [4:3].
const (
	movOpNone    uint8 = 0b00
	movOpInvert  uint8 = 0b01
	movOpReverse uint8 = 0b10
)

// execMOV copies a 32-bit value between registers/pins, optionally
// inverting or bit-reversing it in flight. Unlike IN/OUT, MOV never shifts
// or touches shift counts except when the destination is ISR/OSR, whose
// count it resets to 0 (an empty ISR, a full OSR) since MOV always writes
// the full word.
func (sm *StateMachine) execMOV(operand uint8) {
	dest := (operand >> 5) & 0b111
	op := (operand >> 3) & 0b11
	src := operand & 0b111

	var data uint32
	switch src {
	case movSrcPins:
		if sm.Settings.InBase < 0 {
			sm.warnf("mov: in_base unset")
		} else {
			data = sm.gatherPins(uint8(sm.Settings.InBase), 32)
		}
	case movSrcX:
		data = sm.Regs.X
	case movSrcY:
		data = sm.Regs.Y
	case movSrcNull:
		data = 0
	case movSrcStatus:
		data = sm.computeStatus()
	case movSrcISR:
		data = sm.Regs.ISR
	case movSrcOSR:
		data = sm.Regs.OSR
	default:
		sm.errorf("mov: reserved source")
	}

	switch op {
	case movOpNone:
	case movOpInvert:
		data = ^data
	case movOpReverse:
		data = bits.Reverse32(data)
	default:
		sm.errorf("mov: reserved op")
	}

	switch dest {
	case movDestPins:
		if sm.Settings.OutBase < 0 {
			sm.warnf("mov: out_base unset")
			break
		}
		base := uint8(sm.Settings.OutBase)
		for k := uint8(0); k < sm.Settings.OutCount; k++ {
			pin := (base + k) % 32
			sm.GPIO.OutData[pin] = int8((data >> k) & 1)
		}
	case movDestX:
		sm.Regs.X = data
	case movDestY:
		sm.Regs.Y = data
	case movDestExec:
		sm.currentInstruction = uint16(data)
		sm.execCommand = true
		sm.skipIncreasePC = true
		sm.skipDelay = true
	case movDestPC:
		sm.jmpTo = int16(data & 0x1f)
	case movDestISR:
		sm.Regs.ISR = data
		sm.Regs.ISRCount = 0
	case movDestOSR:
		sm.Regs.OSR = data
		sm.Regs.OSRCount = 0
	default:
		sm.errorf("mov: reserved destination")
	}
}
