package core

// JMP condition codes, operand bits [7:5].
const (
	jmpAlways     uint8 = 0b000
	jmpXZero      uint8 = 0b001
	jmpXNZeroDec  uint8 = 0b010
	jmpYZero      uint8 = 0b011
	jmpYNZeroDec  uint8 = 0b100
	jmpXNotEqualY uint8 = 0b101
	jmpPin        uint8 = 0b110
	jmpOSRNotFull uint8 = 0b111
)

// execJMP evaluates the condition and, if taken, installs the target as the
// next PC. X--/Y-- always decrement regardless of whether the branch is
// taken, per the datasheet wording spec.md's Open Question resolved in
// favor of.
func (sm *StateMachine) execJMP(operand uint8) {
	cond := (operand >> 5) & 0b111
	target := operand & 0x1f

	var taken bool
	switch cond {
	case jmpAlways:
		taken = true
	case jmpXZero:
		taken = sm.Regs.X == 0
	case jmpXNZeroDec:
		taken = sm.Regs.X != 0
		sm.Regs.X--
	case jmpYZero:
		taken = sm.Regs.Y == 0
	case jmpYNZeroDec:
		taken = sm.Regs.Y != 0
		sm.Regs.Y--
	case jmpXNotEqualY:
		taken = sm.Regs.X != sm.Regs.Y
	case jmpPin:
		if sm.Settings.JmpPin < 0 {
			sm.warnf("jmp: pin unset")
		} else {
			pin := uint8(sm.Settings.JmpPin) % 32
			taken = sm.GPIO.RawData[pin] == 1
		}
	case jmpOSRNotFull:
		taken = sm.Regs.OSRCount < sm.Settings.PullThreshold
	}

	if taken {
		sm.jmpTo = int16(target)
	}
}
