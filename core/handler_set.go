package core

// SET destination codes, operand bits [7:5].
const (
	setDestPins    uint8 = 0b000
	setDestX       uint8 = 0b001
	setDestY       uint8 = 0b010
	setDestPindirs uint8 = 0b100
)

// execSET stamps a 5-bit immediate to pins, X, Y or pindirs. SET only ever
// reaches set_count pins, unlike OUT/MOV whose pin counts are instruction-
// or config-driven separately.
func (sm *StateMachine) execSET(operand uint8) {
	dest := (operand >> 5) & 0b111
	imm := uint32(operand & 0x1f)

	switch dest {
	case setDestPins:
		if sm.Settings.SetBase < 0 {
			sm.warnf("set: set_base unset")
			return
		}
		base := uint8(sm.Settings.SetBase)
		for k := uint8(0); k < sm.Settings.SetCount; k++ {
			pin := (base + k) % 32
			sm.GPIO.SetData[pin] = int8((imm >> k) & 1)
		}
	case setDestX:
		sm.Regs.X = imm
	case setDestY:
		sm.Regs.Y = imm
	case setDestPindirs:
		if sm.Settings.SetBase < 0 {
			sm.warnf("set: set_base unset")
			return
		}
		base := uint8(sm.Settings.SetBase)
		for k := uint8(0); k < sm.Settings.SetCount; k++ {
			pin := (base + k) % 32
			sm.GPIO.SetPindirs[pin] = int8((imm >> k) & 1)
		}
	default:
		sm.errorf("set: reserved destination")
	}
}
