package core

import "github.com/pioemu/piosim/logger"

// newTestSM builds a state machine with the given settings and a single
// program word at PC 0, logging discarded — most handler tests only care
// about register/GPIO/FIFO state after one call into the handler directly.
func newTestSM(settings Settings) *StateMachine {
	var program [32]uint16
	return NewStateMachine(settings, program, NewIRQBank(), logger.Discard{}, 0)
}

// encode builds a raw instruction word from its standard fields, for tests
// that want to drive Tick() rather than call exec* directly.
func encode(opcode, delaySideset, operand uint8) uint16 {
	return uint16(opcode&0b111)<<13 | uint16(delaySideset&0x1f)<<8 | uint16(operand)
}
