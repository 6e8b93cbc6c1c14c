package core

import "testing"

func TestTickAdvancesPCAndClock(t *testing.T) {
	s := DefaultSettings()
	sm := newTestSM(s)
	sm.Program[0] = encode(opJMP, 0, uint8(jmpAlways)<<5|1)
	sm.Tick()
	if sm.Regs.PC != 1 {
		t.Errorf("PC = %d, want 1", sm.Regs.PC)
	}
	if sm.Regs.Clock != 1 {
		t.Errorf("Clock = %d, want 1", sm.Regs.Clock)
	}
}

func TestTickDelayHoldsInstructionThenAdvances(t *testing.T) {
	s := DefaultSettings()
	sm := newTestSM(s)
	// JMP always to PC 0, with a 2-cycle delay.
	sm.Program[0] = encode(opJMP, 2, uint8(jmpAlways)<<5|0)
	sm.Tick() // executes JMP, installs delay=2
	if sm.Regs.Delay != 2 {
		t.Fatalf("Delay = %d, want 2", sm.Regs.Delay)
	}
	sm.Tick() // delay countdown, no fetch
	if sm.Regs.Delay != 1 {
		t.Errorf("Delay after first countdown = %d, want 1", sm.Regs.Delay)
	}
	sm.Tick()
	if sm.Regs.Delay != 0 {
		t.Errorf("Delay after second countdown = %d, want 0", sm.Regs.Delay)
	}
	if sm.Regs.Clock != 3 {
		t.Errorf("Clock = %d, want 3", sm.Regs.Clock)
	}
}

func TestTickDelayCountdownClearsStagingArrays(t *testing.T) {
	s := DefaultSettings()
	s.SetBase = 4
	s.SetCount = 1
	sm := newTestSM(s)
	sm.GPIO.Pindirs[4] = 1
	// SET PINS 4, value 1, with a 2-cycle delay: the instruction stamps
	// SetData on the tick it fires, then two countdown ticks
	// follow with no instruction fetch at all.
	sm.Program[0] = encode(opSET, 2, uint8(setDestPins)<<5|1)

	sm.Tick() // fires the SET, installs delay=2
	if sm.GPIO.SetData[4] != 1 {
		t.Fatalf("expected SetData[4] stamped on the firing tick, got %d", sm.GPIO.SetData[4])
	}

	sm.Tick() // delay countdown tick: no instruction re-fetched
	if sm.GPIO.SetData[4] != -1 {
		t.Errorf("expected the staging array cleared on a delay countdown tick, got %d", sm.GPIO.SetData[4])
	}
	if sm.GPIO.RawData[4] != 1 {
		t.Errorf("RawData should retain its merged value across the countdown, got %d", sm.GPIO.RawData[4])
	}
}

func TestTickWrap(t *testing.T) {
	s := DefaultSettings()
	s.WrapStart = 2
	s.WrapEnd = 4
	sm := newTestSM(s)
	sm.Regs.PC = 4
	sm.Program[4] = encode(opSET, 0, uint8(setDestX)<<5|1)
	sm.Tick()
	if sm.Regs.PC != 2 {
		t.Errorf("PC after wrap = %d, want 2", sm.Regs.PC)
	}
}

func TestTickSideSetAppliesEvenOnStall(t *testing.T) {
	s := DefaultSettings()
	s.SidesetCount = 1
	s.SidesetBase = 9
	sm := newTestSM(s)
	sm.GPIO.Pindirs[9] = 1 // side-set pins are configured as outputs
	// WAIT GPIO 0 high (stalls, pin starts low), with side-set bit 1 on pin 9.
	waitOperand := uint8(1)<<7 | uint8(waitSrcGPIO)<<5 | 0
	sideset := uint8(0b1_0000) // sidesetCount=1, top bit of the 5-bit field
	sm.Program[0] = encode(opWAIT, sideset, waitOperand)
	sm.Tick()
	if sm.Regs.PC != 0 {
		t.Fatalf("expected to remain stalled at PC 0, got %d", sm.Regs.PC)
	}
	if sm.GPIO.RawData[9] != 1 {
		t.Errorf("side-set should apply even while the instruction stalls, pin 9 = %d", sm.GPIO.RawData[9])
	}
}

func TestTickSideSetOptEnableBit(t *testing.T) {
	s := DefaultSettings()
	s.SidesetCount = 1
	s.SidesetOpt = true
	s.SidesetBase = 3
	sm := newTestSM(s)
	// field is 2 bits total (count+1 for opt): enable bit then data bit.
	// enable=0 -> side-set skipped regardless of data bit.
	field := uint8(0b00_000) // top 2 bits both zero: enable=0
	sm.Program[0] = encode(opSET, field, uint8(setDestX)<<5|0)
	sm.Tick()
	if sm.GPIO.SidesetData[3] != -1 {
		t.Errorf("side-set should be skipped when the enable bit is clear, got %d", sm.GPIO.SidesetData[3])
	}
}
