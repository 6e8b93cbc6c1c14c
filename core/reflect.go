package core

import "fmt"

// buildReflection wires the string-keyed get/set facade once at
// construction time: two maps from name to a closure over this state
// machine's fields, rather than a type switch re-evaluated on every call.
func (sm *StateMachine) buildReflection() {
	sm.getters = make(map[string]func() uint32)
	sm.setters = make(map[string]func(uint32))

	sm.getters["pc"] = func() uint32 { return uint32(sm.Regs.PC) }
	sm.setters["pc"] = func(v uint32) { sm.Regs.PC = uint8(v) & 0x1f }

	sm.getters["x"] = func() uint32 { return sm.Regs.X }
	sm.setters["x"] = func(v uint32) { sm.Regs.X = v }

	sm.getters["y"] = func() uint32 { return sm.Regs.Y }
	sm.setters["y"] = func(v uint32) { sm.Regs.Y = v }

	sm.getters["isr"] = func() uint32 { return sm.Regs.ISR }
	sm.setters["isr"] = func(v uint32) { sm.Regs.ISR = v }

	sm.getters["osr"] = func() uint32 { return sm.Regs.OSR }
	sm.setters["osr"] = func(v uint32) { sm.Regs.OSR = v }

	sm.getters["isr_shift_count"] = func() uint32 { return uint32(sm.Regs.ISRCount) }
	sm.setters["isr_shift_count"] = func(v uint32) { sm.Regs.ISRCount = uint8(v) }

	sm.getters["osr_shift_count"] = func() uint32 { return uint32(sm.Regs.OSRCount) }
	sm.setters["osr_shift_count"] = func(v uint32) { sm.Regs.OSRCount = uint8(v) }

	sm.getters["delay"] = func() uint32 { return uint32(sm.Regs.Delay) }
	sm.setters["delay"] = func(v uint32) { sm.Regs.Delay = uint8(v) }

	sm.getters["clock"] = func() uint32 { return sm.Regs.Clock }
	sm.setters["clock"] = func(v uint32) { sm.Regs.Clock = v }

	sm.getters["tx_fifo_count"] = func() uint32 { return uint32(sm.TX.Level()) }
	sm.setters["tx_fifo_count"] = func(v uint32) { sm.TX.SetLevel(uint8(v)) }

	sm.getters["rx_fifo_count"] = func() uint32 { return uint32(sm.RX.Level()) }
	sm.setters["rx_fifo_count"] = func(v uint32) { sm.RX.SetLevel(uint8(v)) }

	sm.getters["push_is_stalling"] = func() uint32 { return boolToU32(sm.pushIsStalling) }
	sm.setters["push_is_stalling"] = func(v uint32) { sm.pushIsStalling = v != 0 }

	sm.getters["pull_is_stalling"] = func() uint32 { return boolToU32(sm.pullIsStalling) }
	sm.setters["pull_is_stalling"] = func(v uint32) { sm.pullIsStalling = v != 0 }

	sm.getters["wait_is_stalling"] = func() uint32 { return boolToU32(sm.waitIsStalling) }
	sm.setters["wait_is_stalling"] = func(v uint32) { sm.waitIsStalling = v != 0 }

	sm.getters["irq_is_waiting"] = func() uint32 { return boolToU32(sm.irqIsWaiting) }
	sm.setters["irq_is_waiting"] = func(v uint32) { sm.irqIsWaiting = v != 0 }

	for i := 0; i < 4; i++ {
		i := i
		txKey := fmt.Sprintf("tx_fifo%d", i)
		sm.getters[txKey] = func() uint32 { return sm.TX.Raw(i) }
		sm.setters[txKey] = func(v uint32) { sm.TX.SetRaw(i, v) }

		rxKey := fmt.Sprintf("rx_fifo%d", i)
		sm.getters[rxKey] = func() uint32 { return sm.RX.Raw(i) }
		sm.setters[rxKey] = func(v uint32) { sm.RX.SetRaw(i, v) }
	}

	for i := 0; i < 32; i++ {
		i := i
		gpioKey := fmt.Sprintf("gpio%d", i)
		sm.getters[gpioKey] = func() uint32 { return uint32(sm.GPIO.RawData[i]) }
		sm.setters[gpioKey] = func(v uint32) { sm.GPIO.RawData[i] = uint8(v) & 1 }

		pindirKey := fmt.Sprintf("pindir%d", i)
		sm.getters[pindirKey] = func() uint32 { return uint32(sm.GPIO.Pindirs[i]) }
		sm.setters[pindirKey] = func(v uint32) { sm.GPIO.Pindirs[i] = uint8(v) & 1 }

		externalKey := fmt.Sprintf("external%d", i)
		sm.getters[externalKey] = func() uint32 { return uint32(sm.GPIO.ExternalData[i]) }
		sm.setters[externalKey] = func(v uint32) {
			if v > 1 {
				sm.GPIO.ExternalData[i] = -1
				return
			}
			sm.GPIO.ExternalData[i] = int8(v)
		}
	}

	for i := uint8(0); i < 8; i++ {
		i := i
		irqKey := fmt.Sprintf("irq%d", i)
		sm.getters[irqKey] = func() uint32 { return boolToU32(sm.IRQ.Get(i)) }
		sm.setters[irqKey] = func(v uint32) {
			if v != 0 {
				sm.IRQ.Set(i)
			} else {
				sm.IRQ.Clear(i)
			}
		}
	}
}

func boolToU32(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// GetVar reads a named field through the reflection façade. Unknown names
// return 0, matching the "missing field reads as zero" stance spec.md takes
// for a system with no language-level reflection to fall back on.
func (sm *StateMachine) GetVar(name string) uint32 {
	if fn, ok := sm.getters[name]; ok {
		return fn()
	}
	return 0
}

// SetVar writes a named field through the reflection façade. Unknown names
// are silently ignored.
func (sm *StateMachine) SetVar(name string, value uint32) {
	if fn, ok := sm.setters[name]; ok {
		fn(value)
	}
}

// RunUntil ticks until the named field equals target or maxCycles elapse,
// reporting whether the target was actually reached.
func (sm *StateMachine) RunUntil(name string, target uint32, maxCycles int) bool {
	for i := 0; i < maxCycles; i++ {
		if sm.GetVar(name) == target {
			return true
		}
		sm.Tick()
	}
	return sm.GetVar(name) == target
}
