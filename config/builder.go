// Package config turns external configuration — INI files or a builder used
// directly by Go callers — into the core package's immutable Settings
// record, mirroring the teacher's split between a mutable
// StateMachineConfig and the registers it eventually programs.
package config

import "github.com/pioemu/piosim/core"

// Builder accumulates settings through chained setters and produces an
// immutable core.Settings with Build. Each setter validates its own inputs
// at build time rather than deferring bad pin wiring to tick() — the same
// boundary the teacher's StateMachineConfig setters draw.
type Builder struct {
	s core.Settings
}

func NewBuilder() *Builder {
	return &Builder{s: core.DefaultSettings()}
}

func checkPinBaseAndCount(base int8, count uint8) {
	if base < -1 || base > 31 {
		panic("config: bad pin base")
	}
	if count > 32 {
		panic("config: pin count too large")
	}
}

func (b *Builder) SetWrap(start, end uint8) *Builder {
	if start > 31 || end > 31 {
		panic("config: wrap bounds out of range 0..31")
	}
	b.s.WrapStart = start
	b.s.WrapEnd = end
	return b
}

func (b *Builder) SetInShift(shiftRight, autopush bool, pushThreshold uint8) *Builder {
	b.s.InShiftRight = shiftRight
	b.s.AutopushEnable = autopush
	b.s.PushThreshold = normalizeThreshold(pushThreshold)
	return b
}

func (b *Builder) SetOutShift(shiftRight, autopull bool, pullThreshold uint8) *Builder {
	b.s.OutShiftRight = shiftRight
	b.s.AutopullEnable = autopull
	b.s.PullThreshold = normalizeThreshold(pullThreshold)
	return b
}

func normalizeThreshold(n uint8) uint8 {
	if n == 0 || n > 32 {
		return 32
	}
	return n
}

func (b *Builder) SetSidesetParams(count uint8, opt, toPindirs bool) *Builder {
	if count > 5 {
		panic("config: sideset count too large")
	}
	b.s.SidesetCount = count
	b.s.SidesetOpt = opt
	b.s.SidesetToPindirs = toPindirs
	return b
}

func (b *Builder) SetSidesetPins(base int8) *Builder {
	checkPinBaseAndCount(base, 0)
	b.s.SidesetBase = base
	return b
}

func (b *Builder) SetInPins(base int8) *Builder {
	checkPinBaseAndCount(base, 0)
	b.s.InBase = base
	return b
}

func (b *Builder) SetOutPins(base int8, count uint8) *Builder {
	checkPinBaseAndCount(base, count)
	b.s.OutBase = base
	b.s.OutCount = count
	return b
}

func (b *Builder) SetSetPins(base int8, count uint8) *Builder {
	checkPinBaseAndCount(base, count)
	if count > 5 {
		panic("config: set pin count too large")
	}
	b.s.SetBase = base
	b.s.SetCount = count
	return b
}

func (b *Builder) SetJmpPin(pin int8) *Builder {
	checkPinBaseAndCount(pin, 0)
	b.s.JmpPin = pin
	return b
}

func (b *Builder) SetMovStatus(sel, n uint8) *Builder {
	b.s.StatusSel = sel
	b.s.StatusN = n
	return b
}

func (b *Builder) Build() core.Settings {
	return b.s
}
