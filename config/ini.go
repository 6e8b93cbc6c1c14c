package config

import (
	"fmt"
	"strconv"

	"github.com/pioemu/piosim/core"
	"gopkg.in/ini.v1"
)

// Loaded bundles what LoadINI extracts from a config file: the settings
// record for the state machine plus the program it should run.
type Loaded struct {
	Settings  core.Settings
	Program   [32]uint16
	InitialPC uint8
}

// LoadINI reads a [settings] + [program] INI file, the format spec.md names
// as the reset(config_path) boundary's on-disk shape. Missing keys fall
// back to core.DefaultSettings' values, except that in_shift_right and
// out_shift_right default to true when a [settings] section is present;
// program words are given as hex literals ("0x6021") under keys
// instr0..instr31.
func LoadINI(path string) (Loaded, error) {
	f, err := ini.Load(path)
	if err != nil {
		return Loaded{}, fmt.Errorf("config: load %s: %w", path, err)
	}

	b := NewBuilder()
	if sec, err := f.GetSection("settings"); err == nil {
		applySettings(b, sec)
	}

	var program [32]uint16
	if sec, err := f.GetSection("program"); err == nil {
		for i := 0; i < 32; i++ {
			key := sec.Key(fmt.Sprintf("instr%d", i))
			if key.String() == "" {
				continue
			}
			v, err := strconv.ParseUint(key.String(), 0, 16)
			if err != nil {
				return Loaded{}, fmt.Errorf("config: program instr%d: %w", i, err)
			}
			program[i] = uint16(v)
		}
	}

	var initialPC uint8
	if sec, err := f.GetSection("settings"); err == nil && sec.HasKey("initial_pc") {
		v := sec.Key("initial_pc").MustInt(0)
		if v < 0 || v > 31 {
			return Loaded{}, fmt.Errorf("config: %w: %d", core.ErrInitialPCRange, v)
		}
		initialPC = uint8(v)
	}

	return Loaded{Settings: b.Build(), Program: program, InitialPC: initialPC}, nil
}

func applySettings(b *Builder, sec *ini.Section) {
	sidesetCount := uint8(sec.Key("sideset_count").MustUint(0))
	sidesetOpt := sec.Key("sideset_opt").MustBool(false)
	sidesetToPindirs := sec.Key("sideset_to_pindirs").MustBool(false)
	b.SetSidesetParams(sidesetCount, sidesetOpt, sidesetToPindirs)

	if v, err := sec.Key("sideset_base").Int(); err == nil {
		b.SetSidesetPins(int8(v))
	}
	if v, err := sec.Key("in_base").Int(); err == nil {
		b.SetInPins(int8(v))
	}
	if sec.HasKey("out_base") {
		base := int8(sec.Key("out_base").MustInt(-1))
		count := uint8(sec.Key("out_count").MustUint(0))
		b.SetOutPins(base, count)
	}
	if sec.HasKey("set_base") {
		base := int8(sec.Key("set_base").MustInt(-1))
		count := uint8(sec.Key("set_count").MustUint(0))
		b.SetSetPins(base, count)
	}
	if v, err := sec.Key("jmp_pin").Int(); err == nil {
		b.SetJmpPin(int8(v))
	}

	inShiftRight := sec.Key("in_shift_right").MustBool(true)
	autopush := sec.Key("autopush").MustBool(false)
	pushThreshold := uint8(sec.Key("push_threshold").MustUint(32))
	b.SetInShift(inShiftRight, autopush, pushThreshold)

	outShiftRight := sec.Key("out_shift_right").MustBool(true)
	autopull := sec.Key("autopull").MustBool(false)
	pullThreshold := uint8(sec.Key("pull_threshold").MustUint(32))
	b.SetOutShift(outShiftRight, autopull, pullThreshold)

	wrapStart := uint8(sec.Key("wrap_start").MustUint(0))
	wrapEnd := uint8(sec.Key("wrap_end").MustUint(31))
	b.SetWrap(wrapStart, wrapEnd)

	statusSel := uint8(sec.Key("status_sel").MustUint(0))
	statusN := uint8(sec.Key("status_n").MustUint(1))
	b.SetMovStatus(statusSel, statusN)
}
