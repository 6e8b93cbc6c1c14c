package core

// Settings is the immutable-during-run configuration record for one state
// machine: pin wiring, shift directions/thresholds, side-set shape and wrap
// bounds. A base of -1 means "unset"; instructions that would use an unset
// base warn and become a no-op instead of panicking, since the ISA itself
// allows programs to never touch pins they don't use.
type Settings struct {
	SidesetCount     uint8 // 0..5
	SidesetOpt       bool
	SidesetToPindirs bool
	SidesetBase      int8

	InBase  int8
	OutBase int8
	SetBase int8
	JmpPin  int8

	OutCount uint8
	SetCount uint8

	InShiftRight  bool
	OutShiftRight bool

	AutopushEnable bool
	AutopullEnable bool
	PushThreshold  uint8 // 1..32
	PullThreshold  uint8 // 1..32

	WrapStart uint8
	WrapEnd   uint8

	StatusSel uint8 // 0: TX level comparison, 1: RX level comparison
	StatusN   uint8 // fifo_level_N threshold used by MOV STATUS
}

// DefaultSettings mirrors the RP2040's own reset state for a state machine:
// no pins wired, full 32-bit thresholds, wrap across the whole 32-word
// program memory.
func DefaultSettings() Settings {
	return Settings{
		SidesetBase:   -1,
		InBase:        -1,
		OutBase:       -1,
		SetBase:       -1,
		JmpPin:        -1,
		PushThreshold: 32,
		PullThreshold: 32,
		WrapStart:     0,
		WrapEnd:       31,
		StatusN:       1,
	}
}
