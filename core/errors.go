package core

import "errors"

// Sentinel errors for the configuration boundary. config.LoadINI wraps
// ErrInitialPCRange; no function in this module returns ErrProgramTooLong,
// since program memory is a fixed [32]uint16 everywhere. Runtime
// conditions inside tick() (reserved opcodes, unset bases, IRQ index out of
// range) are never fatal: they are logged through Logger and the
// instruction degrades to a no-op, matching the ISA's own tolerance for
// programs that exercise reserved encodings.
var (
	ErrProgramTooLong = errors.New("core: program exceeds 32 instruction words")
	ErrInitialPCRange = errors.New("core: initial PC out of range 0..31")
)

// badFIFOIndex is a panic string for programmer errors: an out-of-range
// index into the fixed 4-slot FIFO array, passed directly by the caller
// rather than arriving from a running program.
const badFIFOIndex = "core: fifo index out of range 0..3"
