package core

// IRQBank holds the eight shared IRQ flags. It is shared by pointer across
// every state machine in a PIO block so that IRQ set by one machine is
// visible to WAIT/IRQ instructions on another.
type IRQBank struct {
	flags [8]bool
}

func NewIRQBank() *IRQBank { return &IRQBank{} }

func (b *IRQBank) Get(i uint8) bool { return b.flags[i&0b111] }
func (b *IRQBank) Set(i uint8)      { b.flags[i&0b111] = true }
func (b *IRQBank) Clear(i uint8)    { b.flags[i&0b111] = false }
