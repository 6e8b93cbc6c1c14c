package core

// execPULL refills OSR from the TX FIFO. IfEmpty gates the pull on the
// threshold; Block stalls while the FIFO is empty instead of falling back
// to X. A non-blocking PULL against an empty FIFO copies X into OSR, the
// RP2040's documented fallback for software-driven FIFO feeds.
func (sm *StateMachine) execPULL(operand uint8) {
	ifEmpty := (operand>>6)&1 == 1
	block := (operand>>5)&1 == 1

	if !sm.TX.Empty() {
		if ifEmpty && sm.Regs.OSRCount < sm.Settings.PullThreshold {
			return
		}
		v, _ := sm.TX.Pop()
		sm.Regs.OSR = v
		sm.Regs.OSRCount = 0
		sm.pullIsStalling = false
		return
	}

	if block {
		sm.skipIncreasePC = true
		sm.delayDelay = true
		sm.pullIsStalling = true
		return
	}

	sm.Regs.OSR = sm.Regs.X
	sm.Regs.OSRCount = 0
	sm.pullIsStalling = false
}
