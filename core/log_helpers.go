package core

import (
	"fmt"
	"runtime"

	"github.com/pioemu/piosim/logger"
)

func callerSource() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "core"
	}
	return fmt.Sprintf("%s:%d", file, line)
}

func (sm *StateMachine) warnf(format string, args ...any) {
	sm.Logger.Log(logger.Warning, callerSource(), format, args...)
}

func (sm *StateMachine) errorf(format string, args ...any) {
	sm.Logger.Log(logger.Error, callerSource(), format, args...)
}

func (sm *StateMachine) debugf(format string, args ...any) {
	sm.Logger.Log(logger.Debug, callerSource(), format, args...)
}
