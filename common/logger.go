package common

import (
	"fmt"

	"github.com/devlights/gomy/output"
)

type LogLevel int32

const (
	DEBUG_INFO_DETAIL LogLevel = 1
	DEBUG_INFO         LogLevel = 2
	INFO               LogLevel = 16
	WARN               LogLevel = 32
	ERROR              LogLevel = 64
	FATAL              LogLevel = 128
)

// LogLevelSetting gates which levels ShPrintf actually emits. Tests leave
// it at the default (errors and above only) unless they need to observe
// buffer pool / replacer tracing.
var LogLevelSetting LogLevel = ERROR | FATAL

func ShPrintf(logLevel LogLevel, fmtStl string, a ...interface{}) {
	if logLevel&LogLevelSetting > 0 {
		fmt.Printf(fmtStl, a...)
	}
}

// Trace emits a labeled debug line through gomy/output when
// LogLevelSetting includes DEBUG_INFO, and nothing otherwise. Used for the
// kind of one-off tracing ShPrintf's format strings aren't meant for
// (victim-selection and eviction decisions during development).
func Trace(label string, args ...interface{}) {
	if LogLevelSetting&DEBUG_INFO == 0 {
		return
	}
	output.Stdoutl(label, args...)
}
