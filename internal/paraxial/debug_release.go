//go:build !debug
// +build !debug

package paraxial

func DebugLog(format string, args ...interface{}) {}

func DebugLogOnce(format string, args ...interface{}) {}
