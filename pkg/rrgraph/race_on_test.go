//go:build race

package rrgraph

func isRaceEnabled() bool { return true }
