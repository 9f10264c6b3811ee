//go:build !linux

package terminal

// resetTerminalMode is a no-op off linux, tcell restores the mode on Fini
func resetTerminalMode() {}
