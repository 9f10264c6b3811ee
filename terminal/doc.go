// @focus: #sys { term }
// Package terminal owns the tcell screen for a game session.
//
// Features:
//   - tty check before the screen takes over stdin
//   - Background event poller feeding a buffered key channel
//   - Non-blocking key reads for the game loop
//   - Clean terminal restoration on exit/panic
package terminal
