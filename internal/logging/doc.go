// Package logger provides leveled logging for Movey CLI commands.
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: shows info messages
//   - --debug: shows all messages including debug details
//
// Warnings and errors are always shown and go to stderr so they never mix
// with command output that scripts may parse.
//
// Commands create a logger when they start running:
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Debugf("Movey home resolved to: %s", home)
package logger
