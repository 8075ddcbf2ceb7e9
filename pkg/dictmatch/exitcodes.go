package dictmatch

// Exit codes returned by the dictmatch CLI.
// These constants allow external tools to check exit codes symbolically
// rather than using magic numbers.
const (
	// ExitSuccess indicates every case passed.
	ExitSuccess = 0

	// ExitAssertionFailed indicates at least one case failed or could not be evaluated.
	ExitAssertionFailed = 1

	// ExitConfigError indicates an invalid settings file, case file, or command line.
	ExitConfigError = 2

	// ExitRuntimeError indicates any other failure (unreadable file, interrupted run, etc.).
	ExitRuntimeError = 3
)
