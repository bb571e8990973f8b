package configs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Environment variables consulted when resolving the Movey home directory.
const (
	// EnvMoveHome overrides the production Movey home directory.
	EnvMoveHome = "MOVE_HOME"

	// EnvTestMoveHome is the sandbox base directory used in test mode.
	// It must be set by the test harness whenever test mode is active.
	EnvTestMoveHome = "TEST_MOVE_HOME"
)

// CredentialFileName is the fixed name of the credential file inside the
// Movey home directory.
const CredentialFileName = "credential.toml"

// defaultMoveDir is the directory under the user's home directory used when
// MOVE_HOME is not set.
const defaultMoveDir = ".move"

// TestMode redirects home resolution into a sandbox rooted at TEST_MOVE_HOME.
// It is only ever constructed from the hidden --test-path flag used by the
// test suite; production invocations never carry one.
type TestMode struct {
	// TestPath is a path suffix appended to TEST_MOVE_HOME so that
	// concurrently running tests get disjoint home directories.
	TestPath string
}

// ResolveMoveyHome returns the directory that holds the credential file,
// creating it and any missing parent directories first.
//
// Resolution takes exactly one branch: the TEST_MOVE_HOME sandbox when
// testMode is non-nil, else MOVE_HOME, else <home>/.move. A nil TEST_MOVE_HOME
// in test mode is a misconfigured caller, not a runtime condition, so it
// panics rather than returning an error.
func ResolveMoveyHome(testMode *TestMode) (string, error) {
	var moveyHome string

	switch {
	case testMode != nil:
		base := os.Getenv(EnvTestMoveHome)
		if base == "" {
			panic(EnvTestMoveHome + " must be set when resolving the Movey home in test mode")
		}
		// The suffix is appended verbatim; the harness passes it with a
		// leading separator.
		moveyHome = base + testMode.TestPath
	case os.Getenv(EnvMoveHome) != "":
		moveyHome = os.Getenv(EnvMoveHome)
	default:
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		moveyHome = filepath.Join(homeDir, defaultMoveDir)
	}

	if err := os.MkdirAll(moveyHome, 0700); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", moveyHome, err)
	}

	return moveyHome, nil
}

// CredentialPath returns the path of the credential file under home.
func CredentialPath(home string) string {
	return filepath.Join(home, CredentialFileName)
}
