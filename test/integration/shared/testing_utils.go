// Package shared contains testing utilities shared between integration tests.
// It provides common functions for sandboxing the Movey home directory,
// capturing output, and running the real commands through a fresh CLI.
package shared

import (
	"bytes"
	"io"
	"log"
	"os"
	"testing"

	"github.com/movey-net/movey-cli/cmd"
	"github.com/movey-net/movey-cli/internal/configs"
	logger "github.com/movey-net/movey-cli/internal/logging"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// CredentialFile mirrors the credential document shape the tests assert on.
// Unknown fields are deliberately absent; preservation tests decode into a
// generic map instead.
type CredentialFile struct {
	Registry RegistrySection `toml:"registry"`
}

// RegistrySection is the registry table of the credential file.
type RegistrySection struct {
	Token   string `toml:"token"`
	Version string `toml:"version"`
}

// SetupMoveyHome points TEST_MOVE_HOME at a fresh temp directory and returns
// the sandboxed home a command run with --test-path suffix will resolve,
// along with the credential file path inside it. The home directory itself is
// not created; that is the command's job.
func SetupMoveyHome(t *testing.T, suffix string) (string, string) {
	t.Helper()

	base := t.TempDir()
	t.Setenv(configs.EnvTestMoveHome, base)

	home := base + suffix
	return home, configs.CredentialPath(home)
}

// CaptureOutput captures both stdout and stderr during function execution.
func CaptureOutput(fn func() error) (string, error) {
	// Save original stdout and stderr
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	// Create pipes to capture output
	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	// Replace stdout and stderr
	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	// Channel to collect output
	outputChan := make(chan string, 2)

	// Start goroutines to read from pipes
	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stdoutReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, err := io.Copy(&buf, stderrReader)
		if err != nil {
			log.Fatalf("Failed to run copy command: %s", err)
		}
		outputChan <- buf.String()
	}()

	// Execute the function
	err := fn()

	// Close writers to signal EOF
	stdoutWriter.Close()
	stderrWriter.Close()

	// Restore original stdout and stderr
	os.Stdout = originalStdout
	os.Stderr = originalStderr

	// Collect output
	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// CreateTestCLI creates a complete CLI instance wired to the real commands,
// with stdin injected for the token prompt and the given verbosity flags.
func CreateTestCLI(subcommand string, stdin io.Reader, verboseFlag, debugFlag bool, extraArgs ...string) *cobra.Command {
	// The command objects are package globals, so clear flag values and
	// Changed markers left over from earlier Execute calls.
	cmd.ResetGlobalState()
	cmd.SetLogger(logger.Logger{
		Verbose: verboseFlag,
		Debug:   debugFlag,
	})

	rootCmd := &cobra.Command{
		Use:           "movey",
		Short:         "Movey - A CLI for interacting with the Movey package registry.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(cmd.LoginCmd)
	rootCmd.AddCommand(cmd.LogoutCmd)

	if stdin != nil {
		rootCmd.SetIn(stdin)
	}

	args := append([]string{subcommand}, extraArgs...)
	if verboseFlag {
		args = append(args, "--verbose")
	}
	if debugFlag {
		args = append(args, "--debug")
	}
	rootCmd.SetArgs(args)

	return rootCmd
}

// ReadCredentialFile decodes the credential file into the test shape.
func ReadCredentialFile(t *testing.T, path string) CredentialFile {
	t.Helper()

	var file CredentialFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		t.Fatalf("Failed to decode credential file %s: %v", path, err)
	}
	return file
}

// ReadCredentialDocument decodes the credential file into a generic map for
// field-preservation assertions.
func ReadCredentialDocument(t *testing.T, path string) map[string]interface{} {
	t.Helper()

	doc := map[string]interface{}{}
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		t.Fatalf("Failed to decode credential file %s: %v", path, err)
	}
	return doc
}

// WriteCredentialFile writes raw TOML content at path, creating the home
// directory first so tests can seed prior state.
func WriteCredentialFile(t *testing.T, home, path, content string) {
	t.Helper()

	if err := os.MkdirAll(home, 0700); err != nil {
		t.Fatalf("Failed to create home directory %s: %v", home, err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write credential file %s: %v", path, err)
	}
}
