package login_test

import (
	"os"
	"strings"
	"testing"

	"github.com/movey-net/movey-cli/test/integration/shared"
)

// TestLoginBasic contains basic integration tests for the `movey login` command.
func TestLoginBasic(t *testing.T) {
	t.Run("SavesTokenToNewHome", testSavesTokenToNewHome)
	t.Run("PromptContainsSettingsURL", testPromptContainsSettingsURL)
	t.Run("RetriesUntilTokenIsNonEmpty", testRetriesUntilTokenIsNonEmpty)
	t.Run("StripsCarriageReturn", testStripsCarriageReturn)
	t.Run("WithVerboseFlag", testLoginWithVerboseFlag)
}

// testSavesTokenToNewHome tests login against a home directory that does not
// exist yet: the directory and credential file are both created.
func testSavesTokenToNewHome(t *testing.T) {
	home, credentialPath := shared.SetupMoveyHome(t, "/login-new-home")

	output, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI("login", strings.NewReader("test_token\n"), false, false, "--test-path", "/login-new-home")
		return cli.Execute()
	})
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}

	if _, err := os.Stat(home); err != nil {
		t.Errorf("Home directory was not created at %s: %v", home, err)
	}

	file := shared.ReadCredentialFile(t, credentialPath)
	if file.Registry.Token != "test_token" {
		t.Errorf("Expected token %q, got %q", "test_token", file.Registry.Token)
	}

	if !strings.Contains(output, "Token for Movey saved.") {
		t.Errorf("Expected confirmation message not found in output: %s", output)
	}
}

// testPromptContainsSettingsURL tests that the prompt names the token
// settings page of the registry this build talks to.
func testPromptContainsSettingsURL(t *testing.T) {
	shared.SetupMoveyHome(t, "/login-prompt-url")

	output, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI("login", strings.NewReader("test_token\n"), false, false, "--test-path", "/login-prompt-url")
		return cli.Execute()
	})
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}

	// Dev builds point at the staging registry.
	want := "Please paste the API Token found on https://movey-app-staging.herokuapp.com/settings/tokens below"
	if !strings.Contains(output, want) {
		t.Errorf("Expected prompt %q not found in output: %s", want, output)
	}
}

// testRetriesUntilTokenIsNonEmpty tests that empty lines are rejected with a
// retry message until a non-empty token arrives.
func testRetriesUntilTokenIsNonEmpty(t *testing.T) {
	_, credentialPath := shared.SetupMoveyHome(t, "/login-retry")

	output, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI("login", strings.NewReader("\n\ntest_token\n"), false, false, "--test-path", "/login-retry")
		return cli.Execute()
	})
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}

	if count := strings.Count(output, "Invalid API Token. Try again!"); count != 2 {
		t.Errorf("Expected 2 retry messages, got %d in output: %s", count, output)
	}

	file := shared.ReadCredentialFile(t, credentialPath)
	if file.Registry.Token != "test_token" {
		t.Errorf("Expected token %q, got %q", "test_token", file.Registry.Token)
	}
}

// testStripsCarriageReturn tests that a CRLF-terminated token is saved
// without the carriage return.
func testStripsCarriageReturn(t *testing.T) {
	_, credentialPath := shared.SetupMoveyHome(t, "/login-crlf")

	output, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI("login", strings.NewReader("test_token\r\n"), false, false, "--test-path", "/login-crlf")
		return cli.Execute()
	})
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}

	file := shared.ReadCredentialFile(t, credentialPath)
	if file.Registry.Token != "test_token" {
		t.Errorf("Expected token %q, got %q", "test_token", file.Registry.Token)
	}
}

// testLoginWithVerboseFlag tests that verbose mode still saves the token and
// emits info logging.
func testLoginWithVerboseFlag(t *testing.T) {
	_, credentialPath := shared.SetupMoveyHome(t, "/login-verbose")

	output, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI("login", strings.NewReader("test_token\n"), true, false, "--test-path", "/login-verbose")
		return cli.Execute()
	})
	if err != nil {
		t.Fatalf("Command failed: %v\nOutput: %s", err, output)
	}

	if !strings.Contains(output, "[info]") {
		t.Errorf("Expected verbose info output, got: %s", output)
	}

	file := shared.ReadCredentialFile(t, credentialPath)
	if file.Registry.Token != "test_token" {
		t.Errorf("Expected token %q, got %q", "test_token", file.Registry.Token)
	}
}
