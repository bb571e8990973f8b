package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/movey-net/movey-cli/internal/audit"
	"github.com/movey-net/movey-cli/internal/build"
	"github.com/movey-net/movey-cli/internal/configs"
	"github.com/movey-net/movey-cli/internal/ui"
	"github.com/movey-net/movey-cli/internal/utils"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var loginTestPath string

func init() {
	registerOutputFlags(LoginCmd)
	LoginCmd.Flags().StringVar(&loginTestPath, "test-path", "", "sandbox suffix under TEST_MOVE_HOME (testing only)")
	if err := LoginCmd.Flags().MarkHidden("test-path"); err != nil {
		panic(err)
	}
}

// resetLoginCommandState resets the login command's global state for testing.
func resetLoginCommandState() {
	loginTestPath = ""
}

// LoginCmd prompts for a Movey API token and saves it into
// <movey-home>/credential.toml.
var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Save your Movey API token for publishing packages",
	Long: `Prompts for the API Token from your Movey account settings page and saves
it into the credential file in your Movey home directory. The file is
restricted to owner read/write after every update.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting login command")

		url := build.RegistryURL()
		Logger.Debugf("Registry URL for this build: %s", ui.URL.Sprint(url))

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Please paste the API Token found on %s/settings/tokens below\n", url)

		if !utils.IsTerminal() {
			Logger.Debugf("stdin is not a terminal, reading token from piped input")
		}
		token, err := promptForToken(cmd.InOrStdin(), out)
		if err != nil {
			return err
		}

		// The test-path flag only produces a TestMode when it was
		// actually supplied; an absent flag means production resolution.
		var testMode *configs.TestMode
		if cmd.Flags().Changed("test-path") {
			testMode = &configs.TestMode{TestPath: loginTestPath}
		}

		moveyHome, err := configs.ResolveMoveyHome(testMode)
		if err != nil {
			return err
		}
		Logger.Debugf("Movey home resolved to: %s", ui.Path.Sprint(moveyHome))

		spinner, cleanup := startSpinner("Saving token...", verbose)
		defer cleanup()

		if err := configs.SaveCredential(token, moveyHome); err != nil {
			return err
		}
		audit.Log(moveyHome, audit.Entry{
			Operation:   "login",
			TokenDigest: audit.FingerprintToken(token),
		})
		Logger.Infof("Token saved to %s", ui.Path.Sprint(configs.CredentialPath(moveyHome)))

		spinner.FinalMSG = color.GreenString("✓") + " Token for Movey saved."
		return nil
	},
}

// promptForToken reads lines from in until a non-empty token is entered,
// stripping a trailing newline and carriage return. An I/O error aborts the
// prompt, as does EOF: retrying a closed stream would loop forever.
func promptForToken(in io.Reader, out io.Writer) (string, error) {
	reader := bufio.NewReader(in)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", fmt.Errorf("Error reading file: %v", err)
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if line != "" {
			return line, nil
		}

		if err == io.EOF {
			return "", fmt.Errorf("Error reading file: %v", io.EOF)
		}
		fmt.Fprintln(out, "Invalid API Token. Try again!")
	}
}
