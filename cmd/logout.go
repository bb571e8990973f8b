package cmd

import (
	"errors"

	"github.com/movey-net/movey-cli/internal/audit"
	"github.com/movey-net/movey-cli/internal/configs"
	moveyerrors "github.com/movey-net/movey-cli/internal/errors"
	"github.com/movey-net/movey-cli/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var logoutTestPath string

func init() {
	registerOutputFlags(LogoutCmd)
	LogoutCmd.Flags().StringVar(&logoutTestPath, "test-path", "", "sandbox suffix under TEST_MOVE_HOME (testing only)")
	if err := LogoutCmd.Flags().MarkHidden("test-path"); err != nil {
		panic(err)
	}
}

// resetLogoutCommandState resets the logout command's global state for testing.
func resetLogoutCommandState() {
	logoutTestPath = ""
}

// LogoutCmd removes the saved Movey API token from the credential file,
// leaving every other field of the file in place.
var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove your saved Movey API token",
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting logout command")

		var testMode *configs.TestMode
		if cmd.Flags().Changed("test-path") {
			testMode = &configs.TestMode{TestPath: logoutTestPath}
		}

		moveyHome, err := configs.ResolveMoveyHome(testMode)
		if err != nil {
			return err
		}
		Logger.Debugf("Movey home resolved to: %s", ui.Path.Sprint(moveyHome))

		spinner, cleanup := startSpinner("Removing token...", verbose)
		defer cleanup()

		err = configs.RemoveCredential(moveyHome)
		switch {
		case errors.Is(err, moveyerrors.ErrNoCredentialFile),
			errors.Is(err, moveyerrors.ErrTokenNotFound):
			spinner.FinalMSG = color.YellowString("!") + " No saved token found.\n" +
				color.CyanString("→") + " Run " + ui.Code.Sprint("movey login") + " to authenticate"
			return nil
		case err != nil:
			return err
		}

		audit.Log(moveyHome, audit.Entry{Operation: "logout"})
		Logger.Infof("Token removed from %s", ui.Path.Sprint(configs.CredentialPath(moveyHome)))

		spinner.FinalMSG = color.GreenString("✓") + " Token for Movey removed."
		return nil
	},
}
