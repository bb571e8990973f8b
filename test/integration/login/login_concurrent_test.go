package login_test

import (
	"sync"
	"testing"

	"github.com/movey-net/movey-cli/internal/configs"
	"github.com/movey-net/movey-cli/test/integration/shared"
)

// TestConcurrentSavesLastWriterWins documents the known cross-process race on
// the credential file: updates are plain read-modify-write cycles with no
// locking or atomic rename, so when two invocations overlap, one whole-file
// write lands last and wins. The guarantee tested here is only that the file
// stays parseable and holds exactly one of the competing tokens — nothing
// merges across writers.
func TestConcurrentSavesLastWriterWins(t *testing.T) {
	home, credentialPath := shared.SetupMoveyHome(t, "/concurrent-saves")
	shared.WriteCredentialFile(t, home, credentialPath, "[registry]\nversion = \"0.0.0\"\n")

	tokens := []string{"token_a", "token_b", "token_c", "token_d"}

	var wg sync.WaitGroup
	for _, token := range tokens {
		wg.Add(1)
		go func(token string) {
			defer wg.Done()
			if err := configs.SaveCredential(token, home); err != nil {
				t.Errorf("SaveCredential(%q) failed: %v", token, err)
			}
		}(token)
	}
	wg.Wait()

	file := shared.ReadCredentialFile(t, credentialPath)

	saved := false
	for _, token := range tokens {
		if file.Registry.Token == token {
			saved = true
		}
	}
	if !saved {
		t.Errorf("Expected one of %v to win, got %q", tokens, file.Registry.Token)
	}
}
