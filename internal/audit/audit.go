package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/movey-net/movey-cli/internal/utils"

	"github.com/google/uuid"
)

// FileName is the audit trail file inside the Movey home directory.
const FileName = "audit.jsonl"

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp string `json:"ts"`   // RFC3339 with microseconds.
	ID        string `json:"id"`   // Invocation UUID.
	User      string `json:"user"` // OS username performing the action.
	Host      string `json:"host"` // Hostname the action ran on.
	Operation string `json:"op"`   // Operation name ("login", "logout").

	// TokenDigest is a SHA-256 fingerprint of the token involved, never
	// the raw token. Empty for operations without one.
	TokenDigest string `json:"token_digest,omitempty"`
}

// FingerprintToken returns a short SHA-256 fingerprint of a token that is
// safe to write to the audit trail.
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:8])
}

// Log appends an entry to <home>/audit.jsonl, filling in timestamp, ID, user
// and host when unset. Failures are swallowed: a credential operation must
// not fail because audit logging did.
func Log(home string, entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.User == "" {
		if username, err := utils.GetUsername(); err == nil {
			entry.User = username
		}
	}
	if entry.Host == "" {
		if hostname, err := utils.GetHostname(); err == nil {
			entry.Host = hostname
		}
	}

	logPath := filepath.Join(home, FileName)

	// The trail sits next to the credential file, so keep it owner-only too.
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}
