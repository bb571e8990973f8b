package configs

import (
	"fmt"
	"os"

	moveyerrors "github.com/movey-net/movey-cli/internal/errors"
)

// Keys of the credential document targeted by updates. Everything else in the
// file is opaque to this tool and survives a rewrite untouched.
const (
	registrySection = "registry"
	tokenField      = "token"
)

// SaveCredential inserts or overwrites registry.token in
// <home>/credential.toml and restricts the file to owner read/write.
//
// The update is a full read-modify-write of the document: all fields outside
// registry.token are preserved, though the serializer may re-render
// formatting. There is no cross-process locking, so two concurrent
// invocations race and the last writer wins; see the concurrency test in
// test/integration/login.
func SaveCredential(token, home string) error {
	credentialPath := CredentialPath(home)

	// Create an empty file if missing so the read below cannot fail on a
	// fresh home directory.
	if _, err := os.Stat(credentialPath); os.IsNotExist(err) {
		file, err := os.Create(credentialPath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", credentialPath, err)
		}
		file.Close()
	}

	doc, err := readCredentialDocument(credentialPath)
	if err != nil {
		return err
	}

	registry, ok := doc.Table(registrySection)
	if !ok {
		registry = map[string]interface{}{}
		doc[registrySection] = registry
	}
	registry[tokenField] = token

	return writeCredentialDocument(credentialPath, doc)
}

// ReadCredentialToken returns the token saved under the registry section.
// An empty saved token is returned as-is; only a missing field or file is an
// error.
func ReadCredentialToken(home string) (string, error) {
	credentialPath := CredentialPath(home)

	doc, err := readCredentialDocument(credentialPath)
	if err != nil {
		return "", err
	}

	registry, ok := doc.Table(registrySection)
	if !ok {
		return "", moveyerrors.ErrTokenNotFound
	}
	token, ok := registry[tokenField].(string)
	if !ok {
		return "", moveyerrors.ErrTokenNotFound
	}
	return token, nil
}

// RemoveCredential deletes registry.token from <home>/credential.toml,
// preserving the rest of the document, and re-restricts the file permissions.
func RemoveCredential(home string) error {
	credentialPath := CredentialPath(home)

	doc, err := readCredentialDocument(credentialPath)
	if err != nil {
		return err
	}

	registry, ok := doc.Table(registrySection)
	if !ok {
		return moveyerrors.ErrTokenNotFound
	}
	if _, ok := registry[tokenField]; !ok {
		return moveyerrors.ErrTokenNotFound
	}
	delete(registry, tokenField)

	return writeCredentialDocument(credentialPath, doc)
}

// readCredentialDocument reads and parses the credential file.
// The "Error reading input" and "could not parse input as TOML" message
// fragments are a compatibility contract: callers and tests match on them.
func readCredentialDocument(credentialPath string) (Document, error) {
	contents, err := os.ReadFile(credentialPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, moveyerrors.ErrNoCredentialFile
		}
		return nil, fmt.Errorf("Error reading input: %w", err)
	}

	doc, err := ParseDocument(string(contents))
	if err != nil {
		return nil, fmt.Errorf("could not parse input as TOML: %w", err)
	}
	return doc, nil
}

// writeCredentialDocument serializes the document, fully replaces the file
// contents, and restricts the file to owner read/write. A write failure is
// fatal; a partially written credential file must never pass silently.
func writeCredentialDocument(credentialPath string, doc Document) error {
	encoded, err := EncodeDocument(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize credential file: %w", err)
	}

	if err := os.WriteFile(credentialPath, encoded, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", credentialPath, err)
	}

	return restrictToOwner(credentialPath)
}
