package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestPromptForToken(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantToken   string
		wantRetries int
	}{
		{"SingleLine", "test_token\n", "test_token", 0},
		{"StripsCarriageReturn", "test_token\r\n", "test_token", 0},
		{"RetriesEmptyLines", "\n\ntest_token\n", "test_token", 2},
		{"CarriageReturnOnlyIsEmpty", "\r\ntest_token\n", "test_token", 1},
		{"LastLineWithoutNewline", "test_token", "test_token", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			token, err := promptForToken(strings.NewReader(tt.input), &out)
			if err != nil {
				t.Fatalf("promptForToken failed: %v", err)
			}
			if token != tt.wantToken {
				t.Errorf("Expected token %q, got %q", tt.wantToken, token)
			}
			if got := strings.Count(out.String(), "Invalid API Token. Try again!"); got != tt.wantRetries {
				t.Errorf("Expected %d retry messages, got %d", tt.wantRetries, got)
			}
		})
	}
}

func TestPromptForTokenEOF(t *testing.T) {
	var out bytes.Buffer
	_, err := promptForToken(strings.NewReader(""), &out)
	if err == nil {
		t.Fatal("Expected an error on EOF before any token")
	}
	if !strings.Contains(err.Error(), "Error reading file:") {
		t.Errorf("Expected read-error context in %q", err.Error())
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("stdin exploded")
}

func TestPromptForTokenReadError(t *testing.T) {
	var out bytes.Buffer
	_, err := promptForToken(failingReader{}, &out)
	if err == nil {
		t.Fatal("Expected an error when the reader fails")
	}
	if !strings.Contains(err.Error(), "Error reading file: stdin exploded") {
		t.Errorf("Expected wrapped reader error in %q", err.Error())
	}
}
