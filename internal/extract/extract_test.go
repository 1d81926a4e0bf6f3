// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"trims whitespace", "  hello world  \n", "hello world"},
		{"empty", "", ""},
		{"whitespace only", " \t\n ", ""},
		{"interior whitespace kept", "a  b", "a  b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTextMissingFile(t *testing.T) {
	_, err := PDF{}.Text(filepath.Join(t.TempDir(), "missing.pdf"))
	if !errors.Is(err, ErrUnreadableDocument) {
		t.Errorf("err = %v, want ErrUnreadableDocument", err)
	}
}

func TestTextNotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.pdf")
	if err := os.WriteFile(path, []byte("just some text"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := PDF{}.Text(path)
	if !errors.Is(err, ErrUnreadableDocument) {
		t.Errorf("err = %v, want ErrUnreadableDocument", err)
	}
}
