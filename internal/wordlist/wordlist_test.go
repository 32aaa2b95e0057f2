package wordlist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pack.txt")
	body := "# bees\n  owl  \n\nhen\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}
	words, err := LoadWords(path)
	if err != nil {
		t.Fatalf("load words: %v", err)
	}
	if len(words) != 2 || words[0] != "owl" || words[1] != "hen" {
		t.Fatalf("unexpected words: %v", words)
	}
}

func TestLoadWordsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("\n# nothing\n"), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}
	if _, err := LoadWords(path); err == nil {
		t.Fatalf("expected error for empty list")
	}
}
