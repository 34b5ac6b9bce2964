package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"dungeoncrawl/internal/config"
)

func TestLoadOrCreateHostKeyPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")

	first, err := loadOrCreateHostKey(path)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("host key not written: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("host key mode = %o, want 600", perm)
	}

	second, err := loadOrCreateHostKey(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !bytes.Equal(first.PublicKey().Marshal(), second.PublicKey().Marshal()) {
		t.Error("reloaded key differs from the generated one")
	}
}

func TestLoadOrCreateHostKeyReplacesGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	if err := os.WriteFile(path, []byte("not a key"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadOrCreateHostKey(path); err != nil {
		t.Fatalf("loadOrCreateHostKey: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("PRIVATE KEY")) {
		t.Errorf("garbage key was not replaced: %q", data)
	}
}

func TestSessionSeed(t *testing.T) {
	h := &handler{cfg: config.Default()}
	if h.seed(1) == h.seed(2) {
		t.Error("sessions without a fixed seed should differ")
	}
	h.cfg.Seed = 42
	if h.seed(1) != 42 || h.seed(2) != 42 {
		t.Error("a fixed config seed should be used by every session")
	}
}
