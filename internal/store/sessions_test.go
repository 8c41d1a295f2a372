package store

import (
	"context"
	"testing"
)

func TestSessionsRoundTrip(t *testing.T) {
	t.Setenv("PROSYNC_CONFIG_DIR", t.TempDir())
	ctx := context.Background()

	s, err := OpenSessions(ctx)
	if err != nil {
		t.Fatalf("OpenSessions: %v", err)
	}
	defer s.Close()

	if _, ok, err := s.Token(ctx, "default"); err != nil || ok {
		t.Fatalf("expected no session initially, got ok=%v err=%v", ok, err)
	}

	if err := s.Save(ctx, "default", "tok-1"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	tok, ok, err := s.Token(ctx, "default")
	if err != nil || !ok || tok != "tok-1" {
		t.Fatalf("expected tok-1, got %q ok=%v err=%v", tok, ok, err)
	}

	// Upsert replaces.
	if err := s.Save(ctx, "default", "tok-2"); err != nil {
		t.Fatalf("Save(update): %v", err)
	}
	tok, _, _ = s.Token(ctx, "default")
	if tok != "tok-2" {
		t.Fatalf("expected tok-2 after upsert, got %q", tok)
	}

	// Profiles are independent.
	if err := s.Save(ctx, "staging", "tok-s"); err != nil {
		t.Fatalf("Save(staging): %v", err)
	}
	if err := s.Delete(ctx, "default"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := s.Token(ctx, "default"); ok {
		t.Fatal("default session should be gone after delete")
	}
	if tok, ok, _ := s.Token(ctx, "staging"); !ok || tok != "tok-s" {
		t.Fatalf("staging session must survive, got %q ok=%v", tok, ok)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	t.Setenv("PROSYNC_CONFIG_DIR", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig(empty): %v", err)
	}
	if cfg.CurrentProfile != "" || len(cfg.Profiles) != 0 {
		t.Fatalf("expected zero config, got %+v", cfg)
	}

	cfg.CurrentProfile = DefaultProfile
	cfg.SetProfile(DefaultProfile, Profile{ServerURL: "https://prosync.example.com", Username: "alice"})
	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	p, ok := got.Profile(DefaultProfile)
	if !ok || p.ServerURL != "https://prosync.example.com" || p.Username != "alice" {
		t.Fatalf("unexpected profile: %+v ok=%v", p, ok)
	}
}
