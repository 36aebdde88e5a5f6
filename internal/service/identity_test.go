package service

import (
	"strings"
	"testing"
)

func TestGenerateIdentity_Deterministic(t *testing.T) {
	a := GenerateIdentity("benny", "secret")
	b := GenerateIdentity("benny", "secret")
	if a == nil || b == nil {
		t.Fatal("expected identity")
	}
	if a.Hash != b.Hash || a.Emoji != b.Emoji {
		t.Fatalf("identity not deterministic: %+v vs %+v", a, b)
	}
	if len(a.Hash) != 64 {
		t.Fatalf("expected sha256 hex hash, got %q", a.Hash)
	}
}

func TestGenerateIdentity_DifferentInputsDiffer(t *testing.T) {
	a := GenerateIdentity("benny", "secret")
	b := GenerateIdentity("benny", "other")
	if a.Hash == b.Hash {
		t.Fatal("expected different hashes for different passwords")
	}
}

func TestGenerateIdentity_TrimsAndNils(t *testing.T) {
	if id := GenerateIdentity("", ""); id != nil {
		t.Fatalf("expected nil identity, got %+v", id)
	}
	if id := GenerateIdentity("   ", "  "); id != nil {
		t.Fatalf("expected nil identity for whitespace, got %+v", id)
	}

	a := GenerateIdentity(" benny ", "secret")
	b := GenerateIdentity("benny", "secret")
	if a.Hash != b.Hash {
		t.Fatal("expected trimmed inputs to match")
	}
}

func TestGenerateIdentity_UsernameOnly(t *testing.T) {
	id := GenerateIdentity("benny", "")
	if id == nil {
		t.Fatal("expected identity from username alone")
	}
	if id.Emoji == "" {
		t.Fatal("expected an emoji")
	}
	if !strings.HasSuffix(id.Display, id.Hash[len(id.Hash)-4:]) {
		t.Fatalf("display %q should end with hash suffix", id.Display)
	}
}
