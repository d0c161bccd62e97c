package poll

import (
	"strings"
	"testing"
)

func TestHasOption(t *testing.T) {
	p := &Poll{Options: []Option{{ID: "opt-1", Label: "Beach"}, {ID: "opt-2", Label: "Museum"}}}

	if !p.hasOption("opt-2") {
		t.Error("opt-2 should exist")
	}
	if p.hasOption("opt-3") {
		t.Error("opt-3 should not exist")
	}
	if p.hasOption("") {
		t.Error("empty option id should not match")
	}
}

func TestPublicToken(t *testing.T) {
	a, b := publicToken(), publicToken()
	if a == b {
		t.Error("public tokens must not repeat")
	}
	if strings.ContainsAny(a, "+/=") {
		t.Errorf("token %q is not URL-safe", a)
	}
}

func TestNewVoterToken(t *testing.T) {
	tok := newVoterToken()
	if len(tok) != 16 {
		t.Errorf("voter token length = %d, want 16", len(tok))
	}
}
