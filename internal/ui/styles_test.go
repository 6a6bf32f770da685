package ui

import (
	"strings"
	"testing"
)

func TestKV_ContainsKeyAndValue(t *testing.T) {
	out := KV("Model", "Nikon D90")
	if !strings.Contains(out, "Model") || !strings.Contains(out, "Nikon D90") {
		t.Errorf("KV output missing parts: %q", out)
	}
}

func TestBlock_DropsEmptyLines(t *testing.T) {
	out := Block("one", "", "two")
	if out != "one\ntwo" {
		// Styles may add escape codes around the words, but empty
		// strings must never produce blank lines.
		if strings.Contains(out, "\n\n") {
			t.Errorf("Block kept an empty line: %q", out)
		}
	}
}

func TestStatusLines(t *testing.T) {
	if !strings.Contains(OK("done in %ds", 3), "done in 3s") {
		t.Error("OK should format its arguments")
	}
	if !strings.Contains(Err("lost %s", "camera"), "lost camera") {
		t.Error("Err should format its arguments")
	}
	if !strings.Contains(Warn("low disk"), "low disk") {
		t.Error("Warn should format its arguments")
	}
}
