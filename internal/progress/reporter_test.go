package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewLogReporter(&buf, "Building site")

	r.Start(2)
	r.Update(1, "index.html")
	r.Update(2, "books/index.html")
	r.Finish()

	want := []string{
		"Building site: 2 files",
		"[1/2] index.html",
		"[2/2] books/index.html",
		"Building site: done",
	}
	got := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNewReporterInCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter("Building site").(*LogReporter); !ok {
		t.Error("expected LogReporter when CI is set")
	}
}
