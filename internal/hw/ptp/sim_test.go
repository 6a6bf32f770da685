package ptp

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
)

func openSim(t *testing.T) *Session {
	t.Helper()
	sess, err := Open(NewSim(), nil)
	if err != nil {
		t.Fatalf("Open(sim): %v", err)
	}
	t.Cleanup(sess.Close)
	return sess
}

func TestSim_TriggerThenWaitDeliversFile(t *testing.T) {
	sess := openSim(t)

	if err := sess.TriggerCapture(nil); err != nil {
		t.Fatalf("TriggerCapture: %v", err)
	}
	p, err := sess.WaitForFile(nil, 100*time.Millisecond)
	if err != nil {
		t.Fatalf("WaitForFile: %v", err)
	}
	if p == nil {
		t.Fatal("expected a file after trigger")
	}
	if !strings.HasPrefix(p.Name(), "IMG_") {
		t.Errorf("name = %q", p.Name())
	}
}

func TestSim_CaptureDownloadRoundTrip(t *testing.T) {
	sess := openSim(t)

	p, err := sess.CaptureImage(nil)
	if err != nil {
		t.Fatalf("CaptureImage: %v", err)
	}
	var sink bytes.Buffer
	if err := sess.Download(nil, p, &sink); err != nil {
		t.Fatalf("Download: %v", err)
	}
	body := sink.Bytes()
	if len(body) == 0 {
		t.Fatal("downloaded zero bytes")
	}
	if body[0] != 0xff || body[1] != 0xd8 {
		t.Errorf("missing JPEG SOI marker: % x", body[:4])
	}
}

func TestSim_WaitWithoutPendingEventsTimesOut(t *testing.T) {
	sess := openSim(t)

	p, err := sess.WaitForFile(nil, time.Millisecond)
	if err != nil {
		t.Fatalf("WaitForFile: %v", err)
	}
	if p != nil {
		t.Errorf("expected timeout, got %v", p)
	}
}

func TestSim_ManualNotSupported(t *testing.T) {
	sess := openSim(t)

	if _, err := sess.Manual(nil); !errors.Is(err, ErrNotSupported) {
		t.Errorf("err = %v, want ErrNotSupported", err)
	}
}

func TestSim_SummaryCountsShots(t *testing.T) {
	sess := openSim(t)

	if _, err := sess.CaptureImage(nil); err != nil {
		t.Fatalf("CaptureImage: %v", err)
	}
	text, err := sess.Summary(nil)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if !strings.Contains(text, "Shots taken: 1") {
		t.Errorf("summary = %q", text)
	}
}

func TestSim_ContextStatusCallback(t *testing.T) {
	var messages []string
	cctx := &Context{OnStatus: func(msg string) { messages = append(messages, msg) }}

	sess, err := Open(NewSim(), cctx)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer sess.Close()

	if len(messages) == 0 {
		t.Error("expected a detection status message during Open")
	}
}
