package logger_test

import (
	"strings"
	"testing"

	"github.com/pioemu/piosim/logger"
)

func TestRingLoggerWriteAndTail(t *testing.T) {
	log := logger.NewRingLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	if w.String() != "" {
		t.Fatalf("expected empty output before any log, got %q", w.String())
	}

	log.Log(logger.Warning, "core/gpio.go:1", "pin %d ignored", 3)
	log.Write(w)
	want := "WARNING core/gpio.go:1: pin 3 ignored\n"
	if w.String() != want {
		t.Fatalf("got %q, want %q", w.String(), want)
	}

	w.Reset()
	log.Log(logger.Error, "core/handler_mov.go:1", "reserved op")
	log.Write(w)
	want += "ERROR core/handler_mov.go:1: reserved op\n"
	if w.String() != want {
		t.Fatalf("got %q, want %q", w.String(), want)
	}

	w.Reset()
	log.Tail(w, 1)
	if w.String() != "ERROR core/handler_mov.go:1: reserved op\n" {
		t.Fatalf("tail(1) got %q", w.String())
	}
}

func TestRingLoggerCapacityEviction(t *testing.T) {
	log := logger.NewRingLogger(2)
	log.Log(logger.Info, "a", "one")
	log.Log(logger.Info, "a", "two")
	log.Log(logger.Info, "a", "three")

	entries := log.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected capacity to evict down to 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "two" || entries[1].Message != "three" {
		t.Fatalf("expected the oldest entry evicted, got %+v", entries)
	}
}

func TestRingLoggerMinLevelFilter(t *testing.T) {
	log := logger.NewRingLogger(10)
	log.MinLevel = logger.Error
	log.Log(logger.Warning, "a", "should be dropped")
	log.Log(logger.Error, "a", "should be kept")

	entries := log.Entries()
	if len(entries) != 1 || entries[0].Message != "should be kept" {
		t.Fatalf("expected only the Error-level entry, got %+v", entries)
	}
}

func TestDiscardLoggerIsSafeToCallWithNilFields(t *testing.T) {
	var d logger.Discard
	d.Log(logger.Fatal, "x", "unused %d", 1) // must not panic
}
