package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/noos-go/iio-demo/pkg/log"
	"github.com/noos-go/iio-demo/pkg/wire"
)

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.ilog")
	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return path
}

func sampleEvents() []log.Event {
	ts := time.Date(2026, 10, 1, 10, 0, 0, 0, time.UTC)
	read := wire.OpRead
	ok := wire.StatusSuccess
	bad := wire.StatusNoDevice
	ch := uint16(2)
	code := int32(-19)
	return []log.Event{
		log.StageEvent("host", "", "power", ""),
		{Timestamp: ts, ConnectionID: "0123456789abcdef", Direction: log.DirectionIn, Layer: log.LayerTransport,
			Category: log.CategoryMessage, Frame: &log.FrameEvent{Size: 8, Data: []byte{0, 0, 0, 4, 0xa1, 1, 2, 3}}},
		{Timestamp: ts.Add(time.Millisecond), ConnectionID: "0123456789abcdef", Direction: log.DirectionIn, Layer: log.LayerWire,
			Category: log.CategoryMessage, Device: "demo_device_output",
			Message: &log.MessageEvent{Type: log.MessageTypeRequest, MessageID: 1, Operation: &read, Attr: "ch_attr", Channel: &ch}},
		{Timestamp: ts.Add(2 * time.Millisecond), ConnectionID: "0123456789abcdef", Direction: log.DirectionOut, Layer: log.LayerWire,
			Category: log.CategoryMessage, Message: &log.MessageEvent{Type: log.MessageTypeResponse, MessageID: 1, Status: &ok}},
		{Timestamp: ts.Add(3 * time.Millisecond), ConnectionID: "0123456789abcdef", Direction: log.DirectionOut, Layer: log.LayerWire,
			Category: log.CategoryMessage, Message: &log.MessageEvent{Type: log.MessageTypeResponse, MessageID: 2, Status: &bad}},
		{Timestamp: ts.Add(4 * time.Millisecond), Direction: log.DirectionNone, Layer: log.LayerBringup, Category: log.CategoryError,
			Error: &log.ErrorEventData{Layer: log.LayerBringup, Message: "no line", Code: &code, Context: "uart_init"}},
	}
}

func TestRunViewFormatsEvents(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	var buf bytes.Buffer
	if err := RunView(path, ViewFilter{}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"[conn:01234567]",
		"Data: 00000004a1010203",
		"Operation: READ",
		"Attr: ch_attr (channel 2)",
		"Status: ENODEV (-19)",
		"-> power",
		"Context: uart_init",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunViewFilters(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	layer := log.LayerBringup
	var buf bytes.Buffer
	if err := RunView(path, ViewFilter{Layer: &layer}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	if strings.Contains(buf.String(), "WIRE") {
		t.Errorf("wire events not filtered:\n%s", buf.String())
	}

	buf.Reset()
	if err := RunView(path, ViewFilter{Device: "demo_device_output"}, &buf); err != nil {
		t.Fatalf("RunView failed: %v", err)
	}
	if got := strings.Count(buf.String(), "[conn:"); got != 1 {
		t.Errorf("device filter matched %d events, want 1", got)
	}
}

func TestRunStats(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Total Events: 6", "READ:", "Bring-up: [power]", "1 requests, 1 failed", "Errors: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunExportCSV(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	out := filepath.Join(t.TempDir(), "out.csv")

	if err := RunExport(path, "csv", out); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want header + 6", len(lines))
	}
	if !strings.HasPrefix(lines[0], "timestamp,connection_id") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.Contains(string(data), ",READ,") {
		t.Errorf("no row carries the READ operation:\n%s", data)
	}
	if err := RunExport(path, "xml", ""); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestRunFilter(t *testing.T) {
	path := createTestLogFile(t, sampleEvents())
	out := filepath.Join(t.TempDir(), "filtered.ilog")

	n, err := RunFilter(path, FilterOptions{Output: out, Direction: "out"})
	if err != nil {
		t.Fatalf("RunFilter failed: %v", err)
	}
	if n != 2 {
		t.Errorf("filtered %d events, want 2", n)
	}
	events, err := log.ReadAll(out, log.Filter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 {
		t.Errorf("read back %d events, want 2", len(events))
	}

	if _, err := RunFilter(path, FilterOptions{Output: out, Layer: "service"}); err == nil {
		t.Error("expected error for unknown layer")
	}
	if _, err := RunFilter(path, FilterOptions{Output: out, TimeStart: "yesterday"}); err == nil {
		t.Error("expected error for bad time")
	}
}

func TestParseFlags(t *testing.T) {
	if l, err := ParseLayerFlag("BringUp"); err != nil || l != log.LayerBringup {
		t.Errorf("ParseLayerFlag = %v, %v", l, err)
	}
	if _, err := ParseDirectionFlag("sideways"); err == nil {
		t.Error("expected direction error")
	}
	if c, err := ParseCategoryFlag("error"); err != nil || c != log.CategoryError {
		t.Errorf("ParseCategoryFlag = %v, %v", c, err)
	}
}
