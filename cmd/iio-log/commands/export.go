package commands

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/noos-go/iio-demo/pkg/log"
)

// exporter writes one event at a time; finish is called once at the end.
type exporter interface {
	write(event log.Event) error
	finish() error
}

var csvHeader = []string{
	"timestamp", "connection_id", "direction", "layer", "category",
	"device", "type", "message_id", "operation", "status", "detail",
}

// RunExport writes the capture as JSON lines or CSV to output (stdout
// when empty).
func RunExport(path, format, output string) error {
	if format != "jsonl" && format != "csv" {
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}

	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	var exp exporter
	if format == "csv" {
		cw := csv.NewWriter(w)
		if err := cw.Write(csvHeader); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		exp = csvExporter{cw}
	} else {
		exp = jsonlExporter{json.NewEncoder(w)}
	}

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return exp.finish()
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := exp.write(event); err != nil {
			return err
		}
	}
}

type jsonlExporter struct{ enc *json.Encoder }

func (e jsonlExporter) write(event log.Event) error {
	if err := e.enc.Encode(event); err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}
	return nil
}

func (jsonlExporter) finish() error { return nil }

type csvExporter struct{ w *csv.Writer }

func (e csvExporter) write(event log.Event) error {
	var msgID, op, st, detail string
	switch {
	case event.Message != nil:
		msgID = strconv.FormatUint(uint64(event.Message.MessageID), 10)
		if event.Message.Operation != nil {
			op = event.Message.Operation.String()
		}
		if event.Message.Status != nil {
			st = event.Message.Status.String()
		}
		detail = event.Message.Attr
	case event.StateChange != nil:
		detail = event.StateChange.Entity.String() + " " + event.StateChange.NewState
	case event.Error != nil:
		if event.Error.Code != nil {
			st = strconv.Itoa(int(*event.Error.Code))
		}
		detail = event.Error.Message
	case event.Frame != nil:
		detail = strconv.Itoa(event.Frame.Size) + " bytes"
	}

	row := []string{
		event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
		event.ConnectionID,
		event.Direction.String(),
		event.Layer.String(),
		event.Category.String(),
		event.Device,
		eventType(event),
		msgID,
		op,
		st,
		detail,
	}
	if err := e.w.Write(row); err != nil {
		return fmt.Errorf("failed to write row: %w", err)
	}
	return nil
}

func (e csvExporter) finish() error {
	e.w.Flush()
	return e.w.Error()
}
