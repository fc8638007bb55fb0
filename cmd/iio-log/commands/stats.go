package commands

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/noos-go/iio-demo/pkg/log"
	"github.com/noos-go/iio-demo/pkg/wire"
)

// Stats holds aggregate statistics about a capture.
type Stats struct {
	TotalEvents       int
	EventsByLayer     map[log.Layer]int
	EventsByCategory  map[log.Category]int
	EventsByDirection map[log.Direction]int
	Operations        map[wire.Operation]int
	Sessions          map[string]*SessionStats
	Stages            []string
	Errors            int
	TimeRange         struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for one server session.
type SessionStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Requests  int
	Failures  int
}

// collectStats reads every event of the capture.
func collectStats(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByLayer:     make(map[log.Layer]int),
		EventsByCategory:  make(map[log.Category]int),
		EventsByDirection: make(map[log.Direction]int),
		Operations:        make(map[wire.Operation]int),
		Sessions:          make(map[string]*SessionStats),
	}

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}
	return stats, nil
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByLayer[event.Layer]++
	s.EventsByCategory[event.Category]++
	s.EventsByDirection[event.Direction]++

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	if event.Error != nil {
		s.Errors++
	}
	if sc := event.StateChange; sc != nil && sc.Entity == log.StateEntityStage {
		s.Stages = append(s.Stages, sc.NewState)
	}

	if event.ConnectionID == "" {
		return
	}
	sess, ok := s.Sessions[event.ConnectionID]
	if !ok {
		sess = &SessionStats{FirstSeen: event.Timestamp, LastSeen: event.Timestamp}
		s.Sessions[event.ConnectionID] = sess
	}
	sess.Events++
	if event.Timestamp.After(sess.LastSeen) {
		sess.LastSeen = event.Timestamp
	}
	if msg := event.Message; msg != nil {
		switch {
		case msg.Type == log.MessageTypeRequest && msg.Operation != nil:
			sess.Requests++
			s.Operations[*msg.Operation]++
		case msg.Type == log.MessageTypeResponse && msg.Status != nil && *msg.Status != 0:
			sess.Failures++
		}
	}
}

// RunStats analyzes the capture and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := collectStats(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== IIO Protocol Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Layer:")
	for _, layer := range []log.Layer{log.LayerTransport, log.LayerWire, log.LayerServer, log.LayerBringup} {
		if count := stats.EventsByLayer[layer]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", layer.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryMessage, log.CategoryState, log.CategoryError} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	if len(stats.Operations) > 0 {
		ops := make([]wire.Operation, 0, len(stats.Operations))
		for op := range stats.Operations {
			ops = append(ops, op)
		}
		sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
		fmt.Fprintln(w, "Requests by Operation:")
		for _, op := range ops {
			fmt.Fprintf(w, "  %-12s %d\n", op.String()+":", stats.Operations[op])
		}
		fmt.Fprintln(w)
	}

	if len(stats.Stages) > 0 {
		fmt.Fprintf(w, "Bring-up: %v\n", stats.Stages)
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	ids := make([]string, 0, len(stats.Sessions))
	for id := range stats.Sessions {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return stats.Sessions[ids[i]].FirstSeen.Before(stats.Sessions[ids[j]].FirstSeen)
	})
	for _, id := range ids {
		s := stats.Sessions[id]
		fmt.Fprintf(w, "  [%s] %d events, %d requests, %d failed, duration %s\n",
			shortenConnID(id), s.Events, s.Requests, s.Failures, s.LastSeen.Sub(s.FirstSeen).Round(time.Millisecond))
	}

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
