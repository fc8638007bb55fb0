// Command iio-log views and analyzes protocol captures written by iio-demo
// and iio-client with -protocol-log.
//
// Usage:
//
//	iio-log <command> [flags] <file.ilog>
//
// Commands:
//
//	view     View a capture in human-readable format
//	export   Export a capture to JSON lines or CSV
//	filter   Filter a capture into a new capture
//	stats    Show statistics about a capture
//
// Examples:
//
//	# Show the bring-up sequence only
//	iio-log view -layer bringup demo.ilog
//
//	# Requests addressed to the input device
//	iio-log view -category message -device demo_device_input demo.ilog
//
//	# Export to CSV
//	iio-log export -format csv -o demo.csv demo.ilog
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/noos-go/iio-demo/cmd/iio-log/commands"
)

const usage = `iio-log - IIO Protocol Capture Analyzer

Usage:
  iio-log <command> [flags] <file.ilog>

Commands:
  view     View a capture in human-readable format
  export   Export a capture to JSON lines or CSV
  filter   Filter a capture into a new capture
  stats    Show statistics about a capture

Use "iio-log <command> -help" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd, args := os.Args[1], os.Args[2:]
	var err error
	switch cmd {
	case "view":
		err = runView(args)
	case "export":
		err = runExport(args)
	case "filter":
		err = runFilter(args)
	case "stats":
		err = runStats(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parse parses args and returns the capture path.
func parse(fs *flag.FlagSet, args []string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return "", fmt.Errorf("log file path required")
	}
	return fs.Arg(0), nil
}

func runView(args []string) error {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	layer := fs.String("layer", "", "Filter by layer (transport, wire, server, bringup)")
	direction := fs.String("direction", "", "Filter by direction (in, out)")
	category := fs.String("category", "", "Filter by category (message, state, error)")
	device := fs.String("device", "", "Filter by device name")

	path, err := parse(fs, args)
	if err != nil {
		return err
	}

	filter := commands.ViewFilter{Device: *device}
	if *layer != "" {
		l, err := commands.ParseLayerFlag(*layer)
		if err != nil {
			return err
		}
		filter.Layer = &l
	}
	if *direction != "" {
		d, err := commands.ParseDirectionFlag(*direction)
		if err != nil {
			return err
		}
		filter.Direction = &d
	}
	if *category != "" {
		c, err := commands.ParseCategoryFlag(*category)
		if err != nil {
			return err
		}
		filter.Category = &c
	}
	return commands.RunView(path, filter, os.Stdout)
}

func runExport(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	format := fs.String("format", "jsonl", "Output format (jsonl, csv)")
	output := fs.String("o", "", "Output file (default: stdout)")

	path, err := parse(fs, args)
	if err != nil {
		return err
	}
	return commands.RunExport(path, *format, *output)
}

func runFilter(args []string) error {
	fs := flag.NewFlagSet("filter", flag.ExitOnError)
	var opts commands.FilterOptions
	fs.StringVar(&opts.Output, "o", "", "Output file (required)")
	fs.StringVar(&opts.ConnID, "conn-id", "", "Filter by connection ID")
	fs.StringVar(&opts.Device, "device", "", "Filter by device name")
	fs.StringVar(&opts.Profile, "profile", "", "Filter by platform profile")
	fs.StringVar(&opts.TimeStart, "time-start", "", "Filter by start time (RFC3339)")
	fs.StringVar(&opts.TimeEnd, "time-end", "", "Filter by end time (RFC3339)")
	fs.StringVar(&opts.Layer, "layer", "", "Filter by layer (transport, wire, server, bringup)")
	fs.StringVar(&opts.Direction, "direction", "", "Filter by direction (in, out)")
	fs.StringVar(&opts.Category, "category", "", "Filter by category (message, state, error)")

	path, err := parse(fs, args)
	if err != nil {
		return err
	}
	if opts.Output == "" {
		fs.Usage()
		return fmt.Errorf("output file (-o) required")
	}
	n, err := commands.RunFilter(path, opts)
	if err != nil {
		return err
	}
	fmt.Printf("Filtered %d events to %s\n", n, opts.Output)
	return nil
}

func runStats(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	path, err := parse(fs, args)
	if err != nil {
		return err
	}
	return commands.RunStats(path, os.Stdout)
}
