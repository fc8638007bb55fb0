package main

import (
	"flag"
	"fmt"

	"github.com/noos-go/iio-demo/pkg/platform"
)

// Config holds the command line settings.
type Config struct {
	Profile     string
	ConfigFile  string
	Listen      string
	LogLevel    string
	ProtocolLog string
	Advertise   bool
}

func parseFlags(args []string) (Config, error) {
	var cfg Config
	fs := flag.NewFlagSet("iio-demo", flag.ContinueOnError)
	fs.StringVar(&cfg.Profile, "profile", platform.ProfileHost, "Platform profile: xilinx-ps, xilinx-pl, aducm3029, host")
	fs.StringVar(&cfg.ConfigFile, "config", "", "Profile override file (YAML)")
	fs.StringVar(&cfg.Listen, "listen", "", "Serve the UART line on this TCP address")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.ProtocolLog, "protocol-log", "", "File path for protocol event logging (CBOR format)")
	fs.BoolVar(&cfg.Advertise, "advertise", false, "Advertise the server over mDNS")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("log level must be debug, info, warn or error, got %q", cfg.LogLevel)
	}
	return cfg, nil
}
