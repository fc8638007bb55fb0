// Command iio-demo brings up the demo exposition server on one platform
// profile and serves it until interrupted.
//
// The process exit status is 0, or the negative status code of the first
// failing bring-up stage, or the status the server's run loop returned.
// The shell sees a negative status modulo 256: ENODEV (-19) reads as
// $? = 237, and code = $? - 256 recovers it. Usage errors exit with 2.
//
// Usage:
//
//	iio-demo [flags]
//
// Flags:
//
//	-profile string       Platform profile: xilinx-ps, xilinx-pl, aducm3029, host (default "host")
//	-config string        Profile override file (YAML); its profile field wins over -profile
//	-listen string        Serve the UART line on this TCP address
//	-log-level string     Log level: debug, info, warn, error (default "info")
//	-protocol-log string  File path for protocol event logging (CBOR format)
//	-advertise            Advertise the server over mDNS (TCP line only)
//
// Examples:
//
//	# Serve the host profile on the IIOD port
//	iio-demo -profile host
//
//	# Bring up the ADuCM profile on a TCP line with protocol capture
//	iio-demo -profile aducm3029 -listen 127.0.0.1:30431 -protocol-log /tmp/aducm.ilog
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/noos-go/iio-demo/pkg/bringup"
	"github.com/noos-go/iio-demo/pkg/discovery"
	iiolog "github.com/noos-go/iio-demo/pkg/log"
	"github.com/noos-go/iio-demo/pkg/platform"
	"github.com/noos-go/iio-demo/pkg/version"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	prof, err := loadProfile(cfg)
	if err != nil {
		logger.Error("invalid profile", "error", err)
		return 2
	}
	logger.Info("iio demo", "profile", prof.Name, "platform", prof.Kind.String(), "protocol", version.Current)

	protocolLogger, closeLog, err := newProtocolLogger(cfg.ProtocolLog, logger)
	if err != nil {
		logger.Error("failed to create protocol logger", "error", err)
		return 2
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bcfg := bringup.Config{
		Profile: prof,
		Platform: bringup.Default(prof, bringup.Options{
			Address:        cfg.Listen,
			Logger:         logger,
			ProtocolLogger: protocolLogger,
		}),
		Logger:         logger,
		ProtocolLogger: protocolLogger,
	}

	sys, err := bringup.Boot(ctx, bcfg)
	if err != nil {
		code := bringup.ExitStatus(err)
		logger.Error("bring-up failed", "error", err, "status", code)
		return code
	}

	if cfg.Advertise {
		advertise(ctx, logger, sys)
	}

	code := bringup.Handoff(ctx, bcfg, sys)
	logger.Info("server stopped", "status", code)
	return code
}

// loadProfile resolves the profile from -config or -profile and applies
// -listen to the host line address.
func loadProfile(cfg Config) (platform.Profile, error) {
	var (
		prof platform.Profile
		err  error
	)
	if cfg.ConfigFile != "" {
		prof, err = platform.LoadFile(cfg.ConfigFile)
	} else {
		prof, err = platform.Lookup(cfg.Profile)
	}
	if err != nil {
		return platform.Profile{}, err
	}
	if cfg.Listen != "" {
		prof.UART.Address = cfg.Listen
	}
	return prof, nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// newProtocolLogger builds the protocol event sink: the capture file when
// requested, mirrored to slog at debug level.
func newProtocolLogger(path string, logger *slog.Logger) (iiolog.Logger, func(), error) {
	adapter := iiolog.NewSlogAdapter(logger)
	if path == "" {
		return adapter, func() {}, nil
	}
	fl, err := iiolog.NewFileLogger(path)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("protocol logging", "path", fl.Path())
	return iiolog.NewMultiLogger(fl, adapter), func() {
		if err := fl.Close(); err != nil {
			logger.Warn("closing protocol log", "error", err)
		}
	}, nil
}

// advertise publishes the server when its line is a TCP listener.
func advertise(ctx context.Context, logger *slog.Logger, sys *bringup.System) {
	addressed, ok := sys.Port.(interface{ Addr() net.Addr })
	if !ok || addressed.Addr() == nil {
		logger.Warn("not advertising: line is not a TCP listener")
		return
	}
	tcp, ok := addressed.Addr().(*net.TCPAddr)
	if !ok {
		return
	}

	info := &discovery.ServerInfo{
		Instance: "iio-demo-" + sys.Profile.Name,
		Port:     uint16(tcp.Port),
		Profile:  sys.Profile.Name,
		Platform: sys.Profile.Kind.String(),
		Version:  version.Current,
		BaudRate: sys.Profile.UART.BaudRate,
		Devices:  []string{sys.Output.Name(), sys.Input.Name()},
	}
	adv := discovery.NewMDNSAdvertiser(discovery.AdvertiserConfig{TTL: discovery.DefaultTTL, Logger: logger})
	if err := adv.Advertise(ctx, info); err != nil {
		logger.Warn("mDNS advertise failed", "error", err)
		return
	}
	logger.Info("advertising", "service", discovery.ServiceType, "instance", info.Instance, "port", strconv.Itoa(tcp.Port))
}
