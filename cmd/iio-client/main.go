// Command iio-client is an interactive client for iio-demo servers.
//
// Usage:
//
//	iio-client [flags]
//
// Flags:
//
//	-target string        Server address (host:port) (default "127.0.0.1:30431")
//	-discover             Browse mDNS for a server instead of using -target
//	-instance string      With -discover, the instance name to connect to
//	-timeout duration     Per-request timeout (default 5s)
//	-retries int          Connection attempts before giving up (default 1)
//	-protocol-log string  File path for protocol event logging (CBOR format)
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/noos-go/iio-demo/pkg/discovery"
	"github.com/noos-go/iio-demo/pkg/iio"
	iiolog "github.com/noos-go/iio-demo/pkg/log"
	"github.com/noos-go/iio-demo/pkg/platform"
	"github.com/noos-go/iio-demo/pkg/transport"
)

var (
	target      = flag.String("target", platform.DefaultHostAddress, "Server address (host:port)")
	discover    = flag.Bool("discover", false, "Browse mDNS for a server instead of using -target")
	instance    = flag.String("instance", "", "With -discover, the instance name to connect to")
	timeout     = flag.Duration("timeout", 5*time.Second, "Per-request timeout")
	retries     = flag.Int("retries", 1, "Connection attempts before giving up")
	protocolLog = flag.String("protocol-log", "", "File path for protocol event logging (CBOR format)")
)

func main() {
	flag.Parse()
	log.SetFlags(log.Ltime)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := *target
	if *discover {
		browser := discovery.NewMDNSBrowser(discovery.DefaultBrowserConfig())
		svc, err := browser.Find(ctx, *instance)
		browser.Stop()
		if err != nil {
			log.Fatalf("Discovery failed: %v", err)
		}
		addr = svc.Addr()
		log.Printf("Found %s (%s, %s) at %s", svc.Instance, svc.Info.Profile, svc.Info.Platform, addr)
	}

	cfg := transport.ClientConfig{ConnID: uuid.NewString()}
	if *protocolLog != "" {
		fl, err := iiolog.NewFileLogger(*protocolLog)
		if err != nil {
			log.Fatalf("Failed to create protocol logger: %v", err)
		}
		defer fl.Close()
		cfg.ProtocolLogger = fl
	}

	conn, err := transport.DialRetry(ctx, addr, cfg, *retries, nil)
	if err != nil {
		log.Fatalf("Failed to connect to %s: %v", addr, err)
	}
	client := iio.NewClient(conn)
	client.SetTimeout(*timeout)
	defer client.Close()

	sh, err := NewShell(client)
	if err != nil {
		log.Fatalf("Failed to create shell: %v", err)
	}
	log.SetOutput(sh.Stdout())
	fmt.Fprintf(sh.Stdout(), "Connected to %s\n", addr)
	sh.Run(ctx)
	os.Exit(0)
}
