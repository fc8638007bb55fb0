package discovery

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/enbility/zeroconf/v3"
)

// Advertiser publishes a server on the network.
type Advertiser interface {
	// Advertise starts advertising info, replacing any previous
	// advertisement. It stops when ctx is cancelled.
	Advertise(ctx context.Context, info *ServerInfo) error

	// UpdateDevices replaces the device list of the advertisement.
	UpdateDevices(devices []string) error

	// Stop withdraws the advertisement.
	Stop() error
}

// AdvertiserConfig configures advertiser behavior.
type AdvertiserConfig struct {
	// Interface specifies which network interface to use.
	// Empty string means all interfaces.
	Interface string

	// TTL is the DNS record TTL.
	// Default: DefaultTTL.
	TTL time.Duration

	// Logger is the optional logger for debug output.
	Logger *slog.Logger
}

// DefaultAdvertiserConfig returns the default advertiser configuration.
func DefaultAdvertiserConfig() AdvertiserConfig {
	return AdvertiserConfig{TTL: DefaultTTL}
}

// MDNSAdvertiser implements Advertiser using zeroconf.
type MDNSAdvertiser struct {
	config AdvertiserConfig

	mu     sync.Mutex
	server *zeroconf.Server
	info   ServerInfo
	stop   context.CancelFunc
}

// NewMDNSAdvertiser creates a new mDNS advertiser.
func NewMDNSAdvertiser(config AdvertiserConfig) *MDNSAdvertiser {
	return &MDNSAdvertiser{config: config}
}

// Advertise implements Advertiser.
func (a *MDNSAdvertiser) Advertise(ctx context.Context, info *ServerInfo) error {
	if err := ValidateInstanceName(info.Instance); err != nil {
		return err
	}
	txt := TXTRecordsToStrings(EncodeTXT(info))
	if err := ValidateTXT(txt); err != nil {
		return err
	}

	port := int(info.Port)
	if port == 0 {
		port = DefaultPort
	}

	var opts []zeroconf.ServerOption
	if a.config.TTL > 0 {
		opts = append(opts, zeroconf.TTL(uint32(a.config.TTL.Seconds())))
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.shutdownLocked()

	server, err := zeroconf.Register(info.Instance, ServiceType, Domain, port, txt, interfaces(a.config.Interface), opts...)
	if err != nil {
		return fmt.Errorf("failed to register %s: %w", ServiceType, err)
	}
	a.server = server
	a.info = *info

	actx, cancel := context.WithCancel(ctx)
	a.stop = cancel
	go func() {
		<-actx.Done()
		a.mu.Lock()
		defer a.mu.Unlock()
		if a.server == server {
			a.shutdownLocked()
		}
	}()

	a.debugLog("advertising", "instance", info.Instance, "port", port, "profile", info.Profile)
	return nil
}

// UpdateDevices implements Advertiser.
func (a *MDNSAdvertiser) UpdateDevices(devices []string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.server == nil {
		return ErrNotAdvertising
	}
	a.info.Devices = append([]string(nil), devices...)
	txt := TXTRecordsToStrings(EncodeTXT(&a.info))
	if err := ValidateTXT(txt); err != nil {
		return err
	}
	a.server.SetText(txt)
	return nil
}

// Stop implements Advertiser.
func (a *MDNSAdvertiser) Stop() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.shutdownLocked()
	return nil
}

func (a *MDNSAdvertiser) shutdownLocked() {
	if a.stop != nil {
		a.stop()
		a.stop = nil
	}
	if a.server != nil {
		a.server.Shutdown()
		a.server = nil
		a.debugLog("advertisement withdrawn", "instance", a.info.Instance)
	}
}

func (a *MDNSAdvertiser) debugLog(msg string, args ...any) {
	if a.config.Logger != nil {
		a.config.Logger.Debug(msg, args...)
	}
}

// interfaces returns the interfaces to use; nil selects all of them.
func interfaces(name string) []net.Interface {
	if name == "" {
		return nil
	}
	iface, err := net.InterfaceByName(name)
	if err != nil {
		return nil
	}
	return []net.Interface{*iface}
}

var _ Advertiser = (*MDNSAdvertiser)(nil)
