package discovery

import (
	"errors"
	"net"
	"strconv"
	"time"
)

const (
	// ServiceType is the DNS-SD service type of exposition servers.
	ServiceType = "_iio._tcp"

	// Domain is the mDNS domain.
	Domain = "local"

	// DefaultPort is the IIOD network port.
	DefaultPort = 30431
)

// TXT record keys.
const (
	TXTKeyProfile  = "profile"
	TXTKeyPlatform = "platform"
	TXTKeyVersion  = "ver"
	TXTKeyBaud     = "baud"
	TXTKeyDevices  = "devs"
)

const (
	// BrowseTimeout is the default timeout for mDNS browsing.
	BrowseTimeout = 5 * time.Second

	// DefaultTTL is the DNS record TTL of advertisements.
	DefaultTTL = 120 * time.Second

	// MaxInstanceNameLen is the DNS label limit.
	MaxInstanceNameLen = 63

	// MaxTXTRecordSize is the maximum total TXT record size.
	MaxTXTRecordSize = 400
)

var (
	ErrMissingRequired     = errors.New("missing required field")
	ErrInstanceNameTooLong = errors.New("instance name exceeds 63 characters")
	ErrTXTTooLarge         = errors.New("TXT records exceed 400 bytes")
	ErrNotFound            = errors.New("service not found")
	ErrNotAdvertising      = errors.New("not advertising")
)

// ServerInfo is what a server publishes about itself.
type ServerInfo struct {
	// Instance is the DNS-SD instance name.
	Instance string

	// Port is the TCP port of the line. Default: DefaultPort.
	Port uint16

	Profile  string
	Platform string
	Version  string
	BaudRate uint32

	// Devices lists the exposed device names.
	Devices []string
}

// Service is a browsed server.
type Service struct {
	Instance  string
	Host      string
	Port      uint16
	Addresses []string
	Info      ServerInfo
}

// Addr returns host:port of the first resolved address, or of the host
// name when no address was resolved.
func (s *Service) Addr() string {
	host := s.Host
	if len(s.Addresses) > 0 {
		host = s.Addresses[0]
	}
	return net.JoinHostPort(host, strconv.Itoa(int(s.Port)))
}
