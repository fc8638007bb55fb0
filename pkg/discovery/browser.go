package discovery

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/enbility/zeroconf/v3"
)

// Browser finds servers on the network.
type Browser interface {
	// Browse streams servers as they are found. Addresses reported on
	// several interfaces are merged into one entry. The channel closes when
	// ctx is cancelled.
	Browse(ctx context.Context) (<-chan *Service, error)

	// Find returns the first server matching the instance name, or any
	// server when instance is empty.
	Find(ctx context.Context, instance string) (*Service, error)

	// Stop stops all active browsing operations.
	Stop()
}

// BrowserConfig configures browser behavior.
type BrowserConfig struct {
	// Timeout bounds Find.
	// Default: BrowseTimeout.
	Timeout time.Duration

	// Interface specifies which network interface to use.
	// Empty string means all interfaces.
	Interface string
}

// DefaultBrowserConfig returns the default browser configuration.
func DefaultBrowserConfig() BrowserConfig {
	return BrowserConfig{Timeout: BrowseTimeout}
}

// MDNSBrowser implements Browser using zeroconf.
type MDNSBrowser struct {
	config BrowserConfig

	mu      sync.Mutex
	cancels []context.CancelFunc
}

// NewMDNSBrowser creates a new mDNS browser.
func NewMDNSBrowser(config BrowserConfig) *MDNSBrowser {
	return &MDNSBrowser{config: config}
}

// Browse implements Browser.
func (b *MDNSBrowser) Browse(ctx context.Context) (<-chan *Service, error) {
	ctx, cancel := context.WithCancel(ctx)
	b.mu.Lock()
	b.cancels = append(b.cancels, cancel)
	b.mu.Unlock()

	rawEntries := make(chan *zeroconf.ServiceEntry)
	rawRemoved := make(chan *zeroconf.ServiceEntry)
	entries := make(chan ServiceEntry)
	removed := make(chan ServiceEntry)
	out := make(chan *Service)

	go convert(ctx, rawEntries, entries)
	go convert(ctx, rawRemoved, removed)
	go aggregate(ctx, entries, removed, out)

	var opts []zeroconf.ClientOption
	if ifaces := interfaces(b.config.Interface); ifaces != nil {
		opts = append(opts, zeroconf.SelectIfaces(ifaces))
	}
	go func() {
		_ = zeroconf.Browse(ctx, ServiceType, Domain, rawEntries, rawRemoved, opts...)
	}()

	return out, nil
}

// Find implements Browser.
func (b *MDNSBrowser) Find(ctx context.Context, instance string) (*Service, error) {
	timeout := b.config.Timeout
	if timeout <= 0 {
		timeout = BrowseTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	results, err := b.Browse(ctx)
	if err != nil {
		return nil, err
	}
	for {
		select {
		case svc, ok := <-results:
			if !ok {
				return nil, ErrNotFound
			}
			if instance == "" || svc.Instance == instance {
				return svc, nil
			}
		case <-ctx.Done():
			return nil, ErrNotFound
		}
	}
}

// Stop implements Browser.
func (b *MDNSBrowser) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, cancel := range b.cancels {
		cancel()
	}
	b.cancels = nil
}

// ServiceEntry is a raw DNS-SD answer before TXT decoding.
type ServiceEntry struct {
	Instance  string
	Host      string
	Port      int
	Text      []string
	Addresses []string
}

// ToService decodes the entry. Entries with invalid TXT records fail.
func (e *ServiceEntry) ToService() (*Service, error) {
	info, err := DecodeTXT(StringsToTXTRecords(e.Text))
	if err != nil {
		return nil, err
	}
	info.Instance = e.Instance
	info.Port = uint16(e.Port)

	return &Service{
		Instance:  e.Instance,
		Host:      e.Host,
		Port:      uint16(e.Port),
		Addresses: append([]string(nil), e.Addresses...),
		Info:      *info,
	}, nil
}

func fromZeroconf(entry *zeroconf.ServiceEntry) ServiceEntry {
	addrs := make([]string, 0, len(entry.AddrIPv4)+len(entry.AddrIPv6))
	for _, ip := range entry.AddrIPv4 {
		addrs = append(addrs, ip.String())
	}
	for _, ip := range entry.AddrIPv6 {
		addrs = append(addrs, ip.String())
	}
	return ServiceEntry{
		Instance:  entry.Instance,
		Host:      entry.HostName,
		Port:      entry.Port,
		Text:      entry.Text,
		Addresses: addrs,
	}
}

// convert feeds zeroconf answers into the aggregator.
func convert(ctx context.Context, in <-chan *zeroconf.ServiceEntry, out chan<- ServiceEntry) {
	defer close(out)
	for {
		select {
		case entry, ok := <-in:
			if !ok {
				return
			}
			select {
			case out <- fromZeroconf(entry):
			case <-ctx.Done():
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// aggregate turns raw entries into services, merging addresses by instance.
// New instances are emitted once; removals only prune addresses.
func aggregate(ctx context.Context, entries, removed <-chan ServiceEntry, out chan<- *Service) {
	defer close(out)
	services := make(map[string]*Service)

	for {
		select {
		case entry, ok := <-entries:
			if !ok {
				return
			}
			svc, err := entry.ToService()
			if err != nil {
				continue
			}
			if existing, found := services[svc.Instance]; found {
				existing.Addresses = mergeAddresses(existing.Addresses, svc.Addresses)
				continue
			}
			services[svc.Instance] = svc
			select {
			case out <- svc:
			case <-ctx.Done():
				return
			}

		case entry, ok := <-removed:
			if !ok {
				removed = nil
				continue
			}
			if existing, found := services[entry.Instance]; found {
				existing.Addresses = removeAddresses(existing.Addresses, entry.Addresses)
				if len(existing.Addresses) == 0 {
					delete(services, entry.Instance)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}

// mergeAddresses adds new addresses to existing, avoiding duplicates.
func mergeAddresses(existing, add []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, addr := range existing {
		seen[addr] = true
	}
	for _, addr := range add {
		if !seen[addr] {
			existing = append(existing, addr)
			seen[addr] = true
		}
	}
	return existing
}

func removeAddresses(addresses, drop []string) []string {
	toRemove := make(map[string]bool, len(drop))
	for _, addr := range drop {
		toRemove[addr] = true
	}
	result := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		if !toRemove[addr] {
			result = append(result, addr)
		}
	}
	return result
}

// IPs parses the addresses of a service, skipping malformed ones.
func (s *Service) IPs() []net.IP {
	ips := make([]net.IP, 0, len(s.Addresses))
	for _, a := range s.Addresses {
		if ip := net.ParseIP(a); ip != nil {
			ips = append(ips, ip)
		}
	}
	return ips
}

var _ Browser = (*MDNSBrowser)(nil)
