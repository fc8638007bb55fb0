package discovery

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// TXTRecordMap is a map of TXT record key-value pairs.
type TXTRecordMap map[string]string

// EncodeTXT creates the TXT records of a server advertisement.
func EncodeTXT(info *ServerInfo) TXTRecordMap {
	txt := TXTRecordMap{
		TXTKeyProfile:  info.Profile,
		TXTKeyPlatform: info.Platform,
		TXTKeyVersion:  info.Version,
	}
	if info.BaudRate != 0 {
		txt[TXTKeyBaud] = strconv.FormatUint(uint64(info.BaudRate), 10)
	}
	if len(info.Devices) > 0 {
		txt[TXTKeyDevices] = strings.Join(info.Devices, ",")
	}
	return txt
}

// DecodeTXT parses the TXT records of a server advertisement.
func DecodeTXT(txt TXTRecordMap) (*ServerInfo, error) {
	info := &ServerInfo{}
	var ok bool

	if info.Profile, ok = txt[TXTKeyProfile]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyProfile)
	}
	if info.Version, ok = txt[TXTKeyVersion]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequired, TXTKeyVersion)
	}
	info.Platform = txt[TXTKeyPlatform]

	if s, ok := txt[TXTKeyBaud]; ok {
		baud, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q", TXTKeyBaud, s)
		}
		info.BaudRate = uint32(baud)
	}
	if s := txt[TXTKeyDevices]; s != "" {
		info.Devices = strings.Split(s, ",")
	}
	return info, nil
}

// TXTRecordsToStrings converts a TXTRecordMap to sorted "key=value" strings.
func TXTRecordsToStrings(txt TXTRecordMap) []string {
	result := make([]string, 0, len(txt))
	for k, v := range txt {
		result = append(result, k+"="+v)
	}
	sort.Strings(result)
	return result
}

// StringsToTXTRecords parses "key=value" strings into a TXTRecordMap.
func StringsToTXTRecords(strs []string) TXTRecordMap {
	txt := make(TXTRecordMap)
	for _, s := range strs {
		k, v, _ := strings.Cut(s, "=")
		if k != "" {
			txt[k] = v
		}
	}
	return txt
}

// ValidateTXT checks the encoded size of the records. Each string is
// prefixed by its length on the wire.
func ValidateTXT(strs []string) error {
	size := 0
	for _, s := range strs {
		size += len(s) + 1
	}
	if size > MaxTXTRecordSize {
		return ErrTXTTooLarge
	}
	return nil
}

// ValidateInstanceName checks if an instance name is valid for mDNS.
func ValidateInstanceName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrMissingRequired)
	}
	if len(name) > MaxInstanceNameLen {
		return ErrInstanceNameTooLong
	}
	return nil
}
