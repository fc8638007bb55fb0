package wire

import (
	"errors"
	"fmt"
)

// Request represents a request message from client to server.
//
// CBOR encoding:
//
//	{
//	  1: messageId,   // uint32, never 0
//	  2: operation,   // uint8
//	  3: device,      // string: device id or name
//	  4: channel,     // uint16: channel index, absent for device attributes
//	  5: attribute,   // string
//	  6: value,       // string: attribute value for WRITE
//	  7: mask,        // uint32: channel mask for OPEN
//	  8: count,       // uint32: samples (OPEN), bytes (READBUF), ms (TIMEOUT)
//	  9: data,        // bytes: samples for WRITEBUF
//	  10: cyclic      // bool: cyclic output buffer for OPEN
//	}
type Request struct {
	MessageID uint32    `cbor:"1,keyasint"`
	Operation Operation `cbor:"2,keyasint"`
	Device    string    `cbor:"3,keyasint,omitempty"`
	Channel   *uint16   `cbor:"4,keyasint,omitempty"`
	Attr      string    `cbor:"5,keyasint,omitempty"`
	Value     string    `cbor:"6,keyasint,omitempty"`
	Mask      uint32    `cbor:"7,keyasint,omitempty"`
	Count     uint32    `cbor:"8,keyasint,omitempty"`
	Data      []byte    `cbor:"9,keyasint,omitempty"`
	Cyclic    bool      `cbor:"10,keyasint,omitempty"`
}

// Request validation errors.
var (
	ErrReservedMessageID = errors.New("messageId 0 is reserved")
	ErrInvalidOperation  = errors.New("invalid operation")
	ErrMissingField      = errors.New("missing field")
)

// Validate checks if the request is well formed.
func (r *Request) Validate() error {
	if r.MessageID == 0 {
		return ErrReservedMessageID
	}
	if !r.Operation.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidOperation, r.Operation)
	}
	if r.Operation.NeedsDevice() && r.Device == "" {
		return fmt.Errorf("%w: %s requires a device", ErrMissingField, r.Operation)
	}

	switch r.Operation {
	case OpRead, OpWrite:
		if r.Attr == "" {
			return fmt.Errorf("%w: %s requires an attribute", ErrMissingField, r.Operation)
		}
	case OpOpen:
		if r.Mask == 0 || r.Count == 0 {
			return fmt.Errorf("%w: OPEN requires a channel mask and a sample count", ErrMissingField)
		}
	case OpReadBuf:
		if r.Count == 0 {
			return fmt.Errorf("%w: READBUF requires a byte count", ErrMissingField)
		}
	case OpWriteBuf:
		if len(r.Data) == 0 {
			return fmt.Errorf("%w: WRITEBUF requires data", ErrMissingField)
		}
	}
	return nil
}

// IsChannelAttr returns true if the request addresses a channel attribute.
func (r *Request) IsChannelAttr() bool {
	return r.Channel != nil
}

// ChannelIndex returns a pointer to idx, for building requests.
func ChannelIndex(idx uint16) *uint16 {
	return &idx
}

// Response represents a response message from server to client.
//
// CBOR encoding:
//
//	{
//	  1: messageId,   // uint32: matches request
//	  2: status,      // int32: 0 or negative errno
//	  3: value,       // string: attribute value or version string
//	  4: data,        // bytes: samples for READBUF
//	  5: context,     // map: context description for PRINT
//	  6: count        // uint32: bytes accepted by WRITEBUF
//	}
type Response struct {
	MessageID uint32       `cbor:"1,keyasint"`
	Status    Status       `cbor:"2,keyasint"`
	Value     string       `cbor:"3,keyasint,omitempty"`
	Data      []byte       `cbor:"4,keyasint,omitempty"`
	Context   *ContextInfo `cbor:"5,keyasint,omitempty"`
	Count     uint32       `cbor:"6,keyasint,omitempty"`
}

// IsSuccess returns true if the response indicates success.
func (r *Response) IsSuccess() bool {
	return r.Status.IsSuccess()
}

// ErrorResponse builds a failed response for a request.
func ErrorResponse(messageID uint32, status Status, msg string) *Response {
	return &Response{MessageID: messageID, Status: status, Value: msg}
}

// ContextInfo describes the server and its devices.
type ContextInfo struct {
	Name        string            `cbor:"1,keyasint"`
	Description string            `cbor:"2,keyasint,omitempty"`
	Version     Version           `cbor:"3,keyasint"`
	Attributes  map[string]string `cbor:"4,keyasint,omitempty"`
	Devices     []DeviceInfo      `cbor:"5,keyasint"`
}

// Version is the protocol version of the server.
type Version struct {
	Major uint16 `cbor:"1,keyasint"`
	Minor uint16 `cbor:"2,keyasint"`
	Git   string `cbor:"3,keyasint,omitempty"`
}

// String formats the version the way VERSION returns it.
func (v Version) String() string {
	if v.Git == "" {
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	}
	return fmt.Sprintf("%d.%d %s", v.Major, v.Minor, v.Git)
}

// DeviceInfo describes one device.
type DeviceInfo struct {
	ID         string        `cbor:"1,keyasint"`
	Name       string        `cbor:"2,keyasint"`
	Attributes []string      `cbor:"3,keyasint,omitempty"`
	Channels   []ChannelInfo `cbor:"4,keyasint,omitempty"`
}

// ChannelInfo describes one channel of a device.
type ChannelInfo struct {
	ID         string     `cbor:"1,keyasint"`
	Index      uint16     `cbor:"2,keyasint"`
	Output     bool       `cbor:"3,keyasint,omitempty"`
	Scan       ScanFormat `cbor:"4,keyasint"`
	Attributes []string   `cbor:"5,keyasint,omitempty"`
}

// ScanFormat describes how a channel's samples are laid out in a buffer.
type ScanFormat struct {
	Signed      bool  `cbor:"1,keyasint,omitempty"`
	Bits        uint8 `cbor:"2,keyasint"`
	StorageBits uint8 `cbor:"3,keyasint"`
	Shift       uint8 `cbor:"4,keyasint,omitempty"`
	BigEndian   bool  `cbor:"5,keyasint,omitempty"`
}

// String formats the scan format as "le:s12/16>>0".
func (f ScanFormat) String() string {
	endian, sign := "le", "u"
	if f.BigEndian {
		endian = "be"
	}
	if f.Signed {
		sign = "s"
	}
	return fmt.Sprintf("%s:%s%d/%d>>%d", endian, sign, f.Bits, f.StorageBits, f.Shift)
}

// FindDevice returns the device with the given id or name.
func (c *ContextInfo) FindDevice(idOrName string) (*DeviceInfo, bool) {
	for i := range c.Devices {
		if c.Devices[i].ID == idOrName || c.Devices[i].Name == idOrName {
			return &c.Devices[i], true
		}
	}
	return nil, false
}
