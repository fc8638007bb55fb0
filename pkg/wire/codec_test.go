package wire

import (
	"bytes"
	"errors"
	"testing"
)

func TestRequestRoundTrip(t *testing.T) {
	req := Request{
		MessageID: 7,
		Operation: OpWrite,
		Device:    "iio:device0",
		Channel:   ChannelIndex(0),
		Attr:      "ch_attr",
		Value:     "1234",
	}

	data, err := EncodeRequest(&req)
	if err != nil {
		t.Fatalf("EncodeRequest failed: %v", err)
	}
	decoded, err := DecodeRequest(data)
	if err != nil {
		t.Fatalf("DecodeRequest failed: %v", err)
	}

	if decoded.MessageID != 7 || decoded.Operation != OpWrite {
		t.Errorf("header mismatch: got id=%d op=%s", decoded.MessageID, decoded.Operation)
	}
	if decoded.Channel == nil || *decoded.Channel != 0 {
		t.Errorf("channel 0 must survive encoding, got %v", decoded.Channel)
	}
	if decoded.Device != "iio:device0" || decoded.Attr != "ch_attr" || decoded.Value != "1234" {
		t.Errorf("fields mismatch: %+v", decoded)
	}
}

func TestDeviceAttrHasNoChannel(t *testing.T) {
	req := Request{MessageID: 1, Operation: OpRead, Device: "demo_device_input", Attr: "dev_global_attr"}
	data, err := EncodeRequest(&req)
	if err != nil {
		t.Fatalf("EncodeRequest failed: %v", err)
	}
	decoded, err := DecodeRequest(data)
	if err != nil {
		t.Fatalf("DecodeRequest failed: %v", err)
	}
	if decoded.IsChannelAttr() {
		t.Error("device attribute decoded as channel attribute")
	}
}

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{name: "reserved id", req: Request{Operation: OpVersion}, wantErr: ErrReservedMessageID},
		{name: "bad operation", req: Request{MessageID: 1, Operation: 0}, wantErr: ErrInvalidOperation},
		{name: "unknown operation", req: Request{MessageID: 1, Operation: 99}, wantErr: ErrInvalidOperation},
		{name: "read without device", req: Request{MessageID: 1, Operation: OpRead, Attr: "x"}, wantErr: ErrMissingField},
		{name: "read without attr", req: Request{MessageID: 1, Operation: OpRead, Device: "d"}, wantErr: ErrMissingField},
		{name: "open without mask", req: Request{MessageID: 1, Operation: OpOpen, Device: "d", Count: 4}, wantErr: ErrMissingField},
		{name: "readbuf without count", req: Request{MessageID: 1, Operation: OpReadBuf, Device: "d"}, wantErr: ErrMissingField},
		{name: "writebuf without data", req: Request{MessageID: 1, Operation: OpWriteBuf, Device: "d"}, wantErr: ErrMissingField},
		{name: "version", req: Request{MessageID: 1, Operation: OpVersion}},
		{name: "print", req: Request{MessageID: 1, Operation: OpPrint}},
		{name: "timeout", req: Request{MessageID: 1, Operation: OpTimeout, Count: 1000}},
		{name: "open", req: Request{MessageID: 1, Operation: OpOpen, Device: "d", Mask: 0x3, Count: 64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecodeInvalidRequestKeepsID(t *testing.T) {
	data, err := Marshal(&Request{MessageID: 42, Operation: OpRead, Device: "d"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	req, err := DecodeRequest(data)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if req == nil || req.MessageID != 42 {
		t.Fatalf("message id lost: %+v", req)
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := DecodeRequest([]byte{0xFF, 0x00}); err == nil {
		t.Error("expected decode error")
	}
	if _, err := DecodeResponse([]byte{0x5F}); err == nil {
		t.Error("expected decode error")
	}
}

func TestResponseWithContext(t *testing.T) {
	resp := Response{
		MessageID: 3,
		Status:    StatusSuccess,
		Context: &ContextInfo{
			Name:    "tinyiiod",
			Version: Version{Major: 0, Minor: 1},
			Devices: []DeviceInfo{{
				ID:         "iio:device0",
				Name:       "demo_device_output",
				Attributes: []string{"dev_global_attr"},
				Channels: []ChannelInfo{{
					ID:         "voltage0",
					Output:     true,
					Scan:       ScanFormat{Signed: true, Bits: 16, StorageBits: 16},
					Attributes: []string{"ch_attr"},
				}},
			}},
		},
	}

	data, err := EncodeResponse(&resp)
	if err != nil {
		t.Fatalf("EncodeResponse failed: %v", err)
	}
	decoded, err := DecodeResponse(data)
	if err != nil {
		t.Fatalf("DecodeResponse failed: %v", err)
	}
	if !Equal(resp, *decoded) {
		t.Errorf("response changed across encoding: %+v", decoded)
	}

	dev, ok := decoded.Context.FindDevice("demo_device_output")
	if !ok || dev.ID != "iio:device0" {
		t.Errorf("FindDevice by name failed: %+v", dev)
	}
	if _, ok := decoded.Context.FindDevice("iio:device0"); !ok {
		t.Error("FindDevice by id failed")
	}
	if _, ok := decoded.Context.FindDevice("nope"); ok {
		t.Error("FindDevice found a missing device")
	}
}

func TestErrorResponseStatus(t *testing.T) {
	resp := ErrorResponse(9, StatusNoDevice, "no such device")
	data, err := EncodeResponse(resp)
	if err != nil {
		t.Fatalf("EncodeResponse failed: %v", err)
	}
	decoded, err := DecodeResponse(data)
	if err != nil {
		t.Fatalf("DecodeResponse failed: %v", err)
	}
	if decoded.IsSuccess() || decoded.Status != StatusNoDevice {
		t.Errorf("status = %d (%s), want %d", decoded.Status, decoded.Status, StatusNoDevice)
	}
}

func TestSampleDataSurvives(t *testing.T) {
	samples := []byte{0x00, 0x80, 0xFF, 0x7F, 0x01, 0x00}
	resp := Response{MessageID: 5, Data: samples}
	data, err := EncodeResponse(&resp)
	if err != nil {
		t.Fatalf("EncodeResponse failed: %v", err)
	}
	decoded, err := DecodeResponse(data)
	if err != nil {
		t.Fatalf("DecodeResponse failed: %v", err)
	}
	if !bytes.Equal(decoded.Data, samples) {
		t.Errorf("data = %x, want %x", decoded.Data, samples)
	}
}

func TestScanFormatString(t *testing.T) {
	f := ScanFormat{Signed: true, Bits: 12, StorageBits: 16, Shift: 4}
	if got := f.String(); got != "le:s12/16>>4" {
		t.Errorf("String() = %q", got)
	}
	f = ScanFormat{BigEndian: true, Bits: 16, StorageBits: 16}
	if got := f.String(); got != "be:u16/16>>0" {
		t.Errorf("String() = %q", got)
	}
}

func TestVersionString(t *testing.T) {
	if got := (Version{Major: 0, Minor: 1}).String(); got != "0.1" {
		t.Errorf("String() = %q", got)
	}
	if got := (Version{Major: 1, Minor: 2, Git: "abc1234"}).String(); got != "1.2 abc1234" {
		t.Errorf("String() = %q", got)
	}
}
