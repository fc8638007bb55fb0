package version

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    ProtocolVersion
		wantErr bool
	}{
		{in: "0.1", want: ProtocolVersion{0, 1}},
		{in: "1.12", want: ProtocolVersion{1, 12}},
		{in: "0.1 abc1234", want: ProtocolVersion{0, 1}},
		{in: "1", wantErr: true},
		{in: "1.x", wantErr: true},
		{in: ".1", wantErr: true},
		{in: "1.2.3", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCompatible(t *testing.T) {
	tests := []struct {
		a, b ProtocolVersion
		want bool
	}{
		{ProtocolVersion{0, 1}, ProtocolVersion{0, 1}, true},
		{ProtocolVersion{0, 1}, ProtocolVersion{0, 2}, false},
		{ProtocolVersion{1, 0}, ProtocolVersion{1, 3}, true},
		{ProtocolVersion{1, 0}, ProtocolVersion{2, 0}, false},
	}
	for _, tt := range tests {
		if got := tt.a.Compatible(tt.b); got != tt.want {
			t.Errorf("%v.Compatible(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMustCurrent(t *testing.T) {
	if MustCurrent().String() != Current {
		t.Errorf("MustCurrent() = %v, want %s", MustCurrent(), Current)
	}
}
