package platform

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the YAML form of a profile override file.
//
//	profile: host
//	uart:
//	  baud_rate: 230400
//	  address: 0.0.0.0:30431
//	output: {base: 0x0, size: 20000}
//	input: {base: 0x10000000, size: 20000}
type File struct {
	// Profile names the built-in profile the overrides apply to.
	Profile string `yaml:"profile"`

	UART struct {
		BaudRate uint32 `yaml:"baud_rate,omitempty"`
		Address  string `yaml:"address,omitempty"`
	} `yaml:"uart,omitempty"`

	Output      *Region `yaml:"output,omitempty"`
	Input       *Region `yaml:"input,omitempty"`
	NumChannels int     `yaml:"num_channels,omitempty"`
}

// LoadFile reads a profile override file and returns the resulting profile.
func LoadFile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a profile override document and applies it to its base
// profile. The result is validated.
func Parse(data []byte) (Profile, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return Profile{}, fmt.Errorf("parse profile file: %w", err)
	}
	if f.Profile == "" {
		return Profile{}, errors.New("parse profile file: missing profile name")
	}

	p, err := Lookup(f.Profile)
	if err != nil {
		return Profile{}, err
	}
	p = f.apply(p)

	if err := p.Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (f *File) apply(p Profile) Profile {
	if f.UART.BaudRate != 0 {
		p.UART.BaudRate = f.UART.BaudRate
	}
	if f.UART.Address != "" {
		p.UART.Address = f.UART.Address
	}
	if f.Output != nil {
		p.Output = *f.Output
	}
	if f.Input != nil {
		p.Input = *f.Input
	}
	if f.NumChannels != 0 {
		p.NumChannels = f.NumChannels
	}
	return p
}
