// Package midi talks to the synthesizer through external command-line tools. Device
// discovery parses "amidi -l" style listings; sending and requesting patches run
// configurable command templates.
package midi

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// ErrNoDevice is returned when no MIDI port is available.
var ErrNoDevice = errors.New("no MIDI device")

// Device is one raw MIDI port.
type Device struct {
	Direction string // "IO", "I" or "O"
	Port      string // e.g. hw:1,0,0
	Name      string
}

func (d Device) String() string {
	if d.Name == "" {
		return d.Port
	}
	return d.Name
}

// ParseDeviceList reads an "amidi -l" listing:
//
//	Dir Device    Name
//	IO  hw:1,0,0  reface DX MIDI 1
//
// The header line is optional. Lines that do not have at least a direction and a port
// are ignored.
func ParseDeviceList(r io.Reader) ([]Device, error) {
	var devices []Device

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		if fields[0] == "Dir" && fields[1] == "Device" {
			continue
		}
		switch fields[0] {
		case "IO", "I", "O":
		default:
			continue
		}

		devices = append(devices, Device{
			Direction: fields[0],
			Port:      fields[1],
			Name:      strings.Join(fields[2:], " "),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return devices, nil
}

// Preferred returns the index of the first device whose name starts with prefix, ignoring
// case, falling back to the first device. It returns ErrNoDevice for an empty list.
func Preferred(devices []Device, prefix string) (int, error) {
	if len(devices) == 0 {
		return -1, ErrNoDevice
	}
	if prefix != "" {
		p := strings.ToLower(prefix)
		for i, d := range devices {
			if strings.HasPrefix(strings.ToLower(d.Name), p) {
				return i, nil
			}
		}
	}
	return 0, nil
}

// PortIndex returns the position of the device called name, or 0 when it is not listed.
func PortIndex(devices []Device, name string) int {
	for i, d := range devices {
		if d.String() == name {
			return i
		}
	}
	return 0
}

// Names returns the display names of devices in order.
func Names(devices []Device) []string {
	names := make([]string, len(devices))
	for i, d := range devices {
		names[i] = d.String()
	}
	return names
}
