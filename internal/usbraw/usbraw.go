// Package usbraw opens the blink(1) over raw USB as a fallback for hosts
// where no HID handle can be obtained (missing hidraw permissions, or the
// kernel driver holding the interface).
package usbraw

import (
	"fmt"

	"github.com/karalabe/usb"
)

// Device represents a blink(1) opened via raw USB endpoints.
type Device struct {
	dev usb.Device
}

// Open finds and opens the first device matching VID/PID.
func Open(vendorID, productID uint16) (*Device, error) {
	infos, err := usb.Enumerate(vendorID, productID)
	if err != nil {
		return nil, fmt.Errorf("usb enumerate: %w", err)
	}
	if len(infos) == 0 {
		return nil, fmt.Errorf("device not found (VID:0x%04X PID:0x%04X)", vendorID, productID)
	}

	dev, err := infos[0].Open()
	if err != nil {
		return nil, fmt.Errorf("open device: %w", err)
	}

	return &Device{dev: dev}, nil
}

// WriteFeature sends a report to the device. Raw endpoint writes carry the
// report ID in the first byte, so the report is sent as-is.
func (d *Device) WriteFeature(reportID byte, data []byte) error {
	report := make([]byte, len(data)+1)
	report[0] = reportID
	copy(report[1:], data)

	n, err := d.dev.Write(report)
	if err != nil {
		return fmt.Errorf("usb write: %w", err)
	}
	if n != len(report) {
		return fmt.Errorf("usb write: short write (%d of %d bytes)", n, len(report))
	}
	return nil
}

// Close releases the device.
func (d *Device) Close() error {
	return d.dev.Close()
}
