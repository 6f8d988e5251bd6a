package hid

import (
	usbhid "rafaelmartins.com/p/usbhid"
)

type usbManager struct{}

func newManager() (Manager, error) { return &usbManager{}, nil }

func (m *usbManager) List(vendorID, productID uint16) ([]Info, error) {
	devs, err := usbhid.Enumerate(func(dev *usbhid.Device) bool {
		return dev.VendorId() == vendorID && dev.ProductId() == productID
	})
	if err != nil {
		return nil, err
	}
	out := make([]Info, 0, len(devs))
	for _, d := range devs {
		out = append(out, Info{
			Path:         d.Path(),
			VendorID:     d.VendorId(),
			ProductID:    d.ProductId(),
			Product:      d.Product(),
			Manufacturer: d.Manufacturer(),
		})
	}
	return out, nil
}

type usbDevice struct{ d *usbhid.Device }

func (m *usbManager) OpenVIDPID(vendorID, productID uint16) (Device, error) {
	d, err := usbhid.Get(func(dev *usbhid.Device) bool {
		return dev.VendorId() == vendorID && dev.ProductId() == productID
	}, true, false)
	if err != nil {
		return nil, err
	}
	return &usbDevice{d}, nil
}

func (d *usbDevice) WriteFeature(reportID byte, data []byte) error {
	return d.d.SetFeatureReport(reportID, data)
}

func (d *usbDevice) Close() error { return d.d.Close() }
