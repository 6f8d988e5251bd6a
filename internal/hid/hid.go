package hid

// Device represents an opened HID device capable of report output. The
// blink(1) receives its commands as feature reports.
type Device interface {
	WriteFeature(reportID byte, data []byte) error
	Close() error
}

// Info represents a HID device descriptor.
type Info struct {
	Path         string
	VendorID     uint16
	ProductID    uint16
	Product      string
	Manufacturer string
}

// Manager enumerates and opens HID devices.
type Manager interface {
	List(vendorID, productID uint16) ([]Info, error)
	OpenVIDPID(vendorID, productID uint16) (Device, error)
}

// NewManager returns the usbhid-backed HID manager.
func NewManager() (Manager, error) {
	return newManager()
}
