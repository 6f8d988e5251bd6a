package hid

// MockDevice records written feature reports for tests.
type MockDevice struct {
	Reports  [][]byte
	WriteErr error
	Closed   bool
}

func NewMockDevice() *MockDevice {
	return &MockDevice{}
}

func (m *MockDevice) WriteFeature(reportID byte, data []byte) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	report := append([]byte{reportID}, data...)
	m.Reports = append(m.Reports, report)
	return nil
}

func (m *MockDevice) Close() error {
	m.Closed = true
	return nil
}
