package mocks

import "github.com/tasknest/tasknest-api/internal/platform/imaging"

// MockProcessor implements imaging.Processor for testing.
type MockProcessor struct {
	ProcessFn func(data []byte) ([]byte, error)

	Output []byte
	Err    error
}

var _ imaging.Processor = (*MockProcessor)(nil)

func (m *MockProcessor) Process(data []byte) ([]byte, error) {
	if m.ProcessFn != nil {
		return m.ProcessFn(data)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Output != nil {
		return m.Output, nil
	}
	return data, nil
}
