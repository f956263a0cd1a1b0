package item

import "github.com/stretchr/testify/mock"

// MockRandomSource is a mock implementation of utils.RandomSource
type MockRandomSource struct {
	mock.Mock
}

func (m *MockRandomSource) Uint64() uint64 {
	args := m.Called()
	return args.Get(0).(uint64)
}
