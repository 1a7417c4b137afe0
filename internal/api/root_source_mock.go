// A testify mock of library.RootSource for handler tests.

package api

import "github.com/stretchr/testify/mock"

// MockRootSource is a mock implementation of library.RootSource
type MockRootSource struct {
	mock.Mock
}

// ActiveRoot mocks the ActiveRoot method
func (m *MockRootSource) ActiveRoot() string {
	args := m.Called()
	return args.String(0)
}
