package transfer

import (
	"github.com/stretchr/testify/mock"

	"github.com/osse101/ArkTools_Go/internal/domain"
	"github.com/osse101/ArkTools_Go/internal/item"
	"github.com/osse101/ArkTools_Go/internal/property"
)

// MockEncoder is a mock implementation of Encoder
type MockEncoder struct {
	mock.Mock
}

func (m *MockEncoder) ToCluster(it *domain.Item) (*property.List, error) {
	args := m.Called(it)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.List), args.Error(1)
}

func (m *MockEncoder) ToGameObject(it *domain.Item, pool *item.Pool, ownerInventory int32) (*property.Object, error) {
	args := m.Called(it, pool, ownerInventory)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Object), args.Error(1)
}
