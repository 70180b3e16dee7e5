package mocks

import (
	"context"

	"tataru/core/models"

	"github.com/stretchr/testify/mock"
)

// Source is a mock implementation of remote.Source
type Source struct {
	mock.Mock
}

func (m *Source) FetchByID(ctx context.Context, id int) (models.Item, error) {
	args := m.Called(ctx, id)
	if it, ok := args.Get(0).(models.Item); ok {
		return it, args.Error(1)
	}
	return models.Item{}, args.Error(1)
}

func (m *Source) FetchByExactName(ctx context.Context, name string) (models.Item, error) {
	args := m.Called(ctx, name)
	if it, ok := args.Get(0).(models.Item); ok {
		return it, args.Error(1)
	}
	return models.Item{}, args.Error(1)
}

func (m *Source) FetchPrice(ctx context.Context, id int) (models.Price, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(models.Price); ok {
		return p, args.Error(1)
	}
	return models.Price{}, args.Error(1)
}
