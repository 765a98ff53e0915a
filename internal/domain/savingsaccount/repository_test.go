package savingsaccount

import (
	"bank-services/internal/event"
	"context"

	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

var _ Repository = (*MockRepository)(nil)

func (m *MockRepository) Insert(ctx context.Context, account *SavingsAccount) (*SavingsAccount, error) {
	args := m.Called(ctx, account)
	var r0 *SavingsAccount
	if args.Get(0) != nil {
		r0 = args.Get(0).(*SavingsAccount)
	}
	return r0, args.Error(1)
}

func (m *MockRepository) Replace(ctx context.Context, account *SavingsAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockRepository) FindByID(ctx context.Context, id int64) (*SavingsAccount, error) {
	args := m.Called(ctx, id)
	var r0 *SavingsAccount
	if args.Get(0) != nil {
		r0 = args.Get(0).(*SavingsAccount)
	}
	return r0, args.Error(1)
}

func (m *MockRepository) FindAll(ctx context.Context) ([]*SavingsAccount, error) {
	args := m.Called(ctx)
	var r0 []*SavingsAccount
	if args.Get(0) != nil {
		r0 = args.Get(0).([]*SavingsAccount)
	}
	return r0, args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishRecordChanged(ctx context.Context, ev event.RecordChangedEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}
