package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockProtectedPayClientForTest creates a new mock ProtectedPayClient for testing
func NewMockProtectedPayClientForTest(t *testing.T) *MockProtectedPayClient {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockProtectedPayClient(ctrl)
}

// NewMockWalletSessionForTest creates a new mock WalletSession for testing
func NewMockWalletSessionForTest(t *testing.T) *MockWalletSession {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockWalletSession(ctrl)
}

// NewMockQuerierForTest creates a new mock Querier for testing
func NewMockQuerierForTest(t *testing.T) *MockQuerier {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockQuerier(ctrl)
}

// NewMockEventStoreForTest creates a new mock EventStore for testing
func NewMockEventStoreForTest(t *testing.T) *MockEventStore {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockEventStore(ctrl)
}
