package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/protectedpay/protectedpay-api/internal/constants"
	"github.com/protectedpay/protectedpay-api/internal/db"
	"github.com/protectedpay/protectedpay-api/internal/mocks"
	"github.com/protectedpay/protectedpay-api/internal/services"
	"github.com/protectedpay/protectedpay-api/internal/types/api/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestActivityService_ListActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	service := services.NewActivityService(mockQuerier, constants.NeoXTestnetChainID)
	ctx := context.Background()

	actor := pgtype.Text{String: strings.ToLower(alice.Hex()), Valid: true}

	tests := []struct {
		name       string
		params     params.ListActivityParams
		setupMocks func()
		wantLen    int
		wantErr    bool
	}{
		{
			name:   "applies the default page size",
			params: params.ListActivityParams{Address: alice.Hex()},
			setupMocks: func() {
				mockQuerier.EXPECT().ListContractEventsByAddress(ctx, db.ListContractEventsByAddressParams{
					ChainID: constants.NeoXTestnetChainID,
					Actor:   actor,
					Limit:   20,
				}).Return([]db.ContractEvent{
					{EventName: constants.EventTransferInitiated, TxHash: "0x01", Actor: actor},
					{EventName: constants.EventUserRegistered, TxHash: "0x02", Actor: actor, Label: pgtype.Text{String: "alice", Valid: true}},
				}, nil)
			},
			wantLen: 2,
		},
		{
			name:   "caps the page size",
			params: params.ListActivityParams{Address: alice.Hex(), Limit: 1000, Offset: 5},
			setupMocks: func() {
				mockQuerier.EXPECT().ListContractEventsByAddress(ctx, db.ListContractEventsByAddressParams{
					ChainID: constants.NeoXTestnetChainID,
					Actor:   actor,
					Limit:   100,
					Offset:  5,
				}).Return(nil, nil)
			},
		},
		{
			name:       "requires a valid address",
			params:     params.ListActivityParams{Address: "alice"},
			setupMocks: func() {},
			wantErr:    true,
		},
		{
			name:   "wraps store failures",
			params: params.ListActivityParams{Address: alice.Hex()},
			setupMocks: func() {
				mockQuerier.EXPECT().ListContractEventsByAddress(ctx, gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMocks()

			events, err := service.ListActivity(ctx, tt.params)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, events, tt.wantLen)
		})
	}
}

func TestActivityService_ListEntityHistory(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	service := services.NewActivityService(mockQuerier, constants.EduChainTestnetChainID)
	ctx := context.Background()

	mockQuerier.EXPECT().ListContractEventsByEntity(ctx, db.ListContractEventsByEntityParams{
		ChainID:  constants.EduChainTestnetChainID,
		EntityID: pgtype.Text{String: strings.ToLower(transferID.Hex()), Valid: true},
	}).Return([]db.ContractEvent{
		{EventName: constants.EventTransferInitiated, EntityID: pgtype.Text{String: transferID.Hex(), Valid: true}},
		{EventName: constants.EventTransferClaimed, EntityID: pgtype.Text{String: transferID.Hex(), Valid: true}},
	}, nil)

	events, err := service.ListEntityHistory(ctx, transferID.Hex())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, constants.EventTransferClaimed, events[1].Name)
	require.NotNil(t, events[0].EntityID)
	assert.Equal(t, transferID, *events[0].EntityID)
}
