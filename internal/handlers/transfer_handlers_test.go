package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/protectedpay/protectedpay-api/internal/client/protectedpay"
	"github.com/protectedpay/protectedpay-api/internal/handlers"
	"github.com/protectedpay/protectedpay-api/internal/mocks"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTransferRouter(t *testing.T) (*mocks.MockTransferService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockTransferService(ctrl)
	h := handlers.NewTransferHandler(svc)

	router := newRouter()
	router.POST("/api/v1/transfers", h.Send)
	router.GET("/api/v1/transfers", h.ListTransfers)
	router.POST("/api/v1/transfers/claim", h.Claim)
	router.GET("/api/v1/transfers/:transfer_id", h.GetTransfer)
	router.POST("/api/v1/transfers/:transfer_id/refund", h.Refund)
	return svc, router
}

func TestTransferHandler_Send(t *testing.T) {
	tests := []struct {
		name       string
		body       interface{}
		setupMocks func(svc *mocks.MockTransferService)
		wantStatus int
		wantError  string
	}{
		{
			name: "created",
			body: map[string]string{"recipient": "bob", "amount": "1"},
			setupMocks: func(svc *mocks.MockTransferService) {
				svc.EXPECT().Send(gomock.Any(), "bob", "1").Return(receipt("sendToUsername"), nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "malformed body",
			body:       `{"recipient":`,
			setupMocks: func(svc *mocks.MockTransferService) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid request body",
		},
		{
			name:       "missing amount",
			body:       map[string]string{"recipient": "bob"},
			setupMocks: func(svc *mocks.MockTransferService) {},
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid request body",
		},
		{
			name: "non-positive amount",
			body: map[string]string{"recipient": "bob", "amount": "0"},
			setupMocks: func(svc *mocks.MockTransferService) {
				svc.EXPECT().Send(gomock.Any(), "bob", "0").
					Return(nil, protectedpay.NewError(protectedpay.KindInvalidInput, "send", protectedpay.ErrNonPositiveAmount))
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "Amount must be greater than zero",
		},
		{
			name: "wallet not connected",
			body: map[string]string{"recipient": "bob", "amount": "1"},
			setupMocks: func(svc *mocks.MockTransferService) {
				svc.EXPECT().Send(gomock.Any(), "bob", "1").
					Return(nil, protectedpay.NewError(protectedpay.KindWalletNotConnected, "sendToUsername", protectedpay.ErrWalletNotConnected))
			},
			wantStatus: http.StatusConflict,
			wantError:  handlers.MsgWalletNotConnected,
		},
		{
			name: "reverted",
			body: map[string]string{"recipient": "bob", "amount": "1"},
			setupMocks: func(svc *mocks.MockTransferService) {
				svc.EXPECT().Send(gomock.Any(), "bob", "1").
					Return(nil, protectedpay.NewError(protectedpay.KindReverted, "sendToUsername", protectedpay.ErrReverted))
			},
			wantStatus: http.StatusBadGateway,
			wantError:  "Failed to send transfer. Please try again.",
		},
		{
			name: "rpc failure",
			body: map[string]string{"recipient": "bob", "amount": "1"},
			setupMocks: func(svc *mocks.MockTransferService) {
				svc.EXPECT().Send(gomock.Any(), "bob", "1").Return(nil, errors.New("connection refused"))
			},
			wantStatus: http.StatusBadGateway,
			wantError:  "Failed to send transfer. Please try again.",
		},
		{
			name: "confirmation timeout",
			body: map[string]string{"recipient": "bob", "amount": "1"},
			setupMocks: func(svc *mocks.MockTransferService) {
				svc.EXPECT().Send(gomock.Any(), "bob", "1").
					Return(nil, protectedpay.NewError(protectedpay.KindTimeout, "sendToUsername", context.DeadlineExceeded))
			},
			wantStatus: http.StatusGatewayTimeout,
			wantError:  "Timed out trying to send transfer. Please try again.",
		},
		{
			name: "signer rejected",
			body: map[string]string{"recipient": "bob", "amount": "1"},
			setupMocks: func(svc *mocks.MockTransferService) {
				svc.EXPECT().Send(gomock.Any(), "bob", "1").
					Return(nil, protectedpay.NewError(protectedpay.KindRejected, "sendToUsername", errors.New("user denied")))
			},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newTransferRouter(t)
			tt.setupMocks(svc)

			w := perform(router, http.MethodPost, "/api/v1/transfers", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decode(t, w)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, body["error"])
				assert.NotEmpty(t, body["correlation_id"])
				return
			}
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, "transaction", body["object"])
				assert.Equal(t, "1", body["value"])
				assert.Equal(t, "1000000000000000000", body["value_wei"])
				assert.Equal(t, transferID.Hex(), body["entity_id"])
				assert.Equal(t, "https://xt4scan.ngd.network/tx/0xbeef", body["explorer_url"])
			}
		})
	}
}

func TestTransferHandler_Claim(t *testing.T) {
	svc, router := newTransferRouter(t)
	svc.EXPECT().Claim(gomock.Any(), transferID.Hex()).Return(receipt("claimTransferById"), nil)

	w := perform(router, http.MethodPost, "/api/v1/transfers/claim", map[string]string{"identifier": transferID.Hex()})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "claimTransferById", decode(t, w)["operation"])
}

func TestTransferHandler_Refund(t *testing.T) {
	svc, router := newTransferRouter(t)
	svc.EXPECT().Refund(gomock.Any(), "0xnot-an-id").
		Return(nil, protectedpay.NewError(protectedpay.KindInvalidInput, "refund", errors.New("invalid transfer id")))

	w := perform(router, http.MethodPost, "/api/v1/transfers/0xnot-an-id/refund", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid transfer id", decode(t, w)["error"])
}

func TestTransferHandler_GetTransfer(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, router := newTransferRouter(t)
		svc.EXPECT().GetTransfer(gomock.Any(), transferID.Hex()).Return(&business.Transfer{
			ID:        transferID,
			Sender:    alice,
			Recipient: bob,
			AmountWei: ether(2),
			Timestamp: time.Unix(1700000000, 0),
			Status:    business.TransferClaimed,
			Remarks:   "rent",
		}, nil)

		w := perform(router, http.MethodGet, "/api/v1/transfers/"+transferID.Hex(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, "claimed", body["status"])
		assert.Equal(t, "2", body["amount"])
		assert.Equal(t, bob.Hex(), body["recipient"])
		assert.EqualValues(t, 1700000000, body["timestamp"])
	})

	t.Run("not found", func(t *testing.T) {
		svc, router := newTransferRouter(t)
		svc.EXPECT().GetTransfer(gomock.Any(), transferID.Hex()).
			Return(nil, protectedpay.NewError(protectedpay.KindNotFound, "getTransferDetails", protectedpay.ErrNotFound))

		w := perform(router, http.MethodGet, "/api/v1/transfers/"+transferID.Hex(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTransferHandler_ListTransfers(t *testing.T) {
	svc, router := newTransferRouter(t)
	svc.EXPECT().ListTransfers(gomock.Any(), alice.Hex()).Return([]business.Transfer{
		{ID: transferID, Sender: alice, Recipient: bob, AmountWei: ether(1), Status: business.TransferPending},
	}, nil)

	w := perform(router, http.MethodGet, "/api/v1/transfers?address="+alice.Hex(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "list", body["object"])
	data := body["data"].([]interface{})
	if assert.Len(t, data, 1) {
		assert.Equal(t, "pending", data[0].(map[string]interface{})["status"])
	}
}
