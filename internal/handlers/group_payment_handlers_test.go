package handlers_test

import (
	"net/http"
	"testing"

	"github.com/protectedpay/protectedpay-api/internal/client/protectedpay"
	"github.com/protectedpay/protectedpay-api/internal/handlers"
	"github.com/protectedpay/protectedpay-api/internal/mocks"
	"github.com/protectedpay/protectedpay-api/internal/types/api/params"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGroupPaymentHandler(t *testing.T) {
	svc := mocks.NewMockGroupPaymentService(gomock.NewController(t))
	h := handlers.NewGroupPaymentHandler(svc)

	router := newRouter()
	router.POST("/api/v1/group-payments", h.Create)
	router.GET("/api/v1/group-payments", h.ListForUser)
	router.GET("/api/v1/group-payments/:payment_id", h.Get)
	router.POST("/api/v1/group-payments/:payment_id/contribute", h.Contribute)

	t.Run("create", func(t *testing.T) {
		svc.EXPECT().Create(gomock.Any(), params.CreateGroupPaymentParams{
			Recipient:       "bob",
			NumParticipants: 3,
			TotalAmount:     "3",
			Remarks:         "dinner",
		}).Return(receipt("createGroupPayment"), nil)

		w := perform(router, http.MethodPost, "/api/v1/group-payments", map[string]interface{}{
			"recipient":        "bob",
			"num_participants": 3,
			"total_amount":     "3",
			"remarks":          "dinner",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("create with too few participants", func(t *testing.T) {
		svc.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, protectedpay.NewError(protectedpay.KindInvalidInput, "create group payment", assertErr("at least 2 participants are required")))

		w := perform(router, http.MethodPost, "/api/v1/group-payments", map[string]interface{}{
			"recipient": "bob", "num_participants": 1, "total_amount": "3",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "At least 2 participants are required", decode(t, w)["error"])
	})

	t.Run("contribute", func(t *testing.T) {
		svc.EXPECT().Contribute(gomock.Any(), transferID.Hex()).Return(receipt("contributeToGroupPayment"), nil)

		w := perform(router, http.MethodPost, "/api/v1/group-payments/"+transferID.Hex()+"/contribute", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("get", func(t *testing.T) {
		svc.EXPECT().Get(gomock.Any(), transferID.Hex()).Return(&business.GroupPayment{
			ID:                 transferID,
			Creator:            alice,
			Recipient:          bob,
			TotalAmountWei:     ether(3),
			AmountPerPersonWei: ether(1),
			AmountCollectedWei: ether(1),
			NumParticipants:    3,
			Status:             business.GroupPaymentPending,
		}, nil)

		w := perform(router, http.MethodGet, "/api/v1/group-payments/"+transferID.Hex(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, "2", body["remaining"])
		assert.Equal(t, "pending", body["status"])
	})

	t.Run("list for user", func(t *testing.T) {
		svc.EXPECT().ListForUser(gomock.Any(), alice.Hex()).Return(&business.GroupPayments{
			Created: []business.GroupPayment{{ID: transferID}},
		}, nil)

		w := perform(router, http.MethodGet, "/api/v1/group-payments?address="+alice.Hex(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Len(t, body["created"], 1)
		assert.Len(t, body["participating"], 0)
	})
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
