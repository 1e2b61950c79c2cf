package handlers_test

import (
	"net/http"
	"testing"

	"github.com/protectedpay/protectedpay-api/internal/handlers"
	"github.com/protectedpay/protectedpay-api/internal/mocks"
	"github.com/protectedpay/protectedpay-api/internal/types/api/params"
	"github.com/protectedpay/protectedpay-api/internal/types/business"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSavingsPotHandler(t *testing.T) {
	svc := mocks.NewMockSavingsPotService(gomock.NewController(t))
	h := handlers.NewSavingsPotHandler(svc)

	router := newRouter()
	router.POST("/api/v1/savings-pots", h.Create)
	router.GET("/api/v1/savings-pots", h.ListForUser)
	router.GET("/api/v1/savings-pots/:pot_id", h.Get)
	router.POST("/api/v1/savings-pots/:pot_id/contribute", h.Contribute)
	router.POST("/api/v1/savings-pots/:pot_id/break", h.Break)

	potPath := "/api/v1/savings-pots/" + transferID.Hex()

	t.Run("create", func(t *testing.T) {
		svc.EXPECT().Create(gomock.Any(), params.CreateSavingsPotParams{
			Name:          "holiday",
			TargetAmount:  "5",
			InitialAmount: "0.5",
		}).Return(receipt("createSavingsPot"), nil)

		w := perform(router, http.MethodPost, "/api/v1/savings-pots", map[string]string{
			"name": "holiday", "target_amount": "5", "initial_amount": "0.5",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("contribute requires an amount", func(t *testing.T) {
		w := perform(router, http.MethodPost, potPath+"/contribute", map[string]string{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("contribute", func(t *testing.T) {
		svc.EXPECT().Contribute(gomock.Any(), transferID.Hex(), "1.25").Return(receipt("contributeToSavingsPot"), nil)

		w := perform(router, http.MethodPost, potPath+"/contribute", map[string]string{"amount": "1.25"})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("break", func(t *testing.T) {
		svc.EXPECT().Break(gomock.Any(), transferID.Hex()).Return(receipt("breakPot"), nil)

		w := perform(router, http.MethodPost, potPath+"/break", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "breakPot", decode(t, w)["operation"])
	})

	t.Run("get", func(t *testing.T) {
		svc.EXPECT().Get(gomock.Any(), transferID.Hex()).Return(&business.SavingsPot{
			ID:               transferID,
			Owner:            alice,
			Name:             "holiday",
			TargetAmountWei:  ether(5),
			CurrentAmountWei: ether(5),
			Status:           business.SavingsPotActive,
		}, nil)

		w := perform(router, http.MethodGet, potPath, nil)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, true, body["target_reached"])
		assert.Equal(t, "active", body["status"])
	})

	t.Run("list", func(t *testing.T) {
		svc.EXPECT().ListForUser(gomock.Any(), "").Return([]business.SavingsPot{{ID: transferID}, {ID: transferID}}, nil)

		w := perform(router, http.MethodGet, "/api/v1/savings-pots", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode(t, w)["data"], 2)
	})
}
