package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"serviexpress/internal/adapter/http/handlers/mocks"
	"serviexpress/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPayoutRouter(h *PayoutHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/payouts/requests/:request_id", h.GetHandymanPayout)
	r.GET("/v1/invoices/requests/:request_id", h.GetClientInvoice)
	return r
}

func TestPayoutHandler_GetHandymanPayout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing identity header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayoutUseCase(ctrl)
		r := newPayoutRouter(NewPayoutHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/payouts/requests/req-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("payout not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayoutUseCase(ctrl)
		r := newPayoutRouter(NewPayoutHandler(uc))

		uc.EXPECT().FindHandymanPayoutByRequest(gomock.Any(), "handy-1", "req-1").
			Return(usecase.HandymanPayoutView{}, usecase.ErrPayoutNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payouts/requests/req-1", nil)
		req.Header.Set(HeaderUserID, "handy-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayoutUseCase(ctrl)
		r := newPayoutRouter(NewPayoutHandler(uc))

		uc.EXPECT().FindHandymanPayoutByRequest(gomock.Any(), "handy-1", "req-1").Return(usecase.HandymanPayoutView{
			ClientName:          "Ana",
			RequestTitle:        "Leaky faucet",
			ClientPaymentAmount: 350.5,
			AppCommission:       16.91,
			HandymanNetAmount:   321.19,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payouts/requests/req-1", nil)
		req.Header.Set(HeaderUserID, "handy-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["handyman_net_amount"] != 321.19 {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestPayoutHandler_GetClientInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("foreign client maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayoutUseCase(ctrl)
		r := newPayoutRouter(NewPayoutHandler(uc))

		uc.EXPECT().FindClientInvoiceByRequestID(gomock.Any(), "client-2", "req-1").
			Return(usecase.ClientInvoiceView{}, usecase.ErrRequestNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/requests/req-1", nil)
		req.Header.Set(HeaderUserID, "client-2")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayoutUseCase(ctrl)
		r := newPayoutRouter(NewPayoutHandler(uc))

		uc.EXPECT().FindClientInvoiceByRequestID(gomock.Any(), "client-1", "req-1").Return(usecase.ClientInvoiceView{
			HandymanName:        "Luis",
			RequestTitle:        "Leaky faucet",
			ClientPaymentAmount: 350.5,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/requests/req-1", nil)
		req.Header.Set(HeaderUserID, "client-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
