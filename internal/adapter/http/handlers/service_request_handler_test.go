package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"serviexpress/internal/adapter/http/handlers/mocks"
	"serviexpress/internal/domain/entities"
	"serviexpress/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const createRequestBody = `{
	"handyman_email": "handy@example.com",
	"title": "Leaky faucet",
	"description": "Kitchen faucet drips",
	"location": {"municipality": "Managua", "neighborhood": "Altamira", "address": "Calle 1"},
	"categories": ["plumbing"]
}`

func newRequestRouter(h *ServiceRequestHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/requests", h.CreateRequest)
	r.GET("/v1/requests", h.ListRequests)
	r.GET("/v1/requests/active/:handyman_id", h.GetActiveWithHandyman)
	r.GET("/v1/requests/:request_id", h.GetRequest)
	r.PATCH("/v1/requests/:request_id/accept", h.AcceptRequest)
	r.PATCH("/v1/requests/:request_id/cancel", h.CancelRequest)
	r.PATCH("/v1/requests/:request_id/complete", h.CompleteRequest)
	return r
}

func TestServiceRequestHandler_CreateRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing identity header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		r := newRequestRouter(NewServiceRequestHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(createRequestBody))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		r := newRequestRouter(NewServiceRequestHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderUserID, "client-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing categories fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		r := newRequestRouter(NewServiceRequestHandler(uc))

		body := `{"handyman_email":"handy@example.com","title":"t","description":"d","location":{"municipality":"Managua","address":"Calle 1"},"categories":[]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderUserID, "client-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("coverage mismatch maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		r := newRequestRouter(NewServiceRequestHandler(uc))

		uc.EXPECT().Create(gomock.Any(), "client-1", gomock.Any()).
			Return(entities.Request{}, usecase.ErrCoverageAreaMismatch)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(createRequestBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderUserID, "client-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		r := newRequestRouter(NewServiceRequestHandler(uc))

		uc.EXPECT().Create(gomock.Any(), "client-1", gomock.AssignableToTypeOf(usecase.CreateRequestInput{})).DoAndReturn(
			func(_ context.Context, _ string, in usecase.CreateRequestInput) (entities.Request, error) {
				if in.HandymanEmail != "handy@example.com" || in.Location.Municipality != "Managua" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Request{ID: "req-1", ClientID: "client-1", Status: entities.RequestStatusPending}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/v1/requests", bytes.NewBufferString(createRequestBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderUserID, "client-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["id"] != "req-1" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestServiceRequestHandler_StatusTransitions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("accept success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		r := newRequestRouter(NewServiceRequestHandler(uc))

		uc.EXPECT().Accept(gomock.Any(), "handy-1", "req-1").
			Return(entities.Request{ID: "req-1", Status: entities.RequestStatusAccepted}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/accept", nil)
		req.Header.Set(HeaderUserID, "handy-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("accept by a stranger maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		r := newRequestRouter(NewServiceRequestHandler(uc))

		uc.EXPECT().Accept(gomock.Any(), "handy-2", "req-1").
			Return(entities.Request{}, usecase.ErrNotRequestOwner)

		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/accept", nil)
		req.Header.Set(HeaderUserID, "handy-2")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("cancel unknown request maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		r := newRequestRouter(NewServiceRequestHandler(uc))

		uc.EXPECT().Cancel(gomock.Any(), "client-1", "req-9").
			Return(entities.Request{}, usecase.ErrRequestNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/req-9/cancel", nil)
		req.Header.Set(HeaderUserID, "client-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("complete requires a valid role header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		r := newRequestRouter(NewServiceRequestHandler(uc))

		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/complete", nil)
		req.Header.Set(HeaderUserID, "client-1")
		req.Header.Set(HeaderUserRole, "auditor")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("complete success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		r := newRequestRouter(NewServiceRequestHandler(uc))

		uc.EXPECT().Complete(gomock.Any(), "handy-1", "req-1", entities.RoleHandyman).
			Return(entities.Request{ID: "req-1", Status: entities.RequestStatusPayed, HandymanCompleted: true}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/requests/req-1/complete", nil)
		req.Header.Set(HeaderUserID, "handy-1")
		req.Header.Set(HeaderUserRole, "handyman")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestServiceRequestHandler_Reads(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list routes by role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		r := newRequestRouter(NewServiceRequestHandler(uc))

		uc.EXPECT().ListByHandyman(gomock.Any(), "handy-1").
			Return([]entities.Request{{ID: "req-1"}, {ID: "req-2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests", nil)
		req.Header.Set(HeaderUserID, "handy-1")
		req.Header.Set(HeaderUserRole, "handyman")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if len(resp) != 2 {
			t.Fatalf("expected 2 items, got %d", len(resp))
		}
	})

	t.Run("active pair lookup misses with 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		r := newRequestRouter(NewServiceRequestHandler(uc))

		uc.EXPECT().FindActiveByPair(gomock.Any(), "client-1", "handy-1").
			Return(entities.Request{}, usecase.ErrRequestNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/active/handy-1", nil)
		req.Header.Set(HeaderUserID, "client-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("get by id success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIRequestUseCase(ctrl)
		r := newRequestRouter(NewServiceRequestHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "req-1").
			Return(entities.Request{ID: "req-1", Status: entities.RequestStatusQuoted}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/requests/req-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
