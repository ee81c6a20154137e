package usecase

import (
	"context"
	"errors"
	"testing"

	"serviexpress/internal/domain/entities"
	mock_interfaces "serviexpress/internal/usecase/interfaces/mocks"
	"serviexpress/pkg"

	"go.uber.org/mock/gomock"
)

type quotationMocks struct {
	repo     *mock_interfaces.MockIQuotationRepository
	requests *mock_interfaces.MockIRequestRepository
	chat     *mock_interfaces.MockIChatGateway
}

func newQuotationUseCaseForTest(ctrl *gomock.Controller) (*QuotationUseCase, quotationMocks) {
	m := quotationMocks{
		repo:     mock_interfaces.NewMockIQuotationRepository(ctrl),
		requests: mock_interfaces.NewMockIRequestRepository(ctrl),
		chat:     mock_interfaces.NewMockIChatGateway(ctrl),
	}
	return NewQuotationUseCase(m.repo, m.requests, m.chat, "admin-1"), m
}

func acceptedRequest() entities.Request {
	return entities.Request{
		ID:         "req-1",
		ClientID:   "client-1",
		HandymanID: "handy-1",
		Title:      "Leaky faucet",
		Status:     entities.RequestStatusAccepted,
		ChannelID:  "request-req-1",
	}
}

func TestQuotationUseCase_Create(t *testing.T) {
	t.Run("invalid amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newQuotationUseCaseForTest(ctrl)

		_, err := uc.Create(context.Background(), "handy-1", "req-1", QuotationInput{Amount: 0})
		if !errors.Is(err, ErrInvalidQuotationValue) {
			t.Fatalf("expected ErrInvalidQuotationValue, got %v", err)
		}
	})

	t.Run("not the assigned handyman", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCaseForTest(ctrl)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(acceptedRequest(), nil)

		_, err := uc.Create(context.Background(), "handy-2", "req-1", QuotationInput{Amount: 100})
		var appErr *pkg.AppError
		if !errors.As(err, &appErr) || appErr.HTTPStatus != 403 {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})

	t.Run("status specific rejection reasons", func(t *testing.T) {
		cases := []struct {
			status entities.RequestStatus
			want   string
		}{
			{entities.RequestStatusPending, "You cannot quote a pending request. It must be accepted first."},
			{entities.RequestStatusQuoted, "This request has already been quoted."},
			{entities.RequestStatusInvoiced, "You cannot quote a request that has already been invoiced."},
			{entities.RequestStatusPayed, "You cannot quote a request that has already been paid."},
			{entities.RequestStatusRejected, "You cannot quote a rejected request."},
			{entities.RequestStatusCompleted, "You cannot quote a completed request."},
			{entities.RequestStatusExpired, "You cannot quote an expired request."},
			{entities.RequestStatusCancelled, "You cannot quote a cancelled request."},
		}
		for _, tc := range cases {
			t.Run(string(tc.status), func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc, m := newQuotationUseCaseForTest(ctrl)

				r := acceptedRequest()
				r.Status = tc.status
				m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(r, nil)

				_, err := uc.Create(context.Background(), "handy-1", "req-1", QuotationInput{Amount: 100})
				var appErr *pkg.AppError
				if !errors.As(err, &appErr) || appErr.HTTPStatus != 409 {
					t.Fatalf("expected conflict, got %v", err)
				}
				if appErr.Message != tc.want {
					t.Fatalf("expected %q, got %q", tc.want, appErr.Message)
				}
			})
		}
	})

	t.Run("request already has a quotation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCaseForTest(ctrl)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(acceptedRequest(), nil)
		m.repo.EXPECT().GetByRequestID(gomock.Any(), "req-1").Return(entities.Quotation{ID: "quote-1"}, nil)

		_, err := uc.Create(context.Background(), "handy-1", "req-1", QuotationInput{Amount: 100})
		var appErr *pkg.AppError
		if !errors.As(err, &appErr) || appErr.HTTPStatus != 409 {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("request moved under us drops the orphan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCaseForTest(ctrl)

		r := acceptedRequest()
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(r, nil)
		m.repo.EXPECT().GetByRequestID(gomock.Any(), "req-1").Return(entities.Quotation{}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) { return q, nil },
		)
		m.requests.EXPECT().UpdateStatus(gomock.Any(), r,
			[]entities.RequestStatus{entities.RequestStatusAccepted}, entities.RequestStatusQuoted).
			Return(entities.Request{}, nil)
		m.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		_, err := uc.Create(context.Background(), "handy-1", "req-1", QuotationInput{Amount: 100})
		var appErr *pkg.AppError
		if !errors.As(err, &appErr) || appErr.HTTPStatus != 409 {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCaseForTest(ctrl)

		r := acceptedRequest()
		quoted := r
		quoted.Status = entities.RequestStatusQuoted
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(r, nil)
		m.repo.EXPECT().GetByRequestID(gomock.Any(), "req-1").Return(entities.Quotation{}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Quotation{})).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				if q.ID == "" || q.RequestID != "req-1" || q.ClientID != "client-1" || q.Amount != 350.5 {
					t.Fatalf("unexpected quotation: %+v", q)
				}
				if q.Status != entities.QuotationStatusPending {
					t.Fatalf("expected pending, got %s", q.Status)
				}
				return q, nil
			},
		)
		m.requests.EXPECT().UpdateStatus(gomock.Any(), r, gomock.Any(), entities.RequestStatusQuoted).Return(quoted, nil)
		m.chat.EXPECT().UpdateChannelMetadata(gomock.Any(), "request-req-1", gomock.Any()).Return(nil)
		m.chat.EXPECT().SendMessage(gomock.Any(), "request-req-1", "handy-1", gomock.Any()).Return(nil)

		res, err := uc.Create(context.Background(), "handy-1", "req-1", QuotationInput{Amount: 350.5, Description: "Parts and labor"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})
}

func TestQuotationUseCase_Accept(t *testing.T) {
	pending := entities.Quotation{
		ID:        "quote-1",
		RequestID: "req-1",
		ClientID:  "client-1",
		Amount:    350.5,
		Status:    entities.QuotationStatusPending,
	}
	quoted := acceptedRequest()
	quoted.Status = entities.RequestStatusQuoted

	t.Run("not the owning client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCaseForTest(ctrl)
		m.repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(pending, nil)

		_, err := uc.Accept(context.Background(), "client-2", "quote-1")
		if !errors.Is(err, ErrNotQuotationOwner) {
			t.Fatalf("expected ErrNotQuotationOwner, got %v", err)
		}
	})

	t.Run("already processed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCaseForTest(ctrl)

		accepted := pending
		accepted.Status = entities.QuotationStatusAccepted
		m.repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(accepted, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(quoted, nil)

		_, err := uc.Accept(context.Background(), "client-1", "quote-1")
		var appErr *pkg.AppError
		if !errors.As(err, &appErr) || appErr.HTTPStatus != 409 {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("messaging failure aborts before state changes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(pending, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(quoted, nil)
		m.chat.EXPECT().SendMessage(gomock.Any(), "request-req-1", "admin-1", gomock.Any()).Return(errors.New("stream down"))

		_, err := uc.Accept(context.Background(), "client-1", "quote-1")
		var appErr *pkg.AppError
		if !errors.As(err, &appErr) || appErr.HTTPStatus != 502 {
			t.Fatalf("expected dependency failure, got %v", err)
		}
	})

	t.Run("accept success advances both rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCaseForTest(ctrl)

		accepted := pending
		accepted.Status = entities.QuotationStatusAccepted
		invoiced := quoted
		invoiced.Status = entities.RequestStatusInvoiced

		m.repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(pending, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(quoted, nil)
		m.chat.EXPECT().SendMessage(gomock.Any(), "request-req-1", "admin-1", gomock.Any()).Return(nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), "quote-1",
			[]entities.QuotationStatus{entities.QuotationStatusPending}, entities.QuotationStatusAccepted).
			Return(accepted, nil)
		m.requests.EXPECT().UpdateStatus(gomock.Any(), quoted,
			[]entities.RequestStatus{entities.RequestStatusQuoted}, entities.RequestStatusInvoiced).
			Return(invoiced, nil)
		m.chat.EXPECT().UpdateChannelMetadata(gomock.Any(), "request-req-1", gomock.Any()).Return(nil)

		res, err := uc.Accept(context.Background(), "client-1", "quote-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.QuotationStatusAccepted {
			t.Fatalf("expected accepted, got %s", res.Status)
		}
	})
}

func TestQuotationUseCase_Reject(t *testing.T) {
	pending := entities.Quotation{
		ID:        "quote-1",
		RequestID: "req-1",
		ClientID:  "client-1",
		Amount:    350.5,
		Status:    entities.QuotationStatusPending,
	}
	quoted := acceptedRequest()
	quoted.Status = entities.RequestStatusQuoted

	t.Run("deletes the quotation and reopens the request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCaseForTest(ctrl)

		reopened := quoted
		reopened.Status = entities.RequestStatusAccepted

		m.repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(pending, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(quoted, nil)
		m.chat.EXPECT().SendMessage(gomock.Any(), "request-req-1", "admin-1", gomock.Any()).Return(nil)
		m.repo.EXPECT().Delete(gomock.Any(), "quote-1").Return(nil)
		m.requests.EXPECT().UpdateStatus(gomock.Any(), quoted,
			[]entities.RequestStatus{entities.RequestStatusQuoted}, entities.RequestStatusAccepted).
			Return(reopened, nil)
		m.chat.EXPECT().UpdateChannelMetadata(gomock.Any(), "request-req-1", gomock.Any()).Return(nil)

		if err := uc.Reject(context.Background(), "client-1", "quote-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("delete error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(pending, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(quoted, nil)
		m.chat.EXPECT().SendMessage(gomock.Any(), "request-req-1", "admin-1", gomock.Any()).Return(nil)
		m.repo.EXPECT().Delete(gomock.Any(), "quote-1").Return(errors.New("db"))

		err := uc.Reject(context.Background(), "client-1", "quote-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuotationUseCase_Update(t *testing.T) {
	rejected := entities.Quotation{
		ID:         "quote-1",
		RequestID:  "req-1",
		HandymanID: "handy-1",
		ClientID:   "client-1",
		Amount:     350.5,
		Status:     entities.QuotationStatusRejected,
	}

	t.Run("only rejected quotations can be re-issued", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCaseForTest(ctrl)

		pending := rejected
		pending.Status = entities.QuotationStatusPending
		m.repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(pending, nil)

		_, err := uc.Update(context.Background(), "handy-1", "quote-1", QuotationInput{Amount: 400})
		var appErr *pkg.AppError
		if !errors.As(err, &appErr) || appErr.HTTPStatus != 409 {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("not the issuing handyman", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCaseForTest(ctrl)
		m.repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(rejected, nil)

		_, err := uc.Update(context.Background(), "handy-2", "quote-1", QuotationInput{Amount: 400})
		if !errors.Is(err, ErrNotQuotationOwner) {
			t.Fatalf("expected ErrNotQuotationOwner, got %v", err)
		}
	})

	t.Run("re-issue success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCaseForTest(ctrl)

		r := acceptedRequest()
		quoted := r
		quoted.Status = entities.RequestStatusQuoted
		reissued := rejected
		reissued.Status = entities.QuotationStatusPending
		reissued.Amount = 400

		m.repo.EXPECT().GetByID(gomock.Any(), "quote-1").Return(rejected, nil)
		m.requests.EXPECT().GetByID(gomock.Any(), "req-1").Return(r, nil)
		m.repo.EXPECT().Reissue(gomock.Any(), "quote-1", 400.0, "New terms", gomock.Any()).Return(reissued, nil)
		m.requests.EXPECT().UpdateStatus(gomock.Any(), r,
			[]entities.RequestStatus{entities.RequestStatusAccepted}, entities.RequestStatusQuoted).
			Return(quoted, nil)
		m.chat.EXPECT().UpdateChannelMetadata(gomock.Any(), "request-req-1", gomock.Any()).Return(nil)
		m.chat.EXPECT().SendMessage(gomock.Any(), "request-req-1", "handy-1", gomock.Any()).Return(nil)

		res, err := uc.Update(context.Background(), "handy-1", "quote-1", QuotationInput{Amount: 400, Description: "New terms"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Amount != 400 {
			t.Fatalf("expected updated amount, got %.2f", res.Amount)
		}
	})
}

func TestQuotationUseCase_GetByRequestID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCaseForTest(ctrl)
		m.repo.EXPECT().GetByRequestID(gomock.Any(), "req-1").Return(entities.Quotation{}, nil)

		_, err := uc.GetByRequestID(context.Background(), "client-1", "req-1")
		if !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})

	t.Run("foreign client is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCaseForTest(ctrl)
		m.repo.EXPECT().GetByRequestID(gomock.Any(), "req-1").
			Return(entities.Quotation{ID: "quote-1", ClientID: "client-1"}, nil)

		_, err := uc.GetByRequestID(context.Background(), "client-2", "req-1")
		var appErr *pkg.AppError
		if !errors.As(err, &appErr) || appErr.HTTPStatus != 403 {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newQuotationUseCaseForTest(ctrl)
		m.repo.EXPECT().GetByRequestID(gomock.Any(), "req-1").
			Return(entities.Quotation{ID: "quote-1", ClientID: "client-1"}, nil)

		res, err := uc.GetByRequestID(context.Background(), "client-1", " req-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "quote-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
