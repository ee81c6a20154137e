package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"serviexpress/internal/domain/entities"
	"serviexpress/internal/usecase/interfaces"
	mock_interfaces "serviexpress/internal/usecase/interfaces/mocks"
	"serviexpress/pkg"

	"go.uber.org/mock/gomock"
)

type requestMocks struct {
	repo        *mock_interfaces.MockIRequestRepository
	users       *mock_interfaces.MockIUserRepository
	skills      *mock_interfaces.MockISkillRepository
	chat        *mock_interfaces.MockIChatGateway
	completions *mock_interfaces.MockICompletionNotifier
}

func newRequestUseCaseForTest(ctrl *gomock.Controller) (*RequestUseCase, requestMocks) {
	m := requestMocks{
		repo:        mock_interfaces.NewMockIRequestRepository(ctrl),
		users:       mock_interfaces.NewMockIUserRepository(ctrl),
		skills:      mock_interfaces.NewMockISkillRepository(ctrl),
		chat:        mock_interfaces.NewMockIChatGateway(ctrl),
		completions: mock_interfaces.NewMockICompletionNotifier(ctrl),
	}
	uc := NewRequestUseCase(m.repo, m.users, NewSkillResolver(m.skills), m.chat, m.completions, "admin-1")
	return uc, m
}

func validCreateInput() CreateRequestInput {
	return CreateRequestInput{
		HandymanEmail: "handy@example.com",
		Title:         "Leaky faucet",
		Description:   "Kitchen faucet drips",
		Location:      entities.Location{Municipality: "Managua", Neighborhood: "Altamira", Address: "Calle 1"},
		Categories:    []string{"plumbing"},
	}
}

func TestRequestUseCase_Create(t *testing.T) {
	client := entities.User{ID: "client-1", Role: entities.RoleClient}
	handyman := entities.User{
		ID:           "handy-1",
		Email:        "handy@example.com",
		Role:         entities.RoleHandyman,
		Skills:       []string{"skill-plumbing"},
		CoverageArea: []string{"Managua"},
	}

	t.Run("invalid actor id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newRequestUseCaseForTest(ctrl)

		_, err := uc.Create(context.Background(), "   ", validCreateInput())
		if !errors.Is(err, ErrInvalidActorID) {
			t.Fatalf("expected ErrInvalidActorID, got %v", err)
		}
	})

	t.Run("missing title", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newRequestUseCaseForTest(ctrl)

		in := validCreateInput()
		in.Title = " "
		_, err := uc.Create(context.Background(), "client-1", in)
		var appErr *pkg.AppError
		if !errors.As(err, &appErr) || appErr.HTTPStatus != 400 {
			t.Fatalf("expected bad request, got %v", err)
		}
	})

	t.Run("client not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(ctrl)

		m.users.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.User{}, nil)

		_, err := uc.Create(context.Background(), "client-1", validCreateInput())
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("banned handyman is treated as absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(ctrl)

		banned := handyman
		banned.Banned = true
		m.users.EXPECT().GetByID(gomock.Any(), "client-1").Return(client, nil)
		m.users.EXPECT().GetByEmailAndRole(gomock.Any(), "handy@example.com", entities.RoleHandyman).Return(banned, nil)

		_, err := uc.Create(context.Background(), "client-1", validCreateInput())
		if !errors.Is(err, ErrHandymanNotFound) {
			t.Fatalf("expected ErrHandymanNotFound, got %v", err)
		}
	})

	t.Run("coverage area mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(ctrl)

		m.users.EXPECT().GetByID(gomock.Any(), "client-1").Return(client, nil)
		m.users.EXPECT().GetByEmailAndRole(gomock.Any(), "handy@example.com", entities.RoleHandyman).Return(handyman, nil)

		in := validCreateInput()
		in.Location.Municipality = "León"
		_, err := uc.Create(context.Background(), "client-1", in)
		if !errors.Is(err, ErrCoverageAreaMismatch) {
			t.Fatalf("expected ErrCoverageAreaMismatch, got %v", err)
		}
	})

	t.Run("handyman missing the skill", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(ctrl)

		m.users.EXPECT().GetByID(gomock.Any(), "client-1").Return(client, nil)
		m.users.EXPECT().GetByEmailAndRole(gomock.Any(), "handy@example.com", entities.RoleHandyman).Return(handyman, nil)
		m.skills.EXPECT().GetByName(gomock.Any(), "electricity").Return(entities.Skill{ID: "skill-electricity", SkillName: "electricity"}, nil)

		in := validCreateInput()
		in.Categories = []string{"electricity"}
		_, err := uc.Create(context.Background(), "client-1", in)
		var appErr *pkg.AppError
		if !errors.As(err, &appErr) || appErr.HTTPStatus != 403 {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})

	t.Run("active request already exists for pair", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(ctrl)

		m.users.EXPECT().GetByID(gomock.Any(), "client-1").Return(client, nil)
		m.users.EXPECT().GetByEmailAndRole(gomock.Any(), "handy@example.com", entities.RoleHandyman).Return(handyman, nil)
		m.skills.EXPECT().GetByName(gomock.Any(), "plumbing").Return(entities.Skill{ID: "skill-plumbing", SkillName: "plumbing"}, nil)
		m.repo.EXPECT().FindActiveByPair(gomock.Any(), "client-1", "handy-1").
			Return(entities.Request{ID: "req-1", Status: entities.RequestStatusQuoted}, nil)

		_, err := uc.Create(context.Background(), "client-1", validCreateInput())
		var appErr *pkg.AppError
		if !errors.As(err, &appErr) || appErr.HTTPStatus != 409 {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("concurrent create loses the pair lock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(ctrl)

		m.users.EXPECT().GetByID(gomock.Any(), "client-1").Return(client, nil)
		m.users.EXPECT().GetByEmailAndRole(gomock.Any(), "handy@example.com", entities.RoleHandyman).Return(handyman, nil)
		m.skills.EXPECT().GetByName(gomock.Any(), "plumbing").Return(entities.Skill{ID: "skill-plumbing", SkillName: "plumbing"}, nil)
		m.repo.EXPECT().FindActiveByPair(gomock.Any(), "client-1", "handy-1").Return(entities.Request{}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Request{}, interfaces.ErrPairLocked)

		_, err := uc.Create(context.Background(), "client-1", validCreateInput())
		var appErr *pkg.AppError
		if !errors.As(err, &appErr) || appErr.HTTPStatus != 409 {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(ctrl)

		m.users.EXPECT().GetByID(gomock.Any(), "client-1").Return(client, nil)
		m.users.EXPECT().GetByEmailAndRole(gomock.Any(), "handy@example.com", entities.RoleHandyman).Return(handyman, nil)
		m.skills.EXPECT().GetByName(gomock.Any(), "plumbing").Return(entities.Skill{ID: "skill-plumbing", SkillName: "plumbing"}, nil)
		m.repo.EXPECT().FindActiveByPair(gomock.Any(), "client-1", "handy-1").Return(entities.Request{}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Request{})).DoAndReturn(
			func(_ context.Context, r entities.Request) (entities.Request, error) {
				if r.ID == "" || r.Status != entities.RequestStatusPending {
					t.Fatalf("unexpected request: %+v", r)
				}
				if r.ChannelID != entities.ChannelIDFor(r.ID) {
					t.Fatalf("expected derived channel id, got %s", r.ChannelID)
				}
				if r.Categories[0] != "skill-plumbing" {
					t.Fatalf("expected resolved skill ids, got %v", r.Categories)
				}
				if r.ExpiresAt.Before(time.Now()) {
					t.Fatalf("expected future expiry")
				}
				return r, nil
			},
		)
		m.chat.EXPECT().CreateChannel(gomock.Any(), gomock.Any(), []string{"client-1", "handy-1"}, "client-1", gomock.Any()).Return(nil)
		m.chat.EXPECT().SendMessage(gomock.Any(), gomock.Any(), "client-1", gomock.Any()).Return(nil)

		res, err := uc.Create(context.Background(), "client-1", validCreateInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("channel outage does not roll back the request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(ctrl)

		m.users.EXPECT().GetByID(gomock.Any(), "client-1").Return(client, nil)
		m.users.EXPECT().GetByEmailAndRole(gomock.Any(), "handy@example.com", entities.RoleHandyman).Return(handyman, nil)
		m.skills.EXPECT().GetByName(gomock.Any(), "plumbing").Return(entities.Skill{ID: "skill-plumbing", SkillName: "plumbing"}, nil)
		m.repo.EXPECT().FindActiveByPair(gomock.Any(), "client-1", "handy-1").Return(entities.Request{}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Request) (entities.Request, error) { return r, nil },
		)
		m.chat.EXPECT().CreateChannel(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("stream down"))

		res, err := uc.Create(context.Background(), "client-1", validCreateInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected created request despite channel outage")
		}
	})
}

func TestRequestUseCase_HandymanTransitions(t *testing.T) {
	pending := entities.Request{
		ID:         "req-1",
		ClientID:   "client-1",
		HandymanID: "handy-1",
		Status:     entities.RequestStatusPending,
		ChannelID:  "request-req-1",
	}

	cases := []struct {
		name   string
		call   func(uc *RequestUseCase, ctx context.Context, handymanID, requestID string) (entities.Request, error)
		status entities.RequestStatus
	}{
		{name: "accept", call: (*RequestUseCase).Accept, status: entities.RequestStatusAccepted},
		{name: "reject", call: (*RequestUseCase).Reject, status: entities.RequestStatusRejected},
	}

	for _, tc := range cases {
		t.Run(tc.name+" invalid request id", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, _ := newRequestUseCaseForTest(ctrl)

			_, err := tc.call(uc, context.Background(), "handy-1", "  ")
			if !errors.Is(err, ErrInvalidRequestID) {
				t.Fatalf("expected ErrInvalidRequestID, got %v", err)
			}
		})

		t.Run(tc.name+" not the assigned handyman", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, m := newRequestUseCaseForTest(ctrl)
			m.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(pending, nil)

			_, err := tc.call(uc, context.Background(), "handy-2", "req-1")
			if !errors.Is(err, ErrNotRequestOwner) {
				t.Fatalf("expected ErrNotRequestOwner, got %v", err)
			}
		})

		t.Run(tc.name+" lost the race", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, m := newRequestUseCaseForTest(ctrl)
			m.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(pending, nil)
			m.repo.EXPECT().UpdateStatus(gomock.Any(), pending,
				[]entities.RequestStatus{entities.RequestStatusPending}, tc.status).
				Return(entities.Request{}, nil)

			_, err := tc.call(uc, context.Background(), "handy-1", "req-1")
			var appErr *pkg.AppError
			if !errors.As(err, &appErr) || appErr.HTTPStatus != 409 {
				t.Fatalf("expected conflict, got %v", err)
			}
		})

		t.Run(tc.name+" success", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, m := newRequestUseCaseForTest(ctrl)

			updated := pending
			updated.Status = tc.status
			m.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(pending, nil)
			m.repo.EXPECT().UpdateStatus(gomock.Any(), pending,
				[]entities.RequestStatus{entities.RequestStatusPending}, tc.status).
				Return(updated, nil)
			m.chat.EXPECT().UpdateChannelMetadata(gomock.Any(), "request-req-1", gomock.Any()).Return(nil)
			m.chat.EXPECT().SendMessage(gomock.Any(), "request-req-1", "handy-1", gomock.Any()).Return(nil)

			res, err := tc.call(uc, context.Background(), "handy-1", "req-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.status {
				t.Fatalf("expected %s got %s", tc.status, res.Status)
			}
		})

		t.Run(tc.name+" notify failure propagates", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, m := newRequestUseCaseForTest(ctrl)

			updated := pending
			updated.Status = tc.status
			m.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(pending, nil)
			m.repo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), tc.status).Return(updated, nil)
			m.chat.EXPECT().UpdateChannelMetadata(gomock.Any(), "request-req-1", gomock.Any()).Return(errors.New("stream down"))

			_, err := tc.call(uc, context.Background(), "handy-1", "req-1")
			var appErr *pkg.AppError
			if !errors.As(err, &appErr) || appErr.HTTPStatus != 502 {
				t.Fatalf("expected dependency failure, got %v", err)
			}
		})
	}
}

func TestRequestUseCase_Cancel(t *testing.T) {
	accepted := entities.Request{
		ID:         "req-1",
		ClientID:   "client-1",
		HandymanID: "handy-1",
		Status:     entities.RequestStatusAccepted,
		ChannelID:  "request-req-1",
	}

	t.Run("not the owning client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(ctrl)
		m.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(accepted, nil)

		_, err := uc.Cancel(context.Background(), "client-2", "req-1")
		if !errors.Is(err, ErrNotRequestOwner) {
			t.Fatalf("expected ErrNotRequestOwner, got %v", err)
		}
	})

	t.Run("not cancellable from current state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(ctrl)
		m.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(accepted, nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), accepted,
			[]entities.RequestStatus{entities.RequestStatusPending, entities.RequestStatusAccepted},
			entities.RequestStatusCancelled).
			Return(entities.Request{}, nil)

		_, err := uc.Cancel(context.Background(), "client-1", "req-1")
		var appErr *pkg.AppError
		if !errors.As(err, &appErr) || appErr.HTTPStatus != 409 {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(ctrl)

		cancelled := accepted
		cancelled.Status = entities.RequestStatusCancelled
		m.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(accepted, nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), accepted, gomock.Any(), entities.RequestStatusCancelled).Return(cancelled, nil)
		m.chat.EXPECT().UpdateChannelMetadata(gomock.Any(), "request-req-1", gomock.Any()).Return(nil)
		m.chat.EXPECT().SendMessage(gomock.Any(), "request-req-1", "client-1", gomock.Any()).Return(nil)

		res, err := uc.Cancel(context.Background(), "client-1", "req-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.RequestStatusCancelled {
			t.Fatalf("expected cancelled, got %s", res.Status)
		}
	})
}

func TestRequestUseCase_Complete(t *testing.T) {
	payed := entities.Request{
		ID:         "req-1",
		ClientID:   "client-1",
		HandymanID: "handy-1",
		Status:     entities.RequestStatusPayed,
	}

	t.Run("handyman completing for another handyman", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(ctrl)
		m.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(payed, nil)

		_, err := uc.Complete(context.Background(), "handy-2", "req-1", entities.RoleHandyman)
		if !errors.Is(err, ErrNotRequestOwner) {
			t.Fatalf("expected ErrNotRequestOwner, got %v", err)
		}
	})

	t.Run("request not payed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(ctrl)
		m.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(payed, nil)
		m.repo.EXPECT().SetCompletionFlag(gomock.Any(), "req-1", entities.RoleClient).Return(entities.Request{}, nil)

		_, err := uc.Complete(context.Background(), "client-1", "req-1", entities.RoleClient)
		var appErr *pkg.AppError
		if !errors.As(err, &appErr) || appErr.HTTPStatus != 409 {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("flag set signals the observer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(ctrl)

		flagged := payed
		flagged.ClientCompleted = true
		m.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(payed, nil)
		m.repo.EXPECT().SetCompletionFlag(gomock.Any(), "req-1", entities.RoleClient).Return(flagged, nil)
		m.completions.EXPECT().Signal("req-1")

		res, err := uc.Complete(context.Background(), "client-1", "req-1", entities.RoleClient)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.ClientCompleted {
			t.Fatalf("expected client flag set")
		}
	})
}

func TestRequestUseCase_PromoteCompleted(t *testing.T) {
	t.Run("only one flag set is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "req-1").
			Return(entities.Request{ID: "req-1", Status: entities.RequestStatusPayed, ClientCompleted: true}, nil)

		if err := uc.PromoteCompleted(context.Background(), "req-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("duplicate signal loses the race quietly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(ctrl)

		both := entities.Request{ID: "req-1", Status: entities.RequestStatusPayed, ClientCompleted: true, HandymanCompleted: true}
		m.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(both, nil)
		m.repo.EXPECT().PromoteCompleted(gomock.Any(), both).Return(entities.Request{}, nil)

		if err := uc.PromoteCompleted(context.Background(), "req-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("promotes and notifies best effort", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(ctrl)

		both := entities.Request{ID: "req-1", Status: entities.RequestStatusPayed, ClientCompleted: true, HandymanCompleted: true, ChannelID: "request-req-1"}
		promoted := both
		promoted.Status = entities.RequestStatusCompleted
		m.repo.EXPECT().GetByID(gomock.Any(), "req-1").Return(both, nil)
		m.repo.EXPECT().PromoteCompleted(gomock.Any(), both).Return(promoted, nil)
		m.chat.EXPECT().UpdateChannelMetadata(gomock.Any(), "request-req-1", gomock.Any()).Return(errors.New("stream down"))
		m.chat.EXPECT().SendMessage(gomock.Any(), "request-req-1", "admin-1", gomock.Any()).Return(nil)

		if err := uc.PromoteCompleted(context.Background(), "req-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestRequestUseCase_SweepExpired(t *testing.T) {
	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(ctrl)
		m.repo.EXPECT().ListExpiredPending(gomock.Any(), gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.SweepExpired(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("counts only requests it actually expired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(ctrl)

		first := entities.Request{ID: "req-1", Status: entities.RequestStatusPending, ChannelID: "request-req-1"}
		second := entities.Request{ID: "req-2", Status: entities.RequestStatusPending, ChannelID: "request-req-2"}
		expired := first
		expired.Status = entities.RequestStatusExpired

		m.repo.EXPECT().ListExpiredPending(gomock.Any(), gomock.Any()).Return([]entities.Request{first, second}, nil)
		m.repo.EXPECT().UpdateStatus(gomock.Any(), first, gomock.Any(), entities.RequestStatusExpired).Return(expired, nil)
		// req-2 was accepted in the meantime: the conditional write misses.
		m.repo.EXPECT().UpdateStatus(gomock.Any(), second, gomock.Any(), entities.RequestStatusExpired).Return(entities.Request{}, nil)
		m.chat.EXPECT().UpdateChannelMetadata(gomock.Any(), "request-req-1", gomock.Any()).Return(nil)
		m.chat.EXPECT().SendMessage(gomock.Any(), "request-req-1", "admin-1", gomock.Any()).Return(nil)

		count, err := uc.SweepExpired(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 1 {
			t.Fatalf("expected 1 expired, got %d", count)
		}
	})
}

func TestRequestUseCase_Reads(t *testing.T) {
	t.Run("ListByClient invalid actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newRequestUseCaseForTest(ctrl)

		_, err := uc.ListByClient(context.Background(), " ")
		if !errors.Is(err, ErrInvalidActorID) {
			t.Fatalf("expected ErrInvalidActorID, got %v", err)
		}
	})

	t.Run("ListByHandyman success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(ctrl)
		m.repo.EXPECT().ListByHandyman(gomock.Any(), "handy-1").Return([]entities.Request{{ID: "req-1"}}, nil)

		res, err := uc.ListByHandyman(context.Background(), " handy-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 {
			t.Fatalf("expected one request, got %d", len(res))
		}
	})

	t.Run("FindActiveByPair not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(ctrl)
		m.repo.EXPECT().FindActiveByPair(gomock.Any(), "client-1", "handy-1").Return(entities.Request{}, nil)

		_, err := uc.FindActiveByPair(context.Background(), "client-1", "handy-1")
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})

	t.Run("GetByID not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newRequestUseCaseForTest(ctrl)
		m.repo.EXPECT().GetByID(gomock.Any(), "req-9").Return(entities.Request{}, nil)

		_, err := uc.GetByID(context.Background(), " req-9 ")
		if !errors.Is(err, ErrRequestNotFound) {
			t.Fatalf("expected ErrRequestNotFound, got %v", err)
		}
	})
}
