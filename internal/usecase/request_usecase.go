package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"serviexpress/internal/domain/entities"
	"serviexpress/internal/usecase/interfaces"
	"serviexpress/pkg"

	"github.com/google/uuid"
)

const requestTTL = 7 * 24 * time.Hour

var (
	ErrInvalidRequestID     = errors.New("invalid request id")
	ErrInvalidActorID       = errors.New("invalid actor id")
	ErrClientNotFound       = errors.New("client not found")
	ErrHandymanNotFound     = errors.New("handyman not found")
	ErrRequestNotFound      = errors.New("request not found")
	ErrCoverageAreaMismatch = errors.New("coverage area mismatch")
	ErrNotRequestOwner      = errors.New("actor does not own this request")
)

// IRequestUseCase owns every transition of a service request: creation,
// acceptance/rejection, cancellation, expiry and dual completion.
//
// Transition writes are conditioned on the expected source status, so a
// stale actor gets a conflict instead of overwriting a concurrent change.

type IRequestUseCase interface {
	Create(ctx context.Context, clientID string, in CreateRequestInput) (entities.Request, error)
	Accept(ctx context.Context, handymanID, requestID string) (entities.Request, error)
	Reject(ctx context.Context, handymanID, requestID string) (entities.Request, error)
	Cancel(ctx context.Context, clientID, requestID string) (entities.Request, error)
	Complete(ctx context.Context, actorID, requestID string, role entities.Role) (entities.Request, error)
	PromoteCompleted(ctx context.Context, requestID string) error
	SweepExpired(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id string) (entities.Request, error)
	ListByClient(ctx context.Context, clientID string) ([]entities.Request, error)
	ListByHandyman(ctx context.Context, handymanID string) ([]entities.Request, error)
	FindActiveByPair(ctx context.Context, clientID, handymanID string) (entities.Request, error)
}

type CreateRequestInput struct {
	HandymanEmail string
	Title         string
	Description   string
	Location      entities.Location
	Categories    []string
}

type RequestUseCase struct {
	repo        interfaces.IRequestRepository
	users       interfaces.IUserRepository
	skills      ISkillResolver
	chat        interfaces.IChatGateway
	completions interfaces.ICompletionNotifier
	adminID     string
}

var _ IRequestUseCase = (*RequestUseCase)(nil)

func NewRequestUseCase(
	repo interfaces.IRequestRepository,
	users interfaces.IUserRepository,
	skills ISkillResolver,
	chat interfaces.IChatGateway,
	completions interfaces.ICompletionNotifier,
	adminID string,
) *RequestUseCase {
	return &RequestUseCase{
		repo:        repo,
		users:       users,
		skills:      skills,
		chat:        chat,
		completions: completions,
		adminID:     adminID,
	}
}

// Create validates both actors and persists the request together with its
// pair lock in one transaction. Channel creation and the initial broadcast
// run after commit and are best-effort: a messaging outage must not roll
// back the request.
func (u *RequestUseCase) Create(ctx context.Context, clientID string, in CreateRequestInput) (entities.Request, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Request{}, ErrInvalidActorID
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
		return entities.Request{}, pkg.NewBadRequest("Title and description are required")
	}
	if strings.TrimSpace(in.Location.Municipality) == "" {
		return entities.Request{}, pkg.NewBadRequest("Location municipality is required")
	}
	if len(in.Categories) == 0 {
		return entities.Request{}, pkg.NewBadRequest("At least one category is required")
	}

	client, err := u.users.GetByID(ctx, clientID)
	if err != nil {
		return entities.Request{}, err
	}
	if client.ID == "" {
		return entities.Request{}, ErrClientNotFound
	}

	handyman, err := u.users.GetByEmailAndRole(ctx, strings.TrimSpace(in.HandymanEmail), entities.RoleHandyman)
	if err != nil {
		return entities.Request{}, err
	}
	if handyman.ID == "" || handyman.Banned {
		return entities.Request{}, ErrHandymanNotFound
	}
	if !handyman.CoversMunicipality(in.Location.Municipality) {
		return entities.Request{}, ErrCoverageAreaMismatch
	}

	skillIDs, err := u.skills.MapNamesToIDs(ctx, in.Categories)
	if err != nil {
		return entities.Request{}, err
	}
	var missing []string
	for i, id := range skillIDs {
		if !handyman.HasSkill(id) {
			missing = append(missing, in.Categories[i])
		}
	}
	if len(missing) > 0 {
		return entities.Request{}, pkg.NewForbidden(
			fmt.Sprintf("The handyman does not have the required skills: %s", strings.Join(missing, ", ")))
	}

	if existing, err := u.repo.FindActiveByPair(ctx, client.ID, handyman.ID); err != nil {
		return entities.Request{}, err
	} else if existing.ID != "" {
		return entities.Request{}, pkg.NewConflict(
			fmt.Sprintf("You have already one %s request with this handyman", existing.Status))
	}

	now := time.Now().UTC()
	r := entities.Request{
		ID:          uuid.NewString(),
		ClientID:    client.ID,
		HandymanID:  handyman.ID,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Location:    in.Location,
		Categories:  skillIDs,
		Status:      entities.RequestStatusPending,
		ExpiresAt:   now.Add(requestTTL),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.ChannelID = entities.ChannelIDFor(r.ID)

	saved, err := u.repo.Create(ctx, r)
	if errors.Is(err, interfaces.ErrPairLocked) {
		// Lost the pair lock to a concurrent create.
		return entities.Request{}, pkg.NewConflict("You have already an active request with this handyman")
	}
	if err != nil {
		return entities.Request{}, err
	}
	log.Printf("[request][usecase] created request_id=%s client_id=%s handyman_id=%s", saved.ID, client.ID, handyman.ID)

	// Post-commit side effects: best-effort by design.
	if err := u.chat.CreateChannel(ctx, saved.ChannelID, []string{client.ID, handyman.ID}, client.ID,
		interfaces.ChannelMetadata{"requestStatus": string(saved.Status)}); err != nil {
		log.Printf("[request][usecase] channel create suppressed request_id=%s err=%v", saved.ID, err)
		return saved, nil
	}
	text := fmt.Sprintf("Nueva solicitud: %s\nMunicipio: %s\nBarrio: %s\nDirección: %s\nCategorías: %s",
		saved.Description, saved.Location.Municipality, saved.Location.Neighborhood, saved.Location.Address,
		strings.Join(in.Categories, ", "))
	_ = notifyChannel(ctx, u.chat, saved.ChannelID, client.ID, text, NotifyBestEffort)

	return saved, nil
}

func (u *RequestUseCase) Accept(ctx context.Context, handymanID, requestID string) (entities.Request, error) {
	return u.transitionByHandyman(ctx, handymanID, requestID, entities.RequestStatusAccepted, "La solicitud ha sido aceptada.")
}

func (u *RequestUseCase) Reject(ctx context.Context, handymanID, requestID string) (entities.Request, error) {
	return u.transitionByHandyman(ctx, handymanID, requestID, entities.RequestStatusRejected, "La solicitud ha sido rechazada.")
}

func (u *RequestUseCase) transitionByHandyman(ctx context.Context, handymanID, requestID string, to entities.RequestStatus, text string) (entities.Request, error) {
	r, err := u.loadRequest(ctx, requestID)
	if err != nil {
		return entities.Request{}, err
	}
	if r.HandymanID != strings.TrimSpace(handymanID) {
		return entities.Request{}, ErrNotRequestOwner
	}

	updated, err := u.repo.UpdateStatus(ctx, r, []entities.RequestStatus{entities.RequestStatusPending}, to)
	if err != nil {
		return entities.Request{}, err
	}
	if updated.ID == "" {
		return entities.Request{}, pkg.NewConflict(
			fmt.Sprintf("This request cannot be %s from its current state", to))
	}
	log.Printf("[request][usecase] transition request_id=%s to=%s actor=%s", updated.ID, to, handymanID)

	if err := mirrorChannelMetadata(ctx, u.chat, updated.ChannelID,
		interfaces.ChannelMetadata{"requestStatus": string(to)}, NotifyPropagate); err != nil {
		return entities.Request{}, err
	}
	if err := notifyChannel(ctx, u.chat, updated.ChannelID, handymanID, text, NotifyPropagate); err != nil {
		return entities.Request{}, err
	}
	return updated, nil
}

func (u *RequestUseCase) Cancel(ctx context.Context, clientID, requestID string) (entities.Request, error) {
	r, err := u.loadRequest(ctx, requestID)
	if err != nil {
		return entities.Request{}, err
	}
	if r.ClientID != strings.TrimSpace(clientID) {
		return entities.Request{}, ErrNotRequestOwner
	}

	updated, err := u.repo.UpdateStatus(ctx, r,
		[]entities.RequestStatus{entities.RequestStatusPending, entities.RequestStatusAccepted},
		entities.RequestStatusCancelled)
	if err != nil {
		return entities.Request{}, err
	}
	if updated.ID == "" {
		return entities.Request{}, pkg.NewConflict("Only pending or accepted requests can be cancelled")
	}
	log.Printf("[request][usecase] cancelled request_id=%s client_id=%s", updated.ID, clientID)

	if err := mirrorChannelMetadata(ctx, u.chat, updated.ChannelID,
		interfaces.ChannelMetadata{"requestStatus": string(entities.RequestStatusCancelled)}, NotifyPropagate); err != nil {
		return entities.Request{}, err
	}
	if err := notifyChannel(ctx, u.chat, updated.ChannelID, clientID, "La solicitud ha sido cancelada por el cliente.", NotifyPropagate); err != nil {
		return entities.Request{}, err
	}
	return updated, nil
}

// Complete records one party's confirmation. The status itself only moves
// when the observer sees both flags set; out-of-order confirmations are
// fine.
func (u *RequestUseCase) Complete(ctx context.Context, actorID, requestID string, role entities.Role) (entities.Request, error) {
	r, err := u.loadRequest(ctx, requestID)
	if err != nil {
		return entities.Request{}, err
	}
	owner := r.ClientID
	if role == entities.RoleHandyman {
		owner = r.HandymanID
	}
	if owner != strings.TrimSpace(actorID) {
		return entities.Request{}, ErrNotRequestOwner
	}

	updated, err := u.repo.SetCompletionFlag(ctx, r.ID, role)
	if err != nil {
		return entities.Request{}, err
	}
	if updated.ID == "" {
		return entities.Request{}, pkg.NewConflict("Only payed requests can be completed")
	}
	log.Printf("[request][usecase] completion flag set request_id=%s role=%s handyman=%t client=%t",
		updated.ID, role, updated.HandymanCompleted, updated.ClientCompleted)

	u.completions.Signal(updated.ID)
	return updated, nil
}

// PromoteCompleted is the observer target. The conditional write makes
// duplicate signals no-ops.
func (u *RequestUseCase) PromoteCompleted(ctx context.Context, requestID string) error {
	r, err := u.loadRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if !r.HandymanCompleted || !r.ClientCompleted {
		return nil
	}

	promoted, err := u.repo.PromoteCompleted(ctx, r)
	if err != nil {
		return err
	}
	if promoted.ID == "" {
		// Lost the race against another signal for the same change.
		return nil
	}
	log.Printf("[request][usecase] promoted to completed request_id=%s", promoted.ID)

	_ = mirrorChannelMetadata(ctx, u.chat, promoted.ChannelID,
		interfaces.ChannelMetadata{"requestStatus": string(entities.RequestStatusCompleted)}, NotifyBestEffort)
	_ = notifyChannel(ctx, u.chat, promoted.ChannelID, u.adminID,
		"Ambas partes confirmaron la finalización del servicio. La solicitud ha sido completada.", NotifyBestEffort)
	return nil
}

// SweepExpired moves elapsed pending requests to expired. Each transition is
// independently conditioned on status == pending, so the sweep can run
// concurrently with foreground actions and be interrupted mid-batch.
func (u *RequestUseCase) SweepExpired(ctx context.Context) (int, error) {
	stale, err := u.repo.ListExpiredPending(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, r := range stale {
		updated, err := u.repo.UpdateStatus(ctx, r,
			[]entities.RequestStatus{entities.RequestStatusPending}, entities.RequestStatusExpired)
		if err != nil {
			log.Printf("[request][sweep] expire failed request_id=%s err=%v", r.ID, err)
			continue
		}
		if updated.ID == "" {
			// A foreground action won the race; nothing to do.
			continue
		}
		expired++
		_ = mirrorChannelMetadata(ctx, u.chat, updated.ChannelID,
			interfaces.ChannelMetadata{"requestStatus": string(entities.RequestStatusExpired)}, NotifyBestEffort)
		_ = notifyChannel(ctx, u.chat, updated.ChannelID, u.adminID, "La solicitud ha expirado sin respuesta.", NotifyBestEffort)
	}
	if expired > 0 {
		log.Printf("[request][sweep] expired count=%d", expired)
	}
	return expired, nil
}

func (u *RequestUseCase) GetByID(ctx context.Context, id string) (entities.Request, error) {
	return u.loadRequest(ctx, id)
}

func (u *RequestUseCase) ListByClient(ctx context.Context, clientID string) ([]entities.Request, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidActorID
	}
	return u.repo.ListByClient(ctx, clientID)
}

func (u *RequestUseCase) ListByHandyman(ctx context.Context, handymanID string) ([]entities.Request, error) {
	handymanID = strings.TrimSpace(handymanID)
	if handymanID == "" {
		return nil, ErrInvalidActorID
	}
	return u.repo.ListByHandyman(ctx, handymanID)
}

func (u *RequestUseCase) FindActiveByPair(ctx context.Context, clientID, handymanID string) (entities.Request, error) {
	r, err := u.repo.FindActiveByPair(ctx, strings.TrimSpace(clientID), strings.TrimSpace(handymanID))
	if err != nil {
		return entities.Request{}, err
	}
	if r.ID == "" {
		return entities.Request{}, ErrRequestNotFound
	}
	return r, nil
}

func (u *RequestUseCase) loadRequest(ctx context.Context, requestID string) (entities.Request, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.Request{}, ErrInvalidRequestID
	}
	r, err := u.repo.GetByID(ctx, requestID)
	if err != nil {
		return entities.Request{}, err
	}
	if r.ID == "" {
		return entities.Request{}, ErrRequestNotFound
	}
	return r, nil
}
