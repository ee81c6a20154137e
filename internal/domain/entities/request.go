package entities

import "time"

// RequestStatus is the single source of truth for a service request's
// lifecycle position.
//
// Main line: pending -> accepted -> quoted -> invoiced -> payed -> completed.
// Side branches (rejected, cancelled, expired) are only reachable from early
// states. quoted -> accepted is the reopen edge taken when a quotation is
// rejected.

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusQuoted    RequestStatus = "quoted"
	RequestStatusInvoiced  RequestStatus = "invoiced"
	RequestStatusPayed     RequestStatus = "payed"
	RequestStatusCompleted RequestStatus = "completed"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCancelled RequestStatus = "cancelled"
	RequestStatusExpired   RequestStatus = "expired"
)

var requestEdges = map[RequestStatus][]RequestStatus{
	RequestStatusPending:  {RequestStatusAccepted, RequestStatusRejected, RequestStatusCancelled, RequestStatusExpired},
	RequestStatusAccepted: {RequestStatusQuoted, RequestStatusCancelled},
	RequestStatusQuoted:   {RequestStatusInvoiced, RequestStatusAccepted},
	RequestStatusInvoiced: {RequestStatusPayed},
	RequestStatusPayed:    {RequestStatusCompleted},
}

func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range requestEdges[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the status is immutable.
func (s RequestStatus) Terminal() bool {
	switch s {
	case RequestStatusCompleted, RequestStatusRejected, RequestStatusCancelled, RequestStatusExpired:
		return true
	}
	return false
}

// Active reports whether the request counts toward the one-active-request
// invariant between a client/handyman pair.
func (s RequestStatus) Active() bool {
	return s != "" && !s.Terminal()
}

// Role identifies which side of the engagement an actor is on.

type Role string

const (
	RoleClient   Role = "client"
	RoleHandyman Role = "handyman"
)

type Location struct {
	Municipality string `json:"municipality"`
	Neighborhood string `json:"neighborhood"`
	Address      string `json:"address"`
}

// Request is a client's ask for a handyman's service, the root workflow
// entity.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//   - GSI2 (handyman_id-index): handyman_id
//   - GSI3 (pair_id-index): pair_id (client_id#handyman_id)
//   - GSI4 (status-index): status, sort key expires_at
//
// A companion lock item (PK pair_id in the request_locks table) is written in
// the same TransactWriteItems as the insert, so only one active request can
// exist per pair even under concurrent creates.
type Request struct {
	ID                string        `json:"id"`
	ClientID          string        `json:"client_id"`
	HandymanID        string        `json:"handyman_id"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Location          Location      `json:"location"`
	Categories        []string      `json:"categories"`
	Status            RequestStatus `json:"status"`
	ChannelID         string        `json:"channel_id"`
	ExpiresAt         time.Time     `json:"expires_at"`
	HandymanCompleted bool          `json:"handyman_completed"`
	ClientCompleted   bool          `json:"client_completed"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

func (r Request) PairKey() string {
	return r.ClientID + "#" + r.HandymanID
}

// ChannelIDFor derives the messaging channel id from the request id. The id
// is deterministic so every component can address the channel without a
// lookup.
func ChannelIDFor(requestID string) string {
	return "request-" + requestID
}
