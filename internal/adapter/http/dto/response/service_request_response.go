package response

import (
	"time"

	"serviexpress/internal/domain/entities"
)

type LocationResponse struct {
	Municipality string `json:"municipality"`
	Neighborhood string `json:"neighborhood,omitempty"`
	Address      string `json:"address"`
}

type ServiceRequestResponse struct {
	ID                string           `json:"id"`
	ClientID          string           `json:"client_id"`
	HandymanID        string           `json:"handyman_id"`
	Title             string           `json:"title"`
	Description       string           `json:"description"`
	Location          LocationResponse `json:"location"`
	Categories        []string         `json:"categories"`
	Status            string           `json:"status"`
	ChannelID         string           `json:"channel_id"`
	ExpiresAt         time.Time        `json:"expires_at"`
	HandymanCompleted bool             `json:"handyman_completed"`
	ClientCompleted   bool             `json:"client_completed"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

func FromRequest(r entities.Request) ServiceRequestResponse {
	return ServiceRequestResponse{
		ID:          r.ID,
		ClientID:    r.ClientID,
		HandymanID:  r.HandymanID,
		Title:       r.Title,
		Description: r.Description,
		Location: LocationResponse{
			Municipality: r.Location.Municipality,
			Neighborhood: r.Location.Neighborhood,
			Address:      r.Location.Address,
		},
		Categories:        r.Categories,
		Status:            string(r.Status),
		ChannelID:         r.ChannelID,
		ExpiresAt:         r.ExpiresAt,
		HandymanCompleted: r.HandymanCompleted,
		ClientCompleted:   r.ClientCompleted,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func FromRequests(rs []entities.Request) []ServiceRequestResponse {
	out := make([]ServiceRequestResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRequest(r))
	}
	return out
}
