package request

import "strings"

type LocationPayload struct {
	Municipality string `json:"municipality" binding:"required"`
	Neighborhood string `json:"neighborhood"`
	Address      string `json:"address" binding:"required"`
}

// ServiceRequestPayload is the client-facing payload for opening a request.
// The handyman is addressed by email so clients can engage one without
// knowing internal ids.
type ServiceRequestPayload struct {
	HandymanEmail string          `json:"handyman_email" binding:"required,email"`
	Title         string          `json:"title" binding:"required"`
	Description   string          `json:"description" binding:"required"`
	Location      LocationPayload `json:"location" binding:"required"`
	Categories    []string        `json:"categories" binding:"required,min=1"`
}

// NormalizedCategories trims and drops empty entries so validation sees what
// will actually be persisted.
func (p ServiceRequestPayload) NormalizedCategories() []string {
	out := make([]string, 0, len(p.Categories))
	for _, c := range p.Categories {
		if v := strings.TrimSpace(c); v != "" {
			out = append(out, v)
		}
	}
	return out
}
