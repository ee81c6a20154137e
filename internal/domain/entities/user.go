package entities

// User is a read-only projection of the profile service's records. The
// lifecycle engine only needs identity, role, ban state, skills and coverage
// for request validation; profile management itself lives elsewhere.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
type User struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	LastName     string   `json:"last_name"`
	Email        string   `json:"email"`
	Role         Role     `json:"role"`
	Banned       bool     `json:"banned"`
	Skills       []string `json:"skills"`
	CoverageArea []string `json:"coverage_area"`
}

func (u User) HasSkill(skillID string) bool {
	for _, s := range u.Skills {
		if s == skillID {
			return true
		}
	}
	return false
}

func (u User) CoversMunicipality(municipality string) bool {
	for _, m := range u.CoverageArea {
		if m == municipality {
			return true
		}
	}
	return false
}
