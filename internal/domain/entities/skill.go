package entities

// Skill maps a human-readable category name to its stable id.
//
// Storage model (DynamoDB):
//   - PK: skill_name (names are unique and are what clients send)
type Skill struct {
	ID          string `json:"id"`
	SkillName   string `json:"skill_name"`
	Description string `json:"description"`
}
