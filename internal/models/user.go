package models

type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

// User identities come from the external identity provider; there are no
// local credentials. Role moves from patient to doctor exactly once, when
// the user registers a doctor profile.
type User struct {
	BaseModel

	Email   string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Picture string `gorm:"size:512" json:"picture"`
	Role    Role   `gorm:"size:20;default:'patient'" json:"role"`
}
