package models

type DoctorProfile struct {
	BaseModel

	UserID string `gorm:"size:36;uniqueIndex;not null" json:"user_id"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`

	Specialization  string  `gorm:"size:100;not null" json:"specialization"`
	ExperienceYears int     `json:"experience_years"`
	LicenseNumber   string  `gorm:"size:50" json:"license_number"`
	Bio             string  `gorm:"type:text" json:"bio"`
	ConsultationFee float64 `json:"consultation_fee"`
	Available       bool    `gorm:"default:true" json:"available"`
}
