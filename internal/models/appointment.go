package models

import "time"

type Appointment struct {
	BaseModel

	PatientID string `gorm:"size:36;index;not null" json:"patient_id"`
	Patient   User   `gorm:"foreignKey:PatientID" json:"-"`

	// DoctorID references the DoctorProfile. DoctorUserID is the profile
	// owner's user id, denormalized so party checks and doctor-side listing
	// never need a join.
	DoctorID      string        `gorm:"size:36;index;not null" json:"doctor_id"`
	DoctorProfile DoctorProfile `gorm:"foreignKey:DoctorID" json:"-"`
	DoctorUserID  string        `gorm:"size:36;index;not null" json:"-"`

	Type          string     `gorm:"size:20;default:'scheduled'" json:"type"`
	ScheduledTime *time.Time `json:"scheduled_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	// Set exactly once, when the first party starts the call.
	VideoRoomID *string `gorm:"size:36" json:"video_room_id"`

	StartedAt   *time.Time `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
}
