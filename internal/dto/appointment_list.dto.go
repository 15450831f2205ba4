package dto

import "time"

// PartyInfo carries the counterpart's display fields for list rendering.
// Specialization is only set when the counterpart is the doctor.
type PartyInfo struct {
	Name           string `json:"name"`
	Picture        string `json:"picture"`
	Specialization string `json:"specialization,omitempty"`
}

type AppointmentListDTO struct {
	ID            string     `json:"id"`
	Type          string     `json:"type"`
	Status        string     `json:"status"`
	ScheduledTime *time.Time `json:"scheduled_time"`
	VideoRoomID   *string    `json:"video_room_id"`
	CreatedAt     time.Time  `json:"created_at"`

	Doctor  *PartyInfo `json:"doctor,omitempty"`
	Patient *PartyInfo `json:"patient,omitempty"`
}
