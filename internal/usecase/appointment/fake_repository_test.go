package appointment

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/medconnect/telemed-api/internal/domain/appointment"
	"github.com/medconnect/telemed-api/internal/models"
)

// fakeRepo is an in-memory Repository. All methods hand out copies, and the
// state-changing ones run under one mutex, mirroring the single-record
// serialization the database gives the real repository.
type fakeRepo struct {
	mu sync.Mutex

	users        map[string]*models.User
	doctors      map[string]*models.DoctorProfile
	appointments map[string]*models.Appointment
	order        []string
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:        make(map[string]*models.User),
		doctors:      make(map[string]*models.DoctorProfile),
		appointments: make(map[string]*models.Appointment),
	}
}

func (r *fakeRepo) addUser(u models.User) {
	r.users[u.ID] = &u
}

func (r *fakeRepo) addDoctor(p models.DoctorProfile) {
	r.doctors[p.ID] = &p
}

func (r *fakeRepo) GetDoctorProfile(ctx context.Context, id string) (*models.DoctorProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.doctors[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	if u, ok := r.users[p.UserID]; ok {
		cp.User = *u
	}
	return &cp, nil
}

func (r *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ap.ID == "" {
		ap.ID = uuid.NewString()
	}
	ap.CreatedAt = time.Now().UTC()

	cp := *ap
	r.appointments[ap.ID] = &cp
	r.order = append(r.order, ap.ID)
	return nil
}

func (r *fakeRepo) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *ap
	return &cp, nil
}

func (r *fakeRepo) ListAppointmentsForUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, id := range r.order {
		ap := r.appointments[id]
		if ap.PatientID != userID && ap.DoctorUserID != userID {
			continue
		}

		cp := *ap
		if p, ok := r.doctors[ap.DoctorID]; ok {
			cp.DoctorProfile = *p
			if u, ok := r.users[p.UserID]; ok {
				cp.DoctorProfile.User = *u
			}
		}
		if u, ok := r.users[ap.PatientID]; ok {
			cp.Patient = *u
		}
		out = append(out, cp)
	}
	return out, nil
}

func (r *fakeRepo) ClaimVideoRoom(ctx context.Context, appointmentID, roomID string, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[appointmentID]
	if !ok {
		return false, domain.ErrNotFound
	}
	if ap.VideoRoomID != nil {
		return false, nil
	}

	ap.VideoRoomID = &roomID
	ap.Status = string(domain.StatusActive)
	ap.StartedAt = &now
	return true, nil
}

func (r *fakeRepo) MarkCompleted(ctx context.Context, appointmentID string, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[appointmentID]
	if !ok {
		return false, domain.ErrNotFound
	}
	if ap.Status != string(domain.StatusActive) {
		return false, nil
	}

	ap.Status = string(domain.StatusCompleted)
	ap.CompletedAt = &now
	return true, nil
}
