package doctor

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/medconnect/telemed-api/internal/domain/doctor"
	"github.com/medconnect/telemed-api/internal/httperr"
	"github.com/medconnect/telemed-api/internal/models"
)

// fakeRepo is an in-memory Repository keyed by user id. The role flip
// happens together with the profile insert, like the transactional real
// repository.
type fakeRepo struct {
	mu sync.Mutex

	roles    map[string]models.Role
	profiles map[string]models.DoctorProfile
}

var _ domain.Repository = (*fakeRepo)(nil)

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		roles:    make(map[string]models.Role),
		profiles: make(map[string]models.DoctorProfile),
	}
}

func (r *fakeRepo) RegisterProfile(ctx context.Context, profile *models.DoctorProfile) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.profiles[profile.UserID]; ok {
		return false, nil
	}

	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	r.profiles[profile.UserID] = *profile
	r.roles[profile.UserID] = models.RoleDoctor
	return true, nil
}

func TestRegisterDoctorPromotesPatient(t *testing.T) {
	repo := newFakeRepo()
	repo.roles["user-1"] = models.RolePatient
	uc := NewRegisterDoctor(repo, nil)

	profile, err := uc.Execute(context.Background(), RegisterDoctorInput{
		UserID:          "user-1",
		Specialization:  "Cardiology",
		ExperienceYears: 10,
		LicenseNumber:   "MD-1234",
		ConsultationFee: 120,
	})
	require.NoError(t, err)
	require.NotEmpty(t, profile.ID)

	assert.Equal(t, "user-1", profile.UserID)
	assert.Equal(t, "Cardiology", profile.Specialization)
	assert.True(t, profile.Available)
	assert.Equal(t, models.RoleDoctor, repo.roles["user-1"])
}

func TestRegisterDoctorSecondAttemptConflicts(t *testing.T) {
	repo := newFakeRepo()
	repo.roles["user-1"] = models.RolePatient
	uc := NewRegisterDoctor(repo, nil)

	first, err := uc.Execute(context.Background(), RegisterDoctorInput{
		UserID:         "user-1",
		Specialization: "Cardiology",
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), RegisterDoctorInput{
		UserID:         "user-1",
		Specialization: "Dermatology",
	})
	assert.True(t, httperr.IsBusiness(err, "already_registered"))

	// The first profile survives untouched and the role stays doctor.
	stored := repo.profiles["user-1"]
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, "Cardiology", stored.Specialization)
	assert.Equal(t, models.RoleDoctor, repo.roles["user-1"])
}
