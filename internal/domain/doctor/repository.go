package doctor

import (
	"context"

	"github.com/medconnect/telemed-api/internal/models"
)

type Repository interface {
	// RegisterProfile creates the profile and promotes its owner to the
	// doctor role in one transaction. Returns false when the user already
	// has a profile; nothing is written in that case.
	RegisterProfile(
		ctx context.Context,
		profile *models.DoctorProfile,
	) (bool, error)
}
