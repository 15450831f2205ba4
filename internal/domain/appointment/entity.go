package appointment

import (
	"github.com/medconnect/telemed-api/internal/httperr"
	"github.com/medconnect/telemed-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// IsParty reports whether userID is one of the two identities on the
// appointment. Every read or mutation of a single appointment goes through
// this check before anything else.
func IsParty(ap *models.Appointment, userID string) bool {
	return ap.PatientID == userID || ap.DoctorUserID == userID
}

// AuthorizeParty is the error-returning form used by the use cases.
func AuthorizeParty(ap *models.Appointment, userID string) error {
	if !IsParty(ap, userID) {
		return httperr.ErrBusiness("not_a_party")
	}
	return nil
}
