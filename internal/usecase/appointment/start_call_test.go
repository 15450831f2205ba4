package appointment

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medconnect/telemed-api/internal/httperr"
)

func bookPending(t *testing.T, repo *fakeRepo) string {
	t.Helper()

	result, err := NewBookAppointment(repo, nil, nil).Execute(context.Background(), BookAppointmentInput{
		PatientID: "patient-1",
		DoctorID:  "doc-1",
		Type:      "instant",
	})
	require.NoError(t, err)
	return result.Appointment.ID
}

func TestStartCallAssignsRoomOnce(t *testing.T) {
	repo := seededRepo()
	apID := bookPending(t, repo)
	uc := NewStartCall(repo, nil)

	roomID, err := uc.Execute(context.Background(), apID, "patient-1")
	require.NoError(t, err)
	require.NotEmpty(t, roomID)

	ap, err := repo.GetAppointment(context.Background(), apID)
	require.NoError(t, err)
	assert.Equal(t, "active", ap.Status)
	require.NotNil(t, ap.VideoRoomID)
	assert.Equal(t, roomID, *ap.VideoRoomID)
	assert.NotNil(t, ap.StartedAt)

	// Starting again, from either party, returns the same room id.
	again, err := uc.Execute(context.Background(), apID, "patient-1")
	require.NoError(t, err)
	assert.Equal(t, roomID, again)

	fromDoctor, err := uc.Execute(context.Background(), apID, "doc-user-1")
	require.NoError(t, err)
	assert.Equal(t, roomID, fromDoctor)
}

func TestStartCallUnknownAppointment(t *testing.T) {
	repo := seededRepo()
	uc := NewStartCall(repo, nil)

	_, err := uc.Execute(context.Background(), "no-such-appointment", "patient-1")
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestStartCallThirdParty(t *testing.T) {
	repo := seededRepo()
	apID := bookPending(t, repo)
	uc := NewStartCall(repo, nil)

	_, err := uc.Execute(context.Background(), apID, "intruder")
	assert.True(t, httperr.IsBusiness(err, "not_a_party"))

	// The failed call must not have touched the record.
	ap, err2 := repo.GetAppointment(context.Background(), apID)
	require.NoError(t, err2)
	assert.Equal(t, "pending", ap.Status)
	assert.Nil(t, ap.VideoRoomID)
}

func TestConcurrentStartsConvergeOnOneRoom(t *testing.T) {
	repo := seededRepo()
	apID := bookPending(t, repo)
	uc := NewStartCall(repo, nil)

	callers := []string{"patient-1", "doc-user-1"}
	const rounds = 8

	var wg sync.WaitGroup
	rooms := make(chan string, rounds*len(callers))

	for i := 0; i < rounds; i++ {
		for _, caller := range callers {
			wg.Add(1)
			go func(caller string) {
				defer wg.Done()
				roomID, err := uc.Execute(context.Background(), apID, caller)
				if assert.NoError(t, err) {
					rooms <- roomID
				}
			}(caller)
		}
	}

	wg.Wait()
	close(rooms)

	var first string
	count := 0
	for roomID := range rooms {
		if first == "" {
			first = roomID
		}
		assert.Equal(t, first, roomID)
		count++
	}
	assert.Equal(t, rounds*len(callers), count)

	ap, err := repo.GetAppointment(context.Background(), apID)
	require.NoError(t, err)
	require.NotNil(t, ap.VideoRoomID)
	assert.Equal(t, first, *ap.VideoRoomID)
	assert.Equal(t, "active", ap.Status)
}

func TestStartCallCompletedAppointment(t *testing.T) {
	repo := seededRepo()
	apID := bookPending(t, repo)
	uc := NewStartCall(repo, nil)

	roomID, err := uc.Execute(context.Background(), apID, "patient-1")
	require.NoError(t, err)

	_, err = NewCompleteAppointment(repo, nil).Execute(context.Background(), apID, "patient-1")
	require.NoError(t, err)

	// The call is over; even the old room id must not come back.
	_, err = uc.Execute(context.Background(), apID, "doc-user-1")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	ap, err := repo.GetAppointment(context.Background(), apID)
	require.NoError(t, err)
	assert.Equal(t, "completed", ap.Status)
	require.NotNil(t, ap.VideoRoomID)
	assert.Equal(t, roomID, *ap.VideoRoomID)
}
