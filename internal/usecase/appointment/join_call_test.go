package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medconnect/telemed-api/internal/httperr"
)

func TestJoinBeforeStart(t *testing.T) {
	repo := seededRepo()
	apID := bookPending(t, repo)
	uc := NewJoinCall(repo)

	_, err := uc.Execute(context.Background(), apID, "doc-user-1")
	assert.True(t, httperr.IsBusiness(err, "call_not_started"))
}

func TestJoinReturnsStartedRoom(t *testing.T) {
	repo := seededRepo()
	apID := bookPending(t, repo)

	roomID, err := NewStartCall(repo, nil).Execute(context.Background(), apID, "patient-1")
	require.NoError(t, err)

	ap, err := NewJoinCall(repo).Execute(context.Background(), apID, "doc-user-1")
	require.NoError(t, err)

	require.NotNil(t, ap.VideoRoomID)
	assert.Equal(t, roomID, *ap.VideoRoomID)

	// Joining never moves state.
	assert.Equal(t, "active", ap.Status)

	again, err := NewJoinCall(repo).Execute(context.Background(), apID, "doc-user-1")
	require.NoError(t, err)
	assert.Equal(t, roomID, *again.VideoRoomID)
}

func TestJoinThirdParty(t *testing.T) {
	repo := seededRepo()
	apID := bookPending(t, repo)

	_, err := NewStartCall(repo, nil).Execute(context.Background(), apID, "patient-1")
	require.NoError(t, err)

	_, err = NewJoinCall(repo).Execute(context.Background(), apID, "intruder")
	assert.True(t, httperr.IsBusiness(err, "not_a_party"))
}

func TestJoinUnknownAppointment(t *testing.T) {
	repo := seededRepo()

	_, err := NewJoinCall(repo).Execute(context.Background(), "no-such-appointment", "patient-1")
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
