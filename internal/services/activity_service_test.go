package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/white/fluxx-sales/internal/activity"
	"github.com/white/fluxx-sales/internal/models"
	"github.com/white/fluxx-sales/pkg/uuid"
)

func activityPayload() models.ActivityPayload {
	return models.ActivityPayload{
		ReferenceID:     "REF-001",
		Manager:         "MGR-1",
		TSM:             "TSM-1",
		ActivityStatus:  "Client Meeting",
		ActivityRemarks: "QBR with ACME",
		StartDate:       "2025-03-10T01:00:00.000Z",
		EndDate:         "2025-03-10T02:00:00.000Z",
	}
}

func TestActivityService_Log(t *testing.T) {
	store := &fakeActivityStore{}
	svc := NewActivityService(store)
	fixed := time.Date(2025, 3, 10, 2, 5, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	rec, err := svc.Log(context.Background(), activityPayload())
	require.NoError(t, err)

	assert.NoError(t, uuid.Validate(rec.ID))
	assert.Equal(t, fixed, rec.DateCreated)
	assert.Equal(t, "Client Meeting", rec.ActivityStatus)
	require.Len(t, store.created, 1)
	assert.Equal(t, rec.ID, store.created[0].ID)
}

func TestActivityService_LogRejectsInvalid(t *testing.T) {
	store := &fakeActivityStore{}
	svc := NewActivityService(store)

	p := activityPayload()
	p.ActivityRemarks = ""
	_, err := svc.Log(context.Background(), p)
	assert.ErrorIs(t, err, activity.ErrInvalidActivity)
	assert.Empty(t, store.created)
}

func TestActivityService_LogStoreFailure(t *testing.T) {
	svc := NewActivityService(&fakeActivityStore{err: errStoreDown})
	_, err := svc.Log(context.Background(), activityPayload())
	assert.ErrorIs(t, err, errStoreDown)
}

func TestActivityService_ListLimits(t *testing.T) {
	store := &fakeActivityStore{}
	svc := NewActivityService(store)
	ctx := context.Background()

	_, err := svc.List(ctx, "", 10)
	assert.ErrorIs(t, err, ErrMissingReference)

	_, err = svc.List(ctx, "REF-001", 0)
	require.NoError(t, err)
	assert.Equal(t, 50, store.lastLimit)

	_, err = svc.List(ctx, "REF-001", 10_000)
	require.NoError(t, err)
	assert.Equal(t, 500, store.lastLimit)
}
