package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/white/fluxx-sales/internal/models"
)

func validPayload() models.ActivityPayload {
	return models.ActivityPayload{
		ReferenceID:     "REF-001",
		Manager:         "MGR-1",
		TSM:             "TSM-1",
		ActivityStatus:  "Client Visit",
		ActivityRemarks: "Rizal Park, Ermita, Manila",
		StartDate:       "2025-03-10T01:00:00.000Z",
		EndDate:         "2025-03-10T01:30:00.000Z",
		SelfieURL:       "https://cdn.example.com/selfie.jpg",
	}
}

func TestValidate_Accepts(t *testing.T) {
	rec, err := Validate(validPayload())
	require.NoError(t, err)

	assert.Equal(t, "REF-001", rec.ReferenceID)
	assert.Equal(t, "Client Visit", rec.ActivityStatus)
	assert.Equal(t, time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC), rec.StartDate)
	assert.Equal(t, 30*time.Minute, rec.EndDate.Sub(rec.StartDate))
	assert.Equal(t, "https://cdn.example.com/selfie.jpg", rec.SelfieURL)
	assert.Empty(t, rec.ID)
}

func TestValidate_OffsetTimestampsNormalizeToUTC(t *testing.T) {
	p := validPayload()
	p.StartDate = "2025-03-10T09:00:00+08:00"
	p.EndDate = "2025-03-10 02:00:00"

	rec, err := Validate(p)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC), rec.StartDate)
	assert.Equal(t, time.UTC, rec.StartDate.Location())
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *models.ActivityPayload)
	}{
		{"missing reference", func(p *models.ActivityPayload) { p.ReferenceID = " " }},
		{"unknown status", func(p *models.ActivityPayload) { p.ActivityStatus = "Siesta" }},
		{"status case mismatch", func(p *models.ActivityPayload) { p.ActivityStatus = "client visit" }},
		{"blank remarks", func(p *models.ActivityPayload) { p.ActivityRemarks = "\t" }},
		{"bad start", func(p *models.ActivityPayload) { p.StartDate = "yesterday" }},
		{"missing end", func(p *models.ActivityPayload) { p.EndDate = "" }},
		{"end before start", func(p *models.ActivityPayload) { p.EndDate = "2025-03-10T00:59:00Z" }},
		{"selfie outside field visit", func(p *models.ActivityPayload) { p.ActivityStatus = "Lunch Break" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayload()
			tt.modify(&p)
			_, err := Validate(p)
			assert.ErrorIs(t, err, ErrInvalidActivity)
		})
	}
}

func TestValidate_EqualStartAndEnd(t *testing.T) {
	p := validPayload()
	p.EndDate = p.StartDate
	_, err := Validate(p)
	assert.NoError(t, err)
}
