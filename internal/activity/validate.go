package activity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/white/fluxx-sales/internal/models"
)

// ErrInvalidActivity is wrapped by every payload validation failure.
var ErrInvalidActivity = errors.New("invalid activity")

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidActivity, fmt.Sprintf(format, args...))
}

// Validate checks a posted payload against the status contract and returns
// the record to store. ID and creation time are left for the caller.
func Validate(p models.ActivityPayload) (models.ActivityRecord, error) {
	if strings.TrimSpace(p.ReferenceID) == "" {
		return models.ActivityRecord{}, invalid("referenceid is required")
	}

	status, err := ParseStatus(p.ActivityStatus)
	if err != nil {
		return models.ActivityRecord{}, invalid("activitystatus %q is not a known status", p.ActivityStatus)
	}

	if strings.TrimSpace(p.ActivityRemarks) == "" {
		return models.ActivityRecord{}, invalid("activityremarks is required")
	}

	start, err := parseTimestamp(p.StartDate)
	if err != nil {
		return models.ActivityRecord{}, invalid("startdate: %v", err)
	}
	end, err := parseTimestamp(p.EndDate)
	if err != nil {
		return models.ActivityRecord{}, invalid("enddate: %v", err)
	}
	if end.Before(start) {
		return models.ActivityRecord{}, invalid("enddate is before startdate")
	}

	if err := modeFor(status).validate(p); err != nil {
		return models.ActivityRecord{}, err
	}

	return models.ActivityRecord{
		ReferenceID:     strings.TrimSpace(p.ReferenceID),
		Manager:         p.Manager,
		TSM:             p.TSM,
		ActivityStatus:  string(status),
		ActivityRemarks: p.ActivityRemarks,
		StartDate:       start.UTC(),
		EndDate:         end.UTC(),
		SelfieURL:       p.SelfieURL,
	}, nil
}
