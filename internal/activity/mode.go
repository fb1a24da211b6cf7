package activity

import (
	"context"
	"strings"

	"github.com/white/fluxx-sales/internal/models"
	"go.uber.org/zap"
)

// locationFailedRemarks is written to the remarks when no position fix could
// be obtained.
const locationFailedRemarks = "Unable to fetch location."

// mode is the behavior attached to one ModeKind. Each variant owns its entry
// side effects, its remarks policy and its affordances.
type mode interface {
	kind() ModeKind
	enter(ctx context.Context, f *Form)
	remarksReadOnly() bool
	affordances(f *Form) Affordances
	validate(p models.ActivityPayload) error
}

func modeFor(s Status) mode {
	switch s.Mode() {
	case ModeFieldVisit:
		return fieldVisitMode{}
	case ModeMeeting:
		return meetingMode{}
	case ModeScheduling:
		return schedulingMode{}
	default:
		return defaultMode{}
	}
}

type defaultMode struct{}

func (defaultMode) kind() ModeKind { return ModeDefault }
func (defaultMode) enter(ctx context.Context, f *Form) {}
func (defaultMode) remarksReadOnly() bool { return false }
func (defaultMode) affordances(f *Form) Affordances {
	return Affordances{Mode: ModeDefault}
}
func (defaultMode) validate(p models.ActivityPayload) error { return rejectSelfie(p) }

// rejectSelfie is the rule shared by every mode that never opens the camera.
func rejectSelfie(p models.ActivityPayload) error {
	if p.SelfieURL != "" {
		return invalid("selfieUrl is only accepted for field visits")
	}
	return nil
}

// fieldVisitMode opens the camera and derives the remarks from the agent's
// position. Remarks cannot be typed by hand.
type fieldVisitMode struct{}

func (fieldVisitMode) kind() ModeKind { return ModeFieldVisit }
func (fieldVisitMode) remarksReadOnly() bool { return true }

func (fieldVisitMode) enter(ctx context.Context, f *Form) {
	f.acquireCamera(ctx)
	f.resolveLocation(ctx)
}

func (fieldVisitMode) affordances(f *Form) Affordances {
	return Affordances{Mode: ModeFieldVisit, ShowCamera: true, RemarksReadOnly: true}
}

// validate accepts a selfie. "Unable to fetch location." is still valid
// remarks; the agent may submit without a fix.
func (fieldVisitMode) validate(p models.ActivityPayload) error { return nil }

type meetingMode struct{}

func (meetingMode) kind() ModeKind { return ModeMeeting }
func (meetingMode) enter(ctx context.Context, f *Form) {}
func (meetingMode) remarksReadOnly() bool { return false }
func (meetingMode) affordances(f *Form) Affordances {
	return Affordances{Mode: ModeMeeting, MeetingLinks: MeetingLinks()}
}
func (meetingMode) validate(p models.ActivityPayload) error { return rejectSelfie(p) }

type schedulingMode struct{}

func (schedulingMode) kind() ModeKind { return ModeScheduling }
func (schedulingMode) enter(ctx context.Context, f *Form) {}
func (schedulingMode) remarksReadOnly() bool { return false }
func (schedulingMode) validate(p models.ActivityPayload) error { return rejectSelfie(p) }
func (schedulingMode) affordances(f *Form) Affordances {
	return Affordances{
		Mode: ModeScheduling,
		Calendar: &CalendarEntry{
			Title:   string(f.status),
			Details: f.remarks,
			Start:   f.start,
			End:     f.end,
		},
	}
}

func (f *Form) acquireCamera(ctx context.Context) {
	if f.deps.Camera == nil {
		return
	}
	stream, err := f.deps.Camera.Open(ctx)
	if err != nil {
		f.log.Warn("Failed to access camera", zap.Error(err))
		return
	}
	f.stream = stream
}

// resolveLocation takes one position fix and turns it into remarks: the
// resolved address, or the raw coordinates when the lookup fails.
func (f *Form) resolveLocation(ctx context.Context) {
	if f.deps.Locator == nil {
		f.remarks = locationFailedRemarks
		return
	}
	at, err := f.deps.Locator.Locate(ctx)
	if err != nil {
		f.log.Warn("Location error", zap.Error(err))
		f.remarks = locationFailedRemarks
		return
	}
	f.applyLocation(ctx, at)
}

func (f *Form) applyLocation(ctx context.Context, at Coordinates) {
	f.location = &at
	f.address = ""
	fallback := at.String()

	if f.deps.Geocoder == nil {
		f.remarks = fallback
		return
	}
	address, err := f.deps.Geocoder.Reverse(ctx, at)
	if err != nil {
		f.log.Warn("Reverse geocoding failed", zap.Error(err), zap.String("coordinates", fallback))
		f.remarks = fallback
		return
	}
	if strings.TrimSpace(address) == "" {
		address = fallback
	}
	f.address = address
	f.remarks = address
}
