package activity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/white/fluxx-sales/internal/models"
	"go.uber.org/zap"
)

// SubmitFailedMessage is shown to the agent when a confirmed submission fails.
const SubmitFailedMessage = "An error occurred while submitting. Please try again."

var (
	ErrIncomplete       = errors.New("status, duration and remarks are required")
	ErrRemarksReadOnly  = errors.New("remarks are derived from the current location")
	ErrInvalidDuration  = errors.New("duration must be a positive number of minutes")
	ErrNotFieldVisit    = errors.New("only available during a field visit")
	ErrNotReviewing     = errors.New("submission has not been reviewed")
	ErrFormClosed       = errors.New("form is closed")
	ErrSubmitFailed     = errors.New("submit failed")
	ErrUploaderMissing  = errors.New("no media uploader configured")
	ErrSubmitterMissing = errors.New("no submitter configured")
)

// Submitter delivers a composed payload to the persistence endpoint.
type Submitter interface {
	Submit(ctx context.Context, payload models.ActivityPayload) error
}

// UserDetails identifies who is logging the activity.
type UserDetails struct {
	ReferenceID string
	Manager     string
	TSM         string
}

// Dependencies are the devices and services a Form talks to. Any of them may
// be nil; the form degrades the way a browser without that capability would.
type Dependencies struct {
	Camera    Camera
	Locator   Locator
	Geocoder  Geocoder
	Uploader  Uploader
	Submitter Submitter
	Now       func() time.Time
	Logger    *zap.Logger
}

// Form is one agent's activity entry. Every status change releases the
// previous mode's devices and clears captured data before the new mode's
// side effects run. A Form is driven by a single session and is not safe for
// concurrent use.
type Form struct {
	user UserDetails
	deps Dependencies
	log  *zap.Logger

	status   Status
	mode     mode
	remarks  string
	duration *int
	start    time.Time
	end      time.Time

	location *Coordinates
	address  string
	stream   Stream
	image    []byte

	reviewing bool
	closed    bool
}

// NewForm returns an empty form with start and end set to now.
func NewForm(user UserDetails, deps Dependencies) *Form {
	if deps.Now == nil {
		deps.Now = time.Now
	}
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}
	f := &Form{
		user: user,
		deps: deps,
		log:  log,
		mode: defaultMode{},
	}
	f.start = f.now()
	f.end = f.start
	return f
}

func (f *Form) now() time.Time {
	return f.deps.Now().In(BusinessLocation)
}

func (f *Form) Status() Status { return f.status }
func (f *Form) Mode() ModeKind { return f.mode.kind() }
func (f *Form) Remarks() string { return f.remarks }
func (f *Form) Address() string { return f.address }
func (f *Form) Start() time.Time { return f.start }
func (f *Form) End() time.Time { return f.end }
func (f *Form) Image() []byte { return f.image }
func (f *Form) CameraActive() bool { return f.stream != nil }
func (f *Form) Reviewing() bool { return f.reviewing }
func (f *Form) Closed() bool { return f.closed }
func (f *Form) Location() (Coordinates, bool) {
	if f.location == nil {
		return Coordinates{}, false
	}
	return *f.location, true
}

// Duration returns the selected duration in minutes.
func (f *Form) Duration() (int, bool) {
	if f.duration == nil {
		return 0, false
	}
	return *f.duration, true
}

// SetStatus switches the form to s. The previous mode is always torn down
// first: the camera is released and image, location and remarks are cleared.
// Setting the current status again does nothing.
func (f *Form) SetStatus(ctx context.Context, s Status) error {
	if f.closed {
		return ErrFormClosed
	}
	if s != "" && !s.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	if s == f.status {
		return nil
	}

	f.teardown()
	f.status = s
	f.mode = modeFor(s)
	f.mode.enter(ctx, f)
	return nil
}

// teardown releases devices and clears everything a mode may have derived.
func (f *Form) teardown() {
	f.releaseCamera()
	f.image = nil
	f.location = nil
	f.address = ""
	f.remarks = ""
}

func (f *Form) releaseCamera() {
	if f.stream == nil {
		return
	}
	if err := f.stream.Close(); err != nil {
		f.log.Warn("Failed to stop camera", zap.Error(err))
	}
	f.stream = nil
}

// SetRemarks sets hand-typed remarks. Field visits reject this.
func (f *Form) SetRemarks(remarks string) error {
	if f.closed {
		return ErrFormClosed
	}
	if f.mode.remarksReadOnly() {
		return ErrRemarksReadOnly
	}
	f.remarks = remarks
	return nil
}

// MoveLocation replaces the position during a field visit (e.g. the agent
// dragged the map pin) and re-derives the remarks from it.
func (f *Form) MoveLocation(ctx context.Context, at Coordinates) error {
	if f.closed {
		return ErrFormClosed
	}
	if f.mode.kind() != ModeFieldVisit {
		return ErrNotFieldVisit
	}
	f.applyLocation(ctx, at)
	return nil
}

// SetDuration selects how many minutes the activity takes. Start is reset to
// the current time on every call and end follows from it.
func (f *Form) SetDuration(minutes int) error {
	if f.closed {
		return ErrFormClosed
	}
	if minutes <= 0 {
		return ErrInvalidDuration
	}
	f.duration = &minutes
	f.start = f.now()
	f.end = f.start.Add(time.Duration(minutes) * time.Minute)
	return nil
}

// ClearDuration unselects the duration; start and end collapse to now.
func (f *Form) ClearDuration() {
	f.duration = nil
	f.start = f.now()
	f.end = f.start
}

// CaptureImage grabs a frame from the open camera.
func (f *Form) CaptureImage(ctx context.Context) error {
	if f.closed {
		return ErrFormClosed
	}
	if f.mode.kind() != ModeFieldVisit {
		return ErrNotFieldVisit
	}
	if f.stream == nil {
		return ErrCameraUnavailable
	}
	img, err := f.stream.Capture(ctx)
	if err != nil {
		return fmt.Errorf("failed to capture image: %w", err)
	}
	f.image = img
	return nil
}

// CanSubmit reports whether the submit action is enabled.
func (f *Form) CanSubmit() bool {
	return !f.closed &&
		f.status != "" &&
		f.duration != nil &&
		strings.TrimSpace(f.remarks) != ""
}

// Affordances describes what the form currently offers the agent.
func (f *Form) Affordances() Affordances {
	a := f.mode.affordances(f)
	a.CanSubmit = f.CanSubmit()
	return a
}

// Review opens the confirmation step and returns the record that would be
// sent. It refuses while the form is incomplete.
func (f *Form) Review() (models.ActivityPayload, error) {
	if f.closed {
		return models.ActivityPayload{}, ErrFormClosed
	}
	if !f.CanSubmit() {
		return models.ActivityPayload{}, ErrIncomplete
	}
	f.reviewing = true
	return f.payload(), nil
}

// CancelReview leaves the confirmation step without submitting.
func (f *Form) CancelReview() {
	f.reviewing = false
}

// Confirm submits the reviewed record. A captured image is uploaded first and
// its URL attached. On failure the form stays open on the confirmation step
// and the error wraps ErrSubmitFailed; nothing is retried. On success the
// form closes and releases its devices.
func (f *Form) Confirm(ctx context.Context) error {
	if f.closed {
		return ErrFormClosed
	}
	if !f.reviewing {
		return ErrNotReviewing
	}
	if !f.CanSubmit() {
		return ErrIncomplete
	}
	if f.deps.Submitter == nil {
		return fmt.Errorf("%w: %w", ErrSubmitFailed, ErrSubmitterMissing)
	}

	payload := f.payload()

	if len(f.image) > 0 {
		if f.deps.Uploader == nil {
			return fmt.Errorf("%w: %w", ErrSubmitFailed, ErrUploaderMissing)
		}
		url, err := f.deps.Uploader.Upload(ctx, "selfie.jpg", f.image)
		if err != nil {
			f.log.Error("Error uploading image", zap.Error(err))
			return fmt.Errorf("%w: %w", ErrSubmitFailed, err)
		}
		payload.SelfieURL = url
	}

	if err := f.deps.Submitter.Submit(ctx, payload); err != nil {
		f.log.Error("Error submitting activity", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	f.reviewing = false
	f.Close()
	return nil
}

// Close releases the camera and ends the form. It is safe to call twice.
func (f *Form) Close() {
	f.releaseCamera()
	f.closed = true
}

func (f *Form) payload() models.ActivityPayload {
	return models.ActivityPayload{
		ReferenceID:     f.user.ReferenceID,
		Manager:         f.user.Manager,
		TSM:             f.user.TSM,
		ActivityStatus:  string(f.status),
		ActivityRemarks: f.remarks,
		StartDate:       FormatTimestamp(f.start),
		EndDate:         FormatTimestamp(f.end),
	}
}
