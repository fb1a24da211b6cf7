package activity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/white/fluxx-sales/internal/models"
)

type fakeStream struct {
	frame  []byte
	closed bool
}

func (s *fakeStream) Capture(ctx context.Context) ([]byte, error) {
	if s.closed {
		return nil, ErrCameraUnavailable
	}
	return s.frame, nil
}

func (s *fakeStream) Close() error {
	s.closed = true
	return nil
}

type fakeCamera struct {
	opened  []*fakeStream
	openErr error
}

func (c *fakeCamera) Open(ctx context.Context) (Stream, error) {
	if c.openErr != nil {
		return nil, c.openErr
	}
	s := &fakeStream{frame: []byte("jpeg")}
	c.opened = append(c.opened, s)
	return s, nil
}

type fakeLocator struct {
	at    Coordinates
	err   error
	calls int
}

func (l *fakeLocator) Locate(ctx context.Context) (Coordinates, error) {
	l.calls++
	return l.at, l.err
}

type fakeGeocoder struct {
	address string
	err     error
}

func (g *fakeGeocoder) Reverse(ctx context.Context, at Coordinates) (string, error) {
	return g.address, g.err
}

type fakeUploader struct {
	url   string
	err   error
	calls int
}

func (u *fakeUploader) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	u.calls++
	return u.url, u.err
}

type fakeSubmitter struct {
	err      error
	payloads []models.ActivityPayload
}

func (s *fakeSubmitter) Submit(ctx context.Context, p models.ActivityPayload) error {
	s.payloads = append(s.payloads, p)
	return s.err
}

type harness struct {
	camera    *fakeCamera
	locator   *fakeLocator
	geocoder  *fakeGeocoder
	uploader  *fakeUploader
	submitter *fakeSubmitter
	now       time.Time
	form      *Form
}

var manila = Coordinates{Lat: 14.5995, Lng: 120.9842}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		camera:    &fakeCamera{},
		locator:   &fakeLocator{at: manila},
		geocoder:  &fakeGeocoder{address: "Rizal Park, Ermita, Manila"},
		uploader:  &fakeUploader{url: "https://cdn.example.com/selfie.jpg"},
		submitter: &fakeSubmitter{},
		now:       time.Date(2025, 3, 10, 1, 0, 0, 0, time.UTC),
	}
	h.form = NewForm(UserDetails{ReferenceID: "REF-001", Manager: "MGR-1", TSM: "TSM-1"}, Dependencies{
		Camera:    h.camera,
		Locator:   h.locator,
		Geocoder:  h.geocoder,
		Uploader:  h.uploader,
		Submitter: h.submitter,
		Now:       func() time.Time { return h.now },
	})
	return h
}

func TestForm_DefaultModeHasNoSideEffects(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	require.NoError(t, h.form.SetStatus(ctx, StatusLunchBreak))

	assert.Equal(t, ModeDefault, h.form.Mode())
	assert.Empty(t, h.camera.opened)
	assert.Zero(t, h.locator.calls)
	assert.False(t, h.form.CameraActive())

	require.NoError(t, h.form.SetRemarks("eating"))
	assert.Equal(t, "eating", h.form.Remarks())
	assert.False(t, h.form.Affordances().RemarksReadOnly)
}

func TestForm_FieldVisitResolvesAddress(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.form.SetStatus(context.Background(), StatusClientVisit))

	assert.Equal(t, ModeFieldVisit, h.form.Mode())
	assert.True(t, h.form.CameraActive())
	assert.Equal(t, 1, h.locator.calls)
	assert.Equal(t, "Rizal Park, Ermita, Manila", h.form.Remarks())
	assert.Equal(t, "Rizal Park, Ermita, Manila", h.form.Address())

	at, ok := h.form.Location()
	require.True(t, ok)
	assert.Equal(t, manila, at)

	assert.ErrorIs(t, h.form.SetRemarks("typed by hand"), ErrRemarksReadOnly)
	assert.Equal(t, "Rizal Park, Ermita, Manila", h.form.Remarks())
}

func TestForm_FieldVisitGeocodingFailureFallsBackToCoordinates(t *testing.T) {
	h := newHarness(t)
	h.geocoder.err = errors.New("nominatim down")

	require.NoError(t, h.form.SetStatus(context.Background(), StatusClientVisit))
	assert.Equal(t, "14.5995, 120.9842", h.form.Remarks())
	assert.Empty(t, h.form.Address())
	assert.False(t, h.form.CanSubmit())

	require.NoError(t, h.form.SetDuration(30))
	assert.True(t, h.form.CanSubmit())
}

func TestForm_FieldVisitEmptyAddressFallsBackToCoordinates(t *testing.T) {
	h := newHarness(t)
	h.geocoder.address = "  "

	require.NoError(t, h.form.SetStatus(context.Background(), StatusSiteVisit))
	assert.Equal(t, "14.5995, 120.9842", h.form.Remarks())
}

func TestForm_FieldVisitLocationFailure(t *testing.T) {
	h := newHarness(t)
	h.locator.err = errors.New("permission denied")

	require.NoError(t, h.form.SetStatus(context.Background(), StatusOnField))
	assert.Equal(t, "Unable to fetch location.", h.form.Remarks())
	_, ok := h.form.Location()
	assert.False(t, ok)
}

func TestForm_CameraFailureIsNotFatal(t *testing.T) {
	h := newHarness(t)
	h.camera.openErr = errors.New("no device")

	require.NoError(t, h.form.SetStatus(context.Background(), StatusClientVisit))
	assert.False(t, h.form.CameraActive())
	assert.Equal(t, "Rizal Park, Ermita, Manila", h.form.Remarks())
	assert.ErrorIs(t, h.form.CaptureImage(context.Background()), ErrCameraUnavailable)
}

func TestForm_LeavingFieldVisitReleasesAndClears(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	require.NoError(t, h.form.SetStatus(ctx, StatusClientVisit))
	require.NoError(t, h.form.CaptureImage(ctx))
	require.NotEmpty(t, h.form.Image())
	stream := h.camera.opened[0]

	require.NoError(t, h.form.SetStatus(ctx, StatusClientMeeting))

	assert.True(t, stream.closed)
	assert.False(t, h.form.CameraActive())
	assert.Nil(t, h.form.Image())
	assert.Empty(t, h.form.Remarks())
	assert.Empty(t, h.form.Address())
	_, ok := h.form.Location()
	assert.False(t, ok)
}

func TestForm_SwitchingBetweenFieldVisitsReacquires(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	require.NoError(t, h.form.SetStatus(ctx, StatusClientVisit))
	require.NoError(t, h.form.SetStatus(ctx, StatusSiteVisit))

	require.Len(t, h.camera.opened, 2)
	assert.True(t, h.camera.opened[0].closed)
	assert.False(t, h.camera.opened[1].closed)
	assert.Equal(t, 2, h.locator.calls)
}

func TestForm_SameStatusIsNoop(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	require.NoError(t, h.form.SetStatus(ctx, StatusClientVisit))
	require.NoError(t, h.form.SetStatus(ctx, StatusClientVisit))
	assert.Len(t, h.camera.opened, 1)
	assert.Equal(t, 1, h.locator.calls)
}

func TestForm_UnknownStatus(t *testing.T) {
	h := newHarness(t)
	err := h.form.SetStatus(context.Background(), Status("Nap"))
	assert.ErrorIs(t, err, ErrUnknownStatus)
	assert.Equal(t, Status(""), h.form.Status())
}

func TestForm_DurationRecomputesStart(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.form.SetDuration(15))
	firstStart := h.form.Start()
	assert.Equal(t, firstStart.Add(15*time.Minute), h.form.End())
	assert.Equal(t, BusinessLocation, firstStart.Location())

	h.now = h.now.Add(2 * time.Hour)
	require.NoError(t, h.form.SetDuration(60))
	assert.Equal(t, firstStart.Add(2*time.Hour), h.form.Start())
	assert.Equal(t, h.form.Start().Add(time.Hour), h.form.End())

	assert.ErrorIs(t, h.form.SetDuration(0), ErrInvalidDuration)

	h.form.ClearDuration()
	_, ok := h.form.Duration()
	assert.False(t, ok)
	assert.Equal(t, h.form.Start(), h.form.End())
}

func TestForm_ReviewBlockedWhileIncomplete(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	_, err := h.form.Review()
	assert.ErrorIs(t, err, ErrIncomplete)

	require.NoError(t, h.form.SetStatus(ctx, StatusUpdatingReports))
	require.NoError(t, h.form.SetRemarks("   "))
	require.NoError(t, h.form.SetDuration(30))
	_, err = h.form.Review()
	assert.ErrorIs(t, err, ErrIncomplete)

	assert.ErrorIs(t, h.form.Confirm(ctx), ErrNotReviewing)
	assert.Empty(t, h.submitter.payloads)
}

func TestForm_ConfirmUploadsImageAndCloses(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	require.NoError(t, h.form.SetStatus(ctx, StatusClientVisit))
	require.NoError(t, h.form.CaptureImage(ctx))
	require.NoError(t, h.form.SetDuration(45))

	review, err := h.form.Review()
	require.NoError(t, err)
	assert.Empty(t, review.SelfieURL)
	assert.Equal(t, "2025-03-10T01:00:00.000Z", review.StartDate)
	assert.Equal(t, "2025-03-10T01:45:00.000Z", review.EndDate)

	require.NoError(t, h.form.Confirm(ctx))

	require.Len(t, h.submitter.payloads, 1)
	sent := h.submitter.payloads[0]
	assert.Equal(t, "REF-001", sent.ReferenceID)
	assert.Equal(t, "MGR-1", sent.Manager)
	assert.Equal(t, "TSM-1", sent.TSM)
	assert.Equal(t, "Client Visit", sent.ActivityStatus)
	assert.Equal(t, "Rizal Park, Ermita, Manila", sent.ActivityRemarks)
	assert.Equal(t, "https://cdn.example.com/selfie.jpg", sent.SelfieURL)
	assert.Equal(t, 1, h.uploader.calls)

	assert.True(t, h.form.Closed())
	assert.True(t, h.camera.opened[0].closed)
	assert.ErrorIs(t, h.form.SetStatus(ctx, StatusLunchBreak), ErrFormClosed)
}

func TestForm_ConfirmWithoutImageSkipsUpload(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	require.NoError(t, h.form.SetStatus(ctx, StatusCoffeeBreak))
	require.NoError(t, h.form.SetRemarks("break"))
	require.NoError(t, h.form.SetDuration(15))
	_, err := h.form.Review()
	require.NoError(t, err)
	require.NoError(t, h.form.Confirm(ctx))

	assert.Zero(t, h.uploader.calls)
	assert.Empty(t, h.submitter.payloads[0].SelfieURL)
}

func TestForm_ConfirmFailureKeepsFormOpen(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.submitter.err = errors.New("activity endpoint returned 500: boom")

	require.NoError(t, h.form.SetStatus(ctx, StatusClientMeeting))
	require.NoError(t, h.form.SetRemarks("QBR with ACME"))
	require.NoError(t, h.form.SetDuration(60))
	_, err := h.form.Review()
	require.NoError(t, err)

	err = h.form.Confirm(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSubmitFailed)
	assert.False(t, h.form.Closed())
	assert.True(t, h.form.Reviewing())
	assert.Len(t, h.submitter.payloads, 1)

	// The agent retries by hand.
	h.submitter.err = nil
	require.NoError(t, h.form.Confirm(ctx))
	assert.Len(t, h.submitter.payloads, 2)
	assert.True(t, h.form.Closed())
}

func TestForm_UploadFailureDoesNotSubmit(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	h.uploader.err = errors.New("cloud unavailable")

	require.NoError(t, h.form.SetStatus(ctx, StatusOnField))
	require.NoError(t, h.form.CaptureImage(ctx))
	require.NoError(t, h.form.SetDuration(30))
	_, err := h.form.Review()
	require.NoError(t, err)

	assert.ErrorIs(t, h.form.Confirm(ctx), ErrSubmitFailed)
	assert.Empty(t, h.submitter.payloads)
	assert.False(t, h.form.Closed())
}

func TestForm_Affordances(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	require.NoError(t, h.form.SetStatus(ctx, StatusGroupMeeting))
	a := h.form.Affordances()
	assert.Equal(t, ModeMeeting, a.Mode)
	assert.Len(t, a.MeetingLinks, 3)
	assert.Nil(t, a.Calendar)
	assert.False(t, a.ShowCamera)

	require.NoError(t, h.form.SetStatus(ctx, StatusEmailAndViberChecking))
	require.NoError(t, h.form.SetRemarks("inbox zero"))
	require.NoError(t, h.form.SetDuration(20))
	a = h.form.Affordances()
	assert.Equal(t, ModeScheduling, a.Mode)
	require.NotNil(t, a.Calendar)
	assert.Equal(t, "Email and Viber Checking", a.Calendar.Title)
	assert.Equal(t, "inbox zero", a.Calendar.Details)
	assert.Equal(t, 20*time.Minute, a.Calendar.End.Sub(a.Calendar.Start))
	assert.True(t, a.CanSubmit)
	assert.Empty(t, a.MeetingLinks)

	require.NoError(t, h.form.SetStatus(ctx, StatusClientVisit))
	a = h.form.Affordances()
	assert.True(t, a.ShowCamera)
	assert.True(t, a.RemarksReadOnly)
}

func TestForm_MoveLocationReGeocodes(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	assert.ErrorIs(t, h.form.MoveLocation(ctx, manila), ErrNotFieldVisit)

	require.NoError(t, h.form.SetStatus(ctx, StatusClientVisit))
	h.geocoder.address = "Intramuros, Manila"
	require.NoError(t, h.form.MoveLocation(ctx, Coordinates{Lat: 14.59, Lng: 120.97}))
	assert.Equal(t, "Intramuros, Manila", h.form.Remarks())
}

func TestForm_CaptureOutsideFieldVisit(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.form.SetStatus(context.Background(), StatusTSMCoaching))
	assert.ErrorIs(t, h.form.CaptureImage(context.Background()), ErrNotFieldVisit)
}
