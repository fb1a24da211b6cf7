package activity

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Coordinates is a latitude/longitude fix.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String renders the fix as "lat, lng", the text used when no address can be
// resolved.
func (c Coordinates) String() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + ", " + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}

// Camera hands out a video stream. The stream must be closed by the caller.
type Camera interface {
	Open(ctx context.Context) (Stream, error)
}

// Stream is an open camera. Capture grabs a single JPEG frame.
type Stream interface {
	Capture(ctx context.Context) ([]byte, error)
	Close() error
}

// Locator produces a one-shot position fix.
type Locator interface {
	Locate(ctx context.Context) (Coordinates, error)
}

// Geocoder resolves coordinates into a human-readable address.
type Geocoder interface {
	Reverse(ctx context.Context, at Coordinates) (string, error)
}

// Uploader stores an image and returns its hosted URL.
type Uploader interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}

var (
	ErrCameraUnavailable   = errors.New("camera unavailable")
	ErrLocationUnavailable = errors.New("location unavailable")
)

// FileCamera serves the bytes of an image file as its only frame. It stands
// in for a device camera when the form is driven from the command line.
type FileCamera struct {
	Path string
}

func (c FileCamera) Open(ctx context.Context) (Stream, error) {
	if c.Path == "" {
		return nil, ErrCameraUnavailable
	}
	if _, err := os.Stat(c.Path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCameraUnavailable, err)
	}
	return &fileStream{path: c.Path}, nil
}

type fileStream struct {
	path   string
	closed bool
}

func (s *fileStream) Capture(ctx context.Context) ([]byte, error) {
	if s.closed {
		return nil, ErrCameraUnavailable
	}
	return os.ReadFile(s.path)
}

func (s *fileStream) Close() error {
	s.closed = true
	return nil
}

// FixedLocator always reports the same position. A nil At means no fix.
type FixedLocator struct {
	At *Coordinates
}

func (l FixedLocator) Locate(ctx context.Context) (Coordinates, error) {
	if l.At == nil {
		return Coordinates{}, ErrLocationUnavailable
	}
	return *l.At, nil
}
