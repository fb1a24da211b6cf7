package activity

import (
	"net/url"
	"time"
)

// MeetingLink opens a new video meeting with one provider.
type MeetingLink struct {
	Provider string `json:"provider"`
	URL      string `json:"url"`
}

var meetingLinks = []MeetingLink{
	{Provider: "Google Meet", URL: "https://meet.google.com/new"},
	{Provider: "Microsoft Teams", URL: "https://teams.microsoft.com/l/meeting/new"},
	{Provider: "Zoom", URL: "https://zoom.us/start/videomeeting"},
}

// MeetingLinks returns the providers offered in meeting mode.
func MeetingLinks() []MeetingLink {
	out := make([]MeetingLink, len(meetingLinks))
	copy(out, meetingLinks)
	return out
}

// CalendarEntry is the event offered in scheduling mode.
type CalendarEntry struct {
	Title   string    `json:"title"`
	Details string    `json:"details"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
}

const calendarStamp = "20060102T150405Z"

// GoogleURL builds a Google Calendar "create event" link for the entry.
func (e CalendarEntry) GoogleURL() string {
	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", e.Title)
	q.Set("details", e.Details)
	q.Set("dates", e.Start.UTC().Format(calendarStamp)+"/"+e.End.UTC().Format(calendarStamp))
	return "https://calendar.google.com/calendar/render?" + q.Encode()
}

// Affordances describes what the form shows for the current status.
type Affordances struct {
	Mode            ModeKind       `json:"mode"`
	ShowCamera      bool           `json:"showCamera"`
	RemarksReadOnly bool           `json:"remarksReadOnly"`
	MeetingLinks    []MeetingLink  `json:"meetingLinks,omitempty"`
	Calendar        *CalendarEntry `json:"calendar,omitempty"`
	CanSubmit       bool           `json:"canSubmit"`
}
