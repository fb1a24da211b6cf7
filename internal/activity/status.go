// Package activity implements the status-driven activity form: which device
// side effects each status triggers, what the form must contain before it can
// be submitted, and how a finished record is validated on the server.
package activity

import (
	"errors"
	"fmt"
	"strings"
)

// Status is the activity an agent is logging.
type Status string

const (
	// Scheduling
	StatusAssistingOtherAgents  Status = "Assisting other Agents Client"
	StatusCoordinationWarehouse Status = "Coordination of SO to Warehouse"
	StatusCoordinationOrders    Status = "Coordination of SO to Orders"
	StatusUpdatingReports       Status = "Updating Reports"
	StatusEmailAndViberChecking Status = "Email and Viber Checking"

	// Breaks and coaching
	StatusFirstBreak  Status = "1st Break"
	StatusCoffeeBreak Status = "Coffee Break"
	StatusLastBreak   Status = "Last Break"
	StatusLunchBreak  Status = "Lunch Break"
	StatusTSMCoaching Status = "TSM Coaching"

	// Meetings
	StatusClientMeeting Status = "Client Meeting"
	StatusGroupMeeting  Status = "Group Meeting"

	// Field visits
	StatusClientVisit Status = "Client Visit"
	StatusSiteVisit   Status = "Site Visit"
	StatusOnField     Status = "On Field"
)

// ModeKind groups statuses that share side effects and form affordances.
type ModeKind int

const (
	ModeDefault ModeKind = iota
	ModeFieldVisit
	ModeMeeting
	ModeScheduling
)

func (k ModeKind) String() string {
	switch k {
	case ModeFieldVisit:
		return "field_visit"
	case ModeMeeting:
		return "meeting"
	case ModeScheduling:
		return "scheduling"
	default:
		return "default"
	}
}

// statuses lists every status in menu order together with its mode.
var statuses = []struct {
	status Status
	mode   ModeKind
}{
	{StatusAssistingOtherAgents, ModeScheduling},
	{StatusCoordinationWarehouse, ModeScheduling},
	{StatusCoordinationOrders, ModeScheduling},
	{StatusUpdatingReports, ModeScheduling},
	{StatusEmailAndViberChecking, ModeScheduling},
	{StatusFirstBreak, ModeDefault},
	{StatusClientMeeting, ModeMeeting},
	{StatusCoffeeBreak, ModeDefault},
	{StatusGroupMeeting, ModeMeeting},
	{StatusLastBreak, ModeDefault},
	{StatusLunchBreak, ModeDefault},
	{StatusTSMCoaching, ModeDefault},
	{StatusClientVisit, ModeFieldVisit},
	{StatusSiteVisit, ModeFieldVisit},
	{StatusOnField, ModeFieldVisit},
}

var statusModes = func() map[Status]ModeKind {
	m := make(map[Status]ModeKind, len(statuses))
	for _, s := range statuses {
		m[s.status] = s.mode
	}
	return m
}()

// ErrUnknownStatus is returned for a status outside the fixed enumeration.
var ErrUnknownStatus = errors.New("unknown activity status")

// Statuses returns every status in menu order.
func Statuses() []Status {
	out := make([]Status, len(statuses))
	for i, s := range statuses {
		out[i] = s.status
	}
	return out
}

// ParseStatus matches s exactly against the enumeration.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.TrimSpace(s))
	if _, ok := statusModes[st]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return st, nil
}

// Valid reports whether s is part of the enumeration.
func (s Status) Valid() bool {
	_, ok := statusModes[s]
	return ok
}

// Mode returns the group s belongs to. The empty status and unknown values
// fall back to ModeDefault.
func (s Status) Mode() ModeKind {
	return statusModes[s]
}
