package calendar

import (
	"github.com/google/uuid"

	"taskhub/domain/ports"
)

// SimulatedIssuer fakes the provider round-trip: instead of calling the
// Google Calendar API it mints an opaque id in the same place a real
// integration would read one off the insert response.
type SimulatedIssuer struct{}

func NewSimulatedIssuer() ports.EventIDIssuer {
	return &SimulatedIssuer{}
}

func (s *SimulatedIssuer) IssueEventID() string {
	return "evt_" + uuid.New().String()
}
