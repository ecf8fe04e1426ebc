package ports

// EventIDIssuer stands in for the calendar provider's event creation call.
// Implementations only need to return the opaque id a provider would assign
// to a freshly created event.
type EventIDIssuer interface {
	IssueEventID() string
}
