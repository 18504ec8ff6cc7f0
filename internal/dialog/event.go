// Package dialog implements the registration dialogue as an explicit
// finite-state machine: every inbound event is routed through one total
// transition function keyed by the current session state, and anything
// that does not fit the current step gets the invalid-step reply
// instead of being silently dropped.
package dialog

// Button tokens understood by the dialogue. The transport renders them
// as inline buttons and hands the pressed token back unchanged.
const (
	TokenCheckMembership = "check_membership"
	TokenConsentYes      = "consent_yes"
	TokenConsentNo       = "consent_no"
	TokenClaimTicket     = "claim_ticket"

	// TokenJoinChannel is render-only: the transport turns it into a
	// URL button pointing at the channel invite. It never comes back
	// as a press.
	TokenJoinChannel = "join_channel"
)

// EventKind discriminates inbound dialogue events
type EventKind int

const (
	// EventStart is the /start command
	EventStart EventKind = iota
	// EventButton is an inline button press carrying a token
	EventButton
	// EventText is a free-text message
	EventText
)

// Event is one inbound user action
type Event struct {
	Kind  EventKind
	Token string
	Text  string
}

// Profile carries sender identity as reported by the transport
type Profile struct {
	TelegramID int64
	FirstName  string
	LastName   string
	Username   string
}

// Reply is the prompt the dialogue asks the transport to render.
// Buttons hold tokens only; the transport owns all platform markup.
type Reply struct {
	Text    string
	Buttons []string
}

// MembershipChecker is the external channel-subscription predicate.
// An error means the check itself failed and must not be read as
// "not a member".
type MembershipChecker interface {
	IsMember(userID int64) (bool, error)
}
