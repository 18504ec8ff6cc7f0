package domain

// SessionState identifies the current step of the registration dialogue
type SessionState string

const (
	// StateIdle means no dialogue is in progress for the user
	StateIdle SessionState = "idle"

	// StateAwaitingConsent waits for the yes/no personal-data answer
	StateAwaitingConsent SessionState = "awaiting_consent"

	// StateCollectingSurname waits for the surname text
	StateCollectingSurname SessionState = "collecting_surname"

	// StateCollectingFirstName waits for the first name text
	StateCollectingFirstName SessionState = "collecting_first_name"

	// StateCollectingPatronymic waits for the patronymic text
	StateCollectingPatronymic SessionState = "collecting_patronymic"

	// StateReadyForTicket means registration is complete and the user
	// may claim a ticket number
	StateReadyForTicket SessionState = "ready_for_ticket"
)

// Session holds dialogue progress and partially collected answers.
// It is ephemeral: losing it on restart only forces the user to /start again.
type Session struct {
	State      SessionState
	Surname    string
	FirstName  string
	Patronymic string
}
