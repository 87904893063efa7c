package demo

// ActionGenerateChat is the only action the demo backend understands.
const ActionGenerateChat = "generatechat"

// EventType identifies an inbound stream message.
type EventType string

const (
	EventToken EventType = "token"
	EventEnd   EventType = "end"
	EventError EventType = "error"
)

// GenerateRequest is the outbound message sent when the user asks for an email.
type GenerateRequest struct {
	Action     string `json:"action"`
	ProfileURL string `json:"profile_url"`
}

// Envelope wraps every inbound message.
type Envelope struct {
	Data *Event `json:"data"`
}

// Event is one message of the generation stream. PositionIndex is nil when
// the backend did not send one.
type Event struct {
	Type           EventType `json:"type"`
	PositionIndex  *int      `json:"positionIndex,omitempty"`
	GeneratedToken string    `json:"generatedToken,omitempty"`
	ErrorMessage   string    `json:"errorMessage,omitempty"`
}

// StartsStream reports whether ev is the first token of a new stream.
func (ev Event) StartsStream() bool {
	return ev.PositionIndex != nil && *ev.PositionIndex == 0
}

// Messages are the fixed texts the widget types.
type Messages struct {
	Greeting    string
	Booting     string
	IdleTimeout string
	// ErrorPreamble is a format string taking the submitted profile URL.
	ErrorPreamble string
}

// DefaultMessages returns the texts shown by the landing page.
func DefaultMessages() Messages {
	return Messages{
		Greeting:      "Enter a valid LinkedIn profile URL on the left, submit, and enjoy your personalised email!",
		Booting:       "Booting the superintelligent AI...",
		IdleTimeout:   "You've been idle for too long and the connection has been terminated. Please refresh the web page.",
		ErrorPreamble: `Looks like we encountered an error processing "%s", please check its value and try again! The error message is shown below:`,
	}
}
