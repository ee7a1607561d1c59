package assistant

// Action the model may propose. Anything else is answered as plain text.
const ActionCreateAppointment = "create_appointment"

// Intent is the structured booking request extracted from free-text
// conversation. Parsing happens entirely in the proposer; the scheduling
// core only ever sees this shape.
type Intent struct {
	Action         string `json:"action"`
	Date           string `json:"date"` // YYYY-MM-DD
	Time           string `json:"time"` // HH:MM
	ServiceID      uint   `json:"service_id"`
	ProfessionalID uint   `json:"professional_id,omitempty"` // 0 = any
	Notes          string `json:"notes,omitempty"`
}

// Message is one turn of conversation history. History is owned by the
// caller and passed in per request; the assistant keeps no session state.
type Message struct {
	Role    string `json:"role"` // "user" or "model"
	Content string `json:"content"`
}

// Proposal is the proposer's answer: either a structured intent to execute
// or a plain-text reply to relay.
type Proposal struct {
	Reply  string
	Intent *Intent
}
