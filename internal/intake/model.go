package intake

// Turn roles. The wire format matches the generation contract.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one exchange in the dialogue history.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// State of the interview state machine. Terminal is absorbing.
type State string

const (
	StateActive   State = "ACTIVE"
	StateTerminal State = "TERMINAL"
)

// LastUserTurn returns the most recent user turn and whether one exists.
func LastUserTurn(history []Turn) (Turn, bool) {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == RoleUser {
			return history[i], true
		}
	}
	return Turn{}, false
}
