package game

// SessionStatus is where a trainer session is in its round cycle.
type SessionStatus string

const (
	StatusAwaitingAnswer SessionStatus = "AWAITING_ANSWER"
	StatusEvaluated      SessionStatus = "EVALUATED"
	StatusExpired        SessionStatus = "EXPIRED"
)
