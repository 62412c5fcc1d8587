package event

const (
	EventScoreSubmitted = "score.submitted"
	EventScoreDeleted   = "score.deleted"
	EventUserRegistered = "user.registered"
)
