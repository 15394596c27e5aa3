package model

// SessionID identifies a single play-through of one game. Sessions are
// ephemeral: they live in the controller that created them and disappear on
// completion or abandonment.
type SessionID string

// SessionState represents the phase of a game session
type SessionState string

const (
	SessionConfiguring SessionState = "configuring" // Collecting game settings
	SessionInProgress  SessionState = "in_progress" // Accepting player input
	SessionCompleted   SessionState = "completed"   // Final score computed
	SessionAbandoned   SessionState = "abandoned"   // Discarded without a score
)
