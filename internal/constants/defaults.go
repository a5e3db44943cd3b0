package constants

// Scheduling defaults
const (
	// MinSlotMinutes is the shortest availability slot worth scheduling
	MinSlotMinutes = 20

	// DefaultSessionLengthMin is used when the profile has no session length preference
	DefaultSessionLengthMin = 45

	// DefaultBreakDurationMin is the fallback break between sessions
	DefaultBreakDurationMin = 5
)

// Notification defaults
const (
	// DefaultNotificationWindowMin is how far ahead upcoming-session notices look
	DefaultNotificationWindowMin = 30

	// BreakNoticeWindowMin is how close to a session's end the break notice fires
	BreakNoticeWindowMin = 5
)

// Storage defaults
const (
	DefaultBackend  = "json"
	DefaultDataDir  = "~/.config/studyplan"
	DefaultUserFile = "users"
)

// AppName is used for config lookup, keyring service names and log prefixes
const AppName = "studyplan"
