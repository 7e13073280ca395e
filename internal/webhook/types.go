package webhook

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Secret          string   // Shared secret for token verification
	AllowedIPs      []string // IP whitelist (optional)
	RateLimitPerMin int      // Max requests per minute
}

// Header names the tracker sends with every webhook delivery.
const (
	TokenHeader = "X-Tracker-Token"
	EventHeader = "X-Tracker-Event"
)

// Recognized values of the event kind header. Anything else is
// acknowledged and ignored.
const (
	eventIssueHook = "Issue Hook"
	eventNoteHook  = "Note Hook"
)
