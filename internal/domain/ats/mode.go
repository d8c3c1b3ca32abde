package ats

import "strings"

// PlaceholderAPIKey is the sample value shipped in example env files
const PlaceholderAPIKey = "YOUR_GREENHOUSE_API_KEY"

// Mode selects between the live ATS and canned data
type Mode int

const (
	ModeLive Mode = iota
	ModeMock
)

func (m Mode) String() string {
	switch m {
	case ModeLive:
		return "live"
	case ModeMock:
		return "mock"
	default:
		return "unknown"
	}
}

// ModeFor picks the mode from the configured API key. It never looks at anything else.
func ModeFor(apiKey string) Mode {
	key := strings.TrimSpace(apiKey)
	if key == "" || key == PlaceholderAPIKey {
		return ModeMock
	}
	return ModeLive
}
