package store

import "time"

type Setting struct {
	Key   string
	Value string
}

// Profile is what the onboarding step stores about the user.
type Profile struct {
	UserName       string
	OnboardingStep string
	HasStudyCycle  bool
}

// Snapshot is one saved copy of the cycle, kept as serialized plan data.
type Snapshot struct {
	ID      int64
	SavedAt time.Time
	Data    []byte
}
