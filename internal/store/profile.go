package store

import (
	"fmt"
	"strings"
)

const (
	keyUserName       = "user_name"
	keyOnboardingStep = "onboarding_step"
	keyHasStudyCycle  = "has_study_cycle"

	// KeyDefaultWeeklyHours seeds the weekly budget of a first cycle.
	KeyDefaultWeeklyHours = "default_weekly_hours"
)

func (s *Store) GetProfile() (*Profile, error) {
	settings, err := s.GetAllSettings()
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	p := &Profile{}
	for _, st := range settings {
		switch st.Key {
		case keyUserName:
			p.UserName = st.Value
		case keyOnboardingStep:
			p.OnboardingStep = st.Value
		case keyHasStudyCycle:
			p.HasStudyCycle = st.Value == "1"
		}
	}
	return p, nil
}

// SaveUserName records the onboarding name step.
func (s *Store) SaveUserName(name string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin save user name: %w", err)
	}
	defer tx.Rollback()

	for k, v := range map[string]string{
		keyUserName:       strings.TrimSpace(name),
		keyOnboardingStep: "name",
	} {
		if _, err := tx.Exec(upsertSetting, k, v); err != nil {
			return fmt.Errorf("save setting %q: %w", k, err)
		}
	}
	return tx.Commit()
}
