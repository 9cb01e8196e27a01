package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/studycycle/internal/onboarding"
	"github.com/sadopc/studycycle/internal/store"
	"github.com/sirupsen/logrus"
)

// onboardingModel asks for the user's name before the planner opens.
type onboardingModel struct {
	store  *store.Store
	log    logrus.FieldLogger
	width  int
	height int

	form *huh.Form
	name *string // survives value copies
}

func newOnboardingModel(s *store.Store, log logrus.FieldLogger, prefill string) onboardingModel {
	name := prefill
	o := onboardingModel{
		store: s,
		log:   log,
		name:  &name,
	}
	o.form = o.buildForm()
	return o
}

func (o onboardingModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What should we call you?").
				Description("Your name is only stored on this machine.").
				Value(o.name).
				Validate(func(s string) error {
					_, err := onboarding.ValidateName(s)
					return err
				}),
		),
	).WithShowHelp(true).WithShowErrors(true)
}

func (o *onboardingModel) setSize(w, h int) {
	o.width = w
	o.height = h
}

func (o onboardingModel) Init() tea.Cmd {
	return o.form.Init()
}

func (o onboardingModel) update(msg tea.Msg) (onboardingModel, tea.Cmd) {
	form, cmd := o.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		o.form = f
	}

	if o.form.State != huh.StateCompleted {
		return o, cmd
	}

	name, err := onboarding.ValidateName(*o.name)
	if err != nil {
		// The field validator should have caught this; start over.
		o.form = o.buildForm()
		return o, tea.Batch(o.form.Init(), statusCmd(err.Error(), true))
	}
	if err := o.store.SaveUserName(name); err != nil {
		o.log.WithError(err).Error("save user name")
		return o, statusCmd("Could not save name: "+err.Error(), true)
	}
	o.log.WithField("user", name).Info("onboarding completed")
	return o, func() tea.Msg { return onboardedMsg{name: name} }
}

func (o onboardingModel) view() string {
	title := titleStyle.Render("Welcome to your study cycle")
	intro := mutedStyle.Render("Plan a weekly study budget, split it across days and share it among subjects.")
	content := lipgloss.JoinVertical(lipgloss.Left, title, intro, "", o.form.View())
	return activePanelStyle.Width(o.width - 4).Render(content)
}
