package tui

import (
	"github.com/MKhiriev/go-deploy-config/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the root router to another page. Payload, when set, is
// re-dispatched to the target page after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// SignInResult reports the outcome of an async sign-in command.
type SignInResult struct {
	Err   error
	Email string
}

// SignInSuccessNotice is shown on the menu after a successful sign-in.
type SignInSuccessNotice struct {
	Email string
}

type configLoadedMsg struct {
	url    string
	config models.ConfigDocument
	err    error
}

type configSavedMsg struct {
	response models.UpdateConfigResponse
	created  bool
	err      error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
