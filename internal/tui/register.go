package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newRegisterModel(serverAddress string) registerModel {
	serverInput := textinput.New()
	serverInput.Placeholder = "server address"
	serverInput.Width = 40
	serverInput.SetValue(serverAddress)
	serverInput.Focus()

	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 40
	usernameInput.Width = 40

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	repeatInput := textinput.New()
	repeatInput.Placeholder = "repeat password"
	repeatInput.CharLimit = 256
	repeatInput.Width = 40
	repeatInput.EchoMode = textinput.EchoPassword
	repeatInput.EchoCharacter = '*'

	return registerModel{inputs: []textinput.Model{serverInput, usernameInput, passwordInput, repeatInput}}
}

func (m registerModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("CREATE ACCOUNT"))
	b.WriteString("\n\n")
	b.WriteString("Server   [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Username [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")
	b.WriteString("Password [")
	b.WriteString(m.inputs[2].View())
	b.WriteString("]\n")
	b.WriteString("Repeat   [")
	b.WriteString(m.inputs[3].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\nRegistering...\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter submit  tab next field  esc back"))
	return b.String()
}
