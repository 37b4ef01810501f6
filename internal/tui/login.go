// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// loginModel holds the sign-in form: server address, username, password.
type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginModel(serverAddress string) loginModel {
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

	return loginModel{inputs: []textinput.Model{serverInput, usernameInput, passwordInput}}
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("SIGN IN"))
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

	if m.submitting {
		b.WriteString("\nSigning in...\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter submit  tab next field  esc back"))
	return b.String()
}
