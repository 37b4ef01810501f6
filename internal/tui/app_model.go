// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fhnw-projects/go-chat-client/internal/service"
)

var ErrUserQuit = errors.New("user quit")

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenChat
)

type appModel struct {
	ctx      context.Context
	services service.ChatService

	currentScreen screen
	welcome       welcomeModel
	login         loginModel
	register      registerModel
	chat          chatModel

	err          error
	showError    bool
	errorOverlay errorOverlayModel
}

func newAppModel(ctx context.Context, services service.ChatService, serverAddress string) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(serverAddress),
		register:      newRegisterModel(serverAddress),
	}
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			if m.currentScreen != screenChat {
				m.err = ErrUserQuit
			}
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}

	case pingDoneMsg:
		m.login.submitting = false
		if !msg.ok {
			m.showErrorf("Server is not reachable")
		}
		return m, nil

	case registerDoneMsg:
		m.register.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeTransportError(msg.err))
			return m, nil
		}
		// account exists now: move to sign-in with the username kept
		m.login.inputs[0].SetValue(m.register.inputs[0].Value())
		m.login.inputs[1].SetValue(strings.TrimSpace(m.register.inputs[1].Value()))
		m.currentScreen = screenLogin
		return m, nil

	case loginDoneMsg:
		m.login.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeTransportError(msg.err))
			return m, nil
		}
		m.chat = newChatModel(msg.username)
		m.currentScreen = screenChat
		return m, m.cmdStartBackground()

	case incomingMsg:
		if m.currentScreen == screenChat && msg.contact == m.chat.activeContact {
			m.chat.entries = append(m.chat.entries, msg.entry)
		}
		return m, nil

	case conversationMsg:
		if m.currentScreen == screenChat {
			m.chat.activeContact = msg.contact
			m.chat.entries = msg.entries
		}
		return m, nil

	case presenceMsg:
		if m.currentScreen == screenChat {
			m.chat.online[msg.contact] = msg.online
		}
		return m, nil

	case directoryMsg:
		if m.currentScreen == screenChat {
			m.chat.contacts = msg.contacts
			online := make(map[string]bool, len(msg.contacts))
			for _, name := range msg.online {
				online[name] = true
			}
			m.chat.online = online
			if m.chat.idx >= len(m.chat.contacts) {
				m.chat.idx = len(m.chat.contacts) - 1
			}
			if m.chat.idx < 0 {
				m.chat.idx = 0
			}
		}
		return m, nil

	case statusMsg:
		m.chat.statusText = msg.text
		m.chat.statusOK = msg.ok
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.chat.statusText = ""
		return m, nil

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenChat:
		return m.updateChat(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenChat:
		body = m.chat.View()
	}

	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNextLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusPrevLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			server := strings.TrimSpace(m.login.inputs[0].Value())
			username := strings.TrimSpace(m.login.inputs[1].Value())
			password := m.login.inputs[2].Value()
			if server == "" || username == "" || password == "" {
				m.showErrorf("Server, username and password are required")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(server, username, password)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register = focusNextRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register = focusPrevRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			server := strings.TrimSpace(m.register.inputs[0].Value())
			username := strings.TrimSpace(m.register.inputs[1].Value())
			password := m.register.inputs[2].Value()
			repeat := m.register.inputs[3].Value()
			if server == "" || username == "" || password == "" {
				m.showErrorf("Server, username and password are required")
				return m, nil
			}
			if password != repeat {
				m.showErrorf("Passwords do not match")
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegister(server, username, password)
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateChat(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.chat.input, cmd = m.chat.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.logout):
		return m, tea.Sequence(m.cmdLogout(), tea.Quit)
	case key.Matches(keyMsg, keys.refresh):
		return m, m.cmdRefreshDirectory()
	case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
		if m.chat.focus == focusContacts {
			m.chat.focus = focusInput
			m.chat.input.Focus()
		} else {
			m.chat.focus = focusContacts
			m.chat.input.Blur()
		}
		return m, nil
	}

	if m.chat.focus == focusContacts {
		switch {
		case key.Matches(keyMsg, keys.up):
			if m.chat.idx > 0 {
				m.chat.idx--
			}
		case key.Matches(keyMsg, keys.down):
			if m.chat.idx < len(m.chat.contacts)-1 {
				m.chat.idx++
			}
		case key.Matches(keyMsg, keys.enter):
			contact, ok := m.chat.selectedContact()
			if !ok {
				return m, nil
			}
			return m, m.cmdSelectContact(contact)
		}
		return m, nil
	}

	if key.Matches(keyMsg, keys.enter) {
		text := strings.TrimSpace(m.chat.input.Value())
		if text == "" || m.chat.activeContact == "" {
			return m, nil
		}
		m.chat.input.SetValue("")
		return m, m.cmdSend(text)
	}

	var cmd tea.Cmd
	m.chat.input, cmd = m.chat.input.Update(msg)
	return m, cmd
}

func (m appModel) cmdLogin(server, username, password string) tea.Cmd {
	ctx := m.ctx
	services := m.services
	return func() tea.Msg {
		if !services.Ping(ctx, server) {
			return pingDoneMsg{ok: false}
		}
		err := services.Login(ctx, server, username, password)
		return loginDoneMsg{username: username, err: err}
	}
}

func (m appModel) cmdRegister(server, username, password string) tea.Cmd {
	ctx := m.ctx
	services := m.services
	return func() tea.Msg {
		confirmation, err := services.Register(ctx, server, username, password)
		return registerDoneMsg{confirmation: confirmation, err: err}
	}
}

func (m appModel) cmdStartBackground() tea.Cmd {
	ctx := m.ctx
	services := m.services
	return func() tea.Msg {
		services.Start(ctx)
		services.RefreshDirectory(ctx)
		return nil
	}
}

func (m appModel) cmdSelectContact(contact string) tea.Cmd {
	ctx := m.ctx
	services := m.services
	return func() tea.Msg {
		services.SelectContact(ctx, contact)
		return nil
	}
}

func (m appModel) cmdSend(text string) tea.Cmd {
	ctx := m.ctx
	services := m.services
	return func() tea.Msg {
		services.Send(ctx, text)
		return nil
	}
}

func (m appModel) cmdRefreshDirectory() tea.Cmd {
	ctx := m.ctx
	services := m.services
	return func() tea.Msg {
		services.RefreshDirectory(ctx)
		return nil
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	services := m.services
	return func() tea.Msg {
		services.Logout(ctx)
		return nil
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNextLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
