package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/thisisdkyadav/hdnotes/internal/api"
	"github.com/thisisdkyadav/hdnotes/internal/session"
)

// loginStage is the step of the login flow being shown.
type loginStage int

const (
	// stageEmail collects the address (plus name and date of birth
	// when signing up) and requests an OTP.
	stageEmail loginStage = iota
	// stageOTP collects the emailed six-digit code.
	stageOTP
	// stageGoogle collects a pasted Google ID token.
	stageGoogle
)

// loginState holds the login screen's inputs and progress.
type loginState struct {
	stage  loginStage
	signup bool
	focus  int

	email  textinput.Model
	name   textinput.Model
	dob    textinput.Model
	otp    textinput.Model
	google textinput.Model

	// otpEmail is the address the pending OTP was sent to. Kept
	// separately so editing the email field can't desync the verify
	// request.
	otpEmail string

	busy bool
	err  string
	info string
}

func newLoginState() loginState {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Prompt = ""
	email.CharLimit = 254
	email.Focus()

	name := textinput.New()
	name.Placeholder = "Your name"
	name.Prompt = ""
	name.CharLimit = 100

	dob := textinput.New()
	dob.Placeholder = "YYYY-MM-DD (optional)"
	dob.Prompt = ""
	dob.CharLimit = 10

	otp := textinput.New()
	otp.Placeholder = "6-digit code"
	otp.Prompt = ""
	otp.CharLimit = 6

	google := textinput.New()
	google.Placeholder = "paste Google ID token"
	google.Prompt = ""
	google.EchoMode = textinput.EchoPassword

	return loginState{
		email:  email,
		name:   name,
		dob:    dob,
		otp:    otp,
		google: google,
	}
}

// inputs returns the focusable inputs for the current stage, in tab
// order.
func (l *loginState) inputs() []*textinput.Model {
	switch l.stage {
	case stageOTP:
		return []*textinput.Model{&l.otp}
	case stageGoogle:
		return []*textinput.Model{&l.google}
	default:
		if l.signup {
			return []*textinput.Model{&l.email, &l.name, &l.dob}
		}
		return []*textinput.Model{&l.email}
	}
}

// setFocus focuses input i and blurs the rest.
func (l *loginState) setFocus(i int) {
	ins := l.inputs()
	if len(ins) == 0 {
		return
	}
	l.focus = ((i % len(ins)) + len(ins)) % len(ins)
	for j, in := range ins {
		if j == l.focus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

// setStage switches stages and resets focus to the first input.
func (l *loginState) setStage(s loginStage) {
	l.stage = s
	l.err = ""
	l.setFocus(0)
}

// isDigits reports whether s is entirely ASCII digits.
func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// updateLogin handles key input on the login screen.
func (m Model) updateLogin(msg tea.KeyMsg) (Model, tea.Cmd) {
	l := &m.login

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "tab", "shift+tab", "down", "up":
		delta := 1
		if msg.String() == "shift+tab" || msg.String() == "up" {
			delta = -1
		}
		l.setFocus(l.focus + delta)
		return m, nil

	case "esc":
		if l.stage != stageEmail {
			l.setStage(stageEmail)
			l.info = ""
		}
		return m, nil

	case "ctrl+s":
		if l.stage == stageEmail {
			l.signup = !l.signup
			l.setFocus(0)
		}
		return m, nil

	case "ctrl+g":
		if l.stage == stageEmail {
			l.setStage(stageGoogle)
		}
		return m, nil

	case "ctrl+r":
		// Resend the OTP to the same address.
		if l.stage == stageOTP && !l.busy {
			l.busy = true
			l.err = ""
			return m, m.sendOTP(m.otpRequest(l.otpEmail))
		}
		return m, nil

	case "enter":
		return m.submitLogin()
	}

	if l.busy {
		return m, nil
	}
	var cmd tea.Cmd
	ins := l.inputs()
	if l.focus < len(ins) {
		*ins[l.focus], cmd = ins[l.focus].Update(msg)
	}
	return m, cmd
}

// otpRequest builds the send-OTP payload, including the signup
// fields only when signing up.
func (m *Model) otpRequest(email string) api.SendOTPRequest {
	req := api.SendOTPRequest{Email: email}
	if m.login.signup {
		req.Name = strings.TrimSpace(m.login.name.Value())
		req.DateOfBirth = strings.TrimSpace(m.login.dob.Value())
	}
	return req
}

// submitLogin validates the current stage locally and dispatches the
// request. Validation failures never reach the network.
func (m Model) submitLogin() (Model, tea.Cmd) {
	l := &m.login
	if l.busy {
		return m, nil
	}

	switch l.stage {
	case stageEmail:
		email := strings.TrimSpace(l.email.Value())
		if email == "" || !strings.Contains(email, "@") {
			l.err = "Enter a valid email address"
			return m, nil
		}
		if l.signup && strings.TrimSpace(l.name.Value()) == "" {
			l.err = "Name is required to sign up"
			return m, nil
		}
		l.busy = true
		l.err = ""
		l.otpEmail = email
		return m, m.sendOTP(m.otpRequest(email))

	case stageOTP:
		code := strings.TrimSpace(l.otp.Value())
		if len(code) != 6 || !isDigits(code) {
			l.err = "Enter the 6-digit code from your email"
			return m, nil
		}
		l.busy = true
		l.err = ""
		return m, m.verifyOTP(api.VerifyOTPRequest{Email: l.otpEmail, OTP: code})

	case stageGoogle:
		cred := strings.TrimSpace(l.google.Value())
		if cred == "" {
			l.err = "Paste a Google ID token"
			return m, nil
		}
		l.busy = true
		l.err = ""
		return m, m.loginWithGoogle(cred)
	}
	return m, nil
}

// handleOTPSent moves to the code entry stage on success.
func (m Model) handleOTPSent(msg otpSentMsg) (Model, tea.Cmd) {
	l := &m.login
	l.busy = false
	if msg.err != nil {
		l.err = api.UserMessage(msg.err)
		return m, nil
	}
	l.info = "Code sent to " + l.otpEmail
	if l.stage != stageOTP {
		l.otp.SetValue("")
		l.setStage(stageOTP)
	}
	return m, nil
}

// handleAuthResult installs the session and switches to the notes
// screen on success.
func (m Model) handleAuthResult(msg authResultMsg) (Model, tea.Cmd) {
	l := &m.login
	l.busy = false
	if msg.err != nil {
		l.err = api.UserMessage(msg.err)
		return m, nil
	}

	sess := session.Session{User: msg.resp.User, Token: msg.resp.Token}
	if err := m.sessions.Login(sess); err != nil {
		m.logger.Warn("session persist failed", "error", err)
	}

	m.screen = screenNotes
	m.login = newLoginState()
	m.list.SetQuery("")
	return m, tea.Batch(m.refreshAll()...)
}
