package tui

import (
	"github.com/MKhiriev/go-accounts-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// Input positions shared by the draft and edit forms.
const (
	inputLabel = iota
	inputLogin
	inputPassword
	inputCount
)

var inputFields = [inputCount]models.Field{
	inputLabel:    models.FieldLabel,
	inputLogin:    models.FieldLogin,
	inputPassword: models.FieldPassword,
}

func newAccountInputs(label, login, password string, showPwd bool) []textinput.Model {
	inputs := make([]textinput.Model, inputCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].Prompt = ""
	}
	inputs[inputLabel].SetValue(label)
	inputs[inputLogin].SetValue(login)
	inputs[inputPassword].SetValue(password)
	for i := range inputs {
		inputs[i].CursorEnd()
	}
	setPasswordEcho(&inputs[inputPassword], showPwd)
	inputs[inputLabel].Focus()
	return inputs
}

func setPasswordEcho(in *textinput.Model, show bool) {
	if show {
		in.EchoMode = textinput.EchoNormal
		return
	}
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '•'
}

// moveFocus shifts focus by step, skipping the password input for External
// accounts.
func moveFocus(inputs []textinput.Model, focus, step int, t models.AccountType) int {
	inputs[focus].Blur()
	n := inputCount
	if t == models.External {
		n = inputPassword
	}
	if focus >= n {
		focus = 0
	}
	next := (focus + step + n) % n
	inputs[next].Focus()
	return next
}
