package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-accounts-keeper/internal/validators"
	"github.com/MKhiriev/go-accounts-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
)

type fieldChange struct {
	field models.Field
	value string
}

// editFormModel edits one existing record in place.
type editFormModel struct {
	original   models.Account
	inputs     []textinput.Model
	focus      int
	submitting bool

	// hints holds the advisory message per input, refreshed on every change.
	hints [inputCount]string
}

func newEditFormModel(a models.Account) editFormModel {
	return editFormModel{
		original: a,
		inputs:   newAccountInputs(a.Label, a.Login, a.Password, a.ShowPwd),
	}
}

// check runs v over the values as they would be saved. Saving is never
// blocked by a hint.
func (m *editFormModel) check(ctx context.Context, v validators.Validator) {
	m.hints = [inputCount]string{}
	if v == nil {
		return
	}

	a := m.original
	a.Label = m.inputs[inputLabel].Value()
	a.Login = m.inputs[inputLogin].Value()
	a.Password = m.inputs[inputPassword].Value()

	for i, f := range inputFields {
		m.hints[i] = hintMessage(v.Validate(ctx, a, string(f)))
	}
}

func hintMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, validators.ErrEmptyLabel):
		return validators.MsgLabelRequired
	case errors.Is(err, validators.ErrEmptyLogin):
		return validators.MsgLoginRequired
	case errors.Is(err, validators.ErrEmptyPassword):
		return validators.MsgPasswordRequired
	}
	return err.Error()
}

// changes lists the fields whose input differs from the record. The password
// of an External account is not editable.
func (m editFormModel) changes() []fieldChange {
	current := [inputCount]string{
		inputLabel:    m.original.Label,
		inputLogin:    m.original.Login,
		inputPassword: m.original.Password,
	}

	var out []fieldChange
	for i := range inputCount {
		if i == inputPassword && !m.original.RequiresPassword() {
			continue
		}
		if v := m.inputs[i].Value(); v != current[i] {
			out = append(out, fieldChange{field: inputFields[i], value: v})
		}
	}
	return out
}

func (m editFormModel) View() string {
	var b strings.Builder
	b.WriteString(viewTitle("Edit: " + valueOrDash(m.original.Label)))
	b.WriteString("\n")

	b.WriteString(formLine("Label", m.inputs[inputLabel].View(), m.hints[inputLabel]))
	b.WriteString(formLine("Type", m.original.Type.String(), ""))
	b.WriteString(formLine("Login", m.inputs[inputLogin].View(), m.hints[inputLogin]))
	if m.original.RequiresPassword() {
		b.WriteString(formLine("Password", m.inputs[inputPassword].View(), m.hints[inputPassword]))
	}

	if m.submitting {
		b.WriteString("\n" + statusStyle.Render("Saving...") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc cancel  tab next field  enter save"))
	return b.String()
}
