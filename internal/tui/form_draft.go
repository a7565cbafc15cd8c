package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-accounts-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
)

// draftFormModel edits the pending new record. The service owns the draft;
// the inputs mirror it and push every change back.
type draftFormModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newDraftFormModel(d models.Draft) draftFormModel {
	return draftFormModel{
		inputs: newAccountInputs(d.Label, d.Login, d.Password, d.ShowPwd),
	}
}

func (m draftFormModel) value(i int) string {
	return m.inputs[i].Value()
}

// View renders the form. errs is the last gate result; violations keyed by
// len(list) belong to the draft itself.
func (m draftFormModel) View(d models.Draft, errs models.ErrorMap, list models.AccountList) string {
	var b strings.Builder
	b.WriteString(viewTitle("New account"))
	b.WriteString("\n")

	newIndex := len(list)
	b.WriteString(formLine("Label", m.inputs[inputLabel].View(), errs.Message(models.FieldLabel, newIndex)))
	b.WriteString(formLine("Type", d.Type.String(), ""))
	b.WriteString(formLine("Login", m.inputs[inputLogin].View(), errs.Message(models.FieldLogin, newIndex)))
	if d.Type != models.External {
		b.WriteString(formLine("Password", m.inputs[inputPassword].View(), errs.Message(models.FieldPassword, newIndex)))
	}

	// violations of existing records block the add as well
	var existing []string
	for _, k := range errs.Keys() {
		if k.Index >= len(list) {
			continue
		}
		existing = append(existing, fmt.Sprintf("  #%d %s: %s", k.Index+1, valueOrDash(list[k.Index].Label), errs[k]))
	}
	if len(existing) > 0 {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Fix the existing accounts first:"))
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(strings.Join(existing, "\n")))
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\n" + statusStyle.Render("Saving...") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc cancel  tab next field  ctrl+t type  ctrl+s show/hide password  enter add"))
	return b.String()
}

func formLine(name, value, errMsg string) string {
	line := fmt.Sprintf("%-9s [%s]", name+":", value)
	if errMsg != "" {
		line += "  " + errorStyle.Render(errMsg)
	}
	return line + "\n"
}
