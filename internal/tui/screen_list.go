package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-accounts-keeper/models"
)

const (
	colLabel = 20
	colType  = 9
	colLogin = 24
)

const noAccountsText = "No accounts available."

// listModel is the main table of accounts.
type listModel struct {
	items  models.AccountList
	errors models.ErrorMap
	idx    int
	status string
}

func (m listModel) current() (models.Account, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Account{}, false
	}
	return m.items[m.idx], true
}

// clampIdx keeps the cursor on an existing row after the list changed.
func (m *listModel) clampIdx() {
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

// passwordCell renders the password column. External accounts have none.
func passwordCell(a models.Account) string {
	if !a.RequiresPassword() {
		return ""
	}
	if a.ShowPwd {
		return a.Password
	}
	return maskedPassword
}

func (m listModel) View() string {
	var b strings.Builder
	b.WriteString(viewTitle("Accounts"))

	if len(m.items) == 0 {
		b.WriteString(noAccountsText + "\n")
	} else {
		b.WriteString(helpStyle.Render(fmt.Sprintf("  %s %s %s %s",
			cell("Label", colLabel), cell("Type", colType), cell("Login", colLogin), "Password")))
		b.WriteString("\n")

		for i, a := range m.items {
			row := fmt.Sprintf("%s %s %s %s",
				cell(a.Label, colLabel), cell(a.Type.String(), colType), cell(a.Login, colLogin), passwordCell(a))
			if i == m.idx {
				b.WriteString(selectedStyle.Render("> " + row))
			} else {
				b.WriteString("  " + row)
			}
			b.WriteString("\n")

			for _, msg := range rowErrors(m.errors, i) {
				b.WriteString("    " + errorStyle.Render("! "+msg) + "\n")
			}
		}
	}

	if m.status != "" {
		b.WriteString("\n" + statusStyle.Render(m.status) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("a add  e edit  t type  space show/hide  c copy  x delete  i about  q quit"))
	return b.String()
}

// rowErrors returns the messages of record index in column order.
func rowErrors(errs models.ErrorMap, index int) []string {
	var out []string
	for _, k := range errs.Keys() {
		if k.Index == index {
			out = append(out, errs[k])
		}
	}
	return out
}
