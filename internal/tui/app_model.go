package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-accounts-keeper/internal/logger"
	"github.com/MKhiriev/go-accounts-keeper/internal/service"
	"github.com/MKhiriev/go-accounts-keeper/internal/validators"
	"github.com/MKhiriev/go-accounts-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenDraft
	screenEdit
	screenInfo
)

// clipboardWrite is swapped in tests, headless machines have no clipboard.
var clipboardWrite = clipboard.WriteAll

type appModel struct {
	ctx           context.Context
	accounts      service.AccountService
	validator     validators.Validator
	buildInfo     models.AppBuildInfo
	logger        *logger.Logger
	currentScreen screen

	list  listModel
	draft draftFormModel
	edit  editFormModel

	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
}

func newAppModel(ctx context.Context, accounts service.AccountService, validator validators.Validator, info models.AppBuildInfo, log *logger.Logger) appModel {
	m := appModel{
		ctx:           ctx,
		accounts:      accounts,
		validator:     validator,
		buildInfo:     info,
		logger:        log,
		currentScreen: screenList,
	}
	m.refresh()
	return m
}

func (m appModel) Init() tea.Cmd {
	return nil
}

// refresh re-reads the list and the last gate result from the service.
func (m *appModel) refresh() {
	m.list.items = m.accounts.List()
	m.list.errors = m.accounts.Errors()
	m.list.clampIdx()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			switch {
			case key.Matches(msg, keys.yes):
				return m.answerConfirm(service.Confirmed)
			case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
				return m.answerConfirm(service.Cancelled)
			}
			return m, nil
		}
	case accountsChangedMsg:
		m.refresh()
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
		}
		return m, nil
	case addDoneMsg:
		m.draft.submitting = false
		m.refresh()
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		if msg.added {
			m.list.idx = len(m.list.items) - 1
			m.currentScreen = screenList
			m.draft = newDraftFormModel(m.accounts.Draft())
		}
		// a rejected add keeps the form open with the draft intact
		return m, nil
	case editDoneMsg:
		m.edit.submitting = false
		m.refresh()
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.currentScreen = screenList
		return m, nil
	case deleteDoneMsg:
		m.pendingDelete = ""
		m.refresh()
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		if msg.deleted {
			m.list.status = "Deleted."
			return m, cmdClearStatus()
		}
		return m, nil
	case copiedMsg:
		m.list.status = "Password copied!"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.showErrorf(msg.err.Error())
		return m, nil
	case clearStatusMsg:
		m.list.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenList:
		return m.updateList(msg)
	case screenDraft:
		return m.updateDraft(msg)
	case screenEdit:
		return m.updateEdit(msg)
	case screenInfo:
		return m.updateInfo(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenList:
		body = m.list.View()
	case screenDraft:
		body = m.draft.View(m.accounts.Draft(), m.list.errors, m.list.items)
	case screenEdit:
		body = m.edit.View()
	case screenInfo:
		body = renderBuildInfoWindow(m.buildInfo)
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
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

func (m appModel) answerConfirm(confirm service.Confirmer) (tea.Model, tea.Cmd) {
	m.showConfirm = false
	if m.pendingDelete == "" {
		return m, nil
	}
	return m, m.cmdDelete(m.pendingDelete, confirm)
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
		return m, nil
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.items)-1 {
			m.list.idx++
		}
		return m, nil
	case key.Matches(keyMsg, keys.add):
		m.draft = newDraftFormModel(m.accounts.Draft())
		m.currentScreen = screenDraft
		return m, nil
	case key.Matches(keyMsg, keys.info):
		m.currentScreen = screenInfo
		return m, nil
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	// the remaining keys act on the selected record
	item, ok := m.list.current()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.edit):
		m.edit = newEditFormModel(item)
		m.edit.check(m.ctx, m.validator)
		m.currentScreen = screenEdit
	case key.Matches(keyMsg, keys.toggleType):
		return m, m.cmdSetType(item.ID, item.Type.Next())
	case key.Matches(keyMsg, keys.togglePwd):
		return m, m.cmdTogglePassword(item.ID)
	case key.Matches(keyMsg, keys.copy):
		if !item.RequiresPassword() || item.Password == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(item.Password)
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm.message = valueOrDash(item.Label)
		m.pendingDelete = item.ID
	}

	return m, nil
}

func (m appModel) updateDraft(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		// input is frozen until the pending add reports back
		if m.draft.submitting {
			return m, nil
		}
		d := m.accounts.Draft()
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.draft.focus = moveFocus(m.draft.inputs, m.draft.focus, 1, d.Type)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.draft.focus = moveFocus(m.draft.inputs, m.draft.focus, -1, d.Type)
			return m, nil
		case key.Matches(keyMsg, keys.formType):
			if err := m.accounts.SetDraftType(d.Type.Next()); err != nil {
				m.showErrorf(humanizeError(err))
				return m, nil
			}
			// keep focus off the hidden password input
			if m.draft.focus == inputPassword {
				m.draft.focus = moveFocus(m.draft.inputs, m.draft.focus, 1, d.Type.Next())
			}
			return m, nil
		case key.Matches(keyMsg, keys.formPwd):
			m.accounts.ToggleDraftPassword()
			setPasswordEcho(&m.draft.inputs[inputPassword], !d.ShowPwd)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.draft.submitting = true
			return m, m.cmdAdd()
		}
	}

	var cmd tea.Cmd
	m.draft.inputs[m.draft.focus], cmd = m.draft.inputs[m.draft.focus].Update(msg)
	if ok {
		m.syncDraft()
	}
	return m, cmd
}

// syncDraft pushes the input values into the service draft.
func (m appModel) syncDraft() {
	m.accounts.SetDraftLabel(m.draft.value(inputLabel))
	m.accounts.SetDraftLogin(m.draft.value(inputLogin))
	m.accounts.SetDraftPassword(m.draft.value(inputPassword))
}

func (m appModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.edit.focus = moveFocus(m.edit.inputs, m.edit.focus, 1, m.edit.original.Type)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.edit.focus = moveFocus(m.edit.inputs, m.edit.focus, -1, m.edit.original.Type)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			changes := m.edit.changes()
			if len(changes) == 0 {
				m.currentScreen = screenList
				return m, nil
			}
			m.edit.submitting = true
			return m, m.cmdEdit(m.edit.original.ID, changes)
		}
	}

	var cmd tea.Cmd
	m.edit.inputs[m.edit.focus], cmd = m.edit.inputs[m.edit.focus].Update(msg)
	if ok {
		m.edit.check(m.ctx, m.validator)
	}
	return m, cmd
}

func (m appModel) updateInfo(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) cmdAdd() tea.Cmd {
	ctx := m.ctx
	svc := m.accounts
	return func() tea.Msg {
		added, err := svc.Add(ctx)
		return addDoneMsg{added: added, err: err}
	}
}

func (m appModel) cmdEdit(id string, changes []fieldChange) tea.Cmd {
	ctx := m.ctx
	svc := m.accounts
	return func() tea.Msg {
		for _, c := range changes {
			if err := svc.Update(ctx, id, c.field, c.value); err != nil {
				return editDoneMsg{err: err}
			}
		}
		return editDoneMsg{}
	}
}

func (m appModel) cmdSetType(id string, t models.AccountType) tea.Cmd {
	ctx := m.ctx
	svc := m.accounts
	return func() tea.Msg {
		return accountsChangedMsg{err: svc.SetType(ctx, id, t)}
	}
}

func (m appModel) cmdTogglePassword(id string) tea.Cmd {
	ctx := m.ctx
	svc := m.accounts
	return func() tea.Msg {
		return accountsChangedMsg{err: svc.TogglePassword(ctx, id)}
	}
}

func (m appModel) cmdDelete(id string, confirm service.Confirmer) tea.Cmd {
	ctx := m.ctx
	svc := m.accounts
	return func() tea.Msg {
		deleted, err := svc.Delete(ctx, id, confirm)
		return deleteDoneMsg{deleted: deleted, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
