package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-accounts-keeper/internal/logger"
	"github.com/MKhiriev/go-accounts-keeper/internal/validators"
	"github.com/MKhiriev/go-accounts-keeper/models"
)

// errGateRejected aborts a Mutate call when validation failed.
var errGateRejected = errors.New("add rejected by validation")

type accountService struct {
	store  *AccountStore
	gate   validators.AddGate
	ids    IDGenerator
	logger *logger.Logger

	// mu guards the pending draft and the last gate result.
	mu     sync.Mutex
	draft  models.Draft
	errors models.ErrorMap
}

func NewAccountService(store *AccountStore, gate validators.AddGate, ids IDGenerator, logger *logger.Logger) AccountService {
	return &accountService{
		store:  store,
		gate:   gate,
		ids:    ids,
		logger: logger,
		draft:  models.NewDraft(),
		errors: models.ErrorMap{},
	}
}

// log prefers the request-scoped logger carried by ctx.
func (s *accountService) log(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return s.logger
}

func (s *accountService) List() models.AccountList {
	return s.store.Get()
}

func (s *accountService) Add(ctx context.Context) (bool, error) {
	log := s.log(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	var gateErrors models.ErrorMap
	var added models.Account
	err := s.store.Mutate(ctx, func(list models.AccountList) (models.AccountList, error) {
		gateErrors = s.gate.ValidateAdd(ctx, list, s.draft)
		if len(gateErrors) > 0 {
			return nil, errGateRejected
		}
		added = s.draft.ToAccount(s.ids.Generate())
		return append(list, added), nil
	})

	if errors.Is(err, errGateRejected) {
		s.errors = gateErrors
		log.Debug().Int("violations", len(gateErrors)).Msg("add rejected by validation")
		return false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "accountService.Add").Msg("failed to add account")
		return false, fmt.Errorf("add account: %w", err)
	}

	s.errors = models.ErrorMap{}
	s.draft = models.NewDraft()
	log.Debug().Str("id", added.ID).Msg("account added")
	return true, nil
}

func (s *accountService) Update(ctx context.Context, id string, field models.Field, value string) error {
	err := s.store.Mutate(ctx, func(list models.AccountList) (models.AccountList, error) {
		i := list.IndexOf(id)
		if i < 0 {
			return nil, ErrAccountNotFound
		}

		switch field {
		case models.FieldLabel:
			list[i].Label = value
		case models.FieldLogin:
			list[i].Login = value
		case models.FieldPassword:
			list[i].Password = value
		case models.FieldType:
			t, err := models.ParseAccountType(value)
			if err != nil {
				return nil, err
			}
			list[i].Type = t
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
		return list, nil
	})
	if err != nil {
		s.log(ctx).Err(err).
			Str("func", "accountService.Update").
			Str("id", id).
			Str("field", string(field)).
			Msg("failed to update account")
		return fmt.Errorf("update %s of account %s: %w", field, id, err)
	}

	return nil
}

func (s *accountService) SetLabel(ctx context.Context, id, label string) error {
	return s.Update(ctx, id, models.FieldLabel, label)
}

func (s *accountService) SetType(ctx context.Context, id string, accountType models.AccountType) error {
	return s.Update(ctx, id, models.FieldType, string(accountType))
}

func (s *accountService) SetLogin(ctx context.Context, id, login string) error {
	return s.Update(ctx, id, models.FieldLogin, login)
}

func (s *accountService) SetPassword(ctx context.Context, id, password string) error {
	return s.Update(ctx, id, models.FieldPassword, password)
}

func (s *accountService) TogglePassword(ctx context.Context, id string) error {
	err := s.store.Mutate(ctx, func(list models.AccountList) (models.AccountList, error) {
		i := list.IndexOf(id)
		if i < 0 {
			return nil, ErrAccountNotFound
		}
		list[i].ShowPwd = !list[i].ShowPwd
		return list, nil
	})
	if err != nil {
		s.log(ctx).Err(err).Str("func", "accountService.TogglePassword").Str("id", id).Msg("failed to toggle password visibility")
		return fmt.Errorf("toggle password of account %s: %w", id, err)
	}

	return nil
}

func (s *accountService) Delete(ctx context.Context, id string, confirm Confirmer) (bool, error) {
	log := s.log(ctx)

	list := s.store.Get()
	i := list.IndexOf(id)
	if i < 0 {
		return false, fmt.Errorf("delete account %s: %w", id, ErrAccountNotFound)
	}

	if confirm == nil || !confirm(ctx, list[i]) {
		log.Debug().Str("id", id).Msg("deletion cancelled")
		return false, nil
	}

	removed := -1
	err := s.store.Mutate(ctx, func(list models.AccountList) (models.AccountList, error) {
		removed = list.IndexOf(id)
		if removed < 0 {
			return nil, ErrAccountNotFound
		}
		return slices.Delete(list, removed, removed+1), nil
	})
	if err != nil {
		log.Err(err).Str("func", "accountService.Delete").Str("id", id).Msg("failed to delete account")
		return false, fmt.Errorf("delete account %s: %w", id, err)
	}

	// gate results are keyed by position
	s.mu.Lock()
	s.errors = s.errors.WithoutIndex(removed)
	s.mu.Unlock()

	log.Debug().Str("id", id).Msg("account deleted")
	return true, nil
}

func (s *accountService) Draft() models.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *accountService) SetDraftLabel(label string) {
	s.mu.Lock()
	s.draft.Label = label
	s.mu.Unlock()
}

func (s *accountService) SetDraftLogin(login string) {
	s.mu.Lock()
	s.draft.Login = login
	s.mu.Unlock()
}

func (s *accountService) SetDraftPassword(password string) {
	s.mu.Lock()
	s.draft.Password = password
	s.mu.Unlock()
}

func (s *accountService) SetDraftType(accountType models.AccountType) error {
	t, err := models.ParseAccountType(string(accountType))
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.draft.Type = t
	s.mu.Unlock()
	return nil
}

func (s *accountService) ToggleDraftPassword() {
	s.mu.Lock()
	s.draft.ShowPwd = !s.draft.ShowPwd
	s.mu.Unlock()
}

func (s *accountService) ResetDraft() {
	s.mu.Lock()
	s.draft = models.NewDraft()
	s.mu.Unlock()
}

func (s *accountService) Errors() models.ErrorMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errors.Clone()
}
