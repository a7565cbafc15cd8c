package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-accounts-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLoader struct {
	err    error
	called bool
}

func (f *fakeLoader) Load(context.Context) error {
	f.called = true
	return f.err
}

type fakeUI struct {
	err    error
	called bool
}

func (f *fakeUI) Run(context.Context) error {
	f.called = true
	return f.err
}

type fakeCloser struct {
	err    error
	closed bool
}

func (f *fakeCloser) Close() error {
	f.closed = true
	return f.err
}

func TestNewApp_MissingDependency(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, &fakeCloser{}, logger.Nop())
	require.ErrorIs(t, err, ErrMissingDependency)
}

func TestApp_Run(t *testing.T) {
	loadErr := errors.New("corrupt slot")
	uiErr := errors.New("no tty")
	closeErr := errors.New("close failed")

	tests := []struct {
		name     string
		loader   *fakeLoader
		ui       *fakeUI
		closer   *fakeCloser
		wantErrs []error
		wantUI   bool
	}{
		{name: "success", loader: &fakeLoader{}, ui: &fakeUI{}, closer: &fakeCloser{}, wantUI: true},
		{name: "load fails", loader: &fakeLoader{err: loadErr}, ui: &fakeUI{}, closer: &fakeCloser{}, wantErrs: []error{loadErr}},
		{name: "ui fails", loader: &fakeLoader{}, ui: &fakeUI{err: uiErr}, closer: &fakeCloser{}, wantErrs: []error{uiErr}, wantUI: true},
		{name: "close fails", loader: &fakeLoader{}, ui: &fakeUI{}, closer: &fakeCloser{err: closeErr}, wantErrs: []error{closeErr}, wantUI: true},
		{
			name:     "ui and close fail",
			loader:   &fakeLoader{},
			ui:       &fakeUI{err: uiErr},
			closer:   &fakeCloser{err: closeErr},
			wantErrs: []error{uiErr, closeErr},
			wantUI:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := NewApp(tt.loader, tt.ui, tt.closer, logger.Nop())
			require.NoError(t, err)

			err = app.Run(context.Background())
			if len(tt.wantErrs) == 0 {
				require.NoError(t, err)
			}
			for _, want := range tt.wantErrs {
				require.ErrorIs(t, err, want)
			}

			assert.True(t, tt.loader.called)
			assert.Equal(t, tt.wantUI, tt.ui.called)
			assert.True(t, tt.closer.closed, "storage is always closed")
		})
	}
}
