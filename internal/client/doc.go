// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It loads the persisted account list, hands control to the terminal UI and
// releases the storage when the UI exits.
package client
