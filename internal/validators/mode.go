// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"strings"
)

// Mode selects which records the add gate inspects.
type Mode string

const (
	// ModeExisting checks only the records already in the list. The first
	// add into an empty list is never validated.
	ModeExisting Mode = "existing"

	// ModeStrict checks the existing records and the incoming draft, on
	// every add including the first.
	ModeStrict Mode = "strict"
)

// ParseMode converts s into a [Mode]. An empty string selects [ModeExisting].
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeExisting, "":
		return ModeExisting, nil
	case ModeStrict:
		return ModeStrict, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}
