// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package whatsapp

import "errors"

var (
	// ErrCountryCodeMissing means the phone number does not start with "+".
	ErrCountryCodeMissing = errors.New("country code missing: phone number must start with '+'")

	// ErrInvalidPhone means the phone number has no digits after the "+".
	ErrInvalidPhone = errors.New("invalid phone number")

	// ErrInvalidTime means the hour or minute is outside the clock range.
	ErrInvalidTime = errors.New("invalid send time")

	// ErrNoBrowser means no URL opener or keystroke tool was found.
	ErrNoBrowser = errors.New("no browser automation tool available")
)
