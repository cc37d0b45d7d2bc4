// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultWebURL is the WhatsApp Web base URL.
const DefaultWebURL = "https://web.whatsapp.com"

// NormalizePhone checks that phone carries a country code and returns the
// digits only, as the send URL expects them.
func NormalizePhone(phone string) (string, error) {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") {
		return "", fmt.Errorf("%w: %q", ErrCountryCodeMissing, phone)
	}

	var b strings.Builder
	for _, r := range phone[1:] {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
		default:
			return "", fmt.Errorf("%w: unexpected %q in %q", ErrInvalidPhone, r, phone)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidPhone, phone)
	}
	return b.String(), nil
}

// SendURL builds the pre-filled chat URL for phone and message.
// The message is NFC-normalized before encoding.
func SendURL(base, phone, message string) (string, error) {
	digits, err := NormalizePhone(phone)
	if err != nil {
		return "", err
	}
	if base == "" {
		base = DefaultWebURL
	}

	u, err := url.Parse(strings.TrimRight(base, "/") + "/send")
	if err != nil {
		return "", fmt.Errorf("parse web url: %w", err)
	}
	q := url.Values{}
	q.Set("phone", digits)
	q.Set("text", norm.NFC.String(message))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// maskPhone keeps the last four digits for log lines.
func maskPhone(phone string) string {
	if len(phone) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}
