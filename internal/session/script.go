// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/jeranaias/localbot/internal/whatsapp"
)

// Prompt labels, in the order they are asked.
const (
	PromptPhone   = "Enter Phone Number: "
	PromptMessage = "Enter Message: "
	PromptHour    = "Enter Hour (24hrs format): "
	PromptMinute  = "Enter Minutes: "
)

// ErrNotInteger means the hour or minute could not be read as an integer.
var ErrNotInteger = errors.New("not an integer")

// Params are the values collected at the start of a session.
type Params struct {
	Phone   string
	Message string
	Hour    int
	Minute  int
}

// Options configures the image conversion step.
type Options struct {
	ImagePath   string
	ASCIIOutput string
}

// ReadParams asks the four questions. Hour and minute are only checked
// for being integers; range checks belong to the scheduler.
func ReadParams(p Prompter) (Params, error) {
	var params Params
	var err error

	if params.Phone, err = p.Prompt(PromptPhone); err != nil {
		return Params{}, err
	}
	if params.Message, err = p.Prompt(PromptMessage); err != nil {
		return Params{}, err
	}
	if params.Hour, err = promptInt(p, PromptHour, "hour"); err != nil {
		return Params{}, err
	}
	if params.Minute, err = promptInt(p, PromptMinute, "minute"); err != nil {
		return Params{}, err
	}
	return params, nil
}

func promptInt(p Prompter, label, name string) (int, error) {
	raw, err := p.Prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", name, raw, ErrNotInteger)
	}
	return n, nil
}

// Run reads the parameters and makes the three service calls in order:
// schedule, send now with the tab closed afterwards, image to ASCII.
// The first error ends the session.
func Run(ctx context.Context, p Prompter, m whatsapp.Messenger, opts Options) (Params, error) {
	params, err := ReadParams(p)
	if err != nil {
		return Params{}, err
	}
	log.Printf("SESSION_PARAMS | at=%02d:%02d message_runes=%d", params.Hour, params.Minute, len([]rune(params.Message)))

	if err := m.ScheduleMessage(params.Phone, params.Message, params.Hour, params.Minute); err != nil {
		return params, fmt.Errorf("schedule message: %w", err)
	}
	if err := m.SendInstantly(ctx, params.Phone, params.Message, true); err != nil {
		return params, fmt.Errorf("send message: %w", err)
	}
	if _, err := m.ImageToASCII(opts.ImagePath, opts.ASCIIOutput); err != nil {
		return params, fmt.Errorf("image to ascii: %w", err)
	}

	log.Printf("SESSION_DONE | ascii=%s.txt", opts.ASCIIOutput)
	return params, nil
}
