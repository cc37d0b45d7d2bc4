// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package whatsapp

import "github.com/robfig/cron/v3"

// fire runs the job behind id now instead of at its scheduled time.
func (s *Scheduler) fire(id cron.EntryID) bool {
	entry := s.cron.Entry(id)
	if !entry.Valid() {
		return false
	}
	entry.Job.Run()
	return true
}
