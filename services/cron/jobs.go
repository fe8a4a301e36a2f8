package cron

import (
	"fmt"
	"time"

	"github.com/sahilchouksey/edumanage-api/model"
)

// MarkOverdueFees flips Pending fee records past their due date to Overdue.
// This is the one place a fee status changes without an explicit write from
// the office; everything else leaves statuses exactly as the caller set them.
func (m *CronManager) MarkOverdueFees() {
	const jobName = "mark_overdue_fees"

	result := m.db.Model(&model.Fees{}).
		Where("status = ? AND due_date < ?", model.FeeStatusPending, time.Now()).
		Update("status", model.FeeStatusOverdue)

	if result.Error != nil {
		m.logJobError(jobName, result.Error)
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("marked %d fee records overdue", result.RowsAffected))
}
