package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"github.com/salonworks/salon-scheduler/internal/models"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

// Postgres rejects FOR UPDATE on aggregate queries (SQLSTATE 0A000), so the
// conflict re-check has to lock plain rows. Rendering count(*) here would
// fail every booking transaction against a real database.
func TestLockedConflictQuery_LocksRowsNotAggregate(t *testing.T) {
	db := dryRunDB(t)

	start := time.Date(2026, 9, 4, 14, 0, 0, 0, time.UTC)
	b := &models.Booking{
		SalonID:        1,
		ProfessionalID: 2,
		StartTime:      start,
		EndTime:        start.Add(30 * time.Minute),
	}

	var conflicting []models.Booking
	stmt := lockedConflictQuery(db, b).Limit(1).Find(&conflicting).Statement
	sql := stmt.SQL.String()

	assert.Contains(t, sql, "FOR UPDATE")
	assert.NotContains(t, strings.ToLower(sql), "count(")
	assert.Contains(t, sql, "start_time < ")
	assert.Contains(t, sql, "end_time > ")
	assert.Contains(t, sql, "status <> ")
}
