// ABOUTME: Daily rollover policy for calendar-scoped records.
// ABOUTME: Day-granularity date comparison; stale records are discarded wholesale.
package session

import (
	"time"

	"github.com/harperreed/coach/internal/models"
)

// dateLayout is the calendar-date format used by all daily-scoped records.
const dateLayout = "2006-01-02"

// CurrentDate returns today's calendar date string.
func CurrentDate() string {
	return time.Now().Format(dateLayout)
}

// IsStillValid reports whether a daily record dated recordDate still belongs
// to today. Comparison is at day granularity, not time of day.
func IsStillValid(recordDate, today string) bool {
	return recordDate == today
}

// rolloverFoodLog passes a food log through unchanged when its date is still
// today, otherwise starts a fresh empty log for today. Nothing is archived.
func rolloverFoodLog(log models.DailyFoodLog, today string) models.DailyFoodLog {
	if IsStillValid(log.Date, today) {
		return log
	}
	return models.DailyFoodLog{Date: today, Log: nil}
}

// rolloverSteps applies the same policy to the step counter. The original
// app never reset steps on a new day; here rollover is uniform across all
// daily-scoped counters.
func rolloverSteps(steps models.DailySteps, today string) models.DailySteps {
	if IsStillValid(steps.Date, today) {
		return steps
	}
	return models.DailySteps{Date: today}
}
