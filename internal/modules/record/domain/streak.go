package domain

import "time"

// AdvanceStreak applies the streak rule run after every logged session: an
// empty log resets the counter, otherwise any session dated today adds one.
// Several sessions on the same day each add one; callers rely on this
// counting sessions rather than calendar days.
func AdvanceStreak(streak int, log []StudySession, today string) int {
	if len(log) == 0 {
		return 0
	}
	for _, session := range log {
		if session.Date == today {
			return streak + 1
		}
	}
	return streak
}

// ConsecutiveDays counts calendar days with at least one session in the run
// ending today, or ending yesterday when nothing has been logged today yet.
func ConsecutiveDays(log []StudySession, today time.Time) int {
	days := make(map[string]bool, len(log))
	for _, session := range log {
		days[session.Date] = true
	}
	cursor := today
	if !days[cursor.Format(DateLayout)] {
		cursor = cursor.AddDate(0, 0, -1)
	}
	run := 0
	for days[cursor.Format(DateLayout)] {
		run++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return run
}
