package sessiongen

import "time"

// Expand produces one draft per slot per week over a window of weeks
// starting after ref. A slot falling on ref's own weekday starts from the
// following week: bulk generation targets upcoming trainings only.
//
// Output is ordered by slot input order, then by week. Location is copied
// verbatim; normalisation is the caller's concern.
func Expand(categoryID string, slots []Slot, weeks int, ref time.Time) []Draft {
	if weeks <= 0 || len(slots) == 0 {
		return nil
	}

	day := dateOf(ref)
	today := WeekdayOf(day)

	drafts := make([]Draft, 0, len(slots)*weeks)
	for _, s := range slots {
		daysToAdd := (int(s.Weekday) - int(today) + 7) % 7
		if daysToAdd == 0 {
			daysToAdd = 7
		}
		for w := 0; w < weeks; w++ {
			drafts = append(drafts, Draft{
				CategoryID:  categoryID,
				SessionDate: addDays(day, daysToAdd+7*w),
				Location:    s.Location,
				StartTime:   s.StartTime,
				EndTime:     s.EndTime,
			})
		}
	}
	return drafts
}
