package scheduling

import (
	"sort"

	"github.com/Gyan0205/hospital-management/cmd/internal/domain/entity"
)

var dayRank = map[string]int{
	"Monday":    1,
	"Tuesday":   2,
	"Wednesday": 3,
	"Thursday":  4,
	"Friday":    5,
	"Saturday":  6,
	"Sunday":    7,
}

func IsWeekday(day string) bool {
	_, ok := dayRank[day]
	return ok
}

// DayRank orders Monday first. Unknown names sort after Sunday.
func DayRank(day string) int {
	if r, ok := dayRank[day]; ok {
		return r
	}
	return len(dayRank) + 1
}

// SortForDisplay orders windows by day (Monday..Sunday), then start time.
func SortForDisplay(rows []*entity.DoctorAvailability) {
	sort.SliceStable(rows, func(i, j int) bool {
		ri, rj := DayRank(rows[i].Day), DayRank(rows[j].Day)
		if ri != rj {
			return ri < rj
		}
		return rows[i].StartTime < rows[j].StartTime
	})
}
