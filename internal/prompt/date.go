package prompt

import (
	"fmt"
	"time"
)

var weekdays = [...]string{"일", "월", "화", "수", "목", "금", "토"}

// Seoul is the zone dates are rendered in. It falls back to a fixed +09:00
// offset when the tz database is unavailable.
var Seoul = loadSeoul()

func loadSeoul() *time.Location {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		return time.FixedZone("KST", 9*60*60)
	}
	return loc
}

type DateContext struct {
	DateStr string
	Year    int
	Month   int
	Day     int
	Season  string
}

func NewDateContext(now time.Time) DateContext {
	now = now.In(Seoul)
	month := int(now.Month())

	return DateContext{
		DateStr: fmt.Sprintf("%d년 %d월 %d일 (%s)", now.Year(), month, now.Day(), weekdays[now.Weekday()]),
		Year:    now.Year(),
		Month:   month,
		Day:     now.Day(),
		Season:  Season(month),
	}
}

func Season(month int) string {
	switch {
	case month >= 3 && month <= 5:
		return "봄"
	case month >= 6 && month <= 8:
		return "여름"
	case month >= 9 && month <= 11:
		return "가을"
	default:
		return "겨울"
	}
}
