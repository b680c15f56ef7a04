// Package timefmt содержит чистые функции форматирования времени чекинов.
// Текущее время передается явно, чтобы функции оставались детерминированными.
package timefmt

import (
	"fmt"
	"time"
)

// Elapsed возвращает давность создания чекина в человекочитаемом виде:
// "just now", "5m ago", "3h ago", либо дату для записей старше суток.
func Elapsed(createdAt, now time.Time) string {
	mins := int(now.Sub(createdAt).Minutes())
	if mins < 1 {
		return "just now"
	}
	if mins < 60 {
		return fmt.Sprintf("%dm ago", mins)
	}

	hours := mins / 60
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}
	return createdAt.Format("1/2/2006")
}

// Remaining возвращает остаток времени жизни чекина:
// "Expired", "45m left", "2h 30m left" (минуты опускаются при нуле), "3d left".
func Remaining(expiresAt, now time.Time) string {
	mins := int(expiresAt.Sub(now).Minutes())
	if mins <= 0 {
		return "Expired"
	}
	if mins < 60 {
		return fmt.Sprintf("%dm left", mins)
	}

	hours := mins / 60
	if hours < 24 {
		if rem := mins % 60; rem > 0 {
			return fmt.Sprintf("%dh %dm left", hours, rem)
		}
		return fmt.Sprintf("%dh left", hours)
	}
	return fmt.Sprintf("%dd left", hours/24)
}
