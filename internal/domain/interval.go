package domain

import "time"

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share at least one instant.
//
// Полуоткрытая семантика: интервалы, соприкасающиеся границами
// (aEnd == bStart), не пересекаются. Для бронирований это означает,
// что выезд и заезд в один и тот же день совместимы.
//
// Каждое решение о доступности комнаты в итоге сводится к этому предикату.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
