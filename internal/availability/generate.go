package availability

import "github.com/m04kA/SMC-SalonService/internal/domain"

// GenerateDense генерирует все доступные слоты плотным перебором
//
// Каждый открытый интервал сначала "размывается" по индексу занятости
// на максимальные непрерывные свободные отрезки, затем в каждом отрезке
// эмитятся все старты с шагом сетки, для которых требуемая длительность
// помещается до конца отрезка
func GenerateDense(intervals []Interval, ix *OccupancyIndex, durationMinutes int) []domain.AvailableSlot {
	if durationMinutes <= 0 {
		return nil
	}

	duration := int64(durationMinutes) * 60
	step := ix.BucketSeconds()

	var slots []domain.AvailableSlot

	for _, iv := range intervals {
		for _, run := range erode(iv, ix) {
			if run.End-run.Start < duration {
				continue
			}
			for t := run.Start; t+duration <= run.End; t += step {
				slots = append(slots, domain.AvailableSlot{
					StartTime: t,
					EndTime:   t + duration,
				})
			}
		}
	}

	return slots
}

// erode режет интервал на максимальные отрезки из подряд идущих
// свободных корзин; занятая корзина закрывает текущий отрезок
func erode(iv Interval, ix *OccupancyIndex) []Interval {
	var runs []Interval

	step := ix.BucketSeconds()
	runStart := int64(-1)

	for b := ix.AlignDown(iv.Start); b < iv.End; b += step {
		// Границы корзины, обрезанные интервалом
		lo := b
		if lo < iv.Start {
			lo = iv.Start
		}

		if ix.Blocked(b) {
			if runStart >= 0 && lo > runStart {
				runs = append(runs, Interval{Start: runStart, End: lo})
			}
			runStart = -1
			continue
		}

		if runStart < 0 {
			runStart = lo
		}
	}

	if runStart >= 0 && iv.End > runStart {
		runs = append(runs, Interval{Start: runStart, End: iv.End})
	}

	return runs
}

// containedInOne возвращает true, если [start, end) целиком лежит
// внутри одного из интервалов
func containedInOne(intervals []Interval, start, end int64) bool {
	for _, iv := range intervals {
		if iv.Contains(start, end) {
			return true
		}
	}
	return false
}
