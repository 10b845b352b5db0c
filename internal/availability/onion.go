package availability

import (
	"sort"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// OnionParams параметры генерации слотов в режиме onion
type OnionParams struct {
	// SlotSizeMinutes шаг между якорями кандидатов
	SlotSizeMinutes int
	// Layer сколько якорей пробовать с каждого края дня
	Layer int
	// DisableBackSlots не генерировать слоты от конца дня
	DisableBackSlots bool
	// AllowOverlapMinutes допустимый выход конца слота за время закрытия
	AllowOverlapMinutes int
}

// GenerateOnion генерирует ограниченный набор слотов, прижатых к началу
// и концу рабочего дня, вместо плотного перебора всей сетки
//
// Передние слоты якорятся от начала окна с шагом SlotSizeMinutes и могут
// выходить за закрытие на AllowOverlapMinutes (такие помечаются HasOverlap).
// Задние слоты якорятся концом от времени закрытия без допуска на выход.
// При слиянии приоритет у передних: задний слот добавляется, только если
// не пересекается ни с одним уже принятым
func GenerateOnion(intervals []Interval, ix *OccupancyIndex, durationMinutes int, p OnionParams) []domain.AvailableSlot {
	if durationMinutes <= 0 || p.Layer <= 0 || p.SlotSizeMinutes <= 0 || len(intervals) == 0 {
		return nil
	}

	duration := int64(durationMinutes) * 60
	slotSize := int64(p.SlotSizeMinutes) * 60
	allowOverlap := int64(p.AllowOverlapMinutes) * 60

	windowStart := intervals[0].Start
	windowEnd := intervals[len(intervals)-1].End

	accepted := make([]domain.AvailableSlot, 0, p.Layer*2)

	// Передние слоты: от начала дня вглубь
	for i := 0; i < p.Layer; i++ {
		start := windowStart + int64(i)*slotSize
		end := start + duration

		if start >= windowEnd {
			break
		}
		if end > windowEnd+allowOverlap {
			continue
		}

		// Занятость проверяется только до закрытия: за закрытием корзин нет
		checkedEnd := end
		if checkedEnd > windowEnd {
			checkedEnd = windowEnd
		}

		if !containedInOne(intervals, start, checkedEnd) {
			continue
		}
		if ix.RangeBlocked(start, checkedEnd) {
			continue
		}

		accepted = append(accepted, domain.AvailableSlot{
			StartTime:  start,
			EndTime:    end,
			HasOverlap: end > windowEnd,
		})
	}

	if p.DisableBackSlots {
		sortSlots(accepted)
		return accepted
	}

	// Задние слоты: концом от закрытия, без допуска на выход
	back := make([]domain.AvailableSlot, 0, p.Layer)
	for i := 0; i < p.Layer; i++ {
		end := windowEnd - int64(i)*slotSize
		start := end - duration

		if start < windowStart {
			break
		}
		if !containedInOne(intervals, start, end) {
			continue
		}
		if ix.RangeBlocked(start, end) {
			continue
		}

		back = append(back, domain.AvailableSlot{StartTime: start, EndTime: end})
	}

	sortSlots(back)

	// Слияние: пересечение с уже принятым слотом отбрасывает задний
	for _, b := range back {
		conflict := false
		for _, a := range accepted {
			if a.Overlaps(b.StartTime, b.EndTime) {
				conflict = true
				break
			}
		}
		if !conflict {
			accepted = append(accepted, b)
		}
	}

	sortSlots(accepted)
	return accepted
}

func sortSlots(slots []domain.AvailableSlot) {
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].StartTime < slots[j].StartTime
	})
}
