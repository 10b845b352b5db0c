package availability

import (
	"sort"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// CarveBlocks вырезает из эффективного окна частичные блоки недоступности мастера
// и возвращает упорядоченный список непересекающихся открытых под-интервалов
//
// Запись с IsAllDay=true опустошает окно целиком независимо от типа.
// Блоки применяются независимо, порядок применения не влияет на результат.
// Интервалы нулевой длины отбрасываются
func CarveBlocks(win Window, exceptions []*domain.StaffSchedule) []Interval {
	if !win.Open || win.Start >= win.End {
		return nil
	}

	for _, exc := range exceptions {
		if exc.IsAllDay {
			return nil
		}
	}

	intervals := []Interval{{Start: win.Start, End: win.End}}

	for _, exc := range exceptions {
		if !exc.IsBlock() {
			continue
		}
		intervals = subtractBlock(intervals, *exc.StartTime, *exc.EndTime)
	}

	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].Start < intervals[j].Start
	})

	return intervals
}

// subtractBlock вырезает [blockStart, blockEnd) из каждого интервала,
// оставляя остатки до и после блока
func subtractBlock(intervals []Interval, blockStart, blockEnd int64) []Interval {
	if blockStart >= blockEnd {
		return intervals
	}

	result := make([]Interval, 0, len(intervals)+1)

	for _, iv := range intervals {
		// Блок не пересекает интервал
		if blockEnd <= iv.Start || blockStart >= iv.End {
			result = append(result, iv)
			continue
		}

		// Остаток до блока
		if blockStart > iv.Start {
			result = append(result, Interval{Start: iv.Start, End: blockStart})
		}

		// Остаток после блока
		if blockEnd < iv.End {
			result = append(result, Interval{Start: blockEnd, End: iv.End})
		}
	}

	return result
}
