package availability

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func TestValidateSlotBasics(t *testing.T) {
	day := newDay(defaultConfig(), openHours("09:00", "18:00"))
	staff := &StaffSnapshot{StaffID: 10}

	tests := []struct {
		name  string
		start string
		end   string
		want  bool
	}{
		{"inside window", "10:00", "10:30", true},
		{"at window start", "09:00", "09:30", true},
		{"ends at closing", "17:30", "18:00", true},
		{"before opening", "08:30", "09:00", false},
		{"spills past closing", "17:45", "18:15", false},
		{"inverted interval", "11:00", "10:00", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateSlot(day, staff, at(tt.start), at(tt.end))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateSlotRejectsConflicts(t *testing.T) {
	day := newDay(defaultConfig(), openHours("09:00", "18:00"))
	staff := &StaffSnapshot{
		StaffID: 10,
		Exceptions: []*domain.StaffSchedule{
			block("13:00", "14:00"),
		},
		Reservations: []*domain.Reservation{
			reservation(10, "10:00", "11:00", domain.StatusConfirmed),
		},
	}
	day.SalonReservations = staff.Reservations

	// Пересечение с бронированием
	assert.False(t, ValidateSlot(day, staff, at("10:30"), at("11:30")))
	// Пересечение с блоком
	assert.False(t, ValidateSlot(day, staff, at("13:30"), at("14:30")))
	// Граничащие интервалы не пересекаются
	assert.True(t, ValidateSlot(day, staff, at("11:00"), at("12:00")))
	assert.True(t, ValidateSlot(day, staff, at("14:00"), at("15:00")))
}

func TestValidateSlotClosedDays(t *testing.T) {
	staff := &StaffSnapshot{StaffID: 10}

	holidayDay := newDay(defaultConfig(), openHours("09:00", "18:00"))
	holidayDay.SalonHoliday = true
	assert.False(t, ValidateSlot(holidayDay, staff, at("10:00"), at("11:00")))

	closedDay := newDay(defaultConfig(), nil)
	assert.False(t, ValidateSlot(closedDay, staff, at("10:00"), at("11:00")))

	day := newDay(defaultConfig(), openHours("09:00", "18:00"))
	offStaff := &StaffSnapshot{
		StaffID:   10,
		WeekHours: &domain.DaySchedule{IsOpen: false},
	}
	assert.False(t, ValidateSlot(day, offStaff, at("10:00"), at("11:00")))

	allDayOff := &StaffSnapshot{
		StaffID:    10,
		Exceptions: []*domain.StaffSchedule{allDayHoliday()},
	}
	assert.False(t, ValidateSlot(day, allDayOff, at("10:00"), at("11:00")))
}

func TestValidateSlotSalonCap(t *testing.T) {
	cfg := defaultConfig()
	cfg.AvailableSheet = 2

	day := newDay(cfg, openHours("09:00", "18:00"))
	day.SalonReservations = []*domain.Reservation{
		reservation(20, "10:00", "10:30", domain.StatusConfirmed),
		reservation(30, "10:00", "10:30", domain.StatusConfirmed),
	}

	freeStaff := &StaffSnapshot{StaffID: 40}

	assert.False(t, ValidateSlot(day, freeStaff, at("10:00"), at("10:30")))
	assert.True(t, ValidateSlot(day, freeStaff, at("10:30"), at("11:00")))
}

// Контракт генератор/валидатор: на одном и том же снапшоте валидатор
// принимает каждый слот, выданный плотным генератором. Случайный корпус
// расписаний, блоков и бронирований
func TestValidatorAcceptsEveryGeneratedSlot(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	hh := func(minutes int) types.TimeString {
		return types.TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
	}

	for i := 0; i < 200; i++ {
		cfg := domain.SalonScheduleConfig{
			SalonID:                    1,
			ReservationIntervalMinutes: []int{15, 30, 60}[rng.Intn(3)],
			AvailableSheet:             1 + rng.Intn(3),
		}

		openMin := (8 + rng.Intn(4)) * 60
		closeMin := (16 + rng.Intn(6)) * 60

		day := newDay(cfg, &domain.DaySchedule{
			IsOpen:    true,
			StartHour: hh(openMin),
			EndHour:   hh(closeMin),
		})

		staff := &StaffSnapshot{StaffID: 10}

		// Случайные блоки недоступности
		for b := 0; b < rng.Intn(3); b++ {
			blockStart := openMin + rng.Intn(closeMin-openMin)
			blockEnd := blockStart + 15 + rng.Intn(120)
			staff.Exceptions = append(staff.Exceptions, &domain.StaffSchedule{
				Date:      testDate,
				Type:      domain.ScheduleTypeBlock,
				StartTime: ptr.Ptr(day.DayStart() + int64(blockStart)*60),
				EndTime:   ptr.Ptr(day.DayStart() + int64(blockEnd)*60),
			})
		}

		// Случайные бронирования мастера и других мастеров салона
		for r := 0; r < rng.Intn(5); r++ {
			resStart := openMin + rng.Intn(closeMin-openMin)
			resEnd := resStart + 15 + rng.Intn(90)
			staffID := int64(10)
			if rng.Intn(2) == 0 {
				staffID = 20
			}
			res := &domain.Reservation{
				SalonID:   1,
				StaffID:   staffID,
				Date:      testDate,
				StartTime: day.DayStart() + int64(resStart)*60,
				EndTime:   day.DayStart() + int64(resEnd)*60,
				Status:    domain.StatusConfirmed,
			}
			day.SalonReservations = append(day.SalonReservations, res)
			if staffID == 10 {
				staff.Reservations = append(staff.Reservations, res)
			}
		}

		duration := []int{30, 45, 60, 90}[rng.Intn(4)]

		win := ResolveWindow(day, staff)
		intervals := CarveBlocks(win, staff.Exceptions)
		ix := BuildOccupancy(day, staff)

		for _, slot := range GenerateDense(intervals, ix, duration) {
			require.True(t, ValidateSlot(day, staff, slot.StartTime, slot.EndTime),
				"iteration %d: generated slot %d-%d rejected by validator", i, slot.StartTime, slot.EndTime)
		}

		// Задние и незаходящие за закрытие передние onion-слоты тоже проходят валидатор
		onionSlots := GenerateOnion(intervals, ix, duration, OnionParams{
			SlotSizeMinutes: 60,
			Layer:           2,
		})
		for _, slot := range onionSlots {
			if slot.HasOverlap {
				continue
			}
			require.True(t, ValidateSlot(day, staff, slot.StartTime, slot.EndTime),
				"iteration %d: onion slot %d-%d rejected by validator", i, slot.StartTime, slot.EndTime)
		}
	}
}
