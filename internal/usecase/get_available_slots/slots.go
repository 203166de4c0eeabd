package get_available_slots

import (
	"cmp"
	"slices"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// freeSlots вычитает активные бронирования из каждого окна.
// Окна обрабатываются независимо, так как бронирование должно целиком лежать в одном окне,
// поэтому у пересекающихся окон интервалы тоже могут пересекаться.
func freeSlots(windows []*domain.AvailabilityWindow, bookings []*domain.Booking) []Slot {
	active := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.IsActive() {
			active = append(active, b)
		}
	}
	slices.SortFunc(active, func(a, b *domain.Booking) int {
		return cmp.Compare(a.StartTime.Minutes(), b.StartTime.Minutes())
	})

	result := make([]Slot, 0)
	for _, w := range windows {
		result = append(result, subtract(w, active)...)
	}
	return result
}

// subtract возвращает части окна, не занятые бронированиями (bookings отсортированы по началу)
func subtract(w *domain.AvailabilityWindow, bookings []*domain.Booking) []Slot {
	slots := make([]Slot, 0)
	cursor := w.StartTime

	for _, b := range bookings {
		if !domain.Overlaps(b.StartTime, b.EndTime, cursor, w.EndTime) {
			continue
		}

		if cursor.IsBefore(b.StartTime) {
			slots = append(slots, Slot{WindowID: w.ID, StartTime: cursor, EndTime: b.StartTime})
		}

		cursor = maxTime(cursor, b.EndTime)
		if !cursor.IsBefore(w.EndTime) {
			return slots
		}
	}

	return append(slots, Slot{WindowID: w.ID, StartTime: cursor, EndTime: w.EndTime})
}

func maxTime(a, b types.TimeString) types.TimeString {
	if a.IsBefore(b) {
		return b
	}
	return a
}
