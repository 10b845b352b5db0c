package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

func TestCarveBlocks(t *testing.T) {
	win := Window{Start: at("09:00"), End: at("18:00"), Open: true}

	tests := []struct {
		name       string
		exceptions []*domain.StaffSchedule
		want       []Interval
	}{
		{
			name: "no exceptions keeps full window",
			want: []Interval{{at("09:00"), at("18:00")}},
		},
		{
			name:       "all-day holiday empties the window",
			exceptions: []*domain.StaffSchedule{allDayHoliday()},
			want:       nil,
		},
		{
			name:       "single block splits window in two",
			exceptions: []*domain.StaffSchedule{block("12:00", "13:00")},
			want: []Interval{
				{at("09:00"), at("12:00")},
				{at("13:00"), at("18:00")},
			},
		},
		{
			name: "two blocks in any order give same result",
			exceptions: []*domain.StaffSchedule{
				block("15:00", "16:00"),
				block("10:00", "11:00"),
			},
			want: []Interval{
				{at("09:00"), at("10:00")},
				{at("11:00"), at("15:00")},
				{at("16:00"), at("18:00")},
			},
		},
		{
			name:       "block at window start drops the head",
			exceptions: []*domain.StaffSchedule{block("09:00", "10:30")},
			want:       []Interval{{at("10:30"), at("18:00")}},
		},
		{
			name:       "block covering whole window empties it",
			exceptions: []*domain.StaffSchedule{block("08:00", "19:00")},
			want:       nil,
		},
		{
			name:       "block outside window is ignored",
			exceptions: []*domain.StaffSchedule{block("19:00", "20:00")},
			want:       []Interval{{at("09:00"), at("18:00")}},
		},
		{
			name: "overlapping blocks",
			exceptions: []*domain.StaffSchedule{
				block("11:00", "13:00"),
				block("12:00", "14:00"),
			},
			want: []Interval{
				{at("09:00"), at("11:00")},
				{at("14:00"), at("18:00")},
			},
		},
		{
			name: "timed record without end time is not a block",
			exceptions: []*domain.StaffSchedule{
				{Date: testDate, Type: domain.ScheduleTypeBlock},
			},
			want: []Interval{{at("09:00"), at("18:00")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CarveBlocks(win, tt.exceptions)

			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Equal(t, tt.want[i], got[i])
			}
		})
	}
}

func TestCarveBlocksClosedWindow(t *testing.T) {
	got := CarveBlocks(Window{}, nil)
	assert.Empty(t, got)
}
