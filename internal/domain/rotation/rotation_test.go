package rotation

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/diegoclair/group-meeting-rotation/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noShuffle(int, func(i, j int)) {}

func roster(names ...string) []entity.Member {
	members := make([]entity.Member, 0, len(names))
	for _, n := range names {
		members = append(members, entity.Member{Name: n, Email: n + "@lab.test"})
	}
	return members
}

func meeting(date, p1, p2 string) entity.Meeting {
	m := entity.Meeting{Date: date, Time: "09:00", Presenter1: p1, Presenter2: p2}
	if p1 != "" {
		m.Presenter1Email = p1 + "@lab.test"
	}
	if p2 != "" {
		m.Presenter2Email = p2 + "@lab.test"
	}
	return m
}

func day(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func pairs(schedule []entity.Meeting) map[[2]string]int {
	out := make(map[[2]string]int)
	for _, m := range schedule {
		out[[2]string{m.Presenter1, m.Presenter2}]++
	}
	return out
}

func TestGenerate_Example(t *testing.T) {
	got := Generate(roster("A", "B", "C", "D", "E"), day("2025-09-08"), noShuffle)

	want := []entity.Meeting{
		meeting("2025-09-08", "A", "B"),
		meeting("2025-09-22", "C", "D"),
		meeting("2025-10-06", "E", ""),
	}
	assert.Equal(t, want, got)
}

func TestGenerate_Properties(t *testing.T) {
	start := day("2026-01-05")
	for n := 0; n <= 11; n++ {
		t.Run(fmt.Sprintf("roster of %d", n), func(t *testing.T) {
			names := make([]string, n)
			for i := range names {
				names[i] = fmt.Sprintf("M%02d", i)
			}
			members := roster(names...)

			got := Generate(members, start, nil)

			require.Len(t, got, (n+1)/2)

			seen := make(map[string]int)
			for i, m := range got {
				assert.Equal(t, FormatDate(start.AddDate(0, 0, 14*i)), m.Date)
				assert.Equal(t, "09:00", m.Time)
				if m.Presenter1 != "" {
					seen[m.Presenter1]++
				}
				if m.Presenter2 != "" {
					seen[m.Presenter2]++
				}
			}
			assert.Len(t, seen, n)
			for name, count := range seen {
				assert.Equal(t, 1, count, name)
			}
		})
	}
}

func TestGenerate_DoesNotMutateRoster(t *testing.T) {
	members := roster("A", "B", "C", "D")
	r := rand.New(rand.NewPCG(1, 2))

	Generate(members, day("2026-01-05"), r.Shuffle)

	assert.Equal(t, roster("A", "B", "C", "D"), members)
}

func TestSkip(t *testing.T) {
	base := Generate(roster("A", "B", "C", "D", "E"), day("2025-09-08"), noShuffle)

	tests := []struct {
		name     string
		schedule []entity.Meeting
		date     string
		want     []entity.Meeting
		wantErr  error
	}{
		{
			name:     "Should push skipped pair to the back",
			schedule: base,
			date:     "2025-09-08",
			want: []entity.Meeting{
				meeting("2025-09-22", "C", "D"),
				meeting("2025-10-06", "E", ""),
				meeting("2025-10-20", "A", "B"),
			},
		},
		{
			name:     "Should skip a middle meeting",
			schedule: base,
			date:     "2025-09-22",
			want: []entity.Meeting{
				meeting("2025-09-08", "A", "B"),
				meeting("2025-10-06", "E", ""),
				meeting("2025-10-20", "C", "D"),
			},
		},
		{
			name:     "Should move a single meeting forward in place",
			schedule: []entity.Meeting{meeting("2025-09-08", "A", "B")},
			date:     "2025-09-08",
			want:     []entity.Meeting{meeting("2025-09-22", "A", "B")},
		},
		{
			name:     "Should return not found for unknown date",
			schedule: base,
			date:     "2025-09-09",
			wantErr:  ErrMeetingNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Skip(tt.schedule, tt.date)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, pairs(tt.schedule), pairs(got))
		})
	}
}

func TestSkip_KeepsSkippedTime(t *testing.T) {
	schedule := []entity.Meeting{meeting("2025-09-08", "A", "B"), meeting("2025-09-22", "C", "D")}
	schedule[0].Time = "14:30"

	got, err := Skip(schedule, "2025-09-08")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2025-10-06", got[1].Date)
	assert.Equal(t, "14:30", got[1].Time)
	assert.Equal(t, "09:00", schedule[1].Time, "input must not be mutated")
	assert.Equal(t, "2025-09-08", schedule[0].Date)
}

func TestChangeDate(t *testing.T) {
	base := Generate(roster("A", "B", "C", "D", "E", "F"), day("2025-09-08"), noShuffle)

	tests := []struct {
		name      string
		oldDate   string
		newDate   string
		wantDates []string
		wantErr   error
	}{
		{
			name:      "Should cascade later dates",
			oldDate:   "2025-09-22",
			newDate:   "2025-09-24",
			wantDates: []string{"2025-09-08", "2025-09-24", "2025-10-08"},
		},
		{
			name:      "Should re-date from the first meeting",
			oldDate:   "2025-09-08",
			newDate:   "2025-09-15",
			wantDates: []string{"2025-09-15", "2025-09-29", "2025-10-13"},
		},
		{
			name:    "Should return not found for unknown date",
			oldDate: "2025-01-01",
			newDate: "2025-01-02",
			wantErr: ErrMeetingNotFound,
		},
		{
			name:    "Should reject malformed date",
			oldDate: "2025-09-08",
			newDate: "09/15/2025",
			wantErr: ErrInvalidDate,
		},
		{
			name:    "Should reject colliding dates",
			oldDate: "2025-09-22",
			newDate: "2025-08-25",
			wantErr: ErrDateConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ChangeDate(base, tt.oldDate, tt.newDate)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, len(base))

			var dates []string
			for i, m := range got {
				dates = append(dates, m.Date)
				assert.Equal(t, base[i].Presenter1, m.Presenter1)
				assert.Equal(t, base[i].Presenter2, m.Presenter2)
			}
			assert.Equal(t, tt.wantDates, dates)
		})
	}
}

func TestChangeTime(t *testing.T) {
	base := Generate(roster("A", "B", "C", "D"), day("2025-09-08"), noShuffle)

	tests := []struct {
		name    string
		date    string
		newTime string
		wantErr error
	}{
		{name: "Should accept valid time", date: "2025-09-22", newTime: "09:05"},
		{name: "Should accept midnight", date: "2025-09-08", newTime: "00:00"},
		{name: "Should reject hour 25", date: "2025-09-08", newTime: "25:00", wantErr: ErrInvalidTime},
		{name: "Should reject minute 60", date: "2025-09-08", newTime: "10:60", wantErr: ErrInvalidTime},
		{name: "Should reject single digit hour", date: "2025-09-08", newTime: "9:00", wantErr: ErrInvalidTime},
		{name: "Should return not found", date: "2025-09-09", newTime: "10:00", wantErr: ErrMeetingNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ChangeTime(base, tt.date, tt.newTime)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			for i, m := range got {
				if m.Date == tt.date {
					assert.Equal(t, tt.newTime, m.Time)
					continue
				}
				assert.Equal(t, base[i], m)
			}
		})
	}
}

func TestSwap(t *testing.T) {
	base := Generate(roster("A", "B", "C", "D"), day("2025-09-08"), noShuffle)

	t.Run("Should exchange slots across dates", func(t *testing.T) {
		got, err := Swap(base, "2025-09-08", "B", "2025-09-22", "C")

		require.NoError(t, err)
		assert.Equal(t, meeting("2025-09-08", "A", "C"), got[0])
		assert.Equal(t, meeting("2025-09-22", "B", "D"), got[1])
	})

	t.Run("Should be its own inverse", func(t *testing.T) {
		once, err := Swap(base, "2025-09-08", "A", "2025-09-22", "D")
		require.NoError(t, err)

		twice, err := Swap(once, "2025-09-08", "D", "2025-09-22", "A")
		require.NoError(t, err)

		assert.Equal(t, base, twice)
	})

	t.Run("Should swap within one meeting", func(t *testing.T) {
		got, err := Swap(base, "2025-09-08", "A", "2025-09-08", "B")

		require.NoError(t, err)
		assert.Equal(t, meeting("2025-09-08", "B", "A"), got[0])
	})

	t.Run("Should fail when presenter is not on that date", func(t *testing.T) {
		_, err := Swap(base, "2025-09-08", "C", "2025-09-22", "D")
		require.ErrorIs(t, err, ErrPresenterNotFound)
	})

	t.Run("Should fail when date is missing", func(t *testing.T) {
		_, err := Swap(base, "2025-09-08", "A", "2030-01-01", "D")
		require.ErrorIs(t, err, ErrMeetingNotFound)
	})
}

func TestRefill(t *testing.T) {
	today := day("2025-10-01")
	members := roster("A", "B", "C", "D", "E", "F", "G")

	schedule := []entity.Meeting{
		meeting("2025-09-22", "", "B"),
		meeting("2025-10-06", "", "C"),
		meeting("2025-10-20", "D", ""),
	}

	got, err := Refill(schedule, members, today)
	require.NoError(t, err)

	want := []entity.Meeting{
		meeting("2025-09-22", "", "B"),
		meeting("2025-10-06", "A", "C"),
		meeting("2025-10-20", "D", "E"),
		meeting("2025-11-03", "F", "G"),
	}
	assert.Equal(t, want, got)

	counts := make(map[string]int)
	for _, m := range got {
		counts[m.Presenter1]++
		counts[m.Presenter2]++
	}
	delete(counts, "")
	for name, c := range counts {
		assert.Equal(t, 1, c, name)
	}
}

func TestRefill_OddLeftoverAndEmptySchedule(t *testing.T) {
	today := day("2026-10-16") // Friday

	got, err := Refill(nil, roster("A", "B", "C"), today)

	require.NoError(t, err)
	assert.Equal(t, []entity.Meeting{
		meeting("2026-10-19", "A", "B"),
		meeting("2026-11-02", "C", ""),
	}, got)
}

func TestRefill_NothingToDo(t *testing.T) {
	schedule := Generate(roster("A", "B"), day("2026-01-05"), noShuffle)

	got, err := Refill(schedule, roster("A", "B"), day("2026-01-01"))

	require.NoError(t, err)
	assert.Equal(t, schedule, got)
}

func TestRefill_AfterMovingMeetingEarlier(t *testing.T) {
	today := day("2026-10-16")

	schedule := Generate(roster("A", "B", "C", "D", "E", "F"), day("2026-11-02"), noShuffle)
	schedule, err := ChangeDate(schedule, "2026-11-30", "2026-10-19")
	require.NoError(t, err)
	schedule = ClearMember(schedule, "A", today)
	schedule = ClearMember(schedule, "B", today)

	got, err := Refill(schedule, roster("A", "B", "C", "D", "E", "F", "G", "H"), today)

	require.NoError(t, err)
	assert.Equal(t, []entity.Meeting{
		meeting("2026-11-02", "A", "B"),
		meeting("2026-11-16", "C", "D"),
		meeting("2026-10-19", "E", "F"),
		meeting("2026-11-30", "G", "H"),
	}, got)
	require.NoError(t, checkUniqueDates(got))
}

func TestExtend_StartsAfterLatestDate(t *testing.T) {
	schedule := []entity.Meeting{
		meeting("2026-11-02", "A", "B"),
		meeting("2026-10-19", "C", "D"),
	}

	got, err := Extend(schedule, roster("E", "F"), day("2026-10-16"), noShuffle)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "2026-11-16", got[2].Date)
}

func TestClearMember(t *testing.T) {
	schedule := []entity.Meeting{
		meeting("2025-09-08", "A", "B"),
		meeting("2025-09-22", "C", "A"),
		meeting("2025-10-06", "A", "D"),
	}

	got := ClearMember(schedule, "A", day("2025-09-22"))

	assert.Equal(t, meeting("2025-09-08", "A", "B"), got[0])
	assert.Equal(t, meeting("2025-09-22", "C", ""), got[1])
	assert.Equal(t, meeting("2025-10-06", "", "D"), got[2])
	assert.Equal(t, "A", schedule[1].Presenter2, "input must not be mutated")
}

func TestRemoveAndAssignPresenter(t *testing.T) {
	schedule := Generate(roster("A", "B"), day("2025-09-08"), noShuffle)

	removed, err := RemovePresenter(schedule, "2025-09-08", 2)
	require.NoError(t, err)
	assert.Equal(t, meeting("2025-09-08", "A", ""), removed[0])

	assigned, err := AssignPresenter(removed, "2025-09-08", 2, entity.Member{Name: "Z", Email: "Z@lab.test"})
	require.NoError(t, err)
	assert.Equal(t, meeting("2025-09-08", "A", "Z"), assigned[0])

	_, err = RemovePresenter(schedule, "2025-09-08", 3)
	require.ErrorIs(t, err, ErrInvalidSlot)

	_, err = AssignPresenter(schedule, "2025-01-01", 1, entity.Member{Name: "Z"})
	require.ErrorIs(t, err, ErrMeetingNotFound)
}

func TestDropPastAndUpcoming(t *testing.T) {
	schedule := []entity.Meeting{
		meeting("2025-09-08", "A", "B"),
		meeting("2025-09-22", "C", "D"),
		meeting("2025-10-06", "E", ""),
	}

	got, removed := DropPast(schedule, day("2025-09-22"))

	assert.Equal(t, 1, removed)
	assert.Equal(t, schedule[1:], got)
	assert.Equal(t, schedule[1:], Upcoming(schedule, day("2025-09-22")))
	assert.Len(t, schedule, 3)
}

func TestEarliestAndSorted(t *testing.T) {
	schedule := []entity.Meeting{
		meeting("2025-10-06", "E", ""),
		meeting("2025-09-08", "A", "B"),
		meeting("2025-09-22", "C", "D"),
	}

	sorted := Sorted(schedule)
	assert.Equal(t, "2025-09-08", sorted[0].Date)
	assert.Equal(t, "2025-10-06", sorted[2].Date)

	m, ok := Earliest(schedule, day("2025-09-10"))
	require.True(t, ok)
	assert.Equal(t, "2025-09-22", m.Date)

	_, ok = Earliest(schedule, day("2026-01-01"))
	assert.False(t, ok)
}

func TestNeedsNewRotation(t *testing.T) {
	members := roster("A", "B", "C", "D", "E", "F")

	tests := []struct {
		name     string
		schedule []entity.Meeting
		members  []entity.Member
		want     bool
	}{
		{name: "Should not extend a full rotation", schedule: Generate(members, day("2025-09-08"), noShuffle), members: members, want: false},
		{name: "Should not extend at exactly a third", schedule: []entity.Meeting{meeting("2025-09-08", "A", "B")}, members: members, want: false},
		{name: "Should extend below a third", schedule: []entity.Meeting{meeting("2025-09-08", "A", "")}, members: members, want: true},
		{name: "Should extend an empty schedule", schedule: nil, members: members, want: true},
		{name: "Should never extend for empty roster", schedule: nil, members: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NeedsNewRotation(tt.schedule, tt.members))
		})
	}
}

func TestExtend(t *testing.T) {
	members := roster("A", "B", "C")
	schedule := []entity.Meeting{meeting("2025-09-08", "A", "")}

	got, err := Extend(schedule, members, day("2025-09-01"), noShuffle)

	require.NoError(t, err)
	assert.Equal(t, []entity.Meeting{
		meeting("2025-09-08", "A", ""),
		meeting("2025-09-22", "A", "B"),
		meeting("2025-10-06", "C", ""),
	}, got)
}

func TestNextMonday(t *testing.T) {
	tests := []struct {
		today string
		want  string
	}{
		{today: "2026-10-12", want: "2026-10-12"}, // Monday
		{today: "2026-10-13", want: "2026-10-19"},
		{today: "2026-10-16", want: "2026-10-19"},
		{today: "2026-10-18", want: "2026-10-19"}, // Sunday
	}

	for _, tt := range tests {
		t.Run(tt.today, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDate(NextMonday(day(tt.today))))
		})
	}
}

func TestNextMonday_KeepsCalendarDateAcrossZones(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	late := time.Date(2026, 10, 16, 23, 30, 0, 0, loc)
	assert.Equal(t, "2026-10-19", FormatDate(NextMonday(late)))
}
