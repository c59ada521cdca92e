package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"yogabooker/internal/models"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	all := []models.ClassInstance{
		{ID: 1, Date: "12/08/2025 09:00", Teacher: "Ana"},  // Tuesday
		{ID: 2, Date: "13/08/2025 17:30", Teacher: "Ben"},  // Wednesday
		{ID: 3, Date: "18/08/2025 9:00", Teacher: "Carla"}, // Monday
		{ID: 4, Date: "19/08/2025", Teacher: "Ana"},        // Tuesday, no time
		{ID: 5, Date: "not-a-date", Teacher: "Dan"},
	}

	testCases := []struct {
		name        string
		day         string
		time        string
		expectedIDs []int
	}{
		{name: "no filters returns everything", day: "", time: "", expectedIDs: []int{1, 2, 3, 4, 5}},
		{name: "day prefix matches case-insensitively", day: "mon", time: "", expectedIDs: []int{3}},
		{name: "full day name", day: "Tuesday", time: "", expectedIDs: []int{1, 4}},
		{name: "day fragment", day: "TUES", time: "", expectedIDs: []int{1, 4}},
		{name: "unparseable dates never match a day filter", day: "day", time: "", expectedIDs: []int{1, 2, 3, 4}},
		{name: "time substring of raw date", day: "", time: "17:30", expectedIDs: []int{2}},
		{name: "padded query matches unpadded raw date via normalized time", day: "", time: "09:00", expectedIDs: []int{1, 3}},
		{name: "both filters combine", day: "tue", time: "09:00", expectedIDs: []int{1}},
		{name: "nothing matches is empty, not an error", day: "sunday", time: "", expectedIDs: []int{}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			matched := Filter(all, tc.day, tc.time)

			ids := make([]int, 0, len(matched))
			for _, instance := range matched {
				ids = append(ids, instance.ID)
			}

			assert.Equal(t, tc.expectedIDs, ids)
		})
	}
}

func TestFilterKeepsInputOrder(t *testing.T) {
	t.Parallel()

	all := []models.ClassInstance{
		{ID: 9, Date: "19/08/2025", Teacher: "Ana"}, // Tuesday
		{ID: 1, Date: "12/08/2025", Teacher: "Ben"}, // Tuesday
		{ID: 5, Date: "26/08/2025", Teacher: "Cy"},  // Tuesday
	}

	matched := Filter(all, "tue", "")

	assert.Equal(t, 9, matched[0].ID)
	assert.Equal(t, 1, matched[1].ID)
	assert.Equal(t, 5, matched[2].ID)
}

func TestFilterEmptyInput(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Filter(nil, "mon", "09:00"))
	assert.Empty(t, Filter([]models.ClassInstance{}, "", ""))
}
