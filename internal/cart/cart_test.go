package cart

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yogabooker/internal/models"
)

func testInstance(id int) models.ClassInstance {
	return models.ClassInstance{
		ID:       id,
		CourseID: 2,
		Date:     "12/08/2025 09:00",
		Teacher:  fmt.Sprintf("Teacher %d", id),
	}
}

func TestAddSnapshotsInstance(t *testing.T) {
	t.Parallel()

	c := New()

	instance := testInstance(1)
	require.Equal(t, Added, c.Add(instance))

	// mutate the source after adding; the cart item must not change
	instance.Teacher = "Someone Else"

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Teacher 1", items[0].Teacher)
	assert.Equal(t, 1, items[0].InstanceID)
	assert.Equal(t, 2, items[0].CourseID)
	assert.Equal(t, "12/08/2025 09:00", items[0].Date)
}

func TestAddRejectsDuplicate(t *testing.T) {
	t.Parallel()

	c := New()

	require.Equal(t, Added, c.Add(testInstance(1)))
	assert.Equal(t, AlreadyPresent, c.Add(testInstance(1)))
	assert.Equal(t, 1, c.Len())
}

func TestAddRespectsCapacity(t *testing.T) {
	t.Parallel()

	c := New()

	for i := 1; i <= MaxItems; i++ {
		require.Equal(t, Added, c.Add(testInstance(i)))
	}

	assert.Equal(t, Full, c.Add(testInstance(MaxItems+1)))
	assert.Equal(t, MaxItems, c.Len())

	// a present id in a full cart still reports AlreadyPresent, not Full
	assert.Equal(t, AlreadyPresent, c.Add(testInstance(3)))
}

func TestInvariantsHoldUnderArbitraryAdds(t *testing.T) {
	t.Parallel()

	c := New()

	ids := []int{5, 3, 5, 9, 3, 1, 1, 2, 8, 7, 6, 4, 10, 11, 12, 5}
	for _, id := range ids {
		c.Add(testInstance(id))
	}

	got := c.InstanceIDs()
	assert.LessOrEqual(t, len(got), MaxItems)

	seen := make(map[int]bool)
	for _, id := range got {
		assert.False(t, seen[id], "duplicate instance id %d in cart", id)
		seen[id] = true
	}
}

func TestInstanceIDsKeepInsertionOrder(t *testing.T) {
	t.Parallel()

	c := New()

	c.Add(testInstance(3))
	c.Add(testInstance(1))
	c.Add(testInstance(2))

	assert.Equal(t, []int{3, 1, 2}, c.InstanceIDs())
}

func TestRemove(t *testing.T) {
	t.Parallel()

	c := New()

	c.Add(testInstance(1))
	c.Add(testInstance(2))
	c.Add(testInstance(3))

	c.Remove(2)
	assert.Equal(t, []int{1, 3}, c.InstanceIDs())

	// removing an absent id is a no-op
	c.Remove(42)
	assert.Equal(t, []int{1, 3}, c.InstanceIDs())
}

func TestClear(t *testing.T) {
	t.Parallel()

	c := New()

	c.Add(testInstance(1))
	c.Add(testInstance(2))
	require.False(t, c.IsEmpty())

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.InstanceIDs())
}

func TestItemsReturnsCopy(t *testing.T) {
	t.Parallel()

	c := New()
	c.Add(testInstance(1))

	items := c.Items()
	items[0].Teacher = "mutated"

	assert.Equal(t, "Teacher 1", c.Items()[0].Teacher)
}

func TestRegistryIsolatesSessions(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	first := r.NewSession()
	second := r.NewSession()
	require.NotEqual(t, first, second)

	r.Get(first).Add(testInstance(1))

	assert.Equal(t, 1, r.Get(first).Len())
	assert.True(t, r.Get(second).IsEmpty())
}

func TestRegistryGetCreatesLazily(t *testing.T) {
	t.Parallel()

	r := NewRegistry()

	c := r.Get("some-session")
	require.NotNil(t, c)

	// same session id, same cart
	c.Add(testInstance(1))
	assert.Equal(t, 1, r.Get("some-session").Len())
}
