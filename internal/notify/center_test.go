package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyAppearsAndExpires(t *testing.T) {
	c := NewCenter(60 * time.Millisecond)

	n := c.Notify("Announcement published.", SeverityInfo)
	assert.NotEmpty(t, n.ID)

	active := c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "Announcement published.", active[0].Message)
	assert.Equal(t, SeverityInfo, active[0].Severity)

	require.Eventually(t, func() bool {
		return len(c.Active()) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestTimersOnlyRemoveTheirOwnMessage(t *testing.T) {
	c := NewCenter(70 * time.Millisecond)

	c.Notify("first", SeverityWarn)
	time.Sleep(40 * time.Millisecond)
	second := c.Notify("second", SeverityError)

	// First expires; second is still within its own TTL.
	require.Eventually(t, func() bool {
		active := c.Active()
		return len(active) == 1 && active[0].ID == second.ID
	}, time.Second, 5*time.Millisecond)
}

func TestActiveReturnsACopy(t *testing.T) {
	c := NewCenter(time.Minute)
	c.Notify("original", SeverityInfo)

	snapshot := c.Active()
	snapshot[0].Message = "tampered"

	assert.Equal(t, "original", c.Active()[0].Message)
}
