package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/waykaburger/station-app/models"
)

func TestUnreadCountAndMarkRead(t *testing.T) {
	st := newTestStore(t)
	_, notifs, err := st.CreateOrder(testDraft(burgerLine(1, 13)))
	require.NoError(t, err)
	require.Len(t, notifs, 2)

	count, err := st.UnreadCount(models.StationKitchen)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	var kitchenNotif models.Notification
	for _, n := range notifs {
		if n.TargetStation == models.StationKitchen {
			kitchenNotif = n
		}
	}
	require.NotZero(t, kitchenNotif.ID)

	require.NoError(t, st.MarkNotificationRead(kitchenNotif.ID))
	count, err = st.UnreadCount(models.StationKitchen)
	require.NoError(t, err)
	assert.Zero(t, count)

	// marking again is a no-op, unknown ids are not found
	require.NoError(t, st.MarkNotificationRead(kitchenNotif.ID))
	assert.ErrorIs(t, st.MarkNotificationRead(9999), gorm.ErrRecordNotFound)

	// the grill copy is untouched
	count, err = st.UnreadCount(models.StationGrill)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestListNotificationsFiltersByStation(t *testing.T) {
	st := newTestStore(t)
	_, _, err := st.CreateOrder(testDraft(burgerLine(1, 13)))
	require.NoError(t, err)

	grillFeed, err := st.ListNotifications(models.StationGrill)
	require.NoError(t, err)
	require.Len(t, grillFeed, 1)
	assert.Equal(t, models.StationGrill, grillFeed[0].TargetStation)

	all, err := st.ListNotifications("")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
