package notify_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/farmtrace/internal/domain"
	"github.com/feral-file/farmtrace/internal/mocks"
	"github.com/feral-file/farmtrace/internal/notify"
	"github.com/feral-file/farmtrace/internal/store"
	"github.com/feral-file/farmtrace/internal/store/schema"
)

func TestInbox_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	inbox := notify.NewInbox(st)
	ctx := context.Background()

	t.Run("unknown user", func(t *testing.T) {
		st.EXPECT().GetUserByID(ctx, "ghost").Return(nil, nil)

		_, err := inbox.List(ctx, "ghost", false, 10)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("unread only", func(t *testing.T) {
		st.EXPECT().GetUserByID(ctx, "user-a").Return(&schema.User{ID: "user-a"}, nil)
		st.EXPECT().ListNotifications(ctx, store.NotificationQueryFilter{UserID: "user-a", UnreadOnly: true, Limit: 10}).
			Return([]*schema.Notification{{ID: "n1", UserID: "user-a"}}, nil)

		notifications, err := inbox.List(ctx, "user-a", true, 10)
		require.NoError(t, err)
		assert.Len(t, notifications, 1)
	})

	t.Run("empty inbox is not nil", func(t *testing.T) {
		st.EXPECT().GetUserByID(ctx, "user-a").Return(&schema.User{ID: "user-a"}, nil)
		st.EXPECT().ListNotifications(ctx, gomock.Any()).Return(nil, nil)

		notifications, err := inbox.List(ctx, "user-a", false, 0)
		require.NoError(t, err)
		assert.NotNil(t, notifications)
		assert.Empty(t, notifications)
	})

	t.Run("store error", func(t *testing.T) {
		st.EXPECT().GetUserByID(ctx, "user-a").Return(nil, errors.New("timeout"))

		_, err := inbox.List(ctx, "user-a", false, 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get user")
	})
}

func TestInbox_MarkRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	st := mocks.NewMockStore(ctrl)
	inbox := notify.NewInbox(st)
	ctx := context.Background()

	st.EXPECT().MarkNotificationRead(ctx, "n1", "user-a").Return(true, nil)
	assert.NoError(t, inbox.MarkRead(ctx, "n1", "user-a"))

	// Another user's notification looks like a missing one
	st.EXPECT().MarkNotificationRead(ctx, "n1", "user-b").Return(false, nil)
	assert.ErrorIs(t, inbox.MarkRead(ctx, "n1", "user-b"), domain.ErrNotificationNotFound)

	st.EXPECT().MarkNotificationRead(ctx, "n2", "user-a").Return(false, errors.New("db down"))
	err := inbox.MarkRead(ctx, "n2", "user-a")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotificationNotFound)
}
