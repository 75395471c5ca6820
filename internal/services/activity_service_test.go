package services

import (
	"context"
	"testing"

	"github.com/yoockh/careercounsel/internal/models"
)

func TestChatHistoryLimits(t *testing.T) {
	users := newFakeUserRepo()
	for i := 0; i < 250; i++ {
		users.chats = append(users.chats, models.ChatMessage{UserID: 7, Message: "hi"})
	}
	activity := NewActivityRecorder(users, testLog())
	ctx := context.Background()

	cases := []struct {
		limit, want int
	}{
		{0, 50},
		{-3, 50},
		{20, 20},
		{200, 200},
		{500, 200},
	}
	for _, tc := range cases {
		rows, err := activity.ChatHistory(ctx, 7, tc.limit)
		if err != nil {
			t.Fatalf("limit %d: %v", tc.limit, err)
		}
		if len(rows) != tc.want {
			t.Fatalf("limit %d: got %d rows want %d", tc.limit, len(rows), tc.want)
		}
	}
}
