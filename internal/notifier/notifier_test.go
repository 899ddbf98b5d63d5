package notifier

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"haikubot/internal/metrics"
)

type post struct {
	channel, text, threadTS string
}

type fakeChat struct {
	names      map[string]string
	profileErr error
	postErr    error
	posts      []post
}

func (f *fakeChat) UserRealName(_ context.Context, userID string) (string, error) {
	if f.profileErr != nil {
		return "", f.profileErr
	}
	return f.names[userID], nil
}

func (f *fakeChat) PostMessage(_ context.Context, channel, text, threadTS string) error {
	f.posts = append(f.posts, post{channel, text, threadTS})
	return f.postErr
}

const pond = "An old silent pond \nA frog jumps into the pond \nSplash! Silence again \n"

func TestFormat(t *testing.T) {
	got := Format(pond, "Matsuo Basho")
	want := ">An old silent pond \n>A frog jumps into the pond \n>Splash! Silence again\n -Matsuo Basho"
	assert.Equal(t, want, got)
}

func TestNotify(t *testing.T) {
	chat := &fakeChat{names: map[string]string{"U1": "Matsuo Basho"}}
	n := New(chat, nil)

	text, err := n.Notify(context.Background(), pond, "U1", "C1", "1700000000.000100")
	require.NoError(t, err)
	assert.Equal(t, Format(pond, "Matsuo Basho"), text)
	require.Len(t, chat.posts, 1)
	assert.Equal(t, post{"C1", text, "1700000000.000100"}, chat.posts[0])
}

func TestNotifyProfileFailure(t *testing.T) {
	chat := &fakeChat{profileErr: errors.New("user_not_found")}
	_, err := New(chat, nil).Notify(context.Background(), pond, "U1", "C1", "1")
	require.Error(t, err)
	assert.Empty(t, chat.posts, "nothing is posted without an author")
}

func TestNotifyPostFailureIsNotRetried(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.New(reg, nil)
	chat := &fakeChat{names: map[string]string{"U1": "Basho"}, postErr: errors.New("channel_not_found")}

	text, err := New(chat, rec).Notify(context.Background(), pond, "U1", "C1", "1")
	require.NoError(t, err)
	assert.NotEmpty(t, text)
	assert.Len(t, chat.posts, 1)

	count, err := testutil.GatherAndCount(reg, "haikubot_notifications_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
