package slack

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSlack struct {
	auth     []string
	posted   []postMessageRequest
	profiles map[string]string
	postErr  string
}

func (f *fakeSlack) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users.profile.get", func(w http.ResponseWriter, r *http.Request) {
		f.auth = append(f.auth, r.Header.Get("Authorization"))
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		name, ok := f.profiles[r.PostForm.Get("user")]
		if !ok {
			w.Write([]byte(`{"ok":false,"error":"user_not_found"}`))
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"ok": true, "profile": map[string]string{"real_name": name}})
	})
	mux.HandleFunc("/api/chat.postMessage", func(w http.ResponseWriter, r *http.Request) {
		f.auth = append(f.auth, r.Header.Get("Authorization"))
		var req postMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if f.postErr != "" {
			w.Write([]byte(`{"ok":false,"error":"` + f.postErr + `"}`))
			return
		}
		f.posted = append(f.posted, req)
		w.Write([]byte(`{"ok":true}`))
	})
	return mux
}

func TestClientUserRealName(t *testing.T) {
	fake := &fakeSlack{profiles: map[string]string{"U1": "Matsuo Basho"}}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c := NewClient(context.Background(), srv.URL+"/api", "xoxb-test", time.Second)

	name, err := c.UserRealName(context.Background(), "U1")
	require.NoError(t, err)
	assert.Equal(t, "Matsuo Basho", name)
	assert.Equal(t, []string{"Bearer xoxb-test"}, fake.auth)

	_, err = c.UserRealName(context.Background(), "U404")
	assert.True(t, errors.Is(err, ErrAPI))
}

func TestClientPostMessage(t *testing.T) {
	fake := &fakeSlack{}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	c := NewClient(context.Background(), srv.URL+"/api/", "xoxb-test", time.Second)

	require.NoError(t, c.PostMessage(context.Background(), "C1", ">An old silent pond", "1700000000.000100"))
	require.Len(t, fake.posted, 1)
	assert.Equal(t, postMessageRequest{Channel: "C1", Text: ">An old silent pond", ThreadTS: "1700000000.000100"}, fake.posted[0])

	fake.postErr = "channel_not_found"
	err := c.PostMessage(context.Background(), "C404", "text", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel_not_found")
}

func TestClientHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(context.Background(), srv.URL, "xoxb-test", time.Second)
	_, err := c.UserRealName(context.Background(), "U1")
	assert.True(t, errors.Is(err, ErrAPI))
}
