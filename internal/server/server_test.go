package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/soar/padkeys/gamepad"
	"github.com/soar/padkeys/internal/guiio"
	"github.com/soar/padkeys/internal/hub"
)

const testIndex = `<!DOCTYPE html>
<html>
  <head>
    <title>  padkeys  </title>
    <style>
      body   {   margin : 0 ;  }
    </style>
  </head>
  <body>
    <p>   held   keys   </p>
  </body>
</html>
`

func newTestServer(t *testing.T) (*httptest.Server, chan guiio.Frame) {
	t.Helper()
	logger := zaptest.NewLogger(t).Sugar()
	// the hub goroutine outlives the test
	h := hub.NewHub(zap.NewNop().Sugar())
	go h.Run()
	frames := make(chan guiio.Frame)
	b := hub.NewBroadcaster(h, frames, logger)
	go b.Run()
	t.Cleanup(func() { close(frames) })

	fsys := fstest.MapFS{
		"index.html": {Data: []byte(testIndex)},
		"app.css":    {Data: []byte("body{}")},
	}
	s, err := New(h, b, fsys, ":0", logger)
	require.NoError(t, err)

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts, frames
}

func TestServesMinifiedIndex(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Less(t, len(body), len(testIndex))
	assert.Contains(t, string(body), "held keys")
	assert.NotContains(t, string(body), "   ")
}

func TestServesStaticFiles(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/app.css")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "body{}", string(body))
}

func TestNewFailsWithoutIndex(t *testing.T) {
	logger := zaptest.NewLogger(t).Sugar()
	_, err := New(hub.NewHub(logger), nil, fstest.MapFS{}, ":0", logger)
	assert.ErrorContains(t, err, "reading frontend index")
}

func TestWebSocketStream(t *testing.T) {
	ts, frames := newTestServer(t)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	read := func() hub.WSMessage {
		t.Helper()
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, data, err := conn.ReadMessage()
		require.NoError(t, err)
		var msg hub.WSMessage
		require.NoError(t, json.Unmarshal(data, &msg))
		return msg
	}

	initial := read()
	assert.Equal(t, hub.TypeFull, initial.Type)

	frames <- guiio.Frame{
		Events:      []guiio.KeyEvent{{Key: "GamepadFaceDown", Down: true}},
		Held:        []string{"GamepadFaceDown"},
		HasGamepad:  true,
		Controllers: []gamepad.ID{1},
	}
	assert.Equal(t, hub.TypeFull, read().Type)
	keys := read()
	assert.Equal(t, hub.TypeKeys, keys.Type)
	assert.Equal(t, []guiio.KeyEvent{{Key: "GamepadFaceDown", Down: true}}, keys.Events)

	require.NoError(t, conn.WriteJSON(hub.ClientMessage{Type: "sync"}))
	synced := read()
	assert.Equal(t, hub.TypeFull, synced.Type)
	require.NotNil(t, synced.Data)
	assert.Equal(t, []string{"GamepadFaceDown"}, synced.Data.Held)
}
