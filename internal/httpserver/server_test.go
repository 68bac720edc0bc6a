package httpserver

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlowery2/blockpuzzle/internal/puzzle"
	"github.com/mlowery2/blockpuzzle/internal/store"
)

const testSchema = `
CREATE TABLE users (
  id TEXT PRIMARY KEY,
  username TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  created_at TEXT NOT NULL,
  games_played INTEGER NOT NULL DEFAULT 0,
  lines_cleared INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE games (
  id TEXT PRIMARY KEY,
  user_id TEXT REFERENCES users(id),
  anonymous_id TEXT,
  score INTEGER NOT NULL DEFAULT 0,
  lines INTEGER NOT NULL DEFAULT 0,
  started_at TEXT NOT NULL,
  finished_at TEXT
);
CREATE TABLE best_scores (
  owner_id TEXT PRIMARY KEY,
  best INTEGER NOT NULL DEFAULT 0
);`

// newTestServer spins up the full router on an in-memory database.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	_, err = db.Exec(testSchema)
	require.NoError(t, err)

	s := New(store.NewMemoryStore(), db, Config{ClearDelay: time.Millisecond})
	ts := httptest.NewServer(s.Router())
	t.Cleanup(func() {
		ts.Close()
		_ = db.Close()
	})
	return ts
}

// newClient returns an HTTP client that keeps cookies, so the anonymous
// identity survives across requests.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func postJSON(t *testing.T, c *http.Client, url string, body any, out any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	res, err := c.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	defer res.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(res.Body).Decode(out))
	}
	return res
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	res, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestGuestGameFlow(t *testing.T) {
	ts := newTestServer(t)
	c := newClient(t)

	var created newGameRes
	res := postJSON(t, c, ts.URL+"/game/new", map[string]any{}, &created)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NotEmpty(t, created.GameID)
	require.False(t, created.State.Tray[0].Empty)
	placed := len(created.State.Tray[0].Cells)

	var snap puzzle.Snapshot
	postJSON(t, c, ts.URL+"/game/"+created.GameID+"/select", selectReq{Slot: 0}, &snap)
	assert.Equal(t, 0, snap.Selected)

	// Every catalog shape fits at the origin on an empty board.
	postJSON(t, c, ts.URL+"/game/"+created.GameID+"/drop", dropReq{Row: 0, Col: 0}, &snap)
	assert.Equal(t, placed, snap.Score)
	assert.True(t, snap.Tray[0].Empty)

	// State endpoint agrees.
	stateRes, err := c.Get(ts.URL + "/game/" + created.GameID + "/")
	require.NoError(t, err)
	defer stateRes.Body.Close()
	var got puzzle.Snapshot
	require.NoError(t, json.NewDecoder(stateRes.Body).Decode(&got))
	assert.Equal(t, snap.Score, got.Score)

	// Restart resets the board and score.
	postJSON(t, c, ts.URL+"/game/"+created.GameID+"/restart", map[string]any{}, &snap)
	assert.Equal(t, 0, snap.Score)
	assert.False(t, snap.GameOver)
}

func TestGameIsPrivateToItsOwner(t *testing.T) {
	ts := newTestServer(t)
	owner := newClient(t)
	stranger := newClient(t)

	var created newGameRes
	postJSON(t, owner, ts.URL+"/game/new", map[string]any{}, &created)

	res := postJSON(t, stranger, ts.URL+"/game/"+created.GameID+"/select", selectReq{Slot: 0}, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestOutOfRangeDropRejected(t *testing.T) {
	ts := newTestServer(t)
	c := newClient(t)

	var created newGameRes
	postJSON(t, c, ts.URL+"/game/new", map[string]any{}, &created)
	postJSON(t, c, ts.URL+"/game/"+created.GameID+"/select", selectReq{Slot: 0}, nil)

	res := postJSON(t, c, ts.URL+"/game/"+created.GameID+"/drop", dropReq{Row: puzzle.GridSize, Col: 0}, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestSignupLoginAndStats(t *testing.T) {
	ts := newTestServer(t)
	c := newClient(t)

	res := postJSON(t, c, ts.URL+"/auth/signup",
		map[string]string{"Username": "blockfan", "Password": "supersecret1"}, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	meRes, err := c.Get(ts.URL + "/auth/me")
	require.NoError(t, err)
	defer meRes.Body.Close()
	require.Equal(t, http.StatusOK, meRes.StatusCode)
	var me authUser
	require.NoError(t, json.NewDecoder(meRes.Body).Decode(&me))
	assert.Equal(t, "blockfan", me.Username)

	statsRes, err := c.Get(ts.URL + "/stats/me")
	require.NoError(t, err)
	defer statsRes.Body.Close()
	var stats map[string]any
	require.NoError(t, json.NewDecoder(statsRes.Body).Decode(&stats))
	assert.EqualValues(t, 0, stats["gamesPlayed"])
	assert.EqualValues(t, 0, stats["best"])

	// Logout kills the session.
	postJSON(t, c, ts.URL+"/auth/logout", map[string]any{}, nil)
	meRes2, err := c.Get(ts.URL + "/auth/me")
	require.NoError(t, err)
	defer meRes2.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, meRes2.StatusCode)
}

func TestWebsocketStreamsSnapshots(t *testing.T) {
	ts := newTestServer(t)
	c := newClient(t)

	var created newGameRes
	postJSON(t, c, ts.URL+"/game/new", map[string]any{}, &created)

	// Carry the anon cookie into the websocket handshake.
	u, err := url.Parse(ts.URL)
	require.NoError(t, err)
	header := http.Header{}
	for _, ck := range c.Jar.Cookies(u) {
		header.Add("Cookie", ck.String())
	}

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/game/" + created.GameID + "/ws"
	conn, res, err := websocket.DefaultDialer.Dial(wsURL, header)
	require.NoError(t, err)
	if res != nil {
		defer res.Body.Close()
	}
	defer conn.Close()

	// Priming snapshot arrives first.
	var snap puzzle.Snapshot
	require.NoError(t, conn.ReadJSON(&snap))
	assert.Equal(t, 0, snap.Score)

	// A state change is pushed.
	postJSON(t, c, ts.URL+"/game/"+created.GameID+"/select", selectReq{Slot: 0}, nil)
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	require.NoError(t, conn.ReadJSON(&snap))
	assert.Equal(t, 0, snap.Selected)
}
