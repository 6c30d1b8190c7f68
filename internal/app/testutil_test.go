package app

import (
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/botconsole/internal/api"
	"github.com/zhubert/botconsole/internal/config"
	"github.com/zhubert/botconsole/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)
	os.Exit(m.Run())
}

// cmdWait bounds how long runCmd collects messages. It lets HTTP round trips
// and short reply delays finish while typing, flash and poll ticks do not.
const cmdWait = 150 * time.Millisecond

// testBackend is an httptest server that records every request it serves
type testBackend struct {
	mu     sync.Mutex
	calls  []string // "METHOD escaped-path"
	routes map[string]http.HandlerFunc
}

func newTestBackend(t *testing.T, routes map[string]http.HandlerFunc) (*testBackend, *api.Client) {
	t.Helper()
	tb := &testBackend{routes: routes}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.EscapedPath()
		tb.mu.Lock()
		tb.calls = append(tb.calls, key)
		tb.mu.Unlock()

		if h, ok := tb.routes[key]; ok {
			h(w, r)
			return
		}
		http.Error(w, `{"detail":"not found"}`, http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)
	return tb, api.NewClient(srv.URL, 0)
}

// count returns how many requests matched key
func (tb *testBackend) count(key string) int {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	n := 0
	for _, c := range tb.calls {
		if c == key {
			n++
		}
	}
	return n
}

func (tb *testBackend) total() int {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	return len(tb.calls)
}

func jsonHandler(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}

// testModel creates a sized model against the given routes
func testModel(t *testing.T, routes map[string]http.HandlerFunc) (*Model, *testBackend) {
	t.Helper()
	tb, client := newTestBackend(t, routes)
	cfg := config.Default()
	cfg.SetAPIURL(client.BaseURL())
	m := New(cfg, client, "test")
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, tb
}

// runCmd executes cmd, expanding batches, and returns every message produced
// within cmdWait.
func runCmd(cmd tea.Cmd) []tea.Msg {
	ch := make(chan tea.Msg, 64)
	var launch func(c tea.Cmd)
	launch = func(c tea.Cmd) {
		if c == nil {
			return
		}
		go func() {
			msg := c()
			if batch, ok := msg.(tea.BatchMsg); ok {
				for _, sub := range batch {
					launch(sub)
				}
				return
			}
			if msg != nil {
				ch <- msg
			}
		}()
	}
	launch(cmd)

	deadline := time.After(cmdWait)
	var msgs []tea.Msg
	for {
		select {
		case msg := <-ch:
			msgs = append(msgs, msg)
		case <-deadline:
			return msgs
		}
	}
}

// findMsg returns the first message of type T
func findMsg[T any](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// mustFind runs cmd and returns the first message of type T, failing the test if none arrives
func mustFind[T any](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	msg, ok := findMsg[T](runCmd(cmd))
	if !ok {
		var zero T
		t.Fatalf("expected a %T from command", zero)
	}
	return msg
}

// Key helpers
func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

var (
	enterKey = tea.KeyPressMsg{Code: tea.KeyEnter}
	escKey   = tea.KeyPressMsg{Code: tea.KeyEscape}
	tabKey   = tea.KeyPressMsg{Code: tea.KeyTab}
	downKey  = tea.KeyPressMsg{Code: tea.KeyDown}
	rightKey = tea.KeyPressMsg{Code: tea.KeyRight}
)

// update sends msg and returns the command
func update(m *Model, msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

const sampleTriggersBody = `{
	"triggers": [
		{"name": "pricing", "keywords": ["pricing", "catalog"], "type": "image", "path": "https://cdn/p.png"},
		{"name": "lunch menu", "keywords": ["menu"], "type": "image", "path": "https://cdn/m.png"},
		{"name": "greeting", "keywords": ["hello", "hi"], "type": "audio", "path": "https://cdn/g.mp3"}
	],
	"typing_delay": {"base_seconds": 1, "per_word_seconds": 0.15, "max_seconds": 5}
}`
