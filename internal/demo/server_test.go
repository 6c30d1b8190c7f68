package demo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhubert/botconsole/internal/api"
	"github.com/zhubert/botconsole/internal/bot"
	"github.com/zhubert/botconsole/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func splitWords(s string) []string {
	return strings.Fields(s)
}

func serve(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, *Store) {
	t.Helper()
	store := NewStore()
	return serveStore(t, store, method, path, body), store
}

func serveStore(t *testing.T, store *Store, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	NewServer(store).Handler().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestServer_Health(t *testing.T) {
	w, _ := serve(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])
}

func TestServer_Chat(t *testing.T) {
	w, store := serve(t, http.MethodPost, "/chat", `{"user_id":"u1","message":"show me the catalog"}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "Sure! Sending our pricing image now.", body["response"])
	assert.Greater(t, body["typing_delay"], 0.0)
	assert.Equal(t, 1, store.Stats().ActiveSessions)
}

func TestServer_ChatMissingFields(t *testing.T) {
	w, store := serve(t, http.MethodPost, "/chat", `{"user_id":"u1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["detail"], "required")
	assert.Equal(t, 0, store.Stats().TotalConversations)
}

func TestServer_Triggers(t *testing.T) {
	w, _ := serve(t, http.MethodGet, "/triggers", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Triggers    []bot.Trigger     `json:"triggers"`
		TypingDelay bot.DelaySettings `json:"typing_delay"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Triggers, 2)
	assert.Equal(t, bot.DefaultMaxSeconds, resp.TypingDelay.MaxSeconds)
}

func TestServer_AddTrigger(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantDetail string
	}{
		{"valid", `{"name":"menu","keywords":["menu"," food "],"type":"image","path":"https://x/m.png"}`, http.StatusOK, ""},
		{"duplicate", `{"name":"pricing","keywords":["p"],"type":"image","path":"https://x/p.png"}`, http.StatusConflict, "trigger already exists"},
		{"missing name", `{"keywords":["menu"],"type":"image","path":"https://x/m.png"}`, http.StatusBadRequest, "name is required"},
		{"bad type", `{"name":"menu","keywords":["menu"],"type":"video","path":"https://x/m.png"}`, http.StatusBadRequest, "type must be image or audio"},
		{"not json", `{`, http.StatusBadRequest, "invalid trigger"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, store := serve(t, http.MethodPost, "/triggers/add", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantDetail != "" {
				assert.Contains(t, decode(t, w)["detail"], tt.wantDetail)
				assert.Len(t, store.Triggers(), 2)
				return
			}
			triggers := store.Triggers()
			require.Len(t, triggers, 3)
			assert.Equal(t, []string{"menu", "food"}, triggers[2].Keywords)
		})
	}
}

func TestServer_DeleteTrigger(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.AddTrigger(bot.Trigger{Name: "lunch menu", Keywords: []string{"lunch"}, Type: bot.KindImage, Path: "p"}))

	w := serveStore(t, store, http.MethodDelete, "/triggers/lunch%20menu", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, store.Triggers(), 2)

	w = serveStore(t, store, http.MethodDelete, "/triggers/lunch%20menu", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "trigger not found", decode(t, w)["detail"])
}

func TestServer_UpdateDelay(t *testing.T) {
	w, store := serve(t, http.MethodPut, "/settings/delay", `{"base_seconds":2,"per_word_seconds":0.2,"max_seconds":8}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, bot.DelaySettings{BaseSeconds: 2, PerWordSeconds: 0.2, MaxSeconds: 8}, store.Delay())

	w = serveStore(t, store, http.MethodPut, "/settings/delay", `{"base_seconds":-1,"per_word_seconds":0.2,"max_seconds":8}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 2.0, store.Delay().BaseSeconds)
}

// The console's own client must be able to drive every route.
func TestServer_WithClient(t *testing.T) {
	run, err := NewServer(NewStore()).Start("127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		run.Shutdown(ctx)
	})

	ctx := context.Background()
	client := api.NewClient(run.URL, 2*time.Second)

	resp, err := client.Chat(ctx, "u1", "hi")
	require.NoError(t, err)
	assert.Contains(t, resp.Response, "greeting")
	require.NotNil(t, resp.TypingDelay)

	stats, err := client.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalConversations)

	require.NoError(t, client.AddTrigger(ctx, bot.Trigger{Name: "faq", Keywords: []string{"faq"}, Type: bot.KindAudio, Path: "a.mp3"}))
	err = client.AddTrigger(ctx, bot.Trigger{Name: "faq", Keywords: []string{"faq"}, Type: bot.KindAudio, Path: "a.mp3"})
	require.Error(t, err)
	assert.Equal(t, "trigger already exists", api.Detail(err))

	require.NoError(t, client.DeleteTrigger(ctx, "faq"))
	require.NoError(t, client.UpdateDelay(ctx, bot.DelaySettings{BaseSeconds: 1, PerWordSeconds: 0.1, MaxSeconds: 3}))

	list, err := client.Triggers(ctx)
	require.NoError(t, err)
	assert.Len(t, list.Triggers, 2)
	assert.Equal(t, 3.0, list.TypingDelay.MaxSeconds)
}
