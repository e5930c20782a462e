package codebolt

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/codeboltai/codebolt-go/agent"
	"github.com/codeboltai/codebolt-go/config"
	"github.com/codeboltai/codebolt-go/notifications"
	"github.com/codeboltai/codebolt-go/telemetry"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHost answers fsEvent/readFile requests and records every frame.
func fakeHost(t *testing.T, frames chan<- map[string]any) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer ws.Close()
		for {
			var msg map[string]any
			if err := ws.ReadJSON(&msg); err != nil {
				return
			}
			frames <- msg
			if msg["type"] == "fsEvent" && msg["action"] == "readFile" {
				_ = ws.WriteJSON(map[string]any{
					"toolUseId": msg["toolUseId"],
					"type":      "readFileResponse",
					"success":   true,
					"content":   "hello from host",
				})
			}
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(url string) *config.Config {
	cfg := config.Defaults()
	cfg.WebSocket.URL = url
	cfg.WebSocket.ResponseTimeout = 5
	cfg.WebSocket.DialAttempts = 1
	cfg.Providers.OpenAI.APIKey = "sk-test"
	return &cfg
}

func TestConnect_ModuleRoundTrip(t *testing.T) {
	frames := make(chan map[string]any, 8)
	srv := fakeHost(t, frames)
	metrics := telemetry.NewMetrics(prometheus.NewRegistry())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, err := Connect(ctx, testConfig("ws"+strings.TrimPrefix(srv.URL, "http")), zerolog.Nop(), WithMetrics(metrics))
	require.NoError(t, err)
	defer c.Close() //nolint:errcheck

	content, err := c.FS.ReadFile(ctx, "main.go")
	require.NoError(t, err)
	assert.Equal(t, "hello from host", content)

	sent := <-frames
	assert.Equal(t, "fsEvent", sent["type"])
	assert.Equal(t, "main.go", sent["data"].(map[string]any)["filePath"])

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.WSMessagesTotal.WithLabelValues("received", "readFileResponse")))
	assert.Equal(t, 0, c.Messages.Pending())
}

func TestConnect_NotificationAndTool(t *testing.T) {
	frames := make(chan map[string]any, 8)
	srv := fakeHost(t, frames)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, err := Connect(ctx, testConfig("ws"+strings.TrimPrefix(srv.URL, "http")), zerolog.Nop())
	require.NoError(t, err)
	defer c.Close() //nolint:errcheck

	require.NoError(t, c.Notify.FS.ReadFileRequest(notifications.FilePath{FilePath: "a.go"}, ""))
	note := <-frames
	assert.Equal(t, "fsnotify", note["type"])
	assert.Equal(t, "readFileRequest", note["action"])
	assert.NotEmpty(t, note["toolUseId"])

	res := c.Tools.Handle(ctx, "read_file", json.RawMessage(`{"path":"b.go"}`))
	require.Nil(t, res.Error)
	assert.Equal(t, "hello from host", res.LLMContent)
}

func TestConnect_Close(t *testing.T) {
	frames := make(chan map[string]any, 8)
	srv := fakeHost(t, frames)

	c, err := Connect(context.Background(), testConfig("ws"+strings.TrimPrefix(srv.URL, "http")), zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, c.Close())

	select {
	case <-c.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("read loop did not stop")
	}
}

func TestConnect_DialFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := Connect(ctx, testConfig("ws://127.0.0.1:1/codebolt"), zerolog.Nop())
	assert.Error(t, err)
}

func TestClient_Provider(t *testing.T) {
	frames := make(chan map[string]any, 8)
	srv := fakeHost(t, frames)

	c, err := Connect(context.Background(), testConfig("ws"+strings.TrimPrefix(srv.URL, "http")), zerolog.Nop(),
		WithMetrics(telemetry.NewMetrics(prometheus.NewRegistry())))
	require.NoError(t, err)
	defer c.Close() //nolint:errcheck

	p, err := c.Provider("")
	require.NoError(t, err)
	assert.Equal(t, "openai", p.Name())

	_, err = c.Provider("nope")
	assert.Error(t, err)
}

func TestClient_Runner(t *testing.T) {
	frames := make(chan map[string]any, 8)
	srv := fakeHost(t, frames)

	c, err := Connect(context.Background(), testConfig("ws"+strings.TrimPrefix(srv.URL, "http")), zerolog.Nop())
	require.NoError(t, err)
	defer c.Close() //nolint:errcheck

	r, err := c.Runner("", agent.NewAgent("a1", "Coder"))
	require.NoError(t, err)
	assert.NotNil(t, r)

	_, err = c.Runner("nope", agent.NewAgent("a1", "Coder"))
	assert.Error(t, err)
}
