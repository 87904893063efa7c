package stream

import (
	"bytes"
	"context"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ziadkadry99/inkwell/internal/demo"
	"github.com/ziadkadry99/inkwell/internal/typewriter"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// fakeBackend answers each generate request with the given frames and then
// runs finish on the connection.
func fakeBackend(t *testing.T, frames []string, finish func(*websocket.Conn)) (string, chan demo.GenerateRequest) {
	t.Helper()
	received := make(chan demo.GenerateRequest, 1)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		defer conn.Close()

		var req demo.GenerateRequest
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		received <- req

		for _, f := range frames {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(f)); err != nil {
				return
			}
		}
		finish(conn)
	}))
	t.Cleanup(server.Close)

	return "ws" + strings.TrimPrefix(server.URL, "http"), received
}

func closeNormally(conn *websocket.Conn) {
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "idle"))
	// Wait for the client's close reply before the handler returns.
	_, _, _ = conn.ReadMessage()
}

func TestStreamEndToEnd(t *testing.T) {
	frames := []string{
		`{"data":{"type":"token","positionIndex":0,"generatedToken":"Hello"}}`,
		`{"data":{"type":"token","positionIndex":1,"generatedToken":" Jane"}}`,
		`{"data":{"type":"end"}}`,
	}
	url, received := fakeBackend(t, frames, closeNormally)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := Dial(ctx, url, Options{})
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer client.Close()

	sched := typewriter.NewScheduler(typewriter.WithDefaultDelay(time.Millisecond))
	defer sched.Close()
	display := typewriter.NewBuffer("")
	fast := demo.Delays{Greeting: time.Millisecond, Booting: time.Millisecond, Token: time.Millisecond, Notice: time.Millisecond}
	ctrl := demo.NewController(sched, display, client,
		demo.WithDelays(fast),
		demo.WithLogger(log.New(&bytes.Buffer{}, "", 0)),
	)

	if err := ctrl.Submit(ctx, "https://www.linkedin.com/in/jane-doe"); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	select {
	case req := <-received:
		if req.Action != demo.ActionGenerateChat || req.ProfileURL != "https://www.linkedin.com/in/jane-doe" {
			t.Errorf("backend received %+v", req)
		}
	case <-ctx.Done():
		t.Fatal("backend never received the request")
	}

	if err := client.Listen(ctx, ctrl.HandleMessage); err != nil {
		t.Fatalf("Listen: %v", err)
	}
	ctrl.Closed()

	if err := sched.Wait(ctx); err != nil {
		t.Fatal(err)
	}
	want := "Hello Jane" + demo.DefaultMessages().IdleTimeout
	if got := display.Text(); got != want {
		t.Errorf("display = %q, want %q", got, want)
	}
	if !ctrl.Trigger().Enabled() {
		t.Error("trigger should be enabled after end")
	}
}

func TestListenAbnormalClose(t *testing.T) {
	url, _ := fakeBackend(t, nil, func(conn *websocket.Conn) {
		conn.UnderlyingConn().Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := Dial(ctx, url, Options{})
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer client.Close()

	if err := client.Send(ctx, demo.GenerateRequest{Action: demo.ActionGenerateChat, ProfileURL: "x"}); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if err := client.Listen(ctx, func([]byte) {}); err == nil {
		t.Fatal("expected an error for a dropped connection")
	}
}

func TestListenStopsOnContextCancel(t *testing.T) {
	block := make(chan struct{})
	url, _ := fakeBackend(t, nil, func(*websocket.Conn) { <-block })
	defer close(block)

	client, err := Dial(context.Background(), url, Options{})
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer client.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	if err := client.Listen(ctx, func([]byte) {}); !errors.Is(err, context.Canceled) {
		t.Errorf("Listen error = %v, want context.Canceled", err)
	}
}

func TestDialFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	_, err := Dial(context.Background(), "ws"+strings.TrimPrefix(server.URL, "http"), Options{HandshakeTimeout: time.Second})
	if err == nil {
		t.Fatal("expected dial error")
	}
	if !strings.Contains(err.Error(), "status 404") {
		t.Errorf("error = %v, want status in message", err)
	}
}
