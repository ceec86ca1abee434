package ws

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/hanson-travis/EclipseIndexAimTrainer/internal/game"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub
}

func TestHubBroadcastToSession(t *testing.T) {
	hub := startHub(t)
	a := &Client{sessionID: "s1", send: make(chan []byte, 4)}
	b := &Client{sessionID: "s1", send: make(chan []byte, 4)}
	other := &Client{sessionID: "s2", send: make(chan []byte, 4)}
	for _, c := range []*Client{a, b, other} {
		if !hub.attach(c) {
			t.Fatal("hub refused client")
		}
	}
	if got := hub.RoomSize("s1"); got != 2 {
		t.Fatalf("room size %d, want 2", got)
	}

	hub.BroadcastToSession("s1", map[string]string{"type": "ping"})
	for _, c := range []*Client{a, b} {
		select {
		case msg := <-c.send:
			if !strings.Contains(string(msg), `"ping"`) {
				t.Errorf("unexpected message %s", msg)
			}
		default:
			t.Errorf("client did not receive broadcast")
		}
	}
	select {
	case msg := <-other.send:
		t.Errorf("other session received %s", msg)
	default:
	}

	hub.detach(a)
	if _, ok := <-a.send; ok {
		t.Errorf("send channel should be closed after detach")
	}
	if got := hub.RoomSize("s1"); got != 1 {
		t.Errorf("room size after detach %d, want 1", got)
	}
}

func TestHubPublishAndRelay(t *testing.T) {
	hub := startHub(t)
	c := &Client{sessionID: "s1", send: make(chan []byte, 4)}
	hub.attach(c)

	hub.Publish(context.Background(), game.TrainerEvent{Type: game.EventLevelUp, SessionID: "s1", Level: 3})
	relayEvent(hub, []byte(`{"type":"rack_clear","session_id":"s1","level":3}`))
	relayEvent(hub, []byte(`not json`))

	for _, want := range []string{"level_up", "rack_clear"} {
		select {
		case msg := <-c.send:
			var decoded struct {
				Type  string            `json:"type"`
				Event game.TrainerEvent `json:"event"`
			}
			if err := json.Unmarshal(msg, &decoded); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if decoded.Type != "trainer_event" || string(decoded.Event.Type) != want {
				t.Errorf("got %s/%s, want trainer_event/%s", decoded.Type, decoded.Event.Type, want)
			}
		default:
			t.Fatalf("missing %s event", want)
		}
	}
}

type serverMessage struct {
	Type    string               `json:"type"`
	Message string               `json:"message"`
	Verdict game.Verdict         `json:"verdict"`
	Session game.SessionSnapshot `json:"session"`
}

func readMessage(t *testing.T, conn *websocket.Conn) serverMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg serverMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	return msg
}

func TestWebSocketTrainerFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mode, _ := game.ModeByName("8-ball")
	engine := game.NewEngine(mode, game.NewCurriculum(game.EIScale), game.NewRand(3))
	m := game.NewManager(engine, nil, nil, nil, time.Hour)
	hub := startHub(t)

	router := gin.New()
	router.GET("/sessions/:id/ws", HandleWebSocket(m, hub))
	srv := httptest.NewServer(router)
	defer srv.Close()

	snap, err := m.CreateSession(context.Background())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/sessions/" + snap.ID + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	state := readMessage(t, conn)
	if state.Type != "session_state" || state.Session.ID != snap.ID {
		t.Fatalf("first message: %+v", state)
	}

	target := state.Session.Target
	answer := map[string]interface{}{"ei": target.EI, "direction": target.Direction}
	if err := conn.WriteJSON(map[string]interface{}{"type": "submit_answer", "data": answer}); err != nil {
		t.Fatalf("write: %v", err)
	}
	result := readMessage(t, conn)
	if result.Type != "answer_result" || !result.Verdict.Correct {
		t.Fatalf("answer result: %+v", result)
	}

	if err := conn.WriteJSON(map[string]interface{}{"type": "submit_answer", "data": answer}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if msg := readMessage(t, conn); msg.Type != "error" {
		t.Errorf("second answer: got %s, want error", msg.Type)
	}

	if err := conn.WriteJSON(map[string]interface{}{"type": "new_round"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	round := readMessage(t, conn)
	if round.Type != "round_started" || round.Session.Progress.Ball != 2 {
		t.Errorf("new round: %+v", round)
	}

	if err := conn.WriteJSON(map[string]interface{}{"type": "juggle"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if msg := readMessage(t, conn); msg.Type != "error" {
		t.Errorf("unknown type: got %s, want error", msg.Type)
	}
}

func TestWebSocketUnknownSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mode, _ := game.ModeByName("9-ball")
	m := game.NewManager(game.NewEngine(mode, game.NewCurriculum(game.EIScale), nil), nil, nil, nil, time.Hour)

	router := gin.New()
	router.GET("/sessions/:id/ws", HandleWebSocket(m, startHub(t)))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/sessions/nope/ws", nil))
	if w.Code != 404 {
		t.Errorf("status %d, want 404", w.Code)
	}
}
