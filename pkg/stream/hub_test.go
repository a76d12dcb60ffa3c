package stream

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/chazu/strata/pkg/kernel"
)

func quietHub() *Hub { return NewHub(log.New(io.Discard, "", 0)) }

func triangle() *kernel.Mesh {
	return &kernel.Mesh{
		Vertices: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Colors:   []float32{0.5, 0.25, 0.1, 0.5, 0.25, 0.1, 0.5, 0.25, 0.1},
		Normals:  []float32{0, 0, 1, 0, 0, 1, 0, 0, 1},
		Indices:  []uint32{0, 1, 2},
	}
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMesh(t *testing.T, conn *websocket.Conn) MeshData {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg MeshData
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	return msg
}

func waitClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for h.Clients() != n {
		if time.Now().After(deadline) {
			t.Fatalf("Clients() = %d, want %d", h.Clients(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHubAssemblesUpload(t *testing.T) {
	h := quietHub()
	if h.Last() != nil {
		t.Fatal("Last() before any upload is not nil")
	}
	if err := kernel.Upload(h, triangle()); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	last := h.Last()
	if last == nil {
		t.Fatal("Last() = nil after upload")
	}
	if last.Type != "mesh" || last.Sequence != 1 {
		t.Errorf("Type, Sequence = %q, %d, want mesh, 1", last.Type, last.Sequence)
	}
	if len(last.Vertices) != 9 || len(last.Colors) != 9 || len(last.Indices) != 3 {
		t.Errorf("last = %+v", *last)
	}

	kernel.Upload(h, triangle())
	if h.Last().Sequence != 2 {
		t.Errorf("Sequence = %d, want 2", h.Last().Sequence)
	}
}

func TestHubLateJoiner(t *testing.T) {
	h := quietHub()
	srv := httptest.NewServer(h)
	defer srv.Close()
	defer h.Close()

	kernel.Upload(h, triangle())
	conn := dial(t, srv)
	msg := readMesh(t, conn)
	if msg.Sequence != 1 || len(msg.Indices) != 3 {
		t.Errorf("late joiner got %+v", msg)
	}
}

func TestHubBroadcast(t *testing.T) {
	h := quietHub()
	srv := httptest.NewServer(h)
	defer srv.Close()
	defer h.Close()

	a := dial(t, srv)
	b := dial(t, srv)
	waitClients(t, h, 2)

	kernel.Upload(h, triangle())
	for name, conn := range map[string]*websocket.Conn{"a": a, "b": b} {
		msg := readMesh(t, conn)
		if msg.Sequence != 1 || msg.Normals[2] != 1 {
			t.Errorf("client %s got %+v", name, msg)
		}
	}
}

func TestHubDropsClosedClients(t *testing.T) {
	h := quietHub()
	srv := httptest.NewServer(h)
	defer srv.Close()

	conn := dial(t, srv)
	waitClients(t, h, 1)
	conn.Close()
	waitClients(t, h, 0)
}

func TestMeshHandler(t *testing.T) {
	h := quietHub()

	rec := httptest.NewRecorder()
	h.MeshHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mesh", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status before upload = %d, want 404", rec.Code)
	}

	kernel.Upload(h, triangle())
	rec = httptest.NewRecorder()
	h.MeshHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mesh", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var msg MeshData
	if err := json.NewDecoder(rec.Body).Decode(&msg); err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if msg.Sequence != 1 || len(msg.Vertices) != 9 {
		t.Errorf("got %+v", msg)
	}
}

func TestUpgradeFailure(t *testing.T) {
	h := quietHub()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("plain GET status = %d, want 400", rec.Code)
	}
	if h.Clients() != 0 {
		t.Errorf("Clients() = %d, want 0", h.Clients())
	}
}

func TestHubJoinerSequenceNeverGoesBack(t *testing.T) {
	h := quietHub()
	srv := httptest.NewServer(h)
	defer srv.Close()
	defer h.Close()

	const uploads = 50
	kernel.Upload(h, triangle())
	go func() {
		for i := 1; i < uploads; i++ {
			kernel.Upload(h, triangle())
		}
	}()

	conn := dial(t, srv)
	var prev uint64
	for prev < uploads {
		msg := readMesh(t, conn)
		if msg.Sequence <= prev {
			t.Fatalf("got sequence %d after %d", msg.Sequence, prev)
		}
		prev = msg.Sequence
	}
}

func TestHubDropsStalledClient(t *testing.T) {
	h := quietHub()
	h.writeTimeout = 100 * time.Millisecond
	srv := httptest.NewServer(h)
	defer srv.Close()
	defer h.Close()

	// Never read from it, so the socket buffers fill up.
	dial(t, srv)
	waitClients(t, h, 1)

	const verts = 3 << 16
	big := &kernel.Mesh{
		Vertices: make([]float32, verts*3),
		Colors:   make([]float32, verts*3),
		Normals:  make([]float32, verts*3),
		Indices:  make([]uint32, verts),
	}
	for i := range big.Vertices {
		big.Vertices[i] = 0.123456
		big.Colors[i] = 0.5
		big.Normals[i] = 0.577
	}
	for i := range big.Indices {
		big.Indices[i] = uint32(i)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100 && h.Clients() > 0; i++ {
			kernel.Upload(h, big)
		}
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("broadcast blocked on a client that stopped reading")
	}
	if h.Clients() != 0 {
		t.Errorf("Clients() = %d, want the stalled client dropped", h.Clients())
	}
}
