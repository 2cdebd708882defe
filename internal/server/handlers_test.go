package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
)

type testClient struct {
	t      *testing.T
	base   string
	client *http.Client
}

func newTestClient(t *testing.T, ts *httptest.Server) *testClient {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to build cookie jar: %v", err)
	}
	return &testClient{
		t:      t,
		base:   ts.URL,
		client: &http.Client{Jar: jar},
	}
}

func (c *testClient) post(path string, body any, dest any) int {
	c.t.Helper()
	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			c.t.Fatalf("failed to encode request: %v", err)
		}
	}
	resp, err := c.client.Post(c.base+path, "application/json", &payload)
	if err != nil {
		c.t.Fatalf("POST %s failed: %v", path, err)
	}
	defer resp.Body.Close()
	if dest != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			c.t.Fatalf("failed to decode response from %s: %v", path, err)
		}
	}
	return resp.StatusCode
}

func (c *testClient) get(path string, dest any) int {
	c.t.Helper()
	resp, err := c.client.Get(c.base + path)
	if err != nil {
		c.t.Fatalf("GET %s failed: %v", path, err)
	}
	defer resp.Body.Close()
	if dest != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			c.t.Fatalf("failed to decode response from %s: %v", path, err)
		}
	}
	return resp.StatusCode
}

func (c *testClient) signIn(name string) {
	c.t.Helper()
	var resp map[string]string
	if status := c.post("/api/signin", map[string]string{"name": name}, &resp); status != http.StatusOK {
		c.t.Fatalf("sign in failed with status %d", status)
	}
	if resp["user_id"] == "" {
		c.t.Fatal("sign in returned no user id")
	}
}

func TestCreateGameRequiresSignIn(t *testing.T) {
	srv, _ := newTestApp(t)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	client := newTestClient(t, ts)
	if status := client.post("/api/games", nil, nil); status != http.StatusUnauthorized {
		t.Fatalf("expected 401 without sign in, got %d", status)
	}
}

func TestFullGameFlowOverHTTP(t *testing.T) {
	srv, gen := newTestApp(t)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	host := newTestClient(t, ts)
	host.signIn("Ada")

	var created map[string]string
	if status := host.post("/api/games", nil, &created); status != http.StatusCreated {
		t.Fatalf("expected 201 creating game, got %d", status)
	}
	gameID := created["game_id"]
	if gameID == "" {
		t.Fatal("no game id returned")
	}
	gamePath := "/api/games/" + gameID

	var view GameView
	if status := host.post(gamePath+"/theme", map[string]string{"theme": "Animals"}, &view); status != http.StatusOK {
		t.Fatalf("expected 200 setting theme, got %d", status)
	}
	if view.Theme != "Animals" || !view.IsHost {
		t.Fatalf("unexpected host view after theme: %#v", view)
	}

	gen.Answers = []string{"Tiger"}
	if status := host.post(gamePath+"/rounds", nil, &view); status != http.StatusOK {
		t.Fatalf("expected 200 starting round, got %d", status)
	}
	if view.Round != 1 || view.Image == "" {
		t.Fatalf("unexpected view after round start: %#v", view)
	}
	if view.Answer != "" {
		t.Fatalf("unrevealed answer leaked to host view: %q", view.Answer)
	}

	player := newTestClient(t, ts)
	player.signIn("Bob")
	if status := player.post(gamePath+"/guesses", map[string]string{"guess": "lion"}, &view); status != http.StatusOK {
		t.Fatalf("expected 200 for wrong guess, got %d", status)
	}
	if view.Answer != "" || view.Winner != "" {
		t.Fatalf("wrong guess should not resolve the round: %#v", view)
	}

	if status := player.post(gamePath+"/guesses", map[string]string{"guess": "TIGER"}, &view); status != http.StatusOK {
		t.Fatalf("expected 200 for winning guess, got %d", status)
	}
	if view.Answer != "Tiger" {
		t.Fatalf("expected revealed answer Tiger, got %q", view.Answer)
	}
	if view.Winner != "Bob" {
		t.Fatalf("expected winner Bob, got %q", view.Winner)
	}
	if len(view.Scores) != 1 || view.Scores[0].Score != 1 {
		t.Fatalf("expected one point for Bob, got %v", view.Scores)
	}

	// Round resolved: the archived image shows up in the gallery feed.
	var page GalleryPage
	if status := player.get("/api/images?limit=6", &page); status != http.StatusOK {
		t.Fatalf("expected 200 from gallery, got %d", status)
	}
	if len(page.Images) != 1 || page.Images[0].Answer != "Tiger" {
		t.Fatalf("expected one archived Tiger image, got %#v", page.Images)
	}

	resp, err := player.client.Get(ts.URL + page.Images[0].URL)
	if err != nil {
		t.Fatalf("failed to fetch blob: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 fetching blob, got %d", resp.StatusCode)
	}
}

func TestGetGameUnknownIDIs404(t *testing.T) {
	srv, _ := newTestApp(t)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	client := newTestClient(t, ts)
	client.signIn("Ada")
	if status := client.get("/api/games/no-such-game", nil); status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", status)
	}
}

func TestGuessValidationOverHTTP(t *testing.T) {
	srv, gen := newTestApp(t)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	host := newTestClient(t, ts)
	host.signIn("Ada")
	var created map[string]string
	host.post("/api/games", nil, &created)
	gamePath := "/api/games/" + created["game_id"]
	gen.Answers = []string{"Tiger"}
	host.post(gamePath+"/rounds", nil, nil)

	if status := host.post(gamePath+"/guesses", map[string]string{"guess": ""}, nil); status != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty guess, got %d", status)
	}
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'a'
	}
	if status := host.post(gamePath+"/guesses", map[string]string{"guess": string(long)}, nil); status != http.StatusBadRequest {
		t.Fatalf("expected 400 for oversized guess, got %d", status)
	}
}

func TestGalleryPaginationOverHTTP(t *testing.T) {
	srv, _ := newTestApp(t)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	seedArchive(t, srv, 7)
	client := newTestClient(t, ts)

	var first GalleryPage
	if status := client.get("/api/images?limit=6", &first); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if len(first.Images) != 6 || !first.HasMore || first.NextCursor == "" {
		t.Fatalf("unexpected first page: %#v", first)
	}

	var second GalleryPage
	path := fmt.Sprintf("/api/images?limit=6&cursor=%s", first.NextCursor)
	if status := client.get(path, &second); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if len(second.Images) != 1 || second.HasMore {
		t.Fatalf("unexpected second page: %#v", second)
	}
}
