package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"birds-api/internal/router"
)

type birdBody struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Likes   int    `json:"likes"`
}

func TestHTTP_BirdLifecycle(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) Crear sin likes => likes arranca en 0
	b := createBird(t, ts.URL, map[string]any{
		"name":    "Robin",
		"species": "Turdus migratorius",
	})
	if b.Likes != 0 {
		t.Fatalf("expected likes=0 after create, got %d", b.Likes)
	}

	// 2) Dos likes seguidos => 1 y 2
	{
		st, body := doReq(t, ts.URL, "PATCH", "/birds/"+b.ID+"/like", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 like, got %d body=%s", st, string(body))
		}
		var got birdBody
		_ = json.Unmarshal(body, &got)
		if got.Likes != 1 {
			t.Fatalf("expected likes=1 after first like, got %d", got.Likes)
		}
	}
	{
		st, body := doReq(t, ts.URL, "PATCH", "/birds/"+b.ID+"/like", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 like, got %d body=%s", st, string(body))
		}
		var got birdBody
		_ = json.Unmarshal(body, &got)
		if got.Likes != 2 {
			t.Fatalf("expected likes=2 after second like, got %d", got.Likes)
		}
	}

	// 3) GET refleja los likes acumulados
	{
		st, body := doReq(t, ts.URL, "GET", "/birds/"+b.ID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get, got %d body=%s", st, string(body))
		}
		var got birdBody
		_ = json.Unmarshal(body, &got)
		if got.Likes != 2 {
			t.Fatalf("expected likes=2 on get, got %d", got.Likes)
		}
	}

	// 4) Update parcial: solo likes, name/species no se tocan
	{
		st, body := doReq(t, ts.URL, "PATCH", "/birds/"+b.ID, map[string]any{
			"likes": 10,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 patch, got %d body=%s", st, string(body))
		}
		var got birdBody
		_ = json.Unmarshal(body, &got)
		if got.Likes != 10 {
			t.Fatalf("expected likes=10, got %d", got.Likes)
		}
		if got.Name != "Robin" || got.Species != "Turdus migratorius" {
			t.Fatalf("partial update overwrote fields: %+v", got)
		}
	}

	// 5) PUT usa el mismo handler de update parcial
	{
		st, body := doReq(t, ts.URL, "PUT", "/birds/"+b.ID, map[string]any{
			"name": "American Robin",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 put, got %d body=%s", st, string(body))
		}
		var got birdBody
		_ = json.Unmarshal(body, &got)
		if got.Name != "American Robin" || got.Likes != 10 {
			t.Fatalf("put changed more than it should: %+v", got)
		}
	}

	// 6) List devuelve el registro
	{
		st, body := doReq(t, ts.URL, "GET", "/birds", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d body=%s", st, string(body))
		}
		var items []birdBody
		if err := json.Unmarshal(body, &items); err != nil {
			t.Fatalf("list: invalid json: %v body=%s", err, string(body))
		}
		if len(items) != 1 || items[0].ID != b.ID {
			t.Fatalf("unexpected list: %+v", items)
		}
	}
}

func TestHTTP_ListEmptyIsArray(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/birds", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list, got %d", st)
	}
	if got := string(bytes.TrimSpace(body)); got != "[]" {
		t.Fatalf("expected empty array, got %s", got)
	}
}

func TestHTTP_CreateIgnoresUnknownFields(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// "id" inyectado y campos desconocidos se descartan (whitelist).
	b := createBird(t, ts.URL, map[string]any{
		"id":      "attacker-chosen",
		"name":    "Crow",
		"color":   "black",
		"species": "Corvus brachyrhynchos",
	})
	if b.ID == "attacker-chosen" || b.ID == "" {
		t.Fatalf("id override must not take effect, got %q", b.ID)
	}
	if b.Name != "Crow" || b.Species != "Corvus brachyrhynchos" {
		t.Fatalf("whitelisted fields lost: %+v", b)
	}
}

func TestHTTP_NotFoundBody(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	cases := []struct {
		method string
		path   string
		body   map[string]any
	}{
		{"GET", "/birds/999999", nil},
		{"PATCH", "/birds/999999", map[string]any{"name": "Ghost"}},
		{"PUT", "/birds/999999", map[string]any{"name": "Ghost"}},
		{"PATCH", "/birds/999999/like", nil},
	}

	for _, tc := range cases {
		st, body := doReq(t, ts.URL, tc.method, tc.path, tc.body)
		if st != http.StatusNotFound {
			t.Fatalf("%s %s: expected 404, got %d body=%s", tc.method, tc.path, st, string(body))
		}

		var resp struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			t.Fatalf("%s %s: invalid error body: %s", tc.method, tc.path, string(body))
		}
		if resp.Error != "Bird not found" {
			t.Fatalf("%s %s: expected error=%q, got %q", tc.method, tc.path, "Bird not found", resp.Error)
		}
	}

	// Sin mutación: la colección sigue vacía.
	st, body := doReq(t, ts.URL, "GET", "/birds", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list, got %d", st)
	}
	var items []birdBody
	_ = json.Unmarshal(body, &items)
	if len(items) != 0 {
		t.Fatalf("not-found paths must not create records: %+v", items)
	}
}

func TestHTTP_CreateRejectsNegativeLikes(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "POST", "/birds", map[string]any{
		"name":  "Crow",
		"likes": -1,
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative likes, got %d body=%s", st, string(body))
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d body=%s", st, string(body))
	}
}

func createBird(t *testing.T, baseURL string, payload map[string]any) birdBody {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/birds", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create bird, got %d body=%s", st, string(body))
	}

	var resp birdBody
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create bird: missing id body=%s", string(body))
	}
	return resp
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
