package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func withTempConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestTokenStore_SaveLoad(t *testing.T) {
	withTempConfig(t)

	if err := saveToken("tok-123", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("saveToken: %v", err)
	}
	got, err := loadToken()
	if err != nil {
		t.Fatalf("loadToken: %v", err)
	}
	if got != "tok-123" {
		t.Errorf("token = %q, want tok-123", got)
	}
}

func TestTokenStore_Expired(t *testing.T) {
	withTempConfig(t)

	if err := saveToken("tok-123", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("saveToken: %v", err)
	}
	if _, err := loadToken(); err == nil {
		t.Errorf("expected error for expired token")
	}
}

func TestTokenStore_Missing(t *testing.T) {
	withTempConfig(t)

	if _, err := loadToken(); err == nil {
		t.Errorf("expected error when no token file exists")
	}
}

func TestClientDo_BearerAndDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("Authorization = %q", got)
		}
		json.NewEncoder(w).Encode([]worldInfo{{ID: 1, Name: "Overworld", UserID: 7}})
	}))
	defer srv.Close()

	var out []worldInfo
	c := newClient(srv.URL, "tok-123")
	if err := c.do(context.Background(), http.MethodGet, "/api/worlds/overview", nil, &out); err != nil {
		t.Fatalf("do: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Overworld" {
		t.Errorf("out = %+v", out)
	}
}

func TestClientDo_ErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "quota_exceeded"})
	}))
	defer srv.Close()

	err := newClient(srv.URL, "").do(context.Background(), http.MethodPost, "/api/worlds/create",
		map[string]string{"worldName": "w"}, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Error() != "quota_exceeded" {
		t.Errorf("err = %q, want quota_exceeded", err)
	}
}

func TestClientDo_NonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := newClient(srv.URL, "").do(context.Background(), http.MethodGet, "/", nil, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if err.Error() != "http 502" {
		t.Errorf("err = %q, want http 502", err)
	}
}

func TestReadAll_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "tiles.json")
	if err := os.WriteFile(p, []byte(`[{"tileType":"grass","x":0,"y":0}]`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	raw, err := readAll(p)
	if err != nil {
		t.Fatalf("readAll: %v", err)
	}
	var tiles []tileInfo
	if err := json.Unmarshal(raw, &tiles); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(tiles) != 1 || tiles[0].TileType != "grass" {
		t.Errorf("tiles = %+v", tiles)
	}
}
