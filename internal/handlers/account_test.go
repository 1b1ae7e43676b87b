package handlers_test

import (
	"net/http"
	"testing"
)

func TestRegisterMissingFields(t *testing.T) {
	app := newTestApp(t)
	for _, body := range []map[string]string{
		{"email": "a@x.com", "password": "p"},
		{"name": "a", "password": "p"},
		{"name": "a", "email": "a@x.com"},
	} {
		resp := doJSON(t, app, http.MethodPost, "/api/register", body, "")
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("body %v: code %d", body, resp.StatusCode)
		}
		var msg map[string]string
		decodeJSON(t, resp, &msg)
		if msg["message"] != "Please enter all fields" {
			t.Fatalf("body %v: message %q", body, msg["message"])
		}
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := newTestApp(t)
	signup(t, app, "a", "a@x.com", "p")

	// same email, different everything else, still a conflict
	resp := doJSON(t, app, http.MethodPost, "/api/register",
		map[string]string{"name": "someone else", "email": "a@x.com", "password": "other"}, "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate register: code %d", resp.StatusCode)
	}
	var body map[string]string
	decodeJSON(t, resp, &body)
	if body["error"] != "User already exists" {
		t.Fatalf("duplicate register: error %q", body["error"])
	}
}

func TestAuthenticate(t *testing.T) {
	app := newTestApp(t)
	signup(t, app, "a", "a@x.com", "p")

	resp := doJSON(t, app, http.MethodPost, "/api/authenticate",
		map[string]string{"email": "nobody@x.com", "password": "p"}, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown email: code %d", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodPost, "/api/authenticate",
		map[string]string{"email": "a@x.com", "password": "wrong"}, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("wrong password: code %d", resp.StatusCode)
	}
	var body map[string]string
	decodeJSON(t, resp, &body)
	if _, ok := body["token"]; ok {
		t.Fatal("wrong password returned a token")
	}

	resp = doJSON(t, app, http.MethodPost, "/api/authenticate",
		map[string]string{"email": "a@x.com"}, "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing password: code %d", resp.StatusCode)
	}
}

func TestProfile(t *testing.T) {
	app := newTestApp(t)
	token := signup(t, app, "alice", "alice@x.com", "p")

	p := profile(t, app, token)
	if p.Name != "alice" || p.NoOfFollowers != 0 || p.NoOfFollowing != 0 {
		t.Fatalf("profile: %+v", p)
	}

	// no Authorization header
	resp := doJSON(t, app, http.MethodGet, "/api/user", nil, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("no header: code %d", resp.StatusCode)
	}

	// invalid token collapses to the generic 500, as upstream
	resp = doJSON(t, app, http.MethodGet, "/api/user", nil, "not-a-token")
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("bad token: code %d", resp.StatusCode)
	}
}
