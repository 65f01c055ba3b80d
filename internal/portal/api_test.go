package portal

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newPortalStub(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/auth/login":
			var req struct {
				Username string `json:"username"`
				Password string `json:"password"`
			}
			_ = json.NewDecoder(r.Body).Decode(&req)
			w.Header().Set("Content-Type", "application/json")
			if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Password) == "" {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Username and password are required"})
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "token": "123", "message": "Login successful"})
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/api/customer/"):
			if r.Header.Get("Authorization") != "Bearer 123" {
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]any{"message": "Invalid token"})
				return
			}
			id := strings.TrimPrefix(r.URL.Path, "/api/customer/")
			switch id {
			case "42":
				_ = json.NewEncoder(w).Encode(map[string]any{"clientId": "42", "status": "Active"})
			case "99999":
				w.WriteHeader(http.StatusNotFound)
				_ = json.NewEncoder(w).Encode(map[string]any{"message": "Customer not found"})
			default:
				w.WriteHeader(http.StatusBadGateway)
				_ = json.NewEncoder(w).Encode(map[string]any{"message": "Unable to retrieve customer information"})
			}
		default:
			http.NotFound(w, r)
		}
	}))
}

func TestClientLogin(t *testing.T) {
	server := newPortalStub(t)
	defer server.Close()

	client := NewClient(server.URL)
	reply, err := client.Login(context.Background(), "alice", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if reply.Token != "123" {
		t.Fatalf("expected token 123, got %q", reply.Token)
	}
}

func TestClientLoginFailureCarriesServerMessage(t *testing.T) {
	server := newPortalStub(t)
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Login(context.Background(), "", "")
	if err == nil {
		t.Fatal("expected login error")
	}
	if !strings.Contains(err.Error(), "Username and password are required") {
		t.Fatalf("expected server message, got %v", err)
	}
}

func TestClientGetCustomerOutcomes(t *testing.T) {
	server := newPortalStub(t)
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	info, err := client.GetCustomer(ctx, "42", "123")
	if err != nil {
		t.Fatalf("get 42: %v", err)
	}
	if info.ClientID != "42" || info.Status != "Active" {
		t.Fatalf("unexpected record %+v", info)
	}

	if _, err := client.GetCustomer(ctx, "99999", "123"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get 99999: expected ErrNotFound, got %v", err)
	}

	if _, err := client.GetCustomer(ctx, "42", "bad"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("bad token: expected ErrUnauthorized, got %v", err)
	}

	if _, err := client.GetCustomer(ctx, "error", "123"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("backend failure: expected ErrUnavailable, got %v", err)
	}
}

func TestClientUnreachableServer(t *testing.T) {
	server := newPortalStub(t)
	server.Close()

	client := NewClient(server.URL)
	if _, err := client.GetCustomer(context.Background(), "42", "123"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if _, err := client.Login(context.Background(), "alice", "pw"); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable on login, got %v", err)
	}
}
