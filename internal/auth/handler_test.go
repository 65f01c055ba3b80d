package auth

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newLoginApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	handler := NewHandler(NewService(StaticIssuer{Token: "123"}))
	app.Post("/api/auth/login", handler.Login)
	return app
}

func postLogin(t *testing.T, app *fiber.App, body string) (int, loginResponse) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var decoded loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, decoded
}

func TestLoginRejectsBlankCredentials(t *testing.T) {
	app := newLoginApp(t)

	cases := []string{
		`{"username":"","password":""}`,
		`{"username":"alice","password":""}`,
		`{"username":"","password":"pw"}`,
		`{"username":"   ","password":"pw"}`,
		`{"username":"alice","password":"\t "}`,
		`{}`,
	}
	for _, body := range cases {
		status, decoded := postLogin(t, app, body)
		if status != fiber.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, status)
		}
		if decoded.Success {
			t.Fatalf("body %s: expected success=false", body)
		}
		if decoded.Message != "Username and password are required" {
			t.Fatalf("body %s: unexpected message %q", body, decoded.Message)
		}
	}
}

func TestLoginSucceedsForNonBlankCredentials(t *testing.T) {
	app := newLoginApp(t)

	status, decoded := postLogin(t, app, `{"username":"alice","password":"pw"}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if !decoded.Success {
		t.Fatal("expected success=true")
	}
	if decoded.Token != "123" {
		t.Fatalf("expected token 123, got %q", decoded.Token)
	}
	if decoded.Message != "Login successful" {
		t.Fatalf("unexpected message %q", decoded.Message)
	}
}
