package handler_test

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

const closedModal = `<div id="auth-modal"></div>`

func postModal(t *testing.T, client *http.Client, url, body string) string {
	t.Helper()
	resp := postJSON(t, client, url, body)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST %s: expected SSE 200, got %d", url, resp.StatusCode)
	}
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read SSE body: %v", err)
	}
	return string(bodyBytes)
}

func TestAuthModal_WrongPasswordShowsInlineAlert(t *testing.T) {
	srv, _, client := newTestServer(t)

	resp := postJSON(t, client, srv.URL+"/api/auth/register",
		`{"firstName":"Modal","lastName":"User","email":"modal@example.com","password":"password123","confirmPassword":"password123"}`)
	resp.Body.Close()

	body := postModal(t, client, srv.URL+"/auth/modal/login",
		`{"email":"modal@example.com","password":"wrongpass"}`)

	if !strings.Contains(body, `id="auth-alert"`) || !strings.Contains(body, "Invalid email or password.") {
		t.Fatal("expected the inline alert for bad credentials")
	}
	if strings.Contains(body, closedModal) {
		t.Fatal("expected the modal to stay open after a failed login")
	}
}

func TestAuthModal_LoginSuccessClosesModalAndSetsCookie(t *testing.T) {
	srv, s, client := newTestServer(t)

	resp := postJSON(t, client, srv.URL+"/api/auth/register",
		`{"firstName":"Close","lastName":"Modal","email":"close@example.com","password":"password123","confirmPassword":"password123"}`)
	resp.Body.Close()
	resp = postJSON(t, client, srv.URL+"/api/auth/logout", "")
	resp.Body.Close()

	body := postModal(t, client, srv.URL+"/auth/modal/login",
		`{"email":"close@example.com","password":"password123","rememberMe":false}`)

	if !strings.Contains(body, closedModal) {
		t.Fatal("expected a successful login to close the modal")
	}

	srvURL, _ := url.Parse(srv.URL)
	var hasAuthToken bool
	for _, c := range client.Jar.Cookies(srvURL) {
		if c.Name == "auth_token" && c.Value != "" {
			hasAuthToken = true
		}
	}
	if !hasAuthToken {
		t.Fatal("expected the auth_token cookie after a modal login")
	}

	var welcomed bool
	for _, toast := range s.Center.Toasts() {
		if strings.Contains(toast.Message, "Welcome back, Close!") {
			welcomed = true
		}
	}
	if !welcomed {
		t.Fatal("expected the welcome toast after a modal login")
	}
}

func TestAuthModal_RegisterPasswordMismatchShowsInlineAlert(t *testing.T) {
	srv, _, client := newTestServer(t)

	body := postModal(t, client, srv.URL+"/auth/modal/register",
		`{"firstName":"Mis","lastName":"Match","email":"mismatch@example.com","password":"password123","confirmPassword":"different456"}`)

	if !strings.Contains(body, `id="auth-alert"`) || !strings.Contains(body, "passwords do not match") {
		t.Fatal("expected the inline alert for mismatched passwords")
	}
	if strings.Contains(body, closedModal) {
		t.Fatal("expected the modal to stay open after a failed signup")
	}
}

func TestAuthModal_RegisterDuplicateEmailShowsInlineAlert(t *testing.T) {
	srv, _, client := newTestServer(t)

	resp := postJSON(t, client, srv.URL+"/api/auth/register",
		`{"firstName":"First","lastName":"Claim","email":"taken@example.com","password":"password123","confirmPassword":"password123"}`)
	resp.Body.Close()

	body := postModal(t, client, srv.URL+"/auth/modal/register",
		`{"firstName":"Second","lastName":"Claim","email":"taken@example.com","password":"password123","confirmPassword":"password123"}`)

	if !strings.Contains(body, "An account with that email already exists.") {
		t.Fatal("expected the inline alert for a duplicate email")
	}
}

func TestAuthModal_RegisterSuccessClosesModal(t *testing.T) {
	srv, s, client := newTestServer(t)

	body := postModal(t, client, srv.URL+"/auth/modal/register",
		`{"firstName":"New","lastName":"Member","email":"member@example.com","password":"password123","confirmPassword":"password123"}`)

	if !strings.Contains(body, closedModal) {
		t.Fatal("expected a successful signup to close the modal")
	}
	if !s.Auth.IsLoggedIn() {
		t.Fatal("expected the new account to be signed in")
	}
}

func TestAuthModal_SocialLoginComingSoon(t *testing.T) {
	srv, _, client := newTestServer(t)

	body := postModal(t, client, srv.URL+"/auth/social/Google", "")

	if !strings.Contains(body, "Google login coming soon!") {
		t.Fatal("expected the coming-soon alert for social sign-in")
	}
}
