package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"todolist/internal/service"
)

// postForm submits an urlencoded form the way a browser would.
func postForm(r http.Handler, path string, form url.Values, cookie string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: cookie})
	}
	r.ServeHTTP(w, req)
	return w
}

func getPage(r http.Handler, path string, cookie string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: cookie})
	}
	r.ServeHTTP(w, req)
	return w
}

func sessionCookieValue(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	res := w.Result()
	for _, ck := range res.Cookies() {
		if ck.Name == sessionCookieName {
			return ck.Value
		}
	}
	return ""
}

func TestSignup_RendersEmptyForm(t *testing.T) {
	s := &service.Service{Authorization: &mockAuth{parseErr: service.ErrInvalidToken}}
	r := newTestRouter(s)

	w := getPage(r, "/signup", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "signup") {
		t.Fatalf("expected signup form, got %q", w.Body.String())
	}
}

func TestSignup_PasswordMismatch(t *testing.T) {
	auth := &mockAuth{parseErr: service.ErrInvalidToken}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	w := postForm(r, "/signup", url.Values{
		"username":  {"alice"},
		"password1": {"one"},
		"password2": {"two"},
	}, "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), errPasswordMismatch) {
		t.Fatalf("expected mismatch error, got %q", w.Body.String())
	}
	if auth.lastSignUpUsername != "" {
		t.Fatalf("SignUp must not be called on mismatch, got %q", auth.lastSignUpUsername)
	}
	if sessionCookieValue(t, w) != "" {
		t.Fatalf("no session may be created on mismatch")
	}
}

func TestSignup_DuplicateUser(t *testing.T) {
	auth := &mockAuth{signUpErr: service.ErrDuplicateUser, parseErr: service.ErrInvalidToken}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	w := postForm(r, "/signup", url.Values{
		"username":  {"alice"},
		"password1": {"pw"},
		"password2": {"pw"},
	}, "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), errUsernameTaken) {
		t.Fatalf("expected duplicate error, got %q", w.Body.String())
	}
	if sessionCookieValue(t, w) != "" {
		t.Fatalf("no session may be created for a duplicate username")
	}
}

func TestSignup_SuccessSetsSessionAndRedirects(t *testing.T) {
	auth := &mockAuth{signUpID: 42, genTokenToken: "tok123", parseErr: service.ErrInvalidToken}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	w := postForm(r, "/signup", url.Values{
		"username":  {"alice"},
		"password1": {"pw"},
		"password2": {"pw"},
	}, "")

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != activeListPath {
		t.Fatalf("redirect to %q, want %q", loc, activeListPath)
	}
	if got := sessionCookieValue(t, w); got != "tok123" {
		t.Fatalf("session cookie = %q, want %q", got, "tok123")
	}
	if auth.lastSignUpUsername != "alice" || auth.lastSignUpPassword != "pw" {
		t.Fatalf("SignUp called with %q/%q", auth.lastSignUpUsername, auth.lastSignUpPassword)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuth{genTokenErr: service.ErrInvalidCredentials, parseErr: service.ErrInvalidToken}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	w := postForm(r, "/login", url.Values{
		"username": {"alice"},
		"password": {"wrong"},
	}, "")

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), errWrongCredentials) {
		t.Fatalf("expected credentials error, got %q", w.Body.String())
	}
	if sessionCookieValue(t, w) != "" {
		t.Fatalf("no session may be created on bad credentials")
	}
}

func TestLogin_Success(t *testing.T) {
	auth := &mockAuth{genTokenToken: "tok456", parseErr: service.ErrInvalidToken}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	w := postForm(r, "/login", url.Values{
		"username": {"alice"},
		"password": {"pw"},
	}, "")

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != activeListPath {
		t.Fatalf("redirect to %q, want %q", loc, activeListPath)
	}
	if got := sessionCookieValue(t, w); got != "tok456" {
		t.Fatalf("session cookie = %q, want %q", got, "tok456")
	}
}

func TestLogout_ClearsSessionAndRedirectsHome(t *testing.T) {
	s := &service.Service{Authorization: &mockAuth{parseID: 7}}
	r := newTestRouter(s)

	w := postForm(r, "/logout", url.Values{}, "tok123")

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != homePath {
		t.Fatalf("redirect to %q, want %q", loc, homePath)
	}

	res := w.Result()
	for _, ck := range res.Cookies() {
		if ck.Name == sessionCookieName {
			if ck.Value != "" || ck.MaxAge >= 0 {
				t.Fatalf("expected clearing cookie, got value=%q maxAge=%d", ck.Value, ck.MaxAge)
			}
			return
		}
	}
	t.Fatalf("expected a Set-Cookie clearing the session")
}

func TestLogout_GetIsMethodNotAllowed(t *testing.T) {
	s := &service.Service{Authorization: &mockAuth{parseErr: service.ErrInvalidToken}}
	r := newTestRouter(s)

	w := getPage(r, "/logout", "")
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status=%d, want 405", w.Code)
	}
}
