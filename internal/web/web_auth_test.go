package web_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeShowsSignInForms(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))

	doc := parseHTML(rr.Body)
	assertContainsElement(t, doc, "form[action='/auth/guest']")
	assertContainsElement(t, doc, "form[action='/auth/login']")
	assertNotContainsElement(t, doc, "form[action='/play']")
	assertNotContainsElement(t, doc, "form[action='/auth/logout']")
}

func TestGuestCreation(t *testing.T) {
	ts := newWebTestServer(t)

	form := url.Values{"display_name": {"Alice"}}
	rr := ts.post("/auth/guest", form)

	// Should redirect to home
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
	assert.True(t, ts.cookies.hasLogin())

	// Follow redirect and check we're logged in
	rr = ts.followRedirect(rr)
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "nav", "Alice")
	assertContainsElement(t, doc, "form[action='/play']")
	assertContainsText(t, doc, ".flash-success", "Welcome, Alice!")
}

func TestGuestCreationEmptyName(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/auth/guest", url.Values{"display_name": {"  "}})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.False(t, ts.cookies.hasLogin())

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".flash-error", "Display name is required")
}

func TestGuestCreationFollowsNext(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.post("/auth/guest", url.Values{"display_name": {"Alice"}, "next": {"/play/abc"}})
	assert.Equal(t, "/play/abc", rr.Header().Get("Location"))

	ts.cookies = newCookieJar()
	rr = ts.post("/auth/guest", url.Values{"display_name": {"Alice"}, "next": {"//evil.example"}})
	assert.Equal(t, "/", rr.Header().Get("Location"))
}

func TestLogin(t *testing.T) {
	ts := newWebTestServer(t)
	_, err := ts.app.AuthService.RegisterPlayer(t.Context(), "bob", "secret123", "Bob")
	require.NoError(t, err)

	rr := ts.post("/auth/login", url.Values{"username": {"bob"}, "password": {"secret123"}})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.True(t, ts.cookies.hasLogin())

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, "nav", "Bob")
	assertContainsText(t, doc, ".flash-success", "Welcome back, Bob!")
}

func TestLoginWrongPassword(t *testing.T) {
	ts := newWebTestServer(t)
	_, err := ts.app.AuthService.RegisterPlayer(t.Context(), "bob", "secret123", "Bob")
	require.NoError(t, err)

	rr := ts.post("/auth/login", url.Values{"username": {"bob"}, "password": {"wrong-password"}})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.False(t, ts.cookies.hasLogin())

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".flash-error", "Invalid username or password")
}

func TestLogout(t *testing.T) {
	ts := newWebTestServer(t)
	ts.createGuestPlayer("Alice")
	token := ts.cookies.cookies["login"].Value

	rr := ts.post("/auth/logout", url.Values{})
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.False(t, ts.cookies.hasLogin())

	// The token is no longer accepted either
	_, err := ts.app.AuthService.Validate(token)
	assert.Error(t, err)

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsText(t, doc, ".flash-info", "You have been logged out")
	assertContainsElement(t, doc, "form[action='/auth/guest']")
}

func TestProtectedRouteRedirectsToHome(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/play/some-session")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/?next=/play/some-session", rr.Header().Get("Location"))

	doc := parseHTML(ts.followRedirect(rr).Body)
	assertContainsElement(t, doc, "form[action='/auth/guest'] input[name='next'][value='/play/some-session']")
}
