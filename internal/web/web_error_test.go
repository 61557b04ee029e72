package web_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/mcoot/wordcoach/internal/testutil"
	"github.com/mcoot/wordcoach/internal/web/middleware"
)

func TestFlashMessageShownOnce(t *testing.T) {
	ts := newWebTestServer(t)
	ts.createGuestPlayer("Alice")

	doc := parseHTML(ts.get("/").Body)
	assertContainsText(t, doc, ".flash", "Welcome")

	// Consumed by the first page view
	doc = parseHTML(ts.get("/").Body)
	assertNotContainsElement(t, doc, ".flash")
}

func TestFlashWithoutType(t *testing.T) {
	handler := middleware.Flash()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flash := middleware.GetFlash(r.Context())
		if assert.NotNil(t, flash) {
			assert.Equal(t, middleware.FlashInfo, flash.Type)
			assert.Equal(t, "plain", flash.Message)
		}
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "flash", Value: "plain"})
	handler.ServeHTTP(httptest.NewRecorder(), req)
}

func TestUnknownRouteNotFound(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/no-such-page")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestWrongMethodRejected(t *testing.T) {
	ts := newWebTestServer(t)
	ts.createGuestPlayer("Alice")

	rr := ts.get("/play")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestPanicRendersErrorPage(t *testing.T) {
	r := mux.NewRouter()
	r.Use(middleware.Recovery(testutil.NopLogger()))
	r.HandleFunc("/boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "h1", "Something went wrong")
	assertContainsElement(t, doc, "a[href='/']")
}
