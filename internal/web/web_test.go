package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wordcoach/internal/factory"
	"github.com/mcoot/wordcoach/internal/services/auth"
	"github.com/mcoot/wordcoach/internal/services/judge"
	"github.com/mcoot/wordcoach/internal/testutil"
	"github.com/mcoot/wordcoach/internal/web"
)

// webTestServer provides a test server for web interface testing
type webTestServer struct {
	t       *testing.T
	handler http.Handler
	app     *factory.TestApp
	cookies *cookieJar
}

// newWebTestServer creates a new test server with all dependencies wired and
// the offline dictionary judge
func newWebTestServer(t *testing.T) *webTestServer {
	t.Helper()
	return newWebTestServerWithJudge(t, nil)
}

// newWebTestServerWithJudge is newWebTestServer with a scripted judge
func newWebTestServerWithJudge(t *testing.T, j judge.Judge) *webTestServer {
	t.Helper()

	app := factory.NewTestAppWithJudge(j)
	app.LoadTestDictionary()
	t.Cleanup(func() { _ = app.Close() })

	router := web.NewRouter(web.RouterConfig{
		Logger:            testutil.NopLogger(),
		AuthService:       app.AuthService,
		SessionController: app.SessionController,
		ScoringService:    app.ScoringService,
		HubManager:        app.HubManager,
		StaticDir:         "", // No static files in tests
	})

	return &webTestServer{
		t:       t,
		handler: router,
		app:     app,
		cookies: newCookieJar(),
	}
}

// request makes an HTTP request and returns the response
func (ts *webTestServer) request(method, path string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	// Add cookies from jar
	ts.cookies.addTo(req)

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	// Extract Set-Cookie headers into jar
	ts.cookies.extract(rr)

	return rr
}

// get makes a GET request
func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	return ts.request(http.MethodGet, path, nil)
}

// post makes a POST request with form data
func (ts *webTestServer) post(path string, form url.Values) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, path, form)
}

// parseHTML parses the response body as HTML
func parseHTML(r io.Reader) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		panic(err)
	}
	return doc
}

// cookieJar maintains cookies across requests (like a browser would)
type cookieJar struct {
	cookies map[string]*http.Cookie
}

func newCookieJar() *cookieJar {
	return &cookieJar{
		cookies: make(map[string]*http.Cookie),
	}
}

// addTo adds all cookies to the request
func (j *cookieJar) addTo(req *http.Request) {
	for _, cookie := range j.cookies {
		req.AddCookie(cookie)
	}
}

// extract applies Set-Cookie headers from the response in order
func (j *cookieJar) extract(rr *httptest.ResponseRecorder) {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.MaxAge < 0 {
			// Cookie being deleted
			delete(j.cookies, cookie.Name)
		} else {
			j.cookies[cookie.Name] = cookie
		}
	}
}

// hasLogin returns true if the login cookie is set
func (j *cookieJar) hasLogin() bool {
	_, ok := j.cookies[auth.CookieName]
	return ok
}

// Helper functions for common test operations

// createGuestPlayer signs in as a guest
func (ts *webTestServer) createGuestPlayer(displayName string) {
	ts.t.Helper()
	form := url.Values{"display_name": {displayName}}
	rr := ts.post("/auth/guest", form)
	require.Equal(ts.t, http.StatusSeeOther, rr.Code, "Expected redirect after guest creation")
	require.True(ts.t, ts.cookies.hasLogin(), "Expected login cookie to be set")
}

// startSession starts a game holding A E B C D F G and returns its id
func (ts *webTestServer) startSession() string {
	ts.t.Helper()
	ts.app.QueueStandardHand()
	rr := ts.post("/play", url.Values{})
	require.Equal(ts.t, http.StatusSeeOther, rr.Code, "Expected redirect after starting a game")

	location := rr.Header().Get("Location")
	id, ok := strings.CutPrefix(location, "/play/")
	require.True(ts.t, ok, "Expected redirect to play page, got %q", location)
	require.NotEmpty(ts.t, id)
	return id
}

// submit posts the draft form for a session
func (ts *webTestServer) submit(id, word, sentence string) *httptest.ResponseRecorder {
	ts.t.Helper()
	return ts.post("/play/"+id+"/submit", url.Values{"word": {word}, "sentence": {sentence}})
}

// followRedirect follows a redirect and returns the response
func (ts *webTestServer) followRedirect(rr *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	ts.t.Helper()
	location := rr.Header().Get("Location")
	require.NotEmpty(ts.t, location, "Expected Location header for redirect")
	return ts.get(location)
}

// Assertion helpers

// assertContainsElement asserts that the document contains an element matching the selector
func assertContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
	}
}

// assertNotContainsElement asserts that the document does not contain an element matching the selector
func assertNotContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() > 0 {
		t.Errorf("Expected NOT to find element matching %q, but found %d", selector, doc.Find(selector).Length())
	}
}

// assertContainsText asserts that the element matching the selector contains the text
func assertContainsText(t *testing.T, doc *goquery.Document, selector, text string) {
	t.Helper()
	el := doc.Find(selector)
	if el.Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
		return
	}
	if !strings.Contains(el.Text(), text) {
		t.Errorf("Expected element %q to contain %q, but got %q", selector, text, el.Text())
	}
}
