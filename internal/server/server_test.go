package server

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"hersalon/internal/leadform"
	"hersalon/internal/storage"
	"hersalon/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sentNotice   = "נשלח! אחזור אלייך לתיאום שיחה"
	failedNotice = "משהו השתבש"
	sendingLabel = "שולחת..."
)

// leadEndpoint stands in for the remote lead collector.
type leadEndpoint struct {
	mu      sync.Mutex
	bodies  []map[string]any
	status  int
	release chan struct{}
}

func (e *leadEndpoint) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	raw, _ := io.ReadAll(r.Body)
	_ = json.Unmarshal(raw, &body)

	e.mu.Lock()
	e.bodies = append(e.bodies, body)
	status := e.status
	release := e.release
	e.mu.Unlock()

	if release != nil {
		<-release
	}

	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
}

func (e *leadEndpoint) Bodies() []map[string]any {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]map[string]any(nil), e.bodies...)
}

type testSite struct {
	t        *testing.T
	srv      *httptest.Server
	client   *http.Client
	forms    *leadform.Store
	endpoint *leadEndpoint
}

func newTestSite(t *testing.T) *testSite {
	t.Helper()

	endpoint := &leadEndpoint{}
	upstream := httptest.NewServer(endpoint)
	t.Cleanup(upstream.Close)

	submitter, err := leadform.NewHTTPSubmitter(upstream.URL + "/api/apply")
	require.NoError(t, err)

	forms := leadform.NewStore(submitter, time.Hour)
	t.Cleanup(forms.Close)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &types.Config{
		ContactEmail:      "help@example.com",
		SendingRefreshSec: 2,
		CookieHashKey:     base64.StdEncoding.EncodeToString([]byte(strings.Repeat("h", 32))),
		CookieBlockKey:    base64.StdEncoding.EncodeToString([]byte(strings.Repeat("b", 32))),
	}

	svc, err := New(cfg, logger, forms, storage.StaticMediaResolver())
	require.NoError(t, err)

	srv := httptest.NewServer(svc.Handler())
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testSite{
		t:        t,
		srv:      srv,
		client:   &http.Client{Jar: jar, Timeout: 5 * time.Second},
		forms:    forms,
		endpoint: endpoint,
	}
}

func (s *testSite) get(path string) (int, string) {
	s.t.Helper()
	resp, err := s.client.Get(s.srv.URL + path)
	require.NoError(s.t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(s.t, err)
	return resp.StatusCode, string(body)
}

func (s *testSite) post(path string, form url.Values) (int, string) {
	s.t.Helper()
	resp, err := s.client.PostForm(s.srv.URL+path, form)
	require.NoError(s.t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(s.t, err)
	return resp.StatusCode, string(body)
}

func (s *testSite) noFollow() *http.Client {
	return &http.Client{
		Jar: s.client.Jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func applyValues(name, phone, email string, canAttend bool, action string) url.Values {
	v := url.Values{}
	v.Set("full_name", name)
	v.Set("phone", phone)
	v.Set("email", email)
	if canAttend {
		v.Set("can_attend", "true")
	}
	v.Set("action", action)
	return v
}

func TestHome(t *testing.T) {
	site := newTestSite(t)

	status, body := site.get("/")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "HERSALON")
	assert.Contains(t, body, `href="/inner-circle"`)
	assert.Contains(t, body, "/static/testimonials/t1.jpg")
	assert.Contains(t, body, "https://res.cloudinary.com/dordmerc0/video/upload/v1768743558/t1_mwaduc.mov")
}

func TestUnknownPathRedirectsHome(t *testing.T) {
	site := newTestSite(t)

	for _, path := range []string{"/nope", "/inner-circle/extra/deep", "/pricing"} {
		resp, err := site.noFollow().Get(site.srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusFound, resp.StatusCode, path)
		assert.Equal(t, "/", resp.Header.Get("Location"), path)
	}
}

func TestTrailingSlashRedirect(t *testing.T) {
	site := newTestSite(t)

	resp, err := site.noFollow().Get(site.srv.URL + "/inner-circle/")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusMovedPermanently, resp.StatusCode)
	assert.Equal(t, "/inner-circle", resp.Header.Get("Location"))
}

func TestHealthAndStatic(t *testing.T) {
	site := newTestSite(t)

	status, body := site.get("/healthz")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body)

	status, body = site.get("/static/css/site.css")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "--brand")
}

func TestRequestIDHeader(t *testing.T) {
	site := newTestSite(t)

	req, err := http.NewRequest(http.MethodGet, site.srv.URL+"/healthz", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-Id", "abc123")

	resp, err := site.client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, "abc123", resp.Header.Get("X-Request-Id"))

	resp, err = site.client.Get(site.srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Len(t, resp.Header.Get("X-Request-Id"), 21)
}

func TestFAQAccordion(t *testing.T) {
	site := newTestSite(t)

	_, body := site.get("/inner-circle")
	assert.Contains(t, body, `class="faq-panel is-open" id="faq-0"`, "first panel open by default")
	assert.Equal(t, 1, strings.Count(body, "is-open"))

	status, body := site.post("/inner-circle/faq/0", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, strings.Count(body, "is-open"), "toggling the open panel closes it")

	_, body = site.post("/inner-circle/faq/2", nil)
	assert.Contains(t, body, `class="faq-panel is-open" id="faq-2"`)
	assert.Equal(t, 1, strings.Count(body, "is-open"))

	_, body = site.post("/inner-circle/faq/3", nil)
	assert.Contains(t, body, `class="faq-panel is-open" id="faq-3"`)
	assert.Equal(t, 1, strings.Count(body, "is-open"), "opening one closes the other")

	_, body = site.get("/inner-circle")
	assert.Contains(t, body, `class="faq-panel is-open" id="faq-3"`, "state survives a reload")
}

func TestFAQToggleRejectsBadIndex(t *testing.T) {
	site := newTestSite(t)

	for _, idx := range []string{"99", "-1", "first"} {
		resp, err := site.noFollow().PostForm(site.srv.URL+"/inner-circle/faq/"+idx, nil)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, idx)
	}
}

func TestApplyModalOpenClose(t *testing.T) {
	site := newTestSite(t)

	_, body := site.get("/inner-circle")
	assert.NotContains(t, body, `id="apply-form"`)

	_, body = site.post("/inner-circle/apply/open", nil)
	assert.Contains(t, body, `id="apply-form"`)
	assert.Contains(t, body, `data-sending="false" disabled>`, "empty form cannot be submitted")
	assert.Equal(t, 1, site.forms.Len())

	_, body = site.post("/inner-circle/apply/close", url.Values{"target": {"content"}})
	assert.Contains(t, body, `id="apply-form"`, "clicks inside the dialog keep it open")

	_, body = site.post("/inner-circle/apply/close", url.Values{"target": {"overlay"}})
	assert.NotContains(t, body, `id="apply-form"`)
	assert.Equal(t, 0, site.forms.Len(), "closing discards the draft")

	_, _ = site.post("/inner-circle/apply/open", nil)
	_, body = site.post("/inner-circle/apply/close", url.Values{"target": {"close"}})
	assert.NotContains(t, body, `id="apply-form"`)
}

func TestApplyDraftDoesNotSurviveClose(t *testing.T) {
	site := newTestSite(t)

	site.post("/inner-circle/apply/open", nil)
	_, body := site.post("/inner-circle/apply", applyValues("Dana Levi", "0501234567", "dana@test.com", true, "update"))
	assert.Contains(t, body, `value="Dana Levi"`)
	assert.Contains(t, body, `data-sending="false">`, "valid form enables submit")

	site.post("/inner-circle/apply/close", url.Values{"target": {"overlay"}})
	_, body = site.post("/inner-circle/apply/open", nil)
	assert.NotContains(t, body, "Dana Levi")
	assert.Empty(t, site.endpoint.Bodies())
}

func TestApplySubmitSent(t *testing.T) {
	site := newTestSite(t)

	site.post("/inner-circle/apply/open", nil)
	site.post("/inner-circle/apply", applyValues("Dana Levi", "0501234567", "dana@test.com", true, "submit"))

	require.Eventually(t, func() bool {
		_, body := site.get("/inner-circle")
		return strings.Contains(body, sentNotice)
	}, 2*time.Second, 20*time.Millisecond)

	bodies := site.endpoint.Bodies()
	require.Len(t, bodies, 1)
	assert.Equal(t, map[string]any{
		"fullName":  "Dana Levi",
		"phone":     "0501234567",
		"email":     "dana@test.com",
		"canAttend": true,
	}, bodies[0])
}

func TestApplySubmitInvalidIsNoop(t *testing.T) {
	site := newTestSite(t)

	site.post("/inner-circle/apply/open", nil)
	_, body := site.post("/inner-circle/apply", applyValues("D", "0501234567", "dana@test.com", true, "submit"))

	assert.Contains(t, body, `data-sending="false" disabled>`)
	assert.NotContains(t, body, sendingLabel)
	assert.NotContains(t, body, sentNotice)
	assert.NotContains(t, body, failedNotice)

	_, body = site.post("/inner-circle/apply", applyValues("Dana Levi", "0501234567", "dana@test.com", false, "submit"))
	assert.Contains(t, body, `data-sending="false" disabled>`, "attendance must be confirmed")

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, site.endpoint.Bodies())
}

func TestApplySubmitErrorThenRetry(t *testing.T) {
	site := newTestSite(t)
	site.endpoint.status = http.StatusInternalServerError

	site.post("/inner-circle/apply/open", nil)
	valid := applyValues("Dana Levi", "0501234567", "dana@test.com", true, "submit")
	site.post("/inner-circle/apply", valid)

	var body string
	require.Eventually(t, func() bool {
		_, body = site.get("/inner-circle")
		return strings.Contains(body, failedNotice)
	}, 2*time.Second, 20*time.Millisecond)
	assert.Contains(t, body, "mailto:help@example.com")
	assert.Contains(t, body, `data-sending="false">`, "a failed attempt can be retried")

	site.endpoint.mu.Lock()
	site.endpoint.status = http.StatusOK
	site.endpoint.mu.Unlock()

	site.post("/inner-circle/apply", valid)
	require.Eventually(t, func() bool {
		_, body = site.get("/inner-circle")
		return strings.Contains(body, sentNotice)
	}, 2*time.Second, 20*time.Millisecond)

	assert.Len(t, site.endpoint.Bodies(), 2)
}

func TestApplyNoSecondSubmitWhileSending(t *testing.T) {
	site := newTestSite(t)
	release := make(chan struct{})
	site.endpoint.release = release

	site.post("/inner-circle/apply/open", nil)
	valid := applyValues("Dana Levi", "0501234567", "dana@test.com", true, "submit")
	_, body := site.post("/inner-circle/apply", valid)

	assert.Contains(t, body, sendingLabel)
	assert.Contains(t, body, `http-equiv="refresh"`)
	assert.Contains(t, body, `data-sending="true" disabled>`)

	site.post("/inner-circle/apply", valid)
	site.post("/inner-circle/apply", valid)

	require.Eventually(t, func() bool {
		return len(site.endpoint.Bodies()) == 1
	}, time.Second, 10*time.Millisecond)

	close(release)

	require.Eventually(t, func() bool {
		_, body := site.get("/inner-circle")
		return strings.Contains(body, sentNotice)
	}, 2*time.Second, 20*time.Millisecond)

	assert.Len(t, site.endpoint.Bodies(), 1)
}

func TestApplyPostWithoutOpenForm(t *testing.T) {
	site := newTestSite(t)

	status, body := site.post("/inner-circle/apply", applyValues("Dana Levi", "0501234567", "dana@test.com", true, "submit"))
	assert.Equal(t, http.StatusOK, status)
	assert.NotContains(t, body, `id="apply-form"`)
	assert.Empty(t, site.endpoint.Bodies())
}

func TestTamperedCookieIsIgnored(t *testing.T) {
	site := newTestSite(t)

	u, err := url.Parse(site.srv.URL)
	require.NoError(t, err)
	site.client.Jar.SetCookies(u, []*http.Cookie{{Name: "hs_visitor", Value: "garbage", Path: "/"}})

	status, body := site.get("/inner-circle")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `class="faq-panel is-open" id="faq-0"`)
}
