package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *testServer) do(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)

	var body envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

	return rr, body
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func (s *testServer) registerSenior(t *testing.T) {
	t.Helper()

	rr, _ := s.do(t, jsonRequest(http.MethodPost, "/register/senior", `{
		"firstname": "Alice", "lastname": "Lee", "age": "72",
		"phone": "123456789", "email": " A@Ex.com ", "city": "Amsterdam",
		"address": "Main Street 1", "contactPref": "phone",
		"language": "English", "notes": "",
		"password": "p1", "re-password": "p1"
	}`))
	require.Equal(t, http.StatusOK, rr.Code)
}

func sessionCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == testCookieName {
			return cookie
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestLoginMissingFields(t *testing.T) {
	s := newTestServer()

	for _, body := range []string{`{}`, `{"email": "a@ex.com"}`, `{"password": "p1"}`, `not json`} {
		rr, resp := s.do(t, jsonRequest(http.MethodPost, "/login", body))
		assert.Equal(t, http.StatusBadRequest, rr.Code, "body %q", body)
		assert.False(t, resp.Success)
		assert.Equal(t, "Email and password are required", resp.Message)
	}
}

func TestLoginFailureResponsesAreIdentical(t *testing.T) {
	s := newTestServer()
	s.registerSenior(t)

	wrongPassword := httptest.NewRecorder()
	s.router.ServeHTTP(wrongPassword, jsonRequest(http.MethodPost, "/login",
		`{"email": "a@ex.com", "password": "wrong"}`))

	unknownEmail := httptest.NewRecorder()
	s.router.ServeHTTP(unknownEmail, jsonRequest(http.MethodPost, "/login",
		`{"email": "nobody@ex.com", "password": "p1"}`))

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.Bytes(), unknownEmail.Body.Bytes(),
		"the two failure causes must be indistinguishable")
}

func TestLoginSuccessEstablishesSession(t *testing.T) {
	s := newTestServer()
	s.registerSenior(t)

	rr, resp := s.do(t, jsonRequest(http.MethodPost, "/login",
		`{"email": "a@ex.com", "password": "p1"}`))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "a@ex.com", resp.Data["email"])
	assert.Equal(t, "senior", resp.Data["token"])

	cookie := sessionCookie(t, rr)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestMeRequiresSession(t *testing.T) {
	s := newTestServer()

	rr, resp := s.do(t, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Unauthorized", resp.Message)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: "forged"})
	rr, _ = s.do(t, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLoginMeLogoutRoundTrip(t *testing.T) {
	s := newTestServer()
	s.registerSenior(t)

	loginRR, _ := s.do(t, jsonRequest(http.MethodPost, "/login",
		`{"email": "a@ex.com", "password": "p1"}`))
	require.Equal(t, http.StatusOK, loginRR.Code)
	cookie := sessionCookie(t, loginRR)

	meReq := httptest.NewRequest(http.MethodGet, "/me", nil)
	meReq.AddCookie(cookie)
	meRR, meResp := s.do(t, meReq)
	require.Equal(t, http.StatusOK, meRR.Code)
	assert.Equal(t, "a@ex.com", meResp.Data["email"])
	assert.NotEmpty(t, meResp.Data["id"])

	logoutReq := httptest.NewRequest(http.MethodPost, "/logout", nil)
	logoutReq.AddCookie(cookie)
	logoutRR, logoutResp := s.do(t, logoutReq)
	require.Equal(t, http.StatusOK, logoutRR.Code)
	assert.True(t, logoutResp.Success)

	cleared := sessionCookie(t, logoutRR)
	assert.Less(t, cleared.MaxAge, 0)
	assert.Empty(t, cleared.Value)

	// The session is gone server-side, not just in the cookie.
	meAgainReq := httptest.NewRequest(http.MethodGet, "/me", nil)
	meAgainReq.AddCookie(cookie)
	meAgainRR, _ := s.do(t, meAgainReq)
	assert.Equal(t, http.StatusUnauthorized, meAgainRR.Code)
}

func TestLogoutWithoutSessionSucceeds(t *testing.T) {
	s := newTestServer()

	rr, resp := s.do(t, httptest.NewRequest(http.MethodPost, "/logout", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, resp.Success)
}

func TestHealth(t *testing.T) {
	s := newTestServer()

	rr, resp := s.do(t, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, resp.OK)
}

func TestRegisterSeniorThenLogin(t *testing.T) {
	s := newTestServer()

	rr, resp := s.do(t, jsonRequest(http.MethodPost, "/register/senior", `{
		"firstname": "Alice", "lastname": "Lee", "age": "72",
		"phone": "123456789", "email": " A@Ex.com ", "city": "Amsterdam",
		"address": "Main Street 1", "contactPref": "phone",
		"language": "English", "notes": "",
		"password": "p1", "re-password": "p1"
	}`))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "senior", resp.Data["type"])
	assert.NotEmpty(t, resp.Data["seniorId"])

	loginRR, loginResp := s.do(t, jsonRequest(http.MethodPost, "/login",
		`{"email": "a@ex.com", "password": "p1"}`))
	require.Equal(t, http.StatusOK, loginRR.Code)
	assert.Equal(t, "a@ex.com", loginResp.Data["email"])
}
