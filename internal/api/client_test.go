package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api", staticToken(token), 5*time.Second, nil)
}

func TestClient_BearerAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	c := newTestClient(t, "tok-123", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`{"success":true,"message":"","data":{"email":"a@b.com","expiresIn":"5m"}}`))
	})

	out, err := c.SendOTP(context.Background(), SendOTPRequest{Email: "a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotReqID)
	assert.Equal(t, "a@b.com", out.Email)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":{"email":"a@b.com","expiresIn":"5m"}}`))
	})

	_, err := c.SendOTP(context.Background(), SendOTPRequest{Email: "a@b.com"})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_BackendMessageSurfacedVerbatim(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"message":"OTP has expired"}`))
	})

	_, err := c.VerifyOTP(context.Background(), VerifyOTPRequest{Email: "a@b.com", OTP: "123456"})
	re, ok := IsRemote(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, re.Status)
	assert.Equal(t, "OTP has expired", re.Message)
	assert.Equal(t, "OTP has expired", UserMessage(err))
}

func TestClient_FallbackMessageWhenEnvelopeEmpty(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`not even json`))
	})

	_, err := c.CreateNote(context.Background(), CreateNoteRequest{Title: "t", Content: "c"})
	re, ok := IsRemote(err)
	require.True(t, ok)
	assert.Equal(t, "Failed to create note", re.Message)
}

func TestClient_NetworkErrorIsRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New(srv.URL+"/api", staticToken("tok"), time.Second, nil)
	_, err := c.ListNotes(context.Background(), Filter{})
	re, ok := IsRemote(err)
	require.True(t, ok)
	assert.Equal(t, 0, re.Status)
	assert.Equal(t, "Failed to fetch notes", re.Message)
	assert.Error(t, re.Unwrap())
}

func TestClient_VerifyOTPDecodesSession(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/verify-otp", r.URL.Path)
		var req VerifyOTPRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "123456", req.OTP)
		w.Write([]byte(`{"success":true,"message":"verified","data":{"user":{"id":"u1","email":"a@b.com","name":"Ada","isVerified":true},"token":"jwt-abc"}}`))
	})

	out, err := c.VerifyOTP(context.Background(), VerifyOTPRequest{Email: "a@b.com", OTP: "123456"})
	require.NoError(t, err)
	assert.Equal(t, "u1", out.User.ID)
	assert.Equal(t, "jwt-abc", out.Token)
}

func TestClient_ContextCancellation(t *testing.T) {
	c := newTestClient(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := c.Profile(ctx)
	require.Error(t, err)
	_, ok := IsRemote(err)
	assert.True(t, ok)
}
