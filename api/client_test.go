package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCreds struct {
	token   string
	cleared bool
}

func (f *fakeCreds) Token() string { return f.token }
func (f *fakeCreds) Clear()        { f.cleared = true; f.token = "" }

func TestDoAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, &fakeCreds{token: "tok-1"})
	require.NoError(t, client.Do(context.Background(), http.MethodGet, "/posts/", nil, nil, nil))
	assert.Equal(t, "Bearer tok-1", gotAuth)
}

func TestDoOmitsAuthorizationWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, &fakeCreds{})
	require.NoError(t, client.Do(context.Background(), http.MethodGet, "/posts/", nil, nil, nil))
	assert.Equal(t, "", gotAuth)
}

func TestDoPrefixesPathsWithAPI(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", &fakeCreds{})
	query := url.Values{"page": {"2"}, "limit": {"20"}}
	require.NoError(t, client.Do(context.Background(), http.MethodGet, "/messages/c1", nil, query, nil))
	assert.Equal(t, "/api/messages/c1", gotPath)
	assert.Equal(t, "limit=20&page=2", gotQuery)
}

func TestDoClearsCredentialsOn401(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "Authentication required"}`))
	}))
	defer srv.Close()

	creds := &fakeCreds{token: "stale"}
	client := NewClient(srv.URL, creds)
	err := client.Do(context.Background(), http.MethodGet, "/users/profile/me", nil, nil, nil)

	require.Error(t, err)
	assert.True(t, creds.cleared)
	assert.Equal(t, KindUnauthorized, KindOf(err))
	assert.Equal(t, "Authentication required", UserMessage(err, "fallback"))
}

func TestDoClassifiesStatuses(t *testing.T) {
	cases := []struct {
		status int
		kind   Kind
	}{
		{http.StatusForbidden, KindForbidden},
		{http.StatusNotFound, KindNotFound},
		{http.StatusBadRequest, KindOther},
		{http.StatusInternalServerError, KindOther},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
			w.Write([]byte(`{"error": "nope"}`))
		}))
		client := NewClient(srv.URL, &fakeCreds{})
		err := client.Do(context.Background(), http.MethodGet, "/posts/", nil, nil, nil)
		srv.Close()

		require.Error(t, err)
		assert.Equal(t, tc.kind, KindOf(err), "status %d", tc.status)
		assert.Equal(t, "nope", UserMessage(err, "fallback"))
	}
}

func TestDoErrorMessageFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, &fakeCreds{})
	err := client.Do(context.Background(), http.MethodGet, "/posts/", nil, nil, nil)
	require.Error(t, err)
	assert.Equal(t, "request failed", UserMessage(err, "fallback"))
}

func TestDoSendsJSONBodyAndDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"echo": "` + body["title"] + `"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, &fakeCreds{})
	var resp struct {
		Echo string `json:"echo"`
	}
	body := map[string]string{"title": "hello"}
	require.NoError(t, client.Do(context.Background(), http.MethodPost, "/posts/", body, nil, &resp))
	assert.Equal(t, "hello", resp.Echo)
}

func TestUserMessageFallbackForPlainErrors(t *testing.T) {
	assert.Equal(t, "fallback", UserMessage(assert.AnError, "fallback"))
	assert.Equal(t, KindOther, KindOf(assert.AnError))
}
