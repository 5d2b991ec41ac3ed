package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup_Success(t *testing.T) {
	router := newTestHandler().Init()

	rr := doJSON(t, router, http.MethodPost, "/auth/signup", "", map[string]string{
		"user_name":  "Alice",
		"user_email": "alice@example.com",
		"password":   "s3cret",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	body := decodeBody(t, rr)
	assert.NotEmpty(t, body["user_id"])
	assert.Equal(t, "Alice", body["user_name"])
	assert.Equal(t, "alice@example.com", body["user_email"])
	assert.NotEmpty(t, body["created_on"])

	// neither the plaintext nor the digest may appear anywhere in the reply
	assert.NotContains(t, body, "password")
	assert.NotContains(t, rr.Body.String(), "s3cret")
	assert.NotContains(t, rr.Body.String(), "$2a$")
}

func TestSignup_DuplicateEmail(t *testing.T) {
	router := newTestHandler().Init()

	payload := map[string]string{
		"user_name":  "Alice",
		"user_email": "alice@example.com",
		"password":   "s3cret",
	}
	rr := doJSON(t, router, http.MethodPost, "/auth/signup", "", payload)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/auth/signup", "", payload)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "email already registered", decodeBody(t, rr)["detail"])
}

func TestSignup_InvalidPayloadTableTest(t *testing.T) {
	router := newTestHandler().Init()

	tests := []struct {
		name    string
		payload map[string]string
	}{
		{"missing name", map[string]string{"user_email": "a@x.com", "password": "p"}},
		{"missing password", map[string]string{"user_name": "A", "user_email": "a@x.com"}},
		{"email without at sign", map[string]string{"user_name": "A", "user_email": "a.x.com", "password": "p"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doJSON(t, router, http.MethodPost, "/auth/signup", "", tt.payload)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestSignup_MalformedJSON(t *testing.T) {
	router := newTestHandler().Init()

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "invalid JSON was passed", decodeBody(t, rr)["detail"])
}

func TestSignin_Success(t *testing.T) {
	router := newTestHandler().Init()

	token := signupAndSignin(t, router, "Alice", "alice@example.com", "s3cret")
	assert.NotEmpty(t, token)

	rr := doJSON(t, router, http.MethodPost, "/auth/signin", "", map[string]string{
		"user_email": "alice@example.com",
		"password":   "s3cret",
	})
	require.Equal(t, http.StatusOK, rr.Code)

	body := decodeBody(t, rr)
	assert.Equal(t, "bearer", body["token_type"])
	// the token must look like a three-part JWT
	accessToken, _ := body["access_token"].(string)
	assert.Len(t, strings.Split(accessToken, "."), 3)
}

func TestSignin_WrongCredentialsTableTest(t *testing.T) {
	router := newTestHandler().Init()
	signupAndSignin(t, router, "Alice", "alice@example.com", "s3cret")

	tests := []struct {
		name    string
		payload map[string]string
	}{
		{"wrong password", map[string]string{"user_email": "alice@example.com", "password": "wrong"}},
		{"unknown email", map[string]string{"user_email": "nobody@example.com", "password": "s3cret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := doJSON(t, router, http.MethodPost, "/auth/signin", "", tt.payload)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			// identical detail for both failure modes
			assert.Equal(t, "incorrect email or password", decodeBody(t, rr)["detail"])
		})
	}
}

func TestRootAndHealth(t *testing.T) {
	router := newTestHandler().Init()

	rr := doJSON(t, router, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, decodeBody(t, rr)["message"])

	rr = doJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "in-memory", body["storage"])
}
