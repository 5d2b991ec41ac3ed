package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ---- Helpers ----

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "notes-keeper-test",
		TokenDuration: time.Minute,
		BcryptCost:    bcrypt.MinCost,
	}
}

// newTestHandler wires a full handler over the in-memory store so that
// requests exercise the real service and repository layers end to end.
func newTestHandler() *Handler {
	log := logger.Nop()

	db := store.NewMemoryDatabase()
	db.DeclareUniqueIndex("users", "user_email")
	storages := &store.Storages{
		UserRepository: store.NewUserRepository(db, log),
		NoteRepository: store.NewNoteRepository(db, log),
		Degraded:       true,
	}

	services := service.NewServices(storages, testAppConfig(), log)
	return NewHandler(services, storages.Degraded, log)
}

func doJSON(t *testing.T, router http.Handler, method, target, bearer string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, body)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &decoded))
	return decoded
}

func signupAndSignin(t *testing.T, router http.Handler, name, email, password string) string {
	t.Helper()

	rr := doJSON(t, router, http.MethodPost, "/auth/signup", "", map[string]string{
		"user_name":  name,
		"user_email": email,
		"password":   password,
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doJSON(t, router, http.MethodPost, "/auth/signin", "", map[string]string{
		"user_email": email,
		"password":   password,
	})
	require.Equal(t, http.StatusOK, rr.Code)

	token, ok := decodeBody(t, rr)["access_token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}
