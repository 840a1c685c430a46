package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/storefront/internal/config"
	"github.com/MKhiriev/storefront/internal/utils"
	"github.com/MKhiriev/storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*Manager, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore(time.Hour, &sequenceIDs{})
	return NewManager(store, config.Session{
		Secret:     "test-secret",
		CookieName: "sid",
		TTL:        time.Hour,
	}), store
}

func cookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestManager_LoadWithoutCookie(t *testing.T) {
	m, _ := newTestManager(t)
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	s := m.Load(r)

	require.NotNil(t, s)
	assert.True(t, s.IsNew())
	assert.False(t, s.IsAuthenticated())
}

func TestManager_SaveThenLoad(t *testing.T) {
	m, _ := newTestManager(t)
	rec := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)

	s := &models.Session{UserID: 42}
	require.NoError(t, m.Save(rec, r, s))

	cookie := cookieFrom(t, rec)
	assert.Equal(t, "sid", cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 3600, cookie.MaxAge)

	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(cookie)
	loaded := m.Load(next)

	assert.Equal(t, s.ID, loaded.ID)
	assert.Equal(t, int64(42), loaded.UserID)
}

func TestManager_LoadTamperedCookie(t *testing.T) {
	m, store := newTestManager(t)
	s := &models.Session{UserID: 42}
	require.NoError(t, store.Save(t.Context(), s))

	forged, err := utils.GenerateSessionToken(tokenIssuer, s.ID, time.Hour, "other-secret")
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "sid", Value: forged})

	loaded := m.Load(r)
	assert.True(t, loaded.IsNew())
	assert.False(t, loaded.IsAuthenticated())
}

func TestManager_LoadDeletedSession(t *testing.T) {
	m, store := newTestManager(t)
	rec := httptest.NewRecorder()
	s := &models.Session{UserID: 1}
	require.NoError(t, m.Save(rec, httptest.NewRequest(http.MethodGet, "/", nil), s))
	require.NoError(t, store.Delete(t.Context(), s.ID))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(cookieFrom(t, rec))

	assert.True(t, m.Load(r).IsNew())
}

func TestManager_Clear(t *testing.T) {
	m, store := newTestManager(t)
	r := httptest.NewRequest(http.MethodGet, "/logout", nil)
	s := &models.Session{UserID: 5}
	require.NoError(t, m.Save(httptest.NewRecorder(), r, s))
	id := s.ID

	rec := httptest.NewRecorder()
	require.NoError(t, m.Clear(rec, r, s))

	assert.Equal(t, models.Session{}, *s)
	_, err := store.Get(t.Context(), id)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	cookie := cookieFrom(t, rec)
	assert.Equal(t, "sid", cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestManager_ClearNewSession(t *testing.T) {
	m, _ := newTestManager(t)
	rec := httptest.NewRecorder()

	require.NoError(t, m.Clear(rec, httptest.NewRequest(http.MethodGet, "/login", nil), &models.Session{}))

	assert.Len(t, rec.Result().Cookies(), 1)
}
