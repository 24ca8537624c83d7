package auth_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/cloverwhale/cafe-and-wifi/database"
	"github.com/cloverwhale/cafe-and-wifi/model"
	"github.com/cloverwhale/cafe-and-wifi/route"
	"github.com/cloverwhale/cafe-and-wifi/store"
	"github.com/cloverwhale/cafe-and-wifi/utils"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := database.Open("sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, database.MigrateWeb(db))

	router := gin.New()
	route.WebRoutes(router, store.NewUserStore(db), store.NewCafeStore(db), testSecret)
	return router, db
}

func postForm(router *gin.Engine, path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerValues(name, email string) url.Values {
	return url.Values{
		"name":     {name},
		"email":    {email},
		"password": {"hunter22"},
	}
}

func TestRegisterSetsSessionAndRedirects(t *testing.T) {
	router, _ := newTestRouter(t)

	w := postForm(router, "/register", registerValues("alice", "alice@example.com"))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	cookie := w.Header().Get("Set-Cookie")
	assert.Contains(t, cookie, utils.SessionCookie+"=")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router, db := newTestRouter(t)

	w := postForm(router, "/register", registerValues("alice", "alice@example.com"))
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = postForm(router, "/register", registerValues("bob", "alice@example.com"))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")

	var count int64
	db.Model(&model.User{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestRegisterRejectsBadEmail(t *testing.T) {
	router, _ := newTestRouter(t)

	w := postForm(router, "/register", registerValues("alice", "not-an-email"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email")
}

func TestLoginFailureDoesNotLeakAccountExistence(t *testing.T) {
	router, _ := newTestRouter(t)

	w := postForm(router, "/register", registerValues("alice", "alice@example.com"))
	require.Equal(t, http.StatusSeeOther, w.Code)

	wrongPassword := postForm(router, "/login", url.Values{
		"email":    {"alice@example.com"},
		"password": {"wrong"},
	})
	unknownEmail := postForm(router, "/login", url.Values{
		"email":    {"nobody@example.com"},
		"password": {"hunter22"},
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String(),
		"wrong password and unknown email must be indistinguishable")
}

func TestLoginSuccess(t *testing.T) {
	router, _ := newTestRouter(t)

	w := postForm(router, "/register", registerValues("alice", "alice@example.com"))
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = postForm(router, "/login", url.Values{
		"email":    {"alice@example.com"},
		"password": {"hunter22"},
	})
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Set-Cookie"), utils.SessionCookie+"=")
}

func TestLogoutWithoutSession(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}
