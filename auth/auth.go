// Package auth implements registration, login, and logout for the
// session surface. Credential failures are deliberately generic so the
// response never reveals whether an account exists.
package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/cloverwhale/cafe-and-wifi/form"
	"github.com/cloverwhale/cafe-and-wifi/model"
	"github.com/cloverwhale/cafe-and-wifi/store"
	"github.com/cloverwhale/cafe-and-wifi/utils"
)

const invalidCredentials = "User not found or password incorrect."

// RegisterPage returns the blank registration form shape.
func RegisterPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"form": form.RegisterForm{}})
	}
}

// LoginPage returns the blank login form shape.
func LoginPage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"form": form.LoginForm{}})
	}
}

// Register creates the account, hashes the password, and signs the new
// user in. A duplicate name or email is a user-facing message, not a
// crash, and leaves no second row behind.
func Register(users *store.UserStore, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var f form.RegisterForm
		if errs := form.Bind(c, &f); errs != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(f.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}

		user := model.User{Name: f.Name, Email: f.Email, Password: string(hash)}
		if err := users.Create(&user); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				c.JSON(http.StatusConflict, gin.H{
					"error": "User already exists, Please try with another email or name.",
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
			return
		}

		if err := setSession(c, user.ID, secret); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to establish session"})
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
	}
}

// Login verifies credentials and establishes the session. Unknown email
// and wrong password produce the same outcome.
func Login(users *store.UserStore, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var f form.LoginForm
		if errs := form.Bind(c, &f); errs != nil {
			c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		user, err := users.ByEmail(f.Email)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": invalidCredentials})
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(f.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": invalidCredentials})
			return
		}

		if err := setSession(c, user.ID, secret); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to establish session"})
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
	}
}

// Logout clears the session unconditionally; it succeeds even when no
// session was active.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie(utils.SessionCookie, "", -1, "/", "", false, true)
		c.Redirect(http.StatusSeeOther, "/")
	}
}

func setSession(c *gin.Context, userID uint, secret string) error {
	token, err := utils.GenerateSessionToken(userID, secret)
	if err != nil {
		return err
	}
	c.SetCookie(utils.SessionCookie, token, int(utils.SessionTTL.Seconds()), "/", "", false, true)
	return nil
}
