package auth

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"propdesk/database"
)

// Session keys for the authenticated identity.
const (
	sessionKeyUserID   = "user_id"
	sessionKeyUsername = "user_username"
	sessionKeyIsAdmin  = "user_is_admin"
)

// Provider authenticates users against the local database and manages the
// session-bound identity.
type Provider struct {
	db *database.Client
}

// New creates a credentials provider backed by the given database.
func New(db *database.Client) *Provider {
	return &Provider{db: db}
}

// LoginPage renders the login form.
func (p *Provider) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login handles the login form submission. On success it stores the user's
// identity in the session and redirects to the proposals list. On failure it
// re-renders the form with a flash message; the response never reveals
// whether the username or the password was wrong.
func (p *Provider) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := p.db.AuthenticateUser(c.Request.Context(), username, password)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithError(http.StatusInternalServerError, err) //nolint:errcheck
			return
		}
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Flash": "Usuário ou senha inválidos",
		})
		return
	}

	session := sessions.Default(c)
	session.Set(sessionKeyUserID, user.ID)
	session.Set(sessionKeyUsername, user.Username)
	session.Set(sessionKeyIsAdmin, user.IsAdmin)
	if err := session.Save(); err != nil {
		log.Error("failed to save session", "error", err)
		c.AbortWithError(http.StatusInternalServerError, err) //nolint:errcheck
		return
	}

	c.Redirect(http.StatusFound, "/proposals")
}

// Logout clears the whole session and redirects to the login page.
func (p *Provider) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		log.Error("failed to clear session", "error", err)
	}
	c.Redirect(http.StatusFound, "/login")
}
