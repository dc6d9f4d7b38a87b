package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"propdesk/api/models"
	"propdesk/database"
)

// AdminHandler serves the admin management pages.
type AdminHandler struct {
	db *database.Client
}

func NewAdmin(db *database.Client) *AdminHandler {
	return &AdminHandler{db: db}
}

// Users renders the user management view with the add-user form.
func (h *AdminHandler) Users(c *gin.Context) {
	user := c.MustGet("user").(*models.User)

	users, err := h.db.ListUsers(c.Request.Context())
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err) //nolint:errcheck
		return
	}

	c.HTML(http.StatusOK, "users.html", gin.H{
		"User":    user,
		"Users":   models.UserViewsFromDB(users),
		"Flashes": takeFlashes(c),
	})
}

// AddUser creates a regular user. An absent commission field defaults to 0,
// a malformed one fails the request. A duplicate username is a no-op that
// surfaces a flash message on the users list.
func (h *AdminHandler) AddUser(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	commission := 0.0
	if raw := c.PostForm("commission"); raw != "" {
		var err error
		commission, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			c.AbortWithError(http.StatusBadRequest, err) //nolint:errcheck
			return
		}
	}

	_, err := h.db.CreateUser(c.Request.Context(), username, password, false, commission)
	if errors.Is(err, database.ErrUsernameExists) {
		flash(c, "Usuário já existe")
	} else if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err) //nolint:errcheck
		return
	}

	c.Redirect(http.StatusFound, "/admin/users")
}

// AllProposals renders every proposal joined with the submitting username.
func (h *AdminHandler) AllProposals(c *gin.Context) {
	user := c.MustGet("user").(*models.User)

	proposals, err := h.db.ListAllProposals(c.Request.Context())
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err) //nolint:errcheck
		return
	}

	c.HTML(http.StatusOK, "all_proposals.html", gin.H{
		"User":      user,
		"Proposals": models.ProposalViewsFromJoined(proposals),
	})
}

// Commissions renders the commission rate management view.
func (h *AdminHandler) Commissions(c *gin.Context) {
	user := c.MustGet("user").(*models.User)

	rates, err := h.db.ListCommissionRates(c.Request.Context())
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err) //nolint:errcheck
		return
	}
	users, err := h.db.ListUsers(c.Request.Context())
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err) //nolint:errcheck
		return
	}

	c.HTML(http.StatusOK, "commissions.html", gin.H{
		"User":    user,
		"Rates":   models.CommissionRateViewsFromDB(rates),
		"Users":   models.UserViewsFromDB(users),
		"Tipos":   models.ProposalTipos,
		"Flashes": takeFlashes(c),
	})
}

// AddCommission upserts the rate for a (user, banco, tipo) combination.
func (h *AdminHandler) AddCommission(c *gin.Context) {
	userID, err := strconv.ParseUint(c.PostForm("user_id"), 10, 64)
	if err != nil {
		c.AbortWithError(http.StatusBadRequest, err) //nolint:errcheck
		return
	}
	percentual, err := strconv.ParseFloat(c.PostForm("percentual"), 64)
	if err != nil {
		c.AbortWithError(http.StatusBadRequest, err) //nolint:errcheck
		return
	}

	rate := database.CommissionRate{
		UserID:     uint(userID),
		Banco:      c.PostForm("banco"),
		Tipo:       c.PostForm("tipo"),
		Percentual: percentual,
	}
	if err := h.db.UpsertCommissionRate(c.Request.Context(), &rate); err != nil {
		c.AbortWithError(http.StatusInternalServerError, err) //nolint:errcheck
		return
	}

	c.Redirect(http.StatusFound, "/admin/commissions")
}

// DeleteCommission removes a commission rate by id.
func (h *AdminHandler) DeleteCommission(c *gin.Context) {
	id, err := strconv.ParseUint(c.PostForm("id"), 10, 64)
	if err != nil {
		c.AbortWithError(http.StatusBadRequest, err) //nolint:errcheck
		return
	}

	if err := h.db.DeleteCommissionRate(c.Request.Context(), uint(id)); err != nil {
		c.AbortWithError(http.StatusInternalServerError, err) //nolint:errcheck
		return
	}

	c.Redirect(http.StatusFound, "/admin/commissions")
}

func flash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	if err := session.Save(); err != nil {
		log.Error("failed to save flash message", "error", err)
	}
}
