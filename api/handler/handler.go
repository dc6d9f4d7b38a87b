package handler

import (
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"propdesk/api/models"
	"propdesk/database"
)

// Handler serves the user-facing proposal pages.
type Handler struct {
	db *database.Client
}

func New(db *database.Client) *Handler {
	return &Handler{db: db}
}

// Home redirects to the proposals list; unauthenticated requests are already
// bounced to the login page by the auth middleware.
func (h *Handler) Home(c *gin.Context) {
	c.Redirect(http.StatusFound, "/proposals")
}

// Proposals renders the proposals owned by the session's user.
func (h *Handler) Proposals(c *gin.Context) {
	user := c.MustGet("user").(*models.User)

	proposals, err := h.db.ListProposalsByUser(c.Request.Context(), user.ID)
	if err != nil {
		c.AbortWithError(http.StatusInternalServerError, err) //nolint:errcheck
		return
	}

	c.HTML(http.StatusOK, "proposals.html", gin.H{
		"User":      user,
		"Proposals": models.ProposalViewsFromDB(proposals),
		"Flashes":   takeFlashes(c),
	})
}

// AddProposalForm renders the empty submission form.
func (h *Handler) AddProposalForm(c *gin.Context) {
	user := c.MustGet("user").(*models.User)
	c.HTML(http.StatusOK, "add_proposal.html", gin.H{
		"User":  user,
		"Tipos": models.ProposalTipos,
	})
}

// AddProposal inserts a proposal owned by the session's user. Numeric fields
// are coerced only; a malformed number fails the request with a client error
// and nothing is inserted.
func (h *Handler) AddProposal(c *gin.Context) {
	user := c.MustGet("user").(*models.User)

	parcela, err := strconv.Atoi(c.PostForm("parcela"))
	if err != nil {
		c.AbortWithError(http.StatusBadRequest, err) //nolint:errcheck
		return
	}
	valor, err := strconv.ParseFloat(c.PostForm("valor"), 64)
	if err != nil {
		c.AbortWithError(http.StatusBadRequest, err) //nolint:errcheck
		return
	}
	comissao, err := strconv.ParseFloat(c.PostForm("comissao"), 64)
	if err != nil {
		c.AbortWithError(http.StatusBadRequest, err) //nolint:errcheck
		return
	}

	proposal := database.Proposal{
		UserID:   user.ID,
		Proposta: c.PostForm("proposta"),
		Parcela:  parcela,
		Banco:    c.PostForm("banco"),
		Valor:    valor,
		Tipo:     c.PostForm("tipo"),
		Comissao: comissao,
	}
	if err := h.db.CreateProposal(c.Request.Context(), &proposal); err != nil {
		c.AbortWithError(http.StatusInternalServerError, err) //nolint:errcheck
		return
	}

	c.Redirect(http.StatusFound, "/proposals")
}

// takeFlashes drains the pending flash messages from the session.
func takeFlashes(c *gin.Context) []string {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := session.Save(); err != nil {
		log.Error("failed to save session after draining flashes", "error", err)
	}
	flashes := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			flashes = append(flashes, s)
		}
	}
	return flashes
}
