package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nikahlink/backend/internal/middleware"
	"github.com/nikahlink/backend/internal/models"
	"github.com/nikahlink/backend/internal/service"
	"github.com/nikahlink/backend/internal/types"
)

const sessionCookieMaxAge = 24 * 60 * 60

// SessionHandler issues session tokens and manages accounts.
type SessionHandler struct {
	sessions service.ISessionService
	accounts service.IAccountService
}

func NewSessionHandler(sessions service.ISessionService, accounts service.IAccountService) *SessionHandler {
	return &SessionHandler{sessions: sessions, accounts: accounts}
}

func (h *SessionHandler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.POST("/session", h.CreateSession)
	public.DELETE("/session", h.ClearSession)
	public.POST("/accounts", h.CreateAccount)
	protected.GET("/accounts", middleware.RequireRole(models.RoleAdmin), h.ListAccounts)
}

// CreateSession issues a signed session token for the submitted
// identity and sets it as an HTTP-only cookie. The account record is
// created with the member role on first contact.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req types.SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	account, err := h.accounts.Ensure(c.Request.Context(), req.Email, req.Name)
	if err != nil {
		log.Printf("[SessionHandler] ensure account for %s failed: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	token, err := h.sessions.IssueToken(account.Email, account.Role)
	if err != nil {
		log.Printf("[SessionHandler] token issuance for %s failed: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, sessionCookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"token": token, "role": account.Role})
}

// ClearSession expires the session cookie.
func (h *SessionHandler) ClearSession(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "session cleared"})
}

// CreateAccount registers an account explicitly. Duplicate emails are
// rejected.
func (h *SessionHandler) CreateAccount(c *gin.Context) {
	var req types.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	account, err := h.accounts.Create(c.Request.Context(), req.Email, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrAccountExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "account already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create account"})
		return
	}
	c.JSON(http.StatusCreated, account)
}

func (h *SessionHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.accounts.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list accounts"})
		return
	}
	c.JSON(http.StatusOK, accounts)
}
