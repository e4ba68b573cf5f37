package http

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"club-site/internal/domain"
	"club-site/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	accounts  service.AccountService
	tokens    *service.TokenService
	contact   service.ContactService
	publicDir string
}

func NewHandler(accounts service.AccountService, tokens *service.TokenService, contact service.ContactService, publicDir string) *Handler {
	return &Handler{
		accounts:  accounts,
		tokens:    tokens,
		contact:   contact,
		publicDir: publicDir,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", h.signup)
			auth.POST("/login", h.login)
			auth.GET("/me", h.authRequired(), h.me)
		}
		api.POST("/contact", h.submitContact)
		api.GET("/contact", h.authRequired(), h.requireRole(domain.RoleAdmin), h.listContact)
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})
	}

	if h.publicDir != "" {
		router.NoRoute(h.serveStatic)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type contactRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

func (h *Handler) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "request body must be valid JSON"})
		return
	}
	if req.Email == "" || req.Password == "" || req.Name == "" || req.Role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "all fields (email, password, name, role) are required"})
		return
	}

	account, err := h.accounts.Register(c.Request.Context(), req.Email, req.Password, req.Name, domain.Role(req.Role))
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := h.tokens.Issue(account.ID, account.Role)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "account registered",
		"uid":     account.ID,
		"role":    account.Role,
		"token":   token,
	})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "request body must be valid JSON"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email and password are required"})
		return
	}

	account, err := h.accounts.VerifyCredentials(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := h.tokens.Issue(account.ID, account.Role)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "login successful",
		"uid":     account.ID,
		"role":    account.Role,
		"token":   token,
	})
}

func (h *Handler) me(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
		return
	}

	account, err := h.accounts.GetByID(c.Request.Context(), claims.UID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"uid":        account.ID,
		"email":      account.Email,
		"name":       account.Name,
		"role":       account.Role,
		"created_at": account.CreatedAt.Format(time.RFC3339),
	})
}

func (h *Handler) submitContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "request body must be valid JSON"})
		return
	}

	msg, err := h.contact.Submit(c.Request.Context(), domain.ContactMessage{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "message sent, we will get back to you soon",
		"id":      msg.ID,
	})
}

func (h *Handler) listContact(c *gin.Context) {
	messages, err := h.contact.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]ContactMessageResponse, len(messages))
	for i := range messages {
		resp[i] = contactMessageToResponse(messages[i])
	}
	c.JSON(http.StatusOK, resp)
}

// serveStatic serves the marketing frontend with an index.html fallback, so
// client-side routes resolve. API paths never fall through to the frontend.
func (h *Handler) serveStatic(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
		return
	}

	requested := filepath.Join(h.publicDir, filepath.Clean("/"+c.Request.URL.Path))
	if fi, err := os.Stat(requested); err == nil && !fi.IsDir() {
		c.File(requested)
		return
	}

	c.File(filepath.Join(h.publicDir, "index.html"))
}

type ContactMessageResponse struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	SubmittedAt string `json:"submitted_at"`
}

func contactMessageToResponse(msg domain.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:          msg.ID,
		FirstName:   msg.FirstName,
		LastName:    msg.LastName,
		Email:       msg.Email,
		Subject:     msg.Subject,
		Message:     msg.Message,
		SubmittedAt: msg.SubmittedAt.Format(time.RFC3339),
	}
}

// writeError maps domain errors to HTTP statuses. Only sentinel tags are
// inspected; upstream error text is never echoed to the caller.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"message": "email is already in use, please use a different email or login"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials, please check your email and password"})
	case errors.Is(err, domain.ErrTokenExpired), errors.Is(err, domain.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		c.JSON(http.StatusInternalServerError, gin.H{"message": "service temporarily unavailable, please try again later"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}
