package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	orderapp "github.com/shopcraft/storefront/internal/order/app"
	userapp "github.com/shopcraft/storefront/internal/user/app"
	userdomain "github.com/shopcraft/storefront/internal/user/domain"
)

type UserHandler struct {
	svc *userapp.Service
}

func NewUserHandler(svc *userapp.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

type registerRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

type profileUpdateRequest struct {
	FirstName   *string                 `json:"first_name"`
	LastName    *string                 `json:"last_name"`
	DisplayName *string                 `json:"display_name"`
	Phone       *string                 `json:"phone"`
	Address     *userdomain.Address     `json:"address"`
	Preferences *userdomain.Preferences `json:"preferences"`
}

type profileResponse struct {
	UID         string                 `json:"uid"`
	Email       string                 `json:"email"`
	FirstName   string                 `json:"first_name,omitempty"`
	LastName    string                 `json:"last_name,omitempty"`
	DisplayName string                 `json:"display_name,omitempty"`
	Phone       string                 `json:"phone,omitempty"`
	Address     userdomain.Address     `json:"address"`
	Preferences userdomain.Preferences `json:"preferences"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

func toProfileResponse(p userdomain.Profile) profileResponse {
	return profileResponse{
		UID:         p.UID,
		Email:       p.Email,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DisplayName: p.DisplayName,
		Phone:       p.Phone,
		Address:     p.Address,
		Preferences: p.Preferences,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (h *UserHandler) requireUser(c *gin.Context) (string, bool) {
	uid := userID(c)
	if uid == "" {
		respondErr(c, orderapp.ErrNotAuthenticated)
		return "", false
	}
	return uid, true
}

// Register creates the profile document for a freshly authenticated
// identity. The credential side already happened at the auth provider.
func (h *UserHandler) Register(c *gin.Context) {
	uid, ok := h.requireUser(c)
	if !ok {
		return
	}

	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, userapp.ErrInvalidInput)
		return
	}

	p, err := h.svc.CreateProfile(c.Request.Context(), userdomain.Profile{
		UID:       uid,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusCreated, toProfileResponse(p))
}

func (h *UserHandler) Get(c *gin.Context) {
	uid, ok := h.requireUser(c)
	if !ok {
		return
	}

	p, err := h.svc.GetProfile(c.Request.Context(), uid)
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, toProfileResponse(p))
}

func (h *UserHandler) Update(c *gin.Context) {
	uid, ok := h.requireUser(c)
	if !ok {
		return
	}

	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErr(c, userapp.ErrInvalidInput)
		return
	}

	p, err := h.svc.UpdateProfile(c.Request.Context(), uid, userdomain.Update{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DisplayName: req.DisplayName,
		Phone:       req.Phone,
		Address:     req.Address,
		Preferences: req.Preferences,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, toProfileResponse(p))
}

func (h *UserHandler) Delete(c *gin.Context) {
	uid, ok := h.requireUser(c)
	if !ok {
		return
	}

	if err := h.svc.DeleteProfile(c.Request.Context(), uid); err != nil {
		respondErr(c, err)
		return
	}
	respond(c, http.StatusOK, gin.H{"deleted": true})
}
