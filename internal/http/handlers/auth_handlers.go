package handlers

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Devdynamow/Ecommerce-backend-New/domain"
)

const tokenCookieMaxAge = 3600 // seconds, matches the token's 1h expiry

// AuthHandlers handles registration, login and profile HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// RegisterRequest represents the registration form (required-all schema)
type RegisterRequest struct {
	Name      string   `form:"name" binding:"required,min=2,max=100"`
	Username  string   `form:"username" binding:"required,min=3,max=50"`
	Email     string   `form:"email" binding:"required,email"`
	Password  string   `form:"password" binding:"required,min=6"`
	Bio       string   `form:"bio" binding:"max=500"`
	Interests []string `form:"interests"`
	IsSeller  bool     `form:"isSeller"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest represents the profile update form. Unlike
// registration nothing is required; absent fields stay unchanged.
type UpdateProfileRequest struct {
	Name      *string  `form:"name" binding:"omitempty,min=2,max=100"`
	Username  *string  `form:"username" binding:"omitempty,min=3,max=50"`
	Bio       *string  `form:"bio" binding:"omitempty,max=500"`
	Interests []string `form:"interests"`
	IsSeller  *bool    `form:"isSeller"`
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, mimeType, err := readUpload(c, "profilePic")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read profile picture"})
		return
	}

	user := &domain.User{
		Name:          req.Name,
		Username:      req.Username,
		Email:         req.Email,
		Bio:           req.Bio,
		ProfileImage:  image,
		ImageMimeType: mimeType,
		Interests:     req.Interests,
		IsSeller:      req.IsSeller,
	}

	result, err := h.authSvc.Register(c.Request.Context(), user, req.Password)
	if err != nil {
		if err == domain.ErrEmailTaken {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already registered with this email."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	setTokenCookie(c, result.Token)
	c.JSON(http.StatusCreated, gin.H{
		"token":   result.Token,
		"message": "User registered successfully.",
		"user":    userResponse(result.User),
	})
}

// Login handles user login. Unknown email and wrong password produce an
// identical response.
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	setTokenCookie(c, result.Token)
	c.JSON(http.StatusOK, gin.H{
		"token":   result.Token,
		"message": "Logged in successfully.",
		"user":    userResponse(result.User),
	})
}

// Logout overwrites the auth cookie with an expired one. The token itself
// stays valid until its original expiry; there is no server-side denylist.
func (h *AuthHandlers) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully."})
}

// Profile handles getting the authenticated user's profile
func (h *AuthHandlers) Profile(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := h.authSvc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user profile"})
		return
	}

	c.JSON(http.StatusOK, userResponse(user))
}

// UpdateProfile handles partial profile updates
func (h *AuthHandlers) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var req UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, mimeType, err := readUpload(c, "profilePic")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read profile picture"})
		return
	}

	update := &domain.ProfileUpdate{
		Name:      req.Name,
		Username:  req.Username,
		Bio:       req.Bio,
		Interests: req.Interests,
		IsSeller:  req.IsSeller,
		Image:     image,
		ImageMime: mimeType,
	}

	user, err := h.authSvc.UpdateProfile(c.Request.Context(), userID, update)
	if err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user":    userResponse(user),
	})
}

// setTokenCookie delivers the signed token in an HTTP-only cookie
func setTokenCookie(c *gin.Context, token string) {
	c.SetCookie("token", token, tokenCookieMaxAge, "/", "", false, true)
}

// readUpload reads an optional file field into memory. A missing file is
// not an error.
func readUpload(c *gin.Context, field string) ([]byte, string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile || err == http.ErrNotMultipart {
			return nil, "", nil
		}
		// Non-multipart requests (JSON login etc.) have no files either
		if err == multipart.ErrMessageTooLarge {
			return nil, "", err
		}
		return nil, "", nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}

	return data, fileHeader.Header.Get("Content-Type"), nil
}

// userResponse shapes a user for JSON responses, never including the
// password hash
func userResponse(u *domain.User) gin.H {
	return gin.H{
		"id":        u.ID,
		"name":      u.Name,
		"username":  u.Username,
		"email":     u.Email,
		"bio":       u.Bio,
		"interests": u.Interests,
		"isSeller":  u.IsSeller,
		"followers": u.Followers,
		"following": u.Following,
		"hasImage":  len(u.ProfileImage) > 0,
		"createdAt": u.CreatedAt,
		"updatedAt": u.UpdatedAt,
	}
}
