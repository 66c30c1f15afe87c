package handlers

import (
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
	"github.com/pawfessional/store-api/internal/auth"
	"github.com/pawfessional/store-api/internal/models"
)

//
// --- Auth & Profile Handlers ---
//

// RegisterInput defines the JSON for account creation. Contact and address
// are optional here; they can be filled in later from the pickup-info form.
type RegisterInput struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	Contact         string `json:"contact"`
	Address         string `json:"address"`
}

// Register is the handler for POST /v1/register.
func (h *Handlers) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Password != input.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
		return
	}

	var password models.Password
	if err := password.Set(input.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	query := `
		INSERT INTO users (role, name, email, password_hash, contact, address, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	result, err := h.DB.Exec(query,
		models.RoleCustomer,
		input.Name,
		strings.ToLower(strings.TrimSpace(input.Email)),
		password.Hash,
		input.Contact,
		input.Address,
		time.Now(),
	)
	if err != nil {
		if mysqlErr, ok := err.(*mysql.MySQLError); ok && mysqlErr.Number == 1062 {
			c.JSON(http.StatusConflict, gin.H{"error": "This email is already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	userID, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read new account ID"})
		return
	}

	token, err := auth.GenerateToken(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Welcome to Pawfessional!",
		"token":   token,
		"userId":  userID,
	})
}

// LoginInput defines the JSON for login.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login is the handler for POST /v1/login.
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	query := `SELECT id, role, name, email, password_hash FROM users WHERE email = ?`
	err := h.DB.QueryRow(query, strings.ToLower(strings.TrimSpace(input.Email))).Scan(
		&user.ID, &user.Role, &user.Name, &user.Email, &user.PasswordHash,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up account"})
		return
	}

	password := models.Password{Hash: user.PasswordHash}
	match, err := password.Matches(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify password"})
		return
	}
	if !match {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong email or password"})
		return
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "You have logged in successfully.",
		"token":   token,
		"userId":  user.ID,
		"role":    user.Role,
	})
}

// GetMyProfile is the handler for GET /v1/profile. It returns the pickup
// information used at checkout.
func (h *Handlers) GetMyProfile(c *gin.Context) {
	userIDRaw, _ := c.Get("userID")
	userID := userIDRaw.(int64)

	var user models.User
	query := `SELECT id, role, name, email, contact, address, created_at FROM users WHERE id = ?`
	err := h.DB.QueryRow(query, userID).Scan(
		&user.ID, &user.Role, &user.Name, &user.Email, &user.Contact, &user.Address, &user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateProfileInput is the editable pickup information.
type UpdateProfileInput struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

// UpdateMyProfile is the handler for PUT /v1/profile.
func (h *Handlers) UpdateMyProfile(c *gin.Context) {
	userIDRaw, _ := c.Get("userID")
	userID := userIDRaw.(int64)

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	query := `UPDATE users SET name = ?, contact = ?, address = ? WHERE id = ?`
	if _, err := h.DB.Exec(query, input.Name, input.Contact, input.Address, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update information"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Information updated successfully!"})
}
