package handlers

import (
	"database/sql"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pawfessional/store-api/internal/models"
)

//
// --- Appointment Handlers ---
//

// BookAppointmentInput defines the JSON for the booking form. Condition is
// free text; everything else is required, and "Others" as the pet type
// additionally requires the free-text pet name.
type BookAppointmentInput struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	ContactNumber   string `json:"contactNumber" binding:"required"`
	TypeOfPet       string `json:"typeOfPet" binding:"required"`
	OtherPet        string `json:"otherPet"`
	Service         string `json:"service" binding:"required"`
	Condition       string `json:"condition"`
	AppointmentDate string `json:"appointmentDate" binding:"required"`
	AppointmentTime string `json:"appointmentTime" binding:"required"`
}

// BookAppointment is the handler for POST /v1/appointments.
func (h *Handlers) BookAppointment(c *gin.Context) {
	userIDRaw, _ := c.Get("userID")
	userID := userIDRaw.(int64)

	var input BookAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill out all required fields."})
		return
	}

	if !models.ValidPetType(input.TypeOfPet) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown pet type"})
		return
	}
	typeOfPet := input.TypeOfPet
	if typeOfPet == "Others" {
		if strings.TrimSpace(input.OtherPet) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please specify your pet."})
			return
		}
		typeOfPet = strings.TrimSpace(input.OtherPet)
	}

	if !models.ValidService(input.Service) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown service"})
		return
	}
	if !models.ValidTimeSlot(input.AppointmentTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please pick one of the available time slots."})
		return
	}
	if !models.ValidAppointmentDate(input.AppointmentDate, time.Now()) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Appointment date must not be in the past."})
		return
	}

	condition := strings.TrimSpace(input.Condition)
	if condition == "" {
		condition = "N/A"
	}

	query := `
		INSERT INTO appointments
		(user_id, name, email, contact_number, type_of_pet, service, pet_condition,
		 appointment_date, appointment_time, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := h.DB.Exec(query,
		userID, input.Name, input.Email, input.ContactNumber,
		typeOfPet, input.Service, condition,
		input.AppointmentDate, input.AppointmentTime,
		models.AppointmentStatusPending, time.Now(),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong while booking your appointment."})
		return
	}

	appointmentID, _ := result.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{
		"message":       "Your appointment has been successfully submitted!",
		"appointmentId": appointmentID,
	})
}

// GetMyAppointments is the handler for GET /v1/appointments.
func (h *Handlers) GetMyAppointments(c *gin.Context) {
	userIDRaw, _ := c.Get("userID")
	userID := userIDRaw.(int64)

	query := `
		SELECT id, user_id, name, email, contact_number, type_of_pet, service, pet_condition,
		       appointment_date, appointment_time, status, created_at
		FROM appointments
		WHERE user_id = ?
		ORDER BY created_at DESC`

	rows, err := h.DB.Query(query, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load appointments."})
		return
	}
	defer rows.Close()

	var appointments []models.Appointment
	for rows.Next() {
		var a models.Appointment
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Name, &a.Email, &a.ContactNumber,
			&a.TypeOfPet, &a.Service, &a.Condition,
			&a.AppointmentDate, &a.AppointmentTime, &a.Status, &a.CreatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan appointment"})
			return
		}
		appointments = append(appointments, a)
	}
	if err = rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating appointments"})
		return
	}

	if appointments == nil {
		appointments = []models.Appointment{}
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// CancelAppointment is the handler for POST /v1/appointments/:id/cancel.
// Only a still-pending appointment can be cancelled by its owner.
func (h *Handlers) CancelAppointment(c *gin.Context) {
	userIDRaw, _ := c.Get("userID")
	userID := userIDRaw.(int64)

	appointmentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
		return
	}

	var status string
	err = h.DB.QueryRow(`SELECT status FROM appointments WHERE id = ? AND user_id = ?`, appointmentID, userID).Scan(&status)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up appointment"})
		return
	}

	if !models.CanCancelAppointment(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only pending appointments can be cancelled"})
		return
	}

	if _, err := h.DB.Exec(
		`UPDATE appointments SET status = ? WHERE id = ? AND user_id = ?`,
		models.AppointmentStatusCancelled, appointmentID, userID,
	); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel appointment. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Your appointment has been successfully cancelled."})
}

//
// --- Staff: appointment review handlers ---
//

// GetPendingAppointments is the handler for GET /v1/staff/appointments/pending.
func (h *Handlers) GetPendingAppointments(c *gin.Context) {
	query := `
		SELECT id, user_id, name, email, contact_number, type_of_pet, service, pet_condition,
		       appointment_date, appointment_time, status, created_at
		FROM appointments
		WHERE status = ?
		ORDER BY appointment_date ASC, created_at ASC`

	rows, err := h.DB.Query(query, models.AppointmentStatusPending)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load appointments."})
		return
	}
	defer rows.Close()

	var appointments []models.Appointment
	for rows.Next() {
		var a models.Appointment
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Name, &a.Email, &a.ContactNumber,
			&a.TypeOfPet, &a.Service, &a.Condition,
			&a.AppointmentDate, &a.AppointmentTime, &a.Status, &a.CreatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan appointment"})
			return
		}
		appointments = append(appointments, a)
	}
	if err = rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating appointments"})
		return
	}

	if appointments == nil {
		appointments = []models.Appointment{}
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

// ReviewAppointment flips a pending appointment to Approved or Rejected.
// Handler for PATCH /v1/staff/appointments/:id/approve and .../reject.
func (h *Handlers) ReviewAppointment(decision string) gin.HandlerFunc {
	return func(c *gin.Context) {
		appointmentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid appointment ID"})
			return
		}

		result, err := h.DB.Exec(
			`UPDATE appointments SET status = ? WHERE id = ? AND status = ?`,
			decision, appointmentID, models.AppointmentStatusPending,
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update appointment"})
			return
		}
		affected, _ := result.RowsAffected()
		if affected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found or not pending"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Appointment " + strings.ToLower(decision)})
	}
}
