package handlers

import (
	"fmt"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawfessional/store-api/internal/models"
)

const insertAppointmentQuery = `INSERT INTO appointments (user_id, name, email, contact_number, type_of_pet, service, pet_condition, appointment_date, appointment_time, status, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

func bookingBody(overrides map[string]string) string {
	fields := map[string]string{
		"name":            "Jane Cruz",
		"email":           "jane@example.com",
		"contactNumber":   "09171234567",
		"typeOfPet":       "Dogs",
		"service":         "Vaccination",
		"appointmentDate": time.Now().AddDate(0, 0, 7).Format(models.AppointmentDateLayout),
		"appointmentTime": "8:00 AM - 12:00 PM",
	}
	for k, v := range overrides {
		fields[k] = v
	}
	body := "{"
	first := true
	for k, v := range fields {
		if !first {
			body += ","
		}
		body += fmt.Sprintf("%q:%q", k, v)
		first = false
	}
	return body + "}"
}

func TestBookAppointment(t *testing.T) {
	t.Run("books with condition defaulted", func(t *testing.T) {
		h, mock := newTestHandlers(t)
		date := time.Now().AddDate(0, 0, 7).Format(models.AppointmentDateLayout)

		mock.ExpectExec(regexp.QuoteMeta(insertAppointmentQuery)).
			WithArgs(testUserID, "Jane Cruz", "jane@example.com", "09171234567",
				"Dogs", "Vaccination", "N/A", date, "8:00 AM - 12:00 PM",
				models.AppointmentStatusPending, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(12, 1))

		w := serve(h.BookAppointment, http.MethodPost, "/appointments", "/appointments", bookingBody(nil))

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, float64(12), jsonBody(t, w)["appointmentId"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Others substitutes the free-text pet", func(t *testing.T) {
		h, mock := newTestHandlers(t)
		date := time.Now().AddDate(0, 0, 7).Format(models.AppointmentDateLayout)

		mock.ExpectExec(regexp.QuoteMeta(insertAppointmentQuery)).
			WithArgs(testUserID, "Jane Cruz", "jane@example.com", "09171234567",
				"Iguana", "Consultation", "N/A", date, "8:00 AM - 12:00 PM",
				models.AppointmentStatusPending, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(13, 1))

		w := serve(h.BookAppointment, http.MethodPost, "/appointments", "/appointments",
			bookingBody(map[string]string{"typeOfPet": "Others", "otherPet": "Iguana", "service": "Consultation"}))

		require.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejections", func(t *testing.T) {
		tests := []struct {
			name      string
			overrides map[string]string
		}{
			{"Others without the pet name", map[string]string{"typeOfPet": "Others"}},
			{"unknown pet type", map[string]string{"typeOfPet": "Dinosaurs"}},
			{"unknown service", map[string]string{"service": "Teeth Whitening"}},
			{"off-menu time slot", map[string]string{"appointmentTime": "9:00 AM - 10:00 AM"}},
			{"past date", map[string]string{"appointmentDate": "2020-01-01"}},
			{"bad email", map[string]string{"email": "not-an-email"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				h, mock := newTestHandlers(t)
				w := serve(h.BookAppointment, http.MethodPost, "/appointments", "/appointments", bookingBody(tt.overrides))
				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.NoError(t, mock.ExpectationsWereMet(), "nothing may be written")
			})
		}
	})
}

func TestCancelAppointment(t *testing.T) {
	t.Run("pending appointment is cancelled", func(t *testing.T) {
		h, mock := newTestHandlers(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT status FROM appointments WHERE id = ? AND user_id = ?`)).
			WithArgs(int64(4), testUserID).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(models.AppointmentStatusPending))
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE appointments SET status = ? WHERE id = ? AND user_id = ?`)).
			WithArgs(models.AppointmentStatusCancelled, int64(4), testUserID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		w := serve(h.CancelAppointment, http.MethodPost, "/appointments/:id/cancel", "/appointments/4/cancel", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("approved appointment stays put", func(t *testing.T) {
		h, mock := newTestHandlers(t)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT status FROM appointments WHERE id = ? AND user_id = ?`)).
			WithArgs(int64(4), testUserID).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(models.AppointmentStatusApproved))

		w := serve(h.CancelAppointment, http.MethodPost, "/appointments/:id/cancel", "/appointments/4/cancel", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReviewAppointment(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		h, mock := newTestHandlers(t)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE appointments SET status = ? WHERE id = ? AND status = ?`)).
			WithArgs(models.AppointmentStatusApproved, int64(9), models.AppointmentStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))

		w := serve(h.ReviewAppointment(models.AppointmentStatusApproved),
			http.MethodPatch, "/staff/appointments/:id/approve", "/staff/appointments/9/approve", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("reject only works while pending", func(t *testing.T) {
		h, mock := newTestHandlers(t)

		mock.ExpectExec(regexp.QuoteMeta(`UPDATE appointments SET status = ? WHERE id = ? AND status = ?`)).
			WithArgs(models.AppointmentStatusRejected, int64(9), models.AppointmentStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 0))

		w := serve(h.ReviewAppointment(models.AppointmentStatusRejected),
			http.MethodPatch, "/staff/appointments/:id/reject", "/staff/appointments/9/reject", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
