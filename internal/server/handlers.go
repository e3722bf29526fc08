package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/Idowu-David/Nithub-Booking-System/internal/booking"
	"github.com/Idowu-David/Nithub-Booking-System/internal/metrics"
	"github.com/Idowu-David/Nithub-Booking-System/internal/repository"
)

const dateLayout = "2006-01-02"

type bookingResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	DeskID    int64  `json:"desk_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
}

func toBookingResponse(b *repository.Booking) bookingResponse {
	return bookingResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		DeskID:    b.DeskID,
		Date:      b.BookingDate.Format(dateLayout),
		StartTime: booking.FormatMinutes(b.StartTime),
		EndTime:   booking.FormatMinutes(b.EndTime),
		Status:    b.Status,
	}
}

// respondEngineError maps the engine error taxonomy onto HTTP statuses.
// Conflict with the user's own active booking carries that booking in the
// body so the client can offer cancel-then-rebook.
func (s *Server) respondEngineError(w http.ResponseWriter, operation string, err error) {
	var activeErr *booking.ActiveBookingError
	switch {
	case errors.Is(err, booking.ErrValidation):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &activeErr):
		respondJSON(w, http.StatusForbidden, map[string]interface{}{
			"error":          "You already have an active or upcoming booking. Please cancel or checkout first.",
			"active_booking": toBookingResponse(activeErr.Booking),
		})
	case errors.Is(err, booking.ErrSlotConflict):
		respondError(w, http.StatusConflict, "Slot just taken. Please pick another slot")
	case errors.Is(err, booking.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		metrics.OperationErrorsTotal.WithLabelValues(operation).Inc()
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (s *Server) handleListAvailability(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	dateStr := q.Get("date")
	if dateStr == "" {
		respondError(w, http.StatusBadRequest, "Missing 'date' parameter")
		return
	}
	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	var window *booking.TimeRange
	if startStr := q.Get("start"); startStr != "" {
		start, err := booking.ParseClock(startStr)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		duration, err := strconv.Atoi(q.Get("duration"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid or missing 'duration' parameter")
			return
		}
		rng, err := booking.NewTimeRangeFromDuration(start, duration)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		window = &rng
	}

	availability, err := s.engine.ListAvailability(r.Context(), date, window)
	if err != nil {
		s.respondEngineError(w, "list_availability", err)
		return
	}

	respondJSON(w, http.StatusOK, availability)
}

func (s *Server) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	var bookingRequest struct {
		UserID    int64  `json:"user_id"`
		DeskID    int64  `json:"desk_id"`
		Date      string `json:"date"`
		StartTime string `json:"start_time"`
		Duration  int    `json:"duration"`
	}

	if err := json.NewDecoder(r.Body).Decode(&bookingRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	date, err := time.Parse(dateLayout, bookingRequest.Date)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	start, err := booking.ParseClock(bookingRequest.StartTime)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	window, err := booking.NewTimeRangeFromDuration(start, bookingRequest.Duration)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.engine.CreateBooking(r.Context(), bookingRequest.UserID, bookingRequest.DeskID, date, window)
	if err != nil {
		s.respondEngineError(w, "create_booking", err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message":    "Booking confirmed!",
		"booking_id": created.ID,
	})
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var checkoutRequest struct {
		UserID int64 `json:"user_id"`
		DeskID int64 `json:"desk_id"`
	}

	if err := json.NewDecoder(r.Body).Decode(&checkoutRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	checkedOut, err := s.engine.Checkout(r.Context(), checkoutRequest.UserID, checkoutRequest.DeskID)
	if err != nil {
		s.respondEngineError(w, "checkout", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "User checked out of the space",
		"desk_id": checkedOut.DeskID,
	})
}

func (s *Server) handleCancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	var cancelRequest struct {
		UserID int64 `json:"user_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&cancelRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cancelled, err := s.engine.Cancel(r.Context(), cancelRequest.UserID, bookingID)
	if err != nil {
		s.respondEngineError(w, "cancel_booking", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Booking cancelled",
		"booking": toBookingResponse(cancelled),
	})
}

func (s *Server) handleListUserBookings(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(mux.Vars(r)["userID"], 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	activeOnly := r.URL.Query().Get("active") == "true"

	bookings, err := s.engine.ListUserBookings(r.Context(), userID, activeOnly)
	if err != nil {
		s.respondEngineError(w, "list_user_bookings", err)
		return
	}

	response := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		response = append(response, toBookingResponse(b))
	}
	respondJSON(w, http.StatusOK, response)
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var signupRequest struct {
		UserName string `json:"userName"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&signupRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if signupRequest.UserName == "" || signupRequest.Email == "" || signupRequest.Password == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields: userName, email, and password")
		return
	}

	id, err := s.userRepo.CreateUser(r.Context(), signupRequest.UserName, signupRequest.Email, signupRequest.Password)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("signup").Inc()
		respondError(w, http.StatusInternalServerError, "An internal server error occurred during registration")
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User signed up successfully",
		"id":      id,
	})
}
