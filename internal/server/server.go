//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=server_mocks
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Idowu-David/Nithub-Booking-System/internal/booking"
	"github.com/Idowu-David/Nithub-Booking-System/internal/repository"
)

type BookingEngine interface {
	ListAvailability(ctx context.Context, date time.Time, window *booking.TimeRange) ([]booking.DeskAvailability, error)
	CreateBooking(ctx context.Context, userID, deskID int64, date time.Time, window booking.TimeRange) (*repository.Booking, error)
	Checkout(ctx context.Context, userID, deskID int64) (*repository.Booking, error)
	Cancel(ctx context.Context, userID, bookingID int64) (*repository.Booking, error)
	ListUserBookings(ctx context.Context, userID int64, activeOnly bool) ([]*repository.Booking, error)
}

type UserRepo interface {
	CreateUser(ctx context.Context, username, email, password string) (int64, error)
	ValidateUser(ctx context.Context, email, password string) (int64, error)
}

type Server struct {
	engine       BookingEngine
	userRepo     UserRepo
	server       *http.Server
	logger       *zap.Logger
	AuditManager *AuditManager
}

func New(engine BookingEngine, userRepo UserRepo, logger *zap.Logger) *Server {
	auditManager := NewAuditManager(2, 5, 500*time.Millisecond)
	return &Server{
		engine:       engine,
		userRepo:     userRepo,
		logger:       logger,
		AuditManager: auditManager,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.AuditManager.Start(ctx)

	s.logger.Info("server starting", zap.String("port", port))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}

	s.AuditManager.Shutdown(ctx)
	s.logger.Info("server shutdown completed")

	return nil
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()

	router.Handle("/metrics", promhttp.Handler())
	router.HandleFunc("/signup", s.handleSignup).Methods(http.MethodPost)
	router.HandleFunc("/desks", s.handleListAvailability).Methods(http.MethodGet)

	protected := router.NewRoute().Subrouter()
	protected.Use(s.basicAuthMiddleware)
	protected.HandleFunc("/bookings", s.handleCreateBooking).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/checkout", s.handleCheckout).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{id}/cancel", s.handleCancelBooking).Methods(http.MethodPost)
	protected.HandleFunc("/users/{userID}/bookings", s.handleListUserBookings).Methods(http.MethodGet)

	return s.auditLogMiddleware(router)
}

func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		if _, err := s.userRepo.ValidateUser(r.Context(), email, password); err != nil {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
