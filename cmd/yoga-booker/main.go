package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"yogabooker/internal/booking"
	"yogabooker/internal/cart"
	"yogabooker/internal/config"
	"yogabooker/internal/http-server/handlers/booking/getBookingHistory"
	"yogabooker/internal/http-server/handlers/booking/submitBooking"
	"yogabooker/internal/http-server/handlers/cart/addToCart"
	"yogabooker/internal/http-server/handlers/cart/clearCart"
	"yogabooker/internal/http-server/handlers/cart/getCart"
	"yogabooker/internal/http-server/handlers/cart/removeFromCart"
	"yogabooker/internal/http-server/handlers/class/getAllClasses"
	"yogabooker/internal/http-server/handlers/class/searchClasses"
	"yogabooker/internal/http-server/handlers/course/getAllCourses"
	"yogabooker/internal/http-server/handlers/health/ping"
	"yogabooker/internal/http-server/middleware/mwlogger"
	"yogabooker/internal/http-server/middleware/session"
	"yogabooker/internal/lib/logger/handlers/slogpretty"
	"yogabooker/internal/lib/logger/sl"
	"yogabooker/internal/storage/firestore"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting yoga booker", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	store := firestore.New(cfg.Firestore, log)
	carts := cart.NewRegistry()
	submitter := booking.New(log, store)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/classes", getAllClasses.New(log, store))
	router.Get("/classes/search", searchClasses.New(log, store))
	router.Get("/courses", getAllCourses.New(log, store))
	router.Get("/health", ping.New(log, store))
	router.Get("/bookings", getBookingHistory.New(log, store))

	router.Group(func(r chi.Router) {
		r.Use(session.New(carts))

		r.Get("/cart", getCart.New(log))
		r.Post("/cart/items", addToCart.New(log, store))
		r.Delete("/cart/items/{id}", removeFromCart.New(log))
		r.Delete("/cart", clearCart.New(log))
		r.Post("/bookings", submitBooking.New(log, submitter))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
