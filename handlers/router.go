package handlers

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/camden-git/fleetsysbackend/auth"
	"github.com/camden-git/fleetsysbackend/database"
	"github.com/camden-git/fleetsysbackend/permissions"
	"github.com/camden-git/fleetsysbackend/repository"
)

// App bundles everything the HTTP layer needs. main builds one from the
// loaded config; tests build one over an in-memory database.
type App struct {
	Log      *logrus.Logger
	Sessions auth.Store
	Codec    *auth.CookieCodec

	Users      repository.UserRepository
	Trucks     repository.TruckRepository
	Drivers    repository.DriverRepository
	Alerts     repository.AlertRepository
	Recordings repository.VideoRecordingRepository
	DB         database.Querier

	CORSAllowedOrigin string
}

// NewRouter wires the full HTTP surface.
func NewRouter(app App) *chi.Mux {
	guard := permissions.NewTruckGuard(app.Trucks)

	authHandler := NewAuthHandler(app.Users, app.Sessions, app.Codec, app.Log)
	dashboardHandler := &DashboardHandler{Trucks: app.Trucks, DB: app.DB, Log: app.Log}
	truckHandler := &TruckHandler{
		Guard:      guard,
		Drivers:    app.Drivers,
		Recordings: app.Recordings,
		Alerts:     app.Alerts,
		DB:         app.DB,
		Log:        app.Log,
	}
	driverHandler := &DriverHandler{Guard: guard, Drivers: app.Drivers, Log: app.Log}
	recordingHandler := &RecordingHandler{Guard: guard, Recordings: app.Recordings, Log: app.Log}
	cameraHandler := &CameraHandler{Guard: guard, Log: app.Log}
	alertHandler := &AlertHandler{Guard: guard, Alerts: app.Alerts, Log: app.Log}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{app.CORSAllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(corsHandler.Handler)
	r.Use(SessionLoader(app.Sessions, app.Codec, app.Log))

	r.Get("/", authHandler.Root)
	r.Get("/login", authHandler.LoginStatus)
	r.Post("/login", authHandler.Login)
	r.Get("/logout", authHandler.Logout)
	r.Get("/dashboard", dashboardHandler.Dashboard)

	r.Route("/truck/{truck_id}", func(r chi.Router) {
		r.Get("/", truckHandler.Detail)

		r.Post("/driver/add", driverHandler.Add)
		r.Route("/driver/{driver_id}", func(r chi.Router) {
			r.Post("/edit", driverHandler.Edit)
			r.Post("/delete", driverHandler.Delete)
		})

		r.Post("/recording/start", recordingHandler.Start)
		r.Route("/recording/{recording_id}", func(r chi.Router) {
			r.Post("/stop", recordingHandler.Stop)
			r.Post("/delete", recordingHandler.Delete)
		})

		r.Get("/camera/{camera_number}/feed", cameraHandler.Feed)
	})

	r.Post("/alert/{alert_id}/mark_read", alertHandler.MarkRead)

	return r
}
