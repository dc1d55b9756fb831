package main

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	login "oppettider-backend/http-server/auth/login"
	delinbox "oppettider-backend/http-server/inbox/delete"
	getinbox "oppettider-backend/http-server/inbox/get"
	saveinbox "oppettider-backend/http-server/inbox/save"
	upinbox "oppettider-backend/http-server/inbox/update"
	delmeeting "oppettider-backend/http-server/meetings/delete"
	getmeetings "oppettider-backend/http-server/meetings/get"
	savemeeting "oppettider-backend/http-server/meetings/save"
	upmeeting "oppettider-backend/http-server/meetings/update"
	getoverride "oppettider-backend/http-server/override/get"
	upoverride "oppettider-backend/http-server/override/update"
	delslot "oppettider-backend/http-server/schedule/delete"
	getschedule "oppettider-backend/http-server/schedule/get"
	saveslot "oppettider-backend/http-server/schedule/save"
	upslot "oppettider-backend/http-server/schedule/update"
	getstatus "oppettider-backend/http-server/status/get"
	getsymbols "oppettider-backend/http-server/symbols/get"
	savesymbols "oppettider-backend/http-server/symbols/save"
	"oppettider-backend/internal/config"
	authmw "oppettider-backend/internal/middleware/auth"
	authservice "oppettider-backend/internal/service/auth"
	"oppettider-backend/internal/service/status"
	"oppettider-backend/internal/service/symbols"
	"oppettider-backend/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage, snapshots *status.SnapshotService, symbolStore *symbols.Service, sessions *authservice.Service) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Public surface: the board itself and the suggestion box drop slot.
	router.Get("/api/status", getstatus.GetStatus(log, snapshots, symbolStore))
	router.Get("/api/schedule", getschedule.GetSchedule(log, storage))
	router.Get("/api/override", getoverride.GetOverride(log, storage))
	router.Get("/api/symbols/{kind}/url", getsymbols.GetSymbolURL(log, symbolStore))
	router.Get("/api/symbols/messages", getsymbols.GetSymbolMessages(log, storage))
	router.Get("/api/meetings", getmeetings.GetAllMeetings(log, storage))
	router.Post("/api/inbox", saveinbox.SaveInboxMessage(log, storage))

	router.Post("/api/login", login.SignIn(log, sessions))

	// Everything that changes the board requires a signed-in staff member.
	router.Group(func(r chi.Router) {
		r.Use(authmw.RequireSession(sessions))

		r.Post("/api/logout", login.SignOut(log, sessions))

		r.Post("/api/schedule/slots", saveslot.SaveTimeSlot(log, storage, snapshots))
		r.Put("/api/schedule/slots/{id}", upslot.UpdateTimeSlot(log, storage, snapshots))
		r.Delete("/api/schedule/slots/{id}", delslot.DeleteTimeSlot(log, storage, snapshots))

		r.Put("/api/override", upoverride.UpdateOverride(log, storage, snapshots))

		r.Post("/api/symbols/{kind}", savesymbols.UploadSymbol(log, symbolStore))
		r.Put("/api/symbols/messages/{kind}", savesymbols.SaveSymbolMessage(log, storage, snapshots))

		r.Get("/api/inbox", getinbox.GetInboxMessages(log, storage))
		r.Put("/api/inbox/{id}/read", upinbox.MarkMessageAsRead(log, storage))
		r.Delete("/api/inbox/{id}", delinbox.DeleteInboxMessage(log, storage))

		r.Post("/api/meetings", savemeeting.SaveMeeting(log, storage))
		r.Put("/api/meetings/{id}", upmeeting.UpdateMeeting(log, storage))
		r.Delete("/api/meetings/{id}", delmeeting.DeleteMeeting(log, storage))
	})

	return router
}
