package httpapi

import (
	"net/http"

	"github.com/dajarony/club-deportivo-quito/internal/domain/user"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, uploadsDir string) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /readyz", handler.Readyz)
	if uploadsDir != "" {
		mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir))))
	}
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/fixtures", handler.ListFixtures)
	mux.HandleFunc("GET /v1/matches/results", handler.ListResults)
	mux.HandleFunc("GET /v1/matches/live", handler.ListLiveMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)

	mux.HandleFunc("GET /v1/news", handler.ListNews)
	mux.HandleFunc("GET /v1/news/{ref}", handler.GetNews)

	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/{ref}", handler.GetPlayer)

	mux.HandleFunc("GET /v1/sponsors", handler.ListSponsors)

	mux.HandleFunc("POST /v1/newsletter/subscribe", handler.SubscribeNewsletter)
	mux.HandleFunc("GET /v1/newsletter/confirm/{token}", handler.ConfirmNewsletter)
	mux.HandleFunc("POST /v1/newsletter/unsubscribe", handler.UnsubscribeNewsletter)
	mux.HandleFunc("PUT /v1/newsletter/preferences", handler.UpdateNewsletterPreferences)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedMatchRoutes(mux, handler, verifier)
	registerAuthorizedNewsRoutes(mux, handler, verifier)
	registerAuthorizedPlayerRoutes(mux, handler, verifier)
	registerAuthorizedSponsorRoutes(mux, handler, verifier)
	registerAuthorizedNewsletterRoutes(mux, handler, verifier)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/maintenance/run", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunMaintenance)))
}

func registerAuthorizedMatchRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/matches", RequirePermission(verifier, user.PermMatchesWrite, http.HandlerFunc(handler.CreateMatch)))
	mux.Handle("PUT /v1/matches/{matchID}", RequirePermission(verifier, user.PermMatchesWrite, http.HandlerFunc(handler.UpdateMatch)))
	mux.Handle("PUT /v1/matches/{matchID}/result", RequirePermission(verifier, user.PermMatchesWrite, http.HandlerFunc(handler.UpdateMatchResult)))
	mux.Handle("DELETE /v1/matches/{matchID}", RequirePermission(verifier, user.PermMatchesDelete, http.HandlerFunc(handler.DeleteMatch)))
}

func registerAuthorizedNewsRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/news", RequirePermission(verifier, user.PermNewsWrite, http.HandlerFunc(handler.CreateNews)))
	mux.Handle("POST /v1/news/upload", RequirePermission(verifier, user.PermNewsWrite, http.HandlerFunc(handler.UploadNewsImage)))
	mux.Handle("PUT /v1/news/{articleID}", RequirePermission(verifier, user.PermNewsWrite, http.HandlerFunc(handler.UpdateNews)))
	mux.Handle("DELETE /v1/news/{articleID}", RequirePermission(verifier, user.PermNewsDelete, http.HandlerFunc(handler.DeleteNews)))
}

func registerAuthorizedPlayerRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/players", RequirePermission(verifier, user.PermPlayersWrite, http.HandlerFunc(handler.CreatePlayer)))
	mux.Handle("PUT /v1/players/{playerID}", RequirePermission(verifier, user.PermPlayersWrite, http.HandlerFunc(handler.UpdatePlayer)))
	mux.Handle("DELETE /v1/players/{playerID}", RequirePermission(verifier, user.PermPlayersDelete, http.HandlerFunc(handler.DeletePlayer)))
}

func registerAuthorizedSponsorRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/sponsors/all", RequirePermission(verifier, user.PermSponsorsWrite, http.HandlerFunc(handler.ListAllSponsors)))
	mux.Handle("GET /v1/sponsors/{sponsorID}", RequirePermission(verifier, user.PermSponsorsWrite, http.HandlerFunc(handler.GetSponsor)))
	mux.Handle("POST /v1/sponsors", RequirePermission(verifier, user.PermSponsorsWrite, http.HandlerFunc(handler.CreateSponsor)))
	mux.Handle("PUT /v1/sponsors/{sponsorID}", RequirePermission(verifier, user.PermSponsorsWrite, http.HandlerFunc(handler.UpdateSponsor)))
	mux.Handle("DELETE /v1/sponsors/{sponsorID}", RequirePermission(verifier, user.PermSponsorsDelete, http.HandlerFunc(handler.DeleteSponsor)))
}

func registerAuthorizedNewsletterRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/newsletter/subscribers", RequirePermission(verifier, user.PermNewsletterManage, http.HandlerFunc(handler.ListNewsletterSubscribers)))
}
