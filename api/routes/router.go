package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/DustyWalks/walksandlawns-app2025/api/controllers"
	"github.com/DustyWalks/walksandlawns-app2025/api/middleware"
	"github.com/DustyWalks/walksandlawns-app2025/internal/billing"
	"github.com/DustyWalks/walksandlawns-app2025/internal/chat"
	"github.com/DustyWalks/walksandlawns-app2025/pkg/auth/session"
	"github.com/DustyWalks/walksandlawns-app2025/pkg/config"
	"github.com/DustyWalks/walksandlawns-app2025/pkg/logger"
	"github.com/DustyWalks/walksandlawns-app2025/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP controllers.Pinger,
	redisP controllers.Pinger,
	httpMetrics *metrics.HTTPMetrics,
	metricsHandler http.Handler,
	sessions session.UserResolver,
	accountsRepo controllers.AccountsReader,
	catalogRepo controllers.CatalogReader,
	userAddOnsRepo controllers.UserAddOnsRepo,
	bookingsRepo controllers.BookingsRepo,
	chatService chat.Service,
	billingService billing.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)
	if httpMetrics != nil {
		r.Use(middleware.Metrics(httpMetrics))
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive())
		r.Get("/ready", controllers.HealthReady(dbP, redisP, logg))
	})

	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		// Catalog is browsable without a session so the marketing
		// pages can render pricing.
		r.Get("/service-types", controllers.ListServiceTypes(catalogRepo, logg))
		r.Get("/addons", controllers.ListAddOns(catalogRepo, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.Session.CookieName, sessions, logg))

			r.Get("/auth/user", controllers.GetAuthUser(accountsRepo, logg))

			r.Post("/create-customer-portal-session", controllers.CreatePortalSession(billingService, logg))
			r.Post("/get-or-create-subscription", controllers.GetOrCreateSubscription(billingService, logg))

			r.Route("/user-addons", func(r chi.Router) {
				r.Get("/", controllers.ListUserAddOns(userAddOnsRepo, logg))
				r.Post("/", controllers.CreateUserAddOn(userAddOnsRepo, logg))
				r.Delete("/{id}", controllers.DeleteUserAddOn(userAddOnsRepo, logg))
			})

			r.Route("/bookings", func(r chi.Router) {
				r.Get("/", controllers.ListBookings(bookingsRepo, logg))
				r.Post("/", controllers.CreateBooking(bookingsRepo, logg))
				r.Patch("/{id}", controllers.UpdateBooking(bookingsRepo, logg))
				r.Delete("/{id}", controllers.DeleteBooking(bookingsRepo, logg))
			})

			r.Route("/chat/messages", func(r chi.Router) {
				r.Get("/", controllers.ListChatMessages(chatService, logg))
				r.Post("/", controllers.SubmitChatMessage(chatService, logg))
				r.Delete("/{id}", controllers.DeleteChatMessage(chatService, logg))
			})
		})
	})

	return r
}
