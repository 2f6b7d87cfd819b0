package api

import (
	"net/http"
	"time"

	"bankapi/src/api/controllers"
	handlers "bankapi/src/api/handlers"
	"bankapi/src/config"
	"bankapi/src/database"
	"bankapi/src/utils"
	redis_utils "bankapi/src/utils/redis"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

type Server struct {
	Router  *chi.Mux
	Handler *handlers.Handler
}

func NewServer(cfg *config.Config, logger *logrus.Logger) (*Server, error) {
	db, err := database.SetupDB(cfg)
	if err != nil {
		return nil, err
	}

	// Snapshot caching is optional; without a configured Redis host every
	// read goes straight to the database.
	var cache *redis_utils.RedisHandler
	if cfg.Databases.Redis.Host != "" {
		cache, err = redis_utils.NewRedisHandler(cfg)
		if err != nil {
			return nil, err
		}
	}

	controller := controllers.NewController(db, cache)
	server := &Server{
		Router:  chi.NewRouter(),
		Handler: handlers.NewHandler(controller, cfg.Service.Name),
	}
	server.InitRoutes(logger)
	return server, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes(logger *logrus.Logger) {
	s.Router.Use(middleware.Recoverer)
	s.Router.Use(cors.AllowAll().Handler)
	if logger != nil {
		s.Router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(utils.WithLogger(r.Context(), logger)))
			})
		})
	}

	s.Router.Get("/health", s.Handler.Healthcheck)

	s.Router.Get("/customers", s.Handler.GetAllCustomers)
	s.Router.Post("/register-customer", s.Handler.RegisterCustomer)
	s.Router.Get("/customer/{customer_oid}/exists", s.Handler.CustomerExists)
	s.Router.Delete("/customer/{customer_oid}", s.Handler.DeleteCustomer)
	s.Router.Get("/user-portfolio/{customer_oid}", s.Handler.GetUserPortfolio)
}

func NewHTTPServer(server *Server, port string) *http.Server {
	return &http.Server{
		Addr:         ":" + port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Handler:      server,
	}
}
