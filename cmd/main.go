package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"employee-management-api/config"
	_ "employee-management-api/docs"
	"employee-management-api/internal/handler"
	"employee-management-api/internal/repository"
	"employee-management-api/internal/security"
	"employee-management-api/internal/service"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Employee-management-api
// @version 1.0
// @description REST API для учёта сотрудников, подразделений и иждивенцев

// @host localhost:8080

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка при закрытии БД: %v", err)
		}
	}()

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		log.Fatalf("Ошибка подключения к Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Ошибка при закрытии Redis: %v", err)
		}
	}()

	srv, router := config.SetupServer(cfg.ServerAddr)

	userRepo := repository.NewUserRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	dependentRepo := repository.NewDependentRepository(db)
	statsCache := repository.NewStatsCacheRepository(redisClient, time.Duration(cfg.Cache.StatsTTL)*time.Second)

	jwtService := security.NewJWTService(&cfg.JWT)
	authService := service.NewAuthenticationService(userRepo, jwtService, &cfg.JWT)
	departmentService := service.NewDepartmentService(departmentRepo, employeeRepo, statsCache)
	employeeService := service.NewEmployeeService(employeeRepo, departmentRepo, dependentRepo, statsCache)
	dependentService := service.NewDependentService(dependentRepo, employeeRepo, statsCache)

	authHandler := handler.NewAuthenticationHandler(authService)
	departmentHandler := handler.NewDepartmentHandler(departmentService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	dependentHandler := handler.NewDependentHandler(dependentService)

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	setupAuthRoutes(router, authHandler, jwtService)
	setupDepartmentRoutes(router, departmentHandler, jwtService)
	setupEmployeeRoutes(router, employeeHandler, jwtService)
	setupDependentRoutes(router, dependentHandler, jwtService)

	runServer(ctx, srv)
}

func setupAuthRoutes(r chi.Router, h *handler.AuthenticationHandler, jwtService *security.JWTService) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
			r.Post("/refresh", h.Refresh)
		})
		r.Group(func(r chi.Router) {
			r.Use(security.JWTMiddleware(jwtService))
			r.Get("/me", h.Me)
			r.Post("/logout", h.Logout)
		})
	})
}

func setupDepartmentRoutes(r chi.Router, h *handler.DepartmentHandler, jwtService *security.JWTService) {
	r.Route("/api/departments", func(r chi.Router) {
		r.Use(security.JWTMiddleware(jwtService))

		r.Get("/", h.List)
		r.Get("/search", h.Search)
		r.Get("/stats", h.Stats)
		r.Get("/code/{code}", h.GetByCode)
		r.Get("/{id}", h.GetByID)

		// мутации только для администраторов
		r.Group(func(r chi.Router) {
			r.Use(security.RequireAdmin)
			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Deactivate)
			r.Delete("/{id}/permanent", h.Purge)
			r.Post("/{fromId}/transfer/{toId}", h.TransferEmployees)
		})
	})
}

func setupEmployeeRoutes(r chi.Router, h *handler.EmployeeHandler, jwtService *security.JWTService) {
	r.Route("/api/employees", func(r chi.Router) {
		r.Use(security.JWTMiddleware(jwtService))

		r.Get("/", h.List)
		r.Get("/search", h.Search)
		r.Get("/stats", h.Stats)
		r.Get("/department/{departmentId}", h.ListByDepartment)
		r.Get("/{id}", h.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(security.RequireAdmin)
			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Deactivate)
			r.Delete("/{id}/permanent", h.Purge)
		})
	})
}

func setupDependentRoutes(r chi.Router, h *handler.DependentHandler, jwtService *security.JWTService) {
	r.Route("/api/dependents", func(r chi.Router) {
		r.Use(security.JWTMiddleware(jwtService))

		r.Get("/", h.List)
		r.Get("/employee/{employeeId}", h.ListByEmployee)
		r.Get("/employee/{employeeId}/count", h.CountByEmployee)
		r.Get("/{id}", h.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(security.RequireAdmin)
			r.Post("/", h.Create)
			r.Put("/{id}", h.Update)
			r.Delete("/{id}", h.Deactivate)
			r.Delete("/{id}/permanent", h.Purge)
		})
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("сервер запущен на " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("получен сигнал %v остановки работы сервера ", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("ошибка при остановке сервера: %v", err)
	} else {
		log.Println("Сервер успешно остановлен")
	}
}
