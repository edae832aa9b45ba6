package main

import (
	"context"
	"net/http"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/CarlinQuentin/property-manager/internal/app"
	"github.com/CarlinQuentin/property-manager/internal/config"
	"github.com/CarlinQuentin/property-manager/internal/constants"
	"github.com/CarlinQuentin/property-manager/internal/controllers"
	"github.com/CarlinQuentin/property-manager/internal/middleware"
	"github.com/CarlinQuentin/property-manager/internal/repositories"
	"github.com/CarlinQuentin/property-manager/internal/routes"
	"github.com/CarlinQuentin/property-manager/internal/seeding"
	"github.com/CarlinQuentin/property-manager/internal/services"
	"github.com/CarlinQuentin/property-manager/internal/utils"
)

func main() {
	utils.InitLogger(constants.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize app:", err)
	}
	defer application.Close()

	propRepo := repositories.NewPropertyRepository(application.DB)
	unitRepo := repositories.NewUnitRepository(application.DB)
	tenantRepo := repositories.NewTenantRepository(application.DB)
	leaseRepo := repositories.NewLeaseRepository(application.DB)
	paymentRepo := repositories.NewPaymentRepository(application.DB)

	if cfg.SeedDemoData {
		if err := seeding.SeedDemoData(context.Background(), seeding.Repos{
			Properties: propRepo,
			Units:      unitRepo,
			Tenants:    tenantRepo,
			Leases:     leaseRepo,
			Payments:   paymentRepo,
		}); err != nil {
			utils.Logger.WithError(err).Fatal("Failed to seed demo data")
		}
	}

	propertyService := services.NewPropertyService(propRepo, unitRepo)
	unitService := services.NewUnitService(unitRepo, propRepo, leaseRepo)
	tenantService := services.NewTenantService(tenantRepo)
	leaseService := services.NewLeaseService(leaseRepo, unitRepo, tenantRepo)
	paymentService := services.NewPaymentService(paymentRepo, leaseRepo)
	dashboardService := services.NewDashboardService(propRepo, unitRepo, tenantRepo, leaseRepo, paymentRepo)

	healthController := controllers.NewHealthController(application)
	propertiesController := controllers.NewPropertiesController(propertyService)
	unitsController := controllers.NewUnitsController(unitService)
	tenantsController := controllers.NewTenantsController(tenantService)
	leasesController := controllers.NewLeasesController(leaseService)
	paymentsController := controllers.NewPaymentsController(paymentService)
	dashboardController := controllers.NewDashboardController(dashboardService)

	router := mux.NewRouter()

	// Public
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)

	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.AuthMiddleware(cfg.RSAPublicKey))

	secured.HandleFunc(routes.Dashboard, dashboardController.GetDashboardHandler).Methods(http.MethodGet)

	secured.HandleFunc(routes.Properties, propertiesController.CreatePropertyHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Properties, propertiesController.ListPropertiesHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PropertyByID, propertiesController.GetPropertyHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PropertyUnits, propertiesController.ListPropertyUnitsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PropertyByID, propertiesController.UpdatePropertyHandler).Methods(http.MethodPatch)
	secured.HandleFunc(routes.PropertyByID, propertiesController.DeletePropertyHandler).Methods(http.MethodDelete)

	secured.HandleFunc(routes.Units, unitsController.CreateUnitHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Units, unitsController.ListUnitsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.UnitByID, unitsController.GetUnitHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.UnitByID, unitsController.UpdateUnitHandler).Methods(http.MethodPatch)
	secured.HandleFunc(routes.UnitByID, unitsController.DeleteUnitHandler).Methods(http.MethodDelete)

	secured.HandleFunc(routes.Tenants, tenantsController.CreateTenantHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Tenants, tenantsController.ListTenantsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.TenantByID, tenantsController.GetTenantHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.TenantByID, tenantsController.UpdateTenantHandler).Methods(http.MethodPatch)
	secured.HandleFunc(routes.TenantByID, tenantsController.DeleteTenantHandler).Methods(http.MethodDelete)

	secured.HandleFunc(routes.Leases, leasesController.CreateLeaseHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Leases, leasesController.ListLeasesHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.LeaseByID, leasesController.GetLeaseHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.LeaseByID, leasesController.UpdateLeaseHandler).Methods(http.MethodPatch)
	secured.HandleFunc(routes.LeaseByID, leasesController.DeleteLeaseHandler).Methods(http.MethodDelete)

	secured.HandleFunc(routes.Payments, paymentsController.CreatePaymentHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Payments, paymentsController.ListPaymentsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PaymentByID, paymentsController.GetPaymentHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.PaymentByID, paymentsController.UpdatePaymentHandler).Methods(http.MethodPatch)
	secured.HandleFunc(routes.PaymentByID, paymentsController.DeletePaymentHandler).Methods(http.MethodDelete)

	reminderService := services.NewRentReminderService(
		leaseRepo, paymentRepo, tenantRepo,
		cfg.SendgridAPIKey, cfg.SendgridFromEmail, constants.OrganizationName,
	)
	if reminderService != nil {
		c := cron.New()
		_, cronErr := c.AddFunc(constants.RentReminderCronSpec, func() {
			if e := reminderService.RunDailyReminderCheck(context.Background()); e != nil {
				utils.Logger.WithError(e).Error("Scheduled rent reminder run failed")
			}
		})
		if cronErr != nil {
			utils.Logger.WithError(cronErr).Fatal("Failed to schedule rent reminder cron")
		}
		c.Start()
	}

	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppURL, cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("Server failed to start:", err)
	}
}
