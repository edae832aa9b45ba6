package routes

const (
	// Health
	Health = "/health"

	// Dashboard
	Dashboard = "/api/v1/dashboard"

	// Entity CRUD
	Properties    = "/api/v1/properties"
	PropertyByID  = "/api/v1/properties/{id}"
	PropertyUnits = "/api/v1/properties/{id}/units"
	Units         = "/api/v1/units"
	UnitByID      = "/api/v1/units/{id}"
	Tenants       = "/api/v1/tenants"
	TenantByID    = "/api/v1/tenants/{id}"
	Leases        = "/api/v1/leases"
	LeaseByID     = "/api/v1/leases/{id}"
	Payments      = "/api/v1/payments"
	PaymentByID   = "/api/v1/payments/{id}"
)
