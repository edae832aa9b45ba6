package dtos

const (
	// Wire formats for dates and timestamps.
	dateLayout = "2006-01-02"
	timeLayout = "2006-01-02T15:04:05Z07:00"
)

type HealthCheckResponse struct {
	Status string `json:"status"`
}

// PropertyRef and UnitRef are the nested display references embedded in
// lease and payment responses, mirroring the joined projections the list
// queries return.
type PropertyRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type UnitRef struct {
	ID       string      `json:"id"`
	Label    string      `json:"label"`
	Property PropertyRef `json:"property"`
}

type TenantRef struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
