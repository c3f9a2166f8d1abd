package request_models

// PlanTripRequest is the input to the trip planner. Dates are calendar
// dates ("2006-01-02"). The trip center comes either from city_name
// (resolved via geocoding) or from explicit coordinates.
type PlanTripRequest struct {
	StartDate   string   `json:"start_date" binding:"required"`
	EndDate     string   `json:"end_date" binding:"required"`
	Budget      float64  `json:"budget" binding:"required,gt=0"`
	Preferences []string `json:"preferences" binding:"required,min=1"`
	CityName    string   `json:"city_name"`
	Latitude    *float64 `json:"latitude" binding:"omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" binding:"omitempty,gte=-180,lte=180"`
}
