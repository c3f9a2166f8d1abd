package response_models

type PlaceResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	EstimatedCost float64  `json:"estimated_cost"`
	VisitMinutes  int      `json:"visit_minutes"`
	Description   string   `json:"description,omitempty"`
	City          string   `json:"city,omitempty"`
	Images        []string `json:"images,omitempty"`
}

type DayPlanResponse struct {
	Day              int             `json:"day"`
	Date             string          `json:"date"`
	Places           []PlaceResponse `json:"places"`
	TotalDistanceKM  float64         `json:"total_distance_km"`
	TotalTimeMinutes int             `json:"total_time_minutes"`
	TotalCost        float64         `json:"total_cost"`
	// TravelCost estimates road travel spend for the day. Informational:
	// it is not counted against the trip budget.
	TravelCost float64 `json:"travel_cost"`
}

type TripPlanResponse struct {
	TripID             string            `json:"trip_id"`
	StartDate          string            `json:"start_date"`
	EndDate            string            `json:"end_date"`
	TotalDays          int               `json:"total_days"`
	TotalDistanceKM    float64           `json:"total_distance_km"`
	TotalEstimatedCost float64           `json:"total_estimated_cost"`
	TotalTravelCost    float64           `json:"total_travel_cost"`
	Days               []DayPlanResponse `json:"days"`
	Explanation        string            `json:"explanation"`
}
