package dto

// StatsResponse is the dashboard aggregate. Key names follow the admin
// frontend contract.
type StatsResponse struct {
	TotalRooms      int     `json:"totalRooms"`
	TotalBookings   int     `json:"totalBookings"`
	TotalRevenue    float64 `json:"totalRevenue"`
	TotalPackages   int     `json:"totalPackages"`
	PendingBookings int     `json:"pendingBookings"`
}
