package domain

type DashboardStats struct {
	TotalEarnings   int `json:"totalEarnings"`
	ActiveListings  int `json:"activeListings"`
	PendingOrders   int `json:"pendingOrders"`
	CompletedOrders int `json:"completedOrders"`
}

type FarmOrder struct {
	ID       string `json:"id"`
	Product  string `json:"product"`
	Quantity string `json:"quantity"`
	Amount   int    `json:"amount"`
	Status   string `json:"status"`
}

type Listing struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Price  int    `json:"price"`
	Stock  int    `json:"stock"`
	Status string `json:"status"`
	Grade  string `json:"grade"`
}

type Dashboard struct {
	Farmer       string         `json:"farmer"`
	FarmName     string         `json:"farmName,omitempty"`
	Stats        DashboardStats `json:"stats"`
	RecentOrders []FarmOrder    `json:"recentOrders"`
	Listings     []Listing      `json:"listings"`
}
