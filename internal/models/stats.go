package models

type MonthlyRevenue struct {
	Month   string  `json:"_id"` // YYYY-MM
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
}

type DashboardStats struct {
	TotalProducts  int64            `json:"totalProducts"`
	TotalOrders    int64            `json:"totalOrders"`
	TotalUsers     int64            `json:"totalUsers"`
	TotalRevenue   float64          `json:"totalRevenue"`
	MonthlyRevenue []MonthlyRevenue `json:"monthlyRevenue"`
}
