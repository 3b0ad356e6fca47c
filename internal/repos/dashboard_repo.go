package repos

import "agroconnect/internal/domain"

// DashboardRepo returns the farmer dashboard figures. They are fixed sample
// data until farm listings are stored.
type DashboardRepo struct{ base domain.Dashboard }

func NewDashboardRepo() *DashboardRepo { return &DashboardRepo{base: seedDashboard} }

func (r *DashboardRepo) For(farmer, farmName string) domain.Dashboard {
	d := r.base
	d.Farmer = farmer
	d.FarmName = farmName
	d.RecentOrders = append([]domain.FarmOrder(nil), r.base.RecentOrders...)
	d.Listings = append([]domain.Listing(nil), r.base.Listings...)
	return d
}
