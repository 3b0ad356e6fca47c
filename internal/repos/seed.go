package repos

import (
	"github.com/shopspring/decimal"

	"agroconnect/internal/domain"
)

func inr(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func was(v float64) *decimal.Decimal {
	d := inr(v)
	return &d
}

var seedCategories = []domain.Category{
	{ID: 1, Name: "Vegetables", Slug: "vegetables"},
	{ID: 2, Name: "Fruits", Slug: "fruits"},
	{ID: 3, Name: "Grains", Slug: "grains"},
	{ID: 4, Name: "Dairy", Slug: "dairy"},
	{ID: 5, Name: "Spices", Slug: "spices"},
}

var seedProducts = []domain.Product{
	{ID: 1, Name: "Organic Tomatoes", Category: "Vegetables", Price: inr(90), Unit: "kg",
		Image: "/images/tomatoes.jpg", Badge: domain.BadgeLocal, Organic: true,
		Description: "Vine-ripened tomatoes grown without synthetic pesticides."},
	{ID: 2, Name: "Fresh Spinach", Category: "Vegetables", Price: inr(45), Unit: "bunch",
		Image: "/images/spinach.jpg", Badge: domain.BadgeSuperfood, Organic: true,
		Description: "Tender spinach leaves harvested the morning of dispatch."},
	{ID: 3, Name: "Red Apples", Category: "Fruits", Price: inr(80), Unit: "kg",
		Image: "/images/apples.jpg", Discount: true, OldPrice: was(100), Badge: domain.BadgePremium,
		Description: "Crisp Himachal apples from high-altitude orchards."},
	{ID: 4, Name: "Alphonso Mangoes", Category: "Fruits", Price: inr(450), Unit: "dozen",
		Image: "/images/mangoes.jpg", Badge: domain.BadgePremium,
		Description: "Ratnagiri Alphonso mangoes, naturally ripened."},
	{ID: 5, Name: "Basmati Rice", Category: "Grains", Price: inr(120), Unit: "kg",
		Image: "/images/basmati.jpg", Discount: true, OldPrice: was(140),
		Description: "Aged long-grain basmati from Punjab."},
	{ID: 6, Name: "Whole Wheat", Category: "Grains", Price: inr(38), Unit: "kg",
		Image: "/images/wheat.jpg", Badge: domain.BadgeLocal, Organic: true,
		Description: "Stone-cleaned sharbati wheat for fresh atta."},
	{ID: 7, Name: "Farm Fresh Milk", Category: "Dairy", Price: inr(60), Unit: "litre",
		Image: "/images/milk.jpg", Badge: domain.BadgeLocal,
		Description: "Unprocessed cow milk collected from village cooperatives."},
	{ID: 8, Name: "Paneer", Category: "Dairy", Price: inr(320), Unit: "kg",
		Image: "/images/paneer.jpg", Badge: domain.BadgeProteinRich,
		Description: "Soft cottage cheese made daily in small batches."},
	{ID: 9, Name: "Turmeric Powder", Category: "Spices", Price: inr(180), Unit: "500 g",
		Image: "/images/turmeric.jpg", Badge: domain.BadgeSuperfood, Organic: true,
		Description: "High-curcumin Lakadong turmeric, sun-dried and ground."},
	{ID: 10, Name: "Green Cardamom", Category: "Spices", Price: inr(650), Unit: "250 g",
		Image: "/images/cardamom.jpg", Discount: true, OldPrice: was(720), Badge: domain.BadgePremium,
		Description: "Bold green pods from the Idukki hills."},
	{ID: 11, Name: "Carrots", Category: "Vegetables", Price: inr(40), Unit: "kg",
		Image: "/images/carrots.jpg", Badge: domain.BadgeNew,
		Description: "Sweet red Delhi carrots, washed and sorted."},
	{ID: 12, Name: "Bananas", Category: "Fruits", Price: inr(50), Unit: "dozen",
		Image: "/images/bananas.jpg", Organic: true,
		Description: "Robusta bananas ripened without carbide."},
	{ID: 13, Name: "Ragi", Category: "Grains", Price: inr(70), Unit: "kg",
		Image: "/images/ragi.jpg", Badge: domain.BadgeHeartHealthy, Organic: true,
		Description: "Finger millet from Karnataka dryland farms."},
	{ID: 14, Name: "Moong Dal", Category: "Grains", Price: inr(135), Unit: "kg",
		Image: "/images/moong.jpg", Discount: true, OldPrice: was(150), Badge: domain.BadgeProteinRich,
		Description: "Split yellow moong lentils, unpolished."},
	{ID: 15, Name: "Desi Ghee", Category: "Dairy", Price: inr(750), Unit: "litre",
		Image: "/images/ghee.jpg", Badge: domain.BadgeHeartHealthy,
		Description: "Bilona-churned ghee from grass-fed cows."},
	{ID: 16, Name: "Okra", Category: "Vegetables", Price: inr(55), Unit: "kg",
		Image: "/images/okra.jpg", Badge: domain.BadgeNew, Organic: true,
		Description: "Young, tender bhindi picked every other day."},
}

var seedStates = []domain.State{
	{Value: "andhra-pradesh", Label: "Andhra Pradesh"},
	{Value: "arunachal-pradesh", Label: "Arunachal Pradesh"},
	{Value: "assam", Label: "Assam"},
	{Value: "bihar", Label: "Bihar"},
	{Value: "chhattisgarh", Label: "Chhattisgarh"},
	{Value: "goa", Label: "Goa"},
	{Value: "gujarat", Label: "Gujarat"},
	{Value: "haryana", Label: "Haryana"},
	{Value: "himachal-pradesh", Label: "Himachal Pradesh"},
	{Value: "jharkhand", Label: "Jharkhand"},
	{Value: "karnataka", Label: "Karnataka"},
	{Value: "kerala", Label: "Kerala"},
	{Value: "madhya-pradesh", Label: "Madhya Pradesh"},
	{Value: "maharashtra", Label: "Maharashtra"},
	{Value: "manipur", Label: "Manipur"},
	{Value: "meghalaya", Label: "Meghalaya"},
	{Value: "mizoram", Label: "Mizoram"},
	{Value: "nagaland", Label: "Nagaland"},
	{Value: "odisha", Label: "Odisha"},
	{Value: "punjab", Label: "Punjab"},
	{Value: "rajasthan", Label: "Rajasthan"},
	{Value: "sikkim", Label: "Sikkim"},
	{Value: "tamil-nadu", Label: "Tamil Nadu"},
	{Value: "telangana", Label: "Telangana"},
	{Value: "tripura", Label: "Tripura"},
	{Value: "uttar-pradesh", Label: "Uttar Pradesh"},
	{Value: "uttarakhand", Label: "Uttarakhand"},
	{Value: "west-bengal", Label: "West Bengal"},
	{Value: "delhi", Label: "Delhi"},
	{Value: "jammu-kashmir", Label: "Jammu & Kashmir"},
	{Value: "ladakh", Label: "Ladakh"},
	{Value: "puducherry", Label: "Puducherry"},
}

var seedCities = map[string][]string{
	"uttar-pradesh": {"Agra", "Aligarh", "Allahabad", "Bareilly", "Firozabad", "Ghaziabad",
		"Gorakhpur", "Jhansi", "Kanpur", "Lucknow", "Mathura", "Meerut",
		"Moradabad", "Muzaffarnagar", "Noida", "Saharanpur", "Varanasi"},
	"maharashtra": {"Aurangabad", "Mumbai", "Nagpur", "Nashik", "Pune", "Solapur",
		"Thane", "Vasai-Virar", "Kolhapur", "Sangli", "Malegaon", "Akola"},
	"delhi": {"Central Delhi", "East Delhi", "New Delhi", "North Delhi",
		"North East Delhi", "North West Delhi", "Shahdara", "South Delhi",
		"South East Delhi", "South West Delhi", "West Delhi"},
	"gujarat": {"Ahmedabad", "Surat", "Vadodara", "Rajkot", "Bhavnagar", "Jamnagar",
		"Junagadh", "Gandhinagar", "Anand", "Bharuch", "Mehsana", "Morbi"},
	"karnataka": {"Bangalore", "Hubli-Dharwad", "Mysore", "Gulbarga", "Mangalore",
		"Belgaum", "Davanagere", "Bellary", "Bijapur", "Shimoga", "Tumkur"},
	"tamil-nadu": {"Chennai", "Coimbatore", "Madurai", "Tiruchirappalli", "Salem",
		"Tirunelveli", "Tiruppur", "Vellore", "Erode", "Thoothukkudi", "Dindigul"},
	"west-bengal": {"Kolkata", "Howrah", "Durgapur", "Asansol", "Siliguri", "Malda",
		"Bardhaman", "Baharampur", "Habra", "Kharagpur", "Shantipur"},
	"rajasthan": {"Jaipur", "Jodhpur", "Kota", "Bikaner", "Ajmer", "Udaipur",
		"Bhilwara", "Alwar", "Bharatpur", "Pali", "Barmer", "Sikar"},
	"punjab": {"Ludhiana", "Amritsar", "Jalandhar", "Patiala", "Bathinda",
		"Mohali", "Firozpur", "Batala", "Pathankot", "Moga", "Abohar"},
	"haryana": {"Faridabad", "Gurgaon", "Panipat", "Ambala", "Yamunanagar",
		"Rohtak", "Hisar", "Karnal", "Sonipat", "Panchkula", "Bhiwani"},
	"bihar": {"Patna", "Gaya", "Bhagalpur", "Muzaffarpur", "Purnia", "Darbhanga",
		"Bihar Sharif", "Arrah", "Begusarai", "Katihar", "Munger", "Chhapra"},
}

var seedDashboard = domain.Dashboard{
	Stats: domain.DashboardStats{TotalEarnings: 45680, ActiveListings: 12, PendingOrders: 8, CompletedOrders: 156},
	RecentOrders: []domain.FarmOrder{
		{ID: "001", Product: "Organic Tomatoes", Quantity: "5 kg", Amount: 450, Status: "pending"},
		{ID: "002", Product: "Fresh Spinach", Quantity: "2 kg", Amount: 180, Status: "approved"},
		{ID: "003", Product: "Red Apples", Quantity: "10 kg", Amount: 800, Status: "delivered"},
	},
	Listings: []domain.Listing{
		{ID: 1, Name: "Organic Tomatoes", Price: 90, Stock: 50, Status: "active", Grade: "A+"},
		{ID: 2, Name: "Fresh Spinach", Price: 45, Stock: 30, Status: "active", Grade: "A"},
		{ID: 3, Name: "Red Apples", Price: 80, Stock: 0, Status: "out_of_stock", Grade: "A+"},
	},
}
