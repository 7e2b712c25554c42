package seeders

import (
	"github.com/TheCodister/badminton-shop-api/app/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func demoUser() (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &models.User{
		Username:    "demo",
		Mail:        "demo@badminton.shop",
		PhoneNumber: "0123456789",
		Password:    string(hash),
		Role:        models.RoleCustomer,
		Address:     "1 Shuttle Street",
	}, nil
}

func demoProducts() []models.Product {
	return []models.Product{
		{
			ProductName:       "Astrox 99 Pro",
			ImageURL:          "/images/rackets/astrox-99-pro.jpg",
			Price:             4_800_000,
			Brand:             models.BrandYonex,
			Status:            "AVAILABLE",
			Stock:             12,
			AvailableLocation: "Hanoi",
			Description:       "Head-heavy attacking racket.",
			DetailType:        models.DetailRacket,
			Racket: &models.Racket{
				Balance:      models.BalanceHeadHeavy,
				Stiffness:    models.StiffnessStiff,
				Weight:       "4U",
				Length:       "675mm",
				PlayerLevel:  "Advanced",
				PlayingStyle: "Attack",
				Line:         "Astrox",
				Technology:   "Rotational Generator System",
				MaxTension:   "28lbs",
			},
		},
		{
			ProductName:       "Power Cushion 65 Z3",
			ImageURL:          "/images/shoes/pc-65-z3.jpg",
			Price:             3_360_000,
			Brand:             models.BrandYonex,
			Status:            "AVAILABLE",
			Stock:             20,
			AvailableLocation: "Ho Chi Minh City",
			Description:       "Stable all-round court shoe.",
			DetailType:        models.DetailShoes,
			Shoes: &models.Shoes{
				Color:      "White/Orange",
				Size:       "42",
				Technology: "Power Cushion+",
				AvailableSizes: []models.ShoeSize{
					{Size: "40"}, {Size: "41"}, {Size: "42"}, {Size: "43"},
				},
			},
		},
		{
			ProductName:       "Aerosensa 50",
			ImageURL:          "/images/shuttlecocks/as-50.jpg",
			Price:             960_000,
			Brand:             models.BrandYonex,
			Status:            "AVAILABLE",
			Stock:             100,
			AvailableLocation: "Da Nang",
			Description:       "Tournament grade feather shuttlecock.",
			DetailType:        models.DetailShuttlecock,
			Shuttlecock: &models.Shuttlecock{
				ShuttleType: "Feather",
				Speed:       77,
				NoPerTube:   12,
			},
		},
		{
			ProductName:       "Turbo Charging 75",
			ImageURL:          "/images/rackets/turbo-charging-75.jpg",
			Price:             2_400_000,
			Brand:             models.BrandLining,
			Status:            "AVAILABLE",
			Stock:             8,
			AvailableLocation: "Hanoi",
			Description:       "Even balance control racket.",
			DetailType:        models.DetailRacket,
			Racket: &models.Racket{
				Balance:      models.BalanceEven,
				Stiffness:    models.StiffnessMedium,
				Weight:       "3U",
				Length:       "672mm",
				PlayerLevel:  "Intermediate",
				PlayingStyle: "All-round",
				Line:         "Turbo Charging",
				Technology:   "TB Nano",
				MaxTension:   "30lbs",
			},
		},
	}
}

func DBSeed(db *gorm.DB) error {
	user, err := demoUser()
	if err != nil {
		return err
	}
	if err := db.FirstOrCreate(user, models.User{Mail: user.Mail}).Error; err != nil {
		return err
	}

	for _, product := range demoProducts() {
		var existing models.Product
		err := db.Where("product_name = ?", product.ProductName).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&product).Error; err != nil {
			return err
		}
	}
	return nil
}
