package seed

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"freight_tracker/internal/models"
)

var cityCoords = map[string][]float64{
	"Kyiv":    {30.5234, 50.4501},
	"Odesa":   {30.6231, 46.4825},
	"Lviv":    {24.0297, 49.8397},
	"Kharkiv": {36.2304, 49.9935},
	"Dnipro":  {35.0462, 48.4647},
}

// Run wipes every table and loads the demo fixture set: three users, two
// vehicles for driver1, five cargos, five routes and three reports, with
// each cargo back-linked to its route.
func Run(db *gorm.DB) error {
	for _, model := range []interface{}{
		&models.Report{}, &models.Route{}, &models.Cargo{}, &models.Vehicle{}, &models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error; err != nil {
			return err
		}
	}

	users, err := fixtureUsers()
	if err != nil {
		return err
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}
	driver1, driver2 := users[1], users[2]

	vehicles := []models.Vehicle{
		{LicensePlate: "AB1234CD", Type: models.VehicleTruck, Status: models.VehicleActive, DriverID: driver1.ID},
		{LicensePlate: "XY5678EF", Type: models.VehicleVan, Status: models.VehicleActive, DriverID: driver1.ID},
	}
	if err := db.Create(&vehicles).Error; err != nil {
		return err
	}

	cargos := []models.Cargo{
		{Weight: 15, Destination: "Odesa", Status: models.CargoInTransit, Priority: models.PriorityStandard},
		{Weight: 25, Destination: "Lviv", Status: models.CargoDelivered, Priority: models.PriorityUrgent},
		{Weight: 10, Destination: "Kharkiv", Status: models.CargoRetry, Priority: models.PriorityStandard},
		{Weight: 20, Destination: "Dnipro", Status: models.CargoInTransit, Priority: models.PriorityUrgent},
		{Weight: 12, Destination: "Odesa", Status: models.CargoDelivered, Priority: models.PriorityStandard},
	}
	if err := db.Create(&cargos).Error; err != nil {
		return err
	}

	weatherMock := models.WeatherData{Temperature: 15, Condition: "clear"}
	trafficMock := models.TrafficData{Status: "normal", Details: "free flow"}

	type trip struct {
		user     models.User
		vehicle  models.Vehicle
		from, to string
		distance float64
		duration string
	}
	trips := []trip{
		{driver1, vehicles[0], "Kyiv", "Odesa", 475, "6 hours"},
		{driver1, vehicles[1], "Kyiv", "Lviv", 540, "7 hours"},
		{driver2, vehicles[0], "Kyiv", "Kharkiv", 480, "6 hours 30 minutes"},
		{driver2, vehicles[1], "Kyiv", "Dnipro", 450, "5 hours 45 minutes"},
		{driver1, vehicles[0], "Lviv", "Odesa", 620, "8 hours"},
	}

	routes := make([]models.Route, 0, len(trips))
	for i, t := range trips {
		startGeom, err := models.CoordsToWKB(cityCoords[t.from])
		if err != nil {
			return err
		}
		endGeom, err := models.CoordsToWKB(cityCoords[t.to])
		if err != nil {
			return err
		}
		routes = append(routes, models.Route{
			UserID:      t.user.ID,
			VehicleID:   t.vehicle.ID,
			StartPoint:  t.from,
			EndPoint:    t.to,
			StartGeom:   startGeom,
			EndGeom:     endGeom,
			Distance:    t.distance,
			Duration:    t.duration,
			WeatherData: weatherMock,
			TrafficData: trafficMock,
			CargoID:     cargos[i].ID,
		})
	}
	if err := db.Create(&routes).Error; err != nil {
		return err
	}

	// Back-link each cargo to its route
	for i := range cargos {
		if err := db.Model(&cargos[i]).Update("route_id", routes[i].ID).Error; err != nil {
			return err
		}
	}

	reports := []models.Report{
		{UserID: driver1.ID, FuelUsed: 45, Duration: "6 hours", Delays: 5},
		{UserID: driver1.ID, FuelUsed: 50, Duration: "7 hours", Delays: 10},
		{UserID: driver2.ID, FuelUsed: 40, Duration: "6 hours 30 minutes", Delays: 0},
	}
	return db.Create(&reports).Error
}

func fixtureUsers() ([]models.User, error) {
	creds := []struct {
		login, password, role string
	}{
		{"admin1", "admin123", models.RoleAdmin},
		{"driver1", "driver123", models.RoleDriver},
		{"driver2", "driver123", models.RoleDriver},
	}

	users := make([]models.User, 0, len(creds))
	for _, c := range creds {
		hash, err := bcrypt.GenerateFromPassword([]byte(c.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		users = append(users, models.User{Login: c.login, Password: string(hash), Role: c.role})
	}
	return users, nil
}
