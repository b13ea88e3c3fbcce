package main

import (
	"context"
	"log"

	"github.com/nikahlink/backend/config"
	"github.com/nikahlink/backend/internal/database"
	"github.com/nikahlink/backend/internal/service"
	"github.com/nikahlink/backend/internal/types"
)

// Seeds a handful of development biodatas through the upsert workflow
// so they get real sequential ids.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	biodatas := service.NewBiodataService(db, nil)

	seeds := map[string]*types.UpsertBiodataRequest{
		"ayesha.rahman@example.com": {
			BiodataType: "Female", Name: "Ayesha Rahman", Age: 26,
			Occupation: "Teacher", PermanentDivision: "Dhaka", PresentDivision: "Dhaka",
		},
		"tanvir.hasan@example.com": {
			BiodataType: "Male", Name: "Tanvir Hasan", Age: 30,
			Occupation: "Engineer", PermanentDivision: "Chattogram", PresentDivision: "Dhaka",
		},
		"nusrat.jahan@example.com": {
			BiodataType: "Female", Name: "Nusrat Jahan", Age: 24,
			Occupation: "Doctor", PermanentDivision: "Sylhet", PresentDivision: "Sylhet",
		},
	}

	ctx := context.Background()
	for email, req := range seeds {
		biodata, err := biodatas.Upsert(ctx, email, req)
		if err != nil {
			log.Fatalf("Failed to seed biodata for %s: %v", email, err)
		}
		log.Printf("Seeded biodata #%d for %s", biodata.BiodataID, email)
	}
}
