package main

import (
	"context"
	"flag"
	"log"
	"net/http"

	"github.com/shopspring/decimal"

	"pfbms-server/src/api"
	"pfbms-server/src/config"
	"pfbms-server/src/db"
	"pfbms-server/src/util"
)

func main() {
	seedUsers := flag.Int("seed", 0, "generate demo data for N users and exit")
	flag.Parse()

	// Amounts go over the wire as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	cfg := config.Load()

	// Connect to database
	pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer pool.Close()

	if *seedUsers > 0 {
		if err := util.Seed(context.Background(), pool, *seedUsers); err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
		return
	}

	db.InitCache()

	// Router
	router := api.NewRouter(pool)

	log.Println("API server running on port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}
