// seeddata populates an identity's dataset with demo records: a few products,
// customers and movements. Useful for local development and screenshots.
//
//	go run ./cmd/seeddata -identity dev@example.com
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"stockbook/internal/config"
	"stockbook/internal/infra"
	"stockbook/internal/model"
	"stockbook/internal/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	identity := flag.String("identity", store.GuestIdentity, "identity (email) to seed")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	kv, err := infra.OpenKV(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open storage backend")
	}
	st := store.New(kv, store.NewKeyspace(cfg.KeyPrefix))
	ctx := context.Background()

	products := []model.Product{
		{ID: uuid.NewString(), Name: "Basmati Rice 5kg", Category: "Grocery", CostPrice: decimal.NewFromInt(420), UnitPrice: decimal.NewFromInt(520), MinStock: 10},
		{ID: uuid.NewString(), Name: "Sunflower Oil 1L", Category: "Grocery", CostPrice: decimal.NewFromInt(130), UnitPrice: decimal.NewFromInt(165), MinStock: 15},
		{ID: uuid.NewString(), Name: "Detergent Bar", Category: "Household", CostPrice: decimal.NewFromInt(18), UnitPrice: decimal.NewFromInt(25), MinStock: 30},
	}
	customer := model.Customer{
		ID: uuid.NewString(), Name: "Ramesh Traders", Phone: "+91 98765 43210",
		Email: "ramesh@example.com", Address: "14 Market Road",
	}

	if err := st.Products.Replace(ctx, *identity, products); err != nil {
		log.Fatal().Err(err).Msg("seed products")
	}
	if err := st.Customers.Replace(ctx, *identity, []model.Customer{customer}); err != nil {
		log.Fatal().Err(err).Msg("seed customers")
	}

	now := time.Now().UTC()
	logs := []model.StockLog{
		{ID: uuid.NewString(), ProductID: products[0].ID, Quantity: 40, Type: model.MovementIn, Date: now.Add(-72 * time.Hour).Format(time.RFC3339)},
		{ID: uuid.NewString(), ProductID: products[1].ID, Quantity: 24, Type: model.MovementIn, Date: now.Add(-48 * time.Hour).Format(time.RFC3339)},
		{ID: uuid.NewString(), ProductID: products[0].ID, Quantity: 6, Type: model.MovementOut, Date: now.Add(-24 * time.Hour).Format(time.RFC3339), CustomerID: customer.ID, PaymentStatus: model.PaymentPaid},
		{ID: uuid.NewString(), ProductID: products[1].ID, Quantity: 3, Type: model.MovementOut, Date: now.Add(-2 * time.Hour).Format(time.RFC3339), CustomerID: customer.ID, PaymentStatus: model.PaymentPending},
	}
	if err := st.Logs.Replace(ctx, *identity, logs); err != nil {
		log.Fatal().Err(err).Msg("seed logs")
	}

	log.Info().Str("identity", *identity).
		Int("products", len(products)).
		Int("logs", len(logs)).
		Msg("demo data seeded")
}
