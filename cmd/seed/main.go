package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/isamardev/graphify/internal/auth"
	"github.com/isamardev/graphify/internal/config"
	"github.com/isamardev/graphify/internal/db"
)

type seedDoc struct {
	entity string
	match  bson.M
	doc    bson.M
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Fatal(err)
	}

	docs := []seedDoc{
		{"categories", bson.M{"name": "Minimalist"}, bson.M{
			"name": "Minimalist", "description": "Clean lines and simple forms",
		}},
		{"categories", bson.M{"name": "Abstract"}, bson.M{
			"name": "Abstract", "description": "Bold colors and dynamic shapes",
		}},
		{"categories", bson.M{"name": "Botanical"}, bson.M{
			"name": "Botanical", "description": "Nature-inspired wall art",
		}},
		{"collections", bson.M{"title": "Urban Calm"}, bson.M{
			"title":       "Urban Calm",
			"description": "Muted tones for modern interiors",
			"tags":        bson.A{"minimal", "neutral", "modern"},
		}},
		{"collections", bson.M{"title": "Color Burst"}, bson.M{
			"title":       "Color Burst",
			"description": "Statement pieces with saturated palettes",
			"tags":        bson.A{"abstract", "vivid"},
		}},
		{"services", bson.M{"name": "Custom Wall Murals"}, bson.M{
			"name":        "Custom Wall Murals",
			"description": "Hand-painted murals designed for your space",
			"price":       "from $600",
		}},
		{"services", bson.M{"name": "Art Consultation"}, bson.M{
			"name":        "Art Consultation",
			"description": "Curated art selection for homes and offices",
			"price":       "from $150",
		}},
		{"authors", bson.M{"name": "John Doe"}, bson.M{
			"name": "John Doe",
			"bio":  "Over a decade of experience in interior art direction",
		}},
		{"blogs", bson.M{"title": "Choosing Art for Small Spaces"}, bson.M{
			"title":   "Choosing Art for Small Spaces",
			"content": "Small rooms reward restraint. Pick one anchor piece...",
			"tag":     "Guides",
			"tags":    bson.A{"interiors", "guides"},
		}},
		{"teams", bson.M{"name": "Priya Sharma"}, bson.M{
			"name": "Priya Sharma", "role": "Studio Manager",
		}},
		{"reviews", bson.M{"client_name": "Asha Mehta"}, bson.M{
			"client_name": "Asha Mehta", "client_role": "Homeowner",
			"client_address": "Living room mural", "rating": 5,
			"review": "The mural transformed the whole room.",
		}},
	}

	for _, d := range docs {
		if err := upsert(ctx, cols.Content(d.entity), d.match, d.doc); err != nil {
			log.Fatalf("seed %s: %v", d.entity, err)
		}
	}
	log.Printf("seeded %d content documents", len(docs))

	if cfg.AdminUser != "" && cfg.AdminPassword != "" {
		if err := seedAdminUser(ctx, cols, cfg); err != nil {
			log.Fatal(err)
		}
		log.Printf("seeded admin user %q", cfg.AdminUser)
	}
}

func upsert(ctx context.Context, col *mongo.Collection, match, doc bson.M) error {
	update := bson.M{
		"$setOnInsert": bson.M{"_id": primitive.NewObjectID().Hex()},
		"$set":         doc,
	}
	_, err := col.UpdateOne(ctx, match, update, options.Update().SetUpsert(true))
	return err
}

func seedAdminUser(ctx context.Context, cols *db.Collections, cfg *config.Config) error {
	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	now := time.Now().In(cfg.Timezone)
	update := bson.M{
		"$setOnInsert": bson.M{
			"_id":       primitive.NewObjectID().Hex(),
			"createdAt": now,
		},
		"$set": bson.M{
			"passwordHash": hash,
			"role":         "admin",
			"updatedAt":    now,
		},
	}
	_, err = cols.AdminUsers.UpdateOne(ctx, bson.M{"username": cfg.AdminUser}, update, options.Update().SetUpsert(true))
	return err
}
