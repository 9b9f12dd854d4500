package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Collections struct {
	content map[string]*mongo.Collection

	Contacts   *mongo.Collection
	Quotes     *mongo.Collection
	AdminUsers *mongo.Collection
}

// contentCollections lists the collection name per content resource; it
// must stay in sync with content.Types.
var contentCollections = []string{
	"categories",
	"collections",
	"projects",
	"services",
	"authors",
	"blogs",
	"teams",
	"reviews",
}

func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *Collections, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, err
	}

	database := client.Database(dbName)

	cols := &Collections{
		content:    make(map[string]*mongo.Collection, len(contentCollections)),
		Contacts:   database.Collection("contacts"),
		Quotes:     database.Collection("quotes"),
		AdminUsers: database.Collection("admin_users"),
	}
	for _, name := range contentCollections {
		cols.content[name] = database.Collection(name)
	}

	return client, cols, nil
}

// Content returns the handle for a content resource by its plural name,
// or nil when the name is unknown.
func (c *Collections) Content(plural string) *mongo.Collection {
	if c == nil {
		return nil
	}
	return c.content[plural]
}

func EnsureIndexes(ctx context.Context, cols *Collections) error {
	indexTimeout, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := cols.AdminUsers.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return err
	}

	for _, col := range []*mongo.Collection{cols.Contacts, cols.Quotes} {
		_, err = col.Indexes().CreateMany(indexTimeout, []mongo.IndexModel{
			{
				Keys: bson.D{{Key: "created_at", Value: -1}},
			},
		})
		if err != nil {
			return err
		}
	}

	return nil
}
