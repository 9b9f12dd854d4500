package leads

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository persists leads. Create returns the stored record because
// the demo store assigns its own ids.
type Repository interface {
	CreateContact(ctx context.Context, contact Contact) (Contact, error)
	ListContacts(ctx context.Context, limit, offset int64) ([]Contact, error)
	CountContacts(ctx context.Context) (int64, error)
	GetContactByID(ctx context.Context, id string) (Contact, error)

	CreateQuote(ctx context.Context, quote Quote) (Quote, error)
	ListQuotes(ctx context.Context, limit, offset int64) ([]Quote, error)
	CountQuotes(ctx context.Context) (int64, error)
	GetQuoteByID(ctx context.Context, id string) (Quote, error)
}

type MongoRepository struct {
	contacts *mongo.Collection
	quotes   *mongo.Collection
}

func NewRepository(contacts, quotes *mongo.Collection) *MongoRepository {
	return &MongoRepository{contacts: contacts, quotes: quotes}
}

func (r *MongoRepository) CreateContact(ctx context.Context, contact Contact) (Contact, error) {
	if _, err := r.contacts.InsertOne(ctx, contact); err != nil {
		return Contact{}, err
	}
	return contact, nil
}

func (r *MongoRepository) ListContacts(ctx context.Context, limit, offset int64) ([]Contact, error) {
	cursor, err := r.contacts.Find(ctx, bson.M{}, listOpts(limit, offset))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]Contact, 0)
	for cursor.Next(ctx) {
		var contact Contact
		if err := cursor.Decode(&contact); err != nil {
			return nil, err
		}
		items = append(items, contact)
	}
	return items, cursor.Err()
}

func (r *MongoRepository) CountContacts(ctx context.Context) (int64, error) {
	return r.contacts.CountDocuments(ctx, bson.M{})
}

func (r *MongoRepository) GetContactByID(ctx context.Context, id string) (Contact, error) {
	var contact Contact
	if err := r.contacts.FindOne(ctx, bson.M{"_id": id}).Decode(&contact); err != nil {
		return Contact{}, err
	}
	return contact, nil
}

func (r *MongoRepository) CreateQuote(ctx context.Context, quote Quote) (Quote, error) {
	if _, err := r.quotes.InsertOne(ctx, quote); err != nil {
		return Quote{}, err
	}
	return quote, nil
}

func (r *MongoRepository) ListQuotes(ctx context.Context, limit, offset int64) ([]Quote, error) {
	cursor, err := r.quotes.Find(ctx, bson.M{}, listOpts(limit, offset))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]Quote, 0)
	for cursor.Next(ctx) {
		var quote Quote
		if err := cursor.Decode(&quote); err != nil {
			return nil, err
		}
		items = append(items, quote)
	}
	return items, cursor.Err()
}

func (r *MongoRepository) CountQuotes(ctx context.Context) (int64, error) {
	return r.quotes.CountDocuments(ctx, bson.M{})
}

func (r *MongoRepository) GetQuoteByID(ctx context.Context, id string) (Quote, error) {
	var quote Quote
	if err := r.quotes.FindOne(ctx, bson.M{"_id": id}).Decode(&quote); err != nil {
		return Quote{}, err
	}
	return quote, nil
}

func listOpts(limit, offset int64) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)
}
