// File: database/repository/client/client_mongo.go
package clientRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"glowdesk/models"
)

// ErrClientNotFound is returned when no client matches the lookup.
var ErrClientNotFound = errors.New("client not found")

func (r *mongoClientRepo) Create(ctx context.Context, client *models.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if client.ID == "" {
		client.ID = uuid.New().String()
	}
	client.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, client); err != nil {
		return fmt.Errorf("error creating client: %w", err)
	}
	return nil
}

func (r *mongoClientRepo) GetByID(ctx context.Context, id string) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var client models.Client
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&client)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error loading client %s: %w", id, err)
	}
	return &client, nil
}

// FindByEmail looks a client up by email; ErrClientNotFound when absent.
func (r *mongoClientRepo) FindByEmail(ctx context.Context, email string) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var client models.Client
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&client)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding client by email: %w", err)
	}
	return &client, nil
}

func (r *mongoClientRepo) List(ctx context.Context) ([]models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "lastName", Value: 1}, {Key: "firstName", Value: 1}})
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing clients: %w", err)
	}
	defer cur.Close(ctx)

	var clients []models.Client
	if err := cur.All(ctx, &clients); err != nil {
		return nil, fmt.Errorf("error decoding clients: %w", err)
	}
	return clients, nil
}

func (r *mongoClientRepo) Update(ctx context.Context, client *models.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": client.ID}, bson.M{"$set": client})
	if err != nil {
		return fmt.Errorf("error updating client %s: %w", client.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrClientNotFound
	}
	return nil
}

func (r *mongoClientRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting client %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrClientNotFound
	}
	return nil
}
