package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"imageUploader/internal/config"
	"imageUploader/internal/models"
)

type Storage struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// imageDoc is the collection-side shape of an image record. The id is the
// uuid string, matching what handlers parse from the URL.
type imageDoc struct {
	ID         string    `bson:"_id"`
	Filename   string    `bson:"filename"`
	Path       string    `bson:"path"`
	UploadedAt time.Time `bson:"uploadedAt"`
}

func (d imageDoc) toModel() (models.Image, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return models.Image{}, fmt.Errorf("malformed record id %q: %w", d.ID, err)
	}

	return models.Image{
		ID:         id,
		Filename:   d.Filename,
		Path:       d.Path,
		UploadedAt: d.UploadedAt,
	}, nil
}

// InitDB connects to MongoDB, pings it, and returns a Storage over the
// configured collection. Startup fails if the store is unreachable.
func InitDB(mongoCfg *config.Mongo) (*Storage, error) {
	const op = "storage.mongo.InitDB"

	ctx, cancel := context.WithTimeout(context.Background(), mongoCfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoCfg.URI))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect to the database: %w", op, err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%s: failed to connect to the database: %w", op, err)
	}

	return &Storage{
		client:     client,
		collection: client.Database(mongoCfg.Database).Collection(mongoCfg.Collection),
	}, nil
}

func (s *Storage) SaveImage(ctx context.Context, filename string, path string) (*models.Image, error) {
	const op = "storage.mongo.SaveImage"

	image := models.Image{
		ID:         uuid.New(),
		Filename:   filename,
		Path:       path,
		UploadedAt: time.Now().UTC(),
	}

	doc := imageDoc{
		ID:         image.ID.String(),
		Filename:   image.Filename,
		Path:       image.Path,
		UploadedAt: image.UploadedAt,
	}

	if _, err := s.collection.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &image, nil
}

// ListImages returns every image record, most recent upload first.
func (s *Storage) ListImages(ctx context.Context) ([]models.Image, error) {
	const op = "storage.mongo.ListImages"

	opts := options.Find().SetSort(bson.D{{Key: "uploadedAt", Value: -1}})

	cursor, err := s.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	images := make([]models.Image, 0)

	for cursor.Next(ctx) {
		var doc imageDoc
		if err = cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		var image models.Image
		if image, err = doc.toModel(); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		images = append(images, image)
	}

	if err = cursor.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return images, nil
}

func (s *Storage) GetImage(ctx context.Context, id uuid.UUID) (*models.Image, error) {
	const op = "storage.mongo.GetImage"

	var doc imageDoc

	err := s.collection.FindOne(ctx, bson.D{{Key: "_id", Value: id.String()}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: image with ID %s not found: %w", op, id, mongo.ErrNoDocuments)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	image, err := doc.toModel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &image, nil
}

func (s *Storage) DeleteImage(ctx context.Context, id uuid.UUID) error {
	const op = "storage.mongo.DeleteImage"

	result, err := s.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("%s: image with ID %s not found: %w", op, id, mongo.ErrNoDocuments)
	}

	return nil
}

func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
