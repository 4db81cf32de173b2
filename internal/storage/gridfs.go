package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	apperrors "house-rental-backend/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const gridFSBucket = "images"

// GridFSStore keeps images in a MongoDB GridFS bucket keyed by file name
type GridFSStore struct {
	client *mongo.Client
	bucket *gridfs.Bucket
	now    func() time.Time
}

// ConnectMongo connects to uri and verifies the connection
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

// NewGridFSStore connects to MongoDB and opens the image bucket in dbName
func NewGridFSStore(ctx context.Context, uri, dbName string) (*GridFSStore, error) {
	client, err := ConnectMongo(ctx, uri)
	if err != nil {
		return nil, err
	}
	bucket, err := gridfs.NewBucket(client.Database(dbName), options.GridFSBucket().SetName(gridFSBucket))
	if err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("open gridfs bucket: %w", err)
	}
	return &GridFSStore{client: client, bucket: bucket, now: time.Now}, nil
}

// Save uploads r under a generated name. A uuid is prepended if the name is already taken.
func (s *GridFSStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	name := strconv.FormatInt(s.now().UnixMilli(), 10) + "-" + cleanBaseName(originalName)

	taken, err := s.exists(ctx, name)
	if err != nil {
		return "", err
	}
	if taken {
		name = uuid.NewString() + "-" + name
	}

	if _, err := s.bucket.UploadFromStream(name, r); err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	return name, nil
}

// Open streams the newest revision of name
func (s *GridFSStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if !validName(name) {
		return nil, apperrors.ErrImageNotFound
	}
	stream, err := s.bucket.OpenDownloadStreamByName(name)
	if errors.Is(err, gridfs.ErrFileNotFound) {
		return nil, apperrors.ErrImageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	return stream, nil
}

// Delete removes every revision stored under name
func (s *GridFSStore) Delete(ctx context.Context, name string) error {
	cursor, err := s.bucket.Find(bson.M{"filename": name})
	if err != nil {
		return fmt.Errorf("find image: %w", err)
	}
	defer cursor.Close(ctx)

	var files []struct {
		ID interface{} `bson:"_id"`
	}
	if err := cursor.All(ctx, &files); err != nil {
		return fmt.Errorf("read image ids: %w", err)
	}
	if len(files) == 0 {
		return apperrors.ErrImageNotFound
	}
	for _, f := range files {
		if err := s.bucket.Delete(f.ID); err != nil {
			return fmt.Errorf("delete image: %w", err)
		}
	}
	return nil
}

// Ping checks that MongoDB is reachable
func (s *GridFSStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close disconnects the underlying client
func (s *GridFSStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *GridFSStore) exists(ctx context.Context, name string) (bool, error) {
	cursor, err := s.bucket.Find(bson.M{"filename": name}, options.GridFSFind().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("find image: %w", err)
	}
	defer cursor.Close(ctx)
	return cursor.Next(ctx), cursor.Err()
}
