package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore keeps each key as one document in the kv collection.
// Keys are query-escaped because document IDs cannot contain '/'.
type FirestoreStore struct {
	client *firestore.Client
	col    *firestore.CollectionRef
}

type firestoreKVDoc struct {
	Value     []byte    `firestore:"value"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

func NewFirestoreStore(ctx context.Context, projectID, credentialsJSON string) (*FirestoreStore, error) {
	if projectID == "" {
		return nil, errors.New("firestore storage requires FIRESTORE_PROJECT_ID")
	}

	var opts []option.ClientOption
	if credentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}

	return &FirestoreStore{client: client, col: client.Collection("kv")}, nil
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}

func (s *FirestoreStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, ErrBadKey
	}

	snap, err := s.col.Doc(url.QueryEscape(key)).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var doc firestoreKVDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, false, err
	}
	return doc.Value, true, nil
}

func (s *FirestoreStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return ErrBadKey
	}

	_, err := s.col.Doc(url.QueryEscape(key)).Set(ctx, firestoreKVDoc{
		Value:     value,
		UpdatedAt: time.Now(),
	})
	return err
}
