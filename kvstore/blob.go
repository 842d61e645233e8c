package kvstore

import (
	"context"
	"errors"
	"path"
	"strings"

	"github.com/hairizuanbinnoorazman/qa-workbench/storage"
)

// BlobSlots stores each slot as a JSON object in blob storage, at
// <prefix>/<key>.json.
type BlobSlots struct {
	blobs  storage.BlobStorage
	prefix string
}

// NewBlobSlots creates a slot store on top of blob storage.
func NewBlobSlots(blobs storage.BlobStorage, prefix string) *BlobSlots {
	if prefix == "" {
		prefix = "slots"
	}
	return &BlobSlots{blobs: blobs, prefix: strings.Trim(prefix, "/")}
}

func (s *BlobSlots) objectPath(key string) string {
	return path.Join(s.prefix, key+".json")
}

// Get reads the slot object.
func (s *BlobSlots) Get(ctx context.Context, key string) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}
	data, err := storage.ReadAll(ctx, s.blobs, s.objectPath(key))
	if err != nil {
		if errors.Is(err, storage.ErrFileNotFound) {
			return "", ErrSlotNotFound
		}
		return "", err
	}
	return string(data), nil
}

// Set writes the slot object.
func (s *BlobSlots) Set(ctx context.Context, key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	return s.blobs.Put(ctx, s.objectPath(key), strings.NewReader(value), "application/json")
}

// Delete removes the slot object.
func (s *BlobSlots) Delete(ctx context.Context, key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	err := s.blobs.Delete(ctx, s.objectPath(key))
	if errors.Is(err, storage.ErrFileNotFound) {
		return nil
	}
	return err
}
