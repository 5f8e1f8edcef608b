package flagkit

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
)

// RedisStickyBucketService stores sticky bucket assignment documents
// in Redis, one JSON document per "<attributeName>||<attributeValue>"
// key. It is safe for concurrent use.
type RedisStickyBucketService struct {
	client *redis.Client
	prefix string
	ctx    context.Context
}

// NewRedisStickyBucketService connects to Redis with the given
// options. The prefix namespaces all keys written by this service.
func NewRedisStickyBucketService(prefix string, options *redis.Options) (*RedisStickyBucketService, error) {
	ctx := context.Background()
	client := redis.NewClient(options)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisStickyBucketService{client: client, prefix: prefix, ctx: ctx}, nil
}

func (s *RedisStickyBucketService) GetAssignments(attributeName, attributeValue string) (*StickyBucketAssignmentDoc, error) {
	val, err := s.client.Get(s.ctx, s.prefix+stickyBucketKey(attributeName, attributeValue)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var doc StickyBucketAssignmentDoc
	if err := json.Unmarshal([]byte(val), &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *RedisStickyBucketService) SaveAssignments(doc *StickyBucketAssignmentDoc) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	key := s.prefix + stickyBucketKey(doc.AttributeName, doc.AttributeValue)
	return s.client.Set(s.ctx, key, string(data), 0).Err()
}

func (s *RedisStickyBucketService) GetAllAssignments(attributes map[string]string) (StickyBucketAssignments, error) {
	res := StickyBucketAssignments{}
	for name, val := range attributes {
		doc, err := s.GetAssignments(name, val)
		if err != nil {
			return nil, err
		}
		if doc != nil {
			res[stickyBucketKey(name, val)] = doc
		}
	}
	return res, nil
}

// Close releases the underlying Redis connection.
func (s *RedisStickyBucketService) Close() error {
	return s.client.Close()
}
