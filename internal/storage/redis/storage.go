package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/werewolfgame-go/internal/model"
	"github.com/mcoot/werewolfgame-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Room operations

func (s *Storage) SaveNewRoom(ctx context.Context, room *model.Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return err
	}

	// SetNX makes the claim atomic across concurrent creators
	claimed, err := s.client.SetNX(ctx, roomKey(room.Code), data, s.cfg.RoomTTL).Result()
	if err != nil {
		return err
	}
	if !claimed {
		return model.ErrRoomCodeTaken
	}
	return s.client.SAdd(ctx, roomCodesKey(), string(room.Code)).Err()
}

func (s *Storage) SaveRoom(ctx context.Context, room *model.Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, roomKey(room.Code), data, s.cfg.RoomTTL)
	pipe.SAdd(ctx, roomCodesKey(), string(room.Code))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetRoom(ctx context.Context, code model.RoomCode) (*model.Room, error) {
	data, err := s.client.Get(ctx, roomKey(code)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, model.ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}

	var room model.Room
	if err := json.Unmarshal(data, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (s *Storage) DeleteRoom(ctx context.Context, code model.RoomCode) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, roomKey(code))
	pipe.SRem(ctx, roomCodesKey(), string(code))
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) RoomExists(ctx context.Context, code model.RoomCode) (bool, error) {
	n, err := s.client.Exists(ctx, roomKey(code)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Storage) ListRoomCodes(ctx context.Context) ([]model.RoomCode, error) {
	members, err := s.client.SMembers(ctx, roomCodesKey()).Result()
	if err != nil {
		return nil, err
	}

	codes := make([]model.RoomCode, 0, len(members))
	for _, m := range members {
		code := model.RoomCode(m)
		// The index can hold codes whose rooms expired via TTL; drop them
		exists, err := s.RoomExists(ctx, code)
		if err != nil {
			return nil, err
		}
		if !exists {
			_ = s.client.SRem(ctx, roomCodesKey(), m).Err()
			continue
		}
		codes = append(codes, code)
	}
	return codes, nil
}

// Player index operations

func (s *Storage) SetPlayerRoom(ctx context.Context, id model.PlayerID, code model.RoomCode) error {
	return s.client.Set(ctx, playerRoomKey(id), string(code), s.cfg.PlayerIndexTTL).Err()
}

func (s *Storage) GetPlayerRoom(ctx context.Context, id model.PlayerID) (model.RoomCode, error) {
	code, err := s.client.Get(ctx, playerRoomKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return "", model.ErrPlayerNotFound
	}
	if err != nil {
		return "", err
	}
	return model.RoomCode(code), nil
}

func (s *Storage) DeletePlayerRoom(ctx context.Context, id model.PlayerID) error {
	return s.client.Del(ctx, playerRoomKey(id)).Err()
}
