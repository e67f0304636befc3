package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/werewolfgame-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.RoomTTL = time.Hour
	cfg.PlayerIndexTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) makeRoom(code string) *model.Room {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return &model.Room{
		Code:         model.RoomCode(code),
		Host:         "host-1",
		Phase:        model.PhaseLobby,
		DayCount:     1,
		NightActions: map[string]model.PlayerID{},
		Settings:     model.DefaultSettings(),
		Players: []model.Player{
			{ID: "host-1", Name: "Host", Role: model.RoleUnassigned, IsAlive: true, IsHost: true},
		},
		Chat: []model.ChatMessage{
			{ID: "m1", Player: model.Narrator, Message: "Welcome", Type: model.ChatTypeSystem, Timestamp: now},
		},
		CreatedAt:    now,
		LastActivity: now,
	}
}

func (s *StorageSuite) TestSaveAndGetRoomRoundTrip() {
	room := s.makeRoom("ABC123")
	room.NightActions[model.AbilityWerewolf] = "p2"
	s.Require().NoError(s.storage.SaveRoom(s.ctx, room))

	got, err := s.storage.GetRoom(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.Equal(room.Code, got.Code)
	s.Equal(room.Host, got.Host)
	s.Equal(model.PlayerID("p2"), got.NightActions[model.AbilityWerewolf])
	s.Len(got.Chat, 1)
}

func (s *StorageSuite) TestSaveNewRoomClaimsCode() {
	s.Require().NoError(s.storage.SaveNewRoom(s.ctx, s.makeRoom("ABC123")))

	err := s.storage.SaveNewRoom(s.ctx, s.makeRoom("ABC123"))
	s.Require().ErrorIs(err, model.ErrRoomCodeTaken)

	codes, err := s.storage.ListRoomCodes(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.RoomCode{"ABC123"}, codes)
}

func (s *StorageSuite) TestGetMissingRoom() {
	_, err := s.storage.GetRoom(s.ctx, "NOPE")
	s.Require().ErrorIs(err, model.ErrRoomNotFound)
}

func (s *StorageSuite) TestDeleteRoomRemovesIndexEntry() {
	s.Require().NoError(s.storage.SaveRoom(s.ctx, s.makeRoom("ABC123")))
	s.Require().NoError(s.storage.DeleteRoom(s.ctx, "ABC123"))

	_, err := s.storage.GetRoom(s.ctx, "ABC123")
	s.ErrorIs(err, model.ErrRoomNotFound)

	codes, err := s.storage.ListRoomCodes(s.ctx)
	s.Require().NoError(err)
	s.Empty(codes)
}

func (s *StorageSuite) TestListRoomCodesSkipsExpiredRooms() {
	s.Require().NoError(s.storage.SaveRoom(s.ctx, s.makeRoom("AAAAAA")))
	s.Require().NoError(s.storage.SaveRoom(s.ctx, s.makeRoom("BBBBBB")))

	// Let one room expire; the index entry should be dropped on listing
	s.mini.FastForward(2 * time.Hour)
	s.Require().NoError(s.storage.SaveRoom(s.ctx, s.makeRoom("BBBBBB")))

	codes, err := s.storage.ListRoomCodes(s.ctx)
	s.Require().NoError(err)
	s.Equal([]model.RoomCode{"BBBBBB"}, codes)
}

func (s *StorageSuite) TestRoomTTLApplied() {
	s.Require().NoError(s.storage.SaveRoom(s.ctx, s.makeRoom("ABC123")))

	s.mini.FastForward(2 * time.Hour)

	_, err := s.storage.GetRoom(s.ctx, "ABC123")
	s.ErrorIs(err, model.ErrRoomNotFound)
}

func (s *StorageSuite) TestPlayerIndex() {
	s.Require().NoError(s.storage.SetPlayerRoom(s.ctx, "p1", "ABC123"))

	code, err := s.storage.GetPlayerRoom(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(model.RoomCode("ABC123"), code)

	s.Require().NoError(s.storage.DeletePlayerRoom(s.ctx, "p1"))

	_, err = s.storage.GetPlayerRoom(s.ctx, "p1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}
