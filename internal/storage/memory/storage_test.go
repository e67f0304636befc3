package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/werewolfgame-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
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
		CreatedAt:    now,
		LastActivity: now,
	}
}

func (s *StorageSuite) TestSaveAndGetRoom() {
	room := s.makeRoom("ABC123")
	s.Require().NoError(s.storage.SaveRoom(s.ctx, room))

	got, err := s.storage.GetRoom(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.Equal(room.Code, got.Code)
	s.Len(got.Players, 1)
}

func (s *StorageSuite) TestSaveNewRoomClaimsCode() {
	s.Require().NoError(s.storage.SaveNewRoom(s.ctx, s.makeRoom("ABC123")))

	err := s.storage.SaveNewRoom(s.ctx, s.makeRoom("ABC123"))
	s.Require().ErrorIs(err, model.ErrRoomCodeTaken)

	// The original room is untouched by the losing claim
	got, err := s.storage.GetRoom(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.Equal(model.RoomCode("ABC123"), got.Code)
}

func (s *StorageSuite) TestGetMissingRoom() {
	_, err := s.storage.GetRoom(s.ctx, "NOPE")
	s.Require().ErrorIs(err, model.ErrRoomNotFound)
}

func (s *StorageSuite) TestDeleteRoom() {
	s.Require().NoError(s.storage.SaveRoom(s.ctx, s.makeRoom("ABC123")))
	s.Require().NoError(s.storage.DeleteRoom(s.ctx, "ABC123"))

	_, err := s.storage.GetRoom(s.ctx, "ABC123")
	s.ErrorIs(err, model.ErrRoomNotFound)

	// Deleting again is a no-op
	s.NoError(s.storage.DeleteRoom(s.ctx, "ABC123"))
}

func (s *StorageSuite) TestRoomExists() {
	exists, err := s.storage.RoomExists(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.False(exists)

	s.Require().NoError(s.storage.SaveRoom(s.ctx, s.makeRoom("ABC123")))

	exists, err = s.storage.RoomExists(s.ctx, "ABC123")
	s.Require().NoError(err)
	s.True(exists)
}

func (s *StorageSuite) TestListRoomCodes() {
	s.Require().NoError(s.storage.SaveRoom(s.ctx, s.makeRoom("AAAAAA")))
	s.Require().NoError(s.storage.SaveRoom(s.ctx, s.makeRoom("BBBBBB")))

	codes, err := s.storage.ListRoomCodes(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]model.RoomCode{"AAAAAA", "BBBBBB"}, codes)
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
