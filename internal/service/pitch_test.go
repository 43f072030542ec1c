package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/kingrain94/pitchcraft-api/internal/domain"
	"github.com/kingrain94/pitchcraft-api/internal/mocks"
	"github.com/kingrain94/pitchcraft-api/internal/utils"
)

type PitchServiceTestSuite struct {
	suite.Suite
	mockRepo   *mocks.Repository
	mockPitch  *mocks.PitchRepository
	mockSearch *mocks.SearchRepository
	mockSQS    *mocks.SQSService
	service    *PitchService
}

func (s *PitchServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockPitch = new(mocks.PitchRepository)
	s.mockSearch = new(mocks.SearchRepository)
	s.mockSQS = new(mocks.SQSService)

	s.mockRepo.On("Pitch").Return(s.mockPitch)
	s.mockRepo.On("Search").Return(s.mockSearch)

	s.service = NewPitchService(s.mockRepo, s.mockSQS, FreeLimit)
}

func TestPitchService(t *testing.T) {
	suite.Run(t, new(PitchServiceTestSuite))
}

func (s *PitchServiceTestSuite) TestList_NormalizesPaging() {
	expected := []domain.Pitch{{ID: 2, OwnerID: "user1"}, {ID: 1, OwnerID: "user1"}}
	s.mockPitch.On("List", mock.Anything, domain.PitchFilter{
		OwnerID:  "user1",
		Page:     1,
		PageSize: 10,
		Limit:    10,
		Offset:   0,
	}).Return(expected, nil)

	filter := &domain.PitchFilter{OwnerID: "user1"}
	pitches, err := s.service.List(context.Background(), filter)

	s.Require().NoError(err)
	s.Equal(expected, pitches)
	s.mockPitch.AssertExpectations(s.T())
}

func (s *PitchServiceTestSuite) TestList_CapsPageSize() {
	s.mockPitch.On("List", mock.Anything, mock.MatchedBy(func(f domain.PitchFilter) bool {
		return f.PageSize == 100 && f.Offset == 200
	})).Return([]domain.Pitch{}, nil)

	_, err := s.service.List(context.Background(), &domain.PitchFilter{OwnerID: "user1", Page: 3, PageSize: 1000})

	s.Require().NoError(err)
	s.mockPitch.AssertExpectations(s.T())
}

func (s *PitchServiceTestSuite) TestList_RequiresOwner() {
	_, err := s.service.List(context.Background(), &domain.PitchFilter{})
	s.ErrorIs(err, ErrAuthenticationRequired)
}

func (s *PitchServiceTestSuite) TestAll_PagesUntilShortPage() {
	full := make([]domain.Pitch, 100)
	s.mockPitch.On("List", mock.Anything, mock.MatchedBy(func(f domain.PitchFilter) bool { return f.Page == 1 })).Return(full, nil)
	s.mockPitch.On("List", mock.Anything, mock.MatchedBy(func(f domain.PitchFilter) bool { return f.Page == 2 })).Return(make([]domain.Pitch, 7), nil)

	pitches, err := s.service.All(context.Background(), domain.PitchFilter{OwnerID: "user1"})

	s.Require().NoError(err)
	s.Len(pitches, 107)
	s.mockPitch.AssertNumberOfCalls(s.T(), "List", 2)
}

func (s *PitchServiceTestSuite) TestLatest() {
	s.mockPitch.On("LatestByOwner", mock.Anything, "user1").Return(nil, nil)

	pitch, err := s.service.Latest(context.Background(), "user1")

	s.Require().NoError(err)
	s.Nil(pitch)
}

func (s *PitchServiceTestSuite) TestGetByID_ScopesToOwner() {
	s.mockPitch.On("GetByID", mock.MatchedBy(func(ctx context.Context) bool {
		owner, err := utils.GetOwnerIDFromContext(ctx)
		return err == nil && owner == "user1"
	}), int64(7)).Return(&domain.Pitch{ID: 7, OwnerID: "user1"}, nil)

	pitch, err := s.service.GetByID(context.Background(), "user1", 7)

	s.Require().NoError(err)
	s.Equal(int64(7), pitch.ID)
}

func (s *PitchServiceTestSuite) TestGetByID_NotFound() {
	s.mockPitch.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := s.service.GetByID(context.Background(), "user1", 9)

	s.ErrorIs(err, ErrPitchNotFound)
}

func (s *PitchServiceTestSuite) TestCount() {
	s.mockPitch.On("CountByOwner", mock.Anything, "user1").Return(int64(4), nil)

	count, err := s.service.Count(context.Background(), "user1")

	s.Require().NoError(err)
	s.Equal(int64(4), count)
}

func (s *PitchServiceTestSuite) TestSearch_UsesIndex() {
	s.mockSearch.On("Search", mock.Anything, mock.MatchedBy(func(f *domain.PitchFilter) bool {
		return f.OwnerID == "user1" && f.Query == "logistics" && f.PageSize == 10
	})).Return([]domain.Pitch{{ID: 3}}, nil)

	pitches, err := s.service.Search(context.Background(), &domain.PitchFilter{OwnerID: "user1", Query: "logistics"})

	s.Require().NoError(err)
	s.Len(pitches, 1)
	s.mockPitch.AssertNotCalled(s.T(), "List", mock.Anything, mock.Anything)
}

func (s *PitchServiceTestSuite) TestSearch_EmptyQueryListsHistory() {
	s.mockPitch.On("List", mock.Anything, mock.Anything).Return([]domain.Pitch{{ID: 1}}, nil)

	pitches, err := s.service.Search(context.Background(), &domain.PitchFilter{OwnerID: "user1", Query: "  "})

	s.Require().NoError(err)
	s.Len(pitches, 1)
	s.mockSearch.AssertNotCalled(s.T(), "Search", mock.Anything, mock.Anything)
}

func (s *PitchServiceTestSuite) TestScheduleExport() {
	s.mockSQS.On("SendExportMessage", mock.Anything, "user1", ExportFormatCSV).Return("job-1", nil)

	jobID, err := s.service.ScheduleExport(context.Background(), "user1", "CSV")
	s.Require().NoError(err)
	s.Equal("job-1", jobID)

	_, err = s.service.ScheduleExport(context.Background(), "user1", "xml")
	s.ErrorIs(err, ErrInvalidExportFormat)
}

func (s *PitchServiceTestSuite) TestStorageFault() {
	s.mockPitch.On("LatestByOwner", mock.Anything, "user1").Return(nil, errors.New("boom"))

	_, err := s.service.Latest(context.Background(), "user1")

	s.ErrorIs(err, ErrStorageUnavailable)
}
