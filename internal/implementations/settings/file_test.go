package settings

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	c "waterreminder/internal/core/domain/common"
	"waterreminder/internal/core/domain/reminder"

	"github.com/stretchr/testify/suite"
)

type fileSuite struct {
	suite.Suite
	dir  string
	path string
	repo *File
}

func (s *fileSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.path = filepath.Join(s.dir, "waterreminder", FileName)
	s.repo = NewFile(s.path)
}

func TestFileRepository(t *testing.T) {
	suite.Run(t, new(fileSuite))
}

func (s *fileSuite) TestMissingFile() {
	interval, err := s.repo.Load(context.Background())

	s.Nil(err)
	s.False(interval.IsPresent)
	s.Equal(reminder.DefaultInterval, interval.ValueOr(reminder.DefaultInterval))
}

func (s *fileSuite) TestSaveThenLoadOnFreshRepository() {
	// Exercise ---
	err := s.repo.Save(context.Background(), reminder.Interval(1800))
	s.Require().Nil(err)
	restarted := NewFile(s.path)
	interval, err := restarted.Load(context.Background())

	// Verify ---
	s.Nil(err)
	s.Equal(c.Some(reminder.Interval(1800)), interval)

	content, err := os.ReadFile(s.path)
	s.Require().Nil(err)
	s.Equal("1800", string(content))
}

func (s *fileSuite) TestSaveOverwrites() {
	s.Require().Nil(s.repo.Save(context.Background(), reminder.Interval(60)))
	s.Require().Nil(s.repo.Save(context.Background(), reminder.Interval(120)))

	interval, err := s.repo.Load(context.Background())
	s.Nil(err)
	s.Equal(reminder.Interval(120), interval.Value)

	entries, err := os.ReadDir(filepath.Dir(s.path))
	s.Require().Nil(err)
	s.Len(entries, 1)
}

func (s *fileSuite) TestCorruptFile() {
	cases := []struct {
		id      string
		content string
	}{
		{id: "empty", content: ""},
		{id: "garbage", content: "not json"},
		{id: "string", content: `"3600"`},
		{id: "object", content: `{"interval": 3600}`},
		{id: "float", content: "36.5"},
		{id: "zero", content: "0"},
		{id: "negative", content: "-5"},
		{id: "too long", content: "1000000"},
	}

	for _, testcase := range cases {
		s.Run(testcase.id, func() {
			// Setup ---
			s.Require().Nil(os.MkdirAll(filepath.Dir(s.path), 0o755))
			s.Require().Nil(os.WriteFile(s.path, []byte(testcase.content), 0o644))

			// Exercise ---
			interval, err := s.repo.Load(context.Background())

			// Verify ---
			s.ErrorIs(err, reminder.ErrMalformedSettings)
			s.False(interval.IsPresent)
		})
	}
}

func (s *fileSuite) TestSaveError() {
	// Setup ---
	blocker := filepath.Join(s.dir, "blocker")
	s.Require().Nil(os.WriteFile(blocker, []byte("x"), 0o644))
	repo := NewFile(filepath.Join(blocker, FileName))

	// Exercise ---
	err := repo.Save(context.Background(), reminder.Interval(60))

	// Verify ---
	s.NotNil(err)
}

func (s *fileSuite) TestDefaultFilePath() {
	path, err := DefaultFilePath("waterreminder")
	if err != nil {
		s.T().Skip("no user config directory")
	}
	s.Equal(FileName, filepath.Base(path))
	s.Equal("waterreminder", filepath.Base(filepath.Dir(path)))
}
