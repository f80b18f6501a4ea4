package repository

import (
	"testing"
	"time"

	"portfolio-backend/internal/database/models"
	"portfolio-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type MessageRepositoryTestSuite struct {
	suite.Suite
	*testutils.BaseTestSuite
	repo *MessageRepository
}

func (suite *MessageRepositoryTestSuite) SetupSuite() {
	suite.BaseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewMessageRepository(suite.DB)
}

func (suite *MessageRepositoryTestSuite) TearDownTest() {
	suite.CleanTestDB()
}

func (suite *MessageRepositoryTestSuite) TestCreate() {
	message := &models.Message{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Subject: "Hello",
		Message: "I would like to get in touch.",
	}

	err := suite.repo.Create(message)
	assert.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), uuid.Nil, message.ID)
	assert.False(suite.T(), message.CreatedAt.IsZero())

	var dbMessage models.Message
	err = suite.DB.First(&dbMessage, "id = ?", message.ID).Error
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), message.Name, dbMessage.Name)
	assert.Equal(suite.T(), message.Email, dbMessage.Email)
	assert.Equal(suite.T(), message.Subject, dbMessage.Subject)
	assert.Equal(suite.T(), message.Message, dbMessage.Message)
}

func (suite *MessageRepositoryTestSuite) TestGetAll_NewestFirst() {
	older := &models.Message{Name: "First", Email: "a@example.com", Message: "first"}
	suite.Require().NoError(suite.repo.Create(older))

	// Force distinct timestamps so ordering is deterministic
	suite.DB.Model(older).Update("created_at", time.Now().Add(-time.Hour))

	newer := &models.Message{Name: "Second", Email: "b@example.com", Message: "second"}
	suite.Require().NoError(suite.repo.Create(newer))

	messages, err := suite.repo.GetAll()
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), messages, 2)
	assert.Equal(suite.T(), "Second", messages[0].Name)
	assert.Equal(suite.T(), "First", messages[1].Name)
}

func (suite *MessageRepositoryTestSuite) TestGetAll_Empty() {
	messages, err := suite.repo.GetAll()
	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), messages)
	assert.Empty(suite.T(), messages)
}

func TestMessageRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MessageRepositoryTestSuite))
}
