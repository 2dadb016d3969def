package models_test

import (
	"strings"

	"github.com/flatshare/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestFlatTrimWhitespace() {
	name := "  Sunny Side Up \t"
	note := " Top floor, no elevator   "

	flat := suite.createTestFlat(models.Flat{Name: name, Note: note})

	assert.Equal(suite.T(), strings.TrimSpace(name), flat.Name)
	assert.Equal(suite.T(), strings.TrimSpace(note), flat.Note)
}

func (suite *TestSuiteStandard) TestFlatNameRequired() {
	err := models.DB.Create(&models.Flat{Name: "   "}).Error
	assert.ErrorIs(suite.T(), err, models.ErrFlatNameRequired)
}

func (suite *TestSuiteStandard) TestFlatMembersSorted() {
	flat := suite.createTestFlat(models.Flat{})
	suite.createTestMember(models.Member{FlatID: flat.ID, Email: "zoe@example.com"})
	suite.createTestMember(models.Member{FlatID: flat.ID, Email: "amara@example.com"})

	members, err := flat.Members(models.DB)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), members, 2)
	assert.Equal(suite.T(), "amara@example.com", members[0].Email)
	assert.Equal(suite.T(), "zoe@example.com", members[1].Email)
}

func (suite *TestSuiteStandard) TestFlatExpensesLoadsParticipants() {
	flat := suite.createTestFlat(models.Flat{})
	member := suite.createTestMember(models.Member{FlatID: flat.ID})

	suite.createTestExpense(models.Expense{
		FlatID:       flat.ID,
		Title:        "Groceries",
		Amount:       1250,
		PayerID:      member.ID,
		Participants: []models.Member{member},
	})

	expenses, err := flat.Expenses(models.DB)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), expenses, 1)
	assert.Len(suite.T(), expenses[0].Participants, 1)
	assert.Equal(suite.T(), member.ID, expenses[0].Participants[0].ID)
}

func (suite *TestSuiteStandard) TestFlatTasks() {
	flat := suite.createTestFlat(models.Flat{})
	suite.createTestTask(models.Task{FlatID: flat.ID, Title: "Clean kitchen"})
	suite.createTestTask(models.Task{FlatID: flat.ID, Title: "Take out trash"})

	tasks, err := flat.Tasks(models.DB)
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), tasks, 2)
}
