package models_test

import (
	"time"

	"github.com/flatshare/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestExpenseNormalization() {
	flat := suite.createTestFlat(models.Flat{})
	member := suite.createTestMember(models.Member{FlatID: flat.ID})

	expense := suite.createTestExpense(models.Expense{
		FlatID:       flat.ID,
		Title:        "  Supermarket ",
		Amount:       1999,
		Category:     "  Food ",
		PayerID:      member.ID,
		Participants: []models.Member{member},
	})

	assert.Equal(suite.T(), "Supermarket", expense.Title)
	assert.Equal(suite.T(), "food", expense.Category)
	assert.False(suite.T(), expense.Date.IsZero(), "date must default to the creation time")
	assert.Equal(suite.T(), time.UTC, expense.Date.Location())
}

func (suite *TestSuiteStandard) TestExpenseAmountMustBePositive() {
	flat := suite.createTestFlat(models.Flat{})
	member := suite.createTestMember(models.Member{FlatID: flat.ID})

	for _, amount := range []int64{0, -5} {
		err := models.DB.Create(&models.Expense{
			FlatID:       flat.ID,
			Title:        "Bad",
			Amount:       amount,
			PayerID:      member.ID,
			Participants: []models.Member{member},
		}).Error
		assert.ErrorIs(suite.T(), err, models.ErrExpenseAmountNotPositive)
	}
}

func (suite *TestSuiteStandard) TestExpenseNeedsParticipants() {
	flat := suite.createTestFlat(models.Flat{})
	member := suite.createTestMember(models.Member{FlatID: flat.ID})

	err := models.DB.Create(&models.Expense{
		FlatID:  flat.ID,
		Title:   "Nobody participates",
		Amount:  100,
		PayerID: member.ID,
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrExpenseNoParticipants)
}

func (suite *TestSuiteStandard) TestExpensePayerMustBeFlatMember() {
	flat := suite.createTestFlat(models.Flat{})
	member := suite.createTestMember(models.Member{FlatID: flat.ID})

	other := suite.createTestFlat(models.Flat{})
	stranger := suite.createTestMember(models.Member{FlatID: other.ID})

	err := models.DB.Create(&models.Expense{
		FlatID:       flat.ID,
		Title:        "Wrong payer",
		Amount:       100,
		PayerID:      stranger.ID,
		Participants: []models.Member{member},
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrExpensePayerInvalid)
}

func (suite *TestSuiteStandard) TestExpenseParticipantMustBeFlatMember() {
	flat := suite.createTestFlat(models.Flat{})
	member := suite.createTestMember(models.Member{FlatID: flat.ID})

	other := suite.createTestFlat(models.Flat{})
	stranger := suite.createTestMember(models.Member{FlatID: other.ID})

	err := models.DB.Create(&models.Expense{
		FlatID:       flat.ID,
		Title:        "Wrong participant",
		Amount:       100,
		PayerID:      member.ID,
		Participants: []models.Member{stranger},
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrExpenseParticipantInvalid)
}

func (suite *TestSuiteStandard) TestExpenseDuplicateParticipantRejected() {
	flat := suite.createTestFlat(models.Flat{})
	member := suite.createTestMember(models.Member{FlatID: flat.ID})

	err := models.DB.Create(&models.Expense{
		FlatID:       flat.ID,
		Title:        "Twice the same",
		Amount:       100,
		PayerID:      member.ID,
		Participants: []models.Member{member, member},
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrExpenseParticipantInvalid)
}

func (suite *TestSuiteStandard) TestExpenseUnknownPayer() {
	flat := suite.createTestFlat(models.Flat{})
	member := suite.createTestMember(models.Member{FlatID: flat.ID})

	err := models.DB.Create(&models.Expense{
		FlatID:       flat.ID,
		Title:        "Ghost payer",
		Amount:       100,
		PayerID:      uuid.New(),
		Participants: []models.Member{member},
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestExpenseReplaceParticipants() {
	flat := suite.createTestFlat(models.Flat{})
	ada := suite.createTestMember(models.Member{FlatID: flat.ID, Email: "ada@example.com"})
	ben := suite.createTestMember(models.Member{FlatID: flat.ID, Email: "ben@example.com"})

	expense := suite.createTestExpense(models.Expense{
		FlatID:       flat.ID,
		Title:        "Dinner",
		Amount:       5000,
		PayerID:      ada.ID,
		Participants: []models.Member{ada},
	})

	err := expense.ReplaceParticipants(models.DB, []models.Member{ben})
	assert.Nil(suite.T(), err)

	var reloaded models.Expense
	err = models.DB.Preload("Participants").First(&reloaded, expense.ID).Error
	assert.Nil(suite.T(), err)
	assert.Len(suite.T(), reloaded.Participants, 1)
	assert.Equal(suite.T(), ben.ID, reloaded.Participants[0].ID)

	// An expense without participants cannot be balanced
	err = expense.ReplaceParticipants(models.DB, []models.Member{})
	assert.ErrorIs(suite.T(), err, models.ErrExpenseNoParticipants)
}

func (suite *TestSuiteStandard) TestExpenseUpdatePayer() {
	flat := suite.createTestFlat(models.Flat{})
	ada := suite.createTestMember(models.Member{FlatID: flat.ID, Email: "ada@example.com"})
	ben := suite.createTestMember(models.Member{FlatID: flat.ID, Email: "ben@example.com"})

	other := suite.createTestFlat(models.Flat{})
	stranger := suite.createTestMember(models.Member{FlatID: other.ID})

	expense := suite.createTestExpense(models.Expense{
		FlatID:       flat.ID,
		Title:        "Dinner",
		Amount:       5000,
		PayerID:      ada.ID,
		Participants: []models.Member{ada, ben},
	})

	err := models.DB.Model(&expense).Select("", "PayerID").Updates(models.Expense{PayerID: ben.ID}).Error
	assert.Nil(suite.T(), err)

	err = models.DB.Model(&expense).Select("", "PayerID").Updates(models.Expense{PayerID: stranger.ID}).Error
	assert.ErrorIs(suite.T(), err, models.ErrExpensePayerInvalid)
}

func (suite *TestSuiteStandard) TestExpenseLedger() {
	flat := suite.createTestFlat(models.Flat{})
	ada := suite.createTestMember(models.Member{FlatID: flat.ID, Email: "ada@example.com"})
	ben := suite.createTestMember(models.Member{FlatID: flat.ID, Email: "ben@example.com"})

	expense := suite.createTestExpense(models.Expense{
		FlatID:       flat.ID,
		Title:        "Dinner",
		Amount:       5000,
		Category:     "Food",
		PayerID:      ada.ID,
		Participants: []models.Member{ada, ben},
	})

	l := expense.Ledger()
	assert.Equal(suite.T(), expense.ID, l.ID)
	assert.Equal(suite.T(), int64(5000), l.Amount)
	assert.Equal(suite.T(), ada.ID, l.PayerID)
	assert.ElementsMatch(suite.T(), []uuid.UUID{ada.ID, ben.ID}, l.ParticipantIDs)
	assert.Equal(suite.T(), "food", l.Category)
}
