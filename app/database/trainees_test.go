package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Halalsolutions/ced-udus-erp/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTrainee() *models.Trainee {
	return &models.Trainee{
		FirstName:        "Musa",
		LastName:         "Ibrahim",
		Email:            "musa@example.com",
		RegistrationDate: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
		Department:       "ICT",
		Gender:           "Male",
		MobileNumber:     "08030000000",
		Course:           "Web Development",
		Address:          "Sokoto",
	}
}

func TestCreateTraineeBumpsCourseCounter(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE courses SET students_enrolled = students_enrolled \+ 1`).
		WithArgs("Web Development").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO trainees`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
	mock.ExpectCommit()

	trainee := sampleTrainee()
	require.NoError(t, CreateTrainee(db, trainee))
	assert.Equal(t, 12, trainee.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTraineeUnknownCourseStillInserts(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE courses SET students_enrolled = students_enrolled \+ 1`).
		WithArgs("Nonexistent Course").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO trainees`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(13))
	mock.ExpectCommit()

	trainee := sampleTrainee()
	trainee.Course = "Nonexistent Course"
	require.NoError(t, CreateTrainee(db, trainee))
	assert.Equal(t, 13, trainee.ID)
}

func TestUpdateTraineeUnknownID(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE trainees`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	trainee := sampleTrainee()
	trainee.ID = 999
	assert.ErrorIs(t, UpdateTrainee(db, trainee), ErrNotFound)
}

func TestDeleteTraineeLeavesCountersAlone(t *testing.T) {
	db, mock := newMockDB(t)

	// Only the trainee row goes; no course update is issued.
	mock.ExpectExec(`DELETE FROM trainees WHERE id = \$1`).WithArgs(12).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, DeleteTrainee(db, 12))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTraineeByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`FROM trainees WHERE id = \$1`).WithArgs(404).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := GetTraineeByID(db, 404)
	assert.ErrorIs(t, err, ErrNotFound)
}
