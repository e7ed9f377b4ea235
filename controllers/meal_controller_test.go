package controllers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateMeal_OtherOwnersMealForbidden(t *testing.T) {
	env := newTestEnv(t)
	now := time.Now()

	// Caller exists, but the meal belongs to someone else.
	env.mock.ExpectQuery(`SELECT \* FROM "users" WHERE id =`).
		WillReturnRows(sqlmock.NewRows(userRows).
			AddRow("user-b", "Bob", "bob@example.com", "hash", now, nil))
	env.mock.ExpectQuery(`SELECT \* FROM "meals" WHERE id =`).
		WillReturnRows(sqlmock.NewRows(mealRows).
			AddRow("meal-1", "Meal 1", "desc", true, now, "user-a", now, nil))

	w := env.do(t, "user-b", http.MethodPut, "/meals/meal-1", `{"name":"stolen"}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "not authorized to update this meal")
	// No UPDATE statement may have run.
	require.NoError(t, env.mock.ExpectationsWereMet())
}

func TestDeleteMeal_OtherOwnersMealForbidden(t *testing.T) {
	env := newTestEnv(t)
	now := time.Now()

	env.mock.ExpectQuery(`SELECT \* FROM "users" WHERE id =`).
		WillReturnRows(sqlmock.NewRows(userRows).
			AddRow("user-b", "Bob", "bob@example.com", "hash", now, nil))
	env.mock.ExpectQuery(`SELECT \* FROM "meals" WHERE id =`).
		WillReturnRows(sqlmock.NewRows(mealRows).
			AddRow("meal-1", "Meal 1", "desc", true, now, "user-a", now, nil))

	w := env.do(t, "user-b", http.MethodDelete, "/meals/meal-1", "")

	assert.Equal(t, http.StatusForbidden, w.Code)
	require.NoError(t, env.mock.ExpectationsWereMet())
}

func TestDeleteMeal_OwnMeal(t *testing.T) {
	env := newTestEnv(t)
	now := time.Now()

	env.mock.ExpectQuery(`SELECT \* FROM "users" WHERE id =`).
		WillReturnRows(sqlmock.NewRows(userRows).
			AddRow("user-a", "Alice", "alice@example.com", "hash", now, nil))
	env.mock.ExpectQuery(`SELECT \* FROM "meals" WHERE id =`).
		WillReturnRows(sqlmock.NewRows(mealRows).
			AddRow("meal-1", "Meal 1", "desc", true, now, "user-a", now, nil))
	env.mock.ExpectExec(`DELETE FROM "meals"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := env.do(t, "user-a", http.MethodDelete, "/meals/meal-1", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteMeal_MissingMealNotFound(t *testing.T) {
	env := newTestEnv(t)
	now := time.Now()

	env.mock.ExpectQuery(`SELECT \* FROM "users" WHERE id =`).
		WillReturnRows(sqlmock.NewRows(userRows).
			AddRow("user-a", "Alice", "alice@example.com", "hash", now, nil))
	env.mock.ExpectQuery(`SELECT \* FROM "meals" WHERE id =`).
		WillReturnRows(sqlmock.NewRows(mealRows))

	w := env.do(t, "user-a", http.MethodDelete, "/meals/meal-1", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Meal not found")
}

func TestCreateMeal_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, "user-a", http.MethodPost, "/meals", `{"name":"Meal 1"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required fields")
}

func TestGetMetrics_NoMeals(t *testing.T) {
	env := newTestEnv(t)
	now := time.Now()

	env.mock.ExpectQuery(`SELECT \* FROM "users" WHERE id =`).
		WillReturnRows(sqlmock.NewRows(userRows).
			AddRow("user-a", "Alice", "alice@example.com", "hash", now, nil))
	env.mock.ExpectQuery(`SELECT count\(\*\) FROM "meals"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	w := env.do(t, "user-a", http.MethodGet, "/meals/metrics", "")

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.Number
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "0", body["totalMeals"].String())
	assert.Equal(t, "0", body["mealsOnDietCount"].String())
	assert.Equal(t, "0", body["mealsOnNonDietCount"].String())
	assert.Equal(t, "0", body["longestStreak"].String())
}

func TestListMeals_UnknownUser(t *testing.T) {
	env := newTestEnv(t)

	env.mock.ExpectQuery(`SELECT \* FROM "users" WHERE id =`).
		WillReturnRows(sqlmock.NewRows(userRows))

	w := env.do(t, "ghost", http.MethodGet, "/meals", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}
