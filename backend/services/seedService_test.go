// backend/services/seedService_test.go
package services

import (
	"testing"

	"github.com/sqpaloma/novak-sub002/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func countOf(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}

func TestSeedDefaultDataIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, SeedDefaultData(db))

	departments := countOf(t, db, &models.Department{})
	people := countOf(t, db, &models.Person{})
	subdepartments := countOf(t, db, &models.Subdepartment{})
	links := countOf(t, db, &models.DepartmentPersonLink{})

	assert.EqualValues(t, 4, departments)
	assert.EqualValues(t, 7, people)
	assert.EqualValues(t, 2, subdepartments)
	assert.EqualValues(t, 5, links)

	// Repetir o seeding não pode duplicar nada.
	require.NoError(t, SeedDefaultData(db))

	assert.Equal(t, departments, countOf(t, db, &models.Department{}))
	assert.Equal(t, people, countOf(t, db, &models.Person{}))
	assert.Equal(t, subdepartments, countOf(t, db, &models.Subdepartment{}))
	assert.Equal(t, links, countOf(t, db, &models.DepartmentPersonLink{}))
}

func TestSeedDefaultDataBuildsResolvableTeams(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, SeedDefaultData(db))

	team, err := ResolveTeam(db, "Alexandre")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Kaua", "Vinicius"}, team)

	team, err = ResolveTeam(db, "Marcelo")
	require.NoError(t, err)
	assert.Equal(t, []string{"Rafael Massa"}, team)
}

func TestSeedAdminEmployeeOnlyWhenEmpty(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, SeedAdminEmployee(db, LegacyHasher{}))
	assert.EqualValues(t, 1, countOf(t, db, &models.Employee{}))

	// Segunda execução: a tabela já tem colaboradores, nada muda.
	require.NoError(t, SeedAdminEmployee(db, LegacyHasher{}))
	assert.EqualValues(t, 1, countOf(t, db, &models.Employee{}))

	var admin models.Employee
	require.NoError(t, db.First(&admin, "email = ?", "admin@empresa.com.br").Error)
	assert.True(t, admin.IsAdmin)
	assert.Equal(t, "admin", DeriveRole(admin))
}
