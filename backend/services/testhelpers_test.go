// backend/services/testhelpers_test.go
package services

import (
	"testing"

	"github.com/sqpaloma/novak-sub002/backend/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB abre um banco sqlite em memória com o esquema completo,
// isolado por teste.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Employee{},
		&models.Supplier{},
		&models.Person{},
		&models.Department{},
		&models.Subdepartment{},
		&models.DepartmentPersonLink{},
		&models.WorkItem{},
		&models.AuditLog{},
	)
	require.NoError(t, err)

	return db
}

func createPerson(t *testing.T, db *gorm.DB, name string, supervisorID *uint, active bool) models.Person {
	t.Helper()
	person := models.Person{Name: name, SupervisorID: supervisorID, Active: active}
	require.NoError(t, db.Create(&person).Error)
	return person
}
