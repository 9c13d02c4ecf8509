// backend/initializers/database.go
package initializers

import (
	"log"

	"github.com/sqpaloma/novak-sub002/backend/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectToDB abre a ligação ao PostgreSQL usando a DATABASE_URL do ambiente.
func ConnectToDB() {
	var err error
	DB, err = gorm.Open(postgres.Open(config.AppConfig.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("Falha ao conectar à base de dados: %v", err)
	}
}
