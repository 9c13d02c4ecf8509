// backend/services/auditLogService.go
package services

import (
	"fmt"

	"github.com/sqpaloma/novak-sub002/backend/models"
	"gorm.io/gorm"
)

// CreateAuditLog cria um registro de auditoria dentro de uma transação de
// banco de dados. Recebe o 'tx *gorm.DB' para que o log faça parte da mesma
// operação atômica que a ação principal (login, alteração no organograma).
func CreateAuditLog(tx *gorm.DB, actor string, action string, details string) error {
	auditLog := models.AuditLog{
		Actor:   actor,
		Action:  action,
		Details: details,
	}

	if err := tx.Create(&auditLog).Error; err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}
