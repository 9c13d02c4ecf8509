// backend/models/auditLogModel.go
package models

import "gorm.io/gorm"

// AuditLog regista quem fez o quê: logins, alterações no organograma, seeds.
type AuditLog struct {
	gorm.Model
	Actor   string `gorm:"not null" json:"actor"`
	Action  string `gorm:"not null" json:"action"`
	Details string `json:"details"`
}
