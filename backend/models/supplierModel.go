// backend/models/supplierModel.go
package models

import "gorm.io/gorm"

// Supplier representa um fornecedor externo com acesso próprio ao painel.
// O login de fornecedor tem precedência sobre o de colaborador quando o
// identificador colide entre os dois espaços de nomes.
type Supplier struct {
	gorm.Model
	CompanyName      string `gorm:"not null" json:"companyName"`
	LoginName        string `gorm:"uniqueIndex;not null" json:"loginName"`
	PasswordHash     string `gorm:"column:password_hash;not null" json:"-"`
	Active           bool   `gorm:"not null;default:true" json:"active"`
	LinkedEmployeeID *uint  `gorm:"index" json:"linkedEmployeeId"` // colaborador interno associado, opcional

	LinkedEmployee *Employee `gorm:"foreignKey:LinkedEmployeeID" json:"-"`
}
