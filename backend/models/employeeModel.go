// backend/models/employeeModel.go
package models

import "gorm.io/gorm"

// Employee representa um colaborador interno que acede ao painel com e-mail e senha.
type Employee struct {
	gorm.Model
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"column:password_hash" json:"-"` // pode estar vazio (senha ainda não configurada)
	Role         string `json:"role"`                          // papel armazenado: gerente, consultor, compras, qualidade_pcp...
	IsAdmin      bool   `gorm:"not null;default:false" json:"isAdmin"`
	LastLogin    int64  `json:"lastLogin"` // epoch em milissegundos, atualizado em cada login bem-sucedido
}
