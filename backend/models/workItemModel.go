// backend/models/workItemModel.go
package models

import (
	"time"

	"gorm.io/gorm"
)

// WorkItem é um item de trabalho do painel (orçamento, agendamento...).
// O motor de filtragem nunca o altera, apenas decide se ele é visível;
// a atribuição é um campo de texto livre em Responsavel.
type WorkItem struct {
	gorm.Model
	Titulo      string     `json:"titulo"`
	Responsavel string     `gorm:"index" json:"responsavel"`
	Status      string     `gorm:"index" json:"status"`
	Prazo       *time.Time `json:"prazo"`
}
