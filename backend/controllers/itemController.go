// backend/controllers/itemController.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sqpaloma/novak-sub002/backend/initializers"
	"github.com/sqpaloma/novak-sub002/backend/models"
	"github.com/sqpaloma/novak-sub002/backend/services"
	"gorm.io/gorm"
)

// ResolveVisibleItems aplica ao conjunto bruto de itens o escopo do
// principal: resolve as permissões, agrega a equipa quando o escopo é de
// equipa e filtra. É o único caminho pelo qual as vistas de listagem
// recebem itens.
func ResolveVisibleItems(db *gorm.DB, items []models.WorkItem, principal models.Principal) ([]models.WorkItem, error) {
	perm := services.ResolvePermissions(principal.Role, principal.IsAdmin)

	var teamNames []string
	if perm.DataScope == services.ScopeTeam {
		var err error
		teamNames, err = services.ResolveTeam(db, principal.Name)
		if err != nil {
			return nil, err
		}
	}

	return services.FilterItems(items, principal, perm.DataScope, teamNames), nil
}

// GetItems lista os itens de trabalho visíveis para o principal autenticado
// (painel e quadro de agendamento).
func GetItems(c *gin.Context) {
	principal := c.MustGet("principal").(models.Principal)

	var items []models.WorkItem
	if err := initializers.DB.Order("created_at ASC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao carregar os itens."})
		return
	}

	visible, err := ResolveVisibleItems(initializers.DB, items, principal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao resolver a visibilidade dos itens."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": visible})
}
