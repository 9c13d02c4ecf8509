// backend/controllers/managementController.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sqpaloma/novak-sub002/backend/initializers"
	"github.com/sqpaloma/novak-sub002/backend/models"
	"github.com/sqpaloma/novak-sub002/backend/services"
	"github.com/sqpaloma/novak-sub002/backend/websocket"
	"gorm.io/gorm"
)

// CreateEmployee cria um novo colaborador (ação de administrador).
func CreateEmployee(c *gin.Context) {
	var body struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
		Role     string `json:"role"`
		IsAdmin  bool   `json:"isAdmin"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "É necessário fornecer nome, e-mail e senha."})
		return
	}

	hash, err := services.NewHasher().Hash(body.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao processar a senha."})
		return
	}

	emp := models.Employee{
		Name:         body.Name,
		Email:        body.Email,
		PasswordHash: hash,
		Role:         body.Role,
		IsAdmin:      body.IsAdmin,
	}
	if err := initializers.DB.Create(&emp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao criar o colaborador."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Colaborador criado com sucesso.", "id": emp.ID})
}

// GetEmployees lista os colaboradores sem os hashes de senha.
func GetEmployees(c *gin.Context) {
	var employees []models.Employee
	// Omit garante que nunca enviamos os hashes para o frontend.
	initializers.DB.Omit("password_hash").Find(&employees)
	c.JSON(http.StatusOK, gin.H{"data": employees})
}

// CreateDepartment cria um departamento com papel padrão, capacidades e
// escopo de dados.
func CreateDepartment(c *gin.Context) {
	var dept models.Department
	if err := c.ShouldBindJSON(&dept); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados de departamento inválidos."})
		return
	}
	dept.Active = true

	if err := createWithAudit(c, &dept, "CRIAR_DEPARTAMENTO", dept.Name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao criar o departamento."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dept})
}

// UpdateDepartment atualiza os campos de um departamento existente.
func UpdateDepartment(c *gin.Context) {
	var dept models.Department
	if err := initializers.DB.First(&dept, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Departamento não encontrado."})
		return
	}

	var body models.Department
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados de departamento inválidos."})
		return
	}

	updates := map[string]interface{}{
		"name":                  body.Name,
		"default_role":          body.DefaultRole,
		"responsible_person_id": body.ResponsiblePersonID,
		"dashboard":             body.Dashboard,
		"chat":                  body.Chat,
		"manual":                body.Manual,
		"indicadores":           body.Indicadores,
		"analise":               body.Analise,
		"settings":              body.Settings,
		"data_scope":            body.DataScope,
	}
	if err := updateWithAudit(c, &dept, updates, "EDITAR_DEPARTAMENTO", dept.Name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao atualizar o departamento."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dept})
}

// ToggleDepartment alterna o estado ativo de um departamento (soft delete
// administrativo; nada é removido).
func ToggleDepartment(c *gin.Context) {
	var dept models.Department
	if err := initializers.DB.First(&dept, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Departamento não encontrado."})
		return
	}
	if err := updateWithAudit(c, &dept, map[string]interface{}{"active": !dept.Active},
		"ALTERNAR_DEPARTAMENTO", dept.Name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao alternar o departamento."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dept})
}

// GetDepartments lista os departamentos com os seus subdepartamentos.
func GetDepartments(c *gin.Context) {
	var departments []models.Department
	if err := initializers.DB.Order("name ASC").Find(&departments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao carregar os departamentos."})
		return
	}
	var subdepartments []models.Subdepartment
	if err := initializers.DB.Order("name ASC").Find(&subdepartments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao carregar os subdepartamentos."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": departments, "subdepartments": subdepartments})
}

// CreateSubdepartment cria um subdepartamento dentro de um departamento.
func CreateSubdepartment(c *gin.Context) {
	var sub models.Subdepartment
	if err := c.ShouldBindJSON(&sub); err != nil || sub.DepartmentID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados de subdepartamento inválidos."})
		return
	}
	sub.Active = true

	if err := createWithAudit(c, &sub, "CRIAR_SUBDEPARTAMENTO", sub.Name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao criar o subdepartamento."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": sub})
}

// CreatePerson cria uma pessoa do organograma.
func CreatePerson(c *gin.Context) {
	var person models.Person
	if err := c.ShouldBindJSON(&person); err != nil || person.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados de pessoa inválidos."})
		return
	}
	person.Active = true

	if err := createWithAudit(c, &person, "CRIAR_PESSOA", person.Name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao criar a pessoa."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": person})
}

// UpdatePerson atualiza nome, rótulo e supervisor de uma pessoa.
func UpdatePerson(c *gin.Context) {
	var person models.Person
	if err := initializers.DB.First(&person, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pessoa não encontrada."})
		return
	}

	var body models.Person
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados de pessoa inválidos."})
		return
	}

	updates := map[string]interface{}{
		"name":          body.Name,
		"role_label":    body.RoleLabel,
		"supervisor_id": body.SupervisorID,
	}
	if err := updateWithAudit(c, &person, updates, "EDITAR_PESSOA", person.Name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao atualizar a pessoa."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": person})
}

// TogglePerson alterna o estado ativo de uma pessoa.
func TogglePerson(c *gin.Context) {
	var person models.Person
	if err := initializers.DB.First(&person, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pessoa não encontrada."})
		return
	}
	if err := updateWithAudit(c, &person, map[string]interface{}{"active": !person.Active},
		"ALTERNAR_PESSOA", person.Name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao alternar a pessoa."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": person})
}

// GetSupervisorChain devolve a cadeia de supervisão de uma pessoa, do
// supervisor mais próximo para cima.
func GetSupervisorChain(c *gin.Context) {
	var person models.Person
	if err := initializers.DB.First(&person, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pessoa não encontrada."})
		return
	}

	chain, err := services.SupervisorChain(initializers.DB, person.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao resolver a cadeia de supervisão."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": chain})
}

// GetPersonLinks devolve os vínculos ativos de uma pessoa.
func GetPersonLinks(c *gin.Context) {
	var person models.Person
	if err := initializers.DB.First(&person, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pessoa não encontrada."})
		return
	}

	links, err := services.ActiveLinks(initializers.DB, person.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao carregar os vínculos."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": links})
}

// CreateLink vincula uma pessoa a um departamento/subdepartamento.
func CreateLink(c *gin.Context) {
	var link models.DepartmentPersonLink
	if err := c.ShouldBindJSON(&link); err != nil || link.PersonID == 0 || link.DepartmentID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados de vínculo inválidos."})
		return
	}
	link.Active = true

	if err := createWithAudit(c, &link, "CRIAR_VINCULO", ""); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao criar o vínculo."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": link})
}

// ToggleLink alterna o estado ativo de um vínculo.
func ToggleLink(c *gin.Context) {
	var link models.DepartmentPersonLink
	if err := initializers.DB.First(&link, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vínculo não encontrado."})
		return
	}
	if err := updateWithAudit(c, &link, map[string]interface{}{"active": !link.Active},
		"ALTERNAR_VINCULO", ""); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao alternar o vínculo."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": link})
}

// GetAuditLogs lista os registros de auditoria mais recentes.
func GetAuditLogs(c *gin.Context) {
	var logs []models.AuditLog
	if err := initializers.DB.Order("created_at DESC").Limit(200).Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao carregar os logs."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": logs})
}

func createWithAudit(c *gin.Context, record interface{}, action, details string) error {
	principal := c.MustGet("principal").(models.Principal)
	err := initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}
		return services.CreateAuditLog(tx, principal.Name, action, details)
	})
	if err == nil {
		websocket.H.BroadcastEvent("org_updated", nil)
	}
	return err
}

func updateWithAudit(c *gin.Context, record interface{}, updates map[string]interface{}, action, details string) error {
	principal := c.MustGet("principal").(models.Principal)
	err := initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(record).Updates(updates).Error; err != nil {
			return err
		}
		return services.CreateAuditLog(tx, principal.Name, action, details)
	})
	if err == nil {
		websocket.H.BroadcastEvent("org_updated", nil)
	}
	return err
}
