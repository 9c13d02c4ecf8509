// backend/controllers/authController.go
package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sqpaloma/novak-sub002/backend/config"
	"github.com/sqpaloma/novak-sub002/backend/initializers"
	"github.com/sqpaloma/novak-sub002/backend/models"
	"github.com/sqpaloma/novak-sub002/backend/services"
	"gorm.io/gorm"
)

var authFailureMessages = map[error]string{
	models.ErrEmailNotFound:         "E-mail não encontrado.",
	models.ErrPasswordNotConfigured: "Senha ainda não configurada para este e-mail.",
	models.ErrWrongPassword:         "Senha incorreta.",
	models.ErrSupplierInactive:      "O acesso deste fornecedor está inativo.",
	models.ErrSupplierWrongPassword: "Senha de fornecedor incorreta.",
}

// Login autentica um identificador (login de fornecedor ou e-mail de
// colaborador) e devolve o principal resolvido com um token de sessão.
// As falhas de autenticação são devolvidas tal e qual, identificadas pelo
// campo "error".
func Login(c *gin.Context) {
	var body struct {
		Identifier string `json:"identifier" binding:"required"`
		Password   string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "É necessário fornecer identificador e senha."})
		return
	}

	principal, err := services.Authenticate(initializers.DB, services.NewHasher(), body.Identifier, body.Password)
	if err != nil {
		message, known := authFailureMessages[err]
		if !known {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao autenticar."})
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error(), "message": message})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  principal.ID,
		"typ":  string(principal.Type),
		"name": principal.Name,
		"role": principal.Role,
		"exp":  time.Now().Add(time.Hour * 24 * 30).Unix(),
	})

	tokenString, err := token.SignedString([]byte(config.AppConfig.JWTSecret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	if err := services.CreateAuditLog(initializers.DB, principal.Name, "LOGIN", "Sessão iniciada"); err != nil {
		log.Printf("AVISO: falha ao registar o login de %s: %v", principal.Name, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     tokenString,
		"principal": principal,
	})
}

// GetCapabilities devolve ao guarda de rotas do frontend as capacidades, o
// escopo de dados e a decisão sobre a rota em avaliação (?route=). O guarda
// de prefixo corre antes, como middleware, e pode ter redirecionado.
func GetCapabilities(c *gin.Context) {
	principal := c.MustGet("principal").(models.Principal)
	perm := services.ResolvePermissions(principal.Role, principal.IsAdmin)

	var allowedRoutePrefix interface{}
	if len(perm.AllowedRoutePrefixes) > 0 {
		allowedRoutePrefix = perm.RedirectTo
	}

	response := gin.H{
		"capabilities":       perm.Capabilities,
		"dataScope":          perm.DataScope,
		"allowedRoutePrefix": allowedRoutePrefix,
	}

	if route := c.Query("route"); route != "" {
		decision := services.CheckRoute(principal.Role, principal.IsAdmin, route)
		response["routeAllowed"] = decision.Allowed
		if decision.RedirectTo != "" {
			response["redirectTo"] = decision.RedirectTo
		}
	}

	c.JSON(http.StatusOK, response)
}

// ChangePassword troca a senha do próprio colaborador autenticado.
func ChangePassword(c *gin.Context) {
	principal := c.MustGet("principal").(models.Principal)
	if !principal.IsEmployee() {
		c.JSON(http.StatusForbidden, gin.H{"error": "Apenas colaboradores podem alterar a senha aqui."})
		return
	}

	var body struct {
		OldPassword string `json:"oldPassword" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "É necessário fornecer a senha antiga e a nova."})
		return
	}

	var emp models.Employee
	if err := initializers.DB.First(&emp, principal.ID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Colaborador não encontrado."})
		return
	}

	hasher := services.NewHasher()
	if emp.PasswordHash != "" {
		if err := hasher.Compare(emp.PasswordHash, body.OldPassword); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "A senha antiga está incorreta."})
			return
		}
	}

	newHash, err := hasher.Hash(body.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao processar a nova senha."})
		return
	}

	if err := initializers.DB.Model(&emp).Update("password_hash", newHash).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao atualizar a senha."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Senha alterada com sucesso."})
}

// AdminResetPassword permite que um administrador redefina a senha de outro
// colaborador. Um admin não pode redefinir a própria senha por esta rota.
func AdminResetPassword(c *gin.Context) {
	currentAdmin := c.MustGet("principal").(models.Principal)
	targetUserID := c.Param("id")

	var body struct {
		NewPassword string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "É necessário fornecer a nova senha."})
		return
	}

	var target models.Employee
	if err := initializers.DB.First(&target, targetUserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Colaborador alvo não encontrado."})
		return
	}

	if currentAdmin.IsEmployee() && target.ID == currentAdmin.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Não pode redefinir a sua própria senha aqui. Use a funcionalidade 'Alterar Senha'."})
		return
	}

	newHash, err := services.NewHasher().Hash(body.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao processar a nova senha."})
		return
	}

	err = initializers.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&target).Update("password_hash", newHash).Error; err != nil {
			return err
		}
		return services.CreateAuditLog(tx, currentAdmin.Name, "RESET_SENHA",
			"Senha redefinida para "+target.Email)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Falha ao atualizar a senha."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Senha do colaborador redefinida com sucesso."})
}
