// backend/middleware/requireAuth.go
package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sqpaloma/novak-sub002/backend/config"
	"github.com/sqpaloma/novak-sub002/backend/initializers"
	"github.com/sqpaloma/novak-sub002/backend/models"
	"github.com/sqpaloma/novak-sub002/backend/services"
)

func RequireAuth(c *gin.Context) {
	var tokenString string

	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
	} else {
		tokenString = c.Query("token")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token de autorização não encontrado"})
			return
		}
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})

	if err != nil || !token.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Claims do token inválidas"})
		return
	}

	if float64(time.Now().Unix()) > claims["exp"].(float64) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "O token expirou"})
		return
	}

	// Recarrega sempre o principal a partir do banco de dados para garantir
	// que papel e capacidades refletem o estado atual, não o do login.
	principal, err := reloadPrincipal(claims)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Utilizador não encontrado"})
		return
	}

	c.Set("principal", *principal)
	c.Next()
}

func reloadPrincipal(claims jwt.MapClaims) (*models.Principal, error) {
	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, fmt.Errorf("claim sub ausente")
	}
	typ, _ := claims["typ"].(string)

	if typ == string(models.PrincipalSupplier) {
		var supplier models.Supplier
		if err := initializers.DB.First(&supplier, uint(sub)).Error; err != nil {
			return nil, err
		}
		if !supplier.Active {
			return nil, fmt.Errorf("fornecedor inativo")
		}
		principal := models.Principal{
			Type:        models.PrincipalSupplier,
			ID:          supplier.ID,
			Name:        supplier.CompanyName,
			Role:        "fornecedor",
			CompanyName: supplier.CompanyName,
			LoginName:   supplier.LoginName,
		}
		if supplier.LinkedEmployeeID != nil {
			var linked models.Employee
			if err := initializers.DB.First(&linked, *supplier.LinkedEmployeeID).Error; err == nil {
				principal.Name = linked.Name
				principal.Email = linked.Email
				principal.Role = services.DeriveRole(linked)
			}
		}
		return &principal, nil
	}

	var emp models.Employee
	if err := initializers.DB.First(&emp, uint(sub)).Error; err != nil {
		return nil, err
	}
	return &models.Principal{
		Type:    models.PrincipalEmployee,
		ID:      emp.ID,
		Name:    emp.Name,
		Email:   emp.Email,
		Role:    services.DeriveRole(emp),
		IsAdmin: emp.IsAdmin,
	}, nil
}

// RequireCapability verifica se o principal autenticado tem uma capacidade
// do painel. Sem a capacidade, o resultado é um estado de acesso negado,
// nunca uma exceção.
func RequireCapability(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principalInterface, exists := c.Get("principal")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Utilizador não encontrado no contexto"})
			return
		}

		principal := principalInterface.(models.Principal)
		perm := services.ResolvePermissions(principal.Role, principal.IsAdmin)

		if !perm.Capabilities.Has(name) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Permissões insuficientes para aceder a este recurso."})
			return
		}

		c.Next()
	}
}

// RouteGate aplica a restrição de prefixo de rota (hoje só o papel de
// compras a tem). A rota em avaliação vem no parâmetro "route"; quando não é
// permitida, o guarda redireciona para o prefixo do papel em vez de negar.
// Corre antes de qualquer verificação de capacidade.
func RouteGate(c *gin.Context) {
	principalInterface, exists := c.Get("principal")
	if !exists {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Utilizador não encontrado no contexto"})
		return
	}
	principal := principalInterface.(models.Principal)

	route := c.Query("route")
	if route == "" {
		c.Next()
		return
	}

	decision := services.CheckRoute(principal.Role, principal.IsAdmin, route)
	if !decision.Allowed {
		c.Redirect(http.StatusFound, decision.RedirectTo)
		c.Abort()
		return
	}

	c.Next()
}
