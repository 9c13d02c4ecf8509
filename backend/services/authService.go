// backend/services/authService.go
package services

import (
	"errors"
	"log"

	"github.com/sqpaloma/novak-sub002/backend/models"
	"gorm.io/gorm"
)

type resolveOutcome int

const (
	outcomeNotFound resolveOutcome = iota
	outcomeMatched
	outcomeRejected
)

// identityStrategy é um resolvedor de um espaço de nomes de identidade.
// Cada estratégia devolve NotFound (o identificador não é dela), Matched
// (principal resolvido) ou Rejected (o identificador é dela mas a
// autenticação falhou — a cadeia para aqui).
type identityStrategy interface {
	Resolve(db *gorm.DB, hasher Hasher, identifier, secret string) (*models.Principal, resolveOutcome, error)
}

// A ordem importa: fornecedores são consultados primeiro, portanto um
// identificador que exista nos dois espaços de nomes autentica sempre como
// fornecedor. Comportamento herdado do sistema original, pendente de
// confirmação do dono do produto.
var identityStrategies = []identityStrategy{
	supplierStrategy{},
	employeeStrategy{},
}

// Authenticate percorre as estratégias por ordem e curto-circuita no
// primeiro Matched ou Rejected. Se nenhum espaço de nomes reclamar o
// identificador, a falha é EmailNotFound (a última estratégia é a de
// colaboradores, cuja chave é o e-mail).
func Authenticate(db *gorm.DB, hasher Hasher, identifier, secret string) (*models.Principal, error) {
	for _, strategy := range identityStrategies {
		principal, outcome, err := strategy.Resolve(db, hasher, identifier, secret)
		switch outcome {
		case outcomeMatched:
			return principal, nil
		case outcomeRejected:
			return nil, err
		}
	}
	return nil, models.ErrEmailNotFound
}

type supplierStrategy struct{}

func (supplierStrategy) Resolve(db *gorm.DB, hasher Hasher, identifier, secret string) (*models.Principal, resolveOutcome, error) {
	var supplier models.Supplier
	err := db.First(&supplier, "login_name = ?", identifier).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, outcomeNotFound, nil
	}
	if err != nil {
		return nil, outcomeRejected, err
	}

	if !supplier.Active {
		return nil, outcomeRejected, models.ErrSupplierInactive
	}
	if hasher.Compare(supplier.PasswordHash, secret) != nil {
		return nil, outcomeRejected, models.ErrSupplierWrongPassword
	}

	principal := &models.Principal{
		Type:        models.PrincipalSupplier,
		ID:          supplier.ID,
		Name:        supplier.CompanyName,
		Role:        "fornecedor",
		CompanyName: supplier.CompanyName,
		LoginName:   supplier.LoginName,
	}

	// Enriquece com os dados do colaborador associado, quando existir.
	if supplier.LinkedEmployeeID != nil {
		var linked models.Employee
		if err := db.First(&linked, *supplier.LinkedEmployeeID).Error; err == nil {
			principal.Name = linked.Name
			principal.Email = linked.Email
			principal.Role = DeriveRole(linked)
		} else {
			log.Printf("AVISO: fornecedor %d aponta para colaborador %d inexistente", supplier.ID, *supplier.LinkedEmployeeID)
		}
	}

	return principal, outcomeMatched, nil
}

type employeeStrategy struct{}

func (employeeStrategy) Resolve(db *gorm.DB, hasher Hasher, identifier, secret string) (*models.Principal, resolveOutcome, error) {
	var emp models.Employee
	err := db.First(&emp, "email = ?", identifier).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, outcomeNotFound, nil
	}
	if err != nil {
		return nil, outcomeRejected, err
	}

	if emp.PasswordHash == "" {
		return nil, outcomeRejected, models.ErrPasswordNotConfigured
	}
	if hasher.Compare(emp.PasswordHash, secret) != nil {
		return nil, outcomeRejected, models.ErrWrongPassword
	}

	// Atualização do último login em melhor esforço: uma falha aqui não
	// impede a autenticação, apenas fica registada.
	now, timeErr := GetWorldTime()
	if timeErr != nil {
		log.Printf("AVISO: falha ao buscar a hora mundial, usando a hora do servidor: %v", timeErr)
	}
	if err := db.Model(&emp).Update("last_login", now.UnixMilli()).Error; err != nil {
		log.Printf("AVISO: falha ao gravar o último login do colaborador %d: %v", emp.ID, err)
	}

	principal := &models.Principal{
		Type:    models.PrincipalEmployee,
		ID:      emp.ID,
		Name:    emp.Name,
		Email:   emp.Email,
		Role:    DeriveRole(emp),
		IsAdmin: emp.IsAdmin,
	}

	return principal, outcomeMatched, nil
}
