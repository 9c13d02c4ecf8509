// backend/services/orgService.go
package services

import (
	"errors"
	"log"

	"github.com/sqpaloma/novak-sub002/backend/models"
	"gorm.io/gorm"
)

// SupervisorChain devolve a cadeia de supervisão de uma pessoa, do supervisor
// mais próximo para cima, terminando na pessoa sem SupervisorID. A travessia
// guarda os ids visitados; um ciclo na floresta de supervisão devolve cadeia
// vazia em vez de iterar para sempre.
func SupervisorChain(db *gorm.DB, personID uint) ([]models.Person, error) {
	var chain []models.Person
	visited := map[uint]bool{personID: true}

	var current models.Person
	if err := db.First(&current, personID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrPersonNotFound
		}
		return nil, err
	}

	for current.SupervisorID != nil {
		nextID := *current.SupervisorID
		if visited[nextID] {
			log.Printf("AVISO: ciclo de supervisão detetado a partir da pessoa %d, cadeia descartada", personID)
			return nil, nil
		}
		visited[nextID] = true

		var supervisor models.Person
		if err := db.First(&supervisor, nextID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// SupervisorID órfão: a cadeia termina aqui.
				log.Printf("AVISO: supervisor %d da pessoa %d não existe", nextID, current.ID)
				return chain, nil
			}
			return nil, err
		}

		chain = append(chain, supervisor)
		current = supervisor
	}

	return chain, nil
}

// ResponsiblePersonForDepartment devolve a pessoa responsável pelo
// departamento, ou nil quando não está definida.
func ResponsiblePersonForDepartment(db *gorm.DB, departmentID uint) (*models.Person, error) {
	var dept models.Department
	if err := db.First(&dept, departmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrDepartmentNotFound
		}
		return nil, err
	}
	return loadResponsible(db, dept.ResponsiblePersonID)
}

// ResponsiblePersonForSubdepartment devolve a pessoa responsável pelo
// subdepartamento, ou nil quando não está definida.
func ResponsiblePersonForSubdepartment(db *gorm.DB, subdepartmentID uint) (*models.Person, error) {
	var sub models.Subdepartment
	if err := db.First(&sub, subdepartmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrSubdepartmentNotFound
		}
		return nil, err
	}
	return loadResponsible(db, sub.ResponsiblePersonID)
}

func loadResponsible(db *gorm.DB, personID *uint) (*models.Person, error) {
	if personID == nil {
		return nil, nil
	}
	var person models.Person
	if err := db.First(&person, *personID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Referência órfã; tratada como "sem responsável".
			log.Printf("AVISO: responsável %d não existe", *personID)
			return nil, nil
		}
		return nil, err
	}
	return &person, nil
}

// ActiveLinks devolve os vínculos ativos de uma pessoa.
func ActiveLinks(db *gorm.DB, personID uint) ([]models.DepartmentPersonLink, error) {
	var links []models.DepartmentPersonLink
	err := db.Where("person_id = ? AND active = ?", personID, true).Find(&links).Error
	return links, err
}
