// backend/services/seedService.go
package services

import (
	"fmt"
	"log"
	"sync"

	"github.com/sqpaloma/novak-sub002/backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// seedMu serializa o seeding: o padrão antigo de "verificar e depois
// inserir" deixava duas execuções concorrentes criarem duplicados. Além do
// mutex, cada inserção usa upsert sobre a chave natural, portanto repetir o
// seeding nunca duplica registros.
var seedMu sync.Mutex

// SeedDefaultData semeia departamentos, pessoas, subdepartamentos e vínculos
// padrão. Idempotente: pode correr em todo arranque.
func SeedDefaultData(db *gorm.DB) error {
	seedMu.Lock()
	defer seedMu.Unlock()

	return db.Transaction(func(tx *gorm.DB) error {
		departments := []models.Department{
			{Name: "Vendas", DefaultRole: "consultor", Active: true,
				Dashboard: true, Chat: true, Manual: true, DataScope: ScopeTeam},
			{Name: "Compras", DefaultRole: "compras", Active: true,
				Dashboard: true, Settings: true, DataScope: ScopeAll},
			{Name: "Qualidade e PCP", DefaultRole: "qualidade_pcp", Active: true,
				Dashboard: true, Manual: true, Indicadores: true, Analise: true, DataScope: ScopeAll},
			{Name: "Administração", DefaultRole: "admin", Active: true,
				Dashboard: true, Chat: true, Manual: true, Indicadores: true, Analise: true, Settings: true,
				DataScope: ScopeAll},
		}
		for i := range departments {
			if err := upsertDepartment(tx, &departments[i]); err != nil {
				return err
			}
		}
		deptByName := make(map[string]uint, len(departments))
		for _, dept := range departments {
			deptByName[dept.Name] = dept.ID
		}

		// Consultores e as suas equipas. O supervisor de cada membro é o
		// consultor responsável.
		people := []models.Person{
			{Name: "Giovanna", RoleLabel: "Gerente", Active: true},
			{Name: "Alexandre", RoleLabel: "Consultor", Active: true},
			{Name: "Marcelo", RoleLabel: "Consultor", Active: true},
		}
		for i := range people {
			if err := upsertPerson(tx, &people[i]); err != nil {
				return err
			}
		}
		personByName := make(map[string]uint, len(people))
		for _, p := range people {
			personByName[p.Name] = p.ID
		}

		members := []models.Person{
			{Name: "Kaua", RoleLabel: "Assistente", Active: true},
			{Name: "Vinicius", RoleLabel: "Assistente", Active: true},
			{Name: "Rafael Massa", RoleLabel: "Assistente", Active: true},
			{Name: "Lucas Santos", RoleLabel: "Assistente", Active: true},
		}
		supervisorOf := map[string]string{
			"Kaua":         "Alexandre",
			"Vinicius":     "Alexandre",
			"Rafael Massa": "Marcelo",
			"Lucas Santos": "Giovanna",
		}
		for i := range members {
			supID := personByName[supervisorOf[members[i].Name]]
			members[i].SupervisorID = &supID
			if err := upsertPerson(tx, &members[i]); err != nil {
				return err
			}
			personByName[members[i].Name] = members[i].ID
		}

		subdepartments := []struct {
			name        string
			department  string
			responsible string
			memberNames []string
		}{
			{"Equipe Alexandre", "Vendas", "Alexandre", []string{"Kaua", "Vinicius"}},
			{"Equipe Marcelo", "Vendas", "Marcelo", []string{"Rafael Massa"}},
		}
		for _, def := range subdepartments {
			respID := personByName[def.responsible]
			sub := models.Subdepartment{
				Name:                def.name,
				DepartmentID:        deptByName[def.department],
				ResponsiblePersonID: &respID,
				Active:              true,
			}
			if err := upsertSubdepartment(tx, &sub); err != nil {
				return err
			}

			respLink := models.DepartmentPersonLink{
				PersonID:        respID,
				DepartmentID:    sub.DepartmentID,
				SubdepartmentID: &sub.ID,
				IsResponsible:   true,
				Active:          true,
			}
			if err := upsertLink(tx, &respLink); err != nil {
				return err
			}
			for _, memberName := range def.memberNames {
				link := models.DepartmentPersonLink{
					PersonID:        personByName[memberName],
					DepartmentID:    sub.DepartmentID,
					SubdepartmentID: &sub.ID,
					Active:          true,
				}
				if err := upsertLink(tx, &link); err != nil {
					return err
				}
			}
		}

		return CreateAuditLog(tx, "system", "SEED", "Dados padrão do organograma semeados")
	})
}

// SeedAdminEmployee cria o colaborador administrador inicial quando a tabela
// de colaboradores está vazia.
func SeedAdminEmployee(db *gorm.DB, hasher Hasher) error {
	seedMu.Lock()
	defer seedMu.Unlock()

	var count int64
	if err := db.Model(&models.Employee{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := hasher.Hash("admin")
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.Employee{
		Name:         "Administrador",
		Email:        "admin@empresa.com.br",
		PasswordHash: hash,
		IsAdmin:      true,
	}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&admin).Error
	if err != nil {
		return err
	}

	log.Println("Colaborador 'admin' inicial criado com sucesso.")
	return nil
}

func upsertDepartment(tx *gorm.DB, dept *models.Department) error {
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(dept).Error
	if err != nil {
		return err
	}
	return tx.First(dept, "name = ?", dept.Name).Error
}

func upsertPerson(tx *gorm.DB, person *models.Person) error {
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(person).Error
	if err != nil {
		return err
	}
	return tx.First(person, "name = ?", person.Name).Error
}

func upsertSubdepartment(tx *gorm.DB, sub *models.Subdepartment) error {
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}, {Name: "department_id"}},
		DoNothing: true,
	}).Create(sub).Error
	if err != nil {
		return err
	}
	return tx.First(sub, "name = ? AND department_id = ?", sub.Name, sub.DepartmentID).Error
}

func upsertLink(tx *gorm.DB, link *models.DepartmentPersonLink) error {
	query := tx.Where("person_id = ? AND department_id = ?", link.PersonID, link.DepartmentID)
	if link.SubdepartmentID != nil {
		query = query.Where("subdepartment_id = ?", *link.SubdepartmentID)
	} else {
		query = query.Where("subdepartment_id IS NULL")
	}

	var existing models.DepartmentPersonLink
	err := query.First(&existing).Error
	if err == nil {
		*link = existing
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return tx.Create(link).Error
}
