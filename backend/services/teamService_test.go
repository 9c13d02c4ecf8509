// backend/services/teamService_test.go
package services

import (
	"testing"

	"github.com/sqpaloma/novak-sub002/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTeamFromHierarchy(t *testing.T) {
	db := openTestDB(t)

	resp := createPerson(t, db, "Alexandre", nil, true)
	kaua := createPerson(t, db, "Kaua", &resp.ID, true)
	vinicius := createPerson(t, db, "Vinicius", &resp.ID, true)
	inativo := createPerson(t, db, "Antigo", &resp.ID, false)

	dept := models.Department{Name: "Vendas", Active: true}
	require.NoError(t, db.Create(&dept).Error)
	sub := models.Subdepartment{Name: "Equipe Alexandre", DepartmentID: dept.ID, ResponsiblePersonID: &resp.ID, Active: true}
	require.NoError(t, db.Create(&sub).Error)

	links := []models.DepartmentPersonLink{
		{PersonID: resp.ID, DepartmentID: dept.ID, SubdepartmentID: &sub.ID, IsResponsible: true, Active: true},
		{PersonID: kaua.ID, DepartmentID: dept.ID, SubdepartmentID: &sub.ID, Active: true},
		{PersonID: vinicius.ID, DepartmentID: dept.ID, SubdepartmentID: &sub.ID, Active: true},
		{PersonID: inativo.ID, DepartmentID: dept.ID, SubdepartmentID: &sub.ID, Active: true},
	}
	require.NoError(t, db.Create(&links).Error)

	// A comparação de nome é sem maiúsculas e com trim.
	team, err := ResolveTeam(db, "  alexandre ")
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"Kaua", "Vinicius"}, team,
		"o responsável não entra, pessoas inativas não entram")
}

func TestResolveTeamFallbackTable(t *testing.T) {
	db := openTestDB(t)

	// Sem organograma, a tabela fixa responde pelo primeiro nome.
	team, err := ResolveTeam(db, "Alexandre Souza")
	require.NoError(t, err)
	assert.Equal(t, []string{"Alexandre", "Kaua", "Vinicius"}, team)
}

func TestResolveTeamUnknownConsultantIsEmpty(t *testing.T) {
	db := openTestDB(t)

	team, err := ResolveTeam(db, "Desconhecido")
	require.NoError(t, err)
	assert.Empty(t, team)
}

func TestResolveTeamOrphanLinkIsSkipped(t *testing.T) {
	db := openTestDB(t)

	resp := createPerson(t, db, "Marcelo", nil, true)
	rafael := createPerson(t, db, "Rafael Massa", &resp.ID, true)

	dept := models.Department{Name: "Vendas", Active: true}
	require.NoError(t, db.Create(&dept).Error)
	sub := models.Subdepartment{Name: "Equipe Marcelo", DepartmentID: dept.ID, ResponsiblePersonID: &resp.ID, Active: true}
	require.NoError(t, db.Create(&sub).Error)

	links := []models.DepartmentPersonLink{
		{PersonID: rafael.ID, DepartmentID: dept.ID, SubdepartmentID: &sub.ID, Active: true},
		{PersonID: 9999, DepartmentID: dept.ID, SubdepartmentID: &sub.ID, Active: true}, // órfão
	}
	require.NoError(t, db.Create(&links).Error)

	team, err := ResolveTeam(db, "Marcelo")
	require.NoError(t, err)
	assert.Equal(t, []string{"Rafael Massa"}, team)
}

func TestResolveTeamInactiveSubdepartmentIgnored(t *testing.T) {
	db := openTestDB(t)

	resp := createPerson(t, db, "Carla", nil, true)
	membro := createPerson(t, db, "Bruno", &resp.ID, true)

	dept := models.Department{Name: "Vendas", Active: true}
	require.NoError(t, db.Create(&dept).Error)
	sub := models.Subdepartment{Name: "Equipe Carla", DepartmentID: dept.ID, ResponsiblePersonID: &resp.ID, Active: false}
	require.NoError(t, db.Create(&sub).Error)

	link := models.DepartmentPersonLink{PersonID: membro.ID, DepartmentID: dept.ID, SubdepartmentID: &sub.ID, Active: true}
	require.NoError(t, db.Create(&link).Error)

	// Subdepartamento inativo não contribui; "Carla" não está na tabela
	// fixa, portanto a equipa é vazia.
	team, err := ResolveTeam(db, "Carla")
	require.NoError(t, err)
	assert.Empty(t, team)
}
