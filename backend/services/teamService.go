// backend/services/teamService.go
package services

import (
	"log"
	"sort"
	"strings"

	"github.com/sqpaloma/novak-sub002/backend/models"
	"gorm.io/gorm"
)

// Tabela fixa de equipas, usada quando o organograma não devolve membros.
// Mantém paridade com os dados legados de seed; as chaves são o primeiro
// nome do consultor em minúsculas.
var fallbackTeams = map[string][]string{
	"alexandre": {"Alexandre", "Kaua", "Vinicius"},
	"marcelo":   {"Marcelo", "Rafael Massa"},
	"giovanna":  {"Giovanna", "Lucas Santos"},
}

// ResolveTeam devolve o conjunto de nomes sob a responsabilidade de um
// consultor. Primeiro tenta o organograma: subdepartamentos cujo responsável
// tem o nome dado (comparação sem maiúsculas, com trim) contribuem com os
// nomes das pessoas ativas vinculadas como não-responsáveis. Se o
// organograma não render nada, cai na tabela fixa. Dados incompletos ou
// ambíguos nunca falham a resolução: degradam para "sem equipa".
func ResolveTeam(db *gorm.DB, consultantName string) ([]string, error) {
	nameSet := make(map[string]string) // minúsculas → grafia original

	var subs []models.Subdepartment
	err := db.Where("responsible_person_id IS NOT NULL AND active = ?", true).Find(&subs).Error
	if err != nil {
		return nil, err
	}

	for _, sub := range subs {
		responsible, err := loadResponsible(db, sub.ResponsiblePersonID)
		if err != nil {
			return nil, err
		}
		if responsible == nil || !equalTrimFold(responsible.Name, consultantName) {
			continue
		}

		var links []models.DepartmentPersonLink
		err = db.Where("subdepartment_id = ? AND active = ? AND is_responsible = ?", sub.ID, true, false).
			Find(&links).Error
		if err != nil {
			return nil, err
		}

		for _, link := range links {
			var member models.Person
			if err := db.First(&member, link.PersonID).Error; err != nil {
				// Vínculo órfão: ignora e segue.
				log.Printf("AVISO: vínculo %d aponta para pessoa %d inexistente", link.ID, link.PersonID)
				continue
			}
			if !member.Active {
				continue
			}
			nameSet[strings.ToLower(strings.TrimSpace(member.Name))] = member.Name
		}
	}

	if len(nameSet) == 0 {
		return fallbackTeam(consultantName), nil
	}

	names := make([]string, 0, len(nameSet))
	for _, original := range nameSet {
		names = append(names, original)
	}
	sort.Strings(names)
	return names, nil
}

func fallbackTeam(consultantName string) []string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(consultantName)))
	if len(fields) == 0 {
		return nil
	}
	team, ok := fallbackTeams[fields[0]]
	if !ok {
		return nil
	}
	out := make([]string, len(team))
	copy(out, team)
	return out
}

func equalTrimFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
