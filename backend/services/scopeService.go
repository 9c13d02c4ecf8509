// backend/services/scopeService.go
package services

import (
	"log"
	"strings"

	"github.com/sqpaloma/novak-sub002/backend/models"
)

// Os dois escopos usam semânticas de comparação diferentes de propósito:
// "own" é uma busca por substring do primeiro nome, tolerante a sobrenomes e
// títulos acrescentados ao campo livre; "team" exige igualdade exata após
// trim. A divergência vem do sistema original e é mantida tal e qual.

// SubstringFirstTokenMatch verifica se o responsável do item contém o
// primeiro token do nome do principal (comparação em minúsculas).
func SubstringFirstTokenMatch(responsavel, principalName string) bool {
	fields := strings.Fields(strings.ToLower(principalName))
	if len(fields) == 0 {
		return false
	}
	return strings.Contains(strings.ToLower(responsavel), fields[0])
}

// ExactTrimmedMatch compara responsável e nome por igualdade exata,
// ignorando maiúsculas e espaços nas pontas.
func ExactTrimmedMatch(responsavel, name string) bool {
	return strings.TrimSpace(strings.ToLower(responsavel)) == strings.TrimSpace(strings.ToLower(name))
}

// FilterItems reduz a coleção de itens ao que o principal pode ver.
//   - all: devolve tudo.
//   - team: mantém itens cujo responsável é exatamente um nome da equipa
//     (incluindo o próprio principal). Sem equipa resolvida, degrada para a
//     semântica de "own".
//   - own (e qualquer escopo desconhecido, com aviso): substring do primeiro
//     nome do principal.
func FilterItems(items []models.WorkItem, principal models.Principal, scope string, teamNames []string) []models.WorkItem {
	switch scope {
	case ScopeAll:
		return items

	case ScopeTeam:
		if len(teamNames) == 0 {
			return filterOwn(items, principal)
		}
		names := append([]string{principal.Name}, teamNames...)
		var kept []models.WorkItem
		for _, item := range items {
			for _, name := range names {
				if ExactTrimmedMatch(item.Responsavel, name) {
					kept = append(kept, item)
					break
				}
			}
		}
		return kept

	case ScopeOwn:
		return filterOwn(items, principal)

	default:
		log.Printf("AVISO: escopo de dados desconhecido %q, aplicando 'own'", scope)
		return filterOwn(items, principal)
	}
}

func filterOwn(items []models.WorkItem, principal models.Principal) []models.WorkItem {
	var kept []models.WorkItem
	for _, item := range items {
		if SubstringFirstTokenMatch(item.Responsavel, principal.Name) {
			kept = append(kept, item)
		}
	}
	return kept
}
