// backend/services/roleService.go
package services

import "github.com/sqpaloma/novak-sub002/backend/models"

// roleRule liga um predicado sobre o colaborador a um papel canónico.
// As regras são dados, avaliadas por ordem; a primeira que casar ganha.
type roleRule struct {
	Matches func(emp models.Employee) bool
	Role    string
}

// Os e-mails fixos têm precedência incondicional sobre o papel armazenado.
var roleRules = []roleRule{
	{
		Matches: func(emp models.Employee) bool { return emp.Email == "gerente@empresa.com.br" },
		Role:    "gerente",
	},
	{
		Matches: func(emp models.Employee) bool {
			return emp.Email == "qualidade@empresa.com.br" || emp.Email == "pcp@empresa.com.br"
		},
		Role: "qualidade_pcp",
	},
	{
		Matches: func(emp models.Employee) bool { return emp.Role != "" },
		Role:    "", // usa o papel armazenado, resolvido em DeriveRole
	},
	{
		Matches: func(emp models.Employee) bool { return emp.IsAdmin },
		Role:    "admin",
	},
}

// DeriveRole resolve o papel canónico de um colaborador. É pura e total:
// devolve sempre um papel, nunca falha.
func DeriveRole(emp models.Employee) string {
	for _, rule := range roleRules {
		if rule.Matches(emp) {
			if rule.Role == "" {
				return emp.Role
			}
			return rule.Role
		}
	}
	return "consultor"
}
