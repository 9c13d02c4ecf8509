// backend/services/permissionService.go
package services

import "strings"

// Escopos de visibilidade de dados.
const (
	ScopeOwn  = "own"
	ScopeTeam = "team"
	ScopeAll  = "all"
)

// Capabilities são as vistas do painel que um papel pode renderizar.
type Capabilities struct {
	Dashboard   bool `json:"dashboard"`
	Chat        bool `json:"chat"`
	Manual      bool `json:"manual"`
	Indicadores bool `json:"indicadores"`
	Analise     bool `json:"analise"`
	Settings    bool `json:"settings"`
}

// Has consulta uma capacidade pelo nome usado nas rotas.
func (c Capabilities) Has(name string) bool {
	switch name {
	case "dashboard":
		return c.Dashboard
	case "chat":
		return c.Chat
	case "manual":
		return c.Manual
	case "indicadores":
		return c.Indicadores
	case "analise":
		return c.Analise
	case "settings":
		return c.Settings
	}
	return false
}

// Permission é o resultado da resolução de um papel: capacidades, escopo de
// dados e, para papéis com restrição de rota, os prefixos permitidos e o
// destino do redirecionamento forçado.
type Permission struct {
	Capabilities         Capabilities `json:"capabilities"`
	DataScope            string       `json:"dataScope"`
	AllowedRoutePrefixes []string     `json:"allowedRoutePrefixes,omitempty"`
	RedirectTo           string       `json:"redirectTo,omitempty"`
}

var allCapabilities = Capabilities{
	Dashboard: true, Chat: true, Manual: true,
	Indicadores: true, Analise: true, Settings: true,
}

// Tabela estática papel → permissões. O papel "compras" carrega, além da
// linha da tabela, a restrição de prefixo de rota aplicada em cada navegação.
var permissionTable = map[string]Permission{
	"admin": {
		Capabilities: allCapabilities,
		DataScope:    ScopeAll,
	},
	"gerente": {
		Capabilities: allCapabilities,
		DataScope:    ScopeAll,
	},
	"qualidade_pcp": {
		Capabilities: Capabilities{Dashboard: true, Manual: true, Indicadores: true, Analise: true},
		DataScope:    ScopeAll,
	},
	"compras": {
		Capabilities:         Capabilities{Dashboard: true, Settings: true},
		DataScope:            ScopeAll,
		AllowedRoutePrefixes: []string{"/compras", "/settings"},
		RedirectTo:           "/compras",
	},
	"consultor": {
		Capabilities: Capabilities{Dashboard: true, Chat: true, Manual: true},
		DataScope:    ScopeTeam,
	},
}

// ResolvePermissions mapeia um papel canónico na sua linha da tabela.
// isAdmin curto-circuita para tudo permitido, seja qual for o papel.
// Papéis desconhecidos recebem a linha de consultor.
func ResolvePermissions(role string, isAdmin bool) Permission {
	if isAdmin {
		return Permission{Capabilities: allCapabilities, DataScope: ScopeAll}
	}
	if perm, ok := permissionTable[role]; ok {
		return perm
	}
	return permissionTable["consultor"]
}

// RouteDecision é o resultado do guarda de rota: ou a rota é permitida, ou o
// chamador deve redirecionar para RedirectTo.
type RouteDecision struct {
	Allowed    bool   `json:"allowed"`
	RedirectTo string `json:"redirectTo,omitempty"`
}

// CheckRoute aplica a restrição de prefixo de rota de um papel. Corre antes
// de qualquer verificação de capacidade e tem prioridade sobre ela. Papéis
// sem restrição aceitam qualquer rota.
func CheckRoute(role string, isAdmin bool, route string) RouteDecision {
	perm := ResolvePermissions(role, isAdmin)
	if len(perm.AllowedRoutePrefixes) == 0 {
		return RouteDecision{Allowed: true}
	}
	for _, prefix := range perm.AllowedRoutePrefixes {
		if strings.HasPrefix(route, prefix) {
			return RouteDecision{Allowed: true}
		}
	}
	return RouteDecision{Allowed: false, RedirectTo: perm.RedirectTo}
}
