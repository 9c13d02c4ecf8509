// backend/models/principal.go
package models

// PrincipalType distingue os dois espaços de nomes de identidade.
type PrincipalType string

const (
	PrincipalEmployee PrincipalType = "employee"
	PrincipalSupplier PrincipalType = "supplier"
)

// Principal é a identidade resolvida no login. Vive apenas durante a sessão
// (transportada no token JWT e recarregada a cada pedido); nunca é persistida
// além do carimbo LastLogin no Employee.
type Principal struct {
	Type    PrincipalType `json:"type"`
	ID      uint          `json:"id"`
	Name    string        `json:"name"`
	Email   string        `json:"email,omitempty"`
	Role    string        `json:"role"`
	IsAdmin bool          `json:"isAdmin"`

	// Apenas para fornecedores.
	CompanyName string `json:"companyName,omitempty"`
	LoginName   string `json:"loginName,omitempty"`
}

// IsEmployee indica se o principal veio do espaço de nomes de colaboradores.
func (p Principal) IsEmployee() bool {
	return p.Type == PrincipalEmployee
}
