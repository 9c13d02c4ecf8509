// backend/models/orgModel.go
package models

import "gorm.io/gorm"

// Person representa qualquer pessoa do organograma, com ou sem login.
// SupervisorID aponta para outra Person, formando uma floresta de supervisão.
type Person struct {
	gorm.Model
	Name         string `gorm:"uniqueIndex;not null" json:"name"`
	RoleLabel    string `json:"roleLabel"` // rótulo livre: "Consultor", "Líder de Vendas"...
	SupervisorID *uint  `gorm:"index" json:"supervisorId"`
	Active       bool   `gorm:"not null;default:true" json:"active"`
}

// Department representa um departamento com o seu papel padrão, as
// capacidades concedidas aos seus membros e o escopo de visibilidade de dados.
type Department struct {
	gorm.Model
	Name                string `gorm:"uniqueIndex;not null" json:"name"`
	DefaultRole         string `gorm:"not null;default:'consultor'" json:"defaultRole"`
	ResponsiblePersonID *uint  `gorm:"index" json:"responsiblePersonId"`
	Active              bool   `gorm:"not null;default:true" json:"active"`

	// Capacidades concedidas por padrão aos membros do departamento.
	Dashboard   bool `gorm:"not null;default:false" json:"dashboard"`
	Chat        bool `gorm:"not null;default:false" json:"chat"`
	Manual      bool `gorm:"not null;default:false" json:"manual"`
	Indicadores bool `gorm:"not null;default:false" json:"indicadores"`
	Analise     bool `gorm:"not null;default:false" json:"analise"`
	Settings    bool `gorm:"not null;default:false" json:"settings"`

	DataScope string `gorm:"not null;default:'own'" json:"dataScope"` // own | team | all
}

// Subdepartment pertence exclusivamente a um Department.
type Subdepartment struct {
	gorm.Model
	Name                string `gorm:"not null;uniqueIndex:idx_subdept_dept_name" json:"name"`
	DepartmentID        uint   `gorm:"not null;index;uniqueIndex:idx_subdept_dept_name" json:"departmentId"`
	ResponsiblePersonID *uint  `gorm:"index" json:"responsiblePersonId"`
	Active              bool   `gorm:"not null;default:true" json:"active"`
}

// DepartmentPersonLink liga uma Person a um Department (e opcionalmente a um
// Subdepartment). Uma pessoa pode ter vários vínculos, por exemplo
// responsável por um subdepartamento e membro de outro. Nada impede dois
// vínculos IsResponsible para o mesmo subdepartamento; a resolução de equipa
// trata essa ambiguidade degradando para "sem equipa".
type DepartmentPersonLink struct {
	gorm.Model
	PersonID        uint  `gorm:"not null;index;uniqueIndex:idx_link_natural" json:"personId"`
	DepartmentID    uint  `gorm:"not null;index;uniqueIndex:idx_link_natural" json:"departmentId"`
	SubdepartmentID *uint `gorm:"index;uniqueIndex:idx_link_natural" json:"subdepartmentId"`
	IsResponsible   bool  `gorm:"not null;default:false" json:"isResponsible"`
	Active          bool  `gorm:"not null;default:true" json:"active"`
}
