package valueobject

import "github.com/pixelhunt/design-backend/internal/pkg/apperror"

// Category описывает рубрику дизайнерского запроса. Список фиксирован.
type Category string

const (
	CategoryLogo         Category = "logo"
	CategoryBranding     Category = "branding"
	CategoryWebDesign    Category = "web-design"
	CategoryUIUX         Category = "ui-ux"
	CategoryIllustration Category = "illustration"
	CategoryPrint        Category = "print"
	CategoryPackaging    Category = "packaging"
	CategoryOther        Category = "other"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryLogo, CategoryBranding, CategoryWebDesign, CategoryUIUX,
		CategoryIllustration, CategoryPrint, CategoryPackaging, CategoryOther:
		return true
	}
	return false
}

func NewCategory(category string) (Category, error) {
	c := Category(category)
	if !c.IsValid() {
		return "", apperror.New(apperror.ErrCodeValidation, "некорректная категория запроса")
	}
	return c, nil
}

// Role определяется один раз на границе авторизации и передаётся дальше
// как часть текущего пользователя.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleDesigner Role = "designer"
)

func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleDesigner
}

func NewRole(role string) (Role, error) {
	r := Role(role)
	if !r.IsValid() {
		return "", apperror.New(apperror.ErrCodeValidation, "некорректная роль пользователя")
	}
	return r, nil
}
