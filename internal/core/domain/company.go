package domain

// CompanyRole defines the role a user holds within a company.
type CompanyRole string

const (
	RoleOwner    CompanyRole = "OWNER"
	RoleAdmin    CompanyRole = "ADMIN"
	RoleMember   CompanyRole = "MEMBER"
	RoleReadOnly CompanyRole = "READONLY"
)

// CanWrite reports whether the role may record or change accounting data.
func (r CompanyRole) CanWrite() bool {
	return r != RoleReadOnly
}

// Company is a tenant of the accounting backend. Role is the calling user's membership role.
type Company struct {
	CompanyID       string      `json:"companyID"`
	Name            string      `json:"name"`
	DefaultCurrency string      `json:"defaultCurrency,omitempty"`
	Role            CompanyRole `json:"role"`
	AuditFields
}
