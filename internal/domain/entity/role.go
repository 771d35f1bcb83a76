package entity

type Role string

const (
	RoleCompany  Role = "company"
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
	RoleNone     Role = ""
)
