package users

type Role string

const (
	RoleOrganizer Role = "ORGANIZER"
	RoleCustomer  Role = "CUSTOMER"
)

type User struct {
	Id   int64 `json:"id"`
	Role Role  `json:"role"`
}
