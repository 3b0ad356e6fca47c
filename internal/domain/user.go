package domain

type Role string

const (
	RoleConsumer Role = "consumer"
	RoleFarmer   Role = "farmer"
)

func (r Role) Valid() bool { return r == RoleConsumer || r == RoleFarmer }

// Source records which resolver produced an Identity.
type Source string

const (
	SourceDelegated Source = "delegated"
	SourceLocalDemo Source = "local_demo"
)

// Identity is the resolved caller. Everything past the resolver only reads
// ID and Role.
type Identity struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	Role      Role   `json:"role,omitempty"`
	Source    Source `json:"source"`
	CreatedAt string `json:"created_at,omitempty"`
}

// DemoAccount is one row of the fixed demo credential table.
type DemoAccount struct {
	Email        string
	PasswordHash string
	Role         Role
	Name         string
	FarmName     string
}
