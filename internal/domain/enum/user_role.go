package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// UserRole is the access level of a staff account
type UserRole string

const (
	UserRoleAdmin     UserRole = "admin"
	UserRoleBillMaker UserRole = "bill_maker"
)

func (r UserRole) String() string {
	return string(r)
}

// IsValid reports whether r is a known role
func (r UserRole) IsValid() bool {
	return r == UserRoleAdmin || r == UserRoleBillMaker
}

func (r *UserRole) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	role := UserRole(str)
	if !role.IsValid() {
		return fmt.Errorf("unknown role %q", str)
	}
	*r = role
	return nil
}

func (r UserRole) Value() (driver.Value, error) {
	return string(r), nil
}

func (r *UserRole) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*r = UserRoleBillMaker
	case string:
		*r = UserRole(v)
	case []byte:
		*r = UserRole(v)
	default:
		return fmt.Errorf("cannot scan %T into UserRole", value)
	}
	return nil
}
