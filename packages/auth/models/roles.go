package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Roles is stored as a JSONB column.
type Roles []string

// Implements the driver.Valuer interface for GORM
func (r Roles) Value() (driver.Value, error) {
	if len(r) == 0 {
		return json.Marshal([]string{RoleUser})
	}
	return json.Marshal(r)
}

// Implements the sql.Scanner interface for GORM
func (r *Roles) Scan(value interface{}) error {
	if value == nil {
		*r = Roles{RoleUser}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, &r)
}

// GetDefaultRoles returns the roles assigned to a new account
func GetDefaultRoles() Roles {
	return Roles{RoleUser}
}
