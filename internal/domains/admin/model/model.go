package model

import (
	"database/sql"

	"lbm/shared/model"
)

const (
	TableName  = "admins"
	EntityName = "admin"

	FieldID        = "id"
	FieldUsername  = "username"
	FieldPassword  = "password"
	FieldName      = "name"
	FieldEmail     = "email"
	FieldLastLogin = "last_login"
)

type Admin struct {
	ID        string       `db:"id"`
	Username  string       `db:"username"`
	Password  string       `db:"password"`
	Name      string       `db:"name"`
	Email     string       `db:"email"`
	LastLogin sql.NullTime `db:"last_login"`
	model.Metadata
}
