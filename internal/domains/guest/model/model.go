package model

import "stayeasy/shared/model"

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID        = "id"
	FieldFirstName = "first_name"
	FieldSurname   = "surname"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldDocument  = "document"
)

type Guest struct {
	ID        string `db:"id"`
	FirstName string `db:"first_name"`
	Surname   string `db:"surname"`
	Email     string `db:"email"`
	Phone     string `db:"phone"`
	Document  string `db:"document"`
	model.Metadata
}
