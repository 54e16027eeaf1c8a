package model

import "biblioteca-api/internal/shared/apperror"

var (
	ErrAuthorNotFound = apperror.NotFound("AUTHOR_NOT_FOUND", "Autor não encontrado")
)

const MsgAuthorDeleted = "Autor removido com sucesso!"

// Field messages
const (
	MsgNameRequired       = "O nome é obrigatório"
	MsgNameInvalid        = "Nome inválido"
	MsgNameTooLong        = "O nome deve ter no máximo 255 caracteres"
	MsgLastNameRequired   = "O sobrenome é obrigatório"
	MsgLastNameInvalid    = "Sobrenome inválido"
	MsgLastNameTooLong    = "O sobrenome deve ter no máximo 255 caracteres"
	MsgBirthDateRequired  = "A data de nascimento é obrigatória"
	MsgBirthDateInvalid   = "Data de nascimento inválida"
	MsgBirthDateFuture    = "Data de nascimento não pode ser no futuro."
	MsgNationalityInvalid = "Nacionalidade inválida"
	MsgNationalityTooLong = "A nacionalidade deve ter no máximo 255 caracteres"
)
