package model

import "biblioteca-api/internal/shared/apperror"

var (
	ErrBookNotFound        = apperror.NotFound("BOOK_NOT_FOUND", "Livro não encontrado")
	ErrZeroPages           = apperror.DomainRule("BOOK_ZERO_PAGES", "O livro não pode ter zero páginas")
	ErrAuthorNotRegistered = apperror.DomainRule("AUTHOR_NOT_REGISTERED", "Autor não cadastrado")
)

const MsgBookDeleted = "Livro removido com sucesso!"

const (
	MinTitleLength = 3
	MaxTitleLength = 100
)

// Field messages
const (
	MsgTitleRequired           = "O título é obrigatório"
	MsgTitleInvalid            = "Título inválido"
	MsgTitleTooShort           = "O título deve ter no mínimo 3 caracteres"
	MsgTitleTooLong            = "O título deve ter no máximo 100 caracteres"
	MsgPublicationDateRequired = "A data de publicação é obrigatória"
	MsgPublicationDateInvalid  = "Data de publicação inválida"
	MsgNumberPagesRequired     = "O número de páginas é obrigatório"
	MsgNumberPagesInvalid      = "Número de páginas inválido"
	MsgNumberPagesMin          = "O número de páginas deve ser maior que 0"
	MsgAuthorsIDRequired       = "O ID do autor é obrigatório"
	MsgAuthorsIDInvalid        = "ID do autor inválido"
)
