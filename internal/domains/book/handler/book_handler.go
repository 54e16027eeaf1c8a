package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"biblioteca-api/internal/domains/book/model"
	"biblioteca-api/internal/domains/book/service"
	"biblioteca-api/internal/shared/payload"
	"biblioteca-api/internal/shared/response"
	"biblioteca-api/internal/shared/utils"
)

type BookHandler struct {
	service service.ServiceInterface
}

func NewBookHandler(svc service.ServiceInterface) *BookHandler {
	return &BookHandler{service: svc}
}

// List godoc
// @Summary      List books
// @Tags         Books
// @Produce      json
// @Success      200  {array}   model.BookResponse
// @Router       /books [get]
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, model.ToResponses(books))
}

// Create godoc
// @Summary      Create book
// @Description  number_pages must be positive and authors_id must reference an existing author
// @Tags         Books
// @Accept       json
// @Produce      json
// @Param        body  body      model.BookInput  true  "Campos do recurso"
// @Success      201  {object}  model.BookResponse
// @Failure      400  {object}  response.MessageBody
// @Router       /books [post]
func (h *BookHandler) Create(c *gin.Context) {
	p, err := payload.Read(c.Request.Body)
	if err != nil {
		response.Error(c, err)
		return
	}
	in, err := model.ParseBookInput(p, false)
	if err != nil {
		response.Error(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, created.ToResponse())
}

// Get godoc
// @Summary      Get book by id
// @Tags         Books
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      200  {object}  model.BookResponse
// @Failure      404  {object}  response.MessageBody
// @Router       /books/{id} [get]
func (h *BookHandler) Get(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		response.NotFound(c)
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, b.ToResponse())
}

// Update godoc
// @Summary      Update book (partial)
// @Tags         Books
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Param        body  body      model.BookInput  true  "Campos do recurso"
// @Success      200  {object}  model.BookResponse
// @Failure      400  {object}  response.MessageBody
// @Failure      404  {object}  response.MessageBody
// @Router       /books/{id} [put]
func (h *BookHandler) Update(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		response.NotFound(c)
		return
	}

	p, err := payload.Read(c.Request.Body)
	if err != nil {
		response.Error(c, err)
		return
	}
	in, err := model.ParseBookInput(p, true)
	if err != nil {
		response.Error(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, updated.ToResponse())
}

// Delete godoc
// @Summary      Delete book
// @Tags         Books
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      200  {object}  response.MessageBody
// @Failure      404  {object}  response.MessageBody
// @Router       /books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		response.NotFound(c)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, model.MsgBookDeleted)
}
