package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"biblioteca-api/internal/domains/author/model"
	"biblioteca-api/internal/domains/author/service"
	"biblioteca-api/internal/shared/payload"
	"biblioteca-api/internal/shared/response"
	"biblioteca-api/internal/shared/utils"
)

type AuthorHandler struct {
	service service.ServiceInterface
}

func NewAuthorHandler(svc service.ServiceInterface) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
	}
}

// List godoc
// @Summary      List authors
// @Tags         Authors
// @Produce      json
// @Success      200  {array}   model.AuthorResponse
// @Router       /authors [get]
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, model.ToResponses(authors))
}

// Create godoc
// @Summary      Create author
// @Tags         Authors
// @Accept       json
// @Produce      json
// @Param        body  body      model.AuthorInput  true  "Campos do recurso"
// @Success      201  {object}  model.AuthorResponse
// @Failure      400  {object}  map[string]string
// @Router       /authors [post]
func (h *AuthorHandler) Create(c *gin.Context) {
	in, err := h.parse(c, false)
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
// @Summary      Get author by id
// @Tags         Authors
// @Produce      json
// @Param        id   path      int  true  "Author ID"
// @Success      200  {object}  model.AuthorResponse
// @Failure      404  {object}  response.MessageBody
// @Router       /authors/{id} [get]
func (h *AuthorHandler) Get(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		response.NotFound(c)
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, a.ToResponse())
}

// Update godoc
// @Summary      Update author (partial)
// @Tags         Authors
// @Accept       json
// @Produce      json
// @Param        id   path      int  true  "Author ID"
// @Param        body  body      model.AuthorInput  true  "Campos do recurso"
// @Success      200  {object}  model.AuthorResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  response.MessageBody
// @Router       /authors/{id} [put]
func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		response.NotFound(c)
		return
	}

	in, err := h.parse(c, true)
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
// @Summary      Delete author and their books
// @Tags         Authors
// @Produce      json
// @Param        id   path      int  true  "Author ID"
// @Success      200  {object}  response.MessageBody
// @Failure      404  {object}  response.MessageBody
// @Router       /authors/{id} [delete]
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		response.NotFound(c)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, model.MsgAuthorDeleted)
}

func (h *AuthorHandler) parse(c *gin.Context, partial bool) (*model.AuthorInput, error) {
	p, err := payload.Read(c.Request.Body)
	if err != nil {
		return nil, err
	}
	return model.ParseAuthorInput(p, partial)
}
