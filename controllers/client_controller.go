package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"digicheese-backend/models"
	"digicheese-backend/services"
	"digicheese-backend/utils"
)

const clientNotFound = "Client non trouvé"

type ClientController struct {
	ClientSvc *services.ClientService
}

func NewClientController(svc *services.ClientService) *ClientController {
	return &ClientController{ClientSvc: svc}
}

func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		utils.BadRequest(ctx, "Invalid client ID")
		return 0, false
	}
	return uint(id), true
}

// GetClients handles GET /client/
func (c *ClientController) GetClients(ctx *gin.Context) {
	clients, err := c.ClientSvc.GetAll()
	if err != nil {
		utils.ServerError(ctx, "Failed to fetch clients")
		return
	}
	ctx.JSON(http.StatusOK, clients)
}

// GetClientByID handles GET /client/:id
func (c *ClientController) GetClientByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	client, err := c.ClientSvc.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(ctx, clientNotFound)
			return
		}
		utils.ServerError(ctx, "Failed to fetch client")
		return
	}
	ctx.JSON(http.StatusOK, client)
}

// CreateClient handles POST /client/
func (c *ClientController) CreateClient(ctx *gin.Context) {
	var in models.ClientCreate
	if err := ctx.ShouldBindJSON(&in); err != nil {
		utils.BadRequest(ctx, "Invalid request payload: "+err.Error())
		return
	}

	client, err := c.ClientSvc.Create(in)
	if err != nil {
		utils.ServerError(ctx, "Failed to create client")
		return
	}
	ctx.JSON(http.StatusOK, client)
}

// PatchClient handles PATCH /client/:id. Only fields present in the body
// are touched; a key set to null clears a nullable column.
func (c *ClientController) PatchClient(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var fields map[string]any
	if err := ctx.ShouldBindJSON(&fields); err != nil {
		utils.BadRequest(ctx, "Invalid request payload: "+err.Error())
		return
	}
	if err := models.ValidatePatch(fields); err != nil {
		utils.BadRequest(ctx, err.Error())
		return
	}

	client, err := c.ClientSvc.Patch(id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(ctx, clientNotFound)
			return
		}
		utils.ServerError(ctx, "Failed to update client")
		return
	}
	ctx.JSON(http.StatusOK, client)
}

// DeleteClient handles DELETE /client/:id and answers with the removed
// row's final state.
func (c *ClientController) DeleteClient(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	client, err := c.ClientSvc.Delete(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(ctx, clientNotFound)
			return
		}
		utils.ServerError(ctx, "Failed to delete client")
		return
	}
	ctx.JSON(http.StatusOK, client)
}
