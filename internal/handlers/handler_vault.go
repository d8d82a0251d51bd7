package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/pocketfin/pocketfin_backend/internal/core/ports/services"
	"github.com/pocketfin/pocketfin_backend/internal/dto"
)

// vaultHandler handles HTTP requests related to savings vaults.
type vaultHandler struct {
	vaultService portssvc.VaultSvcFacade
}

func newVaultHandler(vs portssvc.VaultSvcFacade) *vaultHandler {
	return &vaultHandler{vaultService: vs}
}

// registerVaultRoutes registers routes related to vaults.
func registerVaultRoutes(rg *gin.RouterGroup, vaultService portssvc.VaultSvcFacade) {
	h := newVaultHandler(vaultService)

	vaults := rg.Group("/vaults")
	{
		vaults.POST("", h.createVault)
		vaults.GET("", h.listVaults)
		vaults.POST("/:id/deposit", h.deposit)
		vaults.PUT("/:id", h.updateVault)
		vaults.DELETE("/:id", h.deleteVault)
	}
}

// createVault godoc
// @Summary Create a savings vault
// @Description Creates a vault nested under one of the user's accounts.
// @Tags vaults
// @Accept json
// @Produce json
// @Param vault body dto.CreateVaultRequest true "Vault details"
// @Success 201 {object} dto.VaultResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Parent account not found"
// @Security BearerAuth
// @Router /vaults [post]
func (h *vaultHandler) createVault(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.CreateVaultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	vault, err := h.vaultService.CreateVault(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create vault")
		return
	}

	c.JSON(http.StatusCreated, dto.ToVaultResponse(vault))
}

// listVaults godoc
// @Summary List vaults
// @Description Retrieves the user's vaults, optionally scoped to one account.
// @Tags vaults
// @Produce json
// @Param accountID query string false "Restrict to one account"
// @Success 200 {object} dto.ListVaultsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /vaults [get]
func (h *vaultHandler) listVaults(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	vaults, err := h.vaultService.ListVaults(c.Request.Context(), userID, c.Query("accountID"))
	if err != nil {
		respondWithError(c, err, "Failed to list vaults")
		return
	}

	c.JSON(http.StatusOK, dto.ToListVaultsResponse(vaults))
}

// deposit godoc
// @Summary Deposit into a vault
// @Description Moves money from the parent account's balance into the vault.
// @Description Fails when the account balance would go negative.
// @Tags vaults
// @Accept json
// @Produce json
// @Param id path string true "Vault ID"
// @Param deposit body dto.VaultDepositRequest true "Deposit amount"
// @Success 200 {object} dto.VaultResponse
// @Failure 400 {object} ErrorResponse "Non-positive amount or insufficient balance"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /vaults/{id}/deposit [post]
func (h *vaultHandler) deposit(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.VaultDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	vault, err := h.vaultService.Deposit(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to deposit into vault")
		return
	}

	c.JSON(http.StatusOK, dto.ToVaultResponse(vault))
}

// updateVault godoc
// @Summary Update a vault
// @Description Edits a vault's name, icon, target, saved amount or deadline.
// @Tags vaults
// @Accept json
// @Produce json
// @Param id path string true "Vault ID"
// @Param vault body dto.UpdateVaultRequest true "Fields to update"
// @Success 200 {object} dto.VaultResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /vaults/{id} [put]
func (h *vaultHandler) updateVault(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateVaultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	vault, err := h.vaultService.UpdateVault(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update vault")
		return
	}

	c.JSON(http.StatusOK, dto.ToVaultResponse(vault))
}

// deleteVault godoc
// @Summary Delete a vault
// @Description Removes a vault without touching its parent account.
// @Tags vaults
// @Produce json
// @Param id path string true "Vault ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /vaults/{id} [delete]
func (h *vaultHandler) deleteVault(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	if err := h.vaultService.DeleteVault(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondWithError(c, err, "Failed to delete vault")
		return
	}

	c.Status(http.StatusNoContent)
}
