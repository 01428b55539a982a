package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/yuanzhi/finledger/internal/core/ports/services"
	"github.com/yuanzhi/finledger/internal/dto"
	"github.com/yuanzhi/finledger/internal/middleware"
)

// entryHandler handles HTTP requests related to journal entries.
type entryHandler struct {
	entryService portssvc.EntrySvcFacade
}

func newEntryHandler(es portssvc.EntrySvcFacade) *entryHandler {
	return &entryHandler{
		entryService: es,
	}
}

// registerEntryRoutes registers routes related to entries.
func registerEntryRoutes(rg *gin.RouterGroup, entryService portssvc.EntrySvcFacade) {
	h := newEntryHandler(entryService)

	entries := rg.Group("/entries")
	{
		entries.POST("", h.createEntry)
		entries.GET("", h.listEntries)
		entries.GET("/submitted", h.listSubmittedEntries)
		entries.GET("/transaction/:transactionId", h.listEntriesByTransaction)
		entries.GET("/:id", h.getEntry)
		entries.GET("/:id/splits", h.getEntrySplits)
		entries.PUT("/:id/status", h.updateEntryStatus)
		entries.DELETE("/:id", h.deleteEntry)
	}
}

// createEntry godoc
// @Summary Create a journal entry
// @Description Creates a balanced entry with its splits and posts the referenced transaction atomically
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   entry body dto.CreateEntryRequest true "Entry with splits"
// @Success 201 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse "Invalid input, unbalanced splits"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Role may not create entries"
// @Failure 404 {object} ErrorResponse "Referenced transaction not found"
// @Failure 500 {object} ErrorResponse "Failed to create entry"
// @Security BearerAuth
// @Router /entries [post]
func (h *entryHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entry, err := h.entryService.CreateEntry(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, err, "Failed to create entry")
		return
	}

	logger.Info("Entry created", slog.String("entry_id", entry.EntryID), slog.String("transaction_id", entry.TransactionID))
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// getEntry godoc
// @Summary Get an entry by ID
// @Tags entries
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve entry"
// @Security BearerAuth
// @Router /entries/{id} [get]
func (h *entryHandler) getEntry(c *gin.Context) {
	entryID := c.Param("id")

	entry, err := h.entryService.GetEntryByID(c.Request.Context(), entryID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// getEntrySplits godoc
// @Summary Get the splits of an entry
// @Tags entries
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 200 {array} dto.SplitResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve splits"
// @Security BearerAuth
// @Router /entries/{id}/splits [get]
func (h *entryHandler) getEntrySplits(c *gin.Context) {
	entryID := c.Param("id")

	splits, err := h.entryService.GetSplitsByEntry(c.Request.Context(), entryID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve splits")
		return
	}

	c.JSON(http.StatusOK, dto.ToSplitResponses(splits))
}

// listEntries godoc
// @Summary List all entries
// @Tags entries
// @Produce  json
// @Success 200 {array} dto.EntryResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list entries"
// @Security BearerAuth
// @Router /entries [get]
func (h *entryHandler) listEntries(c *gin.Context) {
	entries, err := h.entryService.ListEntries(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponses(entries))
}

// listSubmittedEntries godoc
// @Summary List entries awaiting review
// @Tags entries
// @Produce  json
// @Success 200 {array} dto.EntryResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list entries"
// @Security BearerAuth
// @Router /entries/submitted [get]
func (h *entryHandler) listSubmittedEntries(c *gin.Context) {
	entries, err := h.entryService.ListSubmittedEntries(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponses(entries))
}

// listEntriesByTransaction godoc
// @Summary List entries posted against a transaction
// @Tags entries
// @Produce  json
// @Param   transactionId path string true "Transaction ID"
// @Success 200 {array} dto.EntryResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list entries"
// @Security BearerAuth
// @Router /entries/transaction/{transactionId} [get]
func (h *entryHandler) listEntriesByTransaction(c *gin.Context) {
	transactionID := c.Param("transactionId")

	entries, err := h.entryService.ListEntriesByTransaction(c.Request.Context(), transactionID)
	if err != nil {
		respondServiceError(c, err, "Failed to list entries")
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponses(entries))
}

// updateEntryStatus godoc
// @Summary Move an entry through the review workflow
// @Description Submits, approves or rejects an entry; the move must be a legal transition for the caller's role
// @Tags entries
// @Accept  json
// @Produce  json
// @Param   id path string true "Entry ID"
// @Param   status body dto.UpdateEntryStatusRequest true "Requested status"
// @Success 200 {object} dto.EntryResponse
// @Failure 400 {object} ErrorResponse "Invalid input format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Role may not perform this transition"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 409 {object} ErrorResponse "Illegal status transition"
// @Failure 500 {object} ErrorResponse "Failed to update entry status"
// @Security BearerAuth
// @Router /entries/{id}/status [put]
func (h *entryHandler) updateEntryStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	var req dto.UpdateEntryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateEntryStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entry, err := h.entryService.UpdateEntryStatus(c.Request.Context(), actor, entryID, req.Status)
	if err != nil {
		respondServiceError(c, err, "Failed to update entry status")
		return
	}

	logger.Info("Entry status updated", slog.String("entry_id", entry.EntryID), slog.String("status", string(entry.Status)))
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete an entry and its splits
// @Tags entries
// @Produce  json
// @Param   id path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Role may not delete entries"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 500 {object} ErrorResponse "Failed to delete entry"
// @Security BearerAuth
// @Router /entries/{id} [delete]
func (h *entryHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.entryService.DeleteEntry(c.Request.Context(), actor, entryID); err != nil {
		respondServiceError(c, err, "Failed to delete entry")
		return
	}

	logger.Info("Entry deleted", slog.String("entry_id", entryID))
	c.Status(http.StatusNoContent)
}
