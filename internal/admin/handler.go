// Package admin exposes the administrative HTTP surface: lottery
// creation, participant reports and user activation updates. Nothing
// here is reachable from the bot dialogue.
package admin

import (
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"

	"rafflebot/internal/domain"
	"rafflebot/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler holds the dependencies for the admin HTTP handlers
type Handler struct {
	lotteries *service.LotteryService
	identity  *service.IdentityService
	token     string
	logger    *zap.Logger
}

// NewHandler creates a new admin HTTP handler
func NewHandler(
	lotteries *service.LotteryService,
	identity *service.IdentityService,
	token string,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		lotteries: lotteries,
		identity:  identity,
		token:     token,
		logger:    logger,
	}
}

// RegisterRoutes registers all admin routes
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api", h.requireToken)
	api.POST("/lotteries", h.createLottery)
	api.GET("/lotteries/:name/tickets", h.listTickets)
	api.GET("/lotteries/:name/tickets.csv", h.exportTicketsCSV)
	api.PATCH("/users/:telegram_id", h.updateActivation)
}

// requireToken guards the admin API with a static bearer token
func (h *Handler) requireToken(c *gin.Context) {
	if c.GetHeader("Authorization") != "Bearer "+h.token {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.Next()
}

type createLotteryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type lotteryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

// createLottery handles POST /api/lotteries
func (h *Handler) createLottery(c *gin.Context) {
	var req createLotteryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	lottery, err := h.lotteries.Create(req.Name, req.Description)
	if errors.Is(err, domain.ErrLotteryExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "lottery already exists"})
		return
	}
	if err != nil {
		h.logger.Error("Failed to create lottery", zap.Error(err), zap.String("lottery", req.Name))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, lotteryResponse{
		ID:          lottery.ID,
		Name:        lottery.Name,
		Description: lottery.Description,
		CreatedAt:   lottery.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	})
}

type ticketEntryResponse struct {
	TelegramID     int64  `json:"telegram_id"`
	FullName       string `json:"full_name"`
	FullNameFromTG string `json:"full_name_from_tg"`
	TicketNumber   int    `json:"ticket_number"`
}

// listTickets handles GET /api/lotteries/:name/tickets
func (h *Handler) listTickets(c *gin.Context) {
	entries, ok := h.report(c)
	if !ok {
		return
	}

	out := make([]ticketEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ticketEntryResponse{
			TelegramID:     e.TelegramID,
			FullName:       e.FullName,
			FullNameFromTG: e.FullNameFromTG,
			TicketNumber:   e.TicketNumber,
		})
	}

	c.JSON(http.StatusOK, out)
}

// exportTicketsCSV handles GET /api/lotteries/:name/tickets.csv
func (h *Handler) exportTicketsCSV(c *gin.Context) {
	entries, ok := h.report(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment;filename=tickets.csv")

	// BOM keeps Cyrillic readable when the file lands in Excel
	c.Writer.Write([]byte("\xef\xbb\xbf"))

	w := csv.NewWriter(c.Writer)
	w.Write([]string{"telegram_id", "full_name", "full_name_from_tg", "ticket_number"})
	for _, e := range entries {
		w.Write([]string{
			strconv.FormatInt(e.TelegramID, 10),
			e.FullName,
			e.FullNameFromTG,
			strconv.Itoa(e.TicketNumber),
		})
	}
	w.Flush()

	if err := w.Error(); err != nil {
		h.logger.Error("Failed to write CSV", zap.Error(err))
	}
}

// report resolves the lottery named in the route and loads its rows,
// writing the error response itself when that fails
func (h *Handler) report(c *gin.Context) ([]domain.LotteryEntry, bool) {
	name := c.Param("name")

	entries, err := h.lotteries.Report(name)
	if errors.Is(err, domain.ErrLotteryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "lottery not found"})
		return nil, false
	}
	if err != nil {
		h.logger.Error("Failed to build report", zap.Error(err), zap.String("lottery", name))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return nil, false
	}

	return entries, true
}

type updateActivationRequest struct {
	FullName string `json:"full_name" binding:"required"`
	IsActive *bool  `json:"is_active" binding:"required"`
}

// updateActivation handles PATCH /api/users/:telegram_id
func (h *Handler) updateActivation(c *gin.Context) {
	telegramID, err := strconv.ParseInt(c.Param("telegram_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid telegram id"})
		return
	}

	var req updateActivationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "full_name and is_active are required"})
		return
	}

	err = h.identity.UpdateActivation(telegramID, req.FullName, *req.IsActive)
	if errors.Is(err, domain.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		h.logger.Error("Failed to update activation", zap.Error(err), zap.Int64("telegram_id", telegramID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.Status(http.StatusNoContent)
}
