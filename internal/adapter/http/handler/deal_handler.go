package handler

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"fx-deals/internal/adapter/http/dto"
	"fx-deals/internal/adapter/http/middleware"
	"fx-deals/internal/core/ports"
	"fx-deals/pkg/response"

	"github.com/gin-gonic/gin"
)

// DealHandler handles deal endpoints.
type DealHandler struct {
	dealSvc ports.DealService
	now     func() time.Time
}

// NewDealHandler creates a new DealHandler.
func NewDealHandler(dealSvc ports.DealService) *DealHandler {
	return &DealHandler{dealSvc: dealSvc, now: time.Now}
}

// Create handles POST /deals.
// 201 and 409 answer with a bare text message, 400 with a field -> message map.
func (h *DealHandler) Create(c *gin.Context) {
	var req dto.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FieldErrors(c, map[string]string{"body": err.Error()})
		return
	}

	now := h.now().UTC()
	candidate := req.ToCandidate()
	if errs := candidate.Validate(now); errs != nil {
		response.FieldErrors(c, errs)
		return
	}

	deal := candidate.ToDeal(now)
	c.Set(middleware.CtxDealID, deal.DealID)

	result, err := h.dealSvc.SaveDeal(c.Request.Context(), deal)
	if err != nil {
		response.Error(c, err)
		return
	}

	status := http.StatusCreated
	if !result.Saved() {
		status = http.StatusConflict
	}
	response.Text(c, status, result.Message())
}

// Get handles GET /deals/:dealId.
func (h *DealHandler) Get(c *gin.Context) {
	deal, err := h.dealSvc.GetDeal(c.Request.Context(), c.Param("dealId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewDealResponse(deal))
}

// List handles GET /deals.
func (h *DealHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	deals, total, err := h.dealSvc.ListDeals(c.Request.Context(), ports.DealListParams{
		FromCurrency: c.Query("from_currency"),
		ToCurrency:   c.Query("to_currency"),
		Page:         page,
		PageSize:     pageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.DealResponse, 0, len(deals))
	for i := range deals {
		items = append(items, dto.NewDealResponse(&deals[i]))
	}

	response.OK(c, dto.DealListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(pageSize))),
	})
}
