package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/draft-shop/internal/http/middleware"
	"github.com/iyhunko/draft-shop/internal/model"
	"github.com/iyhunko/draft-shop/internal/repository"
	"github.com/iyhunko/draft-shop/internal/service"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// Controller handles general HTTP requests.
type Controller struct{}

func New() *Controller {
	return &Controller{}
}

// Ping handles the HTTP GET request for health check endpoint.
func (con *Controller) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}

// ListRequest represents the query parameters for paginated listings.
type ListRequest struct {
	Limit int32  `form:"limit"`
	Token string `form:"token"`
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ID"})
		return 0, false
	}
	return id, true
}

func bindQuery(c *gin.Context) (*repository.Query, bool) {
	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	query := repository.NewQuery()
	if err := query.ApplyPagination(req.Limit, req.Token); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return query, true
}

// nextPageToken is empty when the page was not full.
func nextPageToken(query *repository.Query, count int, lastID int64) string {
	if count == 0 || count < query.EffectiveLimit() {
		return ""
	}
	return repository.Paginator{LastID: lastID}.Encode()
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidProduct),
		errors.Is(err, model.ErrNegativeStock),
		errors.Is(err, model.ErrStockOverflow),
		errors.Is(err, model.ErrUninitializedID),
		errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, repository.ErrInvalidPaginationToken):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, model.ErrInsufficientStock):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		slog.Error("request failed", slog.Any("err", err),
			slog.String("path", c.Request.URL.Path), slog.String("request_id", middleware.GetRequestID(c)))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
