package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/labmath/labcms/internal/api/dto"
	"github.com/labmath/labcms/internal/core/service"
)

// publicDateFormat is the date layout the consuming site expects, e.g.
// "05/03/2024". Changing it breaks the front-end.
const publicDateFormat = "02/01/2006"

type PublicHandler struct {
	contentService *service.ContentService
}

func NewPublicHandler(contentService *service.ContentService) *PublicHandler {
	return &PublicHandler{
		contentService: contentService,
	}
}

// GetActivities handles GET /api/activites
func (h *PublicHandler) GetActivities(c *gin.Context) {
	activities, err := h.contentService.ListActivities(c.Request.Context())
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	items := make([]dto.ActivityResponse, 0, len(activities))
	for _, a := range activities {
		items = append(items, dto.ActivityResponse{
			ID:          a.ID,
			Title:       a.Title,
			Description: a.Description,
			Date:        a.PublishedAt.Format(publicDateFormat),
		})
	}

	c.JSON(http.StatusOK, items)
}

// GetOffers handles GET /api/offres. Inactive offers are never serialized.
func (h *PublicHandler) GetOffers(c *gin.Context) {
	offers, err := h.contentService.ListOffers(c.Request.Context(), true)
	if err != nil {
		c.Error(err)
		c.Abort()
		return
	}

	items := make([]dto.OfferResponse, 0, len(offers))
	for _, o := range offers {
		items = append(items, dto.OfferResponse{
			ID:       o.ID,
			Position: o.Position,
			Details:  o.Details,
		})
	}

	c.JSON(http.StatusOK, items)
}
