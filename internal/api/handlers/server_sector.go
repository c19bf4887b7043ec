package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"intrahub.io/portal/ent"
	entsector "intrahub.io/portal/ent/sector"
	entsubsector "intrahub.io/portal/ent/subsector"
	apperrors "intrahub.io/portal/internal/pkg/errors"
	"intrahub.io/portal/internal/pkg/logger"
)

// SubsectorInfo is one subsector in the sector listing.
type SubsectorInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// SectorInfo is one sector with its subsectors, as used by scope pickers.
type SectorInfo struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Subsectors  []SubsectorInfo `json:"subsectors"`
}

// ListSectors handles GET /sectors.
func (s *Server) ListSectors(c *gin.Context) {
	actor := actorFromContext(c)
	if actor.UserID == "" {
		c.JSON(http.StatusUnauthorized, APIError{Code: apperrors.CodeUnauthorized})
		return
	}

	sectors, err := s.client.Sector.Query().
		WithSubsectors(func(q *ent.SubsectorQuery) {
			q.Order(ent.Asc(entsubsector.FieldName))
		}).
		Order(ent.Asc(entsector.FieldName)).
		All(c.Request.Context())
	if err != nil {
		logger.Error("failed to list sectors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, APIError{Code: apperrors.CodeInternalError})
		return
	}

	items := make([]SectorInfo, 0, len(sectors))
	for _, sec := range sectors {
		subs := make([]SubsectorInfo, 0, len(sec.Edges.Subsectors))
		for _, sub := range sec.Edges.Subsectors {
			subs = append(subs, SubsectorInfo{
				ID:          sub.ID,
				Name:        sub.Name,
				Description: sub.Description,
			})
		}
		items = append(items, SectorInfo{
			ID:          sec.ID,
			Name:        sec.Name,
			Description: sec.Description,
			Subsectors:  subs,
		})
	}

	c.JSON(http.StatusOK, gin.H{"sectors": items})
}
