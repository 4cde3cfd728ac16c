package quran

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examcraft/internal/controller"
	"github.com/lshigami/examcraft/internal/dto"
	"github.com/lshigami/examcraft/internal/service"
)

type QuranController struct {
	quranService service.QuranService
}

func NewQuranController(quranService service.QuranService) *QuranController {
	return &QuranController{quranService: quranService}
}

func (ctrl *QuranController) RegisterRoutes(router gin.IRouter) {
	router.POST("/quran/verse", ctrl.Verse)
}

// Verse godoc
// @Summary Look up a Quran verse
// @Tags quran
// @Accept json
// @Produce json
// @Param request body dto.VerseRequest true "Surah and verse number"
// @Success 200 {object} dto.VerseResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Verse not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /quran/verse [post]
func (ctrl *QuranController) Verse(c *gin.Context) {
	var req dto.VerseRequest
	if !controller.BindJSON(c, &req) {
		return
	}
	verse, err := ctrl.quranService.Verse(c.Request.Context(), req)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, verse)
}
