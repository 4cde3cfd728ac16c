package mcq

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examcraft/internal/controller"
	"github.com/lshigami/examcraft/internal/dto"
	"github.com/lshigami/examcraft/internal/service"
)

type MCQController struct {
	mcqService service.MCQService
}

func NewMCQController(mcqService service.MCQService) *MCQController {
	return &MCQController{mcqService: mcqService}
}

func (ctrl *MCQController) RegisterRoutes(router gin.IRouter) {
	options := router.Group("/mcq/options")
	options.POST("/context", ctrl.ContextOptions)
	options.POST("/context/batch", ctrl.BatchContextOptions)
	options.POST("/similar", ctrl.SimilarOptions)
	options.POST("/quranic/:distractor_type", ctrl.QuranicOptions)
}

// ContextOptions godoc
// @Summary Generate options from sentence context
// @Description Asks the LLM for four options (the correct answer plus three distractors) for a fill-in-the-blank question.
// @Tags mcq
// @Accept json
// @Produce json
// @Param request body dto.ContextOptionsRequest true "Question, correct answer and language (arabic|urdu)"
// @Success 200 {object} dto.OptionsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body, unsupported language or wrong option count"
// @Failure 500 {object} dto.ErrorResponse "LLM failure"
// @Router /mcq/options/context [post]
func (ctrl *MCQController) ContextOptions(c *gin.Context) {
	var req dto.ContextOptionsRequest
	if !controller.BindJSON(c, &req) {
		return
	}
	resp, err := ctrl.mcqService.ContextOptions(c.Request.Context(), req)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SimilarOptions godoc
// @Summary Generate same-category options
// @Tags mcq
// @Accept json
// @Produce json
// @Param request body dto.ContextOptionsRequest true "Question, correct answer and language (arabic|urdu)"
// @Success 200 {object} dto.OptionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /mcq/options/similar [post]
func (ctrl *MCQController) SimilarOptions(c *gin.Context) {
	var req dto.ContextOptionsRequest
	if !controller.BindJSON(c, &req) {
		return
	}
	resp, err := ctrl.mcqService.SimilarOptions(c.Request.Context(), req)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// QuranicOptions godoc
// @Summary Generate Quranic verse distractors
// @Description distractor_type is one of collection, diacritic, phonetic, morphological, grammatical, alternate_verse, thematic, collocational.
// @Tags mcq
// @Accept json
// @Produce json
// @Param distractor_type path string true "Distractor type"
// @Param request body dto.QuranicOptionsRequest true "Verse with a blank and the correct answer"
// @Success 200 {object} dto.OptionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /mcq/options/quranic/{distractor_type} [post]
func (ctrl *MCQController) QuranicOptions(c *gin.Context) {
	var req dto.QuranicOptionsRequest
	if !controller.BindJSON(c, &req) {
		return
	}
	resp, err := ctrl.mcqService.QuranicOptions(c.Request.Context(), c.Param("distractor_type"), req)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BatchContextOptions godoc
// @Summary Generate context options for up to 20 questions
// @Description Items are generated concurrently; each result carries either responses or an error message.
// @Tags mcq
// @Accept json
// @Produce json
// @Param request body dto.BatchOptionsRequest true "Batch items"
// @Success 200 {object} dto.BatchOptionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /mcq/options/context/batch [post]
func (ctrl *MCQController) BatchContextOptions(c *gin.Context) {
	var req dto.BatchOptionsRequest
	if !controller.BindJSON(c, &req) {
		return
	}
	resp, err := ctrl.mcqService.BatchContextOptions(c.Request.Context(), req)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
