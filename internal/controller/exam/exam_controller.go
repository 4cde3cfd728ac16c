package exam

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/examcraft/internal/controller"
	"github.com/lshigami/examcraft/internal/dto"
	"github.com/lshigami/examcraft/internal/service"
	"github.com/rs/zerolog/log"
)

type ExamController struct {
	examService service.ExamService
}

func NewExamController(examService service.ExamService) *ExamController {
	return &ExamController{examService: examService}
}

func (ctrl *ExamController) RegisterRoutes(router gin.IRouter) {
	exams := router.Group("/exam")
	exams.POST("/create", ctrl.CreateExam)
	exams.PUT("/edit", ctrl.EditExam)
	exams.GET("/:exam_id", ctrl.GetExam)
	exams.DELETE("/delete/:exam_id", ctrl.DeleteExam)
	exams.POST("/delete/:exam_id/entities", ctrl.DeleteEntities)
}

// CreateExam godoc
// @Summary Create an exam tree
// @Description Inserts the exam, its description and all sections, questions and options in one transaction. IDs are supplied by the caller.
// @Tags exam
// @Accept json
// @Produce json
// @Param exam body dto.CreateExamRequest true "Full exam tree"
// @Success 201 {object} dto.ExamIDResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid body or conflicting ids"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exam/create [post]
func (ctrl *ExamController) CreateExam(c *gin.Context) {
	var req dto.CreateExamRequest
	if !controller.BindJSON(c, &req) {
		return
	}

	id, err := ctrl.examService.CreateExam(c.Request.Context(), req)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	log.Info().Int64("exam_id", id).Int("sections", len(req.Sections)).Msg("Exam created")
	c.JSON(http.StatusCreated, dto.ExamIDResponse{ID: id})
}

// GetExam godoc
// @Summary Fetch an exam tree
// @Description Returns the exam description with every section, question and option nested.
// @Tags exam
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.ExamResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid exam id"
// @Failure 404 {object} dto.ErrorResponse "Exam not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exam/{exam_id} [get]
func (ctrl *ExamController) GetExam(c *gin.Context) {
	examID, ok := controller.PathID(c, "exam_id")
	if !ok {
		return
	}

	resp, err := ctrl.examService.GetExam(c.Request.Context(), examID)
	if err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EditExam godoc
// @Summary Edit an exam
// @Description Applies field edits to sections, questions and options, then the listed deletions, all in one transaction.
// @Tags exam
// @Accept json
// @Param edit body dto.EditExamRequest true "Edits and deletions"
// @Success 200
// @Failure 400 {object} dto.ErrorResponse "Invalid body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exam/edit [put]
func (ctrl *ExamController) EditExam(c *gin.Context) {
	var req dto.EditExamRequest
	if !controller.BindJSON(c, &req) {
		return
	}

	if err := ctrl.examService.EditExam(c.Request.Context(), req); err != nil {
		controller.WriteError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// DeleteExam godoc
// @Summary Delete an exam
// @Description Deletes the exam and everything under it. Deleting an unknown id succeeds.
// @Tags exam
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid exam id"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exam/delete/{exam_id} [delete]
func (ctrl *ExamController) DeleteExam(c *gin.Context) {
	examID, ok := controller.PathID(c, "exam_id")
	if !ok {
		return
	}

	if err := ctrl.examService.DeleteExam(c.Request.Context(), examID); err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: fmt.Sprintf("Exam %d deleted successfully", examID)})
}

// DeleteEntities godoc
// @Summary Delete sections, questions and options of an exam
// @Description Deletes the listed entities in one transaction. Questions of a listed section and options of a listed question go with them; ids that do not belong to the exam are ignored.
// @Tags exam
// @Accept json
// @Produce json
// @Param exam_id path int true "Exam ID"
// @Param ids body dto.DeleteIdsRequest true "Entity ids to delete"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid exam id or body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /exam/delete/{exam_id}/entities [post]
func (ctrl *ExamController) DeleteEntities(c *gin.Context) {
	examID, ok := controller.PathID(c, "exam_id")
	if !ok {
		return
	}
	var req dto.DeleteIdsRequest
	if !controller.BindJSON(c, &req) {
		return
	}

	if err := ctrl.examService.DeleteEntities(c.Request.Context(), examID, req); err != nil {
		controller.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: fmt.Sprintf("Entities of exam %d deleted successfully", examID)})
}
