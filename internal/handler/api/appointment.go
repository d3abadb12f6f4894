package api

import (
	"fmt"
	"net/http"
	"strconv"

	reqdto "appointment-system/internal/handler/dto/request"
	resdto "appointment-system/internal/handler/dto/response"
	"appointment-system/internal/handler/httperr"
	"appointment-system/internal/usecase/commands"
	"appointment-system/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	cmds commands.AppointmentCommands
	q    queries.AppointmentQueries
}

func NewAppointmentHandler(cmds commands.AppointmentCommands, q queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{cmds: cmds, q: q}
}

// @Summary List appointments
// @Description Page through appointments, optionally filtered by a case-insensitive search over patient name
// @Tags appointments
// @Produce json
// @Param searchTerm query string false "Case-insensitive substring filter"
// @Param pageNumber query int false "1-based page number"
// @Param pageSize query int false "Page size (max 100)"
// @Success 200 {object} resdto.AppointmentPageResponse
// @Failure 400 {object} httperr.Problem
// @Router /appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	q := reqdto.ListAppointmentsQuery{
		SearchTerm: c.Query("searchTerm"),
		PageNumber: c.Query("pageNumber"),
		PageSize:   c.Query("pageSize"),
	}
	filter, verr := q.ToFilter()
	if verr != nil {
		httperr.AbortWithValidation(c, verr)
		return
	}

	page, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithFailure(c, err, "")
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentPage(page))
}

// @Summary Get appointment
// @Tags appointments
// @Produce json
// @Param id path int true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Problem
// @Failure 404 {object} httperr.Problem
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithFailure(c, err, notFoundDetail(id))
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Create appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Param request body reqdto.CreateAppointmentRequest true "Appointment"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Problem
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithProblem(c, http.StatusBadRequest, err, httperr.TitleBadRequest, "request body could not be decoded", nil)
		return
	}

	res := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if res.IsFailure() {
		httperr.AbortWithFailure(c, res.Err(), "")
		return
	}

	created := res.Value()
	c.Header("Location", c.Request.URL.Path+"/"+strconv.FormatInt(created.ID(), 10))
	c.JSON(http.StatusCreated, resdto.FromAppointment(created))
}

// @Summary Update appointment
// @Description Replace every mutable field of an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path int true "Appointment ID"
// @Param request body reqdto.UpdateAppointmentRequest true "Appointment"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Problem
// @Failure 404 {object} httperr.Problem
// @Router /appointments/{id} [put]
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithProblem(c, http.StatusBadRequest, err, httperr.TitleBadRequest, "request body could not be decoded", nil)
		return
	}

	res := h.cmds.Update(c.Request.Context(), req.ToCommand(id))
	if res.IsFailure() {
		httperr.AbortWithFailure(c, res.Err(), notFoundDetail(id))
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointment(res.Value()))
}

// @Summary Delete appointment
// @Tags appointments
// @Param id path int true "Appointment ID"
// @Success 204
// @Failure 400 {object} httperr.Problem
// @Failure 404 {object} httperr.Problem
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res := h.cmds.Delete(c.Request.Context(), commands.DeleteAppointmentCommand{ID: id})
	if res.IsFailure() {
		httperr.AbortWithFailure(c, res.Err(), notFoundDetail(id))
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (int64, bool) {
	id, verr := reqdto.ParseID(c.Param("id"))
	if verr != nil {
		httperr.AbortWithValidation(c, verr)
		return 0, false
	}
	return id, true
}

func notFoundDetail(id int64) string {
	return fmt.Sprintf("appointment %d was not found", id)
}
