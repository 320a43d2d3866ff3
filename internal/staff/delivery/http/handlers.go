package http

import (
	"github.com/gin-gonic/gin"

	"nexstock/internal/staff"
	"nexstock/pkg/response"
)

// Create godoc
// @Summary     Add a staff member
// @Description Salary, shift, leave balance and attendance start from defaults.
// @Tags        Staff
// @Accept      json
// @Produce     json
// @Param       body body createMemberReq true "Member data"
// @Success     201 {object} memberEnvelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/staff [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createMemberReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	m, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, memberEnvelope{Member: newMemberResp(m)})
}

// List godoc
// @Summary     List staff members
// @Tags        Staff
// @Produce     json
// @Param       search     query string false "Match on name, role or email"
// @Param       department query string false "Department, All for any"
// @Param       status     query string false "Active, On Leave, Inactive or All"
// @Success     200 {object} listMembersResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/staff [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var req listMembersReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListMembersResp(out))
}

// Stats godoc
// @Summary     Staff counters
// @Tags        Staff
// @Produce     json
// @Success     200 {object} statsResp
// @Router      /api/v1/staff/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	stats, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, statsResp{Total: stats.Total, Active: stats.Active, Inactive: stats.Inactive, NewThisMonth: stats.NewThisMonth})
}

// Detail godoc
// @Summary     Get staff member
// @Tags        Staff
// @Produce     json
// @Param       id path string true "Member ID"
// @Success     200 {object} memberEnvelope
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/staff/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	m, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, memberEnvelope{Member: newMemberResp(m)})
}

// Update godoc
// @Summary     Update a staff member
// @Tags        Staff
// @Accept      json
// @Produce     json
// @Param       id   path string          true "Member ID"
// @Param       body body updateMemberReq true "Fields to update"
// @Success     200 {object} memberEnvelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/staff/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateMemberReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	m, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, memberEnvelope{Member: newMemberResp(m)})
}

// Delete godoc
// @Summary     Remove a staff member
// @Tags        Staff
// @Produce     json
// @Param       id path string true "Member ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/staff/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// CreateTask godoc
// @Summary     Assign a task
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createTaskReq true "Task data"
// @Success     201 {object} taskEnvelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [POST]
func (h *handler) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	var req createTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.CreateTask(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, taskEnvelope{Task: newTaskResp(t)})
}

// ListTasks godoc
// @Summary     List tasks
// @Tags        Tasks
// @Produce     json
// @Param       assignee_id query string false "Assignee member ID"
// @Param       status      query string false "Task status"
// @Success     200 {object} listTasksResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	var req listTasksReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	tasks, err := h.uc.ListTasks(ctx, staff.ListTasksInput{AssigneeID: req.AssigneeID, Status: staff.TaskStatus(req.Status)})
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTasks: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	out := listTasksResp{Tasks: make([]taskResp, len(tasks))}
	for i, t := range tasks {
		out.Tasks[i] = newTaskResp(t)
	}
	response.OK(c, out)
}

// DetailTask godoc
// @Summary     Get task with history
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskEnvelope
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) DetailTask(c *gin.Context) {
	ctx := c.Request.Context()

	t, err := h.uc.DetailTask(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.DetailTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, taskEnvelope{Task: newTaskResp(t)})
}

// UpdateTask godoc
// @Summary     Update a task
// @Description Reassignment and status changes are appended to the task history.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Task ID"
// @Param       body body updateTaskReq true "Fields to update"
// @Success     200 {object} taskEnvelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) UpdateTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.UpdateTask(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, taskEnvelope{Task: newTaskResp(t)})
}

// UpdateTaskStatus godoc
// @Summary     Move a task to another status
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string              true "Task ID"
// @Param       body body updateTaskStatusReq true "New status"
// @Success     200 {object} taskEnvelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/status [PATCH]
func (h *handler) UpdateTaskStatus(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateTaskStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.UpdateTaskStatus(ctx, c.Param("id"), staff.TaskStatus(req.Status))
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateTaskStatus: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, taskEnvelope{Task: newTaskResp(t)})
}

// DeleteTask godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) DeleteTask(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.DeleteTask(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.DeleteTask: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
