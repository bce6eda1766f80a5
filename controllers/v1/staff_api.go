package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"chef-karigar-backend/controllers"
	staffhandler "chef-karigar-backend/lib/staff"
	apimodels "chef-karigar-backend/models/api"
	staffapimodels "chef-karigar-backend/models/api/staff"
	dbmodels "chef-karigar-backend/models/db"
)

type staffApiController struct {
	controllers.BaseAPIController
}

func InitStaffApiRouters(app *fiber.App) {
	controller := staffApiController{}
	app.Route("staff", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.update)
			idRouter.Put("call-log", controller.updateCallLog)
			idRouter.Put("verification", controller.updateVerification)
			idRouter.Get("history", controller.history)
		})
	})
}

// @Summary Add a staff member
// @Tags Staff
// @Description Add a staff member to the roster
// @Param	body body	staffapimodels.StaffData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/staff [post]
func (c *staffApiController) create(ctx *fiber.Ctx) error {
	var payload staffapimodels.StaffData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := staffhandler.Instance.Create(payload, c.ActingUser(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error adding staff member")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary List staff members
// @Tags Staff
// @Description List staff members with an optional filter
// @Param	body body	dbmodels.StaffFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]staffapimodels.StaffView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/staff/list [post]
func (c *staffApiController) list(ctx *fiber.Ctx) error {
	var filter dbmodels.StaffFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := staffhandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error listing staff members")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Staff member profile
// @Tags Staff
// @Description Staff member profile
// @Param   id	path	string	true	"staff member ID"
// @Success 200 {object} apimodels.Response{data=staffapimodels.StaffView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/staff/{id} [get]
func (c *staffApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := staffhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error fetching staff member")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Update a staff member
// @Tags Staff
// @Description Update staff member fields, changes are audited
// @Param   id	path	string	true	"staff member ID"
// @Param	body body	staffapimodels.StaffUpdateData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/staff/{id} [put]
func (c *staffApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload staffapimodels.StaffUpdateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = staffhandler.Instance.Update(id, payload, c.ActingUser(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error updating staff member")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Record a call
// @Tags Staff
// @Description Record the latest call outcome for a staff member
// @Param   id	path	string	true	"staff member ID"
// @Param	body body	staffapimodels.CallLogData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/staff/{id}/call-log [put]
func (c *staffApiController) updateCallLog(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload staffapimodels.CallLogData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = staffhandler.Instance.UpdateCallLog(id, payload, c.ActingUser(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error recording call")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Update verification
// @Tags Staff
// @Description Update identity and skill verification flags
// @Param   id	path	string	true	"staff member ID"
// @Param	body body	staffapimodels.VerificationData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/staff/{id}/verification [put]
func (c *staffApiController) updateVerification(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload staffapimodels.VerificationData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = staffhandler.Instance.UpdateVerification(id, payload, c.ActingUser(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error updating verification")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Staff member audit trail
// @Tags Staff
// @Description Staff member audit trail, newest first
// @Param   id	path	string	true	"staff member ID"
// @Success 200 {object} apimodels.Response{data=[]staffapimodels.HistoryView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/staff/{id}/history [get]
func (c *staffApiController) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := staffhandler.Instance.History(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error fetching staff history")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
