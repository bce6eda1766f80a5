package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"chef-karigar-backend/controllers"
	referralhandler "chef-karigar-backend/lib/referral"
	apimodels "chef-karigar-backend/models/api"
	referralapimodels "chef-karigar-backend/models/api/referral"
)

type referralApiController struct {
	controllers.BaseAPIController
}

func InitReferralApiRouters(app *fiber.App) {
	controller := referralApiController{}
	app.Route("referral", func(router fiber.Router) {
		router.Get("list", controller.list)
		router.Post("", controller.create)
		router.Put(":id/employment", controller.updateEmployment)
	})
}

// @Summary Refer a candidate
// @Tags Referral
// @Description Refer a candidate, a roster entry is created for them
// @Param	body body	referralapimodels.ReferralData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/referral [post]
func (c *referralApiController) create(ctx *fiber.Ctx) error {
	var payload referralapimodels.ReferralData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := referralhandler.Instance.Create(payload, c.ActingUser(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error creating referral")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary List referrals
// @Tags Referral
// @Description List referrals, optionally for one referrer
// @Param   referrer_id	query	string	false	"referrer staff ID"
// @Success 200 {object} apimodels.Response{data=[]referralapimodels.ReferralView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/referral/list [get]
func (c *referralApiController) list(ctx *fiber.Ctx) error {
	resp, err := referralhandler.Instance.List(ctx.Query("referrer_id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error listing referrals")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

type employmentData struct {
	DaysEmployed int  `json:"days_employed"`
	IsWorking    bool `json:"is_working"`
}

// @Summary Update referral employment
// @Tags Referral
// @Description Refresh the employed-days counter, the bonus is paid out once the qualifying period passes
// @Param   id	path	string	true	"referral ID"
// @Param	body body	employmentData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/referral/{id}/employment [put]
func (c *referralApiController) updateEmployment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload employmentData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = referralhandler.Instance.UpdateEmployment(id, payload.DaysEmployed, payload.IsWorking)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error updating referral employment")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
