package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"chef-karigar-backend/controllers"
	notificationhandler "chef-karigar-backend/lib/notification"
	apimodels "chef-karigar-backend/models/api"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("notification", func(router fiber.Router) {
		router.Get("list", controller.list)
		router.Put("read", controller.markRead)
	})
}

// @Summary List notifications
// @Tags Notification
// @Description List notifications, newest first
// @Param   unread	query	bool	false	"unread only"
// @Success 200 {object} apimodels.Response{data=[]dbmodels.Notification}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/list [get]
func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	resp, err := notificationhandler.Instance.List(ctx.QueryBool("unread"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error listing notifications")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

type markReadData struct {
	IDs []string `json:"ids"`
}

// @Summary Mark notifications read
// @Tags Notification
// @Description Mark the given notifications as read
// @Param	body body	markReadData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notification/read [put]
func (c *notificationApiController) markRead(ctx *fiber.Ctx) error {
	var payload markReadData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := notificationhandler.Instance.MarkRead(payload.IDs); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error marking notifications read")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
