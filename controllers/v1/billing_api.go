package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"chef-karigar-backend/controllers"
	billinghandler "chef-karigar-backend/lib/billing"
	"chef-karigar-backend/models"
	apimodels "chef-karigar-backend/models/api"
)

type billingApiController struct {
	controllers.BaseAPIController
}

func InitBillingApiRouters(app *fiber.App) {
	controller := billingApiController{}
	app.Route("billing", func(router fiber.Router) {
		router.Get("transactions", controller.transactions)
	})
}

// @Summary Money ledger
// @Tags Billing
// @Description Agency transactions, optionally filtered by type
// @Param   type	query	string	false	"transaction type"
// @Success 200 {object} apimodels.Response{data=[]billingapimodels.TransactionView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/billing/transactions [get]
func (c *billingApiController) transactions(ctx *fiber.Ctx) error {
	txType := models.TransactionType(ctx.Query("type"))
	resp, err := billinghandler.Instance.List(txType)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error listing transactions")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
