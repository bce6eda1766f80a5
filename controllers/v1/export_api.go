package apiv1

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"chef-karigar-backend/controllers"
	xlsexport "chef-karigar-backend/lib/export/xls"
	apimodels "chef-karigar-backend/models/api"
	pipelineapimodels "chef-karigar-backend/models/api/pipeline"
	dbmodels "chef-karigar-backend/models/db"
)

type exportApiController struct {
	controllers.BaseAPIController
}

func InitExportApiRouters(app *fiber.App) {
	controller := exportApiController{}
	app.Route("export", func(router fiber.Router) {
		router.Put("staff", controller.staffExport)
		router.Put("staff/archive", controller.staffArchive)
		router.Put("pipeline", controller.pipelineExport)
	})
}

// @Summary Export the roster to Excel
// @Tags Export
// @Description Export the staff roster to Excel
// @Param	body body	dbmodels.StaffFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/export/staff [put]
func (c *exportApiController) staffExport(ctx *fiber.Ctx) error {
	var filter dbmodels.StaffFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := xlsexport.Instance.StaffListToXls(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error exporting staff roster to Excel")
	}
	fileName := fmt.Sprintf("staff-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

// @Summary Archive a roster report
// @Tags Export
// @Description Upload the roster report to the object store and return its key
// @Param	body body	dbmodels.StaffFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/export/staff/archive [put]
func (c *exportApiController) staffArchive(ctx *fiber.Ctx) error {
	var filter dbmodels.StaffFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	key, err := xlsexport.Instance.ArchiveStaffList(ctx.UserContext(), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error archiving staff roster report")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(key))
}

// @Summary Export the pipeline to Excel
// @Tags Export
// @Description Export match bundles to Excel, "All" exports everything
// @Param	body body	pipelineapimodels.BundleListFilter	true	"request body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/export/pipeline [put]
func (c *exportApiController) pipelineExport(ctx *fiber.Ctx) error {
	var filter pipelineapimodels.BundleListFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := xlsexport.Instance.PipelineToXls(filter.Status)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error exporting pipeline to Excel")
	}
	fileName := fmt.Sprintf("pipeline-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}
