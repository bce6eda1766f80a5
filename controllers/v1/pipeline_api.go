package apiv1

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"chef-karigar-backend/controllers"
	pipelinehandler "chef-karigar-backend/lib/pipeline"
	apimodels "chef-karigar-backend/models/api"
	pipelineapimodels "chef-karigar-backend/models/api/pipeline"
)

type pipelineApiController struct {
	controllers.BaseAPIController
}

func InitPipelineApiRouters(app *fiber.App) {
	controller := pipelineApiController{}
	app.Route("pipeline", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Get("ghosted", controller.ghosted)
		router.Get("pool/:id", controller.pool)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Put("advance", controller.advance)
			idRouter.Put("cancel", controller.cancel)
		})
	})
}

// @Summary Create a match bundle
// @Tags Pipeline
// @Description Package selected candidates with a job and enter the funnel
// @Param	body body	pipelineapimodels.BundleCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=pipelineapimodels.BundleView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pipeline [post]
func (c *pipelineApiController) create(ctx *fiber.Ctx) error {
	var payload pipelineapimodels.BundleCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := pipelinehandler.Instance.CreateBundle(payload, c.ActingUser(ctx))
	if err != nil {
		return c.sendPipelineError(ctx, err, "Error creating match bundle")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Advance a bundle
// @Tags Pipeline
// @Description Move a bundle one funnel stage forward
// @Param   id	path	string	true	"bundle ID"
// @Success 200 {object} apimodels.Response{data=pipelineapimodels.BundleView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pipeline/{id}/advance [put]
func (c *pipelineApiController) advance(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := pipelinehandler.Instance.Advance(ctx.UserContext(), id, c.ActingUser(ctx))
	if err != nil {
		return c.sendPipelineError(ctx, err, "Error advancing bundle")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Cancel a bundle
// @Tags Pipeline
// @Description Cancel a bundle from any active stage
// @Param   id	path	string	true	"bundle ID"
// @Success 200 {object} apimodels.Response{data=pipelineapimodels.BundleView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pipeline/{id}/cancel [put]
func (c *pipelineApiController) cancel(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := pipelinehandler.Instance.Cancel(ctx.UserContext(), id, c.ActingUser(ctx))
	if err != nil {
		return c.sendPipelineError(ctx, err, "Error cancelling bundle")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary List bundles
// @Tags Pipeline
// @Description List bundles by funnel stage, "All" returns everything
// @Param	body body	pipelineapimodels.BundleListFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=[]pipelineapimodels.BundleView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pipeline/list [post]
func (c *pipelineApiController) list(ctx *fiber.Ctx) error {
	var filter pipelineapimodels.BundleListFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := filter.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := pipelinehandler.Instance.ListByStatus(filter.Status)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error listing bundles")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Ghosted bundles
// @Tags Pipeline
// @Description Bundles stuck in Interviewing beyond the ghosting threshold
// @Success 200 {object} apimodels.Response{data=[]pipelineapimodels.GhostedView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pipeline/ghosted [get]
func (c *pipelineApiController) ghosted(ctx *fiber.Ctx) error {
	resp, err := pipelinehandler.Instance.ListGhosted(time.Now())
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error listing ghosted bundles")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Candidate pool for a job
// @Tags Pipeline
// @Description Available candidates scored against the job, already-matched candidates excluded
// @Param   id	path	string	true	"job ID"
// @Success 200 {object} apimodels.Response{data=[]pipelineapimodels.PoolCandidateView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pipeline/pool/{id} [get]
func (c *pipelineApiController) pool(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := pipelinehandler.Instance.CandidatePool(id)
	if err != nil {
		return c.sendPipelineError(ctx, err, "Error building candidate pool")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// sendPipelineError maps the pipeline error taxonomy onto HTTP statuses.
func (c *pipelineApiController) sendPipelineError(ctx *fiber.Ctx, err error, message string) error {
	switch {
	case errors.Is(err, pipelinehandler.ErrEmptySelection):
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, pipelinehandler.ErrNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
	case errors.Is(err, pipelinehandler.ErrInvalidTransition):
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(err.Error()))
	}
	return c.SendError(ctx, c.GetLogger(ctx), err, message)
}
