package controller

import (
	"digitaltwin-rag-be/internal/dto"
	"digitaltwin-rag-be/internal/pkg/serverutils"
	"digitaltwin-rag-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITwinController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
	SampleQuestions(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
	Rebuild(ctx *fiber.Ctx) error
}

type twinController struct {
	twinService    service.ITwinService
	profileService service.IProfileService
}

func NewTwinController(twinService service.ITwinService, profileService service.IProfileService) ITwinController {
	return &twinController{
		twinService:    twinService,
		profileService: profileService,
	}
}

func (c *twinController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/twin/v1")
	h.Post("ask", c.Ask)
	h.Get("questions", c.SampleQuestions)
	h.Get("status", c.Status)
	h.Post("rebuild", c.Rebuild)
}

func (c *twinController) Ask(ctx *fiber.Ctx) error {
	var req dto.AskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.twinService.Ask(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success answer question", res))
}

func (c *twinController) SampleQuestions(ctx *fiber.Ctx) error {
	res := c.profileService.SampleQuestions()
	return ctx.JSON(serverutils.SuccessResponse("Success list sample questions", res))
}

func (c *twinController) Status(ctx *fiber.Ctx) error {
	res, err := c.profileService.Status(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show status", res))
}

func (c *twinController) Rebuild(ctx *fiber.Ctx) error {
	published, err := c.profileService.PublishAll(ctx.Context())
	if err != nil {
		return err
	}

	res := &dto.PublishResponse{Published: published}
	return ctx.JSON(serverutils.SuccessResponse("Success publish knowledge base rebuild", res))
}
