package httpapi

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/voice-weather/internal/automation"
	"github.com/i474232898/voice-weather/internal/intent"
	"github.com/i474232898/voice-weather/internal/location"
	"github.com/i474232898/voice-weather/internal/speech"
	"github.com/i474232898/voice-weather/internal/store"
)

var validate = validator.New()

// UtteranceHandler is the slice of the responder the API needs.
type UtteranceHandler interface {
	HandleUtterance(ctx context.Context, utt speech.Utterance) string
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, responder UtteranceHandler, history *store.MemoryStore, conditions *automation.Registry) {
	v1 := app.Group("/api/v1")

	v1.Post("/utterance", func(c *fiber.Ctx) error {
		var req utteranceRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "malformed utterance payload")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		spoken := responder.HandleUtterance(c.UserContext(), req.toUtterance())
		return c.JSON(fiber.Map{"spoken": spoken})
	})

	v1.Get("/observation/latest", func(c *fiber.Ctx) error {
		obs, err := history.Latest()
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no observation recorded yet")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to read observation")
		}
		return c.JSON(obs)
	})

	// Flow-condition surface for host automations: evaluate one named
	// condition against the recorded observations.
	v1.Post("/condition/:name", func(c *fiber.Ctx) error {
		args := map[string]string{}
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&args); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "malformed condition arguments")
			}
		}

		result, err := conditions.Evaluate(c.Params("name"), args)
		if err != nil {
			if errors.Is(err, automation.ErrUnknownCondition) {
				return fiber.NewError(fiber.StatusNotFound, "unknown condition")
			}
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(fiber.Map{"result": result})
	})
}

// utteranceRequest is the recognized-speech payload delivered by the host
// platform: the transcript plus its pre-matched triggers and time expressions.
type utteranceRequest struct {
	Transcript string           `json:"transcript" validate:"required"`
	Language   string           `json:"language" validate:"required,len=2"`
	Triggers   []triggerPayload `json:"triggers" validate:"dive"`
	Times      []timePayload    `json:"times" validate:"dive"`
	Location   locationPayload  `json:"location"`
}

type triggerPayload struct {
	ID       string `json:"id" validate:"required,oneof=weather temperature current today location"`
	Position int    `json:"position" validate:"gte=0"`
	Length   int    `json:"length" validate:"gte=0"`
}

type timePayload struct {
	Day        int    `json:"day" validate:"gte=1,lte=31"`
	Month      int    `json:"month" validate:"gte=0,lte=11"`
	Year       int    `json:"year" validate:"gte=0"`
	Transcript string `json:"transcript" validate:"required"`
	Position   int    `json:"position" validate:"gte=0"`
}

type locationPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name"`
}

func (r utteranceRequest) toUtterance() speech.Utterance {
	utt := speech.Utterance{
		Transcript: r.Transcript,
		Language:   r.Language,
		Location: location.Location{
			Latitude:  r.Location.Latitude,
			Longitude: r.Location.Longitude,
			Name:      r.Location.Name,
		},
	}
	for _, t := range r.Triggers {
		utt.Triggers = append(utt.Triggers, intent.Trigger{
			ID:       t.ID,
			Position: t.Position,
			Length:   t.Length,
		})
	}
	for _, te := range r.Times {
		utt.Times = append(utt.Times, intent.TimeExpression{
			Day:        te.Day,
			Month:      te.Month,
			Year:       te.Year,
			Transcript: te.Transcript,
			Position:   te.Position,
		})
	}
	return utt
}
