package api

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/globaledge/consult-api/utils/response"
)

type APIServer struct {
	app           *fiber.App
	listenAddress string
}

func NewAPIServer(listenAddress string) *APIServer {
	app := fiber.New(fiber.Config{
		AppName: "consult-api",
		// Unhandled errors still leave the client with the standard
		// envelope rather than fiber's default plain-text body.
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return response.Error(c, code, err.Error())
		},
	})

	return &APIServer{
		app:           app,
		listenAddress: listenAddress,
	}
}

func (s *APIServer) GetEngine() *fiber.App {
	return s.app
}

func (s *APIServer) Run() error {
	log.Println("Starting API Server")
	log.Printf("Listening on %s", s.listenAddress)

	return s.app.Listen(s.listenAddress)
}
