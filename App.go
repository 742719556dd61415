package main

import (
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"io"
	"net/http"
	"os"
)

const ExitCodeMainError = 1

const ListenPort = ":8080"

func NewAppLogger(out io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()
}

func RunApp() error {
	gin.SetMode(gin.ReleaseMode)

	serviceContainer := BuildServiceContainer(PubchemBaseUrl, NewAppLogger(os.Stdout))

	return http.ListenAndServe(ListenPort, serviceContainer.Router)
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
	}

	if err != nil {
		return ExitCodeMainError
	}

	return 0
}
