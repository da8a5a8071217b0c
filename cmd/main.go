package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// @title StudyAid API
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @version 1.0
// @description API для загрузки учебных материалов, генерации конспектов и квизов.
// @BasePath /
func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
