package main

import (
	appfx "github.com/IdrisAkintobi/altfolio/internal/fx"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
