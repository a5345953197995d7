// entry point to app :)
package main

import (
	"github.com/ds124wfegd/pencil-sketch/config"
	"github.com/ds124wfegd/pencil-sketch/internal/appServer"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetFormatter(new(logrus.JSONFormatter))

	viperInstance, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Cannot load config. Error: {%s}", err.Error())
	}

	cfg, err := config.ParseConfig(viperInstance)
	if err != nil {
		logrus.Fatalf("Cannot parse config. Error: {%s}", err.Error())
	}

	cfg.Server.Port = config.GetEnv("PORT", cfg.Server.Port)

	appServer.NewServer(cfg)
}
