package config

import (
	"time"

	util "github.com/saulo-duarte/chronos-quiz/internal/utils"
)

func setLocation(name string) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		Logger.WithError(err).Warnf("Unknown APP_TIMEZONE %q, falling back to UTC", name)
		loc = time.UTC
	}
	util.SetLocation(loc)
}
