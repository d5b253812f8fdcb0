package main

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/bitfolio/bitfolio/worker/refresher"
)

var workerSet = wire.NewSet(
	provideRefresherConfig,
	refresher.New,
)

func provideRefresherConfig(v *viper.Viper) refresher.Config {
	v.SetDefault("refresher.interval", "30s")

	return refresher.Config{Interval: v.GetDuration("refresher.interval")}
}
