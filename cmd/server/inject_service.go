package main

import (
	"net/http"
	"time"

	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/bitfolio/bitfolio/core"
	"github.com/bitfolio/bitfolio/service/adapter"
	"github.com/bitfolio/bitfolio/service/host"
	"github.com/bitfolio/bitfolio/service/indexer"
	"github.com/bitfolio/bitfolio/service/registry"
	"github.com/bitfolio/bitfolio/service/session"
	"github.com/bitfolio/bitfolio/service/sink"
)

var serviceSet = wire.NewSet(
	provideHost,
	provideHTTPClient,
	provideBitcoinIndexer,
	provideStacksIndexer,
	registry.New,
	adapter.NewSet,
	sink.New,
	session.New,
)

func provideHost(v *viper.Viper) core.Host {
	if v.GetBool("host.simulated") {
		return host.Simulated()
	}

	return host.New()
}

func provideHTTPClient(v *viper.Viper) *http.Client {
	v.SetDefault("indexer.timeout", 15*time.Second)

	return &http.Client{Timeout: v.GetDuration("indexer.timeout")}
}

func provideBitcoinIndexer(v *viper.Viper, client *http.Client) (core.BitcoinIndexer, error) {
	v.SetDefault("indexer.bitcoin.base_url", "https://blockstream.info/api")

	return indexer.NewBitcoin(indexer.BitcoinConfig{
		BaseURL: v.GetString("indexer.bitcoin.base_url"),
	}, client)
}

func provideStacksIndexer(v *viper.Viper, client *http.Client) (core.StacksIndexer, error) {
	v.SetDefault("indexer.stacks.base_url", "https://api.hiro.so")

	return indexer.NewStacks(indexer.StacksConfig{
		BaseURL: v.GetString("indexer.stacks.base_url"),
	}, client)
}
