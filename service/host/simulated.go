package host

import (
	"context"
	"encoding/json"
	"fmt"
)

// Simulated returns a host with canned wallet handles for development runs
// without any real extension present. Xverse and Unisat are "installed";
// Leather is left absent to exercise the not-detected path.
func Simulated() *Host {
	h := New()
	h.SetXverse(&simXverse{})
	h.SetUnisat(&simUnisat{})
	return h
}

type simXverse struct{}

func (s *simXverse) Request(ctx context.Context, method string, params any) (json.RawMessage, error) {
	switch method {
	case "getAccounts":
		return json.RawMessage(`{"result":[
			{"address":"bc1qsim0payment0addr0000000000000000000000","purpose":"payment","publicKey":"02aa"},
			{"address":"bc1psim0ordinals0addr000000000000000000000","purpose":"ordinals","publicKey":"02bb"},
			{"address":"SP2SIMULATEDSTACKSADDR000000000000000000","purpose":"stacks","publicKey":"02cc"}
		]}`), nil
	case "getBalance":
		return json.RawMessage(`{"result":{"confirmed":"150000000","unconfirmed":"2500000"}}`), nil
	case "ord_getInscriptions":
		return json.RawMessage(`{"result":[
			{"id":"6fb976ab49dcec017f1e201e84395983204ae1a7c2abf7ced0a85d692e442799i0",
			 "content_type":"image/png","content_length":4096,
			 "content_url":"https://ord.example/content/6fb976abi0"}
		]}`), nil
	case "runes_getBalance":
		return json.RawMessage(`{"result":[
			{"name":"UNCOMMON.GOODS","balance":"420000000000000000001","symbol":"G","decimals":18}
		]}`), nil
	default:
		return nil, fmt.Errorf("unknown method %q", method)
	}
}

type simUnisat struct{}

func (s *simUnisat) RequestAccounts(ctx context.Context) ([]string, error) {
	return []string{"bc1qsim0unisat0addr00000000000000000000000"}, nil
}

func (s *simUnisat) GetBalance(ctx context.Context) (json.RawMessage, error) {
	return json.RawMessage(`{"confirmed":98765432,"unconfirmed":0,"total":98765432}`), nil
}

func (s *simUnisat) GetInscriptions(ctx context.Context) (json.RawMessage, error) {
	return json.RawMessage(`{"list":[
		{"inscriptionId":"9f2cc5f1b1a2d3e4f5a6b7c8d9e0f1a2b3c4d5e6f7a8b9c0d1e2f3a4b5c6d7e8i0",
		 "contentType":"text/plain;charset=utf-8","contentLength":21,
		 "content":"https://ord.example/content/9f2cc5f1i0"}
	]}`), nil
}

func (s *simUnisat) GetBitcoinUtxos(ctx context.Context) (json.RawMessage, error) {
	return json.RawMessage(`[
		{"txId":"c0ffee0000000000000000000000000000000000000000000000000000000001","satoshis":55000000},
		{"txId":"c0ffee0000000000000000000000000000000000000000000000000000000002","satoshis":43765432}
	]`), nil
}
