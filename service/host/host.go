// Package host holds the injected wallet extension handles. In a browser
// deployment the extensions inject themselves; embedding applications
// register their handles here before the session is used.
package host

import (
	"sync"

	"github.com/bitfolio/bitfolio/core"
)

func New() *Host {
	return &Host{}
}

type Host struct {
	mux     sync.RWMutex
	xverse  core.XverseHandle
	leather core.LeatherHandle
	unisat  core.UnisatHandle
}

func (h *Host) SetXverse(handle core.XverseHandle) {
	h.mux.Lock()
	defer h.mux.Unlock()
	h.xverse = handle
}

func (h *Host) SetLeather(handle core.LeatherHandle) {
	h.mux.Lock()
	defer h.mux.Unlock()
	h.leather = handle
}

func (h *Host) SetUnisat(handle core.UnisatHandle) {
	h.mux.Lock()
	defer h.mux.Unlock()
	h.unisat = handle
}

func (h *Host) Xverse() core.XverseHandle {
	h.mux.RLock()
	defer h.mux.RUnlock()
	return h.xverse
}

func (h *Host) Leather() core.LeatherHandle {
	h.mux.RLock()
	defer h.mux.RUnlock()
	return h.leather
}

func (h *Host) Unisat() core.UnisatHandle {
	h.mux.RLock()
	defer h.mux.RUnlock()
	return h.unisat
}
