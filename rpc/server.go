package rpc

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MixinNetwork/fraction/config"
	"github.com/MixinNetwork/fraction/storage"
	"github.com/gorilla/handlers"
)

func NewServer(custom *config.Custom, store storage.Store) *http.Server {
	router := NewRouter(store)
	handler := handleCORS(router)
	handler = handlers.ProxyHeaders(handler)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", custom.RPC.Port),
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}
