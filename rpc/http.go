package rpc

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/MixinNetwork/fraction/logger"
	"github.com/MixinNetwork/fraction/storage"
	"github.com/dimfeld/httptreemux"
	"github.com/gofrs/uuid"
	"github.com/unrolled/render"
)

type R struct {
	Store  storage.Store
	render *render.Render
	start  time.Time
}

type Call struct {
	Id     string        `json:"id"`
	Method string        `json:"method"`
	Params []interface{} `json:"params"`
}

func NewRouter(store storage.Store) *httptreemux.TreeMux {
	router := httptreemux.New()
	impl := &R{Store: store, render: render.New(), start: time.Now()}
	router.POST("/", impl.handle)
	registerHandlers(router, impl.render)
	return router
}

func registerHandlers(router *httptreemux.TreeMux, rdr *render.Render) {
	router.MethodNotAllowedHandler = func(w http.ResponseWriter, r *http.Request, _ map[string]httptreemux.HandlerFunc) {
		rdr.JSON(w, http.StatusNotFound, map[string]interface{}{})
	}
	router.NotFoundHandler = func(w http.ResponseWriter, r *http.Request) {
		rdr.JSON(w, http.StatusNotFound, map[string]interface{}{})
	}
	router.PanicHandler = func(w http.ResponseWriter, r *http.Request, rcv interface{}) {
		logger.Errorf("RPC PANIC %v %s\n", rcv, debug.Stack())
		rdr.JSON(w, http.StatusInternalServerError, map[string]interface{}{"error": fmt.Sprint(rcv)})
	}
}

func (impl *R) handle(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var call Call
	d := json.NewDecoder(r.Body)
	d.UseNumber()
	if err := d.Decode(&call); err != nil {
		impl.render.JSON(w, http.StatusBadRequest, map[string]interface{}{"error": err.Error()})
		return
	}
	if call.Id == "" {
		call.Id = uuid.Must(uuid.NewV4()).String()
	}
	logger.Verbosef("RPC %s %s %v\n", call.Id, call.Method, call.Params)

	var data map[string]interface{}
	var err error
	switch call.Method {
	case "getinfo":
		data, err = getInfo(impl.Store, impl.start)
	case "add", "sub", "mul", "div":
		data, err = calculate(call.Method, call.Params)
	case "compare":
		data, err = compare(call.Params)
	case "neg", "inv":
		data, err = transform(call.Method, call.Params)
	case "parse":
		data, err = parse(call.Params)
	case "fromfloat":
		data, err = fromFloat(call.Params)
	case "tofloat":
		data, err = toFloat(call.Params)
	case "putfraction":
		data, err = putFraction(impl.Store, call.Params)
	case "getfraction":
		data, err = getFraction(impl.Store, call.Params)
	case "removefraction":
		data, err = removeFraction(impl.Store, call.Params)
	case "listfractions":
		data, err = listFractions(impl.Store, call.Params)
	default:
		err = fmt.Errorf("invalid method %s", call.Method)
	}
	if err != nil {
		logger.Verbosef("RPC %s %s ERROR %s\n", call.Id, call.Method, err.Error())
		impl.render.JSON(w, http.StatusOK, map[string]interface{}{"id": call.Id, "error": err.Error()})
		return
	}
	data["id"] = call.Id
	impl.render.JSON(w, http.StatusOK, data)
}

func handleCORS(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			handler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Add("Access-Control-Allow-Headers", "Content-Type,Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "OPTIONS,GET,POST,DELETE")
		w.Header().Set("Access-Control-Max-Age", "600")
		if r.Method == "OPTIONS" {
			render.New().JSON(w, http.StatusOK, map[string]interface{}{})
		} else {
			handler.ServeHTTP(w, r)
		}
	})
}
