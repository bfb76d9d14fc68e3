package server

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/MasterDimmy/zipologger"
	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"

	"github.com/goupdate/bigomap"
	"github.com/goupdate/bigomap/bench"
	"github.com/goupdate/bigomap/complexity"
	"github.com/goupdate/bigomap/config"
	"github.com/goupdate/bigomap/history"
)

type Server struct {
	sync.RWMutex

	runner  *bench.Runner
	kinds   []bigomap.Kind
	storage *history.Store
	srv     *fasthttp.Server

	runsTicker *time.Ticker
	runsDone   chan struct{}

	logsLevel int //0 = OFF, 1=CALLS, 2=CALLS+DATA, 3=CALLS+DATA+RESPONSE
	log       *zipologger.Logger
}

func (s *Server) Shutdown() {
	s.Lock()
	s.stopRuns()
	s.Unlock()

	if s.srv != nil {
		s.srv.Shutdown()
	}
}

// New validates cfg and prepares the handler. No log file is written when
// cfg.LogFile is empty.
func New(cfg *config.Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	kinds, err := cfg.ParsedKinds()
	if err != nil {
		return nil, err
	}

	runner, err := bench.NewRunner(cfg.Bench())
	if err != nil {
		return nil, errors.Wrap(err, "Failed to initialize runner")
	}

	server := &Server{
		runner:    runner,
		kinds:     kinds,
		storage:   history.New(),
		logsLevel: cfg.LogLevel,
	}
	if cfg.LogFile != "" {
		server.log = zipologger.NewLogger(cfg.LogFile, 5, 5, 5, false)
		runner.SetLogger(server.log)
	}

	router := fasthttp.RequestHandler(func(ctx *fasthttp.RequestCtx) {
		defer zipologger.HandlePanic()

		switch string(ctx.Path()) {
		case "/api/run":
			server.handleRun(ctx)
		case "/api/get":
			server.handleGet(ctx)
		case "/api/all":
			server.handleAll(ctx)
		case "/api/find":
			server.handleFind(ctx)
		case "/api/delete":
			server.handleDelete(ctx)
		case "/api/clear":
			server.handleClear(ctx)
		case "/api/classify":
			server.handleClassify(ctx)
		default:
			ctx.Error("Unsupported path", fasthttp.StatusNotFound)
		}
	})

	server.srv = &fasthttp.Server{Handler: router}
	return server, nil
}

// SetLogger waits for a running benchmark to finish before swapping loggers.
func (s *Server) SetLogger(log *zipologger.Logger) {
	s.Lock()
	defer s.Unlock()
	s.log = log
	s.runner.SetLogger(log)
}

// l = 0=OFF,1=URL,2=DATA,3=RESPONSE
func (s *Server) SetLoggingLevel(l int) {
	s.Lock()
	defer s.Unlock()
	s.logsLevel = l
}

func (s *Server) logger() (*zipologger.Logger, int) {
	s.RLock()
	defer s.RUnlock()
	return s.log, s.logsLevel
}

func (s *Server) GetFasthttpServer() *fasthttp.Server {
	return s.srv
}

func (s *Server) GetStorage() *history.Store {
	return s.storage
}

// RunKinds benchmarks kinds one after another and stores every result.
// An empty list means every configured kind. Runs never overlap.
func (s *Server) RunKinds(kinds []bigomap.Kind) ([]int64, error) {
	s.Lock()
	defer s.Unlock()

	if len(kinds) == 0 {
		kinds = s.kinds
	}

	results, err := s.runner.RunAll(kinds)
	ids := make([]int64, 0, len(results))
	for _, r := range results {
		ids = append(ids, s.storage.Add(r))
	}
	return ids, err
}

// EnableRunsEvery reruns all configured kinds on every tick.
func (s *Server) EnableRunsEvery(interval time.Duration) {
	s.Lock()
	defer s.Unlock()

	s.stopRuns()
	s.runsTicker = time.NewTicker(interval)
	s.runsDone = make(chan struct{})
	ticker, done := s.runsTicker, s.runsDone
	go func() {
		defer zipologger.HandlePanic()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
			}

			ids, err := s.RunKinds(nil)
			if err != nil {
				s.logf("ERROR: scheduled run: %v", err)
				continue
			}
			s.logf("scheduled run stored %v", ids)
		}
	}()
}

// stopRuns must be called with the lock held.
func (s *Server) stopRuns() {
	if s.runsTicker != nil {
		s.runsTicker.Stop()
		s.runsTicker = nil
	}
	if s.runsDone != nil {
		close(s.runsDone)
		s.runsDone = nil
	}
}

func (s *Server) logf(format string, args ...interface{}) {
	if log, _ := s.logger(); log != nil {
		log.Print(fmt.Sprintf(format, args...))
	}
}

func (s *Server) respondWithError(ctx *fasthttp.RequestCtx, message string) {
	s.logAction(ctx, "ERROR", message)

	ctx.SetStatusCode(fasthttp.StatusInternalServerError)
	ctx.SetBodyString(message)
}

func (s *Server) respondWithSuccess(ctx *fasthttp.RequestCtx, response interface{}) {
	s.logAction(ctx, response)

	ctx.SetStatusCode(fasthttp.StatusOK)
	if response != nil {
		body, _ := json.Marshal(response)
		ctx.SetContentType("application/json")
		ctx.SetBody(body)
	}
}

func (s *Server) logAction(ctx *fasthttp.RequestCtx, response ...interface{}) {
	log, level := s.logger()
	if log == nil {
		return
	}
	switch level {
	case 0:
		return
	case 1:
		log.Printf("%s : %s", ctx.RemoteIP().String(), string(ctx.Request.URI().Path()))
	case 2:
		log.Printf("%s : %s [%s%s]", ctx.RemoteIP().String(), string(ctx.Request.URI().Path()), ctx.QueryArgs().String(), string(ctx.PostBody()))
	default:
		log.Printf("%s : %s [%s%s]", ctx.RemoteIP().String(), string(ctx.Request.URI().Path()), ctx.QueryArgs().String(), string(ctx.PostBody()))
		ret := ""
		for _, r := range response {
			if r != nil {
				ret += fmt.Sprintf("%+v ", r)
			}
		}
		if ret != "" {
			log.Printf("%s", ret)
		}
	}
}

func (s *Server) handleRun(ctx *fasthttp.RequestCtx) {
	var req struct {
		Kind string `json:"kind"` //empty = every configured kind
	}
	if body := ctx.PostBody(); len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			s.respondWithError(ctx, err.Error())
			return
		}
	}

	var kinds []bigomap.Kind
	if req.Kind != "" {
		kind, err := bigomap.ParseKind(req.Kind)
		if err != nil {
			s.respondWithError(ctx, err.Error())
			return
		}
		kinds = []bigomap.Kind{kind}
	}

	ids, err := s.RunKinds(kinds)
	if err != nil {
		s.respondWithError(ctx, err.Error())
		return
	}
	s.respondWithSuccess(ctx, map[string][]int64{"ids": ids})
}

func (s *Server) handleGet(ctx *fasthttp.RequestCtx) {
	id, err := strconv.ParseInt(string(ctx.FormValue("id")), 10, 64)
	if err != nil {
		s.respondWithError(ctx, err.Error())
		return
	}
	r, found := s.storage.Get(id)
	if !found {
		s.respondWithSuccess(ctx, nil)
		return
	}
	s.respondWithSuccess(ctx, r)
}

func (s *Server) handleAll(ctx *fasthttp.RequestCtx) {
	s.respondWithSuccess(ctx, s.storage.GetAll())
}

func (s *Server) handleFind(ctx *fasthttp.RequestCtx) {
	kind, err := bigomap.ParseKind(string(ctx.FormValue("kind")))
	if err != nil {
		s.respondWithError(ctx, err.Error())
		return
	}
	s.respondWithSuccess(ctx, s.storage.FindKind(kind))
}

func (s *Server) handleDelete(ctx *fasthttp.RequestCtx) {
	id, err := strconv.ParseInt(string(ctx.FormValue("id")), 10, 64)
	if err != nil {
		s.respondWithError(ctx, err.Error())
		return
	}
	s.storage.Delete(id)
	s.respondWithSuccess(ctx, nil)
}

func (s *Server) handleClear(ctx *fasthttp.RequestCtx) {
	s.storage.Clear()
	s.respondWithSuccess(ctx, nil)
}

// handleClassify analyzes runtimes measured elsewhere.
func (s *Server) handleClassify(ctx *fasthttp.RequestCtx) {
	var samples complexity.Samples
	if err := json.Unmarshal(ctx.PostBody(), &samples); err != nil {
		s.respondWithError(ctx, err.Error())
		return
	}
	s.respondWithSuccess(ctx, complexity.Analyze(samples))
}
