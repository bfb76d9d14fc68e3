package main

import (
	"flag"
	"time"

	"github.com/MasterDimmy/go-ctrlc"
	"github.com/MasterDimmy/zipologger"
	"github.com/spf13/afero"

	"github.com/goupdate/bigomap/config"
	"github.com/goupdate/bigomap/server"
)

func main() {
	defer zipologger.Wait()
	defer zipologger.HandlePanic()

	path := flag.String("config", "bigomap.json", "JSON config, optional")
	every := flag.Duration("every", 0, "rerun all kinds at this interval, 0 = off")
	flag.Parse()

	var ctrl ctrlc.CtrlC
	log := zipologger.NewLogger("./logs/server.log", 1, 1, 1, false)

	cfg, err := config.Load(afero.NewOsFs(), *path, true)
	if err != nil {
		log.Print(err.Error())
		return
	}

	srv, err := server.New(cfg)
	if err != nil {
		log.Print(err.Error())
		return
	}

	if *every > 0 {
		srv.EnableRunsEvery(*every)
	}

	defer srv.Shutdown()
	defer ctrl.DeferThisToWaitCtrlC()

	go func() {
		defer zipologger.HandlePanic()

		start := time.Now()
		ids, err := srv.RunKinds(nil)
		if err != nil {
			log.Print("warmup error: " + err.Error())
		}
		log.Printf("warmup stored %v in %v", ids, time.Since(start))
	}()

	go func() {
		srv := srv.GetFasthttpServer()
		if srv != nil {
			log.Print("listening on " + cfg.Listen)
			err := srv.ListenAndServe(cfg.Listen)
			if err != nil {
				log.Print("server error: " + err.Error())
			}
		} else {
			log.Print("no srv server!")
		}
		ctrl.ForceStopProgram()
	}()

	ctrl.InterceptKill(true, func() {
		log.Println("software was stopped via Ctrl+C")
	})
}
