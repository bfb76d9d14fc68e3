// Command example prints the Big-O report of every map kind to the console.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/MasterDimmy/zipologger"
	"github.com/spf13/afero"

	"github.com/goupdate/bigomap/bench"
	"github.com/goupdate/bigomap/config"
)

func main() {
	defer zipologger.Wait()
	defer zipologger.HandlePanic()

	path := flag.String("config", "bigomap.json", "JSON config, optional")
	flag.Parse()

	cfg, err := config.Load(afero.NewOsFs(), *path, true)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if cfg.LogFile == "" {
		cfg.LogFile = config.Default().LogFile
	}
	log := zipologger.NewLogger(cfg.LogFile, 1, 1, 1, false)

	kinds, err := cfg.ParsedKinds()
	if err != nil {
		log.Print(err.Error())
		return
	}

	runner, err := bench.NewRunner(cfg.Bench())
	if err != nil {
		log.Print(err.Error())
		return
	}
	runner.SetLogger(log)

	fmt.Print("***Running Big-O Report of Linear, Sorted, and Hashed Maps***\n\n")
	for _, kind := range kinds {
		res, err := runner.Run(kind)
		if err != nil {
			log.Printf("ERROR: %v", err)
			fmt.Fprintln(os.Stderr, err)
			return
		}
		fmt.Printf("%s map results:\n\n%s", kind, res)
		if res.Collisions > 0 {
			fmt.Printf("collisions: %d\n\n", res.Collisions)
		}
	}
}
