// Command sageconsole is the reference host for the engine core: it opens
// a window, loads a LogCon script passed on the command line (or a tiny
// built-in demo scene when none is given), and runs the ECS/scripting loop
// until the window closes.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core"
	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/gameobject"
	"github.com/AGamesStudios/SAGE-Engine-sub003/internal/core/logx"
)

const demoScript = `entity Demo {
  var speed = 60
  on create {
    self.color = "cornflowerblue"
  }
  on update(dt) {
    self.x = self.x + speed * dt
    if self.x > 1280 {
      self.x = 0
    }
  }
}`

func main() {
	scriptPath := flag.String("script", "", "path to a LogCon script; defaults to a built-in demo scene")
	flag.Parse()

	logger := logx.Default("sageconsole")
	game := core.NewGame(logger)

	source := demoScript
	path := "demo.logcon"
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "sageconsole:", err)
			os.Exit(1)
		}
		source, path = string(data), *scriptPath
	}

	compiled, err := game.LoadScript(path, source)
	if err != nil {
		fmt.Fprintln(os.Stderr, "sageconsole:", err)
		os.Exit(1)
	}
	for _, decl := range compiled.Script.Entities {
		obj := gameobject.New(decl.Name)
		game.Spawn(obj, decl)
	}

	if err := game.Run(); err != nil {
		logger.Criticalf("run: %v", err)
		os.Exit(1)
	}
}
