package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/phil-mansfield/gravbox"
	"github.com/phil-mansfield/gravbox/io"
)

// FileGroup contains utility files for logging and writing profiles to.
type FileGroup struct {
	log, prof *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	var (
		simulate, exampleConfig string
	)
	vars := map[string]*string{
		"Simulate":      &simulate,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&simulate, "Simulate", "",
		"Configuration file for [Simulation] mode.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. The only accepted argument is 'Simulation'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Simulate":
		con, err := io.ReadSimulationConfig(simulate)
		if err != nil {
			log.Fatal(err.Error())
		}
		simulateMain(con)

	case "ExampleConfig":
		switch exampleConfig {
		case "Simulation":
			fmt.Println(io.ExampleSimulationFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. The only recognized " +
					"argument is 'Simulation'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but gravbox "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func simulateMain(fileCon *io.SimulationConfig) {
	fg := simulateSetupIO(fileCon)
	defer fg.Close()

	log.Println("Running Simulation main.")

	con, err := fileCon.Config(uint64(time.Now().UnixNano()))
	if err != nil {
		log.Fatal(err.Error())
	}

	sim := newSimulation(fileCon, con)
	sim.Log(true)

	simCon := sim.Config()
	if sim.Relaxed() > 0 {
		log.Printf(
			"%d of %d particles could not be placed without overlap.",
			sim.Relaxed(), simCon.N,
		)
	}
	log.Printf(
		"Running %d steps of %d particles with %d worker(s) and the %s "+
			"impulse model.",
		fileCon.Steps, simCon.N, simCon.Workers, simCon.ImpulseModel,
	)

	if !fileCon.ValidPlotFile() {
		sim.Run(fileCon.Steps, fileCon.LogInterval)
		return
	}

	rec := newRecorder(fileCon.Steps)
	rec.Record(sim)
	sim.RunWith(fileCon.Steps, fileCon.LogInterval, func() { rec.Record(sim) })

	log.Printf("Writing diagnostics plot to %s", fileCon.PlotFile)
	rec.Plot(fileCon.PlotFile)
}

func newSimulation(
	fileCon *io.SimulationConfig, con gravbox.Config,
) *gravbox.Simulation {
	if !fileCon.ValidInitialConditions() {
		sim, err := gravbox.New(con)
		if err != nil {
			log.Fatal(err.Error())
		}
		return sim
	}

	ps, err := io.ReadParticles(fileCon.InitialConditions, con.Radius)
	if err != nil {
		log.Fatal(err.Error())
	}
	sim, err := gravbox.NewFromSet(con, ps)
	if err != nil {
		log.Fatal(err.Error())
	}
	return sim
}

func simulateSetupIO(con *io.SimulationConfig) *FileGroup {
	var err error
	fg := &FileGroup{}

	if con.ValidLogFile() {
		fg.log, err = os.Create(con.LogFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.SetOutput(fg.log)
	}

	if con.ValidProfileFile() {
		fg.prof, err = os.Create(con.ProfileFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		err = pprof.StartCPUProfile(fg.prof)
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	return fg
}
