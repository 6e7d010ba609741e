package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"

	"ebiten-pathsim/config"
	"ebiten-pathsim/data"
	"ebiten-pathsim/render"
	"ebiten-pathsim/screens"
	"ebiten-pathsim/sim"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pathsim: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	// Command-line flags override the environment
	frontend := flag.String("frontend", string(settings.Frontend), "Frontend: window or terminal")
	profileMode := flag.String("profile", settings.Profile, "Profile mode: cpu or mem")
	entities := flag.Int("entities", settings.InitialEntities, "Number of entities to spawn at start")
	templates := flag.String("templates", settings.TemplateDir, "Directory of JSON spawn templates")
	seed := flag.Uint64("seed", settings.Seed, "Random seed, 0 for a random run")
	flag.Parse()

	settings.Frontend = config.Frontend(*frontend)
	settings.Profile = *profileMode
	settings.InitialEntities = min(*entities, config.MaxEntities)
	settings.TemplateDir = *templates
	settings.Seed = *seed

	if settings.Frontend != config.FrontendWindow && settings.Frontend != config.FrontendTerminal {
		return fmt.Errorf("unknown frontend %q", settings.Frontend)
	}

	logger, closer, err := config.NewLogger(settings)
	if err != nil {
		return err
	}
	defer closer.Close()
	log := logrus.NewEntry(logger)

	if !settings.EnvFileLoaded {
		log.Debug("no .env file found, using environment and defaults")
	}

	switch settings.Profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", settings.Profile)
	}

	manager := data.NewEntityTemplateManager()
	if settings.TemplateDir != "" {
		err = manager.LoadTemplatesFromDirectory(settings.TemplateDir)
	} else {
		err = manager.LoadDefaults()
	}
	if err != nil {
		return err
	}

	// Textures are only drawable in the window frontend
	var loader render.TextureLoader = render.NopLoader{}
	textures := render.NewTextures()
	if settings.Frontend == config.FrontendWindow {
		loader = textures
	}

	simulation, err := sim.New(sim.Options{
		Templates: manager,
		Textures:  loader,
		Seed:      settings.Seed,
		Logger:    log,
	})
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"frontend":  settings.Frontend,
		"templates": manager.Len(),
		"seed":      settings.Seed,
	}).Info("starting simulation")

	simulation.Populate(settings.InitialEntities)
	root := screens.NewSimScreen(simulation)

	if settings.Frontend == config.FrontendTerminal {
		return runTerminal(root, log)
	}
	return runWindow(NewGame(root, textures, log), settings.Fullscreen)
}
