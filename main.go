package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/cooter/assets"
	"github.com/automoto/cooter/config"
	"github.com/automoto/cooter/fonts"
	"github.com/automoto/cooter/scenes"
	"github.com/automoto/cooter/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

const appName = "cooter"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(session *scenes.Session) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewRealmScene(g, session)
	} else {
		g.scene = scenes.NewMenuScene(g, session)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in configuration")
	skipMenu := flag.Bool("skip-menu", false, "start walking immediately")
	birdsEye := flag.Bool("birds-eye", false, "start with bird's-eye steering")
	rpcURL := flag.String("rpc", "", "websocket JSON-RPC endpoint of the chain node")
	verbose := flag.Bool("verbose", false, "log system decisions")
	flag.Parse()

	if *configPath != "" {
		f, err := config.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		config.Apply(f)
	}
	config.Debug.SkipMenu = config.Debug.SkipMenu || *skipMenu
	config.Debug.Verbose = config.Debug.Verbose || *verbose
	if *rpcURL != "" {
		config.Wallet.RPCURL = *rpcURL
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	realms, err := assets.NewRealmLoader(config.Realm.PixelsPerUnit).LoadRealms()
	if err != nil {
		log.Fatalf("Failed to load realms: %v", err)
	}

	svc := systems.OpenServices(appName)
	if steering, err := config.ParseSteering(svc.Settings.Steering); err == nil {
		config.Movement.DefaultSteering = steering
	} else {
		log.Printf("Warning: Ignoring saved steering: %v", err)
	}
	if *birdsEye {
		config.Movement.DefaultSteering = config.SteeringBirdsEye
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Cooter")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	systems.ApplySettings(svc.Settings)

	session := &scenes.Session{
		Services: svc,
		Realms:   realms,
		Quit: func() {
			systems.Shutdown(svc)
			os.Exit(0)
		},
	}

	if err := ebiten.RunGame(NewGame(session)); err != nil {
		systems.Shutdown(svc)
		log.Fatal(err)
	}
	systems.Shutdown(svc)
}
