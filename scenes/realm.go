package scenes

import (
	"image/color"
	"log"
	"sync"
	"time"

	cfg "github.com/automoto/cooter/config"
	"github.com/automoto/cooter/systems"
	"github.com/automoto/cooter/systems/factory"
	"github.com/automoto/cooter/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RealmScene is the turtle walking around one realm at a time. Portals
// swap realms inside the same scene.
type RealmScene struct {
	ecs          *ecs.ECS
	hub          *ui.HubUI
	sceneChanger SceneChanger
	session      *Session
	once         sync.Once
}

func NewRealmScene(sc SceneChanger, session *Session) *RealmScene {
	return &RealmScene{sceneChanger: sc, session: session}
}

func (rs *RealmScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()

	if systems.IsHubOpen(rs.ecs) {
		rs.hub.Update()
	}

	if systems.GetOrCreatePause(rs.ecs).ExitRequested {
		rs.leave()
	}
}

// leave records the score, saves and returns to the main menu.
func (rs *RealmScene) leave() {
	svc := systems.GetServices(rs.ecs)
	systems.SubmitScore(svc, time.Now())
	systems.Autosave(rs.ecs)
	systems.StopLoop(rs.ecs)
	rs.sceneChanger.ChangeScene(NewMenuScene(rs.sceneChanger, rs.session))
}

func (rs *RealmScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)

	if systems.IsHubOpen(rs.ecs) {
		rs.hub.Draw(screen)
	}
}

func (rs *RealmScene) configure() {
	// Render cues up front so the first pickup does not stall a frame
	systems.PreloadAllSFX()

	e := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first, even when paused for menu sounds)
	e.AddSystem(systems.UpdateAudio)

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePause)
	e.AddSystem(systems.UpdateHub)
	e.AddSystem(systems.UpdateSettingsMenu)
	e.AddSystem(systems.UpdateFrame)

	// Game systems wrapped with pause and hub checks
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateNPCs))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateGrains))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateDialogue))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePortals))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	// Realm switches apply after every other system has seen the frame
	e.AddSystem(systems.UpdateRealm)

	// Add renderers
	e.AddRenderer(cfg.Default, systems.DrawRealm)
	e.AddRenderer(cfg.Default, systems.DrawGrains)
	e.AddRenderer(cfg.Default, systems.DrawActors)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDialogue)
	e.AddRenderer(cfg.Default, systems.DrawPause)
	e.AddRenderer(cfg.Default, systems.DrawSettingsMenu)

	rs.ecs = e

	systems.AttachServices(e, rs.session.Services)

	start := cfg.Realm.Start
	if _, err := factory.CreateRealmState(e, rs.session.Realms, start); err != nil {
		log.Printf("Warning: %v, falling back to %s", err, cfg.Realm.Order[0])
		start = cfg.Realm.Order[0]
		if _, err := factory.CreateRealmState(e, rs.session.Realms, start); err != nil {
			log.Fatalf("No playable realm: %v", err)
		}
	}
	systems.EnterRealm(e, start)

	rs.hub = ui.NewHubUI(e)
}
