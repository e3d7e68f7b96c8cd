package main

import (
	"log"

	"chinese-learning-helper/internal/config"
	"chinese-learning-helper/internal/controllers"
	"chinese-learning-helper/internal/logger"
	"chinese-learning-helper/internal/services"
	"chinese-learning-helper/internal/shutdown"
	"chinese-learning-helper/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const AppVersion = "2.0.0"

// Application bundles the wired components of the running program.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	cfg     *config.Config
	logger  logger.Logger

	store   *services.LessonStore
	chinese *services.ChineseService

	controller *controllers.MainController
	mainWindow *views.MainWindow
	menuView   *views.MenuView
	lessonView *views.LessonView

	shutdownManager *shutdown.Manager
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration loading failed: %v", err)
	}

	appLogger := logger.NewConsoleLogger(logger.ParseLevel(cfg.Log.Level))

	application, err := NewApplication(cfg, appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	application.Run()
}

// NewApplication creates and wires all components via constructor
// injection: services first, then the controller, then the views.
func NewApplication(cfg *config.Config, appLogger logger.Logger) (*Application, error) {
	fyneApp := app.NewWithID(cfg.App.ID)
	window := fyneApp.NewWindow(cfg.App.Name)
	window.Resize(fyne.NewSize(float32(cfg.App.WindowWidth), float32(cfg.App.WindowHeight)))
	window.CenterOnScreen()

	appLogger.Info("main", "application starting", map[string]interface{}{
		"version":  AppVersion,
		"data_dir": cfg.Storage.DataDir,
	})

	store, err := services.NewLessonStore(cfg.Storage.DataDir, appLogger)
	if err != nil {
		return nil, err
	}
	chinese := services.NewChineseService(cfg.Dictionary.Path, appLogger)

	controller := controllers.NewMainController(store, chinese, appLogger)

	menuView := views.NewMenuView(cfg.Storage.DataDir)
	lessonView := views.NewLessonView()
	mainWindow := views.NewMainWindow(window, menuView, lessonView)

	controller.SetViews(menuView, lessonView, mainWindow)

	application := &Application{
		fyneApp:         fyneApp,
		window:          window,
		cfg:             cfg,
		logger:          appLogger,
		store:           store,
		chinese:         chinese,
		controller:      controller,
		mainWindow:      mainWindow,
		menuView:        menuView,
		lessonView:      lessonView,
		shutdownManager: shutdown.NewManager(appLogger),
	}

	application.wireViewEvents()
	application.setupWindowEvents()
	application.setupShutdown()

	return application, nil
}

// wireViewEvents connects view events to controller commands. Modal
// dialogs sit between the raw view event and the command so destructive
// actions are always confirmed.
func (a *Application) wireViewEvents() {
	confirmDelete := func(filename string) {
		a.mainWindow.ShowDeleteLessonConfirm(filename, func() {
			a.controller.DeleteLesson(filename)
		})
	}

	a.menuView.SetLessonSelectedHandler(a.controller.OpenLesson)
	a.menuView.SetRefreshHandler(a.controller.RefreshLessons)
	a.menuView.SetAddLessonHandler(func() {
		a.mainWindow.ShowCreateLessonModal(a.controller.CreateLesson)
	})
	a.menuView.SetDuplicateHandler(func(filename string) {
		a.mainWindow.ShowDuplicateLessonModal(filename, func(newName string) {
			a.controller.DuplicateLesson(filename, newName)
		})
	})
	a.menuView.SetDeleteLessonHandler(confirmDelete)

	a.lessonView.SetBackHandler(a.controller.ShowMenu)
	a.lessonView.SetWordAddHandler(a.controller.AddWord)
	a.lessonView.SetWordDeleteHandler(a.controller.DeleteWord)
	a.lessonView.SetLessonDeleteHandler(confirmDelete)
}

// setupWindowEvents configures window lifecycle events
func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.mainWindow.ShowConfirm(
			"Exit Application",
			"Are you sure you want to exit?",
			func(confirmed bool) {
				if confirmed {
					a.window.Close()
				}
			},
		)
	})

	a.window.SetOnClosed(func() {
		a.logger.Info("main", "window closed", nil)
		a.shutdownManager.Shutdown()
	})
}

// setupShutdown registers shutdown steps and starts the signal listener.
func (a *Application) setupShutdown() {
	a.shutdownManager.Register(shutdown.Func(func() {
		fyne.Do(func() {
			a.fyneApp.Quit()
		})
	}))
	a.shutdownManager.Listen()
}

// Run shows the initial listing and enters the Fyne event loop
// (blocking until the window closes).
func (a *Application) Run() {
	a.controller.RefreshLessons()
	a.window.ShowAndRun()

	a.logger.Info("main", "application terminated", nil)
}
