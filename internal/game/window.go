package game

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/lallassu/skyflyer/internal/config"
)

func initWindow(cfg config.WindowConfig) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	return window, nil
}

// setFullscreen switches between the primary monitor and the windowed layout.
func setFullscreen(window *glfw.Window, cfg config.WindowConfig, on bool) {
	if on {
		window.SetMonitor(glfw.GetPrimaryMonitor(), 0, 0, cfg.FullscreenWidth, cfg.FullscreenHeight, cfg.RefreshRate)
		return
	}
	window.SetMonitor(nil, cfg.WindowedX, cfg.WindowedY, cfg.WindowedWidth, cfg.WindowedHeight, cfg.RefreshRate)
}
