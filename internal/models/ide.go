package models

// IDE is the closed set of editors warden knows how to launch.
type IDE string

const (
	IDEVSCode   IDE = "vscode"
	IDECursor   IDE = "cursor"
	IDEPhpStorm IDE = "phpstorm"
	IDEWebStorm IDE = "webstorm"
	IDEIntelliJ IDE = "intellij"
	IDESublime  IDE = "sublime"
	IDEVim      IDE = "vim"
	IDENeovim   IDE = "neovim"
	IDEZed      IDE = "zed"
)

// IDEConfig describes how to present and launch one IDE.
type IDEConfig struct {
	ID      IDE
	Name    string
	Command string
}

// IDEConfigs maps every known IDE to its display name and launch command.
var IDEConfigs = map[IDE]IDEConfig{
	IDEVSCode:   {ID: IDEVSCode, Name: "VS Code", Command: "code"},
	IDECursor:   {ID: IDECursor, Name: "Cursor", Command: "cursor"},
	IDEPhpStorm: {ID: IDEPhpStorm, Name: "PHPStorm", Command: "phpstorm"},
	IDEWebStorm: {ID: IDEWebStorm, Name: "WebStorm", Command: "webstorm"},
	IDEIntelliJ: {ID: IDEIntelliJ, Name: "IntelliJ IDEA", Command: "idea"},
	IDESublime:  {ID: IDESublime, Name: "Sublime Text", Command: "subl"},
	IDEVim:      {ID: IDEVim, Name: "Vim", Command: "vim"},
	IDENeovim:   {ID: IDENeovim, Name: "Neovim", Command: "nvim"},
	IDEZed:      {ID: IDEZed, Name: "Zed", Command: "zed"},
}

// CoerceIDE maps an arbitrary string onto a known IDE, defaulting to zed.
func CoerceIDE(raw string) IDE {
	if _, ok := IDEConfigs[IDE(raw)]; ok {
		return IDE(raw)
	}
	return IDEZed
}
