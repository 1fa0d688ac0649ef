package models

// Framework identifies what the scanner recognized in a service folder.
// The set deliberately covers far more than the Stack taxonomy; ToStack
// collapses it onto the closed set the rest of the application uses.
type Framework string

const (
	// Frontend
	FrameworkReact     Framework = "react"
	FrameworkVue       Framework = "vue"
	FrameworkAngular   Framework = "angular"
	FrameworkSvelte    Framework = "svelte"
	FrameworkSvelteKit Framework = "svelteKit"
	FrameworkSolid     Framework = "solid"
	FrameworkQwik      Framework = "qwik"
	FrameworkPreact    Framework = "preact"

	// Meta frameworks
	FrameworkNextJS Framework = "nextJs"
	FrameworkNuxtJS Framework = "nuxtJs"
	FrameworkRemix  Framework = "remix"
	FrameworkAstro  Framework = "astro"
	FrameworkGatsby Framework = "gatsby"

	// Build tools
	FrameworkVite    Framework = "vite"
	FrameworkWebpack Framework = "webpack"

	// Backend - Node
	FrameworkExpress  Framework = "express"
	FrameworkFastify  Framework = "fastify"
	FrameworkKoa      Framework = "koa"
	FrameworkNestJS   Framework = "nestJs"
	FrameworkAdonisJS Framework = "adonisJs"
	FrameworkStrapi   Framework = "strapi"

	// Backend - Python
	FrameworkDjango  Framework = "django"
	FrameworkFlask   Framework = "flask"
	FrameworkFastAPI Framework = "fastApi"

	// Backend - PHP
	FrameworkLaravel Framework = "laravel"
	FrameworkSymfony Framework = "symfony"

	// Backend - Ruby
	FrameworkRails   Framework = "rails"
	FrameworkSinatra Framework = "sinatra"

	// Backend - Go
	FrameworkGin   Framework = "gin"
	FrameworkEcho  Framework = "echo"
	FrameworkFiber Framework = "fiber"
	FrameworkChi   Framework = "chi"

	// Backend - Rust
	FrameworkActixWeb Framework = "actixWeb"
	FrameworkAxum     Framework = "axum"
	FrameworkRocket   Framework = "rocket"

	// Desktop / Mobile
	FrameworkTauri       Framework = "tauri"
	FrameworkElectron    Framework = "electron"
	FrameworkReactNative Framework = "reactNative"
	FrameworkExpo        Framework = "expo"

	// Generic runtimes
	FrameworkNode   Framework = "node"
	FrameworkDeno   Framework = "deno"
	FrameworkBun    Framework = "bun"
	FrameworkRust   Framework = "rust"
	FrameworkPython Framework = "python"
	FrameworkPHP    Framework = "php"
	FrameworkGo     Framework = "go"
	FrameworkRuby   Framework = "ruby"

	FrameworkUnknown Framework = "unknown"
)

// ToStack collapses a framework onto the closed Stack taxonomy.
func (f Framework) ToStack() Stack {
	switch f {
	case FrameworkReact, FrameworkPreact, FrameworkSolid, FrameworkQwik,
		FrameworkRemix, FrameworkGatsby, FrameworkReactNative, FrameworkExpo:
		return StackReact
	case FrameworkNextJS:
		return StackNext
	case FrameworkVue, FrameworkNuxtJS:
		return StackVue
	case FrameworkAngular:
		return StackAngular
	case FrameworkSvelte, FrameworkSvelteKit:
		return StackSvelte
	case FrameworkAstro, FrameworkVite, FrameworkWebpack, FrameworkAdonisJS,
		FrameworkStrapi, FrameworkElectron, FrameworkNode, FrameworkDeno, FrameworkBun:
		return StackNode
	case FrameworkExpress, FrameworkFastify, FrameworkKoa:
		return StackExpress
	case FrameworkNestJS:
		return StackNestJS
	case FrameworkDjango, FrameworkFastAPI, FrameworkPython:
		return StackDjango
	case FrameworkFlask:
		return StackFlask
	case FrameworkLaravel:
		return StackLaravel
	case FrameworkSymfony, FrameworkPHP:
		return StackPHP
	case FrameworkRails, FrameworkSinatra, FrameworkRuby:
		return StackRails
	case FrameworkGin, FrameworkEcho, FrameworkFiber, FrameworkChi, FrameworkGo:
		return StackGo
	case FrameworkActixWeb, FrameworkAxum, FrameworkRocket, FrameworkRust, FrameworkTauri:
		return StackRust
	default:
		return StackOther
	}
}

// DefaultPort returns the conventional dev-server port for the framework,
// or 0 when there is no meaningful default (desktop shells, unknown).
func (f Framework) DefaultPort() int {
	switch f {
	case FrameworkReact, FrameworkPreact, FrameworkNextJS, FrameworkNuxtJS,
		FrameworkRemix, FrameworkNestJS, FrameworkExpress, FrameworkFastify,
		FrameworkKoa, FrameworkRails, FrameworkFiber, FrameworkNode,
		FrameworkDeno, FrameworkBun, FrameworkRuby:
		return 3000
	case FrameworkVue, FrameworkSvelte, FrameworkSvelteKit, FrameworkSolid,
		FrameworkQwik, FrameworkVite, FrameworkWebpack:
		return 5173
	case FrameworkAngular:
		return 4200
	case FrameworkAstro:
		return 4321
	case FrameworkGatsby, FrameworkDjango, FrameworkFastAPI, FrameworkLaravel,
		FrameworkSymfony, FrameworkRocket, FrameworkPython, FrameworkPHP:
		return 8000
	case FrameworkFlask:
		return 5000
	case FrameworkAdonisJS:
		return 3333
	case FrameworkStrapi:
		return 1337
	case FrameworkSinatra:
		return 4567
	case FrameworkGin, FrameworkEcho, FrameworkChi, FrameworkActixWeb,
		FrameworkAxum, FrameworkRust, FrameworkGo:
		return 8080
	case FrameworkReactNative, FrameworkExpo:
		return 8081
	default:
		return 0
	}
}

// PackageManager identifies the tool managing a service's dependencies.
type PackageManager string

const (
	PMNpm      PackageManager = "npm"
	PMYarn     PackageManager = "yarn"
	PMPnpm     PackageManager = "pnpm"
	PMBun      PackageManager = "bun"
	PMDeno     PackageManager = "deno"
	PMCargo    PackageManager = "cargo"
	PMPip      PackageManager = "pip"
	PMPoetry   PackageManager = "poetry"
	PMComposer PackageManager = "composer"
	PMBundler  PackageManager = "bundler"
	PMGoMod    PackageManager = "goMod"
	PMMaven    PackageManager = "maven"
	PMGradle   PackageManager = "gradle"
	PMMix      PackageManager = "mix"
	PMUnknown  PackageManager = "unknown"
)

// RunPrefix is what precedes a script name when running it through the
// package manager ("npm run dev", "yarn dev", ...).
func (pm PackageManager) RunPrefix() string {
	switch pm {
	case PMNpm:
		return "npm run"
	case PMYarn:
		return "yarn"
	case PMPnpm:
		return "pnpm"
	case PMBun:
		return "bun run"
	case PMDeno:
		return "deno task"
	case PMCargo:
		return "cargo"
	case PMComposer:
		return "composer"
	case PMBundler:
		return "bundle exec"
	case PMGoMod:
		return "go"
	case PMMaven:
		return "mvn"
	case PMGradle:
		return "./gradlew"
	case PMMix:
		return "mix"
	default:
		return ""
	}
}

// InstallCommand returns the conventional dependency install command.
func (pm PackageManager) InstallCommand() string {
	switch pm {
	case PMNpm:
		return "npm install"
	case PMYarn:
		return "yarn install"
	case PMPnpm:
		return "pnpm install"
	case PMBun:
		return "bun install"
	case PMCargo:
		return "cargo build"
	case PMPip:
		return "pip install -r requirements.txt"
	case PMPoetry:
		return "poetry install"
	case PMComposer:
		return "composer install"
	case PMBundler:
		return "bundle install"
	case PMGoMod:
		return "go mod download"
	case PMMix:
		return "mix deps.get"
	default:
		return ""
	}
}

// MonorepoTool identifies how a multi-service repository declares its
// workspaces.
type MonorepoTool string

const (
	MonorepoNpmWorkspaces  MonorepoTool = "npmWorkspaces"
	MonorepoYarnWorkspaces MonorepoTool = "yarnWorkspaces"
	MonorepoPnpmWorkspaces MonorepoTool = "pnpmWorkspaces"
	MonorepoTurborepo      MonorepoTool = "turborepo"
	MonorepoNx             MonorepoTool = "nx"
	MonorepoCargoWorkspace MonorepoTool = "cargoWorkspace"
	MonorepoNone           MonorepoTool = "none"
)

// DetectedService is the scanner's read-only description of one runnable
// unit. Category and Stack are loosely typed on purpose: they cross the
// detection boundary as plain strings and must pass through the coercers
// before entering the domain model.
type DetectedService struct {
	Name         string
	Path         string
	RelativePath string

	Category string
	Stack    string

	Framework      Framework
	PackageManager PackageManager

	// Port is 0 when detection found none.
	Port int

	DevCommand     string
	BuildCommand   string
	StartCommand   string
	InstallCommand string

	IsDockerService   bool
	DockerServiceName string
}

// DetectedProject is the scanner's read-only description of one project
// folder and the services found inside it.
type DetectedProject struct {
	Name string
	Path string

	IsMonorepo   bool
	MonorepoTool MonorepoTool
	IsTauri      bool

	HasDocker        bool
	HasDockerCompose bool

	// Filled by git inspection after detection; empty when the folder is
	// not a git repository.
	GitRemote string
	GitBranch string

	RootPackageManager PackageManager

	Services   []DetectedService
	Workspaces []string
}
