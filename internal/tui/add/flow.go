package add

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	huh "github.com/charmbracelet/huh"
	"github.com/yuuhLKT/warden/internal/models"
	"github.com/yuuhLKT/warden/internal/registry"
	"github.com/yuuhLKT/warden/internal/tui"
)

// Flow orchestrates the add command using huh forms.
type Flow struct {
	urlSuffix string
	theme     *huh.Theme
}

// NewFlow constructs a Flow. The suffix seeds the URL defaults
// (slug.suffix) for every service.
func NewFlow(urlSuffix string) *Flow {
	return &Flow{
		urlSuffix: urlSuffix,
		theme:     tui.NewHuhTheme(),
	}
}

// Run executes the forms sequentially; returns nil form on user abort.
func (f *Flow) Run() (*registry.ProjectForm, error) {
	name, folder, err := f.inputProject()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, nil
		}
		return nil, err
	}

	var services []registry.ServiceForm
	for {
		svc, err := f.inputService(name, folder, len(services))
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, nil
			}
			return nil, err
		}
		services = append(services, svc)

		more, err := f.confirmAnother()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, nil
			}
			return nil, err
		}
		if !more {
			break
		}
	}

	return &registry.ProjectForm{
		Name:     name,
		Folder:   folder,
		Services: services,
	}, nil
}

func (f *Flow) inputProject() (string, string, error) {
	name := ""
	folder := ""

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Placeholder("my-app").
				Value(&name).
				Validate(requireNonEmpty("project name")),
			huh.NewInput().
				Title("Project folder").
				Placeholder("/home/you/workspace/my-app").
				Value(&folder).
				Validate(requireNonEmpty("project folder")),
		).
			Title("New Project").
			Description("Register a project and its services."),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen())

	if err := form.Run(); err != nil {
		return "", "", err
	}

	return strings.TrimSpace(name), strings.TrimSpace(folder), nil
}

func (f *Flow) inputService(projectName, folder string, index int) (registry.ServiceForm, error) {
	defaultName := "frontend"
	defaultType := string(models.ServiceTypeFrontend)
	if index > 0 {
		defaultName = "backend"
		defaultType = string(models.ServiceTypeBackend)
	}

	svcName := defaultName
	svcType := defaultType
	svcStack := string(models.StackReact)
	svcPath := folder
	svcURL := registry.ServiceURL(projectName, f.urlSuffix)
	svcPort := strconv.Itoa(models.DefaultPort)
	svcCommand := models.DefaultCommand

	stackOpts := make([]huh.Option[string], 0, len(models.Stacks))
	for _, stack := range models.Stacks {
		stackOpts = append(stackOpts, huh.NewOption(string(stack), string(stack)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Service name").
				Value(&svcName).
				Validate(requireNonEmpty("service name")),
			huh.NewSelect[string]().
				Title("Service type").
				Options(
					huh.NewOption("frontend", string(models.ServiceTypeFrontend)),
					huh.NewOption("backend", string(models.ServiceTypeBackend)),
				).
				Value(&svcType),
			huh.NewSelect[string]().
				Title("Stack").
				Options(stackOpts...).
				Value(&svcStack),
		).
			Title(fmt.Sprintf("Service %d", index+1)),
		huh.NewGroup(
			huh.NewInput().
				Title("Path").
				Value(&svcPath).
				Validate(requireNonEmpty("service path")),
			huh.NewInput().
				Title("Local URL").
				Description("host.suffix, e.g. my-app."+f.urlSuffix).
				Value(&svcURL),
			huh.NewInput().
				Title("Port").
				Value(&svcPort).
				Validate(validatePort),
			huh.NewInput().
				Title("Dev command").
				Value(&svcCommand).
				Validate(requireNonEmpty("dev command")),
		).
			Title(fmt.Sprintf("Service %d", index+1)),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen())

	if err := form.Run(); err != nil {
		return registry.ServiceForm{}, err
	}

	port, _ := strconv.Atoi(strings.TrimSpace(svcPort))

	return registry.ServiceForm{
		Name:    strings.TrimSpace(svcName),
		Type:    models.CoerceServiceType(svcType),
		Stack:   models.CoerceStack(svcStack),
		Path:    strings.TrimSpace(svcPath),
		URL:     strings.TrimSpace(svcURL),
		Port:    port,
		Command: strings.TrimSpace(svcCommand),
	}, nil
}

func (f *Flow) confirmAnother() (bool, error) {
	more := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Add another service?").
				Affirmative("Yes").
				Negative("No").
				Value(&more),
		),
	).
		WithTheme(f.theme).
		WithShowHelp(true).
		WithProgramOptions(tea.WithAltScreen())

	if err := form.Run(); err != nil {
		return false, err
	}

	return more, nil
}

func requireNonEmpty(what string) func(string) error {
	return func(v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s cannot be empty", what)
		}
		return nil
	}
}

func validatePort(v string) error {
	port, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if port < 1024 || port > 65535 {
		return fmt.Errorf("port must be between 1024 and 65535")
	}
	return nil
}
