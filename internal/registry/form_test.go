package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuuhLKT/warden/internal/models"
)

func validForm() ProjectForm {
	return ProjectForm{
		Name:   "My App",
		Folder: "/home/u/apps/my-app",
		Services: []ServiceForm{
			{
				Name:    "web",
				Type:    models.ServiceTypeFrontend,
				Stack:   models.StackReact,
				Path:    "/home/u/apps/my-app",
				URL:     "my-app.test",
				Port:    3000,
				Command: "npm run dev",
			},
		},
	}
}

func TestProjectFormValid(t *testing.T) {
	form := validForm()
	require.NoError(t, form.Validate())
}

func TestProjectFormMissingFields(t *testing.T) {
	form := ProjectForm{}
	err := form.Validate()
	require.Error(t, err)

	errs, ok := err.(FieldErrors)
	require.True(t, ok)
	require.Contains(t, errs, "name")
	require.Contains(t, errs, "folder")
	require.Contains(t, errs, "services")
}

func TestProjectFormServiceValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ServiceForm)
		field  string
	}{
		{"empty name", func(s *ServiceForm) { s.Name = "  " }, "services[0].name"},
		{"empty path", func(s *ServiceForm) { s.Path = "" }, "services[0].path"},
		{"empty command", func(s *ServiceForm) { s.Command = "" }, "services[0].command"},
		{"url without suffix", func(s *ServiceForm) { s.URL = "my-app" }, "services[0].url"},
		{"url with scheme", func(s *ServiceForm) { s.URL = "http://my-app.test" }, "services[0].url"},
		{"privileged port", func(s *ServiceForm) { s.Port = 80 }, "services[0].port"},
		{"port too high", func(s *ServiceForm) { s.Port = 70000 }, "services[0].port"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.mutate(&form.Services[0])

			err := form.Validate()
			require.Error(t, err)

			errs, ok := err.(FieldErrors)
			require.True(t, ok)
			require.Contains(t, errs, tc.field)
			require.Len(t, errs, 1)
		})
	}
}

func TestFieldErrorsMessageIsSorted(t *testing.T) {
	errs := FieldErrors{"b": "second", "a": "first"}
	require.Equal(t, "a: first; b: second", errs.Error())
}
